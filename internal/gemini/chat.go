package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/generative-ai-go/genai"
	"github.com/maxdeal/storefront/internal/chat"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// ChatTransport is the conversational capability backed by Gemini chat
// sessions. The remote session handle carries the persona and transcript
// context between turns.
type ChatTransport struct {
	model string
}

// NewChatTransport returns a chat transport. The model can be overridden
// with MAXDEAL_CHAT_MODEL.
func NewChatTransport() *ChatTransport {
	model := os.Getenv("MAXDEAL_CHAT_MODEL")
	if model == "" {
		model = defaultChatModel
	}
	return &ChatTransport{model: model}
}

// Open creates a persona-bound Gemini chat session. The client lives as
// long as the connection and is released by Close.
func (t *ChatTransport) Open(ctx context.Context, persona string) (chat.Conn, error) {
	key, err := apiKey()
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(key))
	if err != nil {
		return nil, fmt.Errorf("failed to create new gemini client: %w", err)
	}

	model := client.GenerativeModel(t.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(persona)},
	}

	return &conn{client: client, session: model.StartChat()}, nil
}

type conn struct {
	client  *genai.Client
	session *genai.ChatSession
}

func (c *conn) SendStream(ctx context.Context, text string) (chat.Stream, error) {
	return &stream{iter: c.session.SendMessageStream(ctx, genai.Text(text))}, nil
}

func (c *conn) Close() error {
	return c.client.Close()
}

type stream struct {
	iter *genai.GenerateContentResponseIterator
}

// Next returns the next chunk of response text, io.EOF at end of stream
func (s *stream) Next() (string, error) {
	resp, err := s.iter.Next()
	if errors.Is(err, iterator.Done) {
		return "", io.EOF
	}
	if err != nil {
		return "", fmt.Errorf("chat stream failed: %w", err)
	}
	return chunkText(resp), nil
}

func chunkText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text += string(t)
		}
	}
	return text
}
