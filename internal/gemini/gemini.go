package gemini

import (
	"context"
	"fmt"
	"os"

	"github.com/google/generative-ai-go/genai"
	"github.com/maxdeal/storefront/internal/assets"
	"google.golang.org/api/option"
)

const (
	defaultImageModel = "gemini-2.5-flash-image"
	defaultChatModel  = "gemini-3-flash-preview"
)

func apiKey() (string, error) {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	return key, nil
}

// ImageClient is the image-synthesis capability backed by Gemini
type ImageClient struct {
	model string
}

// NewImageClient returns an image client. The model can be overridden
// with MAXDEAL_IMAGE_MODEL.
func NewImageClient() *ImageClient {
	model := os.Getenv("MAXDEAL_IMAGE_MODEL")
	if model == "" {
		model = defaultImageModel
	}
	return &ImageClient{model: model}
}

// Model returns the image model this client targets
func (c *ImageClient) Model() string { return c.model }

// Generate issues exactly one image-synthesis request and returns the
// first inline image payload from the response
func (c *ImageClient) Generate(ctx context.Context, req assets.GenerateRequest) (*assets.GeneratedImage, error) {
	key, err := apiKey()
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(key))
	if err != nil {
		return nil, fmt.Errorf("failed to create new gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(c.model)

	// The aspect ratio rides in the prompt alongside the composition
	// constraints already stated there.
	prompt := req.Prompt
	if req.AspectRatio != "" {
		prompt = fmt.Sprintf("%s\nAspect ratio: %s.", prompt, req.AspectRatio)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate image: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates returned from Gemini")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return nil, fmt.Errorf("empty content returned from Gemini")
	}

	for _, part := range candidate.Content.Parts {
		if blob, ok := part.(genai.Blob); ok {
			return &assets.GeneratedImage{MIMEType: blob.MIMEType, Data: blob.Data}, nil
		}
	}

	return nil, fmt.Errorf("no image data in Gemini response")
}
