package chat

// Role identifies who authored a transcript message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn in a chat transcript. The transcript is strictly
// append-ordered; the only message ever mutated is the tail assistant
// message while its response is streaming.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}
