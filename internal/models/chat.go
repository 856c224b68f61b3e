package models

// ChatRole is who authored a chat message.
type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// ChatMessage is one entry in a chat session's history. The history is
// append-only; only the text of the final in-flight model message is
// rewritten while a stream is active.
type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}
