package model

// ChatRole identifies the author of a transcript entry.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatEntry is one line of a bot transcript.
type ChatEntry struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// SendChatRequest is the payload for sending a message to the bot.
// An empty message is accepted and ignored.
type SendChatRequest struct {
	Message string `json:"message" binding:"max=2000"`
}

// ChatSession is a transcript addressed by session id.
type ChatSession struct {
	ID      string      `json:"id"`
	Entries []ChatEntry `json:"entries"`
}

// SendChatResponse reports the outcome of a send.
type SendChatResponse struct {
	Accepted bool        `json:"accepted"`
	Entries  []ChatEntry `json:"entries"`
	Notice   string      `json:"notice,omitempty"`
}
