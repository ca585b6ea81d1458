package chat

import "time"

// Role is who authored a turn. Kept as a closed type so invalid roles
// cannot be constructed elsewhere in the codebase.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

func (r Role) Valid() bool { return r == RoleUser || r == RoleAssistant }

// Turn is one message in a chat session. Ordering by timestamp defines
// conversation order within a session; session ids are client-chosen
// opaque strings with no server-side identity attached.
type Turn struct {
	ID        string    `bson:"id" json:"id"`
	SessionID string    `bson:"session_id" json:"session_id"`
	Role      Role      `bson:"role" json:"role"`
	Content   string    `bson:"content" json:"content"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
