package events

// Event types
const (
	UserCreated = "user.created"
)

// Stream names
const (
	UserEventsStream = "user.events"
)

// UserCreatedEvent is the payload published after a successful
// registration. Timestamp is ISO-8601.
type UserCreatedEvent struct {
	Username  string `json:"username"`
	Timestamp string `json:"timestamp"`
}
