package domain

import "time"

type MatchStatus string

const (
	MatchStatusActive   MatchStatus = "active"
	MatchStatusInactive MatchStatus = "inactive"
)

type Match struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	BuddyID     string      `json:"buddyId"`
	Destination string      `json:"destination"`
	MatchedAt   time.Time   `json:"matchedAt"`
	Status      MatchStatus `json:"status"`
}

type ChatMessage struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

// Between reports whether the message belongs to the unordered pair (a, b).
func (m ChatMessage) Between(a, b string) bool {
	return (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a)
}

// Conversation summarises the thread with one counterpart.
type Conversation struct {
	CounterpartID string      `json:"counterpartId"`
	LastMessage   ChatMessage `json:"lastMessage"`
	UnreadCount   int         `json:"unreadCount"`
}
