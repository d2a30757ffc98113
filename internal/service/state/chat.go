package state

import (
	"context"
	"sort"

	"github.com/Domenick1991/tripmate/internal/domain"
	"github.com/Domenick1991/tripmate/internal/kafka"
	"github.com/Domenick1991/tripmate/internal/storage"
)

func (s *Store) AddMessage(ctx context.Context, receiverID, message string) (string, error) {
	s.mu.Lock()
	user, err := s.requireUser("add message")
	if err != nil {
		s.mu.Unlock()
		return "", err
	}
	m := domain.ChatMessage{
		ID:         s.newID(),
		SenderID:   user.ID,
		ReceiverID: receiverID,
		Message:    message,
		Timestamp:  s.now(),
		Read:       false,
	}
	s.messages = append(s.messages, m)
	s.persist(ctx, storage.KeyChatMessages, s.messages)
	s.mu.Unlock()

	s.emit(ctx, kafka.TravelEvent{
		Type:       "message_sent",
		UserID:     receiverID,
		EntityID:   m.ID,
		Attributes: map[string]string{"sender_id": user.ID},
	})
	return m.ID, nil
}

// GetChatMessages returns the thread with otherUserID in both directions, oldest first.
func (s *Store) GetChatMessages(_ context.Context, otherUserID string) []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return []domain.ChatMessage{}
	}
	uid := s.user.ID
	thread := filter(s.messages, func(m domain.ChatMessage) bool { return m.Between(uid, otherUserID) })
	sort.SliceStable(thread, func(i, j int) bool { return thread[i].Timestamp.Before(thread[j].Timestamp) })
	return thread
}

func (s *Store) MarkMessagesAsRead(ctx context.Context, otherUserID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return
	}
	changed := false
	for i := range s.messages {
		m := &s.messages[i]
		if m.SenderID == otherUserID && m.ReceiverID == s.user.ID && !m.Read {
			m.Read = true
			changed = true
		}
	}
	if changed {
		s.persist(ctx, storage.KeyChatMessages, s.messages)
	}
}

func (s *Store) GetUnreadCount(_ context.Context, otherUserID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return 0
	}
	n := 0
	for _, m := range s.messages {
		if m.SenderID == otherUserID && m.ReceiverID == s.user.ID && !m.Read {
			n++
		}
	}
	return n
}

// Conversations lists one entry per counterpart, most recently active first.
func (s *Store) Conversations(_ context.Context) []domain.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return []domain.Conversation{}
	}
	uid := s.user.ID
	byPeer := make(map[string]*domain.Conversation)
	for _, m := range s.messages {
		var peer string
		switch uid {
		case m.SenderID:
			peer = m.ReceiverID
		case m.ReceiverID:
			peer = m.SenderID
		default:
			continue
		}
		c, ok := byPeer[peer]
		if !ok {
			c = &domain.Conversation{CounterpartID: peer, LastMessage: m}
			byPeer[peer] = c
		}
		if !m.Timestamp.Before(c.LastMessage.Timestamp) {
			c.LastMessage = m
		}
		if m.ReceiverID == uid && !m.Read {
			c.UnreadCount++
		}
	}

	out := make([]domain.Conversation, 0, len(byPeer))
	for _, c := range byPeer {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].LastMessage.Timestamp.Equal(out[j].LastMessage.Timestamp) {
			return out[i].LastMessage.Timestamp.After(out[j].LastMessage.Timestamp)
		}
		return out[i].CounterpartID < out[j].CounterpartID
	})
	return out
}
