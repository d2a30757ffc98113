package state

import (
	"context"

	"github.com/Domenick1991/tripmate/internal/domain"
	"github.com/Domenick1991/tripmate/internal/kafka"
	"github.com/Domenick1991/tripmate/internal/storage"
)

func (s *Store) AddMatch(ctx context.Context, buddyID, destination string) (string, error) {
	s.mu.Lock()
	user, err := s.requireUser("add match")
	if err != nil {
		s.mu.Unlock()
		return "", err
	}
	m := domain.Match{
		ID:          s.newID(),
		UserID:      user.ID,
		BuddyID:     buddyID,
		Destination: destination,
		MatchedAt:   s.now(),
		Status:      domain.MatchStatusActive,
	}
	s.matches = append(s.matches, m)
	s.persist(ctx, storage.KeyMatches, s.matches)
	s.mu.Unlock()

	s.emit(ctx, kafka.TravelEvent{
		Type:       "match_created",
		UserID:     user.ID,
		EntityID:   m.ID,
		Attributes: map[string]string{"buddy_id": buddyID, "destination": destination},
	})
	return m.ID, nil
}

// GetMatches returns the current user's active matches.
func (s *Store) GetMatches(_ context.Context) []domain.Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return []domain.Match{}
	}
	uid := s.user.ID
	return filter(s.matches, func(m domain.Match) bool {
		return m.UserID == uid && m.Status == domain.MatchStatusActive
	})
}

func (s *Store) IsMatched(_ context.Context, buddyID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return false
	}
	uid := s.user.ID
	return indexOf(s.matches, func(m domain.Match) bool {
		return m.UserID == uid && m.BuddyID == buddyID && m.Status == domain.MatchStatusActive
	}) >= 0
}

// DeactivateMatch marks one of the current user's matches inactive. Matches are never removed.
func (s *Store) DeactivateMatch(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return false
	}
	uid := s.user.ID
	idx := indexOf(s.matches, func(m domain.Match) bool { return m.ID == id && m.UserID == uid })
	if idx < 0 {
		return false
	}
	s.matches[idx].Status = domain.MatchStatusInactive
	s.persist(ctx, storage.KeyMatches, s.matches)
	return true
}
