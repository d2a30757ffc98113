package state

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Domenick1991/tripmate/internal/domain"
	"github.com/Domenick1991/tripmate/internal/kafka"
	"github.com/Domenick1991/tripmate/internal/metrics"
	"github.com/Domenick1991/tripmate/internal/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const DefaultCurrency = "INR"

// StateStore is the single source of truth for the logged-in user and every
// user-owned collection.
type StateStore interface {
	Login(ctx context.Context, user domain.User) (domain.User, error)
	Logout(ctx context.Context)
	CurrentUser(ctx context.Context) (domain.User, bool)

	AddBooking(ctx context.Context, booking domain.Booking) (string, error)
	GetBookings(ctx context.Context, userID string) []domain.Booking
	AllBookings(ctx context.Context) []domain.Booking
	ProviderBookings(ctx context.Context) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, id string) bool
	RefundBooking(ctx context.Context, id string) (bool, error)

	AddCarpoolBooking(ctx context.Context, booking domain.CarpoolBooking) (string, error)
	GetCarpoolBookings(ctx context.Context, userID string) []domain.CarpoolBooking
	DriverCarpoolBookings(ctx context.Context, driverID string) []domain.CarpoolBooking
	CancelCarpoolBooking(ctx context.Context, id string) bool
	RefundCarpoolBooking(ctx context.Context, id string) (bool, error)

	AddExpense(ctx context.Context, expense domain.Expense) (string, error)
	GetExpenses(ctx context.Context, userID string) []domain.Expense
	DeleteExpense(ctx context.Context, id string) error
	GetTotalExpenses(ctx context.Context, currency string) float64

	AddMatch(ctx context.Context, buddyID, destination string) (string, error)
	GetMatches(ctx context.Context) []domain.Match
	IsMatched(ctx context.Context, buddyID string) bool
	DeactivateMatch(ctx context.Context, id string) bool

	AddMessage(ctx context.Context, receiverID, message string) (string, error)
	GetChatMessages(ctx context.Context, otherUserID string) []domain.ChatMessage
	MarkMessagesAsRead(ctx context.Context, otherUserID string)
	GetUnreadCount(ctx context.Context, otherUserID string) int
	Conversations(ctx context.Context) []domain.Conversation
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, event kafka.TravelEvent) error
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

func WithPublisher(p EventPublisher) Option {
	return func(s *Store) {
		s.publisher = p
	}
}

// Store mirrors every collection to kv on each mutation (write-through) and
// reads it back once in Hydrate. Persistence errors are logged, never returned.
type Store struct {
	mu  sync.Mutex
	kv  storage.KV
	log logrus.FieldLogger

	now       func() time.Time
	newID     func() string
	publisher EventPublisher

	user            *domain.User
	bookings        []domain.Booking
	carpoolBookings []domain.CarpoolBooking
	expenses        []domain.Expense
	matches         []domain.Match
	messages        []domain.ChatMessage
}

func New(kv storage.KV, log logrus.FieldLogger, opts ...Option) *Store {
	s := &Store{
		kv:    kv,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hydrate replaces the in-memory state with what kv holds. Unreadable keys
// are logged and treated as empty collections.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user domain.User
	if found := s.load(ctx, storage.KeyCurrentUser, &user); found && user.ID != "" {
		s.user = &user
	} else {
		s.user = nil
	}

	var (
		bookings        []domain.Booking
		carpoolBookings []domain.CarpoolBooking
		expenses        []domain.Expense
		matches         []domain.Match
		messages        []domain.ChatMessage
	)
	if !s.load(ctx, storage.KeyBookings, &bookings) {
		bookings = nil
	}
	if !s.load(ctx, storage.KeyCarpoolBookings, &carpoolBookings) {
		carpoolBookings = nil
	}
	if !s.load(ctx, storage.KeyExpenses, &expenses) {
		expenses = nil
	}
	if !s.load(ctx, storage.KeyMatches, &matches) {
		matches = nil
	}
	if !s.load(ctx, storage.KeyChatMessages, &messages) {
		messages = nil
	}
	s.bookings = bookings
	s.carpoolBookings = carpoolBookings
	s.expenses = expenses
	s.matches = matches
	s.messages = messages

	s.log.WithFields(logrus.Fields{
		"bookings":         len(s.bookings),
		"carpool_bookings": len(s.carpoolBookings),
		"expenses":         len(s.expenses),
		"matches":          len(s.matches),
		"messages":         len(s.messages),
	}).Info("state hydrated")
}

func (s *Store) Login(ctx context.Context, user domain.User) (domain.User, error) {
	if user.ID == "" {
		user.ID = s.newID()
	}
	if user.Role == "" {
		user.Role = domain.RoleTraveler
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	s.persist(ctx, storage.KeyCurrentUser, user)
	s.log.WithField("user_id", user.ID).Info("user logged in")
	return user, nil
}

// Logout forgets the current user only; owned collections stay in storage.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil {
		s.log.WithField("user_id", s.user.ID).Info("user logged out")
	}
	s.user = nil
	if err := s.kv.Delete(ctx, storage.KeyCurrentUser); err != nil {
		s.log.WithError(err).WithField("key", storage.KeyCurrentUser).Warn("failed to clear persisted user")
	}
}

func (s *Store) CurrentUser(_ context.Context) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// requireUser must be called with mu held.
func (s *Store) requireUser(op string) (domain.User, error) {
	if s.user == nil {
		return domain.User{}, fmt.Errorf("%s: %w", op, domain.ErrUnauthenticated)
	}
	return *s.user, nil
}

// resolveUser picks the explicit id, else the current user's. Called with mu held.
func (s *Store) resolveUser(userID string) string {
	if userID != "" {
		return userID
	}
	if s.user != nil {
		return s.user.ID
	}
	return ""
}

func (s *Store) load(ctx context.Context, key string, dst any) bool {
	found, err := storage.LoadJSON(ctx, s.kv, key, dst)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("failed to load collection, starting empty")
		return false
	}
	return found
}

func (s *Store) persist(ctx context.Context, key string, value any) {
	if err := storage.SaveJSON(ctx, s.kv, key, value); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("failed to persist collection")
	}
}

func (s *Store) emit(ctx context.Context, event kafka.TravelEvent) {
	metrics.RecordEvent(event.Type)
	if s.publisher == nil {
		return
	}
	event.OccurredAt = s.now()
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		s.log.WithError(err).WithField("event", event.Type).Warn("failed to publish event")
	}
}

var _ StateStore = (*Store)(nil)
