package api

import (
	"context"

	"github.com/Domenick1991/tripmate/internal/domain"
	"github.com/Domenick1991/tripmate/internal/service/booking"
	"github.com/Domenick1991/tripmate/internal/service/review"
	"github.com/Domenick1991/tripmate/internal/service/search"
	"github.com/Domenick1991/tripmate/internal/service/state"
	"github.com/stretchr/testify/mock"
)

type MockStateStore struct {
	mock.Mock
}

func (m *MockStateStore) Login(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockStateStore) Logout(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockStateStore) CurrentUser(ctx context.Context) (domain.User, bool) {
	args := m.Called(ctx)
	return args.Get(0).(domain.User), args.Bool(1)
}

func (m *MockStateStore) AddBooking(ctx context.Context, b domain.Booking) (string, error) {
	args := m.Called(ctx, b)
	return args.String(0), args.Error(1)
}

func (m *MockStateStore) GetBookings(ctx context.Context, userID string) []domain.Booking {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Booking)
}

func (m *MockStateStore) AllBookings(ctx context.Context) []domain.Booking {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking)
}

func (m *MockStateStore) ProviderBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockStateStore) CancelBooking(ctx context.Context, id string) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}

func (m *MockStateStore) RefundBooking(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStateStore) AddCarpoolBooking(ctx context.Context, b domain.CarpoolBooking) (string, error) {
	args := m.Called(ctx, b)
	return args.String(0), args.Error(1)
}

func (m *MockStateStore) GetCarpoolBookings(ctx context.Context, userID string) []domain.CarpoolBooking {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.CarpoolBooking)
}

func (m *MockStateStore) DriverCarpoolBookings(ctx context.Context, driverID string) []domain.CarpoolBooking {
	args := m.Called(ctx, driverID)
	return args.Get(0).([]domain.CarpoolBooking)
}

func (m *MockStateStore) CancelCarpoolBooking(ctx context.Context, id string) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}

func (m *MockStateStore) RefundCarpoolBooking(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStateStore) AddExpense(ctx context.Context, e domain.Expense) (string, error) {
	args := m.Called(ctx, e)
	return args.String(0), args.Error(1)
}

func (m *MockStateStore) GetExpenses(ctx context.Context, userID string) []domain.Expense {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Expense)
}

func (m *MockStateStore) DeleteExpense(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStateStore) GetTotalExpenses(ctx context.Context, currency string) float64 {
	args := m.Called(ctx, currency)
	return args.Get(0).(float64)
}

func (m *MockStateStore) AddMatch(ctx context.Context, buddyID, destination string) (string, error) {
	args := m.Called(ctx, buddyID, destination)
	return args.String(0), args.Error(1)
}

func (m *MockStateStore) GetMatches(ctx context.Context) []domain.Match {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Match)
}

func (m *MockStateStore) IsMatched(ctx context.Context, buddyID string) bool {
	args := m.Called(ctx, buddyID)
	return args.Bool(0)
}

func (m *MockStateStore) DeactivateMatch(ctx context.Context, id string) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}

func (m *MockStateStore) AddMessage(ctx context.Context, receiverID, message string) (string, error) {
	args := m.Called(ctx, receiverID, message)
	return args.String(0), args.Error(1)
}

func (m *MockStateStore) GetChatMessages(ctx context.Context, otherUserID string) []domain.ChatMessage {
	args := m.Called(ctx, otherUserID)
	return args.Get(0).([]domain.ChatMessage)
}

func (m *MockStateStore) MarkMessagesAsRead(ctx context.Context, otherUserID string) {
	m.Called(ctx, otherUserID)
}

func (m *MockStateStore) GetUnreadCount(ctx context.Context, otherUserID string) int {
	args := m.Called(ctx, otherUserID)
	return args.Int(0)
}

func (m *MockStateStore) Conversations(ctx context.Context) []domain.Conversation {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Conversation)
}

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) BookHotel(ctx context.Context, input booking.HotelBookingInput) (domain.Booking, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) BookCarpool(ctx context.Context, input booking.CarpoolBookingInput) (domain.CarpoolBooking, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.CarpoolBooking), args.Error(1)
}

type MockSearchUseCase struct {
	mock.Mock
}

func (m *MockSearchUseCase) SearchDrivers(params search.DriverParams) search.Page[domain.CarpoolDriver] {
	args := m.Called(params)
	return args.Get(0).(search.Page[domain.CarpoolDriver])
}

func (m *MockSearchUseCase) SearchTravelBuddies(params search.BuddyParams) search.Page[domain.TravelBuddy] {
	args := m.Called(params)
	return args.Get(0).(search.Page[domain.TravelBuddy])
}

func (m *MockSearchUseCase) SearchHotels(params search.HotelParams) search.Page[domain.Hotel] {
	args := m.Called(params)
	return args.Get(0).(search.Page[domain.Hotel])
}

func (m *MockSearchUseCase) MatchBuddies(plan domain.TravelPlan) []search.BuddyMatch {
	args := m.Called(plan)
	return args.Get(0).([]search.BuddyMatch)
}

type MockReviewUseCase struct {
	mock.Mock
}

func (m *MockReviewUseCase) Submit(ctx context.Context, s review.Submission) (domain.Review, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(domain.Review), args.Error(1)
}

func (m *MockReviewUseCase) ReviewsForTarget(ctx context.Context, t domain.ReviewType, targetID string, order review.SortOrder) []domain.Review {
	args := m.Called(ctx, t, targetID, order)
	return args.Get(0).([]domain.Review)
}

func (m *MockReviewUseCase) AverageRatings(ctx context.Context, t domain.ReviewType, targetID string) review.Averages {
	args := m.Called(ctx, t, targetID)
	return args.Get(0).(review.Averages)
}

func (m *MockReviewUseCase) Summary(ctx context.Context, t domain.ReviewType, targetID string) review.Summary {
	args := m.Called(ctx, t, targetID)
	return args.Get(0).(review.Summary)
}

func (m *MockReviewUseCase) VoteHelpful(ctx context.Context, reviewID, userID string, helpful bool) (domain.Review, bool) {
	args := m.Called(ctx, reviewID, userID, helpful)
	return args.Get(0).(domain.Review), args.Bool(1)
}

func (m *MockReviewUseCase) Respond(ctx context.Context, reviewID string, responder domain.User, text string) (domain.Review, error) {
	args := m.Called(ctx, reviewID, responder, text)
	return args.Get(0).(domain.Review), args.Error(1)
}

var (
	_ state.StateStore       = (*MockStateStore)(nil)
	_ booking.BookingUseCase = (*MockBookingUseCase)(nil)
	_ search.SearchUseCase   = (*MockSearchUseCase)(nil)
	_ review.ReviewUseCase   = (*MockReviewUseCase)(nil)
)
