package state

import (
	"context"

	"github.com/Domenick1991/tripmate/internal/domain"
	"github.com/Domenick1991/tripmate/internal/kafka"
	"github.com/Domenick1991/tripmate/internal/storage"
	"github.com/sirupsen/logrus"
)

// AddBooking stores the booking for the current user and records the linked
// accommodation expense in the same call.
func (s *Store) AddBooking(ctx context.Context, booking domain.Booking) (string, error) {
	s.mu.Lock()
	user, err := s.requireUser("add booking")
	if err != nil {
		s.mu.Unlock()
		return "", err
	}

	booking.ID = s.newID()
	booking.UserID = user.ID
	booking.BookingDate = s.now()
	if booking.Status == "" {
		booking.Status = domain.BookingStatusConfirmed
	}
	if booking.PaymentStatus == "" {
		booking.PaymentStatus = domain.PaymentStatusCompleted
	}
	if booking.Currency == "" {
		booking.Currency = DefaultCurrency
	}
	s.bookings = append(s.bookings, booking)
	s.persist(ctx, storage.KeyBookings, s.bookings)

	s.appendExpense(ctx, user.ID, domain.Expense{
		Category:      domain.ExpenseAccommodation,
		Description:   "Hotel booking: " + booking.HotelName,
		Amount:        booking.TotalPrice,
		Currency:      booking.Currency,
		Destination:   booking.Destination,
		BookingID:     booking.ID,
		PaymentMethod: booking.PaymentMethod,
	})
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"user_id":    user.ID,
		"booking_id": booking.ID,
		"hotel_id":   booking.HotelID,
	}).Info("booking created")
	s.emit(ctx, kafka.TravelEvent{
		Type:     "booking_created",
		UserID:   user.ID,
		EntityID: booking.ID,
		Amount:   booking.TotalPrice,
		Attributes: map[string]string{
			"hotel_id":    booking.HotelID,
			"hotel_name":  booking.HotelName,
			"destination": booking.Destination,
			"check_in":    booking.CheckIn,
		},
	})
	return booking.ID, nil
}

// GetBookings returns the bookings of userID, or of the current user when empty.
func (s *Store) GetBookings(_ context.Context, userID string) []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner := s.resolveUser(userID)
	if owner == "" {
		return []domain.Booking{}
	}
	return filter(s.bookings, func(b domain.Booking) bool { return b.UserID == owner })
}

// AllBookings is the cross-user view used by provider dashboards.
func (s *Store) AllBookings(_ context.Context) []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filter(s.bookings, func(domain.Booking) bool { return true })
}

// ProviderBookings returns every user's bookings of hotels the current provider owns.
func (s *Store) ProviderBookings(_ context.Context) ([]domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, err := s.requireUser("provider bookings")
	if err != nil {
		return nil, err
	}
	return filter(s.bookings, func(b domain.Booking) bool { return user.Owns(b.HotelID) }), nil
}

// CancelBooking flips the status of one of the current user's bookings in
// place. The linked expense is left untouched.
func (s *Store) CancelBooking(ctx context.Context, id string) bool {
	s.mu.Lock()
	user, err := s.requireUser("cancel booking")
	if err != nil {
		s.mu.Unlock()
		return false
	}
	b, ok := s.cancelBookingLocked(ctx, user.ID, id)
	s.mu.Unlock()
	if !ok {
		return false
	}
	s.emit(ctx, kafka.TravelEvent{Type: "booking_cancelled", UserID: b.UserID, EntityID: b.ID})
	return true
}

// RefundBooking cancels the booking and records one negative expense of the
// same amount linked by booking id. Already cancelled bookings are not refunded twice.
func (s *Store) RefundBooking(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	user, err := s.requireUser("refund booking")
	if err != nil {
		s.mu.Unlock()
		return false, err
	}
	idx := indexOf(s.bookings, func(b domain.Booking) bool { return b.ID == id && b.UserID == user.ID })
	if idx < 0 || s.bookings[idx].Status == domain.BookingStatusCancelled {
		s.mu.Unlock()
		return false, nil
	}
	b, _ := s.cancelBookingLocked(ctx, user.ID, id)
	s.appendExpense(ctx, b.UserID, domain.Expense{
		Category:      domain.ExpenseAccommodation,
		Description:   "Refund: " + b.HotelName,
		Amount:        -b.TotalPrice,
		Currency:      b.Currency,
		Destination:   b.Destination,
		BookingID:     b.ID,
		PaymentMethod: b.PaymentMethod,
	})
	s.mu.Unlock()

	s.emit(ctx, kafka.TravelEvent{Type: "booking_cancelled", UserID: b.UserID, EntityID: b.ID, Amount: -b.TotalPrice})
	return true, nil
}

func (s *Store) cancelBookingLocked(ctx context.Context, userID, id string) (domain.Booking, bool) {
	idx := indexOf(s.bookings, func(b domain.Booking) bool { return b.ID == id && b.UserID == userID })
	if idx < 0 {
		return domain.Booking{}, false
	}
	s.bookings[idx].Status = domain.BookingStatusCancelled
	s.persist(ctx, storage.KeyBookings, s.bookings)
	return s.bookings[idx], true
}

// AddCarpoolBooking mirrors AddBooking with a transport expense.
func (s *Store) AddCarpoolBooking(ctx context.Context, booking domain.CarpoolBooking) (string, error) {
	s.mu.Lock()
	user, err := s.requireUser("add carpool booking")
	if err != nil {
		s.mu.Unlock()
		return "", err
	}

	booking.ID = s.newID()
	booking.UserID = user.ID
	booking.BookingDate = s.now()
	if booking.Status == "" {
		booking.Status = domain.BookingStatusConfirmed
	}
	if booking.PaymentStatus == "" {
		booking.PaymentStatus = domain.PaymentStatusCompleted
	}
	if booking.Currency == "" {
		booking.Currency = DefaultCurrency
	}
	if booking.TotalPrice == 0 {
		booking.TotalPrice = booking.PricePerSeat * float64(booking.SeatsBooked)
	}
	s.carpoolBookings = append(s.carpoolBookings, booking)
	s.persist(ctx, storage.KeyCarpoolBookings, s.carpoolBookings)

	s.appendExpense(ctx, user.ID, domain.Expense{
		Category:      domain.ExpenseTransport,
		Description:   "Carpool: " + booking.From + " to " + booking.To,
		Amount:        booking.TotalPrice,
		Currency:      booking.Currency,
		Destination:   booking.To,
		BookingID:     booking.ID,
		PaymentMethod: booking.PaymentMethod,
	})
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"user_id":    user.ID,
		"booking_id": booking.ID,
		"driver_id":  booking.DriverID,
	}).Info("carpool booking created")
	s.emit(ctx, kafka.TravelEvent{
		Type:     "carpool_booked",
		UserID:   user.ID,
		EntityID: booking.ID,
		Amount:   booking.TotalPrice,
		Attributes: map[string]string{
			"driver_id":      booking.DriverID,
			"from":           booking.From,
			"to":             booking.To,
			"departure_date": booking.DepartureDate,
		},
	})
	return booking.ID, nil
}

func (s *Store) GetCarpoolBookings(_ context.Context, userID string) []domain.CarpoolBooking {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner := s.resolveUser(userID)
	if owner == "" {
		return []domain.CarpoolBooking{}
	}
	return filter(s.carpoolBookings, func(b domain.CarpoolBooking) bool { return b.UserID == owner })
}

// DriverCarpoolBookings is the cross-user view of one driver's passengers.
func (s *Store) DriverCarpoolBookings(_ context.Context, driverID string) []domain.CarpoolBooking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filter(s.carpoolBookings, func(b domain.CarpoolBooking) bool { return b.DriverID == driverID })
}

func (s *Store) CancelCarpoolBooking(ctx context.Context, id string) bool {
	s.mu.Lock()
	user, err := s.requireUser("cancel carpool booking")
	if err != nil {
		s.mu.Unlock()
		return false
	}
	b, ok := s.cancelCarpoolLocked(ctx, user.ID, id)
	s.mu.Unlock()
	if !ok {
		return false
	}
	s.emit(ctx, kafka.TravelEvent{Type: "carpool_cancelled", UserID: b.UserID, EntityID: b.ID})
	return true
}

func (s *Store) RefundCarpoolBooking(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	user, err := s.requireUser("refund carpool booking")
	if err != nil {
		s.mu.Unlock()
		return false, err
	}
	idx := indexOf(s.carpoolBookings, func(b domain.CarpoolBooking) bool { return b.ID == id && b.UserID == user.ID })
	if idx < 0 || s.carpoolBookings[idx].Status == domain.BookingStatusCancelled {
		s.mu.Unlock()
		return false, nil
	}
	b, _ := s.cancelCarpoolLocked(ctx, user.ID, id)
	s.appendExpense(ctx, b.UserID, domain.Expense{
		Category:      domain.ExpenseTransport,
		Description:   "Refund: carpool " + b.From + " to " + b.To,
		Amount:        -b.TotalPrice,
		Currency:      b.Currency,
		Destination:   b.To,
		BookingID:     b.ID,
		PaymentMethod: b.PaymentMethod,
	})
	s.mu.Unlock()

	s.emit(ctx, kafka.TravelEvent{Type: "carpool_cancelled", UserID: b.UserID, EntityID: b.ID, Amount: -b.TotalPrice})
	return true, nil
}

func (s *Store) cancelCarpoolLocked(ctx context.Context, userID, id string) (domain.CarpoolBooking, bool) {
	idx := indexOf(s.carpoolBookings, func(b domain.CarpoolBooking) bool { return b.ID == id && b.UserID == userID })
	if idx < 0 {
		return domain.CarpoolBooking{}, false
	}
	s.carpoolBookings[idx].Status = domain.BookingStatusCancelled
	s.persist(ctx, storage.KeyCarpoolBookings, s.carpoolBookings)
	return s.carpoolBookings[idx], true
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func indexOf[T any](items []T, match func(T) bool) int {
	for i, it := range items {
		if match(it) {
			return i
		}
	}
	return -1
}
