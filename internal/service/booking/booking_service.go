package booking

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/Domenick1991/tripmate/internal/domain"
	"github.com/Domenick1991/tripmate/internal/metrics"
	"github.com/Domenick1991/tripmate/internal/service/payment"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

// BookingUseCase turns a checkout request into a paid booking. A declined
// payment leaves no booking behind.
type BookingUseCase interface {
	BookHotel(ctx context.Context, input HotelBookingInput) (domain.Booking, error)
	BookCarpool(ctx context.Context, input CarpoolBookingInput) (domain.CarpoolBooking, error)
}

// Store is the part of the state store checkout writes to.
type Store interface {
	CurrentUser(ctx context.Context) (domain.User, bool)
	AddBooking(ctx context.Context, booking domain.Booking) (string, error)
	GetBookings(ctx context.Context, userID string) []domain.Booking
	AddCarpoolBooking(ctx context.Context, booking domain.CarpoolBooking) (string, error)
	GetCarpoolBookings(ctx context.Context, userID string) []domain.CarpoolBooking
	DriverCarpoolBookings(ctx context.Context, driverID string) []domain.CarpoolBooking
}

type Catalog interface {
	Hotel(id string) (domain.Hotel, bool)
	Driver(id string) (domain.CarpoolDriver, bool)
}

type HotelBookingInput struct {
	HotelID       string `json:"hotelId" validate:"required"`
	RoomType      string `json:"roomType"`
	CheckIn       string `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut      string `json:"checkOut" validate:"required,datetime=2006-01-02"`
	Guests        int    `json:"guests" validate:"min=1,max=10"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

type CarpoolBookingInput struct {
	DriverID      string `json:"driverId" validate:"required"`
	Seats         int    `json:"seats" validate:"min=1"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

type BookingService struct {
	store    Store
	catalog  Catalog
	payments payment.Gateway
	validate *validator.Validate
	log      logrus.FieldLogger
	currency string

	seatsMu sync.Mutex
	drivers map[string]*sync.Mutex
}

type BookingServiceOption func(*BookingService)

func WithCurrency(currency string) BookingServiceOption {
	return func(s *BookingService) {
		s.currency = currency
	}
}

func NewBookingService(store Store, catalog Catalog, payments payment.Gateway, log logrus.FieldLogger, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		store:    store,
		catalog:  catalog,
		payments: payments,
		validate: validator.New(),
		log:      log,
		currency: "INR",
		drivers:  make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) BookHotel(ctx context.Context, input HotelBookingInput) (domain.Booking, error) {
	user, ok := s.store.CurrentUser(ctx)
	if !ok {
		return domain.Booking{}, fmt.Errorf("book hotel: %w", domain.ErrUnauthenticated)
	}
	if err := s.validate.Struct(input); err != nil {
		return domain.Booking{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	hotel, ok := s.catalog.Hotel(input.HotelID)
	if !ok {
		return domain.Booking{}, fmt.Errorf("hotel %q: %w", input.HotelID, domain.ErrNotFound)
	}

	nights, err := nightsBetween(input.CheckIn, input.CheckOut)
	if err != nil {
		return domain.Booking{}, err
	}
	roomType := input.RoomType
	switch {
	case roomType == "" && len(hotel.RoomTypes) > 0:
		roomType = hotel.RoomTypes[0]
	case roomType != "" && !slices.Contains(hotel.RoomTypes, roomType):
		return domain.Booking{}, fmt.Errorf("%w: room type %q is not offered by %s", domain.ErrValidation, roomType, hotel.Name)
	}

	total := float64(nights) * hotel.PricePerNight
	receipt, err := s.charge(ctx, input.PaymentMethod, total)
	if err != nil {
		return domain.Booking{}, err
	}

	booking := domain.Booking{
		HotelID:       hotel.ID,
		HotelName:     hotel.Name,
		Destination:   hotel.Destination,
		RoomType:      roomType,
		CheckIn:       input.CheckIn,
		CheckOut:      input.CheckOut,
		Guests:        input.Guests,
		TotalPrice:    total,
		Currency:      s.currency,
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: receipt.Status,
		TransactionID: receipt.TransactionID,
		Status:        domain.BookingStatusConfirmed,
	}
	id, err := s.store.AddBooking(ctx, booking)
	if err != nil {
		return domain.Booking{}, err
	}
	booking.ID, booking.UserID = id, user.ID
	return stored(s.store.GetBookings(ctx, user.ID), booking, func(b domain.Booking) string { return b.ID }), nil
}

// BookCarpool holds the driver's lock from the seat check until the booking is
// stored, so concurrent checkouts cannot oversell a ride.
func (s *BookingService) BookCarpool(ctx context.Context, input CarpoolBookingInput) (domain.CarpoolBooking, error) {
	user, ok := s.store.CurrentUser(ctx)
	if !ok {
		return domain.CarpoolBooking{}, fmt.Errorf("book carpool: %w", domain.ErrUnauthenticated)
	}
	if err := s.validate.Struct(input); err != nil {
		return domain.CarpoolBooking{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	driver, ok := s.catalog.Driver(input.DriverID)
	if !ok {
		return domain.CarpoolBooking{}, fmt.Errorf("driver %q: %w", input.DriverID, domain.ErrNotFound)
	}

	unlock := s.lockDriver(driver.ID)
	defer unlock()

	left := driver.AvailableSeats
	for _, b := range s.store.DriverCarpoolBookings(ctx, driver.ID) {
		if b.Status == domain.BookingStatusConfirmed {
			left -= b.SeatsBooked
		}
	}
	if input.Seats > left {
		return domain.CarpoolBooking{}, fmt.Errorf("%w: %d seats requested, %d left", domain.ErrValidation, input.Seats, max(left, 0))
	}

	total := float64(input.Seats) * driver.PricePerSeat
	receipt, err := s.charge(ctx, input.PaymentMethod, total)
	if err != nil {
		return domain.CarpoolBooking{}, err
	}

	booking := domain.CarpoolBooking{
		DriverID:      driver.ID,
		DriverName:    driver.Name,
		From:          driver.From,
		To:            driver.To,
		DepartureDate: driver.DepartureDate,
		DepartureTime: driver.DepartureTime,
		SeatsBooked:   input.Seats,
		PricePerSeat:  driver.PricePerSeat,
		TotalPrice:    total,
		Currency:      s.currency,
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: receipt.Status,
		TransactionID: receipt.TransactionID,
		Status:        domain.BookingStatusConfirmed,
	}
	id, err := s.store.AddCarpoolBooking(ctx, booking)
	if err != nil {
		return domain.CarpoolBooking{}, err
	}
	booking.ID, booking.UserID = id, user.ID
	return stored(s.store.GetCarpoolBookings(ctx, user.ID), booking, func(b domain.CarpoolBooking) string { return b.ID }), nil
}

func (s *BookingService) lockDriver(driverID string) func() {
	s.seatsMu.Lock()
	mu, ok := s.drivers[driverID]
	if !ok {
		mu = &sync.Mutex{}
		s.drivers[driverID] = mu
	}
	s.seatsMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

// stored returns the record the store kept for created, carrying the
// timestamps it assigned. created is returned when the store no longer lists it.
func stored[T any](records []T, created T, idOf func(T) string) T {
	id := idOf(created)
	for _, r := range records {
		if idOf(r) == id {
			return r
		}
	}
	return created
}

func (s *BookingService) charge(ctx context.Context, method string, amount float64) (payment.Receipt, error) {
	receipt, err := s.payments.Charge(ctx, payment.Charge{Method: method, Amount: amount, Currency: s.currency})
	if err != nil {
		metrics.RecordEvent("payment_declined")
		s.log.WithError(err).WithFields(logrus.Fields{
			"method": method,
			"amount": amount,
		}).Warn("payment failed")
		return payment.Receipt{}, err
	}
	return receipt, nil
}

func nightsBetween(checkIn, checkOut string) (int, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return 0, fmt.Errorf("%w: check-in: %v", domain.ErrValidation, err)
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return 0, fmt.Errorf("%w: check-out: %v", domain.ErrValidation, err)
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		return 0, fmt.Errorf("%w: check-out must be after check-in", domain.ErrValidation)
	}
	return nights, nil
}

var _ BookingUseCase = (*BookingService)(nil)
