package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Booking is a hotel stay owned by exactly one user.
type Booking struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	HotelID       string        `json:"hotelId"`
	HotelName     string        `json:"hotelName"`
	Destination   string        `json:"destination"`
	RoomType      string        `json:"roomType"`
	CheckIn       string        `json:"checkIn"`
	CheckOut      string        `json:"checkOut"`
	Guests        int           `json:"guests"`
	TotalPrice    float64       `json:"totalPrice"`
	Currency      string        `json:"currency,omitempty"`
	PaymentMethod string        `json:"paymentMethod"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	TransactionID string        `json:"transactionId,omitempty"`
	BookingDate   time.Time     `json:"bookingDate"`
	Status        BookingStatus `json:"status"`
}

// CarpoolBooking is a reservation of seats on a driver's ride.
type CarpoolBooking struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	DriverID      string        `json:"driverId"`
	DriverName    string        `json:"driverName"`
	From          string        `json:"from"`
	To            string        `json:"to"`
	DepartureDate string        `json:"departureDate"`
	DepartureTime string        `json:"departureTime"`
	SeatsBooked   int           `json:"seatsBooked"`
	PricePerSeat  float64       `json:"pricePerSeat"`
	TotalPrice    float64       `json:"totalPrice"`
	Currency      string        `json:"currency,omitempty"`
	PaymentMethod string        `json:"paymentMethod"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	TransactionID string        `json:"transactionId,omitempty"`
	BookingDate   time.Time     `json:"bookingDate"`
	Status        BookingStatus `json:"status"`
}
