package catalog

import (
	"testing"
	"time"

	"github.com/Domenick1991/tripmate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Deterministic(t *testing.T) {
	counts := Counts{Drivers: 25, Buddies: 30, Hotels: 10}

	a := Generate(42, counts)
	b := Generate(42, counts)
	c := Generate(7, counts)

	assert.Equal(t, a.Drivers(), b.Drivers())
	assert.Equal(t, a.Buddies(), b.Buddies())
	assert.Equal(t, a.Hotels(), b.Hotels())
	assert.NotEqual(t, a.Buddies(), c.Buddies())
}

func TestGenerate_Counts(t *testing.T) {
	cat := Generate(1, Counts{Drivers: 3, Buddies: 4, Hotels: 5})

	assert.Len(t, cat.Drivers(), 3)
	assert.Len(t, cat.Buddies(), 4)
	assert.Len(t, cat.Hotels(), 5)

	empty := Generate(1, Counts{})
	assert.Empty(t, empty.Drivers())
}

func TestGenerate_EntriesAreWellFormed(t *testing.T) {
	cat := Generate(99, Counts{Drivers: 50, Buddies: 50, Hotels: 20})

	for _, d := range cat.Drivers() {
		assert.NotEqual(t, d.From, d.To)
		assert.GreaterOrEqual(t, d.AvailableSeats, 1)
		assert.Positive(t, d.PricePerSeat)
		assert.InDelta(t, 4.25, d.Rating, 0.75)
		_, err := time.Parse(DateLayout, d.DepartureDate)
		assert.NoError(t, err)
	}
	for _, b := range cat.Buddies() {
		start, err := time.Parse(DateLayout, b.StartDate)
		require.NoError(t, err)
		end, err := time.Parse(DateLayout, b.EndDate)
		require.NoError(t, err)
		assert.True(t, end.After(start))
		assert.GreaterOrEqual(t, len(b.Interests), 2)
	}
	for _, h := range cat.Hotels() {
		assert.NotEmpty(t, h.RoomTypes)
		assert.Positive(t, h.PricePerNight)
	}
}

func TestCatalog_Lookups(t *testing.T) {
	cat := New(
		[]domain.CarpoolDriver{{ID: "driver-1", Name: "Ravi"}},
		[]domain.TravelBuddy{{ID: "buddy-1", Name: "Meera"}},
		[]domain.Hotel{{ID: "hotel-1", Name: "Palm Inn"}},
	)

	d, ok := cat.Driver("driver-1")
	assert.True(t, ok)
	assert.Equal(t, "Ravi", d.Name)
	_, ok = cat.Buddy("buddy-9")
	assert.False(t, ok)

	tests := []struct {
		kind domain.ReviewType
		id   string
		name string
		ok   bool
	}{
		{domain.ReviewHotel, "hotel-1", "Palm Inn", true},
		{domain.ReviewBuddy, "buddy-1", "Meera", true},
		{domain.ReviewCarpool, "driver-1", "Ravi", true},
		{domain.ReviewDriver, "driver-1", "Ravi", true},
		{domain.ReviewHotel, "driver-1", "", false},
		{domain.ReviewType("ferry"), "driver-1", "", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.id, func(t *testing.T) {
			name, ok := cat.TargetName(tt.kind, tt.id)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.name, name)
		})
	}
}
