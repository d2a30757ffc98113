package catalog

import (
	"github.com/Domenick1991/tripmate/internal/domain"
)

const DateLayout = "2006-01-02"

// Catalog is read-only after construction and safe for concurrent readers.
type Catalog struct {
	drivers []domain.CarpoolDriver
	buddies []domain.TravelBuddy
	hotels  []domain.Hotel

	driverByID map[string]int
	buddyByID  map[string]int
	hotelByID  map[string]int
}

func New(drivers []domain.CarpoolDriver, buddies []domain.TravelBuddy, hotels []domain.Hotel) *Catalog {
	c := &Catalog{
		drivers:    drivers,
		buddies:    buddies,
		hotels:     hotels,
		driverByID: make(map[string]int, len(drivers)),
		buddyByID:  make(map[string]int, len(buddies)),
		hotelByID:  make(map[string]int, len(hotels)),
	}
	for i, d := range drivers {
		c.driverByID[d.ID] = i
	}
	for i, b := range buddies {
		c.buddyByID[b.ID] = i
	}
	for i, h := range hotels {
		c.hotelByID[h.ID] = i
	}
	return c
}

func (c *Catalog) Drivers() []domain.CarpoolDriver { return c.drivers }

func (c *Catalog) Buddies() []domain.TravelBuddy { return c.buddies }

func (c *Catalog) Hotels() []domain.Hotel { return c.hotels }

func (c *Catalog) Driver(id string) (domain.CarpoolDriver, bool) {
	i, ok := c.driverByID[id]
	if !ok {
		return domain.CarpoolDriver{}, false
	}
	return c.drivers[i], true
}

func (c *Catalog) Buddy(id string) (domain.TravelBuddy, bool) {
	i, ok := c.buddyByID[id]
	if !ok {
		return domain.TravelBuddy{}, false
	}
	return c.buddies[i], true
}

func (c *Catalog) Hotel(id string) (domain.Hotel, bool) {
	i, ok := c.hotelByID[id]
	if !ok {
		return domain.Hotel{}, false
	}
	return c.hotels[i], true
}

// TargetName resolves a review target. Carpool and driver reviews both point at drivers.
func (c *Catalog) TargetName(t domain.ReviewType, id string) (string, bool) {
	switch t {
	case domain.ReviewHotel:
		h, ok := c.Hotel(id)
		return h.Name, ok
	case domain.ReviewBuddy:
		b, ok := c.Buddy(id)
		return b.Name, ok
	case domain.ReviewCarpool, domain.ReviewDriver:
		d, ok := c.Driver(id)
		return d.Name, ok
	}
	return "", false
}
