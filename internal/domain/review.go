package domain

import "time"

type ReviewType string

const (
	ReviewHotel   ReviewType = "hotel"
	ReviewBuddy   ReviewType = "buddy"
	ReviewCarpool ReviewType = "carpool"
	ReviewDriver  ReviewType = "driver"
)

func (t ReviewType) Valid() bool {
	switch t {
	case ReviewHotel, ReviewBuddy, ReviewCarpool, ReviewDriver:
		return true
	}
	return false
}

// Categories lists the category ratings carried by the review variant, in display order.
func (t ReviewType) Categories() []string {
	switch t {
	case ReviewHotel:
		return []string{"cleanliness", "service", "value", "location", "amenities", "food"}
	case ReviewBuddy:
		return []string{"communication", "reliability", "friendliness", "compatibility"}
	case ReviewCarpool:
		return []string{"punctuality", "comfort", "safety", "communication"}
	case ReviewDriver:
		return []string{"driving", "punctuality", "vehicle", "friendliness"}
	}
	return nil
}

type HotelRatings struct {
	Cleanliness *float64 `json:"cleanliness,omitempty" validate:"omitempty,min=1,max=5"`
	Service     *float64 `json:"service,omitempty" validate:"omitempty,min=1,max=5"`
	Value       *float64 `json:"value,omitempty" validate:"omitempty,min=1,max=5"`
	Location    *float64 `json:"location,omitempty" validate:"omitempty,min=1,max=5"`
	Amenities   *float64 `json:"amenities,omitempty" validate:"omitempty,min=1,max=5"`
	Food        *float64 `json:"food,omitempty" validate:"omitempty,min=1,max=5"`
}

type BuddyRatings struct {
	Communication *float64 `json:"communication,omitempty" validate:"omitempty,min=1,max=5"`
	Reliability   *float64 `json:"reliability,omitempty" validate:"omitempty,min=1,max=5"`
	Friendliness  *float64 `json:"friendliness,omitempty" validate:"omitempty,min=1,max=5"`
	Compatibility *float64 `json:"compatibility,omitempty" validate:"omitempty,min=1,max=5"`
}

type CarpoolRatings struct {
	Punctuality   *float64 `json:"punctuality,omitempty" validate:"omitempty,min=1,max=5"`
	Comfort       *float64 `json:"comfort,omitempty" validate:"omitempty,min=1,max=5"`
	Safety        *float64 `json:"safety,omitempty" validate:"omitempty,min=1,max=5"`
	Communication *float64 `json:"communication,omitempty" validate:"omitempty,min=1,max=5"`
}

type DriverRatings struct {
	Driving      *float64 `json:"driving,omitempty" validate:"omitempty,min=1,max=5"`
	Punctuality  *float64 `json:"punctuality,omitempty" validate:"omitempty,min=1,max=5"`
	Vehicle      *float64 `json:"vehicle,omitempty" validate:"omitempty,min=1,max=5"`
	Friendliness *float64 `json:"friendliness,omitempty" validate:"omitempty,min=1,max=5"`
}

// Ratings holds the overall score plus exactly one category block, the one
// matching the review type. Nil category fields were not rated.
type Ratings struct {
	Overall float64         `json:"overall" validate:"min=1,max=5"`
	Hotel   *HotelRatings   `json:"hotel,omitempty"`
	Buddy   *BuddyRatings   `json:"buddy,omitempty"`
	Carpool *CarpoolRatings `json:"carpool,omitempty"`
	Driver  *DriverRatings  `json:"driver,omitempty"`
}

// Variant reports which category block is set, or "" when none is.
// More than one set block is reported as the first in declaration order.
func (r Ratings) Variant() ReviewType {
	switch {
	case r.Hotel != nil:
		return ReviewHotel
	case r.Buddy != nil:
		return ReviewBuddy
	case r.Carpool != nil:
		return ReviewCarpool
	case r.Driver != nil:
		return ReviewDriver
	}
	return ""
}

func (r Ratings) blocks() int {
	n := 0
	if r.Hotel != nil {
		n++
	}
	if r.Buddy != nil {
		n++
	}
	if r.Carpool != nil {
		n++
	}
	if r.Driver != nil {
		n++
	}
	return n
}

// Matches reports whether the ratings carry no block or only the block for t.
func (r Ratings) Matches(t ReviewType) bool {
	n := r.blocks()
	return n == 0 || (n == 1 && r.Variant() == t)
}

// Categories returns the rated categories of the given variant. Unrated fields are absent.
func (r Ratings) Categories(t ReviewType) map[string]float64 {
	out := make(map[string]float64)
	put := func(name string, v *float64) {
		if v != nil {
			out[name] = *v
		}
	}
	switch t {
	case ReviewHotel:
		if h := r.Hotel; h != nil {
			put("cleanliness", h.Cleanliness)
			put("service", h.Service)
			put("value", h.Value)
			put("location", h.Location)
			put("amenities", h.Amenities)
			put("food", h.Food)
		}
	case ReviewBuddy:
		if b := r.Buddy; b != nil {
			put("communication", b.Communication)
			put("reliability", b.Reliability)
			put("friendliness", b.Friendliness)
			put("compatibility", b.Compatibility)
		}
	case ReviewCarpool:
		if c := r.Carpool; c != nil {
			put("punctuality", c.Punctuality)
			put("comfort", c.Comfort)
			put("safety", c.Safety)
			put("communication", c.Communication)
		}
	case ReviewDriver:
		if d := r.Driver; d != nil {
			put("driving", d.Driving)
			put("punctuality", d.Punctuality)
			put("vehicle", d.Vehicle)
			put("friendliness", d.Friendliness)
		}
	}
	return out
}

type ProviderResponse struct {
	ResponderID string    `json:"responderId"`
	Text        string    `json:"text"`
	RespondedAt time.Time `json:"respondedAt"`
}

type Review struct {
	ID               string            `json:"id"`
	Type             ReviewType        `json:"type"`
	TargetID         string            `json:"targetId"`
	TargetName       string            `json:"targetName,omitempty"`
	AuthorID         string            `json:"authorId"`
	AuthorName       string            `json:"authorName,omitempty"`
	Ratings          Ratings           `json:"ratings"`
	Title            string            `json:"title"`
	Comment          string            `json:"comment"`
	Pros             []string          `json:"pros,omitempty"`
	Cons             []string          `json:"cons,omitempty"`
	Tips             []string          `json:"tips,omitempty"`
	Photos           []string          `json:"photos,omitempty"`
	TripType         string            `json:"tripType,omitempty"`
	HelpfulVotes     []string          `json:"helpfulVotes"`
	NotHelpfulVotes  []string          `json:"notHelpfulVotes"`
	Verified         bool              `json:"verified"`
	VerifiedPurchase bool              `json:"verifiedPurchase"`
	ProviderResponse *ProviderResponse `json:"providerResponse,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
}

// Stars returns a pointer to v for category rating literals.
func Stars(v float64) *float64 {
	return &v
}
