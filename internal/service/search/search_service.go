package search

import (
	"strings"

	"github.com/Domenick1991/tripmate/internal/domain"
)

const DefaultLimit = 10

type Page[T any] struct {
	Items   []T  `json:"items"`
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}

// Zero or nil filter fields are not applied.
type DriverParams struct {
	From           string  `form:"from"`
	To             string  `form:"to"`
	Date           string  `form:"date"`
	MinSeats       int     `form:"minSeats"`
	MaxPrice       float64 `form:"maxPrice"`
	Verified       *bool   `form:"verified"`
	InstantBooking *bool   `form:"instantBooking"`
	MinRating      float64 `form:"minRating"`
	Page           int     `form:"page"`
	Limit          int     `form:"limit"`
}

type BuddyParams struct {
	Destination string   `form:"destination"`
	Interests   []string `form:"interests"`
	Gender      string   `form:"gender"`
	MinAge      int      `form:"minAge"`
	MaxAge      int      `form:"maxAge"`
	Budget      string   `form:"budget"`
	TravelStyle string   `form:"travelStyle"`
	Verified    *bool    `form:"verified"`
	MinRating   float64  `form:"minRating"`
	Page        int      `form:"page"`
	Limit       int      `form:"limit"`
}

type HotelParams struct {
	Destination string   `form:"destination"`
	MinRating   float64  `form:"minRating"`
	MaxPrice    float64  `form:"maxPrice"`
	Amenities   []string `form:"amenities"`
	Page        int      `form:"page"`
	Limit       int      `form:"limit"`
}

type Catalog interface {
	Drivers() []domain.CarpoolDriver
	Buddies() []domain.TravelBuddy
	Hotels() []domain.Hotel
}

type SearchUseCase interface {
	SearchDrivers(params DriverParams) Page[domain.CarpoolDriver]
	SearchTravelBuddies(params BuddyParams) Page[domain.TravelBuddy]
	SearchHotels(params HotelParams) Page[domain.Hotel]
	MatchBuddies(plan domain.TravelPlan) []BuddyMatch
}

type SearchService struct {
	catalog      Catalog
	defaultLimit int
}

type Option func(*SearchService)

func WithDefaultLimit(limit int) Option {
	return func(s *SearchService) {
		if limit > 0 {
			s.defaultLimit = limit
		}
	}
}

func NewSearchService(catalog Catalog, opts ...Option) *SearchService {
	s := &SearchService{catalog: catalog, defaultLimit: DefaultLimit}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SearchService) SearchDrivers(p DriverParams) Page[domain.CarpoolDriver] {
	matched := filter(s.catalog.Drivers(), func(d domain.CarpoolDriver) bool {
		switch {
		case p.From != "" && !strings.EqualFold(d.From, p.From):
			return false
		case p.To != "" && !strings.EqualFold(d.To, p.To):
			return false
		case p.Date != "" && d.DepartureDate != p.Date:
			return false
		case p.MinSeats > 0 && d.AvailableSeats < p.MinSeats:
			return false
		case p.MaxPrice > 0 && d.PricePerSeat > p.MaxPrice:
			return false
		case p.Verified != nil && d.Verified != *p.Verified:
			return false
		case p.InstantBooking != nil && d.InstantBooking != *p.InstantBooking:
			return false
		case d.Rating < p.MinRating:
			return false
		}
		return true
	})
	return paginate(matched, p.Page, s.limit(p.Limit))
}

func (s *SearchService) SearchTravelBuddies(p BuddyParams) Page[domain.TravelBuddy] {
	matched := filter(s.catalog.Buddies(), func(b domain.TravelBuddy) bool {
		switch {
		case p.Destination != "" && !strings.EqualFold(b.Destination, p.Destination):
			return false
		case len(p.Interests) > 0 && shared(p.Interests, b.Interests) == 0:
			return false
		case p.Gender != "" && !strings.EqualFold(b.Gender, p.Gender):
			return false
		case p.MinAge > 0 && b.Age < p.MinAge:
			return false
		case p.MaxAge > 0 && b.Age > p.MaxAge:
			return false
		case p.Budget != "" && b.BudgetRange != p.Budget:
			return false
		case p.TravelStyle != "" && b.TravelStyle != p.TravelStyle:
			return false
		case p.Verified != nil && b.Verified != *p.Verified:
			return false
		case b.Rating < p.MinRating:
			return false
		}
		return true
	})
	return paginate(matched, p.Page, s.limit(p.Limit))
}

func (s *SearchService) SearchHotels(p HotelParams) Page[domain.Hotel] {
	matched := filter(s.catalog.Hotels(), func(h domain.Hotel) bool {
		switch {
		case p.Destination != "" && !strings.EqualFold(h.Destination, p.Destination):
			return false
		case h.Rating < p.MinRating:
			return false
		case p.MaxPrice > 0 && h.PricePerNight > p.MaxPrice:
			return false
		case len(p.Amenities) > 0 && shared(p.Amenities, h.Amenities) == 0:
			return false
		}
		return true
	})
	return paginate(matched, p.Page, s.limit(p.Limit))
}

// MatchBuddies scores every catalog buddy against plan and keeps the qualifying ones.
func (s *SearchService) MatchBuddies(plan domain.TravelPlan) []BuddyMatch {
	buddies := s.catalog.Buddies()
	byID := make(map[string]domain.TravelBuddy, len(buddies))
	candidates := make([]domain.TravelPlan, 0, len(buddies))
	for _, b := range buddies {
		byID[b.ID] = b
		candidates = append(candidates, PlanFromBuddy(b))
	}

	scored := FindTravelMatches(plan, candidates)
	out := make([]BuddyMatch, 0, len(scored))
	for _, m := range scored {
		out = append(out, BuddyMatch{Buddy: byID[m.Plan.UserID], Score: m.Score})
	}
	return out
}

func (s *SearchService) limit(requested int) int {
	if requested <= 0 {
		return s.defaultLimit
	}
	return requested
}

func paginate[T any](all []T, page, limit int) Page[T] {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	total := len(all)
	// Clamped so (page-1)*limit cannot overflow.
	limit = min(limit, max(total, 1))
	start := total
	if pages := (total + limit - 1) / limit; page-1 < pages {
		start = (page - 1) * limit
	}
	end := start + min(limit, total-start)

	items := make([]T, end-start)
	copy(items, all[start:end])
	return Page[T]{Items: items, Total: total, HasMore: end < total}
}

func filter[T any](all []T, keep func(T) bool) []T {
	out := make([]T, 0, len(all))
	for _, v := range all {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// shared counts the distinct values of want present in have.
func shared(want, have []string) int {
	set := make(map[string]struct{}, len(have))
	for _, v := range have {
		set[v] = struct{}{}
	}
	n := 0
	seen := make(map[string]struct{}, len(want))
	for _, v := range want {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if _, ok := set[v]; ok {
			n++
		}
	}
	return n
}

var _ SearchUseCase = (*SearchService)(nil)
