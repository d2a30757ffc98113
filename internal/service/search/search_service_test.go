package search

import (
	"math"
	"testing"

	"github.com/Domenick1991/tripmate/internal/domain"
	"github.com/Domenick1991/tripmate/internal/service/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

func fixedCatalog() *catalog.Catalog {
	return catalog.New(
		[]domain.CarpoolDriver{
			{ID: "d1", From: "Pune", To: "Mumbai", DepartureDate: "2026-03-01", AvailableSeats: 3, PricePerSeat: 400, Verified: true, InstantBooking: true, Rating: 4.8},
			{ID: "d2", From: "Pune", To: "Mumbai", DepartureDate: "2026-03-02", AvailableSeats: 1, PricePerSeat: 300, Verified: false, Rating: 4.1},
			{ID: "d3", From: "Delhi", To: "Jaipur", DepartureDate: "2026-03-01", AvailableSeats: 4, PricePerSeat: 900, Verified: true, Rating: 3.9},
		},
		[]domain.TravelBuddy{
			{ID: "b1", Destination: "Goa", Interests: []string{"Beaches", "Food"}, Gender: "female", Age: 25, BudgetRange: "Budget", TravelStyle: "Relaxed", Verified: true, Rating: 4.5},
			{ID: "b2", Destination: "Goa", Interests: []string{"Nightlife"}, Gender: "male", Age: 31, BudgetRange: "Luxury", TravelStyle: "Luxury", Rating: 4.0},
			{ID: "b3", Destination: "Manali", Interests: []string{"Trekking", "Food"}, Gender: "male", Age: 40, BudgetRange: "Budget", TravelStyle: "Adventure", Verified: true, Rating: 4.9},
		},
		[]domain.Hotel{
			{ID: "h1", Destination: "Goa", Rating: 4.5, PricePerNight: 5000, Amenities: []string{"Pool", "WiFi"}},
			{ID: "h2", Destination: "goa", Rating: 3.5, PricePerNight: 2000, Amenities: []string{"WiFi"}},
			{ID: "h3", Destination: "Jaipur", Rating: 4.8, PricePerNight: 9000, Amenities: []string{"Spa"}},
		},
	)
}

func driverIDs(p Page[domain.CarpoolDriver]) []string {
	out := make([]string, 0, len(p.Items))
	for _, d := range p.Items {
		out = append(out, d.ID)
	}
	return out
}

func TestSearchService_SearchDrivers(t *testing.T) {
	svc := NewSearchService(fixedCatalog())

	tests := []struct {
		name   string
		params DriverParams
		want   []string
	}{
		{"no filters", DriverParams{}, []string{"d1", "d2", "d3"}},
		{"route is case insensitive", DriverParams{From: "pune", To: "MUMBAI"}, []string{"d1", "d2"}},
		{"date", DriverParams{Date: "2026-03-01"}, []string{"d1", "d3"}},
		{"min seats", DriverParams{MinSeats: 3}, []string{"d1", "d3"}},
		{"max price", DriverParams{MaxPrice: 400}, []string{"d1", "d2"}},
		{"verified false", DriverParams{Verified: boolPtr(false)}, []string{"d2"}},
		{"instant booking", DriverParams{InstantBooking: boolPtr(true)}, []string{"d1"}},
		{"min rating", DriverParams{MinRating: 4.5}, []string{"d1"}},
		{"nothing matches", DriverParams{From: "Kochi"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := svc.SearchDrivers(tt.params)
			assert.Equal(t, tt.want, driverIDs(page))
			assert.Equal(t, len(tt.want), page.Total)
			assert.False(t, page.HasMore)
		})
	}
}

func TestSearchService_SearchTravelBuddies(t *testing.T) {
	svc := NewSearchService(fixedCatalog())

	ids := func(p Page[domain.TravelBuddy]) []string {
		out := make([]string, 0, len(p.Items))
		for _, b := range p.Items {
			out = append(out, b.ID)
		}
		return out
	}

	assert.Equal(t, []string{"b1", "b3"}, ids(svc.SearchTravelBuddies(BuddyParams{Interests: []string{"Food", "Yoga"}})),
		"one shared interest is enough")
	assert.Equal(t, []string{"b1", "b2"}, ids(svc.SearchTravelBuddies(BuddyParams{Destination: "goa"})))
	assert.Equal(t, []string{"b2", "b3"}, ids(svc.SearchTravelBuddies(BuddyParams{Gender: "male"})))
	assert.Equal(t, []string{"b2"}, ids(svc.SearchTravelBuddies(BuddyParams{MinAge: 30, MaxAge: 35})))
	assert.Equal(t, []string{"b1", "b3"}, ids(svc.SearchTravelBuddies(BuddyParams{Budget: "Budget"})))
	assert.Equal(t, []string{"b3"}, ids(svc.SearchTravelBuddies(BuddyParams{TravelStyle: "Adventure"})))
	assert.Equal(t, []string{"b1", "b3"}, ids(svc.SearchTravelBuddies(BuddyParams{Verified: boolPtr(true)})))
	assert.Equal(t, []string{"b3"}, ids(svc.SearchTravelBuddies(BuddyParams{MinRating: 4.6})))
}

func TestSearchService_SearchHotels(t *testing.T) {
	svc := NewSearchService(fixedCatalog())

	page := svc.SearchHotels(HotelParams{Destination: "Goa"})
	assert.Equal(t, 2, page.Total)

	page = svc.SearchHotels(HotelParams{Destination: "Goa", MaxPrice: 3000})
	require.Len(t, page.Items, 1)
	assert.Equal(t, "h2", page.Items[0].ID)

	page = svc.SearchHotels(HotelParams{Amenities: []string{"Spa", "Pool"}, MinRating: 4})
	assert.Equal(t, 2, page.Total)
}

func TestSearchService_PaginationCoversFilteredSetOnce(t *testing.T) {
	cat := catalog.Generate(42, catalog.Counts{Drivers: 137, Buddies: 91})
	svc := NewSearchService(cat)

	for _, limit := range []int{1, 7, 10, 50, 137, 500} {
		for _, params := range []BuddyParams{{}, {Budget: "Budget"}, {Interests: []string{"Food", "Art"}}} {
			full := svc.SearchTravelBuddies(BuddyParams{Budget: params.Budget, Interests: params.Interests, Limit: 10000})

			var collected []domain.TravelBuddy
			for page := 1; ; page++ {
				params.Page, params.Limit = page, limit
				got := svc.SearchTravelBuddies(params)
				assert.Equal(t, full.Total, got.Total)
				collected = append(collected, got.Items...)
				if !got.HasMore {
					assert.Equal(t, len(full.Items), len(collected), "hasMore is false exactly on the last page")
					break
				}
				require.NotEmpty(t, got.Items)
			}
			assert.Equal(t, full.Items, append([]domain.TravelBuddy{}, collected...))
		}
	}
}

func TestSearchService_PaginationDefaults(t *testing.T) {
	cat := catalog.Generate(1, catalog.Counts{Drivers: 25})

	page := NewSearchService(cat).SearchDrivers(DriverParams{Page: -3})
	assert.Len(t, page.Items, DefaultLimit)
	assert.Equal(t, 25, page.Total)
	assert.True(t, page.HasMore)

	page = NewSearchService(cat, WithDefaultLimit(20)).SearchDrivers(DriverParams{Page: 2})
	assert.Len(t, page.Items, 5)
	assert.False(t, page.HasMore)

	page = NewSearchService(cat).SearchDrivers(DriverParams{Page: 9})
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasMore)
}

func TestSearchService_PaginationExtremeValues(t *testing.T) {
	svc := NewSearchService(catalog.Generate(3, catalog.Counts{Drivers: 23, Hotels: 4}))

	tests := []struct {
		name      string
		page      int
		limit     int
		wantItems int
		wantMore  bool
	}{
		{"huge limit first page", 1, math.MaxInt, 23, false},
		{"huge limit second page", 2, math.MaxInt, 0, false},
		{"huge page", math.MaxInt, 10, 0, false},
		{"huge page and limit", math.MaxInt, math.MaxInt, 0, false},
		{"half max limit third page", 3, math.MaxInt/2 + 1, 0, false},
		{"limit equals total", 1, 23, 23, false},
		{"last partial page", 3, 10, 3, false},
		{"page past the end", 4, 10, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var page Page[domain.CarpoolDriver]
			require.NotPanics(t, func() {
				page = svc.SearchDrivers(DriverParams{Page: tt.page, Limit: tt.limit})
			})
			assert.Len(t, page.Items, tt.wantItems)
			assert.Equal(t, 23, page.Total)
			assert.Equal(t, tt.wantMore, page.HasMore)
		})
	}

	empty := svc.SearchHotels(HotelParams{Destination: "Atlantis", Page: 2, Limit: math.MaxInt})
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)
	assert.Zero(t, empty.Total)
}

func TestSearchService_DriverPagesReassembleCatalog(t *testing.T) {
	cat := catalog.Generate(99, catalog.Counts{Drivers: 101})
	svc := NewSearchService(cat)

	for _, limit := range []int{3, 9, 13, 100, 102} {
		var collected []domain.CarpoolDriver
		pages := 0
		for page := 1; ; page++ {
			got := svc.SearchDrivers(DriverParams{Page: page, Limit: limit})
			collected = append(collected, got.Items...)
			pages++
			if !got.HasMore {
				break
			}
		}
		assert.Equal(t, (101+limit-1)/limit, pages, "limit %d", limit)
		assert.Equal(t, cat.Drivers(), collected, "limit %d", limit)
	}
}

func TestSearchService_Deterministic(t *testing.T) {
	svc := NewSearchService(catalog.Generate(5, catalog.Counts{Drivers: 40}))
	p := DriverParams{MinSeats: 2, Page: 2, Limit: 5}
	assert.Equal(t, svc.SearchDrivers(p), svc.SearchDrivers(p))
}

func TestSearchService_MatchBuddies(t *testing.T) {
	svc := NewSearchService(fixedCatalog())

	matches := svc.MatchBuddies(domain.TravelPlan{
		Destination: "Goa",
		Budget:      "Budget",
		Interests:   []string{"Beaches"},
		TravelStyle: "Relaxed",
	})

	require.Len(t, matches, 1)
	assert.Equal(t, "b1", matches[0].Buddy.ID)
	assert.Equal(t, 40+15+2+10, matches[0].Score)
}
