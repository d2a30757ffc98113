package domain

// CarpoolDriver is a read-only catalog entry offering seats on one route.
type CarpoolDriver struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Avatar         string            `json:"avatar"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"reviewCount"`
	Verified       bool              `json:"verified"`
	InstantBooking bool              `json:"instantBooking"`
	From           string            `json:"from"`
	To             string            `json:"to"`
	DepartureDate  string            `json:"departureDate"`
	DepartureTime  string            `json:"departureTime"`
	AvailableSeats int               `json:"availableSeats"`
	PricePerSeat   float64           `json:"pricePerSeat"`
	Car            string            `json:"car"`
	Amenities      []string          `json:"amenities"`
	Preferences    DriverPreferences `json:"preferences"`
}

type DriverPreferences struct {
	Smoking bool `json:"smoking"`
	Pets    bool `json:"pets"`
	Music   bool `json:"music"`
}

// TravelBuddy is a read-only catalog entry describing a potential travel companion.
type TravelBuddy struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Age         int      `json:"age"`
	Gender      string   `json:"gender"`
	Avatar      string   `json:"avatar"`
	Location    string   `json:"location"`
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Interests   []string `json:"interests"`
	TravelStyle string   `json:"travelStyle"`
	BudgetRange string   `json:"budgetRange"`
	Languages   []string `json:"languages"`
	Rating      float64  `json:"rating"`
	Verified    bool     `json:"verified"`
	Bio         string   `json:"bio"`
}

type Hotel struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Destination   string   `json:"destination"`
	Rating        float64  `json:"rating"`
	PricePerNight float64  `json:"pricePerNight"`
	Amenities     []string `json:"amenities"`
	RoomTypes     []string `json:"roomTypes"`
	ProviderID    string   `json:"providerId,omitempty"`
}

// TravelPlan is the input of travel-buddy match scoring. Dates are YYYY-MM-DD.
type TravelPlan struct {
	UserID      string   `json:"userId"`
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Budget      string   `json:"budget"`
	Interests   []string `json:"interests"`
	TravelStyle string   `json:"travelStyle"`
}
