package domain

type Role string

const (
	RoleTraveler Role = "traveler"
	RoleProvider Role = "provider"
)

type User struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone,omitempty"`
	Role        Role     `json:"role"`
	Avatar      string   `json:"avatar,omitempty"`
	OwnedHotels []string `json:"ownedHotels,omitempty"`
}

// Owns reports whether the user is the provider of the hotel.
func (u User) Owns(hotelID string) bool {
	if u.Role != RoleProvider {
		return false
	}
	for _, id := range u.OwnedHotels {
		if id == hotelID {
			return true
		}
	}
	return false
}
