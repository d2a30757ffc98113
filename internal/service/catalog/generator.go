package catalog

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/Domenick1991/tripmate/internal/domain"
)

type Counts struct {
	Drivers int
	Buddies int
	Hotels  int
}

var (
	firstNames = []string{"Aarav", "Priya", "Rohan", "Ananya", "Vikram", "Sneha", "Arjun", "Kavya", "Rahul", "Isha",
		"Karan", "Meera", "Aditya", "Nisha", "Siddharth", "Pooja", "Nikhil", "Riya", "Manish", "Tara"}
	lastNames = []string{"Sharma", "Patel", "Reddy", "Iyer", "Singh", "Gupta", "Nair", "Das", "Mehta", "Kapoor",
		"Joshi", "Rao", "Bose", "Khan", "Verma"}
	cities = []string{"Mumbai", "Delhi", "Bangalore", "Pune", "Chennai", "Hyderabad", "Jaipur", "Goa", "Kolkata",
		"Ahmedabad", "Manali", "Rishikesh", "Udaipur", "Kochi", "Shimla"}
	cars = []string{"Maruti Swift", "Hyundai Creta", "Honda City", "Toyota Innova", "Tata Nexon", "Mahindra XUV700",
		"Kia Seltos", "Maruti Ertiga"}
	carAmenities = []string{"AC", "Music", "Phone Charger", "WiFi", "Water Bottles", "Snacks", "Extra Legroom"}
	interests    = []string{"Adventure", "Photography", "Food", "Culture", "Nature", "Beaches", "Trekking", "History",
		"Nightlife", "Shopping", "Yoga", "Wildlife", "Music", "Art"}
	travelStyles  = []string{"Backpacker", "Luxury", "Budget", "Adventure", "Cultural", "Relaxed"}
	budgetRanges  = []string{"Budget", "Mid-range", "Luxury"}
	languages     = []string{"English", "Hindi", "Tamil", "Telugu", "Marathi", "Bengali", "Kannada", "Gujarati"}
	genders       = []string{"male", "female", "other"}
	hotelPrefixes = []string{"Grand", "Royal", "Sea View", "Hilltop", "Heritage", "Lakeside", "Palm", "Urban"}
	hotelSuffixes = []string{"Resort", "Inn", "Palace", "Suites", "Retreat", "Residency"}
	hotelAmenity  = []string{"WiFi", "Pool", "Spa", "Gym", "Restaurant", "Parking", "Room Service", "Bar", "Airport Shuttle"}
	roomTypes     = []string{"Standard", "Deluxe", "Suite", "Family"}
	bios          = []string{
		"Weekend explorer looking for company on the next trip.",
		"Love slow travel, street food and long conversations.",
		"Planning a trek and would like a reliable partner.",
		"Photographer chasing sunrises across the country.",
	}
)

// epoch anchors generated dates so a seed always yields the same calendar.
var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// Generate builds a catalog from seed. The same seed and counts always produce the same catalog.
func Generate(seed uint64, counts Counts) *Catalog {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	drivers := make([]domain.CarpoolDriver, 0, counts.Drivers)
	for i := 0; i < counts.Drivers; i++ {
		drivers = append(drivers, genDriver(r, i))
	}
	buddies := make([]domain.TravelBuddy, 0, counts.Buddies)
	for i := 0; i < counts.Buddies; i++ {
		buddies = append(buddies, genBuddy(r, i))
	}
	hotels := make([]domain.Hotel, 0, counts.Hotels)
	for i := 0; i < counts.Hotels; i++ {
		hotels = append(hotels, genHotel(r, i))
	}
	return New(drivers, buddies, hotels)
}

func genDriver(r *rand.Rand, i int) domain.CarpoolDriver {
	from := pick(r, cities)
	to := pick(r, cities)
	for to == from {
		to = pick(r, cities)
	}
	name := personName(r)
	return domain.CarpoolDriver{
		ID:             fmt.Sprintf("driver-%d", i+1),
		Name:           name,
		Avatar:         avatar(name),
		Rating:         round1(3.5 + r.Float64()*1.5),
		ReviewCount:    10 + r.IntN(490),
		Verified:       r.Float64() < 0.8,
		InstantBooking: r.Float64() < 0.6,
		From:           from,
		To:             to,
		DepartureDate:  day(r.IntN(60)),
		DepartureTime:  fmt.Sprintf("%02d:%02d", 5+r.IntN(17), 15*r.IntN(4)),
		AvailableSeats: 1 + r.IntN(4),
		PricePerSeat:   float64(200 + 50*r.IntN(30)),
		Car:            pick(r, cars),
		Amenities:      sample(r, carAmenities, 1+r.IntN(4)),
		Preferences: domain.DriverPreferences{
			Smoking: r.Float64() < 0.1,
			Pets:    r.Float64() < 0.3,
			Music:   r.Float64() < 0.7,
		},
	}
}

func genBuddy(r *rand.Rand, i int) domain.TravelBuddy {
	start := r.IntN(90)
	name := personName(r)
	return domain.TravelBuddy{
		ID:          fmt.Sprintf("buddy-%d", i+1),
		Name:        name,
		Age:         18 + r.IntN(40),
		Gender:      pick(r, genders),
		Avatar:      avatar(name),
		Location:    pick(r, cities),
		Destination: pick(r, cities),
		StartDate:   day(start),
		EndDate:     day(start + 2 + r.IntN(12)),
		Interests:   sample(r, interests, 2+r.IntN(5)),
		TravelStyle: pick(r, travelStyles),
		BudgetRange: pick(r, budgetRanges),
		Languages:   sample(r, languages, 1+r.IntN(3)),
		Rating:      round1(3.8 + r.Float64()*1.2),
		Verified:    r.Float64() < 0.7,
		Bio:         pick(r, bios),
	}
}

func genHotel(r *rand.Rand, i int) domain.Hotel {
	return domain.Hotel{
		ID:            fmt.Sprintf("hotel-%d", i+1),
		Name:          pick(r, hotelPrefixes) + " " + pick(r, hotelSuffixes),
		Destination:   pick(r, cities),
		Rating:        round1(3 + r.Float64()*2),
		PricePerNight: float64(1500 + 250*r.IntN(60)),
		Amenities:     sample(r, hotelAmenity, 3+r.IntN(5)),
		RoomTypes:     sample(r, roomTypes, 1+r.IntN(len(roomTypes))),
	}
}

func pick(r *rand.Rand, from []string) string {
	return from[r.IntN(len(from))]
}

// sample returns n distinct elements of from, in catalog order.
func sample(r *rand.Rand, from []string, n int) []string {
	if n > len(from) {
		n = len(from)
	}
	idx := r.Perm(len(from))[:n]
	chosen := make([]bool, len(from))
	for _, i := range idx {
		chosen[i] = true
	}
	out := make([]string, 0, n)
	for i, v := range from {
		if chosen[i] {
			out = append(out, v)
		}
	}
	return out
}

func personName(r *rand.Rand) string {
	return pick(r, firstNames) + " " + pick(r, lastNames)
}

func avatar(name string) string {
	return "https://ui-avatars.com/api/?name=" + urlName(name)
}

func urlName(name string) string {
	out := []byte(name)
	for i, c := range out {
		if c == ' ' {
			out[i] = '+'
		}
	}
	return string(out)
}

func day(offset int) string {
	return epoch.AddDate(0, 0, offset).Format(DateLayout)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
