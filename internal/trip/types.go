package trip

// TravelStyle is how the traveler wants to spend.
type TravelStyle string

const (
	StyleBudget     TravelStyle = "budget"
	StyleLuxury     TravelStyle = "luxury"
	StyleAdventure  TravelStyle = "adventure"
	StyleRelaxation TravelStyle = "relaxation"
)

// TripType is who the traveler is going with.
type TripType string

const (
	TripSolo    TripType = "solo"
	TripFriends TripType = "friends"
	TripFamily  TripType = "family"
)

// AgeGroup is the traveler's age band.
type AgeGroup string

const (
	AgeChild  AgeGroup = "child"
	AgeTeen   AgeGroup = "teen"
	AgeAdult  AgeGroup = "adult"
	AgeSenior AgeGroup = "senior"
)

// AccommodationType is where the traveler wants to stay.
type AccommodationType string

const (
	AccommodationHotel     AccommodationType = "hotel"
	AccommodationHostel    AccommodationType = "hostel"
	AccommodationApartment AccommodationType = "apartment"
	AccommodationBnB       AccommodationType = "bnb"
	AccommodationCamping   AccommodationType = "camping"
)

// Request is the caller-supplied preference form. The HTTP and CLI boundaries
// validate the closed sets and date shapes before a Request reaches the
// pipeline; the pipeline trusts its input.
type Request struct {
	Country           string
	Interests         []string
	DepartureDate     string // YYYY-MM-DD
	ReturnDate        string // YYYY-MM-DD
	TravelStyle       TravelStyle
	TripType          TripType
	AgeGroup          AgeGroup
	AccommodationType AccommodationType
}

// State is the mutable record threaded through both pipeline stages. It lives
// for a single invocation; the caller reads FinalTrip and discards it.
type State struct {
	Request

	// SearchResults holds the formatted text of every search hit, or the
	// no-results sentinel. Written once, by the research stage.
	SearchResults string

	// FinalTrip holds the generated itinerary. Written once, by the
	// synthesis stage.
	FinalTrip string
}
