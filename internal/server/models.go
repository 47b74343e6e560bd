package server

import (
	"fmt"
	"time"

	"github.com/voyago/tripagent/internal/trip"
)

// PlanRequest is the JSON body of the plan endpoint.
type PlanRequest struct {
	Country           string   `json:"country"`
	Interests         []string `json:"interests"`
	DepartureDate     string   `json:"departure_date"`
	ReturnDate        string   `json:"return_date"`
	TravelStyle       string   `json:"travel_style"`
	TripType          string   `json:"trip_type"`
	AgeGroup          string   `json:"age_group"`
	AccommodationType string   `json:"accommodation_type"`
}

// PlanResponse carries the generated itinerary.
type PlanResponse struct {
	FinalResult string `json:"final_result"`
}

var (
	travelStyles = map[string]bool{"budget": true, "luxury": true, "adventure": true, "relaxation": true}
	tripTypes    = map[string]bool{"solo": true, "friends": true, "family": true}
	ageGroups    = map[string]bool{"child": true, "teen": true, "adult": true, "senior": true}
	accomTypes   = map[string]bool{"hotel": true, "hostel": true, "apartment": true, "bnb": true, "camping": true}
)

// Validate checks the closed sets and date shapes. The pipeline itself trusts
// its input, so this is the only place invalid preferences are rejected.
func (r *PlanRequest) Validate() error {
	if r.Country == "" {
		return fmt.Errorf("country is required")
	}
	if !travelStyles[r.TravelStyle] {
		return fmt.Errorf("travel_style must be one of budget, luxury, adventure, relaxation")
	}
	if !tripTypes[r.TripType] {
		return fmt.Errorf("trip_type must be one of solo, friends, family")
	}
	if !ageGroups[r.AgeGroup] {
		return fmt.Errorf("age_group must be one of child, teen, adult, senior")
	}
	if !accomTypes[r.AccommodationType] {
		return fmt.Errorf("accommodation_type must be one of hotel, hostel, apartment, bnb, camping")
	}
	for _, field := range []struct{ name, value string }{
		{"departure_date", r.DepartureDate},
		{"return_date", r.ReturnDate},
	} {
		if _, err := time.Parse("2006-01-02", field.value); err != nil {
			return fmt.Errorf("%s must be a YYYY-MM-DD date", field.name)
		}
	}
	return nil
}

// ToTripRequest maps an already-validated body to the pipeline's input record.
func (r *PlanRequest) ToTripRequest() trip.Request {
	return trip.Request{
		Country:           r.Country,
		Interests:         r.Interests,
		DepartureDate:     r.DepartureDate,
		ReturnDate:        r.ReturnDate,
		TravelStyle:       trip.TravelStyle(r.TravelStyle),
		TripType:          trip.TripType(r.TripType),
		AgeGroup:          trip.AgeGroup(r.AgeGroup),
		AccommodationType: trip.AccommodationType(r.AccommodationType),
	}
}
