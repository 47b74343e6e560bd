package trip

import (
	"fmt"
	"strings"
)

// BuildQueries derives the research queries for a request. It always emits the
// accommodation and things-to-do queries, plus a third interest-specific query
// when interests are present. Order is fixed: it determines the order results
// are appended during research.
func BuildQueries(req Request) []string {
	topInterests := req.Interests
	if len(topInterests) > 2 {
		topInterests = topInterests[:2]
	}

	queries := []string{
		fmt.Sprintf("best %s %s in %s 2025", req.TravelStyle, req.AccommodationType, req.Country),
		fmt.Sprintf("top things to do in %s for %s", req.Country, strings.Join(topInterests, ", ")),
	}

	if len(req.Interests) > 0 {
		queries = append(queries, fmt.Sprintf("%s %s recommendations %s",
			req.Country, req.Interests[0], departureYear(req.DepartureDate)))
	}

	return queries
}

// departureYear is the 4-digit year prefix of a YYYY-MM-DD date string.
func departureYear(date string) string {
	if len(date) < 4 {
		return date
	}
	return date[:4]
}
