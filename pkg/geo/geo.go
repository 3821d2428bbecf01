// Package geo parses decimal-degree coordinates and measures great-circle
// distances between them.
//
// Distances are computed with the Haversine formula on a sphere of radius
// 6371 km. Longitude wraparound at the antimeridian is not normalised: points
// are compared with their raw longitudes.
package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/umahmood/haversine"

	"wasteCollect/pkg/e"
)

const EarthRadiusKM = 6371.0

type Kind string

const (
	Latitude  Kind = "latitude"
	Longitude Kind = "longitude"
)

func (k Kind) bound() float64 {
	if k == Latitude {
		return 90
	}
	return 180
}

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ParseCoordinate converts a decimal-degree string into a number and checks it
// against the bounds of its kind. Every failure wraps e.ErrInvalidCoordinates.
func ParseCoordinate(value string, kind Kind) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("%s is required: %w", kind, e.ErrInvalidCoordinates)
	}

	n, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("Invalid %s: must be a valid number: %w", kind, e.ErrInvalidCoordinates)
	}

	b := kind.bound()
	if n < -b || n > b {
		return 0, fmt.Errorf("Invalid %s: must be between %d and %d: %w", kind, int(-b), int(b), e.ErrInvalidCoordinates)
	}
	return n, nil
}

func ParsePoint(lat, lng string) (Point, error) {
	la, err := ParseCoordinate(lat, Latitude)
	if err != nil {
		return Point{}, err
	}
	lo, err := ParseCoordinate(lng, Longitude)
	if err != nil {
		return Point{}, err
	}
	return Point{Lat: la, Lng: lo}, nil
}

// Distance returns the Haversine distance in kilometres.
func Distance(a, b Point) float64 {
	if a == b {
		return 0
	}
	_, km := haversine.Distance(
		haversine.Coord{Lat: a.Lat, Lon: a.Lng},
		haversine.Coord{Lat: b.Lat, Lon: b.Lng},
	)
	// rounding can push the haversine term past 1 for antipodal points,
	// which yields NaN from sqrt(1-a); the true angle there is pi.
	if math.IsNaN(km) {
		return math.Pi * EarthRadiusKM
	}
	if km < 0 {
		return 0
	}
	return km
}

// CalculateDistance parses both coordinate pairs and returns the distance
// between them in kilometres.
func CalculateDistance(lat1, lon1, lat2, lon2 string) (float64, error) {
	p1, err := ParsePoint(lat1, lon1)
	if err != nil {
		return 0, err
	}
	p2, err := ParsePoint(lat2, lon2)
	if err != nil {
		return 0, err
	}
	return Distance(p1, p2), nil
}

// ValidateFormat reports every problem with an optional coordinate pair
// without stopping at the first one.
func ValidateFormat(lat, lng string) []string {
	var problems []string
	if lat != "" {
		if _, err := ParseCoordinate(lat, Latitude); err != nil {
			problems = append(problems, Message(err))
		}
	}
	if lng != "" {
		if _, err := ParseCoordinate(lng, Longitude); err != nil {
			problems = append(problems, Message(err))
		}
	}
	return problems
}

// Message strips the sentinel suffix from a coordinate error.
func Message(err error) string {
	msg := err.Error()
	return strings.TrimSuffix(msg, ": "+e.ErrInvalidCoordinates.Error())
}
