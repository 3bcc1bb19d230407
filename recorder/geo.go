package recorder

import (
	"math"
)

// EarthRadius in meters.
const EarthRadius = 6371000.0

// MetersPerDegree converts the GPS-return threshold from degrees to meters.
// It is the latitude length of one degree and ignores the longitude
// shrinkage away from the equator; lap detection in the field is tuned
// against this value.
const MetersPerDegree = 111000.0

// Haversine returns the great-circle distance in meters between two points
// given in decimal degrees.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadius * c
}

func DegreesToMeters(deg float64) float64 {
	return deg * MetersPerDegree
}
