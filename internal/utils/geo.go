package utils

import (
	"fmt"
	"math"
)

// CalculateDistance returns the great-circle distance in kilometers between
// two coordinates, rounded to one decimal place.
func CalculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	return math.Round(haversineDistance(lat1, lon1, lat2, lon2)*10) / 10
}

func haversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180

	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKM * c
}

// FormatDistanceKM renders a distance the way the nearby-hospitals API
// reports it, e.g. "2.3 km".
func FormatDistanceKM(distanceKM float64) string {
	return fmt.Sprintf("%.1f km", distanceKM)
}

// EstimateETAMinutes converts a distance into an arrival estimate, assuming
// a city average when no speed is known. Always at least one minute.
func EstimateETAMinutes(distanceKM float64, averageSpeedKMH float64) int {
	if averageSpeedKMH <= 0 {
		averageSpeedKMH = DefaultCitySpeedKMH
	}

	timeMinutes := distanceKM / averageSpeedKMH * 60

	eta := int(math.Ceil(timeMinutes))
	if eta < 1 {
		eta = 1
	}
	return eta
}
