package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDistanceZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, CalculateDistance(34.05, -118.24, 34.05, -118.24))
}

func TestCalculateDistanceSymmetric(t *testing.T) {
	d1 := CalculateDistance(34.0522, -118.2437, 40.7128, -74.0060)
	d2 := CalculateDistance(40.7128, -74.0060, 34.0522, -118.2437)
	assert.Equal(t, d1, d2)
}

func TestCalculateDistanceKnownValue(t *testing.T) {
	// LA to NYC is roughly 3936 km great-circle.
	d := CalculateDistance(34.0522, -118.2437, 40.7128, -74.0060)
	assert.InDelta(t, 3936, d, 10)
}

func TestCalculateDistanceRoundedToOneDecimal(t *testing.T) {
	d := CalculateDistance(34.0522, -118.2437, 34.0548, -118.2456)
	assert.Equal(t, math.Round(d*10)/10, d)
}

func TestFormatDistanceKM(t *testing.T) {
	assert.Equal(t, "2.3 km", FormatDistanceKM(2.3))
	assert.Equal(t, "0.0 km", FormatDistanceKM(0))
}

func TestEstimateETAMinutes(t *testing.T) {
	// 30 km at 60 km/h is half an hour.
	assert.Equal(t, 30, EstimateETAMinutes(30, 60))

	// Unknown speed falls back to the city average.
	assert.Equal(t, 2, EstimateETAMinutes(1, 0))

	// Never less than a minute, even next door.
	assert.Equal(t, 1, EstimateETAMinutes(0, 60))
}
