package utils

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

const (
	ErrValidationFailed = "validation failed"
	ErrInternalServer   = "internal server error"
)

const (
	EarthRadiusKM = 6371.0

	// DefaultCitySpeedKMH is the assumed average speed when an ambulance has
	// not reported one.
	DefaultCitySpeedKMH = 30.0

	// DefaultETAMinutes is used when the assigned ambulance has no known
	// position to estimate from.
	DefaultETAMinutes = 8
)
