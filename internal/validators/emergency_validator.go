package validators

type CreateEmergencyRequest struct {
	Type     string          `json:"type" validate:"required,oneof=Cardiac Injury Respiratory Other"`
	Location LocationRequest `json:"location" validate:"required"`
	Patient  PatientRequest  `json:"patient" validate:"required"`
}

type LocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Address   string   `json:"address" validate:"required"`
}

type PatientRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Notes       string `json:"notes" validate:"omitempty,max=1000"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Dispatched EnRoute Arrived Completed Cancelled"`
}

func ValidateCreateEmergency(req *CreateEmergencyRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateStatusUpdate(req *StatusUpdateRequest) ValidationErrors {
	return ValidateStruct(req)
}
