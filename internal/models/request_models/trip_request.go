package request_models

// TripRequest carries the trip parameters exactly as the planning API
// expects them. Dates are "2006-01-02" strings on the wire; the
// planner service validates format and ordering before anything is
// sent.
type TripRequest struct {
	Destination string  `json:"destination" validate:"required"`
	Passport    string  `json:"passport" validate:"required"`
	StartDate   string  `json:"start_date" validate:"required"`
	EndDate     string  `json:"end_date" validate:"required"`
	Budget      float64 `json:"budget" validate:"required,gt=0"`
}
