package request_models

import "tripdesk/internal/models/response_models"

// SendEmailRequest asks for the plan in Data to be delivered to Email,
// matching the /travel/sendEmail contract.
type SendEmailRequest struct {
	Email string                     `json:"email" validate:"required,email"`
	Data  response_models.PlanResult `json:"data"`
}
