package services

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"tripdesk/internal/models/request_models"
	"tripdesk/pkg/utils"
)

var validate = newValidator()

const dateLayout = "2006-01-02"

// newValidator reports field names by json tag so error maps line up
// with the wire format.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// ValidateTripRequest runs every field check before anything touches
// the network layer. Fields are trimmed in place so the request sent
// upstream matches what was validated.
func ValidateTripRequest(req *request_models.TripRequest) error {
	req.Destination = strings.TrimSpace(req.Destination)
	req.Passport = strings.TrimSpace(req.Passport)
	req.StartDate = strings.TrimSpace(req.StartDate)
	req.EndDate = strings.TrimSpace(req.EndDate)

	fields := map[string]string{}
	if err := validate.Struct(req); err != nil {
		var vErrs validator.ValidationErrors
		if !errors.As(err, &vErrs) {
			return err
		}
		for _, fe := range vErrs {
			fields[fe.Field()] = tripFieldMessage(fe.Field())
		}
	}

	start, startErr := time.Parse(dateLayout, req.StartDate)
	end, endErr := time.Parse(dateLayout, req.EndDate)
	if req.StartDate != "" && startErr != nil {
		fields["start_date"] = "Start date is invalid."
	}
	if req.EndDate != "" && endErr != nil {
		fields["end_date"] = "End date is invalid."
	}
	if startErr == nil && endErr == nil && start.After(end) {
		fields["start_date"] = "Start date cannot be after end date."
	}

	if len(fields) > 0 {
		return &utils.ValidationError{Fields: fields}
	}
	return nil
}

func tripFieldMessage(field string) string {
	switch field {
	case "destination":
		return "Destination is required."
	case "passport":
		return "Passport / Citizenship is required."
	case "start_date":
		return "Start date is required."
	case "end_date":
		return "End date is required."
	case "budget":
		return "Budget must be greater than 0."
	}
	return "Invalid value."
}

// validateStruct runs tag validation and collects failures keyed by
// json field name, one message per field.
func validateStruct(value any, message func(fe validator.FieldError) string) error {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}

	fields := map[string]string{}
	for _, fe := range vErrs {
		fields[fe.Field()] = message(fe)
	}
	return &utils.ValidationError{Fields: fields}
}
