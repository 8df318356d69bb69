package services

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"tripdesk/internal/models/request_models"
	"tripdesk/pkg/utils"
)

type FeedbackServiceInterface interface {
	SubmitMessage(ctx context.Context, req request_models.FeedbackMessageRequest) error
	SubmitSurvey(ctx context.Context, req request_models.FeedbackSurveyRequest) error
}

type FeedbackService struct {
	api PlanAPIInterface
	log *logrus.Logger
}

func NewFeedbackService(api PlanAPIInterface, logger *logrus.Logger) FeedbackServiceInterface {
	return &FeedbackService{api: api, log: logger}
}

// SubmitMessage validates and forwards the short feedback form.
func (s *FeedbackService) SubmitMessage(ctx context.Context, req request_models.FeedbackMessageRequest) error {
	if err := validateStruct(req, feedbackFieldMessage); err != nil {
		return err
	}
	return s.api.SendFeedback(ctx, req)
}

// SubmitSurvey validates and forwards the long survey. The one extra
// check outside tag validation: the one-word answer really is one word.
func (s *FeedbackService) SubmitSurvey(ctx context.Context, req request_models.FeedbackSurveyRequest) error {
	if err := validateStruct(req, feedbackFieldMessage); err != nil {
		return err
	}
	if len(strings.Fields(req.OneWord)) != 1 {
		return utils.NewValidationError("one_word", "Answer with a single word.")
	}
	return s.api.SendFeedback(ctx, req)
}

func feedbackFieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "email":
		if fe.Tag() == "required" {
			return "Email is required."
		}
		return "Enter a valid email."
	case "message":
		if fe.Tag() == "required" {
			return "Message is required."
		}
		return "Message must be at least 10 characters."
	case "rating":
		return "Rating must be between 1 and 10."
	}
	switch fe.Tag() {
	case "required":
		return "This question is required."
	case "oneof":
		return "Choose one of the offered answers."
	case "min":
		return "Answer must be at least 10 characters."
	}
	return "Invalid value."
}
