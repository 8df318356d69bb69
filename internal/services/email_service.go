package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"tripdesk/internal/models/request_models"
	"tripdesk/internal/report"
)

type EmailServiceInterface interface {
	SendPlan(ctx context.Context, req request_models.SendEmailRequest) error
}

// EmailService delivers a plan to an address. With SMTP configured it
// renders the PDF locally and mails it directly; otherwise the request
// is proxied to the planning API's sendEmail endpoint.
type EmailService struct {
	api  PlanAPIInterface
	mail IMailService
	log  *logrus.Logger
}

func NewEmailService(api PlanAPIInterface, mail IMailService, logger *logrus.Logger) EmailServiceInterface {
	return &EmailService{api: api, mail: mail, log: logger}
}

func (s *EmailService) SendPlan(ctx context.Context, req request_models.SendEmailRequest) error {
	if err := validateStruct(req, emailFieldMessage); err != nil {
		return err
	}

	if s.mail != nil && s.mail.Enabled() {
		pdf, err := report.Render(&req.Data)
		if err != nil {
			return err
		}
		s.log.WithField("to", req.Email).Info("mailing plan report over smtp")
		return s.mail.SendPlanReport(req.Email, pdf)
	}
	return s.api.SendPlanEmail(ctx, req.Email, req.Data)
}

func emailFieldMessage(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return "Email is required."
	}
	return "Enter a valid email."
}
