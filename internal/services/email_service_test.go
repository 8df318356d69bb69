package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"tripdesk/internal/models/request_models"
	"tripdesk/internal/models/response_models"
	"tripdesk/pkg/utils"
)

type stubMailService struct {
	enabled bool
	to      string
	pdf     []byte
}

func (s *stubMailService) Enabled() bool { return s.enabled }

func (s *stubMailService) SendPlanReport(to string, pdf []byte) error {
	s.to = to
	s.pdf = pdf
	return nil
}

func TestSendPlanValidatesEmail(t *testing.T) {
	cases := []struct {
		name  string
		email string
		want  string
	}{
		{name: "missing email", email: "", want: "Email is required."},
		{name: "bad email", email: "not-an-email", want: "Enter a valid email."},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			api := &stubPlanAPI{}
			svc := NewEmailService(api, &stubMailService{}, quietLogger())

			err := svc.SendPlan(context.Background(), request_models.SendEmailRequest{Email: c.email})
			var vErr *utils.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if got := vErr.Fields["email"]; got != c.want {
				t.Errorf("email message = %q, want %q", got, c.want)
			}
			if api.emailedTo != "" {
				t.Error("invalid request must not reach the upstream")
			}
		})
	}
}

func TestSendPlanProxiesWithoutSMTP(t *testing.T) {
	api := &stubPlanAPI{}
	svc := NewEmailService(api, &stubMailService{enabled: false}, quietLogger())

	req := request_models.SendEmailRequest{
		Email: "traveler@example.com",
		Data:  response_models.PlanResult{Visa: "eVisa required."},
	}
	if err := svc.SendPlan(context.Background(), req); err != nil {
		t.Fatalf("SendPlan: %v", err)
	}
	if api.emailedTo != "traveler@example.com" {
		t.Errorf("proxied to %q", api.emailedTo)
	}
	if api.emailedPlan.Visa != "eVisa required." {
		t.Errorf("proxied plan = %+v", api.emailedPlan)
	}
}

func TestSendPlanMailsDirectlyWithSMTP(t *testing.T) {
	api := &stubPlanAPI{}
	mail := &stubMailService{enabled: true}
	svc := NewEmailService(api, mail, quietLogger())

	req := request_models.SendEmailRequest{
		Email: "traveler@example.com",
		Data:  response_models.PlanResult{Visa: "Visa-free for 90 days."},
	}
	if err := svc.SendPlan(context.Background(), req); err != nil {
		t.Fatalf("SendPlan: %v", err)
	}
	if mail.to != "traveler@example.com" {
		t.Errorf("mailed to %q", mail.to)
	}
	if !bytes.HasPrefix(mail.pdf, []byte("%PDF")) {
		t.Error("attachment is not a PDF document")
	}
	if api.emailedTo != "" {
		t.Error("direct SMTP delivery must not also call the upstream")
	}
}
