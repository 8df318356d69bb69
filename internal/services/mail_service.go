package services

import (
	"bytes"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"tripdesk/internal/config"
)

// IMailService delivers a rendered plan report by SMTP. When SMTP is
// not configured the service is disabled and send-by-email falls back
// to the planning API's own mail endpoint.
type IMailService interface {
	Enabled() bool
	SendPlanReport(to string, pdf []byte) error
}

type smtpMailService struct {
	cfg config.SMTPConfig
}

func NewSMTPMailService(cfg config.SMTPConfig) IMailService {
	return &smtpMailService{cfg: cfg}
}

func (s *smtpMailService) Enabled() bool {
	return s.cfg.Host != ""
}

// SendPlanReport mails the PDF as an attachment with a short text body.
func (s *smtpMailService) SendPlanReport(to string, pdf []byte) error {
	if !s.Enabled() {
		return fmt.Errorf("smtp not configured")
	}

	subject := "Your travel plan"
	body := "Your travel plan is attached as a PDF.\r\n"
	msg := s.composeMessage(to, subject, body, "travel-plan.pdf", pdf)
	return s.send(to, msg)
}

func (s *smtpMailService) composeMessage(to, subject, body, filename string, attachment []byte) []byte {
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { fmt.Fprintf(&msg, format, a...) }

	write("From: %s\r\n", s.fromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/mixed; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n", body)

	write("--%s\r\n", boundary)
	write("Content-Type: application/pdf; name=%q\r\n", filename)
	write("Content-Disposition: attachment; filename=%q\r\n", filename)
	write("Content-Transfer-Encoding: base64\r\n\r\n")

	encoded := base64.StdEncoding.EncodeToString(attachment)
	for len(encoded) > 76 {
		write("%s\r\n", encoded[:76])
		encoded = encoded[76:]
	}
	write("%s\r\n\r\n", encoded)

	write("--%s--\r\n", boundary)
	return msg.Bytes()
}

func (s *smtpMailService) fromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.BEncoding.Encode("UTF-8", name), s.cfg.From)
}

func (s *smtpMailService) send(to string, msg []byte) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}

	var client *smtp.Client
	if s.cfg.UseSSL {
		// SMTPS, implicit TLS (465)
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		client, err = smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			conn.Close()
			return err
		}
	} else {
		// STARTTLS (587)
		dialer := &net.Dialer{Timeout: 10 * time.Second}
		conn, err := dialer.Dial("tcp", addr)
		if err != nil {
			return err
		}
		client, err = smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			conn.Close()
			return err
		}
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err = client.StartTLS(tlsCfg); err != nil {
				client.Close()
				return err
			}
		} else {
			client.Close()
			return fmt.Errorf("smtp server does not support STARTTLS")
		}
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}
