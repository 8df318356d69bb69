package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env     string
	Server  ServerConfig
	PlanAPI PlanAPIConfig
	SMTP    SMTPConfig
}

type ServerConfig struct {
	Port int
}

// PlanAPIConfig points at the remote planning API. BaseURL is the one
// required setting; seed tokens let the service start mid-session.
type PlanAPIConfig struct {
	BaseURL              string
	Timeout              time.Duration
	AccessToken          string
	RefreshToken         string
	DefaultAuthorization string
}

// SMTPConfig is optional: when Host is empty, send-by-email is proxied
// to the planning API instead of mailed directly.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	UseSSL   bool
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	cfg := Config{Env: getEnv("APP_ENV", "local")}

	port, err := parseIntEnv("PORT", 8080)
	if err != nil {
		return cfg, err
	}
	cfg.Server.Port = port

	baseURL := strings.TrimSpace(os.Getenv("PLAN_API_BASE_URL"))
	if baseURL == "" {
		return cfg, fmt.Errorf("PLAN_API_BASE_URL is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return cfg, fmt.Errorf("PLAN_API_BASE_URL: %w", err)
	}
	cfg.PlanAPI.BaseURL = baseURL

	timeout, err := parseDurationEnv("PLAN_API_TIMEOUT", 30*time.Second)
	if err != nil {
		return cfg, err
	}
	cfg.PlanAPI.Timeout = timeout
	cfg.PlanAPI.AccessToken = os.Getenv("PLAN_API_ACCESS_TOKEN")
	cfg.PlanAPI.RefreshToken = os.Getenv("PLAN_API_REFRESH_TOKEN")
	cfg.PlanAPI.DefaultAuthorization = os.Getenv("PLAN_API_DEFAULT_AUTHORIZATION")

	smtpPort, err := parseIntEnv("SMTP_PORT", 587)
	if err != nil {
		return cfg, err
	}
	cfg.SMTP = SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     smtpPort,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     getEnv("SMTP_FROM", os.Getenv("SMTP_USERNAME")),
		FromName: getEnv("SMTP_FROM_NAME", "Tripdesk"),
		UseSSL:   smtpPort == 465,
	}

	return cfg, nil
}

// MailEnabled reports whether direct SMTP delivery is configured.
func (c Config) MailEnabled() bool {
	return c.SMTP.Host != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseIntEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

func parseDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}
