package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PLAN_API_BASE_URL", "https://planner.example.com/api")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("PLAN_API_TIMEOUT", "")
	t.Setenv("SMTP_HOST", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != "local" {
		t.Errorf("Env = %q", cfg.Env)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d", cfg.Server.Port)
	}
	if cfg.PlanAPI.BaseURL != "https://planner.example.com/api" {
		t.Errorf("BaseURL = %q", cfg.PlanAPI.BaseURL)
	}
	if cfg.PlanAPI.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v", cfg.PlanAPI.Timeout)
	}
	if cfg.MailEnabled() {
		t.Error("mail should be disabled without SMTP_HOST")
	}
}

func TestLoadRequiresBaseURL(t *testing.T) {
	t.Setenv("PLAN_API_BASE_URL", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error without PLAN_API_BASE_URL")
	}

	t.Setenv("PLAN_API_BASE_URL", "not a url")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed PLAN_API_BASE_URL")
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("PLAN_API_TIMEOUT", "45s")
	t.Setenv("PLAN_API_ACCESS_TOKEN", "access-seed")
	t.Setenv("PLAN_API_REFRESH_TOKEN", "refresh-seed")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != "production" {
		t.Errorf("Env = %q", cfg.Env)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d", cfg.Server.Port)
	}
	if cfg.PlanAPI.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v", cfg.PlanAPI.Timeout)
	}
	if cfg.PlanAPI.AccessToken != "access-seed" || cfg.PlanAPI.RefreshToken != "refresh-seed" {
		t.Errorf("seed tokens not read: %q/%q", cfg.PlanAPI.AccessToken, cfg.PlanAPI.RefreshToken)
	}
}

func TestLoadSMTP(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_USERNAME", "mailer@example.com")
	t.Setenv("SMTP_FROM", "")
	t.Setenv("SMTP_FROM_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.MailEnabled() {
		t.Fatal("mail should be enabled with SMTP_HOST set")
	}
	if !cfg.SMTP.UseSSL {
		t.Error("port 465 should switch to SMTPS")
	}
	if cfg.SMTP.From != "mailer@example.com" {
		t.Errorf("From should default to the username, got %q", cfg.SMTP.From)
	}
	if cfg.SMTP.FromName != "Tripdesk" {
		t.Errorf("FromName = %q", cfg.SMTP.FromName)
	}
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "eighty")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric PORT")
	}
}
