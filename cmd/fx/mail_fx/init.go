package mail_fx

import (
	"go.uber.org/fx"

	"github.com/sirupsen/logrus"

	"tripdesk/internal/config"
	"tripdesk/internal/services"
)

var Module = fx.Provide(provideMailService, provideEmailService)

func provideMailService(cfg config.Config, logger *logrus.Logger) services.IMailService {
	if !cfg.MailEnabled() {
		logger.Info("SMTP not configured, plan emails will be relayed through the planning API")
	}
	return services.NewSMTPMailService(cfg.SMTP)
}

func provideEmailService(api services.PlanAPIInterface, mail services.IMailService, logger *logrus.Logger) services.EmailServiceInterface {
	return services.NewEmailService(api, mail, logger)
}
