package planapi_fx

import (
	"go.uber.org/fx"

	"github.com/sirupsen/logrus"

	"tripdesk/internal/config"
	"tripdesk/internal/planapi"
	"tripdesk/internal/services"
	"tripdesk/pkg/memcache"
	"tripdesk/pkg/notify"
)

var Module = fx.Provide(
	provideSessionTokens, provideNotifier, provideClient,
)

func provideSessionTokens(cfg config.Config) *memcache.SessionTokens {
	tokens := memcache.NewSessionTokens()
	tokens.Seed(cfg.PlanAPI.AccessToken, cfg.PlanAPI.RefreshToken)
	return tokens
}

func provideNotifier(logger *logrus.Logger) *notify.LogNotifier {
	return notify.NewLogNotifier(logger)
}

func provideClient(cfg config.Config, tokens *memcache.SessionTokens, notifier *notify.LogNotifier, logger *logrus.Logger) services.PlanAPIInterface {
	return planapi.New(
		cfg.PlanAPI.BaseURL,
		tokens,
		notifier,
		logger,
		planapi.WithTimeout(cfg.PlanAPI.Timeout),
		planapi.WithDefaultAuthorization(cfg.PlanAPI.DefaultAuthorization),
	)
}
