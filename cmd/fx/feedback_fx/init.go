package feedback_fx

import (
	"go.uber.org/fx"

	"github.com/sirupsen/logrus"

	"tripdesk/internal/services"
)

var Module = fx.Provide(provideFeedbackService)

func provideFeedbackService(api services.PlanAPIInterface, logger *logrus.Logger) services.FeedbackServiceInterface {
	return services.NewFeedbackService(api, logger)
}
