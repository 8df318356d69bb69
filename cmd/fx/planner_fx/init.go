package planner_fx

import (
	"go.uber.org/fx"

	"github.com/sirupsen/logrus"

	"tripdesk/internal/services"
	"tripdesk/pkg/notify"
)

var Module = fx.Provide(providePlannerService)

func providePlannerService(api services.PlanAPIInterface, notifier *notify.LogNotifier, logger *logrus.Logger) services.PlannerServiceInterface {
	return services.NewPlannerService(api, notifier, logger)
}
