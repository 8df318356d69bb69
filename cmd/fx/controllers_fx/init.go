package controllers_fx

import (
	"go.uber.org/fx"

	"tripdesk/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlannerController),
	fx.Provide(controllers.NewReportController),
	fx.Provide(controllers.NewFeedbackController),
	fx.Provide(controllers.NewEmailController))
