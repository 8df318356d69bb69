package main

import (
	"context"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"tripdesk/cmd/fx/controllers_fx"
	"tripdesk/cmd/fx/feedback_fx"
	"tripdesk/cmd/fx/mail_fx"
	"tripdesk/cmd/fx/planapi_fx"
	"tripdesk/cmd/fx/planner_fx"
	"tripdesk/internal/api/controllers"
	"tripdesk/internal/config"
	"tripdesk/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		fx.Provide(config.Load),
		fx.Provide(provideLogger),
		planapi_fx.Module,
		planner_fx.Module,
		feedback_fx.Module,
		mail_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func provideLogger(cfg config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if cfg.Env == "production" {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *logrus.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				addr := ":" + strconv.Itoa(cfg.Server.Port)
				logger.Infof("Starting HTTP server at %s", addr)
				if err := engine.Run(addr); err != nil {
					logger.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	plannerController *controllers.PlannerController,
	reportController *controllers.ReportController,
	feedbackController *controllers.FeedbackController,
	emailController *controllers.EmailController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, plannerController, reportController, feedbackController, emailController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	reportController *controllers.ReportController,
	feedbackController *controllers.FeedbackController,
	emailController *controllers.EmailController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	travelGroup := r.Group("/travel")
	travelGroup.POST("/", plannerController.SubmitPlan)
	travelGroup.GET("/state", plannerController.GetState)
	travelGroup.POST("/export", reportController.ExportPlan)
	travelGroup.POST("/feedback", feedbackController.SubmitFeedback)
	travelGroup.POST("/sendEmail", emailController.SendPlanEmail)
}
