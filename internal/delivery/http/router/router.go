// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vita/config"
	"vita/internal/delivery/http/middleware"
	"vita/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config               *config.Config
	DashboardHandler     *handler.DashboardHandler
	DiaryHandler         *handler.DiaryHandler
	BodyMetricsHandler   *handler.BodyMetricsHandler
	CalorieTargetHandler *handler.CalorieTargetHandler
	TestHandler          *handler.TestHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg                  *config.Config
	dashboardHandler     *handler.DashboardHandler
	diaryHandler         *handler.DiaryHandler
	bodyMetricsHandler   *handler.BodyMetricsHandler
	calorieTargetHandler *handler.CalorieTargetHandler
	testHandler          *handler.TestHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                  params.Config,
		dashboardHandler:     params.DashboardHandler,
		diaryHandler:         params.DiaryHandler,
		bodyMetricsHandler:   params.BodyMetricsHandler,
		calorieTargetHandler: params.CalorieTargetHandler,
		testHandler:          params.TestHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Development-only routes
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.POST("/token", r.testHandler.IssueToken)
		}
	}

	// All API routes require authentication
	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	dashboardGroup := api.Group("/dashboard")
	{
		dashboardGroup.GET("/overview", r.dashboardHandler.GetOverview)
		dashboardGroup.GET("/body-metrics", r.dashboardHandler.GetBodyMetricsRadar)
		dashboardGroup.GET("/health-trends", r.dashboardHandler.GetHealthTrends)
		dashboardGroup.GET("/nutrition-stats", r.dashboardHandler.GetNutritionStats)
		dashboardGroup.GET("/snapshot", r.dashboardHandler.GetSnapshot)
		dashboardGroup.POST("/update", r.dashboardHandler.UpdateSnapshot)
	}

	diaryGroup := api.Group("/diary")
	{
		diaryGroup.POST("/entries", r.diaryHandler.AddEntry)
		diaryGroup.DELETE("/entries/:id", r.diaryHandler.RemoveEntry)
		diaryGroup.GET("/day", r.diaryHandler.GetDay)
	}

	bodyMetricsGroup := api.Group("/body-metrics")
	{
		bodyMetricsGroup.POST("", r.bodyMetricsHandler.RecordMeasurement)
		bodyMetricsGroup.GET("/latest", r.bodyMetricsHandler.GetLatest)
	}

	calorieTargetGroup := api.Group("/calorie-target")
	{
		calorieTargetGroup.POST("", r.calorieTargetHandler.Calculate)
		calorieTargetGroup.GET("/active", r.calorieTargetHandler.GetActive)
	}
}
