package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cityhousing/housing-units-api/internal/api/handler"
	"github.com/cityhousing/housing-units-api/internal/api/middleware"
	"github.com/cityhousing/housing-units-api/internal/core/domain"
	"github.com/cityhousing/housing-units-api/internal/core/ports"
)

// RouterDeps carries everything the HTTP surface needs. Services are wired
// by the caller (cmd/api); the router only registers routes and middleware.
type RouterDeps struct {
	HousingUnits     ports.HousingUnitService
	Ingestion        ports.IngestionService
	Tasks            ports.TaskStatusService
	Auth             ports.AuthService
	Users            ports.UserService
	DefaultDatasetID string
	JWTSecret        string
	Mongo            *mongo.Database
	Redis            *redis.Client
	Logger           zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("housing_units"))

	auth := middleware.Auth(deps.JWTSecret)
	adminOnly := middleware.RequireGroups(domain.GroupAdmin)
	anyGroup := middleware.RequireGroups(domain.GroupAdmin, domain.GroupCustomer)

	authHandler := handler.NewAuthHandler(deps.Auth)
	unitHandler := handler.NewHousingUnitHandler(deps.HousingUnits)
	ingestionHandler := handler.NewIngestionHandler(deps.Ingestion, deps.DefaultDatasetID)
	taskHandler := handler.NewTaskHandler(deps.Tasks)
	userHandler := handler.NewUserHandler(deps.Users)

	e.POST("/login", authHandler.Login)

	units := e.Group("/housing-units", auth)
	units.POST("/data-ingestion", ingestionHandler.Apply, adminOnly)
	units.GET("", unitHandler.Filter, anyGroup)
	units.GET("/:id", unitHandler.Get, anyGroup)
	units.POST("/", unitHandler.Create, anyGroup)
	units.PUT("/:id", unitHandler.Update, anyGroup)
	units.DELETE("/:id", unitHandler.Delete, anyGroup)

	e.GET("/task-status/:task_id", taskHandler.Get, auth, adminOnly)
	e.GET("/users", userHandler.List, auth, adminOnly)

	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
