package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/peopleops/employee-directory/docs"
	"github.com/peopleops/employee-directory/internal/api/handler"
	"github.com/peopleops/employee-directory/internal/core/service"
	"github.com/peopleops/employee-directory/internal/infrastructure/config"
	mongodb "github.com/peopleops/employee-directory/internal/infrastructure/db/mongo"
	redisdb "github.com/peopleops/employee-directory/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("directory"))

	// --- Dependencies ---
	repo := mongodb.NewEmployeeRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Login.MaxFailures, cfg.Login.Window)
	employeeService := service.NewEmployeeService(repo, throttle, log)
	employeeHandler := handler.NewEmployeeHandler(employeeService)

	// --- Employee routes ---
	employees := e.Group("/employees")
	employees.POST("", employeeHandler.Create)
	employees.GET("", employeeHandler.List)
	employees.DELETE("", employeeHandler.Clean)
	employees.GET("/:email", employeeHandler.Authenticate)
	employees.PUT("/:email/manager", employeeHandler.Bind)
	employees.GET("/:email/manager", employeeHandler.GetManager)
	employees.DELETE("/:email/manager", employeeHandler.Unbind)
	employees.GET("/:email/subordinates", employeeHandler.ListSubordinates)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
