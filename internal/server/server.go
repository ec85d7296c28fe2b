// Package server assembles the Fiber application.
package server

import (
	"errors"
	"time"

	"lanchonete/internal/database"
	"lanchonete/internal/gateways"
	"lanchonete/internal/handlers"
	"lanchonete/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewApp wires middleware, the health and metrics endpoints and the API
// routes over db. HTTP metrics are registered on registry.
func NewApp(db *gorm.DB, logger *zap.Logger, registry *prometheus.Registry) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "lanchonete",
		Immutable:    true,
		JSONDecoder:  handlers.StrictJSONDecoder,
		ErrorHandler: errorHandler(logger),
	})

	metrics := middleware.NewMetrics(registry)

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))
	app.Use(metrics.Middleware())

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		if err := database.Ping(c.UserContext(), db); err != nil {
			logger.Warn("Health check failed", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"error":  err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	app.Get("/metrics", metrics.Handler())

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")
	handlers.NewCustomerHandler(gateways.CustomerGatewayFactory(db), logger).RegisterRoutes(apiV1)
	handlers.NewProductHandler(gateways.ProductGatewayFactory(db), logger).RegisterRoutes(apiV1)

	return app
}

// errorHandler renders errors that escape a handler, such as unknown routes
// and recovered panics, with the same body shape the handlers use.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		} else {
			logger.Error("Unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}
		return c.Status(code).JSON(fiber.Map{
			"message": message,
		})
	}
}
