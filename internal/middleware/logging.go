// Package middleware holds the cross-cutting Fiber handlers mounted on every
// request.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestID tags each request with an X-Request-ID, generating a UUID when
// the client did not send one.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Generator: uuid.NewString,
	})
}

// Logger writes one structured line per request. Field values are copied
// because fiber reuses the request buffers once the handler returns.
func Logger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		fields := []zap.Field{
			zap.String("request_id", utils.CopyString(c.GetRespHeader(fiber.HeaderXRequestID))),
			zap.Int("status", statusOf(c, err)),
			zap.String("method", utils.CopyString(c.Method())),
			zap.String("path", utils.CopyString(c.Path())),
			zap.String("ip", utils.CopyString(c.IP())),
			zap.Duration("latency", time.Since(start)),
			zap.String("user-agent", utils.CopyString(c.Get(fiber.HeaderUserAgent))),
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		logger.Info("HTTP Request", fields...)
		return err
	}
}
