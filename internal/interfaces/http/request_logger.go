package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// HeaderRequestID header de correlación; se genera si el cliente no lo envía.
const HeaderRequestID = "X-Request-Id"

// RequestLogger asigna un request id y registra cada petición con zerolog.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(HeaderRequestID, reqID)

		start := time.Now()
		err := c.Next()

		reqLog := log.WithRequestID(reqID)
		evt := reqLog.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			evt = reqLog.Error()
		}
		evt.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
