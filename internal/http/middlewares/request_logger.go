package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"project-hub.com/project-hub/internal/logging"
)

func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			logging.Logger.WithFields(logging.Fields{
				"method":   req.Method,
				"path":     c.Path(),
				"status":   c.Response().Status,
				"duration": time.Since(start).String(),
				"ip":       c.RealIP(),
			}).Info("request handled")
			return nil
		}
	}
}
