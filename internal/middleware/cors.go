package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

var corsAllowHeaders = []string{
	fiber.HeaderAccept,
	fiber.HeaderAuthorization,
	fiber.HeaderContentType,
	fiber.HeaderUserAgent,
	"X-CSRFToken",
	fiber.HeaderXRequestedWith,
	RequestIDKey,
}

func (m *middleware) NewCORSMiddleware() fiber.Handler {
	cfg := cors.Config{
		AllowMethods: strings.Join([]string{
			fiber.MethodDelete,
			fiber.MethodGet,
			fiber.MethodOptions,
			fiber.MethodPatch,
			fiber.MethodPost,
			fiber.MethodPut,
		}, ","),
		AllowHeaders:  strings.Join(corsAllowHeaders, ","),
		ExposeHeaders: RequestIDKey,
		MaxAge:        86400,
	}

	switch {
	case m.cfg.CORSAllowAllOrigins:
		cfg.AllowOrigins = "*"
	case len(m.cfg.CORSAllowedOrigins) > 0:
		cfg.AllowOrigins = strings.Join(m.cfg.CORSAllowedOrigins, ",")
	default:
		// An empty origin list would fall back to "*" inside the cors package.
		cfg.AllowOriginsFunc = func(string) bool { return false }
	}

	m.log.WithField("allow_origins", cfg.AllowOrigins).Debug("CORS configured")

	return cors.New(cfg)
}
