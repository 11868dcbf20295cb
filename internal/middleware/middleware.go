package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Middleware interface {
	NewRequestIDMiddleware() fiber.Handler
	NewLoggingMiddleware() fiber.Handler
	NewCORSMiddleware() fiber.Handler
	NewSecurityMiddleware() fiber.Handler
	NewAllowedHostsMiddleware() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
}

// Config carries the deployment settings the HTTP middleware depends on.
type Config struct {
	Debug               bool
	AllowedHosts        []string
	CORSAllowAllOrigins bool
	CORSAllowedOrigins  []string
}

type middleware struct {
	loggingMiddleware   *loggingMiddleware
	requestIDMiddleware *requestIDMiddleware
	hosts               *allowedHosts
	cfg                 Config
	log                 *logrus.Logger
}

func New(logger *logrus.Logger, cfg Config) Middleware {
	logging := newLoggingMiddleware(logger)
	requestID := newRequestIDMiddleware(logger)
	hosts := newAllowedHosts(cfg.AllowedHosts, cfg.Debug)

	return &middleware{
		loggingMiddleware:   logging,
		requestIDMiddleware: requestID,
		hosts:               hosts,
		cfg:                 cfg,
		log:                 logger,
	}
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware.handle
}

func (m *middleware) NewLoggingMiddleware() fiber.Handler {
	return m.loggingMiddleware.handle
}
