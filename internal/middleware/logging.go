package middleware

import (
	"MonitoreoBackend/pkg/log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var sensitiveFields = []string{
	"password", "token", "secret", "key", "auth",
	"credential", "authorization", "pin", "security_question",
	"security_answer", "credit_card", "card_number", "cvv",
	"ssn", "social_security", "passport", "license",
}

type loggingMiddleware struct {
	logger *logrus.Logger
}

func newLoggingMiddleware(logger *logrus.Logger) *loggingMiddleware {
	return &loggingMiddleware{
		logger: logger,
	}
}

// handle logs one line per request. Errors escaping the chain are rendered
// here through the app error handler so the logged status is the one the
// client receives.
func (m *loggingMiddleware) handle(c *fiber.Ctx) error {
	start := time.Now()

	requestID, ok := c.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		requestID = "unknown"
	}

	if chainErr := c.Next(); chainErr != nil {
		if err := c.App().ErrorHandler(c, chainErr); err != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	latency := time.Since(start)
	status := c.Response().StatusCode()

	logFields := log.Fields{
		"request_id":    requestID,
		"method":        c.Method(),
		"path":          c.Path(),
		"status":        status,
		"latency_ms":    latency.Milliseconds(),
		"ip":            c.IP(),
		"scheme":        c.Protocol(),
		"host":          c.Hostname(),
		"user_agent":    c.Get(fiber.HeaderUserAgent),
		"referer":       c.Get(fiber.HeaderReferer),
		"response_size": len(c.Response().Body()),
	}

	if body := c.Request().Body(); len(body) > 0 {
		logFields["request_body"] = sanitizeRequestBody(body)
	}

	entry := m.logger.WithFields(logFields)
	switch {
	case status >= fiber.StatusInternalServerError:
		entry.Error("Server error")
	case status >= fiber.StatusBadRequest:
		entry.Warn("Client error")
	default:
		entry.Info("Success")
	}

	return nil
}

func sanitizeRequestBody(body []byte) string {
	var jsonBody map[string]interface{}
	if err := jsoniter.Unmarshal(body, &jsonBody); err != nil {
		return "[non-JSON body]"
	}

	for field := range jsonBody {
		lower := strings.ToLower(field)
		for _, sensitive := range sensitiveFields {
			if lower == sensitive {
				jsonBody[field] = "[SECRET]"
				break
			}
		}
	}

	sanitized, err := jsoniter.Marshal(jsonBody)
	if err != nil {
		return "[sanitization-failed]"
	}

	return string(sanitized)
}
