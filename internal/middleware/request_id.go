package middleware

import (
	"MonitoreoBackend/pkg/log"
	"MonitoreoBackend/pkg/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDKey = "X-Request-ID"

	maxRequestIDLength = 64
)

type requestIDMiddleware struct {
	logger *logrus.Logger
	utils  utils.IUtils
}

func newRequestIDMiddleware(logger *logrus.Logger) *requestIDMiddleware {
	return &requestIDMiddleware{
		logger: logger,
		utils:  utils.New(),
	}
}

// handle tags the request with an ID, reusing the caller's X-Request-ID only
// when it is safe to echo and log.
func (m *requestIDMiddleware) handle(c *fiber.Ctx) error {
	incoming := c.Get(RequestIDKey)

	requestID := incoming
	if !validRequestID(incoming) {
		requestID = m.generate()

		if incoming != "" {
			m.logger.WithFields(log.Fields{
				"request_id": requestID,
				"length":     len(incoming),
				"path":       c.Path(),
			}).Debug("Replaced invalid incoming request ID")
		}
	}

	c.Locals(RequestIDKey, requestID)
	c.Set(RequestIDKey, requestID)

	return c.Next()
}

func (m *requestIDMiddleware) generate() string {
	id, err := m.utils.NewULIDFromTimestamp(time.Now())
	if err == nil {
		return id
	}

	m.logger.WithFields(log.Fields{
		"error": err.Error(),
	}).Warn("ULID generation failed, falling back to UUID request ID")

	return uuid.NewString()
}

// validRequestID accepts ULIDs and short tokens of letters, digits and
// ".", "_", ":", "-" such as the UUIDs set by proxies.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}

	if _, err := ulid.ParseStrict(id); err == nil {
		return true
	}

	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '_', r == ':', r == '-':
		default:
			return false
		}
	}

	return true
}
