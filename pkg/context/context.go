package context

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// localsRequestID is where the request ID middleware stores the vetted ID.
const localsRequestID = "X-Request-ID"

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

// FromFiberCtx derives a context for service code, which must not hold on to
// *fiber.Ctx. Only the ID set by the request ID middleware is carried; the
// raw header is never trusted.
func FromFiberCtx(c *fiber.Ctx) context.Context {
	requestID, ok := c.Locals(localsRequestID).(string)
	if !ok || requestID == "" {
		requestID = "unknown"
	}

	return WithRequestID(c.UserContext(), requestID)
}
