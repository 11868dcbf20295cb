package handlerUtil

import (
	"MonitoreoBackend/pkg/log"
	"MonitoreoBackend/pkg/response"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

const (
	detailNotFound    = "Not found."
	detailServerError = "A server error occurred."
)

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(ErrorResponse{Detail: err.Error()})
	}

	log.ErrorWithTraceID(h.logger, log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}, "Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Detail: detailServerError})
}

// HandleFiberError is installed as the fiber.Config ErrorHandler. It renders
// errors that escape a handler: unknown routes, recovered panics, oversized
// bodies.
func (h *ErrorHandler) HandleFiberError(c *fiber.Ctx, err error) error {
	requestID, ok := c.Locals("X-Request-ID").(string)
	if !ok || requestID == "" {
		requestID = "unknown"
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		detail := fiberErr.Message
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			detail = detailNotFound
		case fiber.StatusMethodNotAllowed:
			detail = fmt.Sprintf("Method %q not allowed.", c.Method())
		}

		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       fiberErr.Code,
			"path":       c.Path(),
		}).Debug("Request rejected by router")

		return c.Status(fiberErr.Code).JSON(ErrorResponse{Detail: detail})
	}

	return h.Handle(c, requestID, err, c.Path(), "unhandled")
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(ErrorResponse{Detail: utils.StatusMessage(fiber.StatusRequestTimeout)})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
