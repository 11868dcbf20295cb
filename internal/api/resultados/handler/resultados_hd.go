package resultadosHandler

import (
	"MonitoreoBackend/internal/api/resultados"
	contextPkg "MonitoreoBackend/pkg/context"
	"MonitoreoBackend/pkg/handlerUtil"
	"MonitoreoBackend/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
	"strings"
	"time"
)

var allowedMethods = strings.Join([]string{fiber.MethodPost, fiber.MethodOptions}, ", ")

const routeDescription = "Vista para recibir los resultados de atención enviados desde el frontend.\n" +
	"No almacena los datos, solo responde con un mensaje de éxito."

// renderedMediaTypes is what OPTIONS advertises. Responses are always JSON.
var renderedMediaTypes = []string{fiber.MIMEApplicationJSON, fiber.MIMETextHTML}

func (h *ResultadosHandler) ReceiveResults(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id":   requestID,
		"path":         ctx.Path(),
		"content_type": ctx.Get(fiber.HeaderContentType),
	}).Debug("Processing results intake request")

	payload, err := decodeBody(ctx)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	ack := h.resultadosService.ReceiveResults(c, payload)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, ack)
	}
}

// MethodNotAllowed answers every other method on the intake route. OPTIONS
// without a CORS preflight gets the route description instead.
func (h *ResultadosHandler) MethodNotAllowed(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	ctx.Set(fiber.HeaderAllow, allowedMethods)

	if ctx.Method() == fiber.MethodOptions {
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, resultados.OptionsResponse{
			Name:        "Resultados Atencion",
			Description: routeDescription,
			Renders:     renderedMediaTypes,
			Parses:      parsedMediaTypes,
		})
	}

	return errHandler.Handle(ctx, requestID, resultados.ErrMethodNotAllowed(ctx.Method()), ctx.Path(), "method_not_allowed")
}

// AppendSlash redirects the slashless intake path to the routed one,
// keeping the query string.
func (h *ResultadosHandler) AppendSlash(ctx *fiber.Ctx) error {
	location := ctx.Path() + "/"
	if query := ctx.Request().URI().QueryString(); len(query) > 0 {
		location += "?" + string(query)
	}

	h.log.WithFields(log.Fields{
		"request_id": h.middleware.GetRequestID(ctx),
		"method":     ctx.Method(),
		"location":   location,
	}).Debug("Redirecting to trailing-slash path")

	return ctx.Redirect(location, fiber.StatusMovedPermanently)
}
