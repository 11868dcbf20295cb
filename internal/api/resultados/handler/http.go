package resultadosHandler

import (
	resultadosService "MonitoreoBackend/internal/api/resultados/service"
	"MonitoreoBackend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ResultadosHandler struct {
	log               *logrus.Logger
	middleware        middleware.Middleware
	resultadosService resultadosService.IResultadosService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	rs resultadosService.IResultadosService,
) *ResultadosHandler {
	return &ResultadosHandler{
		log:               log,
		middleware:        middleware,
		resultadosService: rs,
	}
}

func (h *ResultadosHandler) Start(srv fiber.Router) {
	srv.Post("/resultados/", h.ReceiveResults)
	srv.All("/resultados/", h.MethodNotAllowed)
	srv.All("/resultados", h.AppendSlash)
}
