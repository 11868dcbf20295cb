package config

import (
	"MonitoreoBackend/pkg/handlerUtil"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

func NewFiber(logger *logrus.Logger, debug bool) *fiber.App {
	app := fiber.New(
		fiber.Config{
			AppName:               "Monitoreo Backend",
			BodyLimit:             10 * 1024 * 1024,
			DisableKeepalive:      false,
			StrictRouting:         true,
			CaseSensitive:         true,
			EnablePrintRoutes:     debug,
			DisableStartupMessage: !debug,
			JSONEncoder:           jsoniter.Marshal,
			JSONDecoder:           jsoniter.Unmarshal,
			ErrorHandler:          handlerUtil.New(logger).HandleFiberError,

			// Multipart bodies are parsed by the handler so failures render
			// through the domain error.
			DisablePreParseMultipartForm: true,
		})

	return app
}
