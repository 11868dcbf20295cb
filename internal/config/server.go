package config

import (
	"MonitoreoBackend/database/postgres"
	"MonitoreoBackend/database/sqlite"
	resultadosHandler "MonitoreoBackend/internal/api/resultados/handler"
	resultadosService "MonitoreoBackend/internal/api/resultados/service"
	"MonitoreoBackend/internal/middleware"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	db         *sqlx.DB
	log        *logrus.Logger
	cfg        *AppConfig
	middleware middleware.Middleware
	handlers   []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.cfg == nil {
		return nil, fmt.Errorf("app config is required")
	}
	if server.middleware == nil {
		return nil, fmt.Errorf("middleware is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithAppConfig(cfg *AppConfig) ServerOption {
	return func(s *Server) error {
		s.cfg = cfg
		return nil
	}
}

// WithDatabase connects to DATABASE_URL when it names a supported backend
// and falls back to the embedded sqlite file otherwise.
func WithDatabase() ServerOption {
	return func(s *Server) error {
		if s.cfg == nil {
			return fmt.Errorf("app config must be set before database")
		}

		db, err := openDatabase(s.cfg, s.log)
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		if s.cfg == nil {
			return fmt.Errorf("app config must be set before middleware")
		}
		s.middleware = middleware.New(s.log, middleware.Config{
			Debug:               s.cfg.Debug,
			AllowedHosts:        s.cfg.AllowedHosts,
			CORSAllowAllOrigins: s.cfg.CORSAllowAllOrigins,
			CORSAllowedOrigins:  s.cfg.CORSAllowedOrigins,
		})
		return nil
	}
}

func openDatabase(cfg *AppConfig, log *logrus.Logger) (*sqlx.DB, error) {
	if cfg.DatabaseURL == "" {
		return sqlite.New(cfg.DatabasePath)
	}

	scheme, rest, found := strings.Cut(cfg.DatabaseURL, "://")
	if !found {
		scheme = ""
	}

	switch strings.ToLower(scheme) {
	case "postgres", "postgresql", "pgsql":
		return postgres.New(cfg.DatabaseURL)
	case "sqlite":
		path := strings.TrimPrefix(rest, "/")
		if path == "" {
			path = sqlite.Memory
		}
		return sqlite.New(path)
	default:
		if log != nil {
			log.Warnf("Unsupported DATABASE_URL scheme %q, using embedded database at %s", scheme, cfg.DatabasePath)
		}
		return sqlite.New(cfg.DatabasePath)
	}
}

func (s *Server) RegisterHandler() {
	// Results intake
	resultadosServices := resultadosService.NewResultadosService(s.log)
	resultadosHandlers := resultadosHandler.New(s.log, s.middleware, resultadosServices)

	s.handlers = append(s.handlers, resultadosHandlers)
}

// mount installs the middleware chain and every registered handler.
func (s *Server) mount() {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())
	s.engine.Use(recover.New())
	s.engine.Use(s.middleware.NewCORSMiddleware())
	s.engine.Use(s.middleware.NewSecurityMiddleware())
	s.engine.Use(s.middleware.NewAllowedHostsMiddleware())

	s.setupHealthCheck()
	s.setupStatic()

	router := s.engine.Group("/api")
	for _, h := range s.handlers {
		h.Start(router)
	}
}

func (s *Server) Run() error {
	s.mount()

	if err := s.engine.Listen(fmt.Sprintf(":%s", s.cfg.Port)); err != nil {
		return err
	}

	return nil
}

func (s *Server) Shutdown(timeout time.Duration) error {
	err := s.engine.ShutdownWithTimeout(timeout)

	if s.db != nil {
		if closeErr := s.db.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}

	return err
}

func (s *Server) databaseStatus(ctx context.Context) string {
	if s.db == nil {
		return "disabled"
	}
	if err := s.db.PingContext(ctx); err != nil {
		s.log.Warnf("Database health check failed: %v", err)
		return "down"
	}
	return "up"
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		c, cancel := context.WithTimeout(ctx.UserContext(), 2*time.Second)
		defer cancel()

		return ctx.JSON(fiber.Map{
			"message":  "Server is Healthy!",
			"database": s.databaseStatus(c),
		})
	})
}

func (s *Server) setupStatic() {
	if s.cfg.StaticRoot == "" {
		return
	}

	info, err := os.Stat(s.cfg.StaticRoot)
	if err != nil || !info.IsDir() {
		s.log.Debugf("Static root %s not found, skipping /static", s.cfg.StaticRoot)
		return
	}

	s.engine.Static("/static", s.cfg.StaticRoot)
}
