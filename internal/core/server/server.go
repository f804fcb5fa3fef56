package server

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"portfolio-site/internal/core/config"
	"portfolio-site/internal/core/logger"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "portfolio-site/docs/swagger"
)

// RequestIDHeader carries the per-request id echoed in error bodies as ray_id.
const RequestIDHeader = "X-Request-ID"

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg *config.AppConfig
}

// ErrorResponse is the JSON body of every error the server emits on its own.
type ErrorResponse struct {
	Message string `json:"message"`
	RayID   string `json:"ray_id,omitempty"`
}

// New creates a new Server instance with configured middleware.
// views may be nil when no page rendering is needed.
func New(cfg *config.AppConfig, views fiber.Views) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "portfolio-site",
		Views:                 views,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())

	app.Use(requestid.New(requestid.Config{
		Header: RequestIDHeader,
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Named("http"),
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/swagger/*", swagger.HandlerDefault)

	if cfg.Server.StaticDir != "" {
		app.Static("/static", cfg.Server.StaticDir)
		app.Static("/images", filepath.Join(cfg.Server.StaticDir, "images"))
	}

	return &Server{
		App: app,
		cfg: cfg,
	}
}

// Run starts the HTTP server. It blocks until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	logger.Get().Info("Starting server", zap.String("address", addr))
	return s.App.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.App.ShutdownWithContext(ctx)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	rayID, _ := c.Locals("requestid").(string)
	if code >= fiber.StatusInternalServerError {
		logger.Named("http").Error("Unhandled error",
			zap.String("path", c.Path()),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
	}

	return c.Status(code).JSON(ErrorResponse{
		Message: message,
		RayID:   rayID,
	})
}
