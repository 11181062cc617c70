package server

import (
	"log"

	"sitebuilder-be/internal/bootstrap"
	"sitebuilder-be/internal/config"
	"sitebuilder-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	bodyLimitMB := cfg.App.BodyLimitMB
	if bodyLimitMB <= 0 {
		bodyLimitMB = 10
	}

	app := fiber.New(fiber.Config{
		BodyLimit: bodyLimitMB * 1024 * 1024,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return serverutils.WriteError(ctx, container.Logger, err)
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.App.CorsAllowedOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Content-Type, Content-Disposition",
	}))

	// OpenTelemetry tracing middleware (no-op provider unless tracing is enabled)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.JSON(serverutils.SuccessResponse[any]("ok", nil))
	})

	// Routes
	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	// Public site
	c.PublicSiteController.RegisterRoutes(api)
	c.FormSubmissionController.RegisterPublicRoutes(api)

	// Admin CMS
	admin := api.Group("/admin")

	c.PageController.RegisterRoutes(admin)
	c.PageSectionController.RegisterRoutes(admin)
	c.FeatureController.RegisterRoutes(admin)
	c.FeatureGroupController.RegisterRoutes(admin)

	c.HeaderConfigController.RegisterRoutes(admin)
	c.MenuController.RegisterRoutes(admin)

	c.ContentBlockController.RegisterRoutes(admin)
	c.FaqController.RegisterRoutes(admin)

	c.SiteSettingsController.RegisterRoutes(admin)
	c.FormSubmissionController.RegisterRoutes(admin)
}
