package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kappatrack/kappatrack/backend/config"
	"github.com/kappatrack/kappatrack/backend/handlers"
	"github.com/kappatrack/kappatrack/backend/middleware"
	webmodels "github.com/kappatrack/kappatrack/backend/models"
	webservices "github.com/kappatrack/kappatrack/backend/services"
	"github.com/kappatrack/kappatrack/kappatrack"
	"github.com/kappatrack/kappatrack/kappatrack/database"
	"github.com/kappatrack/kappatrack/kappatrack/database/repositories"
	"github.com/kappatrack/kappatrack/kappatrack/logger"
	"github.com/kappatrack/kappatrack/kappatrack/services"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	debug := flag.Bool("debug", false, "enable debug mode")
	flag.Parse()

	// Initialize logger first
	customHandler := logger.NewHandler("KappaTrack")
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting KappaTrack API",
		slog.String("version", version),
		slog.String("commit", commit))

	cfg, err := kappatrack.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	webCfg := config.NewWebAppConfig(cfg, *debug)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	slog.Info("Connecting to database...")
	db, err := database.New(ctx, database.DBConfig(cfg.DB))
	if err != nil {
		slog.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("Database connected successfully")

	if err := db.InitSchema(ctx); err != nil {
		slog.Error("Failed to initialize schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	repos := webmodels.NewRepositories(
		repositories.NewUserRepository(db.BunDB()),
		repositories.NewTaskProgressRepository(db.BunDB()),
		repositories.NewUserProgressRepository(db.BunDB()),
		repositories.NewCollectorProgressRepository(db.BunDB()),
		repositories.NewLightkeeperProgressRepository(db.BunDB()),
		repositories.NewNoteRepository(db.BunDB()),
	)

	// Initialize web services
	oauthService := webservices.NewOAuthService(webCfg)
	sessionService := webservices.NewSessionService(webCfg)

	// Initialize Fiber as API-only backend
	app := fiber.New(fiber.Config{
		AppName:      "KappaTrack API",
		ServerHeader: "KappaTrack",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.SecurityHeaders())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.Web.AllowedOrigins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization,X-Requested-With,Cookie",
		AllowCredentials: true,
	}))
	app.Use(middleware.LoggingMiddleware())

	webApp := &handlers.WebApp{
		Config:             webCfg,
		DB:                 db,
		Repos:              repos,
		TaskService:        services.NewTaskService(repos.TaskProgress),
		BossService:        services.NewBossService(repos.UserProgress),
		PrestigeService:    services.NewPrestigeService(repos.UserProgress),
		HideoutService:     services.NewHideoutService(repos.UserProgress),
		CollectorService:   services.NewCollectorService(repos.Collector),
		LightkeeperService: services.NewLightkeeperService(repos.Lightkeeper),
		NoteService:        services.NewNoteService(repos.Note),
		OAuthService:       oauthService,
		SessionService:     sessionService,
		Version:            version,
		Commit:             commit,
	}

	setupRoutes(app, webApp)

	address := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	slog.Info("Starting server", slog.String("address", address))

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := app.Listen(address); err != nil {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-c
	slog.Info("Shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		slog.Error("Server shutdown error", slog.String("error", err.Error()))
	}

	db.Close()

	slog.Info("Server shutdown complete")
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, webApp *handlers.WebApp) {
	// Health check endpoint
	app.Get("/health", handlers.HealthCheck(webApp))

	// Authentication routes
	auth := app.Group("/auth")
	auth.Use(middleware.AuthRateLimit())
	auth.Get("/login", handlers.Login(webApp))
	auth.Get("/callback", handlers.OAuthCallback(webApp))
	auth.Post("/logout", handlers.Logout(webApp))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "KappaTrack API",
			"version": webApp.Version,
			"status":  "running",
		})
	})

	// Session validation endpoint for the frontend
	app.Get("/api/auth/validate", handlers.ValidateSession(webApp))

	// API routes. Reads answer anonymous callers with empty or default
	// payloads; mutations require a session.
	api := app.Group("/api")
	api.Use(middleware.APIRateLimit())
	api.Use(middleware.OptionalAuth(webApp))

	authed := middleware.AuthRequired(webApp)

	tasks := api.Group("/tasks")
	tasks.Get("/", handlers.TasksList(webApp))
	tasks.Post("/toggle", authed, handlers.TasksToggle(webApp))

	bosses := api.Group("/bosses")
	bosses.Get("/", handlers.BossesList(webApp))
	bosses.Post("/toggle", authed, handlers.BossTasksToggle(webApp))
	bosses.Get("/:name", handlers.BossesDetail(webApp))
	bosses.Get("/:name/tasks", handlers.BossCompletedTasks(webApp))

	prestige := api.Group("/prestige")
	prestige.Get("/profile", handlers.PrestigeProfile(webApp))
	prestige.Put("/profile", authed, handlers.PrestigeUpdate(webApp))
	prestige.Get("/:level/requirements", handlers.PrestigeRequirements(webApp))
	prestige.Get("/:level/completion", handlers.PrestigeCompletion(webApp))

	hideout := api.Group("/hideout")
	hideout.Get("/", handlers.HideoutGet(webApp))
	hideout.Put("/", authed, handlers.HideoutUpdate(webApp))
	hideout.Get("/summary", handlers.HideoutSummary(webApp))

	collector := api.Group("/collector")
	collector.Get("/", handlers.CollectorList(webApp))
	collector.Post("/toggle", authed, handlers.CollectorToggle(webApp))

	lightkeeper := api.Group("/lightkeeper")
	lightkeeper.Get("/quests", handlers.LightkeeperList(webApp))
	lightkeeper.Post("/toggle", authed, handlers.LightkeeperQuestToggle(webApp))
	lightkeeper.Post("/subtask", authed, handlers.LightkeeperSubTaskToggle(webApp))

	notes := api.Group("/notes")
	notes.Get("/", handlers.NoteGet(webApp))
	notes.Put("/", authed, handlers.NoteSave(webApp))

	// Fallback for unmatched routes
	app.Use(func(c *fiber.Ctx) error {
		slog.Warn("No route matched for request",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()))
		return c.Status(404).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested endpoint does not exist",
		})
	})
}
