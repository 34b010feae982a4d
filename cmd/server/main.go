package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/wardenapp/corrections-api/internal/auth"
	"github.com/wardenapp/corrections-api/internal/config"
	"github.com/wardenapp/corrections-api/internal/database"
	"github.com/wardenapp/corrections-api/internal/handlers"
	"github.com/wardenapp/corrections-api/internal/middleware"

	_ "github.com/wardenapp/corrections-api/docs/api" // Swagger docs
)

// @title Corrections Records API
// @version 1.0.0
// @description Correctional facility record management service
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/wardenapp/corrections-api

// @host localhost:3000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	tokens := auth.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.JWTExpiry)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Content-Type, Authorization",
	}))

	// Prometheus metrics
	prometheus := fiberprometheus.New("corrections_api")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Create handlers
	authHandler := &handlers.AuthHandler{DB: db, Tokens: tokens, BcryptCost: cfg.BcryptCost}
	prisonHandler := &handlers.PrisonHandler{DB: db}
	cellHandler := &handlers.CellHandler{DB: db}
	crimeHandler := &handlers.CrimeHandler{DB: db}
	inmateHandler := &handlers.InmateHandler{DB: db}
	visitorHandler := &handlers.VisitorHandler{DB: db}
	healthHandler := &handlers.HealthHandler{DB: db, Cfg: cfg}

	app.Get("/health", healthHandler.Check)

	// Public auth routes
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Admin-only user management
	authGroup.Get("/users", middleware.RequireAuth(db, tokens), middleware.RequireAdmin(), authHandler.ListUsers)
	authGroup.Get("/user/:id", middleware.RequireAuth(db, tokens), middleware.RequireAdmin(), authHandler.GetUser)
	authGroup.Put("/user/:id", middleware.RequireAuth(db, tokens), middleware.RequireAdmin(), authHandler.UpdateUser)
	authGroup.Delete("/user/:id", middleware.RequireAuth(db, tokens), middleware.RequireAdmin(), authHandler.DeleteUser)

	// Record routes, all behind bearer authentication
	requireAuth := middleware.RequireAuth(db, tokens)

	prison := app.Group("/prison", requireAuth)
	prison.Post("/add", prisonHandler.Create)
	prison.Get("/getAll", prisonHandler.List)
	prison.Get("/get/:id", prisonHandler.Get)
	prison.Put("/update/:id", prisonHandler.Update)
	prison.Delete("/delete/:id", prisonHandler.Delete)

	cell := app.Group("/cell", requireAuth)
	cell.Post("/add", cellHandler.Create)
	cell.Get("/getAll", cellHandler.List)
	cell.Get("/get/:id", cellHandler.Get)
	cell.Put("/update/:id", cellHandler.Update)
	cell.Delete("/delete/:id", cellHandler.Delete)

	crime := app.Group("/crime", requireAuth)
	crime.Post("/add", crimeHandler.Create)
	crime.Get("/getAll", crimeHandler.List)
	crime.Get("/get/:id", crimeHandler.Get)
	crime.Put("/update/:id", crimeHandler.Update)
	crime.Delete("/delete/:id", crimeHandler.Delete)

	inmate := app.Group("/inmate", requireAuth)
	inmate.Post("/add", inmateHandler.Create)
	inmate.Get("/getAll", inmateHandler.List)
	inmate.Get("/get/:id", inmateHandler.Get)
	inmate.Put("/update/:id", inmateHandler.Update)
	inmate.Delete("/delete/:id", inmateHandler.Delete)

	visitor := app.Group("/visitor", requireAuth)
	visitor.Post("/add", visitorHandler.Create)
	visitor.Get("/getAll", visitorHandler.List)
	visitor.Get("/get/:id", visitorHandler.Get)
	visitor.Put("/update/:id", visitorHandler.Update)
	visitor.Post("/:id/visit", visitorHandler.AddVisit)
	visitor.Delete("/delete/:id", visitorHandler.Delete)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}
