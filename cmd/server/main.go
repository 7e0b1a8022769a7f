package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dincharya/internal/config"
	"dincharya/internal/database"
	"dincharya/internal/handlers"
	"dincharya/internal/logging"
	"dincharya/internal/services"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Initialize structured logging (JSON in production, text in dev)
	logging.Init()

	log.Println("🚀 Starting Din Charya AI Server...")

	// Load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  No .env file found or error loading it: %v", err)
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// Load configuration
	cfg := config.Load()
	log.Printf("📋 Configuration loaded (Port: %s, DB: %s)", cfg.Port, cfg.DBName)

	if cfg.MongoURL == "" {
		log.Fatal("❌ MONGO_URL environment variable is required")
	}

	// Initialize MongoDB (opened once here, closed once at shutdown; the
	// driver's pool makes the handle safe for overlapping requests)
	db, err := database.NewMongoDB(cfg.MongoURL, cfg.DBName)
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}
	defer db.Close(context.Background())

	if err := db.Initialize(context.Background()); err != nil {
		log.Fatalf("❌ Failed to initialize MongoDB indexes: %v", err)
	}

	// Initialize services
	weatherService := services.NewWeatherService(cfg.OpenWeatherKey)
	llmService := services.NewLLMService(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	chatStore := services.NewChatStore(db)
	routineStore := services.NewRoutineStore(db)
	chatService := services.NewChatService(weatherService, llmService, routineStore, chatStore)
	log.Println("✅ Services initialized")

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Din Charya AI v1.0",
		// The LLM call carries no timeout of its own, so keep the server
		// timeouts generous enough for slow completions.
		ReadTimeout:  300 * time.Second,
		WriteTimeout: 300 * time.Second,
		IdleTimeout:  300 * time.Second,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())

	// Prometheus metrics middleware
	prometheus := fiberprometheus.New("dincharya")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)
	log.Println("📊 Prometheus metrics endpoint enabled at /metrics")

	// CORS configuration with environment-based origins.
	// Fiber's CORS middleware does not allow AllowCredentials with wildcard
	// origins, and with the wildcard default credentials aren't needed.
	allowCredentials := cfg.CORSOrigins != "*"
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: allowCredentials,
	}))
	log.Printf("🔒 CORS allowed origins: %s", cfg.CORSOrigins)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	chatHandler := handlers.NewChatHandler(chatService, chatStore)
	weatherHandler := handlers.NewWeatherHandler(weatherService)
	routineHandler := handlers.NewRoutineHandler(routineStore)
	newsHandler := handlers.NewNewsHandler()

	// Routes

	// Health check (public)
	app.Get("/health", healthHandler.Handle)

	api := app.Group("/api")
	{
		api.Get("/", healthHandler.Root)
		api.Post("/chat", chatHandler.Chat)
		api.Get("/chat/history/:user_id", chatHandler.History)
		api.Get("/weather", weatherHandler.Get)
		api.Post("/routine", routineHandler.Save)
		api.Get("/routine/:user_id", routineHandler.History)
		api.Get("/news", newsHandler.List)
	}

	// Start server
	log.Printf("✅ Server ready on port %s", cfg.Port)
	log.Printf("📡 Health check: http://localhost:%s/health", cfg.Port)

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("\n🛑 Shutting down server...")

		if err := app.Shutdown(); err != nil {
			log.Printf("⚠️ Error shutting down server: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
