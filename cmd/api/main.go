package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"ringkas-aset/internal/ai"
	"ringkas-aset/internal/handler"
	"ringkas-aset/internal/middleware"
	"ringkas-aset/internal/model"
	"ringkas-aset/internal/repository"
	"ringkas-aset/internal/service"
	"ringkas-aset/internal/ws"
	"ringkas-aset/pkg/database"
	"ringkas-aset/pkg/storage"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	db.AutoMigrate(&model.Location{}, &model.User{}, &model.FixedAsset{}, &model.ConsumableAsset{}, &model.AssetTransaction{})

	// 3. Seed default admin and starter locations
	seedAdminAndLocations(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Setup photo storage
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	photoStorage, err := storage.NewDiskStorage(uploadDir, baseURL+"/uploads")
	if err != nil {
		log.Fatal("Failed to set up photo storage: ", err)
	}

	// 6. Dependency Injection (Wiring Layers)
	locationRepo := repository.NewLocationRepo(db)
	fixedRepo := repository.NewFixedAssetRepo(db)
	consumableRepo := repository.NewConsumableAssetRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	userRepo := repository.NewUserRepo(db)

	assetService := service.NewAssetService(fixedRepo, consumableRepo, locationRepo, txRepo, wsHub)
	txService := service.NewTransactionService(txRepo, fixedRepo, consumableRepo)
	locationService := service.NewLocationService(locationRepo)
	reportService := service.NewReportService(fixedRepo, locationRepo)
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, locationRepo)
	assistantService := service.NewAssistantService(assetService, ai.NewClient(os.Getenv("OPENAI_API_KEY")))

	assetHandler := handler.NewAssetHandler(assetService)
	locationHandler := handler.NewLocationHandler(locationService)
	txHandler := handler.NewTransactionHandler(txService)
	reportHandler := handler.NewReportHandler(reportService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	assistantHandler := handler.NewAssistantHandler(assistantService)
	uploadHandler := handler.NewUploadHandler(photoStorage)

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Ringkas Aset v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// Uploaded asset photos are public by URL
	app.Static("/uploads", uploadDir)

	// 8. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/signup", authHandler.SignUp)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Locations (reads for everyone in scope, writes Admin only)
	protected.Get("/locations", locationHandler.GetLocations)
	protected.Post("/locations", middleware.RequireAdmin(), locationHandler.CreateLocation)
	protected.Put("/locations/:id", middleware.RequireAdmin(), locationHandler.UpdateLocation)
	protected.Delete("/locations/:id", middleware.RequireAdmin(), locationHandler.DeleteLocation)

	// Fixed assets
	protected.Get("/assets/fixed", assetHandler.GetFixedAssets)
	protected.Post("/assets/fixed", assetHandler.CreateFixedAsset)
	protected.Put("/assets/fixed/:id", assetHandler.UpdateFixedAsset)
	protected.Delete("/assets/fixed/:id", assetHandler.DeleteFixedAsset)
	protected.Post("/assets/fixed/:id/report-damage", assetHandler.ReportDamage)

	// Consumable assets
	protected.Get("/assets/consumable", assetHandler.GetConsumableAssets)
	protected.Post("/assets/consumable", assetHandler.CreateConsumableAsset)
	protected.Put("/assets/consumable/:id", assetHandler.UpdateConsumableAsset)
	protected.Delete("/assets/consumable/:id", assetHandler.DeleteConsumableAsset)
	protected.Post("/assets/consumable/:id/take", assetHandler.TakeStock)

	// Audit log (read-only)
	protected.Get("/transactions", txHandler.GetTransactions)
	protected.Get("/transactions/:id", txHandler.GetTransaction)

	// Reports
	protected.Get("/reports/summary", reportHandler.GetInventoryReport)
	protected.Get("/reports/export.pdf", reportHandler.ExportPDF)

	// AI assistant
	protected.Post("/assistant/ask", assistantHandler.Ask)

	// Photo upload
	protected.Post("/uploads/asset-photo", uploadHandler.UploadAssetPhoto)

	// User Management (Admin only)
	protected.Get("/users", middleware.RequireAdmin(), userHandler.GetUsers)
	protected.Get("/users/:id", middleware.RequireAdmin(), userHandler.GetUser)
	protected.Post("/users", middleware.RequireAdmin(), userHandler.CreateUser)
	protected.Put("/users/:id", middleware.RequireAdmin(), userHandler.UpdateUser)
	protected.Delete("/users/:id", middleware.RequireAdmin(), userHandler.DeleteUser)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 9. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdminAndLocations creates the default admin account and a couple of
// starter locations on an empty database
func seedAdminAndLocations(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)
	locationRepo := repository.NewLocationRepo(db)

	if _, err := userRepo.FindByEmail("admin@sekolah.id"); err != nil {
		admin := &model.User{
			Email:    "admin@sekolah.id",
			FullName: "Administrator Sekolah",
			Role:     model.RoleAdmin,
			IsActive: true,
		}
		admin.CreatedBy = "system"
		admin.UpdatedBy = "system"

		if err := admin.SetPassword("admin123"); err != nil {
			log.Printf("Warning: Failed to hash admin password: %v", err)
			return
		}
		if err := userRepo.Create(admin); err != nil {
			log.Printf("Warning: Failed to create admin user: %v", err)
		} else {
			log.Println("Admin user created: admin@sekolah.id / admin123")
		}
	}

	locations, err := locationRepo.FindAll()
	if err != nil || len(locations) > 0 {
		return
	}
	for _, name := range []string{"Ruang Kelas 1A", "Ruang Guru", "Gudang"} {
		loc := &model.Location{Name: name}
		loc.CreatedBy = "system"
		loc.UpdatedBy = "system"
		if err := locationRepo.Create(loc); err != nil {
			log.Printf("Warning: Failed to seed location %q: %v", name, err)
		}
	}
}
