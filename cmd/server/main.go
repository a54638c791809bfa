package main

import (
	"log"
	"os"
	"time"

	_ "github.com/devicepro80/dhstore/config"
	"github.com/devicepro80/dhstore/database"
	"github.com/devicepro80/dhstore/internal/handlers"
	"github.com/devicepro80/dhstore/internal/middleware"
	"github.com/devicepro80/dhstore/internal/models"
	"github.com/devicepro80/dhstore/internal/notify"
	"github.com/devicepro80/dhstore/internal/stores"
	"github.com/devicepro80/dhstore/internal/token"
	"github.com/devicepro80/dhstore/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

func main() {
	db, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}
	if err := database.ProcessMigrations(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		log.Fatal("JWT_SECRET is not set")
	}

	userStore := &stores.GormUserStore{DB: db}
	categoryStore := &stores.GormCategoryStore{DB: db}
	itemStore := &stores.GormItemStore{DB: db}
	txnStore := &stores.GormTxnStore{DB: db}
	saleStore := &stores.GormSaleStore{DB: db}
	analyticsStore := &stores.GormAnalyticsStore{DB: db}

	hasher := user.BcryptHasher{}
	tokenService := &token.JWTService{Secret: secret}

	notifier := notify.NewService(itemStore, notify.NewSMTPMailerFromEnv())
	defer notifier.Close()

	categoryCache := cache.New(5*time.Minute, 10*time.Minute)
	redisClient := database.ConnectRedis()

	auth := handlers.NewAuthHandler(userStore, hasher, tokenService)
	users := handlers.NewUserHandler(userStore, hasher)
	categories := handlers.NewCategoryHandler(categoryStore, categoryCache)
	items := handlers.NewItemHandler(itemStore)
	inventory := handlers.NewInventoryHandler(txnStore, notifier)
	sales := handlers.NewSaleHandler(saleStore, notifier)
	analytics := handlers.NewAnalyticsHandler(analyticsStore)

	// Initialize router
	r := gin.Default()
	r.Use(middleware.CORS(frontendOrigin()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	r.POST("/auth/login", middleware.RateLimiter(redisClient), auth.Login)

	protected := r.Group("/")
	protected.Use(middleware.RequireAuth(tokenService))
	{
		admin := protected.Group("/", middleware.RequireRole(models.RoleAdmin))
		admin.GET("/users", users.List)
		admin.POST("/users", users.Create)

		manager := protected.Group("/", middleware.RequireRole(models.RoleManager))
		manager.POST("/categories", categories.Create)
		manager.POST("/items", items.Create)
		manager.GET("/analytics/overview", analytics.Overview)

		staff := protected.Group("/", middleware.RequireRole(models.RoleStaff))
		staff.GET("/categories", categories.List)
		staff.GET("/items", items.Search)
		staff.GET("/items/low-stock", items.LowStock)
		staff.POST("/inventory/txn", inventory.RecordTxn)
		staff.POST("/sales", sales.RecordSale)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func frontendOrigin() string {
	if origin := os.Getenv("FRONTEND_ORIGIN"); origin != "" {
		return origin
	}
	return "http://localhost:5173"
}
