package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ShirinKhan1/system-design/internal/auth"
	"github.com/ShirinKhan1/system-design/internal/cache"
	"github.com/ShirinKhan1/system-design/internal/config"
	"github.com/ShirinKhan1/system-design/internal/events"
	"github.com/ShirinKhan1/system-design/internal/handler"
	"github.com/ShirinKhan1/system-design/internal/middleware"
	"github.com/ShirinKhan1/system-design/internal/repository"
	"github.com/ShirinKhan1/system-design/internal/service"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// PostgreSQL connection (system of record)
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	// MongoDB connection (order documents)
	mongoCtx, mongoCancel := context.WithTimeout(context.Background(), 10*time.Second)
	mongoClient, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(cfg.MongoURL))
	mongoCancel()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Failed to disconnect MongoDB: %v", err)
		}
	}()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = mongoClient.Ping(pingCtx, readpref.Primary())
	pingCancel()
	if err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	// Redis connection (user cache + event streaming)
	redis, err := cache.NewClient(cfg.RedisAddr, "", 0)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	// --- wiring ---
	publisher := events.NewPublisher(redis.Client)
	defer publisher.Close()

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenService([]byte(cfg.JWTSecret))

	userRepo := repository.NewUserRepository(db)
	cachedUsers := repository.NewCachedUserRepository(userRepo, redis.Client, cfg.CacheTTL)
	packageRepo := repository.NewPackageRepository(db)
	orderRepo := repository.NewOrderRepository(mongoClient.Database(cfg.MongoDatabase))

	userSvc := service.NewUserService(cachedUsers, hasher, tokens, publisher, cfg.AccessTokenTTL)
	packageSvc := service.NewPackageService(packageRepo)
	orderSvc := service.NewOrderService(orderRepo)

	authHandler := handler.NewAuthHandler(userSvc)
	userHandler := handler.NewUserHandler(userSvc)
	packageHandler := handler.NewPackageHandler(packageSvc)
	orderHandler := handler.NewOrderHandler(orderSvc)

	// Setup router
	router := gin.Default()

	router.POST("/token", authHandler.Login)
	router.POST("/register", authHandler.Register)

	authorized := router.Group("/", middleware.AuthMiddleware(tokens))
	{
		authorized.GET("/users", userHandler.ListUsers)
		authorized.GET("/users/:username", userHandler.GetUser)
		authorized.POST("/packages", packageHandler.CreatePackage)
		authorized.GET("/packages", packageHandler.ListPackages)
	}

	// Order endpoints sit outside the auth gate, matching the reference API.
	router.POST("/orders/", orderHandler.CreateOrder)
	router.GET("/orders/", orderHandler.ListOrders)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Audit consumer for user.created events
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		subscriber := events.NewSubscriber(redis.Client, events.SubscriberConfig{
			Group:    "delivery-audit-group",
			Consumer: "audit-consumer-1",
			Stream:   events.UserEventsStream,
			Handler: func(ctx context.Context, eventType, key string, payload []byte) error {
				log.Printf("audit: %s key=%s payload=%s", eventType, key, payload)
				return nil
			},
		})
		if err := subscriber.Start(ctx); err != nil {
			log.Printf("Subscriber stopped: %v", err)
		}
	}()

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down...")
		cancel()
	}()

	log.Printf("Delivery service starting on port %s", cfg.Port)
	// Plain log here: Fatalf would skip the deferred client shutdowns and
	// drop any buffered events still waiting on the publisher.
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
