package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Kaanops/wishfulfill.github.io/internal/config"
	"github.com/Kaanops/wishfulfill.github.io/internal/database"
	"github.com/Kaanops/wishfulfill.github.io/internal/gateway"
	"github.com/Kaanops/wishfulfill.github.io/internal/handlers"
	"github.com/Kaanops/wishfulfill.github.io/internal/repository"
	"github.com/Kaanops/wishfulfill.github.io/internal/services"
	"github.com/Kaanops/wishfulfill.github.io/pkg/logger"
	"github.com/Kaanops/wishfulfill.github.io/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	logger.InitLogger(cfg.LogLevel)
	logger.Log.Info("Logger initialized")

	// Connect to MongoDB
	client, db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Log.WithError(err).Error("Failed to disconnect from MongoDB")
		}
	}()

	// Payment backend: real PayPal when credentials are present,
	// otherwise the mock gateway.
	var gw gateway.Gateway
	if cfg.Paypal.Configured() {
		gw = gateway.NewPaypalGateway(cfg.Paypal)
	} else {
		gw = gateway.NewMockGateway()
	}
	logger.Log.WithField("backend", gw.Name()).Info("Payment gateway selected")

	// --- Repositories ---
	wishRepo := repository.NewWishRepository(db)
	txnRepo := repository.NewTransactionRepository(db)
	storyRepo := repository.NewStoryRepository(db)

	// --- Services ---
	wishService := services.NewWishService(wishRepo)
	paymentService := services.NewPaymentService(gw, txnRepo, wishService)
	statsService := services.NewStatsService(wishRepo, storyRepo)

	// Seed demo success stories on first startup
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := statsService.SeedDemoData(seedCtx); err != nil {
		logger.Log.WithError(err).Error("Failed to seed success stories")
	}
	seedCancel()

	// --- Handlers ---
	wishHandler := handlers.NewWishHandler(wishService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	metaHandler := handlers.NewMetaHandler(statsService, paymentService)

	// Initialize Gorilla Mux router, everything under /api
	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", metaHandler.HealthHandler).Methods("GET")
	api.HandleFunc("/categories", metaHandler.CategoriesHandler).Methods("GET")
	api.HandleFunc("/statistics", metaHandler.StatisticsHandler).Methods("GET")
	api.HandleFunc("/success-stories", metaHandler.SuccessStoriesHandler).Methods("GET")

	api.HandleFunc("/wishes", wishHandler.CreateWishHandler).Methods("POST")
	api.HandleFunc("/wishes", wishHandler.GetWishesHandler).Methods("GET")
	api.HandleFunc("/wishes/{id}", wishHandler.GetWishByIDHandler).Methods("GET")
	api.HandleFunc("/wishes/{id}/donate", wishHandler.DonateRedirectHandler).Methods("PUT")

	api.HandleFunc("/payments/create", paymentHandler.CreatePaymentHandler).Methods("POST")
	api.HandleFunc("/payments/execute", paymentHandler.ExecutePaymentHandler).Methods("POST")
	api.HandleFunc("/payments/status/{payment_id}", paymentHandler.GetPaymentStatusHandler).Methods("GET")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
