package main

import (
    "context"
    "encoding/json"
    "fmt"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/gorilla/mux"
    "github.com/rs/cors"
    "go.mongodb.org/mongo-driver/bson"

    "github.com/akashsp-05/manchikoppa-portal/config"
    "github.com/akashsp-05/manchikoppa-portal/handlers"
    "github.com/akashsp-05/manchikoppa-portal/middleware"
)

type HealthResponse struct {
    Status    string `json:"status"`
    DBStatus  string `json:"db_status"`
    DBDetails struct {
        Database    string   `json:"database"`
        Collections []string `json:"collections,omitempty"`
    } `json:"db_details"`
    Error string `json:"error,omitempty"`
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
    response := HealthResponse{
        Status: "ok",
    }

    if config.MongoClient == nil {
        response.Status = "error"
        response.DBStatus = "not_initialized"
        response.Error = "Database connection not initialized"
    } else if err := config.CheckMongoHealth(); err != nil {
        response.Status = "error"
        response.DBStatus = "connection_error"
        response.Error = fmt.Sprintf("Database ping failed: %v", err)
    } else {
        response.DBStatus = "connected"
        response.DBDetails.Database = config.MongoDBName()

        ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
        defer cancel()
        if names, err := config.MongoDB.ListCollectionNames(ctx, bson.M{}); err == nil {
            response.DBDetails.Collections = names
        }
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(response)
}

func main() {
    startTime := time.Now()
    log.Printf("Starting server initialization at %s", startTime.Format(time.RFC3339))

    config.LoadEnv()
    port := config.Port()

    log.Println("Initializing MongoDB...")
    if err := config.ConnectWithRetry(5); err != nil {
        log.Fatalf("Failed to initialize MongoDB: %v", err)
    }
    log.Println("MongoDB initialized successfully")
    defer config.CloseDB()

    if err := config.InitBlobStore(); err != nil {
        log.Fatalf("Failed to initialize blob store: %v", err)
    }

    config.InitCache()

    r := mux.NewRouter()

    // CORS configuration
    corsHandler := cors.New(cors.Options{
        AllowedOrigins: []string{
            "http://localhost:3000",
            "http://localhost:5173",
            "http://127.0.0.1:3000",
            "https://manchikoppa-portal.web.app",
            "https://manchikoppa-portal.firebaseapp.com",
        },
        AllowedMethods: []string{
            "GET", "POST", "PUT", "DELETE", "OPTIONS",
        },
        AllowedHeaders: []string{
            "Accept",
            "Authorization",
            "Content-Type",
            "X-Requested-With",
            "Origin",
        },
        ExposedHeaders: []string{
            "Content-Length",
            "Content-Type",
        },
        AllowCredentials: false,
        MaxAge:           86400,
    })

    // Apply middlewares in correct order
    r.Use(corsHandler.Handler)
    r.Use(middleware.RecoveryMiddleware)
    r.Use(middleware.LoggingMiddleware)
    r.Use(middleware.CompressHandler)

    // API routes
    api := r.PathPrefix("/api/v1").Subrouter()
    registerRoutes(api)
    log.Println("Routes registered successfully")

    // Health check endpoint
    api.HandleFunc("/health/detailed", healthCheck).Methods("GET")

    srv := &http.Server{
        Handler:           r,
        Addr:              ":" + port,
        WriteTimeout:      15 * time.Second,
        ReadTimeout:       15 * time.Second,
        IdleTimeout:       60 * time.Second,
        ReadHeaderTimeout: 5 * time.Second,
        MaxHeaderBytes:    1 << 20,
    }

    serverErrors := make(chan error, 1)

    go func() {
        log.Printf("Starting server on port %s...", port)
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Printf("Server error: %v", err)
            serverErrors <- err
        }
    }()

    log.Printf("Server is running at http://localhost:%s", port)
    log.Printf("Health check endpoint: http://localhost:%s/api/v1/health", port)

    // Handle graceful shutdown
    stop := make(chan os.Signal, 1)
    signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

    select {
    case <-stop:
        log.Println("Shutdown signal received")
    case err := <-serverErrors:
        log.Printf("Server error received: %v", err)
    }

    log.Println("Shutting down server...")
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    if err := srv.Shutdown(ctx); err != nil {
        log.Printf("Error during server shutdown: %v", err)
    } else {
        log.Println("Server shutdown completed successfully")
    }
}

func registerRoutes(api *mux.Router) {
    // Auth routes
    api.HandleFunc("/auth/login", handlers.Login).Methods("POST")
    api.HandleFunc("/auth/session", middleware.AdminOnly(handlers.Session)).Methods("GET")

    // Villager routes
    api.HandleFunc("/villagers", handlers.CreateVillager).Methods("POST")
    api.HandleFunc("/villagers/search", handlers.SearchVillagers).Methods("GET")
    api.HandleFunc("/villagers/{id}", middleware.AdminOnly(handlers.DeleteVillager)).Methods("DELETE")

    // Business routes
    api.HandleFunc("/businesses/categories", handlers.GetBusinessCategories).Methods("GET")
    api.HandleFunc("/businesses", handlers.GetBusinesses).Methods("GET")
    api.HandleFunc("/businesses", handlers.CreateBusiness).Methods("POST")
    api.HandleFunc("/businesses/{id}/staff", middleware.AdminOnly(handlers.UpdateBusinessStaff)).Methods("PUT")
    api.HandleFunc("/businesses/{id}", middleware.AdminOnly(handlers.DeleteBusiness)).Methods("DELETE")

    // Feedback routes
    api.HandleFunc("/feedback", handlers.SubmitFeedback).Methods("POST")
    api.HandleFunc("/feedback", middleware.AdminOnly(handlers.GetFeedback)).Methods("GET")
    api.HandleFunc("/feedback/{id}", middleware.AdminOnly(handlers.DeleteFeedback)).Methods("DELETE")

    // Announcement routes
    api.HandleFunc("/announcements", handlers.GetAnnouncements).Methods("GET")
    api.HandleFunc("/announcements", middleware.AdminOnly(handlers.CreateAnnouncement)).Methods("POST")

    // Photo blob routes
    api.HandleFunc("/photos/{key:.+}", handlers.GetPhoto).Methods("GET")

    // Health check
    api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusOK)
        w.Write([]byte("OK"))
    }).Methods("GET")
}
