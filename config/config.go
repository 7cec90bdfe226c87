package config

import (
    "log"
    "os"
    "strconv"

    "github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file when one exists.
// Missing files are fine in deployed environments where everything is
// injected.
func LoadEnv() {
    if err := godotenv.Load(); err != nil {
        log.Println("No .env file found, using system environment variables")
    }
}

// Server configuration
func Port() string {
    return getEnvWithDefault("PORT", "8080")
}

// Mongo configuration
func MongoURI() string {
    return getEnvWithDefault("MONGO_URI", "mongodb://localhost:27017")
}

func MongoDBName() string {
    return getEnvWithDefault("MONGO_DB_NAME", "manchikoppa")
}

// Admin identity. A single privileged account, identified by email
// equality; this is not a role system.
func AdminEmail() string {
    return getEnvWithDefault("ADMIN_EMAIL", "admin@gmail.com")
}

// AdminPasswordHash returns the bcrypt hash of the admin password, or
// "" when only ADMIN_PASSWORD is set (dev fallback).
func AdminPasswordHash() string {
    return os.Getenv("ADMIN_PASSWORD_HASH")
}

func AdminPassword() string {
    return os.Getenv("ADMIN_PASSWORD")
}

// Helper functions
func getEnvWithDefault(key, defaultValue string) string {
    if value := os.Getenv(key); value != "" {
        return value
    }
    return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
    if value := os.Getenv(key); value != "" {
        if intValue, err := strconv.Atoi(value); err == nil {
            return intValue
        }
    }
    return defaultValue
}
