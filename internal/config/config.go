package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is loaded from the environment. An empty MongoURI selects the
// in-memory store.
type Config struct {
	Port            string
	MongoURI        string
	MongoDB         string
	LogLevel        string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

func LoadConfig() *Config {
	// Load .env only when present; deployments rely on real env vars.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("error loading .env file:", err)
		}
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		MongoURI:        getEnv("MONGO_URI", ""),
		MongoDB:         getEnv("MONGO_DB", "productCatalog"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
		WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
		ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
