package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Env            string
	Port           string
	RequestTimeout time.Duration

	// Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Auth
	JWTSecret         string
	JWTExpirationDur  time.Duration
	OwnerPasswordHash string
	PipelineAPIKey    string

	// Market data
	FinnhubAPIKey     string
	MarketMinInterval time.Duration
	MarketCacheTTL    time.Duration
	PriceRefreshCron  string

	// Document recognition
	OCRBackend          string
	TesseractPath       string
	OCRLanguages        string
	GeminiAPIKey        string
	GeminiModel         string
	AutoCreateThreshold int
	UploadDir           string
	MaxUploadMB         int64
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Env:            getEnv("ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),

		// Database
		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "depotlens"),
		DBPassword: getEnv("DB_PASSWORD", "depotlens"),
		DBName:     getEnv("DB_NAME", "depotlens"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "depotlens.db"),

		// Auth
		JWTSecret:         getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
		JWTExpirationDur:  getDuration("JWT_EXPIRES_IN", 24*time.Hour),
		OwnerPasswordHash: getEnv("OWNER_PASSWORD_HASH", ""),
		PipelineAPIKey:    getEnv("PIPELINE_API_KEY", ""),

		// Market data
		FinnhubAPIKey:     getEnv("FINNHUB_API_KEY", "demo"),
		MarketMinInterval: getDuration("MARKET_MIN_INTERVAL", 1100*time.Millisecond),
		MarketCacheTTL:    getDuration("MARKET_CACHE_TTL", 5*time.Minute),
		PriceRefreshCron:  getEnv("PRICE_REFRESH_CRON", ""),

		// Document recognition
		OCRBackend:          getEnv("OCR_BACKEND", "tesseract"),
		TesseractPath:       getEnv("TESSERACT_PATH", "tesseract"),
		OCRLanguages:        getEnv("OCR_LANGUAGES", "deu+eng"),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		GeminiModel:         getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		AutoCreateThreshold: getInt("AUTO_CREATE_THRESHOLD", 60),
		UploadDir:           getEnv("UPLOAD_DIR", os.TempDir()),
		MaxUploadMB:         int64(getInt("MAX_UPLOAD_MB", 16)),
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// AuthEnabled reports whether an owner password is configured.
func (c *Config) AuthEnabled() bool {
	return c.OwnerPasswordHash != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration parses a duration variable, falling back to the default when unset or invalid
func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

// getInt parses an integer variable, falling back to the default when unset or invalid
func getInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, raw, defaultValue)
		return defaultValue
	}
	return n
}
