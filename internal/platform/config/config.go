package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/finmatrix/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	CORSAllowedOrigins []string

	// Formatted limiter rates, e.g. "5-M" for five requests per minute.
	LoginRateLimit  string
	ImportRateLimit string
	// RedisAddress shares rate limit counters between replicas; empty keeps them in process.
	RedisAddress string

	MaxImportBytes int64
	ReportCurrency string
	SeedDemoData   bool
}

// jwtSecretBytes is the size of the signing key generated when none is configured.
const jwtSecretBytes = 32

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "finmatrix")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("IMPORT_RATE_LIMIT", "30-M")
	v.SetDefault("REDIS_ADDRESS", "")
	v.SetDefault("MAX_IMPORT_BYTES", 1<<20)
	v.SetDefault("REPORT_CURRENCY", utils.DefaultReportCurrency)
	v.SetDefault("SEED_DEMO_DATA", true)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTIssuer:       v.GetString("JWT_ISSUER"),
		LoginRateLimit:  v.GetString("LOGIN_RATE_LIMIT"),
		ImportRateLimit: v.GetString("IMPORT_RATE_LIMIT"),
		RedisAddress:    v.GetString("REDIS_ADDRESS"),
		MaxImportBytes:  v.GetInt64("MAX_IMPORT_BYTES"),
		ReportCurrency:  strings.ToUpper(v.GetString("REPORT_CURRENCY")),
		SeedDemoData:    v.GetBool("SEED_DEMO_DATA"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, errors.New("JWT_SECRET must be set in production")
		}
		secret, err := utils.GenerateSigningKey(jwtSecretBytes)
		if err != nil {
			return nil, fmt.Errorf("generating JWT secret: %w", err)
		}
		cfg.JWTSecret = secret
		log.Println("Warning: JWT_SECRET environment variable not set. Using a random key; tokens will not survive a restart.")
	}

	// e.g. "60m", "1h"
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "finmatrix"
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.MaxImportBytes <= 0 {
		cfg.MaxImportBytes = 1 << 20
	}
	if cfg.ReportCurrency == "" {
		cfg.ReportCurrency = utils.DefaultReportCurrency
	}

	return cfg, nil
}
