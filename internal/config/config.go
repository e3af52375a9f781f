package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/storage"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends selectable through STORE_BACKEND and TOKEN_BACKEND.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendMongo  = "mongo"
	BackendRedis  = "redis"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Tokens    TokenConfig
	Admin     AdminConfig
	MongoDB   MongoDBConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	MinIO     storage.MinIOConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	FrontendURL     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// StoreConfig selects where the content document lives.
type StoreConfig struct {
	Backend     string
	ContentFile string
	AutoInit    bool
}

// TokenConfig selects where issued admin tokens live.
type TokenConfig struct {
	Backend     string
	File        string
	TTL         time.Duration
	RedisPrefix string
}

// AdminConfig is the single operator credential pair.
type AdminConfig struct {
	Email    string
	Password string
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Addr returns host:port, or "" when Redis is not configured.
func (r RedisConfig) Addr() string {
	if r.Host == "" {
		return ""
	}
	return r.Host + ":" + r.Port
}

type RateLimitConfig struct {
	Enabled       bool
	RPS           float64
	Burst         int
	UseRedis      bool
	WindowSeconds int
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("FRONTEND_URL", "*")
	viper.SetDefault("SERVER_READ_TIMEOUT", 30)
	viper.SetDefault("SERVER_WRITE_TIMEOUT", 30)
	viper.SetDefault("SHUTDOWN_TIMEOUT", 10)
	viper.SetDefault("STORE_BACKEND", BackendFile)
	viper.SetDefault("CONTENT_FILE", "database/db.json")
	viper.SetDefault("STORE_AUTO_INIT", false)
	viper.SetDefault("TOKEN_BACKEND", BackendFile)
	viper.SetDefault("TOKENS_FILE", "database/tokens.json")
	viper.SetDefault("TOKEN_TTL_HOURS", 24)
	viper.SetDefault("TOKEN_REDIS_PREFIX", "token:")
	viper.SetDefault("MONGODB_DATABASE", "faqdesk")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("RATE_LIMIT_RPS", 10)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("RATE_LIMIT_USE_REDIS", false)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)
	viper.SetDefault("MINIO_USE_SSL", false)
	viper.SetDefault("MINIO_BUCKET", "faqdesk")

	// SERVER_PORT wins, PORT is what most hosting platforms inject.
	port := viper.GetString("SERVER_PORT")
	if port == "" {
		port = viper.GetString("PORT")
	}
	if port == "" {
		port = "3001"
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            port,
			Host:            viper.GetString("SERVER_HOST"),
			Environment:     viper.GetString("SERVER_ENVIRONMENT"),
			FrontendURL:     viper.GetString("FRONTEND_URL"),
			ReadTimeout:     time.Duration(viper.GetInt("SERVER_READ_TIMEOUT")) * time.Second,
			WriteTimeout:    time.Duration(viper.GetInt("SERVER_WRITE_TIMEOUT")) * time.Second,
			ShutdownTimeout: time.Duration(viper.GetInt("SHUTDOWN_TIMEOUT")) * time.Second,
		},
		Store: StoreConfig{
			Backend:     strings.ToLower(viper.GetString("STORE_BACKEND")),
			ContentFile: viper.GetString("CONTENT_FILE"),
			AutoInit:    viper.GetBool("STORE_AUTO_INIT"),
		},
		Tokens: TokenConfig{
			Backend:     strings.ToLower(viper.GetString("TOKEN_BACKEND")),
			File:        viper.GetString("TOKENS_FILE"),
			TTL:         time.Duration(viper.GetInt("TOKEN_TTL_HOURS")) * time.Hour,
			RedisPrefix: viper.GetString("TOKEN_REDIS_PREFIX"),
		},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		MongoDB: MongoDBConfig{
			URI:      viper.GetString("MONGODB_URI"),
			Database: viper.GetString("MONGODB_DATABASE"),
			Timeout:  time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Enabled:       viper.GetBool("RATE_LIMIT_ENABLED"),
			RPS:           viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         viper.GetInt("RATE_LIMIT_BURST"),
			UseRedis:      viper.GetBool("RATE_LIMIT_USE_REDIS"),
			WindowSeconds: viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
		MinIO: storage.MinIOConfig{
			Endpoint:  viper.GetString("MINIO_ENDPOINT"),
			AccessKey: viper.GetString("MINIO_ACCESS_KEY"),
			SecretKey: viper.GetString("MINIO_SECRET_KEY"),
			UseSSL:    viper.GetBool("MINIO_USE_SSL"),
			Bucket:    viper.GetString("MINIO_BUCKET"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Backend {
	case BackendFile, BackendMemory:
	case BackendMongo:
		if c.MongoDB.URI == "" {
			return fmt.Errorf("STORE_BACKEND=mongo requires MONGODB_URI")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.Store.Backend)
	}
	switch c.Tokens.Backend {
	case BackendFile:
	case BackendRedis:
		if c.Redis.Host == "" {
			return fmt.Errorf("TOKEN_BACKEND=redis requires REDIS_HOST")
		}
	case BackendMongo:
		if c.MongoDB.URI == "" {
			return fmt.Errorf("TOKEN_BACKEND=mongo requires MONGODB_URI")
		}
	default:
		return fmt.Errorf("unknown TOKEN_BACKEND %q", c.Tokens.Backend)
	}
	return nil
}
