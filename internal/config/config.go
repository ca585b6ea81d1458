package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	LLM    LLMConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Port        string
	Host        string
	Environment string
}

type MongoConfig struct {
	URL      string
	Database string
	Timeout  time.Duration
}

// RedisConfig is optional; when Host is set the chat history store
// uses Redis instead of MongoDB.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// LLMConfig describes the external assistant provider (OpenAI-compatible API).
type LLMConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type CORSConfig struct {
	Origins []string
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8001")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("MONGO_TIMEOUT", 10)
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("LLM_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("LLM_MODEL", "gpt-4o-mini")
	viper.SetDefault("LLM_TIMEOUT", 30)

	cfg := &Config{
		Server: ServerConfig{
			Port:        viper.GetString("SERVER_PORT"),
			Host:        viper.GetString("SERVER_HOST"),
			Environment: viper.GetString("SERVER_ENVIRONMENT"),
		},
		Mongo: MongoConfig{
			URL:      getEnvOrPanic("MONGO_URL"),
			Database: getEnvOrPanic("DB_NAME"),
			Timeout:  time.Duration(viper.GetInt("MONGO_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		LLM: LLMConfig{
			BaseURL: viper.GetString("LLM_BASE_URL"),
			APIKey:  os.Getenv("LLM_API_KEY"),
			Model:   viper.GetString("LLM_MODEL"),
			Timeout: time.Duration(viper.GetInt("LLM_TIMEOUT")) * time.Second,
		},
		CORS: CORSConfig{
			Origins: splitOrigins(viper.GetString("CORS_ORIGINS")),
		},
	}

	if cfg.LLM.APIKey == "" {
		log.Println("WARNING: LLM_API_KEY is not set; chat will answer with fallback replies only")
	}

	return cfg, nil
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnvOrPanic(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("environment variable %s is required", key)
	}
	return v
}
