package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration. It is built once at startup
// and handed to components explicitly; nothing reads the environment after
// Load returns.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Ollama OllamaConfig `yaml:"ollama"`
	Store  StoreConfig  `yaml:"store"`
	Auth   AuthConfig   `yaml:"auth"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// OllamaConfig holds extraction backend settings.
type OllamaConfig struct {
	BaseURL     string        `yaml:"base_url"`
	Model       string        `yaml:"model"`
	Temperature float32       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxRetries  int           `yaml:"max_retries"`
	Vision      bool          `yaml:"vision"`
}

// StoreConfig holds working-set settings.
type StoreConfig struct {
	MaxContracts int `yaml:"max_contracts"`
}

// AuthConfig holds JWT settings. Auth is disabled when JWTSecret is empty.
type AuthConfig struct {
	JWTSecret        string `yaml:"jwt_secret"`
	TokenExpireHours int    `yaml:"token_expire_hours"`
	Users            []User `yaml:"users"`
}

// User is a statically configured API user.
type User struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// FindUser finds a configured user by username.
func (c *AuthConfig) FindUser(username string) *User {
	for i := range c.Users {
		if c.Users[i].Username == username {
			return &c.Users[i]
		}
	}
	return nil
}

// Load reads configuration from an optional YAML file, applies environment
// overrides, then fills defaults. A missing file is not an error; a
// malformed one is.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Addr = getEnv("HTTP_ADDR", c.Server.Addr)
	c.Ollama.BaseURL = getEnv("OLLAMA_URL", c.Ollama.BaseURL)
	c.Ollama.Model = getEnv("OLLAMA_MODEL", c.Ollama.Model)
	c.Ollama.Temperature = getEnvAsFloat32("OLLAMA_TEMPERATURE", c.Ollama.Temperature)
	c.Ollama.Timeout = getEnvAsDuration("OLLAMA_TIMEOUT", c.Ollama.Timeout)
	c.Ollama.MaxRetries = getEnvAsInt("OLLAMA_MAX_RETRIES", c.Ollama.MaxRetries)
	c.Ollama.Vision = getEnvAsBool("OLLAMA_VISION", c.Ollama.Vision)
	c.Store.MaxContracts = getEnvAsInt("STORE_MAX_CONTRACTS", c.Store.MaxContracts)
	c.Auth.JWTSecret = getEnv("AUTH_JWT_SECRET", c.Auth.JWTSecret)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Ollama.BaseURL == "" {
		c.Ollama.BaseURL = "http://localhost:11434"
	}
	if c.Ollama.Model == "" {
		c.Ollama.Model = "gpt-oss:120b"
	}
	if c.Ollama.Temperature <= 0 {
		c.Ollama.Temperature = 0.1
	}
	if c.Ollama.Timeout <= 0 {
		c.Ollama.Timeout = 120 * time.Second
	}
	if c.Auth.TokenExpireHours == 0 {
		c.Auth.TokenExpireHours = 24
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
}

// Helper functions for environment variable parsing.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvAsFloat32(key string, fallback float32) float32 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(f)
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
