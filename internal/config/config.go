package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort             = "5000"
	DefaultDatabaseURL      = "sqlite:///blog.db"
	DefaultSessionSecret    = "secret_key_change_me"
	DefaultSessionName      = "quillblog_session"
	DefaultLogLevel         = "info"
	DefaultPBKDF2Iterations = 600000
)

type Config struct {
	Port             string
	DatabaseURL      string
	SessionSecret    string
	SessionName      string
	SessionMaxAge    time.Duration
	LogLevel         string
	Debug            bool
	PBKDF2Iterations int
}

// LoadDefaults fills every field with its default value.
func (c *Config) LoadDefaults() {
	c.Port = DefaultPort
	c.DatabaseURL = DefaultDatabaseURL
	c.SessionSecret = DefaultSessionSecret
	c.SessionName = DefaultSessionName
	c.SessionMaxAge = 30 * 24 * time.Hour
	c.LogLevel = DefaultLogLevel
	c.Debug = false
	c.PBKDF2Iterations = DefaultPBKDF2Iterations
}

// LoadEnv overrides defaults with whatever is set in the environment.
func (c *Config) LoadEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		c.SessionSecret = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("SESSION_MAX_AGE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.SessionMaxAge = d
		} else {
			log.Printf("Ignoring invalid SESSION_MAX_AGE %q", v)
		}
	}
	if v := os.Getenv("PBKDF2_ITERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.PBKDF2Iterations = n
		} else {
			log.Printf("Ignoring invalid PBKDF2_ITERATIONS %q", v)
		}
	}
	if v := os.Getenv("DEBUG"); v != "" {
		c.Debug, _ = strconv.ParseBool(v)
	}
	if os.Getenv("GIN_MODE") == "debug" {
		c.Debug = true
	}
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	c := &Config{}
	c.LoadDefaults()
	c.LoadEnv()
	return c
}

// UsingDefaultSecret reports whether sessions are signed with the built-in secret.
func (c *Config) UsingDefaultSecret() bool {
	return c.SessionSecret == DefaultSessionSecret
}
