package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"golang.org/x/crypto/bcrypt"
)

// Config holds everything read at process start. Nothing is re-read after
// Load returns; there is no hot-reload.
type Config struct {
	Port       string
	DBPath     string
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
	LogLevel   string
}

const (
	defaultPort     = "8080"
	defaultDBPath   = "contactbook.db"
	defaultTokenTTL = time.Hour
	defaultLogLevel = "info"
)

var errMissingJWTSecret = errors.New("jwt secret is not set (config jwt.secret or env JWT_SECRET_KEY)")

// Load reads configs/config.yml (if present) and binds the environment
// variables the deployment provides: DATABASE_URI for the sqlite path and
// JWT_SECRET_KEY for the signing secret. Env always wins over the file.
func Load() (*Config, error) {
	v := viper.New()
	v.AddConfigPath("configs")
	v.SetConfigName("config")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine as long as the env supplies what we need.
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.BindEnv("db.path", "DATABASE_URI"); err != nil {
		return nil, fmt.Errorf("bind DATABASE_URI: %w", err)
	}
	if err := v.BindEnv("jwt.secret", "JWT_SECRET_KEY"); err != nil {
		return nil, fmt.Errorf("bind JWT_SECRET_KEY: %w", err)
	}

	v.SetDefault("port", defaultPort)
	v.SetDefault("db.path", defaultDBPath)
	v.SetDefault("jwt.ttl", defaultTokenTTL)
	v.SetDefault("bcrypt.cost", bcrypt.DefaultCost)
	v.SetDefault("log.level", defaultLogLevel)

	cfg := &Config{
		Port:       v.GetString("port"),
		DBPath:     v.GetString("db.path"),
		JWTSecret:  v.GetString("jwt.secret"),
		TokenTTL:   v.GetDuration("jwt.ttl"),
		BcryptCost: v.GetInt("bcrypt.cost"),
		LogLevel:   v.GetString("log.level"),
	}

	if cfg.JWTSecret == "" {
		return nil, errMissingJWTSecret
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	return cfg, nil
}
