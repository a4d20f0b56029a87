package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/semka95/devcamper/geocoder"
	"github.com/semka95/devcamper/mailer"
	"github.com/semka95/devcamper/store"
)

// Environment variables overriding secrets of the config file
const (
	EnvConfigPath     = "DEVCAMPER_CONFIG"
	EnvMongoPassword  = "DEVCAMPER_MONGO_PASSWORD"
	EnvSMTPPassword   = "DEVCAMPER_SMTP_PASSWORD"
	EnvGeocoderAPIKey = "DEVCAMPER_GEOCODER_API_KEY"
)

// Config stores app configuration
type Config struct {
	Server struct {
		Address       string  `yaml:"address"`
		Timeout       int     `yaml:"timeout"`
		OtlpAddress   string  `yaml:"otlp_address"`
		Env           string  `yaml:"env"`
		UploadDir     string  `yaml:"upload_dir"`
		MaxFileUpload int64   `yaml:"max_file_upload"`
		RateLimit     float64 `yaml:"rate_limit"`
		RateBurst     int     `yaml:"rate_burst"`
	} `yaml:"server"`
	Auth struct {
		KeyID          string `yaml:"key_id"`
		PrivateKeyFile string `yaml:"private_key_file"`
		Algorithm      string `yaml:"algorithm"`
		TokenTTLHours  int    `yaml:"token_ttl_hours"`
		CookieTTLDays  int    `yaml:"cookie_ttl_days"`
	} `yaml:"auth"`
	store.MongoConfig `yaml:"mongo"`

	Redis    geocoder.RedisConfig `yaml:"redis"`
	Geocoder geocoder.Config      `yaml:"geocoder"`
	SMTP     mailer.Config        `yaml:"smtp"`
}

// Production reports whether the app runs in production environment
func (cfg *Config) Production() bool {
	return cfg.Server.Env == "production"
}

// ContextTimeout returns timeout of a single usecase call
func (cfg *Config) ContextTimeout() time.Duration {
	return time.Duration(cfg.Server.Timeout) * time.Second
}

// TokenTTL returns lifetime of issued JWT tokens
func (cfg *Config) TokenTTL() time.Duration {
	if cfg.Auth.TokenTTLHours <= 0 {
		return 30 * 24 * time.Hour
	}
	return time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
}

// CookieTTL returns lifetime of the token cookie
func (cfg *Config) CookieTTL() time.Duration {
	if cfg.Auth.CookieTTLDays <= 0 {
		return 30 * 24 * time.Hour
	}
	return time.Duration(cfg.Auth.CookieTTLDays) * 24 * time.Hour
}

// AppConfig reads config from file and creates config struct. Variables from
// .env file in working directory are loaded first, secrets set in environment
// take precedence over the file.
func AppConfig(cfgPath string, logger *zap.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("can't load .env file: %w", err)
	}

	f, err := os.Open(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("can't open config file: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			logger.Error("can't close config file", zap.Error(err))
		}
	}()

	cfg := new(Config)
	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("can't decode config file: %w", err)
	}

	overrideFromEnv(&cfg.MongoConfig.Password, EnvMongoPassword)
	overrideFromEnv(&cfg.SMTP.Password, EnvSMTPPassword)
	overrideFromEnv(&cfg.Geocoder.APIKey, EnvGeocoderAPIKey)

	return cfg, nil
}

func overrideFromEnv(field *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*field = v
	}
}
