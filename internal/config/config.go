package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Server struct {
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"dsn"`
	} `yaml:"database"`

	JWT struct {
		Secret          string `yaml:"secret"`
		AccessTTLMin    int    `yaml:"access_ttl_minutes"`
		RefreshTTLHours int    `yaml:"refresh_ttl_hours"`
	} `yaml:"jwt"`

	S3 struct {
		Endpoint        string `yaml:"endpoint"`
		Region          string `yaml:"region"`
		AccessKeyID     string `yaml:"access_key_id"`
		SecretAccessKey string `yaml:"secret_access_key"`
		Bucket          string `yaml:"bucket"`
		ForcePathStyle  bool   `yaml:"force_path_style"`
	} `yaml:"s3"`

	Mail struct {
		APIKey string `yaml:"api_key"`
		Sender string `yaml:"sender"`
	} `yaml:"mail"`

	Redis struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		PoolSize int    `yaml:"pool_size"`
	} `yaml:"redis"`

	RateLimit struct {
		AuthPerMinute int `yaml:"auth_per_minute"`
	} `yaml:"rate_limit"`

	Activation struct {
		CodeLength int `yaml:"code_length"`
		TTLMin     int `yaml:"ttl_minutes"`
	} `yaml:"activation"`

	Presign struct {
		TTLMin int `yaml:"ttl_minutes"`
	} `yaml:"presign"`
}

// Load reads a YAML config file and applies environment overrides.
// Secrets (DB DSN, JWT secret, S3 keys, mail API key) are expected to
// come from the environment in production.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT secret is not configured (set JWT_SECRET)")
	}
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.Env = "development"
	cfg.JWT.AccessTTLMin = 15
	cfg.JWT.RefreshTTLHours = 24 * 7
	cfg.S3.Region = "eu-west-1"
	cfg.Redis.Host = "localhost"
	cfg.Redis.Port = 6379
	cfg.Redis.PoolSize = 10
	cfg.RateLimit.AuthPerMinute = 30
	cfg.Activation.CodeLength = 6
	cfg.Activation.TTLMin = 20
	cfg.Presign.TTLMin = 20
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	overrideString(&cfg.Server.Env, "APP_ENV")
	overrideInt(&cfg.Server.Port, "PORT")
	overrideString(&cfg.Database.DSN, "DATABASE_DSN")
	overrideString(&cfg.JWT.Secret, "JWT_SECRET")
	overrideInt(&cfg.JWT.AccessTTLMin, "JWT_ACCESS_TTL_MINUTES")
	overrideInt(&cfg.JWT.RefreshTTLHours, "JWT_REFRESH_TTL_HOURS")
	overrideString(&cfg.S3.Endpoint, "S3_ENDPOINT")
	overrideString(&cfg.S3.Region, "S3_REGION")
	overrideString(&cfg.S3.AccessKeyID, "S3_ACCESS_KEY_ID")
	overrideString(&cfg.S3.SecretAccessKey, "S3_SECRET_ACCESS_KEY")
	overrideString(&cfg.S3.Bucket, "S3_BUCKET")
	overrideString(&cfg.Mail.APIKey, "MAIL_API_KEY")
	overrideString(&cfg.Mail.Sender, "MAIL_SENDER")
	overrideString(&cfg.Redis.Host, "REDIS_HOST")
	overrideInt(&cfg.Redis.Port, "REDIS_PORT")
	overrideString(&cfg.Redis.Password, "REDIS_PASSWORD")
	overrideInt(&cfg.Redis.DB, "REDIS_DB")
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// AccessTTL returns the access token lifetime
func (c *Config) AccessTTL() time.Duration {
	return time.Duration(c.JWT.AccessTTLMin) * time.Minute
}

// RefreshTTL returns the refresh token lifetime
func (c *Config) RefreshTTL() time.Duration {
	return time.Duration(c.JWT.RefreshTTLHours) * time.Hour
}

// ActivationTTL returns the activation code lifetime
func (c *Config) ActivationTTL() time.Duration {
	return time.Duration(c.Activation.TTLMin) * time.Minute
}

// PresignTTL returns the presigned URL lifetime
func (c *Config) PresignTTL() time.Duration {
	return time.Duration(c.Presign.TTLMin) * time.Minute
}
