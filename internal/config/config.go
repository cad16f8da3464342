package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type Config struct {
	Port     string         `yaml:"port"`
	Env      string         `yaml:"env"`
	LogLevel string         `yaml:"log_level"`
	Storage  StorageConfig  `yaml:"storage"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	Token    TokenConfig    `yaml:"token"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Database string `yaml:"database"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

type TokenConfig struct {
	Secret string        `yaml:"secret"`
	TTL    time.Duration `yaml:"ttl"`
}

func defaults() *Config {
	return &Config{
		Port:     "5000",
		Env:      "prod",
		LogLevel: "info",
		Storage:  StorageConfig{Driver: DriverMongo},
		Mongo:    MongoConfig{Database: "homzen"},
		Redis:    RedisConfig{TTL: 5 * time.Minute},
		Token:    TokenConfig{TTL: time.Hour},
	}
}

// Load reads .env (if present), then the YAML file named by CONFIG_FILE
// (if set), then lets environment variables override both.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.Storage.Driver = getEnv("STORAGE_DRIVER", cfg.Storage.Driver)

	cfg.Mongo.URI = getEnv("MONGODB_URI", cfg.Mongo.URI)
	cfg.Mongo.User = getEnv("DB_USER", cfg.Mongo.User)
	cfg.Mongo.Password = getEnv("DB_PASS", cfg.Mongo.Password)
	cfg.Mongo.Host = getEnv("DB_HOST", cfg.Mongo.Host)
	cfg.Mongo.Database = getEnv("DB_NAME", cfg.Mongo.Database)

	cfg.Postgres.DSN = getEnv("DATABASE_URL", cfg.Postgres.DSN)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvInt("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.TTL = getEnvDuration("CACHE_TTL", cfg.Redis.TTL)

	cfg.Token.Secret = getEnv("ACCESS_TOKEN_SECRET", cfg.Token.Secret)
	cfg.Token.TTL = getEnvDuration("TOKEN_TTL", cfg.Token.TTL)

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	return nil
}

func (c *Config) Validate() error {
	if c.Token.Secret == "" {
		return fmt.Errorf("ACCESS_TOKEN_SECRET is required")
	}

	switch c.Storage.Driver {
	case DriverMongo:
		if c.Mongo.URI == "" && (c.Mongo.User == "" || c.Mongo.Host == "") {
			return fmt.Errorf("MONGODB_URI or DB_USER/DB_PASS/DB_HOST is required")
		}
	case DriverPostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	return nil
}

// MongoURI returns the explicit URI, or builds an Atlas-style one from the credentials.
func (c *Config) MongoURI() string {
	if c.Mongo.URI != "" {
		return c.Mongo.URI
	}

	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(c.Mongo.User), url.QueryEscape(c.Mongo.Password), c.Mongo.Host)
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := cast.ToIntE(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := cast.ToDurationE(val); err == nil {
			return d
		}
	}
	return defaultVal
}
