package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DB     DBConfig
	Server ServerConfig
	Redis  RedisConfig
	JWT    JWTConfig
	Logger LoggerConfig
	CORS   CORSConfig
}

type DBConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	BodyLimit    int
}

// RedisConfig configures the optional quiz read cache. An empty Address disables it.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
	QuizTTL  time.Duration
}

type JWTConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

type CORSConfig struct {
	AllowOrigins string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.driver", DriverPostgres)
	v.SetDefault("db.dsn", "postgres://localhost:5432/learnhub?sslmode=disable")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "20s")
	v.SetDefault("server.write_timeout", "20s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.body_limit", 4*1024*1024)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.quiz_ttl", "10m")
	v.SetDefault("jwt.access_token_ttl", "1h")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("cors.allow_origins", "*")
}

// LoadConfig reads config.yaml (optional), a .env file (optional) and the
// environment. Environment keys use underscores, e.g. DB_DSN or JWT_SECRET_KEY.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		DB: DBConfig{
			Driver:          strings.ToLower(v.GetString("db.driver")),
			DSN:             v.GetString("db.dsn"),
			MaxOpenConns:    v.GetInt("db.max_open_conns"),
			MaxIdleConns:    v.GetInt("db.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("db.conn_max_lifetime"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			IdleTimeout:  v.GetDuration("server.idle_timeout"),
			BodyLimit:    v.GetInt("server.body_limit"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			QuizTTL:  v.GetDuration("redis.quiz_ttl"),
		},
		JWT: JWTConfig{
			SecretKey:      v.GetString("jwt.secret_key"),
			AccessTokenTTL: v.GetDuration("jwt.access_token_ttl"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetString("cors.allow_origins"),
		},
	}
}

// Validate checks the settings the application cannot start without.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported db driver %q (expected %q or %q)", c.DB.Driver, DriverPostgres, DriverSQLite)
	}
	if c.DB.DSN == "" {
		return fmt.Errorf("db dsn is empty")
	}
	if c.JWT.SecretKey == "" {
		return fmt.Errorf("jwt secret key is not configured")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	return nil
}

// CacheEnabled reports whether a Redis address was configured.
func (c *Config) CacheEnabled() bool {
	return c.Redis.Address != ""
}
