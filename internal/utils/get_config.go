package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const DefaultConfigPath = "config.yaml"

type Config struct {
	// Server configuration
	AppPort      string `yaml:"APP_PORT" env:"APP_PORT"`
	Timezone     string `yaml:"TIMEZONE" env:"TIMEZONE"`
	LogDir       string `yaml:"LOG_DIR" env:"LOG_DIR"`
	RateLimitMax int    `yaml:"RATE_LIMIT_MAX" env:"RATE_LIMIT_MAX"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER" env:"DB_DRIVER"`
	DBPath     string `yaml:"DB_PATH" env:"DB_PATH"`
	DBUser     string `yaml:"DB_USER" env:"DB_USER"`
	DBName     string `yaml:"DB_NAME" env:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD" env:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT" env:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST" env:"DB_HOST"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET" env:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION" env:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY" env:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY" env:"AWS_SECRET_KEY"`
}

var config = DefaultConfig()

func DefaultConfig() Config {
	return Config{
		AppPort:      "8080",
		Timezone:     "Local",
		LogDir:       "./logs",
		RateLimitMax: 20,
		DBDriver:     "sqlite",
		DBPath:       "fridge.db",
	}
}

// LoadConfig reads .env, then config.yaml (or CONFIG_PATH), then lets
// environment variables override anything set so far.
func LoadConfig() error {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = DefaultConfigPath
	}

	cfg, err := LoadConfigFrom(path)
	if err != nil {
		return err
	}
	config = cfg
	return nil
}

func LoadConfigFrom(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := DefaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Infof("config file %s not found, using defaults and environment", path)
	case err != nil:
		return Config{}, fmt.Errorf("read config file: %w", err)
	default:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

func Settings() Config {
	return config
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "TIMEZONE":
		return config.Timezone
	case "LOG_DIR":
		return config.LogDir
	case "DB_DRIVER":
		return config.DBDriver
	case "DB_PATH":
		return config.DBPath
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}
