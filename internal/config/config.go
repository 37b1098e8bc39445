package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = ":8080"
	defaultDatabase   = "vaultboard.db"
	defaultMigrations = "migrations"
)

type Config struct {
	Env    string
	DB     db
	Server server
	Auth   auth
	Logger logger
}

type db struct {
	DatabaseURI string
	Migrations  string
}

type server struct {
	RunAddress string
}

type auth struct {
	// AdminPassword is the single configured admin secret. Empty means the
	// server is misconfigured; login fails closed instead of falling back
	// to a default.
	AdminPassword string
}

type logger struct {
	LogLevel string
}

// MustLoad reads configuration from the environment, optionally seeded from
// a .env file in the working directory.
func MustLoad() *Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("failed to load .env, relying on environment variables")
		}
	}

	viper.AutomaticEnv()

	cfg := Config{
		Env: viper.GetString("app_env"),
		DB: db{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: server{RunAddress: viper.GetString("run_address")},
		Auth:   auth{AdminPassword: viper.GetString("admin_password")},
		Logger: logger{LogLevel: viper.GetString("log_level")},
	}

	if cfg.Env == "" {
		cfg.Env = EnvLocal
	}
	if cfg.Server.RunAddress == "" {
		cfg.Server.RunAddress = defaultRunAddress
	}
	if cfg.DB.DatabaseURI == "" {
		cfg.DB.DatabaseURI = defaultDatabase
	}
	if cfg.DB.Migrations == "" {
		cfg.DB.Migrations = defaultMigrations
	}

	return &cfg
}
