package main

import (
	"fmt"
	"os"

	"github.com/CharanV17/Medication-remainder/internal/config"
	"github.com/CharanV17/Medication-remainder/internal/database"
	"github.com/CharanV17/Medication-remainder/internal/router"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	// optional .env for local development; real deployments set env vars
	_ = godotenv.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	logger = newLogger(cfg.Log)

	// a missing signing secret would make every issued token forgeable
	// or unverifiable; refuse to start
	if cfg.JWT.Secret == "" {
		logger.Fatal().Msg("jwt.secret is not set")
	}

	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("init database")
	}

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal().Err(err).Msg("migrate database")
	}

	r := router.SetupRouter(cfg, db, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("server listening")
	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("run server")
	}
}

// newLogger builds the process logger from config. Unknown levels fall
// back to info; format "console" gets the human-readable writer.
func newLogger(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stderr)
	if cfg.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return logger.Level(level).With().Timestamp().Logger()
}
