package logger

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/srs-flashcards-bot/internal/config"
)

// New builds the application logger for the configured environment.
func New(cfg *config.Config) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)

	if cfg.Env == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	return log.Named("srs-bot").With(zap.String("env", cfg.Env)), nil
}
