package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string    `mapstructure:"env" validate:"oneof=local development production"` // current application environment
	TelegramAPIToken string    `mapstructure:"-"`                                                 // Telegram API token loaded from environment
	AdminID          int64     `mapstructure:"admin_id"`                                          // privileged operator chat ID, informational
	QuestionsPath    string    `mapstructure:"questions_path" validate:"required"`                // path to the question bank JSON
	Timezone         string    `mapstructure:"timezone"`                                          // zone that defines the calendar day
	DailyGoal        int       `mapstructure:"daily_goal" validate:"min=1"`                       // default daily goal for new users
	Storage          Storage   `mapstructure:"storage"`                                           // progress store configuration section
	Reminders        Reminders `mapstructure:"reminders"`                                         // reminder job configuration section
}

// Storage contains progress store configuration parameters.
type Storage struct {
	Driver          string        `mapstructure:"driver" validate:"oneof=file postgres"`
	ProgressPath    string        `mapstructure:"progress_path" validate:"required_if=Driver file"`
	URL             string        `mapstructure:"-"`                                  // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections" validate:"min=1"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime" validate:"min=0"` // maximum lifetime of a single connection
}

// Reminders configures the due-cards reminder job.
type Reminders struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule" validate:"required_if=Enabled true"` // cron spec in the configured timezone
}

// DSN returns the database connection string if it is configured.
func (s Storage) DSN() (string, error) {
	if s.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return s.URL, nil
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// Missing .env is fine, the environment may be set by the runtime.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("questions_path", "questions.json")
	v.SetDefault("timezone", "UTC")
	v.SetDefault("daily_goal", 10)
	v.SetDefault("storage.driver", StorageFile)
	v.SetDefault("storage.progress_path", "progress.json")
	v.SetDefault("storage.max_connections", 20)
	v.SetDefault("storage.max_conn_lifetime", "30s")
	v.SetDefault("reminders.enabled", false)
	v.SetDefault("reminders.schedule", "0 9 * * *")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN", "BOT_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("admin_id", "ADMIN_ID")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.Storage.URL = v.GetString("database_url")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints and required secrets.
func (c *Config) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}

	if c.TelegramAPIToken == "" {
		return fmt.Errorf("telegram api token: %w", ErrMissingEnvironmentVariables)
	}
	if c.Storage.Driver == StoragePostgres && c.Storage.URL == "" {
		return fmt.Errorf("database url: %w", ErrMissingEnvironmentVariables)
	}

	return nil
}

var validate = validator.New()

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("Field: %s, Tag: %s, Param: %s", fe.Namespace(), fe.Tag(), fe.Param()))
	}

	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
