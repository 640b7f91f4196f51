package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tendant/simple-blog/pkg/simpleblog"
	"github.com/tendant/simple-blog/pkg/simpleblog/seed"
)

// Option applies configuration to a ServerConfig instance.
type Option func(*ServerConfig) error

// Load constructs a ServerConfig by applying the supplied options on top of library defaults.
func Load(opts ...Option) (*ServerConfig, error) {
	cfg := defaults()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() ServerConfig {
	return ServerConfig{
		Port:          "8080",
		Environment:   "development",
		LogLevel:      "info",
		LogFormat:     "text",
		EnableMetrics: true,
		S3: S3Config{
			Region: "us-east-1",
		},
	}
}

// ServerConfig represents server configuration for the simple-blog service
type ServerConfig struct {
	Port        string `validate:"required,numeric"`
	Environment string `validate:"oneof=development production testing"`

	// SeedURL names the snapshot the store starts from; empty starts an empty blog
	SeedURL string

	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=text json"`

	EnableMetrics bool

	S3 S3Config
}

// S3Config holds credentials for s3:// seed URLs
type S3Config struct {
	Region          string `validate:"required"`
	Endpoint        string `validate:"omitempty,url"`
	AccessKeyID     string `validate:"required_with=SecretAccessKey"`
	SecretAccessKey string `validate:"required_with=AccessKeyID"`
	UsePathStyle    bool
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// NewLogger builds the process logger for the configured level and format.
func (c *ServerConfig) NewLogger(w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: parseLevel(c.LogLevel)}

	var handler slog.Handler
	if c.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With("environment", c.Environment)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SeedOptions converts the S3 settings for the seed package.
func (c *ServerConfig) SeedOptions() seed.Options {
	return seed.Options{S3: seed.S3Options{
		Region:          c.S3.Region,
		Endpoint:        c.S3.Endpoint,
		AccessKeyID:     c.S3.AccessKeyID,
		SecretAccessKey: c.S3.SecretAccessKey,
		UsePathStyle:    c.S3.UsePathStyle,
	}}
}

// BuildService loads the configured seed and creates a Service instance from it
func (c *ServerConfig) BuildService(ctx context.Context, logger *slog.Logger) (simpleblog.Service, error) {
	if logger == nil {
		logger = slog.Default()
	}

	snapshot, err := seed.Load(ctx, c.SeedURL, c.SeedOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to load seed: %w", err)
	}
	logger.Info("seed loaded",
		"seed_url", redact(c.SeedURL),
		"authors", len(snapshot.Authors),
		"posts", len(snapshot.Posts))

	return simpleblog.New(
		simpleblog.WithSnapshot(snapshot),
		simpleblog.WithLogger(logger),
		simpleblog.WithEventSink(simpleblog.NewLogEventSink(logger)),
	)
}
