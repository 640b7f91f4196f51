package config

import (
	"fmt"
)

// WithPort sets the server port
func WithPort(port string) Option {
	return func(c *ServerConfig) error {
		if port == "" {
			return fmt.Errorf("port cannot be empty")
		}
		c.Port = port
		return nil
	}
}

// WithEnvironment sets the environment (development, production, testing)
func WithEnvironment(env string) Option {
	return func(c *ServerConfig) error {
		if env == "" {
			return fmt.Errorf("environment cannot be empty")
		}
		c.Environment = env
		return nil
	}
}

// WithSeedURL sets the snapshot the store is initialized from
func WithSeedURL(url string) Option {
	return func(c *ServerConfig) error {
		c.SeedURL = url
		return nil
	}
}

// WithLogging sets the log level and format
func WithLogging(level, format string) Option {
	return func(c *ServerConfig) error {
		if level != "" {
			c.LogLevel = level
		}
		if format != "" {
			c.LogFormat = format
		}
		return nil
	}
}

// WithMetrics enables or disables the Prometheus endpoint
func WithMetrics(enabled bool) Option {
	return func(c *ServerConfig) error {
		c.EnableMetrics = enabled
		return nil
	}
}

// WithS3 sets the S3 settings used for s3:// seed URLs
func WithS3(s3 S3Config) Option {
	return func(c *ServerConfig) error {
		if s3.Region == "" {
			s3.Region = c.S3.Region
		}
		c.S3 = s3
		return nil
	}
}
