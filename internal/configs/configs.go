package configs

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/newclawpro/x-tweet-fetcher/pkg/fxtwitter"
)

const (
	EnvFxTwitterAPIBaseURL = "FXTWITTER_API_BASE_URL"
	EnvUserAgent           = "X_TWEET_FETCHER_USER_AGENT"
	EnvTimeout             = "X_TWEET_FETCHER_TIMEOUT"
	EnvLogLevel            = "LOG_LEVEL"
)

type Config struct {
	FxTwitterAPIBaseURL string
	UserAgent           string
	Timeout             time.Duration
	LogLevel            logrus.Level
}

func NewConfig() func() (*Config, error) {
	return func() (*Config, error) {
		config := &Config{
			FxTwitterAPIBaseURL: getenv(EnvFxTwitterAPIBaseURL, fxtwitter.DefaultBaseURL),
			UserAgent:           getenv(EnvUserAgent, fxtwitter.DefaultUserAgent),
			Timeout:             fxtwitter.DefaultTimeout,
			LogLevel:            logrus.InfoLevel,
		}

		if timeout := os.Getenv(EnvTimeout); timeout != "" {
			duration, err := time.ParseDuration(timeout)
			if err != nil {
				return nil, fmt.Errorf("invalid %s %q: %w", EnvTimeout, timeout, err)
			}
			if duration <= 0 {
				return nil, fmt.Errorf("invalid %s %q: must be positive", EnvTimeout, timeout)
			}

			config.Timeout = duration
		}

		if level := os.Getenv(EnvLogLevel); level != "" {
			parsedLevel, err := logrus.ParseLevel(level)
			if err != nil {
				return nil, fmt.Errorf("invalid %s %q: %w", EnvLogLevel, level, err)
			}

			config.LogLevel = parsedLevel
		}

		return config, nil
	}
}

func getenv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	return value
}
