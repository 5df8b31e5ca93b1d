package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/weekend-getaway-ranker/internal/domain"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	DatasetPath     string
	TopN            int
	ReportCacheSize int

	// Composite weight overrides; must sum to 1.0.
	RatingWeight    float64
	ProximityWeight float64
	CategoryWeight  float64

	// Kafka report publishing configuration.
	KafkaEnabled     bool
	KafkaBrokers     []string
	KafkaReportTopic string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	topN, err := parseInt("TOP_N", 5)
	if err != nil {
		return nil, err
	}

	cacheSize, err := parseInt("REPORT_CACHE_SIZE", 256)
	if err != nil {
		return nil, err
	}

	ratingWeight, err := parseFloat("RATING_WEIGHT", domain.DefaultWeights.Rating)
	if err != nil {
		return nil, err
	}
	proximityWeight, err := parseFloat("PROXIMITY_WEIGHT", domain.DefaultWeights.Proximity)
	if err != nil {
		return nil, err
	}
	categoryWeight, err := parseFloat("CATEGORY_WEIGHT", domain.DefaultWeights.Category)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		DatasetPath:     envOrDefault("DATASET_PATH", "data/destinations.csv"),
		TopN:            topN,
		ReportCacheSize: cacheSize,

		RatingWeight:    ratingWeight,
		ProximityWeight: proximityWeight,
		CategoryWeight:  categoryWeight,

		KafkaEnabled:     os.Getenv("KAFKA_ENABLED") == "true",
		KafkaBrokers:     parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaReportTopic: envOrDefault("KAFKA_REPORT_TOPIC", "getaway-reports"),
	}

	if cfg.DatasetPath == "" {
		return nil, errors.New("DATASET_PATH is required")
	}
	if cfg.TopN <= 0 {
		return nil, errors.New("TOP_N must be positive")
	}
	if cfg.ReportCacheSize < 0 {
		return nil, errors.New("REPORT_CACHE_SIZE must not be negative")
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	if err := cfg.Weights().Validate(); err != nil {
		return nil, fmt.Errorf("composite weight overrides: %w", err)
	}
	if cfg.KafkaEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is empty")
		}
		if cfg.KafkaReportTopic == "" {
			return nil, errors.New("KAFKA_ENABLED is true but KAFKA_REPORT_TOPIC is empty")
		}
	}

	return cfg, nil
}

// Weights returns the composite weights configured by environment overrides.
func (c *Config) Weights() domain.Weights {
	return domain.Weights{
		Rating:    c.RatingWeight,
		Proximity: c.ProximityWeight,
		Category:  c.CategoryWeight,
	}
}

// ScoringConfig builds the domain scoring configuration: documented defaults
// with the configured weight overrides applied.
func (c *Config) ScoringConfig() domain.ScoringConfig {
	cfg := domain.DefaultScoringConfig()
	cfg.Weights = c.Weights()
	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBrokers(s string) []string {
	parts := strings.Split(s, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}

func parseDuration(key, fallback string) (time.Duration, error) {
	v, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func parseInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func parseFloat(key string, fallback float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
