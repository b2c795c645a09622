package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Kafka batch classification pipeline. Disabled unless PIPELINE_ENABLED=true.
	PipelineEnabled    bool
	KafkaBrokers       []string
	KafkaSourceTopic   string
	KafkaSinkTopic     string
	KafkaGroupID       string
	BatchSize          int
	BatchFlushInterval time.Duration

	// Calculation limits and spectrum sampling.
	MaxLayers         int
	SpectrumPoints    int
	SpectrumMaxPeriod float64
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	batchSize, err := sharedcfg.ParseBatchSize()
	if err != nil {
		return nil, err
	}

	flushInterval, err := sharedcfg.ParseBatchFlushInterval()
	if err != nil {
		return nil, err
	}

	maxLayers, err := parsePositiveInt("MAX_LAYERS", 500)
	if err != nil {
		return nil, err
	}

	spectrumPoints, err := parsePositiveInt("SPECTRUM_POINTS", 101)
	if err != nil {
		return nil, err
	}
	if spectrumPoints < 2 {
		return nil, errors.New("SPECTRUM_POINTS must be at least 2")
	}

	spectrumMaxPeriod, err := parseSpectrumMaxPeriod()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		PipelineEnabled:    os.Getenv("PIPELINE_ENABLED") == "true",
		KafkaBrokers:       sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic:   sharedcfg.EnvOrDefault("KAFKA_SOURCE_TOPIC", "layer-profiles"),
		KafkaSinkTopic:     sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "ground-classifications"),
		KafkaGroupID:       sharedcfg.EnvOrDefault("KAFKA_GROUP_ID", "site-response"),
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,

		MaxLayers:         maxLayers,
		SpectrumPoints:    spectrumPoints,
		SpectrumMaxPeriod: spectrumMaxPeriod,
	}

	if cfg.PipelineEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_BROKERS is required")
		}
		if cfg.KafkaSourceTopic == "" {
			return nil, errors.New("KAFKA_SOURCE_TOPIC is required")
		}
		if cfg.KafkaSinkTopic == "" {
			return nil, errors.New("KAFKA_SINK_TOPIC is required")
		}
	}

	return cfg, nil
}

func parsePositiveInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: must be a positive integer", key)
	}
	return n, nil
}

func parseSpectrumMaxPeriod() (float64, error) {
	s := sharedcfg.EnvOrDefault("SPECTRUM_MAX_PERIOD", "4")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 || v > 100 {
		return 0, errors.New("invalid SPECTRUM_MAX_PERIOD: must be a number of seconds in (0, 100]")
	}
	return v, nil
}
