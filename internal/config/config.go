package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Ingest   IngestConfig   `yaml:"ingest"`
	Sources  []SourceConfig `yaml:"sources"`
	LogLevel string         `yaml:"log_level"`
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type IngestConfig struct {
	Interval             time.Duration `yaml:"interval"`
	PassTimeout          time.Duration `yaml:"pass_timeout"`
	FetchTimeout         time.Duration `yaml:"fetch_timeout"`
	MaxCandidatesPerPass int           `yaml:"max_candidates_per_pass"`
	CandidateDelay       time.Duration `yaml:"candidate_delay"`
	TriggerSecret        string        `yaml:"trigger_secret"`
}

// SourceConfig describes one external court feed.
type SourceConfig struct {
	Name    string `yaml:"name"`
	URL     string `yaml:"url"`
	CourtID string `yaml:"court_id"`
	Region  string `yaml:"region"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "filing_watcher"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "alerts"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "property_alerts"
	}
	if c.Ingest.Interval == 0 {
		c.Ingest.Interval = 6 * time.Hour
	}
	if c.Ingest.PassTimeout == 0 {
		c.Ingest.PassTimeout = 15 * time.Minute
	}
	if c.Ingest.FetchTimeout == 0 {
		c.Ingest.FetchTimeout = 30 * time.Second
	}
	if c.Ingest.MaxCandidatesPerPass == 0 {
		c.Ingest.MaxCandidatesPerPass = 25
	}
	if c.Ingest.CandidateDelay == 0 {
		c.Ingest.CandidateDelay = 2 * time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	for i, src := range c.Sources {
		if src.Name == "" {
			return fmt.Errorf("source %d: name is required", i)
		}
		if src.URL == "" {
			return fmt.Errorf("source %q: url is required", src.Name)
		}
		if src.CourtID == "" {
			return fmt.Errorf("source %q: court_id is required", src.Name)
		}
	}
	return nil
}
