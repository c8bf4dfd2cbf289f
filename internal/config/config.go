package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/storage"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Store     StoreConfig     `yaml:"store"`
	Storage   storage.Config  `yaml:"storage"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Report    ReportConfig    `yaml:"report"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StoreConfig contains document-store settings
type StoreConfig struct {
	Type            string `yaml:"type"` // "firestore" or "memory"
	ProjectID       string `yaml:"project_id"`
	CredentialsFile string `yaml:"credentials_file"`
}

// SMTPConfig contains email service settings
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

// ReportConfig contains document-generation settings
type ReportConfig struct {
	Company   domain.CompanyInfo `yaml:"company"`
	OutputDir string             `yaml:"output_dir"`
}

// SchedulerConfig contains cron expressions for background jobs
type SchedulerConfig struct {
	Enabled       bool   `yaml:"enabled"`
	BackupRentals string `yaml:"backup_rentals"`
	MarkOverdue   string `yaml:"mark_overdue"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills in directory defaults so a minimal config boots
func (c *Config) applyDefaults() {
	if c.Report.OutputDir == "" {
		c.Report.OutputDir = "output"
	}
	if c.Storage.LocalDir == "" {
		c.Storage.LocalDir = "storage"
	}
	if c.Storage.BaseURL == "" {
		c.Storage.BaseURL = fmt.Sprintf("http://localhost:%d", c.Server.Port)
	}
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Store
	if val := os.Getenv("FIRESTORE_PROJECT_ID"); val != "" {
		c.Store.ProjectID = val
	}
	if val := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); val != "" {
		c.Store.CredentialsFile = val
	}

	// Blob storage
	if val := os.Getenv("STORAGE_BUCKET"); val != "" {
		c.Storage.Bucket = val
	}
	if val := os.Getenv("STORAGE_ENDPOINT"); val != "" {
		c.Storage.Endpoint = val
	}

	// SMTP
	if val := os.Getenv("SMTP_HOST"); val != "" {
		c.SMTP.Host = val
	}
	if val := os.Getenv("SMTP_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.SMTP.Port)
	}
	if val := os.Getenv("SMTP_USER"); val != "" {
		c.SMTP.User = val
	}
	if val := os.Getenv("SMTP_PASSWORD"); val != "" {
		c.SMTP.Password = val
	}

	// Server
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
}

// Validate checks that required configuration values are present
func (c *Config) Validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}
	switch c.Store.Type {
	case "", "memory":
		// In-memory store needs nothing else.
	case "firestore":
		if c.Store.ProjectID == "" {
			return fmt.Errorf("store project_id is required for firestore")
		}
	default:
		return fmt.Errorf("unknown store type: %s", c.Store.Type)
	}
	switch c.Storage.Type {
	case "", "mock":
	case "s3":
		if c.Storage.Bucket == "" {
			return fmt.Errorf("storage bucket is required for s3")
		}
		if c.Storage.Region == "" {
			return fmt.Errorf("storage region is required for s3")
		}
	default:
		return fmt.Errorf("unknown storage type: %s", c.Storage.Type)
	}
	if c.Report.Company.Name == "" {
		return fmt.Errorf("report company name is required")
	}
	return nil
}

// GetServerAddress returns the host:port the HTTP server binds to
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
