package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"intown_server/models"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given. A missing file is not an error.
const DefaultPath = "intown.yaml"

// Config holds server and storage settings
type Config struct {
	Port           int      `yaml:"port"`
	StorageBackend string   `yaml:"storage_backend"`
	DatabasePath   string   `yaml:"database_path"`
	AWSRegion      string   `yaml:"aws_region"`
	S3BucketName   string   `yaml:"s3_bucket_name"`
	LogLevel       string   `yaml:"log_level"`
	LogFormat      string   `yaml:"log_format"`
	AllowedOrigins []string `yaml:"cors_allowed_origins"`
	PrivacyContact string   `yaml:"privacy_contact"`
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		Port:           3000,
		StorageBackend: models.BackendSQLite,
		DatabasePath:   "data/contacts.db",
		AWSRegion:      "us-east-1",
		LogLevel:       "info",
		LogFormat:      "console",
		AllowedOrigins: []string{"*"},
		PrivacyContact: "privacy@intown.app",
	}
}

// Load reads path on top of the defaults and then applies environment overrides.
// If path is empty DefaultPath is tried.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Port = port
	}
	str("STORAGE_BACKEND", &c.StorageBackend)
	str("DATABASE_PATH", &c.DatabasePath)
	str("AWS_REGION", &c.AWSRegion)
	str("S3_BUCKET_NAME", &c.S3BucketName)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	str("PRIVACY_CONTACT", &c.PrivacyContact)
	if v, ok := lookup("CORS_ALLOWED_ORIGINS"); ok && v != "" {
		c.AllowedOrigins = splitList(v)
	}
	return nil
}

// Validate rejects settings the server cannot start with
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	switch c.StorageBackend {
	case models.BackendSQLite:
		if c.DatabasePath == "" {
			return errors.New("database_path is required for the sqlite backend")
		}
	case models.BackendDynamo:
		if c.AWSRegion == "" {
			return errors.New("aws_region is required for the dynamodb backend")
		}
	case models.BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
	switch c.LogFormat {
	case "json", "console", "text":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// Addr is the listen address for the HTTP server
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
