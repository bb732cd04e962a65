package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Mongo struct {
		URI            string `yaml:"uri" env:"MONGO_URI"`
		Database       string `yaml:"database" env:"MONGO_DATABASE"`
		ConnectTimeout string `yaml:"connect_timeout" env:"MONGO_CONNECT_TIMEOUT"`
	} `yaml:"mongo"`

	Auth struct {
		// StudentDefaultPassword is hashed and stored on every new student
		// record; students log in with it until credentials are managed
		// properly.
		StudentDefaultPassword string `yaml:"student_default_password" env:"STUDENT_DEFAULT_PASSWORD"`
	} `yaml:"auth"`

	Seed struct {
		// ResultsFile points at a JSON file of result documents loaded at
		// startup; empty disables seeding.
		ResultsFile string `yaml:"results_file" env:"SEED_RESULTS_FILE"`
	} `yaml:"seed"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; defaults plus env vars are enough to run
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "5002"
	config.Server.Mode = "development"

	config.Mongo.URI = "mongodb://localhost:27017"
	config.Mongo.Database = "student-management"
	config.Mongo.ConnectTimeout = "5s"

	config.Auth.StudentDefaultPassword = "student123"

	config.Logging.Level = "info"
	config.Logging.Format = "text"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Mongo.URI == "" {
		return fmt.Errorf("mongo uri is required")
	}

	if config.Mongo.Database == "" {
		return fmt.Errorf("mongo database name is required")
	}

	if _, err := time.ParseDuration(config.Mongo.ConnectTimeout); err != nil {
		return fmt.Errorf("invalid mongo connect timeout format: %w", err)
	}

	if config.Auth.StudentDefaultPassword == "" {
		return fmt.Errorf("student default password is required")
	}

	return nil
}

// MongoConnectTimeout returns the parsed connection-establishment timeout
func (c *Config) MongoConnectTimeout() time.Duration {
	d, err := time.ParseDuration(c.Mongo.ConnectTimeout)
	if err != nil {
		return 5 * time.Second
	}
	return d
}
