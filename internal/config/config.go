package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig `yaml:"server"`
	AWS    AWSConfig    `yaml:"aws"`
	Tables TablesConfig `yaml:"tables"`
	APNS   APNSConfig   `yaml:"apns"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// AWSConfig holds AWS configuration
type AWSConfig struct {
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Endpoint  string `yaml:"endpoint"` // custom endpoint for local DynamoDB
}

// TablesConfig names the DynamoDB tables. Table names are passed into
// the stores at construction, never read from the environment.
type TablesConfig struct {
	Users  string `yaml:"users"`
	Photos string `yaml:"photos"`
}

// APNSConfig holds push notification configuration. Push delivery is
// disabled when cert_path is empty.
type APNSConfig struct {
	CertPath     string `yaml:"cert_path"`
	CertPassword string `yaml:"cert_password"`
	Topic        string `yaml:"topic"`
	Production   bool   `yaml:"production"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Tables.Users == "" {
		cfg.Tables.Users = "userInfo"
	}
	if cfg.Tables.Photos == "" {
		cfg.Tables.Photos = "photoInfo"
	}

	return &cfg, nil
}
