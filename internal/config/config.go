// Package config handles process configuration sourced from environment
// variables (populated from a .env file in main).
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

const defaultAPIBaseURL = "https://data.cms.gov/provider-data/api/1/datastore/query"

// Config holds all settings for one extraction run. Credentials are read
// once at startup and are never logged or persisted.
type Config struct {
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	APIBaseURL     string
	RequestTimeout time.Duration
}

// LoadConfig reads settings from environment variables. DB_PORT defaults to
// 5432 and API_BASE_URL to the CMS datastore endpoint; everything else is
// required.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBName:         os.Getenv("DB_NAME"),
		APIBaseURL:     os.Getenv("API_BASE_URL"),
		RequestTimeout: 30 * time.Second,
	}

	for name, val := range map[string]string{
		"DB_USER":     cfg.DBUser,
		"DB_PASSWORD": cfg.DBPassword,
		"DB_HOST":     cfg.DBHost,
		"DB_NAME":     cfg.DBName,
	} {
		if val == "" {
			return nil, fmt.Errorf("%s environment variable not set", name)
		}
	}

	if cfg.DBPort == "" {
		cfg.DBPort = "5432"
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}

	return cfg, nil
}

// DSN builds the Postgres connection string. The password is URL-escaped;
// callers must not log the result.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPassword),
		c.DBHost, c.DBPort, c.DBName)
}
