// Copyright 2025 The TruthChain Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads verifier settings from the environment.
//
// Values come from process environment variables prefixed with
// TRUTHCHAIN_, optionally seeded from a .env file. Variables already set in
// the environment win over the file. Command-line flags override both.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Azam0221/Truth-Chain-Web/pkg/evidence"
	hashio "github.com/Azam0221/Truth-Chain-Web/pkg/hashing/engines/io"
	"github.com/Azam0221/Truth-Chain-Web/pkg/ledger"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "TRUTHCHAIN_"

// DefaultLedgerURL is the production evidence ledger.
const DefaultLedgerURL = "https://truthchain-backend.up.railway.app/api/evidence"

// Variable names, without EnvPrefix.
const (
	EnvLedgerURL   = "LEDGER_URL"
	EnvTimeout     = "TIMEOUT"
	EnvMaxFileSize = "MAX_FILE_SIZE"
	EnvTimeLayout  = "TIME_LAYOUT"
	EnvTimeZone    = "TIME_ZONE"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
)

// Config holds verifier settings.
type Config struct {
	LedgerURL string
	// Timeout bounds each ledger lookup.
	Timeout time.Duration
	// MaxFileSize caps the bytes read from a file. 0 disables the cap.
	MaxFileSize int64
	TimeLayout  string
	// TimeZone is an IANA name or "Local".
	TimeZone  string
	LogLevel  string
	LogFormat string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LedgerURL:   DefaultLedgerURL,
		Timeout:     ledger.DefaultTimeout,
		MaxFileSize: hashio.DefaultMaxSize,
		TimeLayout:  evidence.DefaultTimeLayout,
		TimeZone:    "Local",
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Load reads the given .env files and then the environment. With no files
// it reads ".env" when present. A named file that is missing is an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
		return FromEnv()
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables over the defaults.
// Empty variables count as unset.
func FromEnv() (*Config, error) {
	cfg := Default()
	cfg.LedgerURL = getEnvOrDefault(EnvLedgerURL, cfg.LedgerURL)
	cfg.TimeLayout = getEnvOrDefault(EnvTimeLayout, cfg.TimeLayout)
	cfg.TimeZone = getEnvOrDefault(EnvTimeZone, cfg.TimeZone)
	cfg.LogLevel = getEnvOrDefault(EnvLogLevel, cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault(EnvLogFormat, cfg.LogFormat)

	if v, ok := lookupEnv(EnvTimeout); ok {
		d, err := ParseTimeout(v)
		if err != nil {
			return nil, fmt.Errorf("%s%s: %w", EnvPrefix, EnvTimeout, err)
		}
		cfg.Timeout = d
	}
	if v, ok := lookupEnv(EnvMaxFileSize); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s%s: %w", EnvPrefix, EnvMaxFileSize, err)
		}
		cfg.MaxFileSize = n
	}
	return cfg, nil
}

// ParseTimeout accepts a Go duration ("15s") or a bare number of
// milliseconds ("15000").
func ParseTimeout(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q", s)
	}
	return d, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if _, err := ledger.ParseBaseURL(c.LedgerURL); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.MaxFileSize < 0 {
		return fmt.Errorf("max file size must not be negative, got %d", c.MaxFileSize)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves TimeZone.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" || c.TimeZone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// Formatter returns the evidence formatter described by the settings.
func (c *Config) Formatter() (evidence.Formatter, error) {
	loc, err := c.Location()
	if err != nil {
		return evidence.Formatter{}, err
	}
	return evidence.Formatter{Layout: c.TimeLayout, Location: loc}, nil
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

func getEnvOrDefault(key, defaultValue string) string {
	if v, ok := lookupEnv(key); ok {
		return v
	}
	return defaultValue
}
