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

// Package options defines the command-line options and flags for the
// truthchain CLI.
package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Azam0221/Truth-Chain-Web/pkg/config"
	"github.com/Azam0221/Truth-Chain-Web/pkg/logging"
)

// RootOptions defines flags available to every subcommand. Flags that are
// set explicitly override values loaded from the environment.
type RootOptions struct {
	// OutputFile redirects command output to a file instead of stdout.
	OutputFile string
	// EnvFile names the .env file to load; it must exist. Empty loads ./.env if present.
	EnvFile string
	// LogLevel sets the minimum log level (debug, info, warn, error, silent).
	LogLevel string
	// LogFormat sets the log output format (text, json).
	LogFormat string
	// Timeout bounds each ledger lookup.
	Timeout time.Duration
	// LedgerURL is the evidence ledger base URL.
	LedgerURL string

	settings *config.Config
}

// ValidLogLevels lists the valid log level strings.
var ValidLogLevels = []string{"debug", "info", "warn", "error", "silent"}

// ValidLogFormats lists the valid log format strings.
var ValidLogFormats = []string{"text", "json"}

var outputExts = []string{"txt", "json", "log"}

var _ FlagAdder = (*RootOptions)(nil)

// AddFlags adds root-level flags to cmd.
func (o *RootOptions) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.OutputFile, "output-file", "",
		"write command output to a file")
	_ = cmd.MarkPersistentFlagFilename("output-file", outputExts...)

	cmd.PersistentFlags().StringVar(&o.EnvFile, "env-file", "",
		"load settings from this .env file (default ./.env)")
	_ = cmd.MarkPersistentFlagFilename("env-file", "env")

	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "info",
		"set the minimum log level (debug, info, warn, error, silent)")

	cmd.PersistentFlags().StringVar(&o.LogFormat, "log-format", "text",
		"set the log output format (text, json)")

	cmd.PersistentFlags().DurationVarP(&o.Timeout, "timeout", "t", config.Default().Timeout,
		"timeout for each ledger lookup")

	cmd.PersistentFlags().StringVar(&o.LedgerURL, "ledger-url", config.DefaultLedgerURL,
		"base URL of the evidence ledger")
}

// Load resolves settings from the .env file, the environment and the flags
// that were set on cmd, in increasing order of precedence.
func (o *RootOptions) Load(cmd *cobra.Command) (*config.Config, error) {
	var files []string
	if o.EnvFile != "" {
		files = append(files, o.EnvFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("ledger-url") {
		cfg.LedgerURL = o.LedgerURL
	}
	if flags.Changed("timeout") {
		cfg.Timeout = o.Timeout
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.LogFormat
	}
	if err := validateChoice("log level", cfg.LogLevel, ValidLogLevels); err != nil {
		return nil, err
	}
	if err := validateChoice("log format", cfg.LogFormat, ValidLogFormats); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o.settings = cfg
	return cfg, nil
}

// Settings returns the settings resolved by Load, or the defaults.
func (o *RootOptions) Settings() *config.Config {
	if o.settings == nil {
		return config.Default()
	}
	return o.settings
}

// GetLogLevel returns the effective log level.
func (o *RootOptions) GetLogLevel() logging.LogLevel {
	return logging.ParseLogLevel(o.Settings().LogLevel)
}

// GetLogFormat returns the effective log format.
func (o *RootOptions) GetLogFormat() logging.LogFormat {
	return logging.ParseLogFormat(o.Settings().LogFormat)
}

// NewLogger returns a zap-backed logger for JSON output and the text
// DefaultLogger otherwise.
func (o *RootOptions) NewLogger() logging.Logger {
	level, format := o.GetLogLevel(), o.GetLogFormat()
	if format == logging.FormatJSON {
		if z, err := logging.NewZapFromOptions(level, format); err == nil {
			return z
		}
	}
	return logging.NewLoggerWithOptions(logging.LoggerOptions{
		Level:     level,
		Format:    format,
		ShowLevel: true,
	})
}

func validateChoice(field, value string, valid []string) error {
	for _, v := range valid {
		if v == value {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q, expected one of %v", field, value, valid)
}
