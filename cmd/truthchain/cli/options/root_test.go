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

package options

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/Azam0221/Truth-Chain-Web/pkg/config"
	"github.com/Azam0221/Truth-Chain-Web/pkg/logging"
)

func newRoot(o *RootOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	o.AddFlags(cmd)
	return cmd
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvLedgerURL, config.EnvTimeout, config.EnvLogLevel, config.EnvLogFormat, config.EnvTimeZone} {
		t.Setenv(config.EnvPrefix+k, "")
	}
}

func TestRootOptions_FlagsOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRUTHCHAIN_LEDGER_URL", "http://env.example/api")
	t.Setenv("TRUTHCHAIN_TIMEOUT", "7s")

	o := &RootOptions{}
	cmd := newRoot(o)
	if err := cmd.ParseFlags([]string{"--timeout", "3s", "--log-level", "debug"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := o.Load(cmd)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LedgerURL != "http://env.example/api" {
		t.Errorf("LedgerURL = %q, want environment value", cfg.LedgerURL)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("Timeout = %s, want flag value", cfg.Timeout)
	}
	if o.GetLogLevel() != logging.LevelDebug {
		t.Errorf("GetLogLevel() = %v", o.GetLogLevel())
	}
	if o.Settings() != cfg {
		t.Error("Settings() should return the loaded config")
	}
}

func TestRootOptions_EnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("TRUTHCHAIN_LEDGER_URL")

	path := filepath.Join(t.TempDir(), "local.env")
	if err := os.WriteFile(path, []byte("TRUTHCHAIN_LEDGER_URL=http://127.0.0.1:8089/api/evidence\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	o := &RootOptions{}
	cmd := newRoot(o)
	if err := cmd.ParseFlags([]string{"--env-file", path}); err != nil {
		t.Fatal(err)
	}
	cfg, err := o.Load(cmd)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LedgerURL != "http://127.0.0.1:8089/api/evidence" {
		t.Errorf("LedgerURL = %q", cfg.LedgerURL)
	}
}

func TestRootOptions_MissingEnvFile(t *testing.T) {
	clearEnv(t)
	o := &RootOptions{}
	cmd := newRoot(o)
	if err := cmd.ParseFlags([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}); err != nil {
		t.Fatal(err)
	}
	if _, err := o.Load(cmd); err == nil {
		t.Error("Load() with a missing --env-file should fail")
	}
}

func TestRootOptions_InvalidChoices(t *testing.T) {
	for _, args := range [][]string{
		{"--log-level", "verbose"},
		{"--log-format", "xml"},
		{"--ledger-url", "ftp://example.com"},
	} {
		clearEnv(t)
		o := &RootOptions{}
		cmd := newRoot(o)
		if err := cmd.ParseFlags(args); err != nil {
			t.Fatal(err)
		}
		if _, err := o.Load(cmd); err == nil {
			t.Errorf("Load() with %v should fail", args)
		}
	}
}

func TestRootOptions_DefaultsWithoutLoad(t *testing.T) {
	o := &RootOptions{}
	if o.Settings().LedgerURL != config.DefaultLedgerURL {
		t.Errorf("Settings() = %+v", o.Settings())
	}
	if _, ok := o.NewLogger().(*logging.DefaultLogger); !ok {
		t.Error("text format should use DefaultLogger")
	}
}

func TestRootOptions_JSONLoggerUsesZap(t *testing.T) {
	clearEnv(t)
	o := &RootOptions{}
	cmd := newRoot(o)
	if err := cmd.ParseFlags([]string{"--log-format", "json"}); err != nil {
		t.Fatal(err)
	}
	if _, err := o.Load(cmd); err != nil {
		t.Fatal(err)
	}
	if _, ok := o.NewObservability().Logger.(*logging.ZapLogger); !ok {
		t.Error("json format should use the zap logger")
	}
}

func TestStubOptions_Validate(t *testing.T) {
	fixtures := filepath.Join(t.TempDir(), "fixtures.json")
	if err := os.WriteFile(fixtures, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		opts    StubOptions
		wantErr bool
	}{
		{"valid", StubOptions{Fixtures: fixtures, Addr: DefaultStubAddr}, false},
		{"missing fixtures", StubOptions{Fixtures: fixtures + ".gone", Addr: DefaultStubAddr}, true},
		{"bad addr", StubOptions{Fixtures: fixtures, Addr: "8089"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
