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
	"github.com/spf13/cobra"

	"github.com/Azam0221/Truth-Chain-Web/pkg/utils"
)

// OutputFlags select how results are printed.
type OutputFlags struct {
	// JSON prints one JSON object per result.
	JSON bool
}

// AddFlags adds output flags to cmd.
func (o *OutputFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.JSON, "json", false, "Print results as JSON.")
}

// VerifyOptions are the flags of the verify command.
type VerifyOptions struct {
	OutputFlags
	// MaxFileSize overrides the configured read cap when not negative.
	MaxFileSize int64
}

var _ FlagAdder = (*VerifyOptions)(nil)

// AddFlags adds verify flags to cmd.
func (o *VerifyOptions) AddFlags(cmd *cobra.Command) {
	o.OutputFlags.AddFlags(cmd)
	cmd.Flags().Int64Var(&o.MaxFileSize, "max-file-size", -1,
		"Largest file to read in bytes; 0 disables the cap. Defaults to the configured value.")
}

// LookupOptions are the flags of the lookup command.
type LookupOptions struct {
	OutputFlags
}

var _ FlagAdder = (*LookupOptions)(nil)

// StubOptions are the flags of the stub command.
type StubOptions struct {
	// Fixtures is a JSON file mapping digests to records.
	Fixtures string
	// Addr is the listen address.
	Addr string
	// Prefix mounts the routes below a path, e.g. /api/evidence.
	Prefix string
}

var _ FlagAdder = (*StubOptions)(nil)

// DefaultStubAddr is where the stub listens by default.
const DefaultStubAddr = ":8089"

// AddFlags adds stub flags to cmd.
func (o *StubOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.Fixtures, "fixtures", "", "JSON file mapping digests to evidence records.")
	_ = cmd.MarkFlagRequired("fixtures")
	_ = cmd.MarkFlagFilename("fixtures", "json")
	cmd.Flags().StringVar(&o.Addr, "addr", DefaultStubAddr, "Address to listen on.")
	cmd.Flags().StringVar(&o.Prefix, "prefix", "/api/evidence", "Path prefix for the ledger routes.")
}

// Validate checks the stub flags.
func (o *StubOptions) Validate() error {
	if err := utils.ValidateFileExists("fixtures", o.Fixtures); err != nil {
		return err
	}
	return utils.ValidateListenAddr("addr", o.Addr)
}
