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

package cli

import (
	"github.com/spf13/cobra"

	"github.com/Azam0221/Truth-Chain-Web/cmd/truthchain/cli/options"
)

// Lookup creates the lookup command.
func Lookup() *cobra.Command {
	o := &options.LookupOptions{}

	cmd := &cobra.Command{
		Use:   "lookup DIGEST",
		Short: "Query the ledger for a hex SHA-256 digest.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDigest(args[0])
			if err != nil {
				return err
			}
			logger := ro.NewObservability().Logger
			v, err := newVerifier(logger, -1)
			if err != nil {
				return err
			}
			report, err := v.VerifyDigest(cmd.Context(), d)
			if werr := writeReport(cmd.OutOrStdout(), report, o.JSON); werr != nil {
				return werr
			}
			if failed := worst(nil, err); failed != nil {
				return failed
			}
			return nil
		},
	}

	o.AddFlags(cmd)
	return cmd
}
