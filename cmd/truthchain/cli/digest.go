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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Azam0221/Truth-Chain-Web/pkg/utils"
)

// Digest creates the digest command.
func Digest() *cobra.Command {
	var maxSize int64

	cmd := &cobra.Command{
		Use:   "digest FILE...",
		Short: "Print the SHA-256 digest of files without contacting the ledger.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (utils.FileCheck{Field: "file", AllowEmpty: true}).CheckAll(args); err != nil {
				return err
			}
			hasher, err := newHasher(maxSize)
			if err != nil {
				return err
			}
			for _, path := range args {
				d, err := hasher.ComputeFile(path)
				if err != nil {
					return &ExitError{Code: 2, Err: err}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", d.Hex(), path)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&maxSize, "max-file-size", -1,
		"Largest file to read in bytes; 0 disables the cap. Defaults to the configured value.")
	return cmd
}
