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
	"github.com/Azam0221/Truth-Chain-Web/pkg/verify"
)

// Verify creates the verify command.
func Verify() *cobra.Command {
	o := &options.VerifyOptions{}

	long := `Verify evidence files against the ledger.

Each FILE is read fully and hashed with SHA-256. Only the digest is sent to
the ledger. A registered digest prints the stored location, capture time,
device id and signature.

Exits 1 when any file is not registered and 2 when a file or the ledger
could not be read.`

	cmd := &cobra.Command{
		Use:   "verify [OPTIONS] FILE...",
		Short: "Verify files against the evidence ledger.",
		Long:  long,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := ro.NewObservability().Logger
			v, err := newVerifier(logger, o.MaxFileSize)
			if err != nil {
				return err
			}
			session := verify.NewSession(v, verify.WithOnChange(func(s verify.Snapshot) {
				logger.WithFields(map[string]interface{}{
					"file":  s.FileName,
					"state": s.State.String(),
				}).Debug("session transition")
			}))

			var failed *ExitError
			for _, path := range args {
				snap, err := session.SelectFile(cmd.Context(), path)
				if snap.Report != nil {
					if werr := writeReport(cmd.OutOrStdout(), *snap.Report, o.JSON); werr != nil {
						return werr
					}
				}
				failed = worst(failed, err)
				session.Reset()
			}
			if failed != nil {
				return failed
			}
			return nil
		},
	}

	o.AddFlags(cmd)
	return cmd
}
