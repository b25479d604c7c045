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
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/Azam0221/Truth-Chain-Web/cmd/truthchain/cli/options"
	"github.com/Azam0221/Truth-Chain-Web/internal/ledgerstub"
)

// Stub creates the stub command, which serves a local ledger from a
// fixture file.
func Stub() *cobra.Command {
	o := &options.StubOptions{}

	long := `Serve a local evidence ledger for offline use.

FIXTURES is a JSON object mapping lowercase hex SHA-256 digests to evidence
records. Point verify at it with --ledger-url http://localhost:8089/api/evidence.`

	cmd := &cobra.Command{
		Use:   "stub --fixtures FILE [--addr ADDR]",
		Short: "Serve a local evidence ledger from fixtures.",
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			logger := ro.NewObservability().Logger
			stub, err := ledgerstub.LoadFile(o.Fixtures, logger)
			if err != nil {
				return err
			}

			ln, err := net.Listen("tcp", o.Addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", o.Addr, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "serving %d records on http://%s%s\n", stub.Len(), ln.Addr(), o.Prefix)
			return serve(cmd.Context(), ln, stub.Handler(o.Prefix))
		},
	}

	o.AddFlags(cmd)
	return cmd
}

// serve runs h on ln until ctx is done.
func serve(ctx context.Context, ln net.Listener, h http.Handler) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
