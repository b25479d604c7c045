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
	"errors"
	"fmt"

	"sigs.k8s.io/release-utils/version"

	"github.com/Azam0221/Truth-Chain-Web/pkg/hashing/digests"
	hashio "github.com/Azam0221/Truth-Chain-Web/pkg/hashing/engines/io"
	"github.com/Azam0221/Truth-Chain-Web/pkg/ledger"
	"github.com/Azam0221/Truth-Chain-Web/pkg/logging"
	"github.com/Azam0221/Truth-Chain-Web/pkg/verify"
)

// ExitError carries the process exit code for failed verifications:
// 1 when a digest is not registered, 2 when the file or the ledger could
// not be read.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode implements the ExitCoder contract used by main.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// worst keeps the failure with the highest exit code.
func worst(current *ExitError, err error) *ExitError {
	if err == nil {
		return current
	}
	code := 2
	var verr *verify.VerificationError
	if errors.As(err, &verr) {
		code = verr.ExitCode()
	}
	if current == nil || code > current.Code {
		return &ExitError{Code: code, Err: err}
	}
	return current
}

// newVerifier builds a Verifier from the resolved root settings. maxSize
// overrides the configured read cap when not negative.
func newVerifier(logger logging.Logger, maxSize int64) (*verify.Verifier, error) {
	cfg := ro.Settings()
	client, err := ledger.NewClient(ledger.Options{
		BaseURL:   cfg.LedgerURL,
		Timeout:   cfg.Timeout,
		UserAgent: fmt.Sprintf("truthchain/%s", version.GetVersionInfo().GitVersion),
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}
	formatter, err := cfg.Formatter()
	if err != nil {
		return nil, err
	}
	hasher, err := newHasher(maxSize)
	if err != nil {
		return nil, err
	}
	return verify.NewVerifier(verify.Options{
		Ledger:    client,
		Hasher:    hasher,
		Formatter: formatter,
		Logger:    logger,
	})
}

func newHasher(maxSize int64) (*hashio.ReaderHasher, error) {
	if maxSize < 0 {
		maxSize = ro.Settings().MaxFileSize
	}
	return hashio.NewReaderHasher(nil, maxSize)
}

func parseDigest(s string) (digests.Digest, error) {
	return digests.ParseHex(digests.SHA256, s)
}
