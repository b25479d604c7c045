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

// Package verify composes hashing and ledger lookups into evidence
// verification.
package verify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/Azam0221/Truth-Chain-Web/pkg/evidence"
	"github.com/Azam0221/Truth-Chain-Web/pkg/hashing/digests"
	hashio "github.com/Azam0221/Truth-Chain-Web/pkg/hashing/engines/io"
	"github.com/Azam0221/Truth-Chain-Web/pkg/ledger"
	"github.com/Azam0221/Truth-Chain-Web/pkg/logging"
	"github.com/Azam0221/Truth-Chain-Web/pkg/tracing"
)

// ReadErrorMessage is shown when the selected file cannot be read.
const ReadErrorMessage = "Read error: could not read the selected file."

// Ledger answers digest lookups. *ledger.Client implements it.
type Ledger interface {
	Lookup(ctx context.Context, digest, requestID string) ledger.Outcome
}

// EvidenceVerifier verifies a byte source against the ledger.
//
// Implementations return a Report for every attempt. The error is nil only
// when the outcome is Verified; otherwise it is a *VerificationError.
type EvidenceVerifier interface {
	VerifyReader(ctx context.Context, name string, r io.Reader) (Report, error)
}

// Report describes one verification attempt.
type Report struct {
	AttemptID string
	FileName  string
	// Digest is zero when the file could not be read.
	Digest  digests.Digest
	Outcome ledger.Outcome
	// Display is set only for Verified outcomes.
	Display evidence.Display
	// MetadataErr is set when the record's metadata is unreadable. It does
	// not fail the attempt.
	MetadataErr error
}

// Message returns the user-facing text for a failed attempt.
func (r Report) Message() string {
	return r.Outcome.Message
}

// Options configures a Verifier.
type Options struct {
	// Ledger is required.
	Ledger Ledger
	// Hasher defaults to SHA-256 with hashio.DefaultMaxSize.
	Hasher    *hashio.ReaderHasher
	Formatter evidence.Formatter
	Logger    logging.Logger
}

// Verifier hashes a byte source and looks its digest up in the ledger.
type Verifier struct {
	ledger    Ledger
	hasher    *hashio.ReaderHasher
	formatter evidence.Formatter
	logger    logging.Logger
}

var _ EvidenceVerifier = (*Verifier)(nil)

// NewVerifier returns a Verifier for opts.
func NewVerifier(opts Options) (*Verifier, error) {
	if opts.Ledger == nil {
		return nil, fmt.Errorf("ledger is required")
	}
	hasher := opts.Hasher
	if hasher == nil {
		var err error
		hasher, err = hashio.NewReaderHasher(nil, hashio.DefaultMaxSize)
		if err != nil {
			return nil, err
		}
	}
	return &Verifier{
		ledger:    opts.Ledger,
		hasher:    hasher,
		formatter: opts.Formatter,
		logger:    logging.EnsureLogger(opts.Logger),
	}, nil
}

// Digest computes the digest of r without contacting the ledger.
func (v *Verifier) Digest(name string, r io.Reader) (digests.Digest, error) {
	d, err := v.hasher.ComputeReader(name, r)
	if err != nil {
		return digests.Digest{}, NewVerificationErrorWithPath(ErrTypeRead, name, ReadErrorMessage, err)
	}
	return d, nil
}

// VerifyReader reads r fully, hashes it, and queries the ledger once.
func (v *Verifier) VerifyReader(ctx context.Context, name string, r io.Reader) (Report, error) {
	report := Report{AttemptID: uuid.NewString(), FileName: name}

	var verr error
	attrs := map[string]interface{}{
		"verify.attempt_id": report.AttemptID,
	}
	_ = tracing.Run(ctx, "VerifyEvidence", attrs, func(ctx context.Context) error {
		report, verr = v.verify(ctx, report, r)
		return spanError(verr)
	})
	return report, verr
}

// VerifyFile opens path and verifies its contents.
func (v *Verifier) VerifyFile(ctx context.Context, path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		report := Report{AttemptID: uuid.NewString(), FileName: path}
		report.Outcome = readFailure(err)
		return report, NewVerificationErrorWithPath(ErrTypeRead, path, ReadErrorMessage, err)
	}
	defer f.Close()
	return v.VerifyReader(ctx, path, f)
}

// VerifyDigest queries the ledger for an already computed digest.
func (v *Verifier) VerifyDigest(ctx context.Context, d digests.Digest) (Report, error) {
	report := Report{AttemptID: uuid.NewString(), FileName: d.Hex(), Digest: d}
	return v.resolve(ctx, report)
}

func (v *Verifier) verify(ctx context.Context, report Report, r io.Reader) (Report, error) {
	log := v.logger.WithFields(map[string]interface{}{
		"file":    report.FileName,
		"attempt": report.AttemptID,
	})

	d, err := v.hasher.ComputeReader(report.FileName, r)
	if err != nil {
		log.Warn("read failed: %v", err)
		report.Outcome = readFailure(err)
		return report, NewVerificationErrorWithPath(ErrTypeRead, report.FileName, ReadErrorMessage, err)
	}
	report.Digest = d
	log.Debug("computed digest %s", d.Hex())

	return v.resolve(ctx, report)
}

func (v *Verifier) resolve(ctx context.Context, report Report) (Report, error) {
	out := v.ledger.Lookup(ctx, report.Digest.Hex(), report.AttemptID)
	report.Outcome = out

	v.logger.WithFields(map[string]interface{}{
		"file":    report.FileName,
		"attempt": report.AttemptID,
	}).Info("verification %s", out.Kind)

	switch out.Kind {
	case ledger.KindVerified:
		display, err := v.formatter.Render(out.Record)
		report.Display = display
		if err != nil {
			report.MetadataErr = NewVerificationError(ErrTypeMalformedMetadata, evidence.TimestampUnreadable, err)
		}
		return report, nil
	case ledger.KindNotFound:
		return report, NewVerificationErrorWithPath(ErrTypeNotFound, report.FileName, out.Message, nil)
	default:
		return report, NewVerificationErrorWithPath(ErrTypeTransport, report.FileName, out.Message, out.Err)
	}
}

// spanError keeps only the type and message of a verification error, so
// spans never carry file paths, digests or transport details.
func spanError(err error) error {
	var ve *VerificationError
	if errors.As(err, &ve) {
		return NewVerificationError(ve.Type, ve.Message, nil)
	}
	return err
}

func readFailure(cause error) ledger.Outcome {
	out := ledger.TransportError(cause)
	out.Message = ReadErrorMessage
	return out
}
