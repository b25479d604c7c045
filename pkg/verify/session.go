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

package verify

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/Azam0221/Truth-Chain-Web/pkg/evidence"
)

// ErrSuperseded is returned by Select when a newer selection or a Reset
// happened before the attempt resolved. The attempt's result is discarded.
var ErrSuperseded = errors.New("verification superseded by a newer attempt")

// State is the phase of a Session.
type State int

const (
	StateIdle State = iota
	StateProcessing
	StateSuccess
	StateFailure
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateProcessing:
		return "Processing"
	case StateSuccess:
		return "Success"
	case StateFailure:
		return "Failure"
	default:
		return "Unknown"
	}
}

// Snapshot is a copy of a Session's observable state.
type Snapshot struct {
	State State
	// FileName is set from Processing onwards.
	FileName string
	// Report is set in Success and Failure.
	Report *Report
	// Message is the failure text in Failure.
	Message string
}

// Record returns the verified record, if any.
func (s Snapshot) Record() (evidence.Record, bool) {
	if s.State != StateSuccess || s.Report == nil {
		return evidence.Record{}, false
	}
	return s.Report.Outcome.Record, true
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithOnChange registers fn to receive every transition. fn runs while the
// session lock is held and must not call back into the Session.
func WithOnChange(fn func(Snapshot)) SessionOption {
	return func(s *Session) {
		s.onChange = fn
	}
}

// Session tracks one user's verification flow: Idle, Processing, then
// Success or Failure. Only the most recent selection may change the state.
type Session struct {
	verifier EvidenceVerifier

	mu       sync.Mutex
	token    uint64
	snap     Snapshot
	onChange func(Snapshot)
}

// NewSession returns an Idle session backed by v.
func NewSession(v EvidenceVerifier, opts ...SessionOption) *Session {
	s := &Session{verifier: v}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select starts a new attempt for r, moving the session to Processing from
// any state, and blocks until the attempt resolves. The returned error is
// ErrSuperseded when the attempt went stale, otherwise the verifier's error.
func (s *Session) Select(ctx context.Context, name string, r io.Reader) (Snapshot, error) {
	s.mu.Lock()
	s.token++
	token := s.token
	s.setLocked(Snapshot{State: StateProcessing, FileName: name})
	s.mu.Unlock()

	report, err := s.verifier.VerifyReader(ctx, name, r)

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.token {
		return Snapshot{}, ErrSuperseded
	}

	next := Snapshot{FileName: name, Report: &report}
	if err == nil {
		next.State = StateSuccess
	} else {
		next.State = StateFailure
		next.Message = report.Message()
	}
	s.setLocked(next)
	return next, err
}

// SelectFile opens path and selects its contents. A file that cannot be
// opened fails the attempt with a read error.
func (s *Session) SelectFile(ctx context.Context, path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return s.Select(ctx, path, errReader{err: err})
	}
	defer f.Close()
	return s.Select(ctx, path, f)
}

// Reset returns the session to Idle. Any in-flight attempt is invalidated.
// Reset on an Idle session is a no-op.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.State == StateIdle {
		return
	}
	s.token++
	s.setLocked(Snapshot{State: StateIdle})
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.State
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

func (s *Session) setLocked(next Snapshot) {
	s.snap = next
	if s.onChange != nil {
		s.onChange(next)
	}
}

type errReader struct {
	err error
}

func (r errReader) Read([]byte) (int, error) {
	return 0, r.err
}
