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

package ledger

import (
	"github.com/Azam0221/Truth-Chain-Web/pkg/evidence"
)

// Kind classifies a lookup.
type Kind int

const (
	// KindTransportError covers timeouts, refused connections, unexpected
	// statuses and malformed bodies.
	KindTransportError Kind = iota
	// KindVerified means the ledger holds a record for the digest.
	KindVerified
	// KindNotFound means the ledger answered 404.
	KindNotFound
)

// Display messages for the failure kinds.
const (
	NotFoundMessage       = "Hash mismatch: this file does not exist in the ledger."
	TransportErrorMessage = "Network error: could not reach verification nodes."
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindVerified:
		return "Verified"
	case KindNotFound:
		return "NotFound"
	default:
		return "TransportError"
	}
}

// Outcome is the classified result of one lookup. Record is set only for
// KindVerified. Err keeps the underlying cause of a TransportError for logs;
// it never changes Message.
type Outcome struct {
	Kind    Kind
	Record  evidence.Record
	Message string
	Err     error
}

// Verified builds a KindVerified outcome.
func Verified(rec evidence.Record) Outcome {
	return Outcome{Kind: KindVerified, Record: rec}
}

// NotFound builds a KindNotFound outcome.
func NotFound() Outcome {
	return Outcome{Kind: KindNotFound, Message: NotFoundMessage}
}

// TransportError builds a KindTransportError outcome wrapping cause.
func TransportError(cause error) Outcome {
	return Outcome{Kind: KindTransportError, Message: TransportErrorMessage, Err: cause}
}

// OK reports whether the outcome is Verified.
func (o Outcome) OK() bool {
	return o.Kind == KindVerified
}
