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

// Package digests provides the Digest type used as the ledger lookup key.
//
// A Digest pairs the algorithm name with the raw hash bytes. Fields are
// unexported and accessors copy, so a Digest cannot change once computed.
package digests

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// SHA256 is the algorithm name used for evidence digests.
const SHA256 = "sha256"

// ErrInvalidHex is returned by ParseHex for strings that are not a well-formed digest.
var ErrInvalidHex = errors.New("invalid hex digest")

// knownSizes maps algorithm names to their digest length in bytes.
var knownSizes = map[string]int{
	SHA256: 32,
}

// Digest represents a computed cryptographic hash digest.
type Digest struct {
	algorithm string
	value     []byte
}

// NewDigest creates a Digest for algorithm from a copy of value.
func NewDigest(algorithm string, value []byte) Digest {
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	return Digest{
		algorithm: algorithm,
		value:     valueCopy,
	}
}

// ParseHex decodes a hex string into a Digest.
//
// Upper-case input is accepted and normalised. For algorithms with a known
// size the decoded length must match.
func ParseHex(algorithm, s string) (Digest, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Digest{}, fmt.Errorf("%w: empty", ErrInvalidHex)
	}
	raw, err := hex.DecodeString(strings.ToLower(s))
	if err != nil {
		return Digest{}, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	if size, ok := knownSizes[algorithm]; ok && len(raw) != size {
		return Digest{}, fmt.Errorf("%w: %s digest must be %d bytes, got %d", ErrInvalidHex, algorithm, size, len(raw))
	}
	return Digest{algorithm: algorithm, value: raw}, nil
}

// Algorithm returns the name of the hash algorithm.
func (d Digest) Algorithm() string {
	return d.algorithm
}

// Value returns a copy of the raw digest bytes.
func (d Digest) Value() []byte {
	valueCopy := make([]byte, len(d.value))
	copy(valueCopy, d.value)
	return valueCopy
}

// Hex returns the lowercase hexadecimal encoding of the digest value.
// This is the form sent to the ledger.
func (d Digest) Hex() string {
	return hex.EncodeToString(d.value)
}

// Size returns the length in bytes of the digest value.
func (d Digest) Size() int {
	return len(d.value)
}

// IsZero reports whether the digest holds no value.
func (d Digest) IsZero() bool {
	return len(d.value) == 0
}

// String returns "algorithm:hexvalue".
func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.Hex())
}

// Equal reports whether both digests have the same algorithm and value.
func (d Digest) Equal(other Digest) bool {
	return d.algorithm == other.algorithm && bytes.Equal(d.value, other.value)
}
