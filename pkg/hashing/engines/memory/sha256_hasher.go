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

package memory

import (
	"crypto/sha256"
	"hash"

	"github.com/Azam0221/Truth-Chain-Web/pkg/hashing/digests"
	hashengines "github.com/Azam0221/Truth-Chain-Web/pkg/hashing/engines"
)

var _ hashengines.StreamingHashEngine = (*SHA256Engine)(nil)

// SHA256Engine is a StreamingHashEngine that wraps crypto/sha256.
type SHA256Engine struct {
	h hash.Hash
}

// NewSHA256Engine constructs a new SHA256 engine seeded with initialData.
func NewSHA256Engine(initialData []byte) *SHA256Engine {
	e := &SHA256Engine{h: sha256.New()}
	e.Update(initialData)
	return e
}

// Update appends more bytes into the hash state.
func (e *SHA256Engine) Update(data []byte) {
	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Reset clears the hash state and optionally seeds it with new data.
func (e *SHA256Engine) Reset(data []byte) {
	e.h.Reset()
	e.Update(data)
}

// Compute returns the digest of everything written so far. The state is
// left intact, so Compute may be called again after further updates.
func (e *SHA256Engine) Compute() (digests.Digest, error) {
	return digests.NewDigest(e.DigestName(), e.h.Sum(nil)), nil
}

// DigestName returns the algorithm identifier.
func (e *SHA256Engine) DigestName() string {
	return digests.SHA256
}

// DigestSize returns the byte length of the produced digest.
func (e *SHA256Engine) DigestSize() int {
	return sha256.Size
}
