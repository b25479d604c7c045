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

package io

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/Azam0221/Truth-Chain-Web/pkg/hashing/digests"
	hashengines "github.com/Azam0221/Truth-Chain-Web/pkg/hashing/engines"
	"github.com/Azam0221/Truth-Chain-Web/pkg/hashing/engines/memory"
)

// DefaultMaxSize bounds how much of a file is loaded into memory before hashing.
const DefaultMaxSize int64 = 256 << 20

// ErrTooLarge is the cause of a ReadError when the source exceeds the size cap.
var ErrTooLarge = errors.New("file exceeds maximum size")

// ReadError reports that a byte source could not be fully read.
type ReadError struct {
	Name  string
	Cause error
}

func (e *ReadError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("read failed: %v", e.Cause)
	}
	return fmt.Sprintf("read %q: %v", e.Name, e.Cause)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

// ReaderHasher loads a whole byte source into memory and hashes it. It is
// safe for concurrent use.
type ReaderHasher struct {
	mu            sync.Mutex
	contentHasher hashengines.StreamingHashEngine
	maxSize       int64
}

// NewReaderHasher constructs a ReaderHasher.
//
//   - contentHasher: engine used for the contents; nil selects SHA-256
//   - maxSize: upper bound in bytes; 0 disables the bound
func NewReaderHasher(contentHasher hashengines.StreamingHashEngine, maxSize int64) (*ReaderHasher, error) {
	if maxSize < 0 {
		return nil, fmt.Errorf("max size must be non-negative, got %d", maxSize)
	}
	if contentHasher == nil {
		contentHasher = memory.NewSHA256Engine(nil)
	}
	return &ReaderHasher{
		contentHasher: contentHasher,
		maxSize:       maxSize,
	}, nil
}

// DigestName is delegated to the inner content hasher.
func (h *ReaderHasher) DigestName() string {
	return h.contentHasher.DigestName()
}

// DigestSize is delegated to the inner content hasher.
func (h *ReaderHasher) DigestSize() int {
	return h.contentHasher.DigestSize()
}

// MaxSize returns the configured size cap.
func (h *ReaderHasher) MaxSize() int64 {
	return h.maxSize
}

// ComputeReader reads r to EOF and returns the digest of its contents.
// name only labels errors. Any read failure, including exceeding the size
// cap, is returned as a *ReadError.
func (h *ReaderHasher) ComputeReader(name string, r io.Reader) (digests.Digest, error) {
	if r == nil {
		return digests.Digest{}, &ReadError{Name: name, Cause: errors.New("nil reader")}
	}

	src := r
	if h.maxSize > 0 {
		src = io.LimitReader(r, h.maxSize+1)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return digests.Digest{}, &ReadError{Name: name, Cause: err}
	}
	if h.maxSize > 0 && int64(len(data)) > h.maxSize {
		return digests.Digest{}, &ReadError{
			Name:  name,
			Cause: fmt.Errorf("%w (%d bytes)", ErrTooLarge, h.maxSize),
		}
	}

	return h.ComputeBytes(data)
}

// ComputeBytes hashes data already held in memory.
func (h *ReaderHasher) ComputeBytes(data []byte) (digests.Digest, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.contentHasher.Reset(data)
	d, err := h.contentHasher.Compute()
	if err != nil {
		return digests.Digest{}, fmt.Errorf("compute digest: %w", err)
	}
	return d, nil
}

// ComputeFile opens path and hashes its contents.
func (h *ReaderHasher) ComputeFile(path string) (digests.Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return digests.Digest{}, &ReadError{Name: path, Cause: err}
	}
	defer f.Close()

	if h.maxSize > 0 {
		if info, err := f.Stat(); err == nil && info.Mode().IsRegular() && info.Size() > h.maxSize {
			return digests.Digest{}, &ReadError{
				Name:  path,
				Cause: fmt.Errorf("%w (%d bytes)", ErrTooLarge, h.maxSize),
			}
		}
	}
	return h.ComputeReader(path, f)
}
