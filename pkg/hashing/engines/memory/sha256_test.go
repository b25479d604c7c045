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
	"testing"

	hashengines "github.com/Azam0221/Truth-Chain-Web/pkg/hashing/engines"
)

// sha256("abcd")
const abcdSHA256 = "88d4266fd4e6338d13b845fcf289579d209c897823b9217da3e161936f031589"

func TestSHA256_ImplementsStreamingHashEngine(t *testing.T) {
	var _ hashengines.StreamingHashEngine = (*SHA256Engine)(nil)
}

func TestSHA256_UpdateThenCompute(t *testing.T) {
	h := NewSHA256Engine(nil)
	h.Update([]byte("ab"))
	h.Update([]byte("cd"))

	d, err := h.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := d.Hex(); got != abcdSHA256 {
		t.Errorf("Compute() = %q, want %q", got, abcdSHA256)
	}
	if d.Algorithm() != "sha256" {
		t.Errorf("Algorithm() = %q, want sha256", d.Algorithm())
	}
}

func TestSHA256_InitialDataConstructor(t *testing.T) {
	d, err := NewSHA256Engine([]byte("abcd")).Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := d.Hex(); got != abcdSHA256 {
		t.Errorf("Compute() = %q, want %q", got, abcdSHA256)
	}
}

func TestSHA256_ResetAndRecompute(t *testing.T) {
	h := NewSHA256Engine([]byte("junk"))
	h.Reset([]byte("abcd"))

	d, err := h.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := d.Hex(); got != abcdSHA256 {
		t.Errorf("Compute() after Reset() = %q, want %q", got, abcdSHA256)
	}
}

func TestSHA256_EmptyInput(t *testing.T) {
	const emptySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

	d, err := NewSHA256Engine(nil).Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := d.Hex(); got != emptySHA256 {
		t.Errorf("Compute() = %q, want %q", got, emptySHA256)
	}
	if d.Size() != NewSHA256Engine(nil).DigestSize() {
		t.Errorf("Size() = %d, want %d", d.Size(), 32)
	}
}
