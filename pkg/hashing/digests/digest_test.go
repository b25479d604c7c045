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

package digests

import (
	"errors"
	"strings"
	"testing"
)

func TestNewDigest_CopiesValue(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03}
	d := NewDigest(SHA256, raw)
	raw[0] = 0xff

	if got := d.Hex(); got != "010203" {
		t.Errorf("Hex() = %q, want %q", got, "010203")
	}

	v := d.Value()
	v[1] = 0xff
	if got := d.Hex(); got != "010203" {
		t.Errorf("Value() leaked internal state, Hex() = %q", got)
	}
}

func TestDigest_String(t *testing.T) {
	d := NewDigest(SHA256, []byte{0xab, 0xcd})
	if got, want := d.String(), "sha256:abcd"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDigest_Equal(t *testing.T) {
	a := NewDigest(SHA256, []byte{1, 2})
	b := NewDigest(SHA256, []byte{1, 2})
	c := NewDigest("blake2b", []byte{1, 2})
	d := NewDigest(SHA256, []byte{1, 3})

	if !a.Equal(b) {
		t.Error("expected equal digests")
	}
	if a.Equal(c) {
		t.Error("digests with different algorithms must not be equal")
	}
	if a.Equal(d) {
		t.Error("digests with different values must not be equal")
	}
}

func TestParseHex(t *testing.T) {
	valid := strings.Repeat("ab", 32)

	tests := []struct {
		name    string
		input   string
		wantHex string
		wantErr bool
	}{
		{name: "lowercase", input: valid, wantHex: valid},
		{name: "uppercase normalised", input: strings.ToUpper(valid), wantHex: valid},
		{name: "surrounding whitespace", input: " " + valid + "\n", wantHex: valid},
		{name: "empty", input: "", wantErr: true},
		{name: "not hex", input: strings.Repeat("zz", 32), wantErr: true},
		{name: "odd length", input: valid[:63], wantErr: true},
		{name: "too short", input: "abcd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseHex(SHA256, tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidHex) {
					t.Fatalf("ParseHex() error = %v, want ErrInvalidHex", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex() unexpected error: %v", err)
			}
			if d.Hex() != tt.wantHex {
				t.Errorf("Hex() = %q, want %q", d.Hex(), tt.wantHex)
			}
			if d.Algorithm() != SHA256 {
				t.Errorf("Algorithm() = %q, want %q", d.Algorithm(), SHA256)
			}
		})
	}
}

func TestParseHex_UnknownAlgorithmSkipsLengthCheck(t *testing.T) {
	d, err := ParseHex("custom", "abcd")
	if err != nil {
		t.Fatalf("ParseHex() unexpected error: %v", err)
	}
	if d.Size() != 2 {
		t.Errorf("Size() = %d, want 2", d.Size())
	}
}
