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

// Package utils holds input checks shared by the command-line tools.
package utils

import (
	"fmt"
	"net"
	"os"
	"strconv"
)

// FileCheck describes what a path argument must satisfy.
type FileCheck struct {
	// Field names the argument in error messages.
	Field string
	// MaxSize rejects larger files when positive.
	MaxSize int64
	// AllowEmpty accepts zero-length files.
	AllowEmpty bool
}

// Check verifies that path names a readable regular file within the limits.
func (c FileCheck) Check(path string) error {
	if path == "" {
		return fmt.Errorf("%s is required", c.Field)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s %q does not exist", c.Field, path)
		}
		return fmt.Errorf("checking %s %q: %w", c.Field, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s %q is a directory, expected file", c.Field, path)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s %q is not a regular file", c.Field, path)
	}
	if !c.AllowEmpty && info.Size() == 0 {
		return fmt.Errorf("%s %q is empty", c.Field, path)
	}
	if c.MaxSize > 0 && info.Size() > c.MaxSize {
		return fmt.Errorf("%s %q is %d bytes, limit is %d", c.Field, path, info.Size(), c.MaxSize)
	}
	return nil
}

// CheckAll applies Check to every path and returns the first failure.
func (c FileCheck) CheckAll(paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("at least one %s is required", c.Field)
	}
	for i, path := range paths {
		item := c
		item.Field = fmt.Sprintf("%s[%d]", c.Field, i)
		if err := item.Check(path); err != nil {
			return err
		}
	}
	return nil
}

// ValidateFileExists checks that path is an existing regular file.
func ValidateFileExists(field, path string) error {
	return FileCheck{Field: field, AllowEmpty: true}.Check(path)
}

// ValidateOptionalFile checks path only when it is set.
func ValidateOptionalFile(field, path string) error {
	if path == "" {
		return nil
	}
	return ValidateFileExists(field, path)
}

// ValidateListenAddr checks a host:port listen address. The host may be
// empty; the port must be numeric.
func ValidateListenAddr(field, addr string) error {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("%s %q: %w", field, addr, err)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("%s %q has invalid port %q", field, addr, port)
	}
	return nil
}
