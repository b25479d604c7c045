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
	"errors"
	"fmt"
)

// ErrorType represents the category of a failed verification.
type ErrorType int

const (
	// ErrTypeUnknown indicates an unclassified error.
	ErrTypeUnknown ErrorType = iota

	// ErrTypeRead indicates the file could not be fully read.
	ErrTypeRead

	// ErrTypeNotFound indicates the digest is not registered in the ledger.
	ErrTypeNotFound

	// ErrTypeTransport indicates the ledger could not be reached or
	// answered unexpectedly.
	ErrTypeTransport

	// ErrTypeMalformedMetadata indicates the record's metadata timestamp
	// could not be parsed. It never fails a verification.
	ErrTypeMalformedMetadata
)

// String returns a human-readable name for the error type.
func (e ErrorType) String() string {
	switch e {
	case ErrTypeRead:
		return "ReadError"
	case ErrTypeNotFound:
		return "NotFound"
	case ErrTypeTransport:
		return "TransportError"
	case ErrTypeMalformedMetadata:
		return "MalformedMetadata"
	default:
		return "UnknownError"
	}
}

// VerificationError is a structured error for verification failures.
//
//	var verr *VerificationError
//	if errors.As(err, &verr) && verr.Type == ErrTypeNotFound {
//	    // offer "try a different file"
//	}
type VerificationError struct {
	// Type categorizes the error for programmatic handling.
	Type ErrorType
	// Message is the user-facing text.
	Message string
	// Path names the file involved, if any.
	Path string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *VerificationError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Path != "" {
		msg += fmt.Sprintf(" (path: %s)", e.Path)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *VerificationError) Unwrap() error {
	return e.Cause
}

// ExitCode maps the error type to a process exit code.
func (e *VerificationError) ExitCode() int {
	if e.Type == ErrTypeNotFound {
		return 1
	}
	return 2
}

// NewVerificationError creates a new verification error.
func NewVerificationError(errType ErrorType, message string, cause error) *VerificationError {
	return &VerificationError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewVerificationErrorWithPath creates a new verification error naming a file.
func NewVerificationErrorWithPath(errType ErrorType, path, message string, cause error) *VerificationError {
	return &VerificationError{
		Type:    errType,
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}

// IsType reports whether err wraps a VerificationError of errType.
func IsType(err error, errType ErrorType) bool {
	var verifyErr *VerificationError
	if errors.As(err, &verifyErr) {
		return verifyErr.Type == errType
	}
	return false
}
