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

package tracing

import (
	"context"
	"errors"
	"testing"
)

type recordingSpan struct {
	attrs map[string]interface{}
	ended bool
}

func (s *recordingSpan) SetAttribute(key string, value interface{}) { s.attrs[key] = value }
func (s *recordingSpan) End()                                       { s.ended = true }

type recordingTracer struct {
	names []string
	spans []*recordingSpan
}

func (t *recordingTracer) Start(ctx context.Context, name string) (context.Context, Span) {
	s := &recordingSpan{attrs: map[string]interface{}{}}
	t.names = append(t.names, name)
	t.spans = append(t.spans, s)
	return ctx, s
}

func TestRun_NoopByDefault(t *testing.T) {
	SetTracer(nil)
	if Enabled() {
		t.Fatal("expected no-op tracer by default")
	}
	called := false
	if err := Run(context.Background(), "x", nil, func(context.Context) error {
		called = true
		return nil
	}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !called {
		t.Error("fn was not called")
	}
}

func TestRun_RecordsSpan(t *testing.T) {
	rt := &recordingTracer{}
	SetTracer(rt)
	defer SetTracer(nil)

	wantErr := errors.New("boom")
	err := Run(context.Background(), "Lookup", map[string]interface{}{"ledger.request_id": "abc"}, func(context.Context) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Run() error = %v, want %v", err, wantErr)
	}
	if len(rt.spans) != 1 || rt.names[0] != "Lookup" {
		t.Fatalf("spans = %v", rt.names)
	}
	s := rt.spans[0]
	if !s.ended {
		t.Error("span not ended")
	}
	if s.attrs["ledger.request_id"] != "abc" || s.attrs["error"] != "boom" {
		t.Errorf("attrs = %v", s.attrs)
	}
}

func TestGetTracer_NeverNil(t *testing.T) {
	SetTracer(nil)
	if GetTracer() == nil {
		t.Error("GetTracer() returned nil")
	}
	if _, span := Start(context.Background(), "n"); span == nil {
		t.Error("Start() returned nil span")
	}
}
