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

// Package ledgerstub serves an in-memory evidence ledger with the same wire
// contract as the production service. It backs tests and offline demos.
package ledgerstub

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Azam0221/Truth-Chain-Web/pkg/evidence"
	"github.com/Azam0221/Truth-Chain-Web/pkg/logging"
)

// Ledger maps lowercase hex digests to records.
type Ledger struct {
	mu      sync.RWMutex
	records map[string]evidence.Record
	logger  logging.Logger
}

// New returns an empty ledger.
func New(logger logging.Logger) *Ledger {
	return &Ledger{
		records: make(map[string]evidence.Record),
		logger:  logging.EnsureLogger(logger),
	}
}

// LoadFile reads a fixture file of the form {"<digest>": {record}, ...}.
func LoadFile(path string, logger logging.Logger) (*Ledger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	var fixtures map[string]evidence.Record
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("parse fixtures %q: %w", path, err)
	}
	l := New(logger)
	for digest, rec := range fixtures {
		l.Put(digest, rec)
	}
	return l, nil
}

// Put registers rec under digest.
func (l *Ledger) Put(digest string, rec evidence.Record) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records[strings.ToLower(digest)] = rec
}

// Get returns the record for digest.
func (l *Ledger) Get(digest string) (evidence.Record, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	rec, ok := l.records[strings.ToLower(digest)]
	return rec, ok
}

// Len returns the number of registered digests.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Handler returns the HTTP routes. prefix is the mount point of the
// evidence API, e.g. "/api/evidence"; empty mounts at the root.
func (l *Ledger) Handler(prefix string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	routes := func(r chi.Router) {
		r.Get("/verify/{digest}", l.verify)
	}
	prefix = strings.TrimRight(prefix, "/")
	if prefix == "" {
		routes(r)
	} else {
		r.Route(prefix, routes)
	}
	return r
}

func (l *Ledger) verify(w http.ResponseWriter, r *http.Request) {
	digest := chi.URLParam(r, "digest")
	log := l.logger.WithFields(map[string]interface{}{
		"digest":     digest,
		"request_id": r.Header.Get("X-Request-ID"),
	})

	rec, ok := l.Get(digest)
	if !ok {
		log.Info("digest not registered")
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "evidence not found"})
		return
	}
	log.Info("digest verified")
	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
