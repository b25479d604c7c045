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

// Package ledger queries a remote evidence ledger by digest.
//
// A lookup is a single GET {base}/verify/{digest}. There are no retries and
// no caching: every call reaches the ledger.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/Azam0221/Truth-Chain-Web/pkg/evidence"
	"github.com/Azam0221/Truth-Chain-Web/pkg/logging"
	"github.com/Azam0221/Truth-Chain-Web/pkg/tracing"
)

const (
	// DefaultTimeout bounds the wait for a ledger response.
	DefaultTimeout = 15 * time.Second
	// MaxBodySize caps how much of a response body is read.
	MaxBodySize int64 = 1 << 20
	// RequestIDHeader carries the attempt id to the ledger.
	RequestIDHeader = "X-Request-ID"
)

// ErrUnexpectedStatus is the cause of a TransportError when the ledger
// answers with a status other than 2xx or 404.
var ErrUnexpectedStatus = errors.New("unexpected ledger status")

// Options configures a Client.
type Options struct {
	// BaseURL of the ledger, e.g. https://host/api/evidence.
	BaseURL string
	// Timeout defaults to DefaultTimeout.
	Timeout time.Duration
	// HTTPClient overrides the pooled cleanhttp client.
	HTTPClient *http.Client
	// UserAgent is sent when non-empty.
	UserAgent string
	Logger    logging.Logger
}

// Client looks up digests against one ledger.
type Client struct {
	base      *url.URL
	timeout   time.Duration
	http      *http.Client
	userAgent string
	logger    logging.Logger
}

// NewClient validates opts and returns a Client.
func NewClient(opts Options) (*Client, error) {
	base, err := ParseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = cleanhttp.DefaultPooledClient()
	}
	return &Client{
		base:      base,
		timeout:   timeout,
		http:      hc,
		userAgent: opts.UserAgent,
		logger:    logging.EnsureLogger(opts.Logger),
	}, nil
}

// ParseBaseURL checks that raw is an absolute http(s) URL without a query
// or fragment, since lookup paths are appended to it.
func ParseBaseURL(raw string) (*url.URL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("ledger base URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse ledger base URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("ledger base URL %q must be an absolute http(s) URL", raw)
	}
	if u.RawQuery != "" || u.ForceQuery || u.Fragment != "" {
		return nil, fmt.Errorf("ledger base URL %q must not carry a query or fragment", raw)
	}
	return u, nil
}

// Timeout returns the per-lookup bound.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// LookupURL returns the URL queried for digest.
func (c *Client) LookupURL(digest string) string {
	return strings.TrimRight(c.base.String(), "/") + "/verify/" + url.PathEscape(digest)
}

// Lookup queries the ledger for digest. The digest is sent as given; the
// caller is responsible for its format. requestID may be empty.
func (c *Client) Lookup(ctx context.Context, digest, requestID string) Outcome {
	var out Outcome
	attrs := map[string]interface{}{
		"ledger.request_id": requestID,
	}
	_ = tracing.Run(ctx, "LedgerLookup", attrs, func(ctx context.Context) error {
		out = c.lookup(ctx, digest, requestID)
		return spanError(out.Err)
	})

	log := c.logger.WithFields(map[string]interface{}{"digest": digest, "outcome": out.Kind.String()})
	if out.Err != nil {
		log.Warn("ledger lookup failed: %v", out.Err)
	} else {
		log.Debug("ledger lookup finished")
	}
	return out
}

func (c *Client) lookup(ctx context.Context, digest, requestID string) Outcome {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.LookupURL(digest), nil)
	if err != nil {
		return TransportError(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return TransportError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxBodySize))
		return NotFound()
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxBodySize))
		return TransportError(fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return TransportError(fmt.Errorf("read response: %w", err))
	}
	if int64(len(body)) > MaxBodySize {
		return TransportError(fmt.Errorf("response body exceeds %d bytes", MaxBodySize))
	}

	rec, err := evidence.Decode(body)
	if err != nil {
		return TransportError(err)
	}
	return Verified(rec)
}

// spanError strips the request URL, which embeds the digest, from errors
// recorded on spans.
func spanError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return fmt.Errorf("%s: %w", ue.Op, ue.Err)
	}
	return err
}

// Lookup performs a one-off query against baseURL with default options.
func Lookup(ctx context.Context, digest, baseURL string) Outcome {
	c, err := NewClient(Options{BaseURL: baseURL, Logger: logging.Nop()})
	if err != nil {
		return TransportError(err)
	}
	return c.Lookup(ctx, digest, "")
}
