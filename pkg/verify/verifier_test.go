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
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"testing/iotest"
	"time"

	"github.com/Azam0221/Truth-Chain-Web/internal/ledgerstub"
	"github.com/Azam0221/Truth-Chain-Web/pkg/evidence"
	hashio "github.com/Azam0221/Truth-Chain-Web/pkg/hashing/engines/io"
	"github.com/Azam0221/Truth-Chain-Web/pkg/ledger"
	"github.com/Azam0221/Truth-Chain-Web/pkg/logging"
	"github.com/Azam0221/Truth-Chain-Web/pkg/tracing"
)

const tenByteDigest = "84d89877f0d4041efb6bf91a16f0248f2fd573e6af05c19f96bedb9f882f7882"

type ledgerFunc func(ctx context.Context, digest, requestID string) ledger.Outcome

func (f ledgerFunc) Lookup(ctx context.Context, digest, requestID string) ledger.Outcome {
	return f(ctx, digest, requestID)
}

func hexOf(s string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(s)))
}

func newTestVerifier(t *testing.T, l Ledger) *Verifier {
	t.Helper()
	v, err := NewVerifier(Options{
		Ledger:    l,
		Formatter: evidence.Formatter{Layout: time.RFC3339, Location: time.UTC},
		Logger:    logging.Nop(),
	})
	if err != nil {
		t.Fatalf("NewVerifier() error = %v", err)
	}
	return v
}

func newStubVerifier(t *testing.T, records map[string]evidence.Record) (*Verifier, *httptest.Server) {
	t.Helper()
	stub := ledgerstub.New(logging.Nop())
	for d, rec := range records {
		stub.Put(d, rec)
	}
	srv := httptest.NewServer(stub.Handler("/api/evidence"))
	t.Cleanup(srv.Close)

	client, err := ledger.NewClient(ledger.Options{
		BaseURL: srv.URL + "/api/evidence",
		Timeout: 2 * time.Second,
		Logger:  logging.Nop(),
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return newTestVerifier(t, client), srv
}

func TestNewVerifier_RequiresLedger(t *testing.T) {
	if _, err := NewVerifier(Options{}); err == nil {
		t.Fatal("expected error without a ledger")
	}
}

func TestVerifyReader_EndToEnd(t *testing.T) {
	rec := evidence.Record{
		GPSLocation:      "12.9716,77.5946",
		MetaData:         `{"time":"1700000000000"}`,
		DeviceID:         "device-7",
		DigitalSignature: "MEUCIQDsig",
	}
	v, _ := newStubVerifier(t, map[string]evidence.Record{tenByteDigest: rec})

	report, err := v.VerifyReader(context.Background(), "photo.jpg", strings.NewReader("0123456789"))
	if err != nil {
		t.Fatalf("VerifyReader() error = %v", err)
	}
	if report.Digest.Hex() != tenByteDigest {
		t.Errorf("digest = %s, want %s", report.Digest.Hex(), tenByteDigest)
	}
	if !report.Outcome.OK() || report.Outcome.Record != rec {
		t.Errorf("outcome = %+v, want Verified(%+v)", report.Outcome, rec)
	}
	want := evidence.Display{
		Location:  rec.GPSLocation,
		Timestamp: "2023-11-14T22:13:20Z",
		DeviceID:  rec.DeviceID,
		Signature: rec.DigitalSignature,
	}
	if report.Display != want {
		t.Errorf("display = %+v, want %+v", report.Display, want)
	}
	if report.MetadataErr != nil {
		t.Errorf("MetadataErr = %v, want nil", report.MetadataErr)
	}
	if report.AttemptID == "" || report.FileName != "photo.jpg" {
		t.Errorf("report identity = %q/%q", report.AttemptID, report.FileName)
	}
}

func TestVerifyReader_NotFound(t *testing.T) {
	v, _ := newStubVerifier(t, nil)

	report, err := v.VerifyReader(context.Background(), "x.bin", strings.NewReader("unregistered"))
	if !IsType(err, ErrTypeNotFound) {
		t.Fatalf("error = %v, want NotFound", err)
	}
	if report.Message() != ledger.NotFoundMessage {
		t.Errorf("message = %q", report.Message())
	}
}

func TestVerifyReader_Transport(t *testing.T) {
	v, srv := newStubVerifier(t, nil)
	srv.Close()

	report, err := v.VerifyReader(context.Background(), "x.bin", strings.NewReader("abc"))
	if !IsType(err, ErrTypeTransport) {
		t.Fatalf("error = %v, want TransportError", err)
	}
	if report.Message() != ledger.TransportErrorMessage {
		t.Errorf("message = %q", report.Message())
	}
	if report.Digest.Hex() != hexOf("abc") {
		t.Errorf("digest should still be reported, got %q", report.Digest.Hex())
	}
}

func TestVerifyReader_ReadErrorSkipsLedger(t *testing.T) {
	var calls int32
	v := newTestVerifier(t, ledgerFunc(func(context.Context, string, string) ledger.Outcome {
		atomic.AddInt32(&calls, 1)
		return ledger.NotFound()
	}))

	report, err := v.VerifyReader(context.Background(), "bad", iotest.ErrReader(errors.New("disk gone")))
	if !IsType(err, ErrTypeRead) {
		t.Fatalf("error = %v, want ReadError", err)
	}
	var readErr *hashio.ReadError
	if !errors.As(err, &readErr) {
		t.Errorf("error should wrap *io.ReadError, got %v", err)
	}
	if report.Message() != ReadErrorMessage {
		t.Errorf("message = %q", report.Message())
	}
	if report.Outcome.Kind != ledger.KindTransportError {
		t.Errorf("kind = %v, want TransportError", report.Outcome.Kind)
	}
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Errorf("ledger called %d times after read failure", got)
	}
}

func TestVerifyReader_MalformedMetadataStillVerified(t *testing.T) {
	rec := evidence.Record{MetaData: "not json", DeviceID: "d"}
	v := newTestVerifier(t, ledgerFunc(func(context.Context, string, string) ledger.Outcome {
		return ledger.Verified(rec)
	}))

	report, err := v.VerifyReader(context.Background(), "f", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("VerifyReader() error = %v", err)
	}
	if report.Display.Timestamp != evidence.TimestampUnreadable {
		t.Errorf("timestamp = %q", report.Display.Timestamp)
	}
	if report.Display.Location != evidence.Placeholder {
		t.Errorf("location = %q, want placeholder", report.Display.Location)
	}
	if !IsType(report.MetadataErr, ErrTypeMalformedMetadata) {
		t.Errorf("MetadataErr = %v", report.MetadataErr)
	}
}

func TestVerifyReader_SendsDigestAndAttemptID(t *testing.T) {
	var gotDigest, gotID string
	v := newTestVerifier(t, ledgerFunc(func(_ context.Context, d, id string) ledger.Outcome {
		gotDigest, gotID = d, id
		return ledger.NotFound()
	}))

	report, _ := v.VerifyReader(context.Background(), "f", strings.NewReader("0123456789"))
	if gotDigest != tenByteDigest {
		t.Errorf("ledger saw digest %q", gotDigest)
	}
	if gotID != report.AttemptID {
		t.Errorf("ledger saw request id %q, want %q", gotID, report.AttemptID)
	}
}

func TestVerifyFile(t *testing.T) {
	v, _ := newStubVerifier(t, map[string]evidence.Record{tenByteDigest: {DeviceID: "d"}})
	path := filepath.Join(t.TempDir(), "evidence.bin")
	if err := os.WriteFile(path, []byte("0123456789"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := v.VerifyFile(context.Background(), path); err != nil {
		t.Fatalf("VerifyFile() error = %v", err)
	}
	_, err := v.VerifyFile(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if !IsType(err, ErrTypeRead) {
		t.Errorf("missing file error = %v, want ReadError", err)
	}
}

func TestDigest(t *testing.T) {
	v := newTestVerifier(t, ledgerFunc(func(context.Context, string, string) ledger.Outcome {
		t.Error("Digest must not contact the ledger")
		return ledger.NotFound()
	}))
	d, err := v.Digest("f", strings.NewReader("0123456789"))
	if err != nil {
		t.Fatal(err)
	}
	if d.Hex() != tenByteDigest {
		t.Errorf("Digest() = %s", d.Hex())
	}
}

func TestVerifyReader_ObjectMetadataStillVerified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"gpsLocation":"x","metaData":{"time":"1700000000000"},"deviceId":"d"}`)
	}))
	t.Cleanup(srv.Close)
	client, err := ledger.NewClient(ledger.Options{BaseURL: srv.URL, Timeout: time.Second, Logger: logging.Nop()})
	if err != nil {
		t.Fatal(err)
	}
	v := newTestVerifier(t, client)

	report, err := v.VerifyReader(context.Background(), "f", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("VerifyReader() error = %v", err)
	}
	if report.Outcome.Kind != ledger.KindVerified {
		t.Fatalf("kind = %v, want Verified", report.Outcome.Kind)
	}
	want := evidence.Display{Location: "x", Timestamp: evidence.TimestampUnreadable, DeviceID: "d", Signature: evidence.Placeholder}
	if report.Display != want {
		t.Errorf("display = %+v, want %+v", report.Display, want)
	}
	if !IsType(report.MetadataErr, ErrTypeMalformedMetadata) {
		t.Errorf("MetadataErr = %v", report.MetadataErr)
	}
}

type attrSpan map[string]interface{}

func (s attrSpan) SetAttribute(key string, value interface{}) { s[key] = value }

func (attrSpan) End() {}

type attrTracer struct {
	spans map[string]attrSpan
}

func (r *attrTracer) Start(ctx context.Context, name string) (context.Context, tracing.Span) {
	s := attrSpan{}
	r.spans[name] = s
	return ctx, s
}

func TestVerifyFile_SpansOmitPathAndDigest(t *testing.T) {
	rec := &attrTracer{spans: map[string]attrSpan{}}
	tracing.SetTracer(rec)
	t.Cleanup(func() { tracing.SetTracer(nil) })

	v, _ := newStubVerifier(t, nil)
	path := filepath.Join(t.TempDir(), "evidence.bin")
	if err := os.WriteFile(path, []byte("0123456789"), 0o600); err != nil {
		t.Fatal(err)
	}

	report, err := v.VerifyFile(context.Background(), path)
	if !IsType(err, ErrTypeNotFound) {
		t.Fatalf("error = %v, want NotFound", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("returned error %q should still name the file", err)
	}

	for _, name := range []string{"VerifyEvidence", "LedgerLookup"} {
		span, ok := rec.spans[name]
		if !ok {
			t.Fatalf("no %s span recorded", name)
		}
		for k, val := range span {
			text := fmt.Sprint(val)
			if strings.Contains(text, tenByteDigest) || strings.Contains(text, path) {
				t.Errorf("%s attribute %s = %q leaks the file or digest", name, k, text)
			}
		}
	}
	if rec.spans["VerifyEvidence"]["verify.attempt_id"] != report.AttemptID {
		t.Errorf("attempt id attribute = %v", rec.spans["VerifyEvidence"]["verify.attempt_id"])
	}
	if _, ok := rec.spans["VerifyEvidence"]["error"]; !ok {
		t.Error("failed verification should record an error attribute")
	}
}
