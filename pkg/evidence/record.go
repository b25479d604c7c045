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

// Package evidence models the provenance record a ledger holds for a
// registered digest, and derives its display fields.
package evidence

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// ErrMalformedRecord is returned by Decode when a response body does not
// match the record schema.
var ErrMalformedRecord = errors.New("malformed evidence record")

// Record is the ledger's response for a known digest. Fields are copied
// verbatim from the response; absent fields are empty.
type Record struct {
	GPSLocation      string `json:"gpsLocation"`
	MetaData         string `json:"metaData"`
	DeviceID         string `json:"deviceId"`
	DigitalSignature string `json:"digitalSignature"`
}

// recordSchema only requires an object. Field types are resolved by
// fieldText so that a mistyped field degrades its display instead of
// failing the lookup.
const recordSchema = `{
  "type": "object",
  "properties": {
    "gpsLocation":      {},
    "metaData":         {},
    "deviceId":         {},
    "digitalSignature": {}
  }
}`

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(recordSchema))
	})
	return schema, schemaErr
}

// Decode validates body against the record schema and decodes it.
// Unknown fields are ignored. A non-string gpsLocation, deviceId or
// digitalSignature keeps its raw JSON text; a non-string metaData becomes
// empty and renders as unreadable.
func Decode(body []byte) (Record, error) {
	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	s, err := compiledSchema()
	if err != nil {
		return Record{}, fmt.Errorf("compile record schema: %w", err)
	}
	result, err := s.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if !result.Valid() {
		var b strings.Builder
		for _, e := range result.Errors() {
			if b.Len() > 0 {
				b.WriteString("; ")
			}
			b.WriteString(e.String())
		}
		return Record{}, fmt.Errorf("%w: %s", ErrMalformedRecord, b.String())
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return Record{
		GPSLocation:      fieldText(fields["gpsLocation"], true),
		MetaData:         fieldText(fields["metaData"], false),
		DeviceID:         fieldText(fields["deviceId"], true),
		DigitalSignature: fieldText(fields["digitalSignature"], true),
	}, nil
}

// fieldText returns a JSON string's value. null and absent fields are
// empty. Other values yield their raw text when keepRaw is set.
func fieldText(raw json.RawMessage, keepRaw bool) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if keepRaw {
		return string(raw)
	}
	return ""
}
