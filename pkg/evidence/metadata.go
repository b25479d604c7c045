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

package evidence

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedMetadata is returned when the metadata blob or its time field
// cannot be parsed.
var ErrMalformedMetadata = errors.New("malformed metadata")

// Metadata is the parsed form of Record.MetaData.
type Metadata struct {
	// Time is the capture instant, carried on the wire as milliseconds since
	// the epoch encoded as a string.
	Time time.Time
	// Raw keeps every field of the blob, including Time's source value.
	Raw map[string]json.RawMessage
}

// ParseMetadata decodes a metadata blob. The time field may be a decimal
// string or a JSON number.
func ParseMetadata(s string) (Metadata, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return Metadata{}, fmt.Errorf("%w: %v", ErrMalformedMetadata, err)
	}

	field, ok := raw["time"]
	if !ok {
		return Metadata{}, fmt.Errorf("%w: missing time field", ErrMalformedMetadata)
	}
	ms, err := parseMillis(field)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: time: %v", ErrMalformedMetadata, err)
	}

	return Metadata{Time: time.UnixMilli(ms), Raw: raw}, nil
}

func parseMillis(field json.RawMessage) (int64, error) {
	field = bytes.TrimSpace(field)
	var text string
	if len(field) > 0 && field[0] == '"' {
		if err := json.Unmarshal(field, &text); err != nil {
			return 0, err
		}
	} else {
		text = string(field)
	}
	return strconv.ParseInt(strings.TrimSpace(text), 10, 64)
}
