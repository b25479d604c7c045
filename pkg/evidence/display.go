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
	"time"
)

const (
	// Placeholder is shown for absent record fields.
	Placeholder = "N/A"
	// TimestampUnreadable is shown when the metadata time cannot be parsed.
	TimestampUnreadable = "Timestamp unreadable"
	// DefaultTimeLayout renders timestamps in the local zone.
	DefaultTimeLayout = "Jan 2, 2006, 3:04:05 PM MST"
)

// Display holds the fields rendered for a verified record.
type Display struct {
	Location  string `json:"location"`
	Timestamp string `json:"timestamp"`
	DeviceID  string `json:"deviceId"`
	Signature string `json:"signature"`
}

// Formatter derives Display values. The zero value uses DefaultTimeLayout
// and time.Local.
type Formatter struct {
	Layout   string
	Location *time.Location
}

// Format never fails: malformed metadata only affects the Timestamp field.
func (f Formatter) Format(r Record) Display {
	d, _ := f.Render(r)
	return d
}

// Render is Format that also reports why the timestamp was unreadable.
// The Display is complete either way.
func (f Formatter) Render(r Record) (Display, error) {
	d := Display{
		Location:  orPlaceholder(r.GPSLocation),
		Timestamp: TimestampUnreadable,
		DeviceID:  orPlaceholder(r.DeviceID),
		Signature: orPlaceholder(r.DigitalSignature),
	}
	md, err := ParseMetadata(r.MetaData)
	if err != nil {
		return d, err
	}
	d.Timestamp = f.FormatTime(md.Time)
	return d, nil
}

// Timestamp renders the time carried in a metadata blob.
func (f Formatter) Timestamp(metaData string) string {
	md, err := ParseMetadata(metaData)
	if err != nil {
		return TimestampUnreadable
	}
	return f.FormatTime(md.Time)
}

// FormatTime renders t with the formatter's layout and zone.
func (f Formatter) FormatTime(t time.Time) string {
	layout := f.Layout
	if layout == "" {
		layout = DefaultTimeLayout
	}
	loc := f.Location
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(layout)
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
