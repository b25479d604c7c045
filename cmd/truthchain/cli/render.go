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

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Azam0221/Truth-Chain-Web/pkg/evidence"
	"github.com/Azam0221/Truth-Chain-Web/pkg/ledger"
	"github.com/Azam0221/Truth-Chain-Web/pkg/verify"
)

// reportJSON is the --json shape of one result.
type reportJSON struct {
	File      string            `json:"file"`
	AttemptID string            `json:"attemptId"`
	Digest    string            `json:"digest,omitempty"`
	Status    string            `json:"status"`
	Message   string            `json:"message,omitempty"`
	Evidence  *evidence.Display `json:"evidence,omitempty"`
	Record    *evidence.Record  `json:"record,omitempty"`
}

func writeReport(w io.Writer, r verify.Report, asJSON bool) error {
	if asJSON {
		return writeReportJSON(w, r)
	}
	return writeReportText(w, r)
}

func writeReportJSON(w io.Writer, r verify.Report) error {
	out := reportJSON{
		File:      r.FileName,
		AttemptID: r.AttemptID,
		Status:    r.Outcome.Kind.String(),
		Message:   r.Message(),
	}
	if !r.Digest.IsZero() {
		out.Digest = r.Digest.Hex()
	}
	if r.Outcome.Kind == ledger.KindVerified {
		display, rec := r.Display, r.Outcome.Record
		out.Evidence = &display
		out.Record = &rec
	}
	return json.NewEncoder(w).Encode(out)
}

func writeReportText(w io.Writer, r verify.Report) error {
	rows := [][2]string{{"File", r.FileName}}
	if !r.Digest.IsZero() {
		rows = append(rows, [2]string{"SHA-256", r.Digest.Hex()})
	}
	rows = append(rows, [2]string{"Status", r.Outcome.Kind.String()})

	if r.Outcome.Kind == ledger.KindVerified {
		rows = append(rows,
			[2]string{"Location", r.Display.Location},
			[2]string{"Timestamp", r.Display.Timestamp},
			[2]string{"Device ID", r.Display.DeviceID},
			[2]string{"Signature", r.Display.Signature},
		)
	} else {
		rows = append(rows, [2]string{"Message", r.Message()})
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-10s %s\n", row[0]+":", row[1]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
