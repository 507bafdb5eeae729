// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package diag

import "encoding/json"

// Report is an ordered collection of diagnostics produced by one parse
// or scale invocation. It is owned by a single invocation and is not
// safe for concurrent use.
type Report struct {
	diags []*SourceDiag
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// Push appends a diagnostic to the report. Nil diagnostics are ignored.
func (r *Report) Push(d *SourceDiag) {
	if d == nil {
		return
	}
	r.diags = append(r.diags, d)
}

// All returns the diagnostics in the order they were recorded.
func (r *Report) All() []*SourceDiag {
	return r.diags
}

// Errors returns only the error severity diagnostics.
func (r *Report) Errors() []*SourceDiag {
	return r.filter(SeverityError)
}

// Warnings returns only the warning severity diagnostics.
func (r *Report) Warnings() []*SourceDiag {
	return r.filter(SeverityWarning)
}

func (r *Report) filter(sev Severity) []*SourceDiag {
	var out []*SourceDiag
	for _, d := range r.diags {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// HasErrors reports whether any error severity diagnostic was recorded.
func (r *Report) HasErrors() bool {
	for _, d := range r.diags {
		if d.IsError() {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the report holds no diagnostics.
func (r *Report) IsEmpty() bool {
	return len(r.diags) == 0
}

// Len returns the number of recorded diagnostics.
func (r *Report) Len() int {
	return len(r.diags)
}

// Truncate drops every diagnostic recorded after position n. It is used
// to roll back diagnostics queued by an abandoned sub-parse.
func (r *Report) Truncate(n int) {
	if n < 0 || n > len(r.diags) {
		return
	}
	r.diags = r.diags[:n]
}

// Merge appends all diagnostics from other, preserving order.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.diags = append(r.diags, other.diags...)
}

// MarshalJSON serializes the report as a plain array of diagnostics.
func (r *Report) MarshalJSON() ([]byte, error) {
	if r.diags == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.diags)
}

// MarshalYAML serializes the report as a plain sequence of diagnostics.
func (r *Report) MarshalYAML() (any, error) {
	if r.diags == nil {
		return []*SourceDiag{}, nil
	}
	return r.diags, nil
}
