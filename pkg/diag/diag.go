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

// Package diag collects recoverable parse and scale diagnostics:
// errors and warnings with source labels and optional hints, gathered
// in a Report instead of aborting the operation that produced them.
package diag

import (
	"fmt"
	"strings"

	"github.com/NVIDIA/cooklang/pkg/token"
)

// Severity classifies a diagnostic.
type Severity string

const (
	// SeverityError marks recoverable syntax or validation errors.
	// The producing stage still returns a best-effort result.
	SeverityError Severity = "error"
	// SeverityWarning marks stylistic or non-fatal issues.
	SeverityWarning Severity = "warning"
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// Label attaches a message to a source span.
type Label struct {
	Span    token.Span `json:"span" yaml:"span"`
	Message string     `json:"message,omitempty" yaml:"message,omitempty"`
}

// NewLabel creates a label for the given span.
func NewLabel(span token.Span, message string) Label {
	return Label{Span: span, Message: message}
}

// SourceDiag is a single diagnostic event: a message, one or more
// labeled source spans, and optional hints for the user.
type SourceDiag struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
	Labels   []Label  `json:"labels,omitempty" yaml:"labels,omitempty"`
	Hints    []string `json:"hints,omitempty" yaml:"hints,omitempty"`
	Source   error    `json:"-" yaml:"-"`
}

// Error creates an error severity diagnostic.
func Error(message string, labels ...Label) *SourceDiag {
	return &SourceDiag{Severity: SeverityError, Message: message, Labels: labels}
}

// Warning creates a warning severity diagnostic.
func Warning(message string, labels ...Label) *SourceDiag {
	return &SourceDiag{Severity: SeverityWarning, Message: message, Labels: labels}
}

// WithLabel appends a labeled span and returns the diagnostic for chaining.
func (d *SourceDiag) WithLabel(label Label) *SourceDiag {
	d.Labels = append(d.Labels, label)
	return d
}

// WithHint appends a hint and returns the diagnostic for chaining.
func (d *SourceDiag) WithHint(hint string) *SourceDiag {
	d.Hints = append(d.Hints, hint)
	return d
}

// WithSource records the underlying cause (for example a strconv error)
// and returns the diagnostic for chaining.
func (d *SourceDiag) WithSource(err error) *SourceDiag {
	d.Source = err
	return d
}

// IsError reports whether the diagnostic has error severity.
func (d *SourceDiag) IsError() bool {
	return d.Severity == SeverityError
}

// String renders a compact single-line form, mainly for logs and tests.
func (d *SourceDiag) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", d.Severity, d.Message)
	for _, l := range d.Labels {
		fmt.Fprintf(&b, " [%s", l.Span)
		if l.Message != "" {
			fmt.Fprintf(&b, " %s", l.Message)
		}
		b.WriteString("]")
	}
	if d.Source != nil {
		fmt.Fprintf(&b, ": %v", d.Source)
	}
	return b.String()
}
