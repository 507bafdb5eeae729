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

package parser

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/NVIDIA/cooklang/pkg/convert"
	"github.com/NVIDIA/cooklang/pkg/diag"
	"github.com/NVIDIA/cooklang/pkg/quantity"
	"github.com/NVIDIA/cooklang/pkg/recipe"
	"github.com/NVIDIA/cooklang/pkg/token"
)

// Parser turns recipe markup into a ScalableRecipe. A parser is
// immutable after construction and safe to share across goroutines;
// each Parse call owns its own diagnostic report.
type Parser struct {
	exts   Extensions
	conv   *convert.Converter
	logger *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithExtensions selects the optional grammar features.
func WithExtensions(exts Extensions) Option {
	return func(p *Parser) { p.exts = exts }
}

// WithConverter sets the unit table used to validate timer units.
func WithConverter(conv *convert.Converter) Option {
	return func(p *Parser) { p.conv = conv }
}

// WithLogger sets the logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

// New creates a parser. Every extension is enabled and the bundled
// unit table is used unless options say otherwise.
func New(opts ...Option) *Parser {
	p := &Parser{
		exts: AllExtensions(),
		conv: convert.Bundled(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Parse parses a whole document. It never fails: recoverable syntax
// errors accumulate in the returned report and the recipe is the best
// effort model of the input. Callers should treat a report with errors
// as a degraded result.
func (p *Parser) Parse(input string) (*recipe.ScalableRecipe, *diag.Report) {
	timer := prometheus.NewTimer(parseDuration)
	defer timer.ObserveDuration()
	parsesTotal.Inc()

	report := diag.NewReport()
	b := newBuilder(p.conv)
	lines := splitLines(token.Tokenize(input))

	var pending []token.Token
	var texts []string
	flushStep := func() {
		if len(pending) == 0 {
			return
		}
		bp := newBlockParser(trimLine(pending), input, report, p.exts)
		b.finishStep(b.parseStepItems(bp))
		pending = nil
	}
	flushText := func() {
		if len(texts) == 0 {
			return
		}
		b.finishText(strings.Join(texts, " "))
		texts = nil
	}
	flush := func() {
		flushStep()
		flushText()
	}

	for _, line := range lines {
		switch classifyLine(line, input) {
		case lineBlank:
			flush()
		case lineMetadata:
			flush()
			p.parseMetadata(b, line, input, report)
		case lineSection:
			flush()
			b.finishSection(sectionName(line, input, report, p.exts))
		case lineText:
			flushStep()
			texts = append(texts, textParagraph(line, input, report, p.exts))
		default:
			flushText()
			pending = append(pending, line...)
		}
	}
	flush()

	r := b.finish()
	checkServings(r, report)
	parseDiagnosticsTotal.WithLabelValues("error").Add(float64(len(report.Errors())))
	parseDiagnosticsTotal.WithLabelValues("warning").Add(float64(len(report.Warnings())))
	p.logger.Debug("parsed recipe",
		"sections", len(r.Sections),
		"ingredients", len(r.Ingredients),
		"cookware", len(r.Cookware),
		"timers", len(r.Timers),
		"errors", len(report.Errors()),
		"warnings", len(report.Warnings()))
	return r, report
}

// checkServings warns when a multi-value quantity carries a different
// number of values than the recipe declares serving tiers.
func checkServings(r *recipe.ScalableRecipe, report *diag.Report) {
	declared := r.Metadata.Servings()
	if len(declared) == 0 {
		return
	}

	check := func(v quantity.ScalableValue) {
		many, ok := v.(quantity.Many)
		if !ok || len(many.Values) == len(declared) {
			return
		}
		report.Push(diag.Warning(fmt.Sprintf(
			"Quantity declares %d values but the recipe declares %d servings",
			len(many.Values), len(declared))).
			WithHint("Declare one value per serving tier"))
	}
	checkQuantity := func(q *quantity.Quantity[quantity.ScalableValue]) {
		if q != nil {
			check(q.Value)
		}
	}

	for i := range r.Ingredients {
		checkQuantity(r.Ingredients[i].Quantity)
	}
	for i := range r.Cookware {
		if v := r.Cookware[i].Quantity; v != nil {
			check(*v)
		}
	}
	for i := range r.Timers {
		checkQuantity(r.Timers[i].Quantity)
	}
	for i := range r.InlineQuantities {
		check(r.InlineQuantities[i].Value)
	}
}

type lineKind uint8

const (
	lineBlank lineKind = iota
	lineMetadata
	lineSection
	lineText
	lineStep
)

// classifyLine inspects the first significant tokens of a line:
// ">>" metadata, "=" section, ">" text paragraph, otherwise a step.
func classifyLine(line []token.Token, input string) lineKind {
	sig := significant(line)
	switch {
	case len(sig) == 0:
		return lineBlank
	case len(sig) >= 2 && sig[0].Kind == token.Gt && sig[1].Kind == token.Gt:
		return lineMetadata
	case sig[0].Kind == token.Eq:
		return lineSection
	case sig[0].Kind == token.Gt:
		return lineText
	default:
		return lineStep
	}
}

// significant returns the line tokens with leading trivia and the
// trailing newline removed, or nil when nothing significant remains.
func significant(line []token.Token) []token.Token {
	line = trimLine(line)
	for len(line) > 0 && line[0].Kind.IsTrivia() {
		line = line[1:]
	}
	return line
}

// trimLine drops the terminating newline kept by splitLines.
func trimLine(line []token.Token) []token.Token {
	if n := len(line); n > 0 && line[n-1].Kind == token.Newline {
		return line[:n-1]
	}
	return line
}

// splitLines cuts the token stream into lines. Each line keeps its
// terminating newline so multi-line steps can join across it, and
// never includes the EOF token.
func splitLines(tokens []token.Token) [][]token.Token {
	var out [][]token.Token
	start := 0
	for i, t := range tokens {
		switch t.Kind {
		case token.Newline:
			out = append(out, tokens[start:i+1])
			start = i + 1
		case token.EOF:
			if i > start {
				out = append(out, tokens[start:i])
			}
		}
	}
	return out
}

// parseMetadata handles a ">> key: value" line. A missing colon or an
// empty key is a recorded warning and the line is otherwise ignored.
func (p *Parser) parseMetadata(b *builder, line []token.Token, input string, report *diag.Report) {
	sig := significant(line)
	bp := newBlockParser(sig, input, report, p.exts)
	bp.Bump() // >
	bp.Bump() // >

	keyTokens := bp.ConsumeWhile(func(k token.Kind) bool { return k != token.Colon })
	sep, ok := bp.Consume(token.Colon)
	if !ok {
		report.Push(diag.Warning("Invalid metadata entry, missing ':'").
			WithLabel(diag.NewLabel(token.SliceSpan(sig), "expected \">> key: value\"")))
		return
	}

	key, keySpan := bp.Text(startOffset(bp, keyTokens), keyTokens)
	if key == "" {
		report.Push(diag.Warning("Invalid metadata entry, empty key").
			WithLabel(diag.NewLabel(keySpan, "add a key before the ':'")))
		return
	}

	value, _ := bp.Text(sep.Span.End, bp.ConsumeRest())
	if _, dup := b.metadata[key]; dup {
		report.Push(diag.Warning("Duplicate metadata key").
			WithLabel(diag.NewLabel(keySpan, "this overwrites the earlier value")))
	}
	b.metadata[key] = value
}

// sectionName extracts the name from "= name =" style lines. The
// trailing '=' run is decorative. An empty name starts an unnamed
// section.
func sectionName(line []token.Token, input string, report *diag.Report, exts Extensions) string {
	bp := newBlockParser(significant(line), input, report, exts)
	bp.ConsumeWhile(func(k token.Kind) bool { return k == token.Eq })

	rest := bp.ConsumeRest()
	name, _ := bp.Text(startOffset(bp, rest), rest)
	return strings.TrimRight(name, "= \t")
}

// textParagraph extracts the paragraph text after a leading '>'.
func textParagraph(line []token.Token, input string, report *diag.Report, exts Extensions) string {
	bp := newBlockParser(significant(line), input, report, exts)
	bp.Bump() // >

	rest := bp.ConsumeRest()
	text, _ := bp.Text(startOffset(bp, rest), rest)
	return text
}
