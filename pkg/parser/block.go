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
	"strings"

	"github.com/NVIDIA/cooklang/pkg/diag"
	"github.com/NVIDIA/cooklang/pkg/token"
)

// BlockParser is a cursor over the token slice of one syntactic block.
// It never aborts: local syntax errors are recorded in the shared
// report and the parse continues with a recoverable fallback value.
// The token slice always ends in an EOF token, so peeking past the last
// real token needs no bounds checks.
type BlockParser struct {
	tokens []token.Token
	pos    int
	input  string
	events *diag.Report
	exts   Extensions
}

// newBlockParser creates a cursor over a block's tokens. The slice must
// be EOF-terminated.
func newBlockParser(tokens []token.Token, input string, events *diag.Report, exts Extensions) *BlockParser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		tokens = append(tokens, token.Token{Kind: token.EOF, Span: token.PointSpan(sliceEnd(tokens))})
	}
	return &BlockParser{tokens: tokens, input: input, events: events, exts: exts}
}

func sliceEnd(tokens []token.Token) int {
	if len(tokens) == 0 {
		return 0
	}
	return tokens[len(tokens)-1].Span.End
}

// sub creates an isolated cursor over a token sub-slice sharing the
// same input, report, and extensions.
func (bp *BlockParser) sub(tokens []token.Token) *BlockParser {
	return newBlockParser(tokens, bp.input, bp.events, bp.exts)
}

// Extension reports whether an optional grammar feature is enabled.
func (bp *BlockParser) Extension(flags Extensions) bool {
	return bp.exts.Has(flags)
}

// Peek returns the kind of the current token without consuming it.
func (bp *BlockParser) Peek() token.Kind {
	return bp.tokens[bp.pos].Kind
}

// PeekToken returns the current token without consuming it.
func (bp *BlockParser) PeekToken() token.Token {
	return bp.tokens[bp.pos]
}

// AtEnd reports whether the cursor reached the end of the block.
func (bp *BlockParser) AtEnd() bool {
	return bp.Peek() == token.EOF
}

// Offset returns the byte offset of the current cursor position.
func (bp *BlockParser) Offset() int {
	return bp.tokens[bp.pos].Span.Start
}

// Bump consumes and returns the current token. Bumping at the end of
// the block keeps returning the EOF token.
func (bp *BlockParser) Bump() token.Token {
	t := bp.tokens[bp.pos]
	if t.Kind != token.EOF {
		bp.pos++
	}
	return t
}

// Consume consumes the current token only when it has the given kind.
func (bp *BlockParser) Consume(kind token.Kind) (token.Token, bool) {
	if bp.Peek() != kind {
		return token.Token{}, false
	}
	return bp.Bump(), true
}

// ConsumeWhile consumes tokens as long as the predicate holds and
// returns them. EOF always stops the scan.
func (bp *BlockParser) ConsumeWhile(pred func(token.Kind) bool) []token.Token {
	start := bp.pos
	for !bp.AtEnd() && pred(bp.Peek()) {
		bp.pos++
	}
	return bp.tokens[start:bp.pos]
}

// ConsumeRest consumes every remaining token of the block.
func (bp *BlockParser) ConsumeRest() []token.Token {
	return bp.ConsumeWhile(func(token.Kind) bool { return true })
}

// ConsumeTrivia consumes whitespace and comments.
func (bp *BlockParser) ConsumeTrivia() {
	bp.ConsumeWhile(token.Kind.IsTrivia)
}

// TokenText returns the source text of one token.
func (bp *BlockParser) TokenText(t token.Token) string {
	return t.Text(bp.input)
}

// Source returns the raw input covered by a span, comments included.
func (bp *BlockParser) Source(span token.Span) string {
	return span.Text(bp.input)
}

// Text returns the trimmed source text covered by a token slice,
// skipping comment tokens, together with the span of what was kept.
// An empty slice yields an empty span at the given offset.
func (bp *BlockParser) Text(offset int, tokens []token.Token) (string, token.Span) {
	var sb strings.Builder
	for _, t := range tokens {
		switch t.Kind {
		case token.LineComment, token.BlockComment:
			sb.WriteByte(' ')
		default:
			sb.WriteString(bp.TokenText(t))
		}
	}
	raw := sb.String()
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", token.PointSpan(offset)
	}

	span := token.SliceSpan(tokens)
	lead := strings.Index(raw, trimmed)
	span.Start += lead
	span.End = span.Start + len(trimmed)
	return trimmed, span
}

// Error records an error diagnostic.
func (bp *BlockParser) Error(d *diag.SourceDiag) {
	bp.events.Push(d)
}

// Warn records a warning diagnostic.
func (bp *BlockParser) Warn(d *diag.SourceDiag) {
	bp.events.Push(d)
}

// WithRecover runs a speculative sub-parse. When fn reports failure the
// cursor is rolled back and any diagnostics fn queued are dropped, so
// an abandoned grammar branch leaves no trace. This is the central
// recovery primitive: branches fail cheaply, they never abort.
func WithRecover[T any](bp *BlockParser, fn func(*BlockParser) (T, bool)) (T, bool) {
	pos := bp.pos
	mark := bp.events.Len()

	out, ok := fn(bp)
	if !ok {
		bp.pos = pos
		bp.events.Truncate(mark)
	}
	return out, ok
}
