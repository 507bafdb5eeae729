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

// Package token turns recipe markup into a flat token stream. Tokens
// carry no text of their own, only byte spans into the input.
package token

import "fmt"

// Kind classifies a lexical token.
type Kind uint8

const (
	// EOF marks the end of the input or of a token slice.
	EOF Kind = iota
	// Word is a run of characters with no special meaning.
	Word
	// Int is an integer literal without a leading zero.
	Int
	// ZeroInt is an integer literal with a leading zero ("01").
	// It is kept distinct because leading-zero integers are not valid
	// plain numbers in quantities.
	ZeroInt
	// Punct is a single punctuation character with no grammar meaning,
	// such as '.' or ','.
	Punct
	// Whitespace is a run of spaces or tabs.
	Whitespace
	// Newline is a single line break.
	Newline
	// LineComment is "-- ..." up to the end of the line.
	LineComment
	// BlockComment is "[- ... -]".
	BlockComment

	// Grammar symbols.
	At         // @
	Hash       // #
	Tilde      // ~
	Percent    // %
	Pipe       // |
	Star       // *
	Minus      // -
	Slash      // /
	Amp        // &
	Question   // ?
	Plus       // +
	OpenBrace  // {
	CloseBrace // }
	OpenParen  // (
	CloseParen // )
	Eq         // =
	Colon      // :
	Gt         // >
)

var kindNames = map[Kind]string{
	EOF:          "eof",
	Word:         "word",
	Int:          "int",
	ZeroInt:      "zeroint",
	Punct:        "punctuation",
	Whitespace:   "whitespace",
	Newline:      "newline",
	LineComment:  "line comment",
	BlockComment: "block comment",
	At:           "'@'",
	Hash:         "'#'",
	Tilde:        "'~'",
	Percent:      "'%'",
	Pipe:         "'|'",
	Star:         "'*'",
	Minus:        "'-'",
	Slash:        "'/'",
	Amp:          "'&'",
	Question:     "'?'",
	Plus:         "'+'",
	OpenBrace:    "'{'",
	CloseBrace:   "'}'",
	OpenParen:    "'('",
	CloseParen:   "')'",
	Eq:           "'='",
	Colon:        "':'",
	Gt:           "'>'",
}

// String returns a human readable name for the kind.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsTrivia reports whether the kind carries no grammar meaning
// (whitespace and comments).
func (k Kind) IsTrivia() bool {
	switch k {
	case Whitespace, LineComment, BlockComment:
		return true
	default:
		return false
	}
}

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// NewSpan creates a span from start and end byte offsets.
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// PointSpan creates an empty span at the given offset.
func PointSpan(offset int) Span {
	return Span{Start: offset, End: offset}
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Len() == 0
}

// Text returns the slice of input covered by the span.
func (s Span) Text(input string) string {
	if s.Start < 0 || s.End > len(input) || s.Start > s.End {
		return ""
	}
	return input[s.Start:s.End]
}

// String returns the span in "start..end" form.
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Merge returns the smallest span covering both s and other.
func (s Span) Merge(other Span) Span {
	out := s
	if other.Start < out.Start {
		out.Start = other.Start
	}
	if other.End > out.End {
		out.End = other.End
	}
	return out
}

// Token is a single spanned lexical token.
type Token struct {
	Kind Kind
	Span Span
}

// Text returns the source text covered by the token.
func (t Token) Text(input string) string {
	return t.Span.Text(input)
}

// SliceSpan returns the span covering a whole token slice.
// An empty slice yields an empty span at offset zero.
func SliceSpan(tokens []Token) Span {
	if len(tokens) == 0 {
		return Span{}
	}
	return NewSpan(tokens[0].Span.Start, tokens[len(tokens)-1].Span.End)
}
