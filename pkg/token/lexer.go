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

package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var symbolKinds = map[rune]Kind{
	'@': At,
	'#': Hash,
	'~': Tilde,
	'%': Percent,
	'|': Pipe,
	'*': Star,
	'-': Minus,
	'/': Slash,
	'&': Amp,
	'?': Question,
	'+': Plus,
	'{': OpenBrace,
	'}': CloseBrace,
	'(': OpenParen,
	')': CloseParen,
	'=': Eq,
	':': Colon,
	'>': Gt,
}

// Tokenize scans the whole input into a flat token slice.
// The returned slice always ends with a zero-length EOF token, so a
// cursor can peek past the last real token without bounds checks.
func Tokenize(input string) []Token {
	lx := lexer{input: input}
	var out []Token
	for {
		t := lx.next()
		out = append(out, t)
		if t.Kind == EOF {
			return out
		}
	}
}

type lexer struct {
	input string
	pos   int
}

func (lx *lexer) next() Token {
	start := lx.pos
	r, ok := lx.peekRune()
	if !ok {
		return Token{Kind: EOF, Span: PointSpan(start)}
	}

	switch {
	case r == '\n':
		lx.bumpRune()
		return lx.emit(Newline, start)
	case r == '\r':
		lx.bumpRune()
		if r2, ok := lx.peekRune(); ok && r2 == '\n' {
			lx.bumpRune()
		}
		return lx.emit(Newline, start)
	case r == ' ' || r == '\t':
		lx.eatWhile(func(r rune) bool { return r == ' ' || r == '\t' })
		return lx.emit(Whitespace, start)
	case r == '-' && strings.HasPrefix(lx.input[lx.pos:], "--"):
		lx.eatWhile(func(r rune) bool { return r != '\n' })
		return lx.emit(LineComment, start)
	case r == '[' && strings.HasPrefix(lx.input[lx.pos:], "[-"):
		return lx.blockComment(start)
	case unicode.IsDigit(r):
		return lx.number(start)
	}

	if kind, ok := symbolKinds[r]; ok {
		lx.bumpRune()
		return lx.emit(kind, start)
	}

	if isPunct(r) {
		lx.bumpRune()
		return lx.emit(Punct, start)
	}

	lx.eatWhile(isWordRune)
	if lx.pos == start {
		// Unknown rune, classify as punctuation so parsing can continue.
		lx.bumpRune()
		return lx.emit(Punct, start)
	}
	return lx.emit(Word, start)
}

func (lx *lexer) blockComment(start int) Token {
	lx.pos += len("[-")
	for lx.pos < len(lx.input) {
		if strings.HasPrefix(lx.input[lx.pos:], "-]") {
			lx.pos += len("-]")
			return lx.emit(BlockComment, start)
		}
		lx.bumpRune()
	}
	// Unterminated comment runs to the end of the input.
	return lx.emit(BlockComment, start)
}

func (lx *lexer) number(start int) Token {
	first, _ := lx.peekRune()
	lx.eatWhile(unicode.IsDigit)
	if first == '0' && lx.pos-start > 1 {
		return lx.emit(ZeroInt, start)
	}
	return lx.emit(Int, start)
}

func (lx *lexer) emit(kind Kind, start int) Token {
	return Token{Kind: kind, Span: NewSpan(start, lx.pos)}
}

func (lx *lexer) peekRune() (rune, bool) {
	if lx.pos >= len(lx.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(lx.input[lx.pos:])
	return r, true
}

func (lx *lexer) bumpRune() {
	_, size := utf8.DecodeRuneInString(lx.input[lx.pos:])
	lx.pos += size
}

func (lx *lexer) eatWhile(pred func(rune) bool) {
	for {
		r, ok := lx.peekRune()
		if !ok || !pred(r) {
			return
		}
		lx.bumpRune()
	}
}

func isPunct(r rune) bool {
	switch r {
	case '.', ',', ';', '!', '[', ']', '<', '"', '\'', '`':
		return true
	default:
		return false
	}
}

func isWordRune(r rune) bool {
	if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
		return false
	}
	if unicode.IsDigit(r) {
		return false
	}
	if _, special := symbolKinds[r]; special {
		return false
	}
	return !isPunct(r)
}
