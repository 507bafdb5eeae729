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
	"strconv"
	"strings"

	"github.com/NVIDIA/cooklang/pkg/diag"
	"github.com/NVIDIA/cooklang/pkg/quantity"
	"github.com/NVIDIA/cooklang/pkg/token"
)

// ParsedQuantity is the result of the quantity sub-grammar: the
// quantity itself plus the span of the '%' unit separator when one was
// present. Advanced-unit quantities have a unit but no separator.
type ParsedQuantity struct {
	Quantity      quantity.Quantity[quantity.ScalableValue]
	UnitSeparator *token.Span
}

// ParseQuantity parses the tokens found inside an annotation's braces.
// The slice must not be empty. Diagnostics go to bp's report; no tokens
// of bp itself are consumed. The advanced grammar is attempted first
// when its extension is enabled, failing over to the regular grammar.
func ParseQuantity(bp *BlockParser, tokens []token.Token) ParsedQuantity {
	sub := bp.sub(tokens)

	if sub.Extension(ExtAdvancedUnits) {
		if q, ok := WithRecover(sub, parseAdvancedQuantity); ok {
			return q
		}
	}
	return parseRegularQuantity(sub)
}

// parseRegularQuantity parses "value [| value ...] [*] [% unit]". When
// the values leave unconsumed tokens, the whole block text becomes one
// literal text value and only a trailing "% unit" is re-scanned,
// because text values swallow everything that is not a separator.
func parseRegularQuantity(bp *BlockParser) ParsedQuantity {
	blockStart := bp.Offset()
	value := manyValues(bp)

	var (
		unit     string
		unitSpan token.Span
		sep      *token.Span
	)
	switch bp.Peek() {
	case token.Percent:
		t := bp.Bump()
		sep = &t.Span
		unit, unitSpan = bp.Text(t.Span.End, bp.ConsumeRest())
	case token.EOF:
		// values consumed the whole block, no unit
	default:
		bp.ConsumeWhile(func(k token.Kind) bool { return k != token.Percent })
		text, _ := bp.Text(blockStart, bp.tokens[:bp.pos])
		value = quantity.Single{Value: quantity.NewText(text)}

		if t, ok := bp.Consume(token.Percent); ok {
			sep = &t.Span
			unit, unitSpan = bp.Text(t.Span.End, bp.ConsumeRest())
		}
	}

	if sep != nil && unit == "" {
		bp.Error(diag.Error("Empty quantity unit").
			WithLabel(diag.NewLabel(unitSpan, "add unit here")).
			WithLabel(diag.NewLabel(*sep, "or remove this")))
	}

	return ParsedQuantity{
		Quantity:      quantity.Quantity[quantity.ScalableValue]{Value: value, Unit: unit},
		UnitSeparator: sep,
	}
}

// parseAdvancedQuantity parses "value unit" with no '%' separator: a
// leading numeric-or-range segment ending in whitespace, then unit
// words. It refuses blocks containing '|', '*' or '%' markers and
// reports failure instead of diagnostics, so the regular grammar gets
// its turn.
func parseAdvancedQuantity(bp *BlockParser) (ParsedQuantity, bool) {
	for _, t := range bp.tokens {
		switch t.Kind {
		case token.Pipe, token.Star, token.Percent:
			return ParsedQuantity{}, false
		}
	}

	bp.ConsumeTrivia()
	valueTokens := bp.ConsumeWhile(func(k token.Kind) bool { return k != token.Word })
	if len(valueTokens) == 0 || valueTokens[len(valueTokens)-1].Kind != token.Whitespace {
		return ParsedQuantity{}, false
	}
	// leading trivia is already consumed, drop the trailing run
	end := len(valueTokens) - 1
	for end >= 0 {
		k := valueTokens[end].Kind
		if k != token.Whitespace && k != token.BlockComment {
			break
		}
		end--
	}
	valueTokens = valueTokens[:end+1]

	unitTokens := bp.ConsumeRest()
	if len(unitTokens) == 0 {
		return ParsedQuantity{}, false
	}

	val, derr, ok := rangeValue(bp, valueTokens)
	if !ok {
		val, derr, ok = numericValue(bp, valueTokens)
	}
	if !ok {
		return ParsedQuantity{}, false
	}
	if derr != nil {
		bp.Error(derr)
		val = quantity.RecoverValue()
	}

	unit, _ := bp.Text(unitTokens[0].Span.Start, unitTokens)
	return ParsedQuantity{
		Quantity: quantity.Quantity[quantity.ScalableValue]{
			Value: quantity.Single{Value: val},
			Unit:  unit,
		},
	}, true
}

// manyValues parses the '|'-separated value list and an optional
// trailing '*' auto-scale marker. Auto-scale combined with more than
// one value is a recorded error; the full value list is kept.
func manyValues(bp *BlockParser) quantity.ScalableValue {
	var values []quantity.Value
	var autoScale *token.Span

	for {
		vt := bp.ConsumeWhile(func(k token.Kind) bool {
			return k != token.Pipe && k != token.Star && k != token.Percent
		})
		values = append(values, parseValue(bp, vt))

		if bp.Peek() == token.Pipe {
			bp.Bump()
			continue
		}
		if bp.Peek() == token.Star {
			t := bp.Bump()
			s := t.Span
			autoScale = &s
		}
		break
	}

	if len(values) == 1 {
		return quantity.Single{Value: values[0], AutoScale: autoScale}
	}
	if autoScale != nil {
		bp.Error(diag.Error("Invalid quantity value: auto scale is not compatible with multiple values").
			WithLabel(diag.NewLabel(*autoScale, "remove this")).
			WithHint("A quantity cannot have the auto scaling marker (*) and have many values at the same time"))
	}
	return quantity.Many{Values: values}
}

// parseValue attempts, in order, a range, a plain numeric form, and
// literal text as a last resort. Numeric errors are recorded and
// degrade to an empty text value.
func parseValue(bp *BlockParser, tokens []token.Token) quantity.Value {
	start := bp.Offset()
	if len(tokens) > 0 {
		start = tokens[0].Span.Start
	}

	val, derr, ok := rangeValue(bp, tokens)
	if !ok {
		val, derr, ok = numericValue(bp, tokens)
	}
	if !ok {
		return textValue(bp, start, tokens)
	}
	if derr != nil {
		bp.Error(derr)
		return quantity.RecoverValue()
	}
	return val
}

// textValue interprets the tokens as literal text. Empty text is a
// recorded error but still yields the empty text value, so "100|"
// produces two values.
func textValue(bp *BlockParser, offset int, tokens []token.Token) quantity.Value {
	text, span := bp.Text(offset, tokens)
	if text == "" {
		bp.Error(diag.Error("Empty quantity value").
			WithLabel(diag.NewLabel(span, "add value here")))
	}
	return quantity.NewText(text)
}

// rangeValue parses "start-end" around exactly the first '-' token.
// Both sides must be numeric or the tokens are not a range at all.
func rangeValue(bp *BlockParser, tokens []token.Token) (quantity.Value, *diag.SourceDiag, bool) {
	if !bp.Extension(ExtRangeValues) {
		return nil, nil, false
	}

	mid := -1
	for i, t := range tokens {
		if t.Kind == token.Minus {
			mid = i
			break
		}
	}
	if mid < 0 {
		return nil, nil, false
	}

	start, derr, ok := numericValue(bp, tokens[:mid])
	if !ok {
		return nil, nil, false
	}
	if derr != nil {
		return nil, derr, true
	}
	end, derr, ok := numericValue(bp, tokens[mid+1:])
	if !ok {
		return nil, nil, false
	}
	if derr != nil {
		return nil, derr, true
	}

	return quantity.RangeValue{
		Start: start.(quantity.NumberValue).Number,
		End:   end.(quantity.NumberValue).Number,
	}, nil, true
}

// numericValue recognizes the plain numeric forms: a bare integer or a
// decimal (both parsed as floats, allowing arbitrarily large amounts),
// "a/b" fractions and "w a/b" mixed numbers. Leading-zero integers are
// not plain numbers and fall through. ok is false when the tokens are
// not numeric at all; a non-nil diagnostic means numeric but invalid.
func numericValue(bp *BlockParser, tokens []token.Token) (quantity.Value, *diag.SourceDiag, bool) {
	trimmed := trimTokens(tokens)
	if len(trimmed) == 0 {
		return nil, nil, false
	}

	if floatTokens(bp, trimmed) {
		return parseFloat(bp, trimmed)
	}

	// significant numeric forms have at most 4 tokens
	var filtered []token.Token
	for _, t := range trimmed {
		if !t.Kind.IsTrivia() {
			filtered = append(filtered, t)
		}
		if len(filtered) > 4 {
			return nil, nil, false
		}
	}

	var (
		num  quantity.Number
		derr *diag.SourceDiag
	)
	switch {
	case len(filtered) == 4 &&
		filtered[0].Kind == token.Int && filtered[1].Kind == token.Int &&
		filtered[2].Kind == token.Slash && filtered[3].Kind == token.Int:
		num, derr = mixedNumber(bp, filtered[0], filtered[1], filtered[3])
	case len(filtered) == 3 &&
		filtered[0].Kind == token.Int && filtered[1].Kind == token.Slash &&
		filtered[2].Kind == token.Int:
		num, derr = fraction(bp, filtered[0], filtered[2])
	default:
		return nil, nil, false
	}
	if derr != nil {
		return nil, derr, true
	}
	return quantity.NumberValue{Number: num}, nil, true
}

// floatTokens reports whether the trimmed tokens spell an integer or a
// decimal: "n", "n.m" or ".m". The fractional part may carry leading
// zeros, the integer part may not.
func floatTokens(bp *BlockParser, trimmed []token.Token) bool {
	isDot := func(t token.Token) bool {
		return t.Kind == token.Punct && bp.TokenText(t) == "."
	}
	isDigits := func(t token.Token) bool {
		return t.Kind == token.Int || t.Kind == token.ZeroInt
	}

	switch len(trimmed) {
	case 1:
		return trimmed[0].Kind == token.Int
	case 2:
		return isDot(trimmed[0]) && isDigits(trimmed[1])
	case 3:
		return trimmed[0].Kind == token.Int && isDot(trimmed[1]) && isDigits(trimmed[2])
	default:
		return false
	}
}

func parseFloat(bp *BlockParser, tokens []token.Token) (quantity.Value, *diag.SourceDiag, bool) {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(bp.TokenText(t))
	}

	f, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil {
		return nil, diag.Error("Error parsing decimal number").
			WithLabel(diag.NewLabel(token.SliceSpan(tokens), "")).
			WithSource(err), true
	}
	return quantity.NewNumber(f), nil, true
}

func mixedNumber(bp *BlockParser, whole, num, den token.Token) (quantity.Number, *diag.SourceDiag) {
	w, derr := parseInt(bp, whole)
	if derr != nil {
		return nil, derr
	}
	f, derr := fraction(bp, num, den)
	if derr != nil {
		return nil, derr
	}
	frac := f.(quantity.Fraction)
	frac.Whole = w
	return frac, nil
}

func fraction(bp *BlockParser, numTok, denTok token.Token) (quantity.Number, *diag.SourceDiag) {
	span := token.NewSpan(numTok.Span.Start, denTok.Span.End)
	num, derr := parseInt(bp, numTok)
	if derr != nil {
		return nil, derr
	}
	den, derr := parseInt(bp, denTok)
	if derr != nil {
		return nil, derr
	}

	f, ok := quantity.NewFraction(0, num, den)
	if !ok {
		return nil, diag.Error("Division by zero").
			WithLabel(diag.NewLabel(span, "")).
			WithHint("Change this please, we don't want an infinite amount of anything")
	}
	return f, nil
}

func parseInt(bp *BlockParser, t token.Token) (uint32, *diag.SourceDiag) {
	n, err := strconv.ParseUint(bp.TokenText(t), 10, 32)
	if err != nil {
		return 0, diag.Error("Error parsing integer number").
			WithLabel(diag.NewLabel(t.Span, "")).
			WithSource(err)
	}
	return uint32(n), nil
}

// trimTokens drops leading and trailing whitespace and comments.
func trimTokens(tokens []token.Token) []token.Token {
	from := 0
	for from < len(tokens) && tokens[from].Kind.IsTrivia() {
		from++
	}
	if from == len(tokens) {
		return nil
	}
	to := len(tokens) - 1
	for tokens[to].Kind.IsTrivia() {
		to--
	}
	return tokens[from : to+1]
}
