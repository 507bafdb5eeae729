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
	"github.com/NVIDIA/cooklang/pkg/diag"
	"github.com/NVIDIA/cooklang/pkg/recipe"
	"github.com/NVIDIA/cooklang/pkg/token"
)

// component is the raw parse of one "@name{qty}(note)" style
// annotation, before relation resolution.
type component struct {
	marker       token.Token
	modifiers    recipe.Modifiers
	intermediate *intermediateRef
	name         string
	nameSpan     token.Span
	alias        string
	quantity     *ParsedQuantity
	note         string

	// raw is set when the annotation uses grammar that is not enabled.
	// The consumed extent stays step text instead of rolling back, so
	// markers inside it are never rescanned as components.
	raw bool
}

// intermediateRef is the "(~2)" or "(=1)" part of an intermediate
// preparation reference: an index into the step or section address
// space instead of the ingredient list.
type intermediateRef struct {
	target recipe.ReferenceTarget
	index  uint32
	span   token.Span
}

var modifierKinds = map[token.Kind]recipe.Modifiers{
	token.Amp:      recipe.ModifierRef,
	token.Minus:    recipe.ModifierHidden,
	token.Question: recipe.ModifierOptional,
	token.Plus:     recipe.ModifierNew,
	token.At:       recipe.ModifierRecipe,
}

// parseComponent parses one component annotation. The marker token
// ('@', '#' or '~') is already consumed. Timers accept no modifiers.
// A component without a name and without braces is not a component at
// all and reports failure so the caller can treat the marker as text.
func parseComponent(bp *BlockParser, marker token.Token) (component, bool) {
	c := component{marker: marker}

	if marker.Kind != token.Tilde {
		parseModifiers(bp, &c)
	}

	if long, ok := WithRecover(bp, parseLongName); ok {
		c.name, c.nameSpan = long.name, long.span
		c.alias = long.alias
	} else {
		c.name, c.nameSpan = parseShortName(bp)
	}

	if open, ok := bp.Consume(token.OpenBrace); ok {
		inner := bp.ConsumeWhile(func(k token.Kind) bool { return k != token.CloseBrace })
		if _, closed := bp.Consume(token.CloseBrace); !closed && !c.raw {
			bp.Error(diag.Error("Unclosed quantity braces").
				WithLabel(diag.NewLabel(open.Span, "this '{' has no matching '}'")))
		}
		if text, _ := bp.Text(open.Span.End, inner); text != "" && !c.raw {
			q := ParseQuantity(bp, inner)
			c.quantity = &q
		}
	} else if c.name == "" {
		if c.raw {
			return c, true
		}
		// a bare marker with nothing after it is step text
		return component{}, false
	}

	if c.name == "" && c.quantity == nil {
		if c.raw {
			return c, true
		}
		return component{}, false
	}

	if open, ok := bp.Consume(token.OpenParen); ok {
		inner := bp.ConsumeWhile(func(k token.Kind) bool { return k != token.CloseParen })
		if _, closed := bp.Consume(token.CloseParen); !closed && !c.raw {
			bp.Error(diag.Error("Unclosed note").
				WithLabel(diag.NewLabel(open.Span, "this '(' has no matching ')'")))
		}
		c.note, _ = bp.Text(open.Span.End, inner)
	}

	return c, true
}

// parseModifiers consumes the modifier run after the marker, including
// the intermediate preparation target that may follow '&'.
func parseModifiers(bp *BlockParser, c *component) {
	for {
		mod, ok := modifierKinds[bp.Peek()]
		if !ok || c.modifiers.Has(mod) {
			return
		}
		bp.Bump()
		c.modifiers |= mod

		if mod == recipe.ModifierRef {
			if ref, ok := WithRecover(bp, parseIntermediateRef); ok {
				if bp.Extension(ExtIntermediatePreparations) {
					c.intermediate = &ref
				} else {
					c.raw = true
				}
			}
		}
	}
}

// parseIntermediateRef parses "(~2)" or "(=1)" after the '&' modifier.
func parseIntermediateRef(bp *BlockParser) (intermediateRef, bool) {
	open, ok := bp.Consume(token.OpenParen)
	if !ok {
		return intermediateRef{}, false
	}

	var target recipe.ReferenceTarget
	switch bp.Peek() {
	case token.Tilde:
		target = recipe.TargetStep
	case token.Eq:
		target = recipe.TargetSection
	default:
		return intermediateRef{}, false
	}
	bp.Bump()

	idx, ok := bp.Consume(token.Int)
	if !ok {
		return intermediateRef{}, false
	}
	closing, ok := bp.Consume(token.CloseParen)
	if !ok {
		return intermediateRef{}, false
	}

	n, derr := parseInt(bp, idx)
	if derr != nil {
		bp.Error(derr)
		return intermediateRef{}, false
	}
	return intermediateRef{
		target: target,
		index:  n,
		span:   open.Span.Merge(closing.Span),
	}, true
}

type longName struct {
	name  string
	alias string
	span  token.Span
}

// parseLongName consumes a multi-word name terminated by '{'. It fails
// when no '{' appears before the end of the block or another component
// marker, leaving the cursor for the single-word form. A '|' inside
// the name splits it into name and display alias.
func parseLongName(bp *BlockParser) (longName, bool) {
	tokens := bp.ConsumeWhile(func(k token.Kind) bool {
		switch k {
		case token.OpenBrace, token.At, token.Hash, token.Tilde:
			return false
		default:
			return true
		}
	})
	if bp.Peek() != token.OpenBrace || len(tokens) == 0 {
		return longName{}, false
	}

	name := tokens
	var alias []token.Token
	for i, t := range tokens {
		if t.Kind == token.Pipe {
			name, alias = tokens[:i], tokens[i+1:]
			break
		}
	}

	out := longName{}
	out.name, out.span = bp.Text(startOffset(bp, tokens), name)
	if alias != nil {
		aliasText, aliasSpan := bp.Text(startOffset(bp, alias), alias)
		if aliasText == "" {
			bp.Error(diag.Error("Empty component alias").
				WithLabel(diag.NewLabel(aliasSpan, "add an alias or remove the '|'")))
		}
		out.alias = aliasText
	}
	if out.name == "" && out.alias == "" {
		return longName{}, false
	}
	return out, true
}

// parseShortName consumes a single-word name: a contiguous run of word
// and digit tokens.
func parseShortName(bp *BlockParser) (string, token.Span) {
	tokens := bp.ConsumeWhile(func(k token.Kind) bool {
		switch k {
		case token.Word, token.Int, token.ZeroInt:
			return true
		default:
			return false
		}
	})
	return bp.Text(startOffset(bp, tokens), tokens)
}

func startOffset(bp *BlockParser, tokens []token.Token) int {
	if len(tokens) == 0 {
		return bp.Offset()
	}
	return tokens[0].Span.Start
}
