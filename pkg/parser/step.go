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

	"github.com/NVIDIA/cooklang/pkg/recipe"
	"github.com/NVIDIA/cooklang/pkg/token"
)

// parseStepItems walks one step block, alternating literal text runs
// and component annotations. Markers that turn out not to introduce a
// component degrade to plain text.
func (b *builder) parseStepItems(bp *BlockParser) []recipe.Item {
	var items []recipe.Item
	var text strings.Builder

	flushText := func() {
		if text.Len() > 0 {
			items = append(items, recipe.TextItem{Value: text.String()})
			text.Reset()
		}
	}

	for !bp.AtEnd() {
		switch bp.Peek() {
		case token.At, token.Hash, token.Tilde:
			marker := bp.Bump()
			c, ok := WithRecover(bp, func(bp *BlockParser) (component, bool) {
				return parseComponent(bp, marker)
			})
			if !ok {
				text.WriteString(bp.TokenText(marker))
				continue
			}
			if c.raw {
				text.WriteString(bp.Source(token.NewSpan(marker.Span.Start, bp.Offset())))
				continue
			}
			flushText()
			items = append(items, b.resolveComponent(bp, c))
		case token.LineComment, token.BlockComment:
			bp.Bump()
			text.WriteByte(' ')
		case token.Newline:
			bp.Bump()
			text.WriteByte(' ')
		default:
			text.WriteString(bp.TokenText(bp.Bump()))
		}
	}
	flushText()

	return items
}

// stepIsEmpty reports whether the items carry no content at all.
func stepIsEmpty(items []recipe.Item) bool {
	for _, item := range items {
		t, ok := item.(recipe.TextItem)
		if !ok || strings.TrimSpace(t.Value) != "" {
			return false
		}
	}
	return true
}
