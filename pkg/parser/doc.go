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

// Package parser turns recipe markup into the recipe model.
//
// A document is parsed block by block: step lines, ">> key: value"
// metadata, "= name" section headers, and "> ..." text paragraphs.
// Inside steps, "@ingredient", "#cookware" and "~timer" annotations
// carry an optional brace-delimited quantity with its own sub-grammar
// for numbers, fractions, ranges, multi-values and the auto-scale
// marker.
//
// The parser never aborts on bad input. Local syntax errors are
// recorded as diagnostics in a report returned alongside the recipe,
// and the offending construct degrades to a recoverable value, so a
// document with errors still yields a usable model. Speculative
// grammar branches run under WithRecover, which rolls back both the
// cursor and any queued diagnostics when a branch is abandoned.
//
// Optional grammar features are gated by Extensions; a disabled
// feature behaves as if the syntax did not exist, usually degrading to
// a literal text interpretation.
//
// Parsed ingredient and cookware mentions are resolved into
// definitions and references while the document is built: the first
// mention of a name defines it, later "&"-marked mentions point back
// at the definition by index and the definition collects backlinks.
// All cross-references are plain indices into the recipe's flat
// component vectors, so the finished document is freely shareable.
package parser
