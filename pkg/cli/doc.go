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

// Package cli implements the command-line interface for the cook tool.
//
// # Overview
//
// The cook CLI parses recipe files written in cooklang markup, scales the
// extracted quantities, and renders the structured result. Parsing never
// aborts on malformed input: diagnostics are collected per file, logged,
// and included in the output document.
//
// # Commands
//
// parse - Parse recipe files:
//
//	cook parse [--extensions LIST] [--servings N | --scale F] [--output FILE] [--format json|yaml|table] FILE...
//
// Parses one or more recipe files, scales quantities to the requested
// serving count or factor, and outputs the recipe structure together
// with any diagnostics. Multiple files are parsed concurrently.
//
// units - Show the unit conversion table:
//
//	cook units [--units FILE] [--format json|yaml|table]
//
// Shows the unit table used for quantity aggregation and best-unit
// fitting, grouped by physical dimension.
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: json, yaml, table (default: json)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Usage Examples
//
// Parse a recipe to YAML:
//
//	cook parse --format yaml pancakes.cook
//
// Scale to six servings:
//
//	cook parse --servings 6 pancakes.cook
//
// Parse with a custom unit table and write to a file:
//
//	cook parse --units my-units.yaml --output out.json pancakes.cook
//
// # Environment Variables
//
//	COOK_LOG_LEVEL   Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, unreadable file, parse errors)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/parser - Recipe parsing
//   - pkg/scale - Quantity scaling
//   - pkg/convert - Unit conversion tables
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/cooklang/pkg/cli.version=1.0.0'"
package cli
