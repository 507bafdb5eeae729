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

// Package serializer provides encoding and decoding of recipe data in multiple formats.
//
// # Overview
//
// The serializer package handles conversion between recipe data structures and
// various output formats including JSON, YAML, and human-readable tables. It
// supports both encoding (writing parsed or scaled recipes, diagnostic reports,
// unit tables) and decoding (reading unit definition files or previously
// serialized recipes).
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, compact representation
//   - Suitable for programmatic consumption of parse results
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - Suitable for unit definition tables and version control
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened key/value text representation
//   - Suitable for terminal/console viewing
//   - Read-only (no deserialization support)
//
// # Usage - Encoding
//
// Write to stdout (YAML):
//
//	writer := serializer.NewStdoutWriter(serializer.FormatYAML)
//	if err := writer.Serialize(ctx, scaled); err != nil {
//	    log.Fatal(err)
//	}
//
// Write to a file, falling back to stdout on error:
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatJSON, "out.json")
//	defer writer.(serializer.Closer).Close()
//	if err := writer.Serialize(ctx, scaled); err != nil {
//	    log.Fatal(err)
//	}
//
// # Usage - Decoding
//
// Read a custom unit table with automatic format detection:
//
//	units, err := serializer.FromFile[map[string]any]("units.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Format Detection
//
// File extension-based detection:
//   - .json → JSON
//   - .yaml, .yml → YAML
//   - .table, .txt → Table
//   - Other → JSON (default)
//
// # Integration
//
// Used throughout the module for data I/O:
//   - pkg/cli - Command output formatting
//   - pkg/convert - Custom unit table loading
//   - pkg/recipe - Recipe output
package serializer
