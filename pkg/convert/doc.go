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

// Package convert resolves unit names and converts amounts between
// units of the same physical dimension.
//
// The conversion table is a YAML document grouping units by dimension
// (mass, volume, time). Each unit carries a canonical name, accepted
// aliases, an optional measurement system, and its ratio to the
// dimension's base unit. A table covering common cooking units is
// embedded in the binary and available through Bundled; Load reads a
// custom table.
//
// Unit lookups fold case, so "ML", "ml" and "mL" resolve to the same
// unit. BestUnit refits an amount to the most readable unit within the
// source unit's measurement system, which is how 1100 g becomes
// 1.1 kg without ever becoming 2.4 lb.
package convert
