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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	parseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cook_parse_duration_seconds",
			Help:    "Duration of recipe parses in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 5},
		},
	)

	parsesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cook_parses_total",
			Help: "Total number of recipe parses",
		},
	)
	parseDiagnosticsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cook_parse_diagnostics_total",
			Help: "Total number of recoverable diagnostics recorded while parsing",
		},
		[]string{"severity"},
	)
)
