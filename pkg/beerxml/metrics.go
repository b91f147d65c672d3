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


package beerxml

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

var (
	parseTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beerxml_parse_total",
			Help: "Total number of document parse attempts",
		},
		[]string{"status"}, // success or error
	)

	parseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "beerxml_parse_duration_seconds",
			Help:    "Time taken to parse and assemble a document",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	recipesParsed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "beerxml_recipes_parsed_total",
			Help: "Total number of recipes assembled from parsed documents",
		},
	)
)
