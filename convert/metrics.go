// Copyright (C) 2024 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package convert

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters a caller running many conversions (e.g. a
// build-wide indexer processing thousands of translation units) can wire
// into its own Prometheus registry. Metrics is entirely optional:
// Converter works with a nil *Metrics, in which case every method here is
// a no-op, so the common single-shot caller pays no registration cost.
type Metrics struct {
	EntitiesCreated       *prometheus.CounterVec
	UnsupportedConstructs prometheus.Counter
	Redefinitions         prometheus.Counter
}

// NewMetrics constructs and registers the three counters against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EntitiesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cm",
			Subsystem: "convert",
			Name:      "entities_created_total",
			Help:      "Entities created per kind during AST-to-model conversion.",
		}, []string{"kind"}),
		UnsupportedConstructs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cm",
			Subsystem: "convert",
			Name:      "unsupported_constructs_total",
			Help:      "Declarations or types skipped because the converter does not support them.",
		}),
		Redefinitions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cm",
			Subsystem: "convert",
			Name:      "redefinitions_total",
			Help:      "Duplicate definitions encountered and discarded in favour of the existing entity.",
		}),
	}
	reg.MustRegister(m.EntitiesCreated, m.UnsupportedConstructs, m.Redefinitions)
	return m
}

func (m *Metrics) entityCreated(kind string) {
	if m == nil {
		return
	}
	m.EntitiesCreated.WithLabelValues(kind).Inc()
}

func (m *Metrics) unsupportedConstruct() {
	if m == nil {
		return
	}
	m.UnsupportedConstructs.Inc()
}

func (m *Metrics) redefinition() {
	if m == nil {
		return
	}
	m.Redefinitions.Inc()
}
