// Copyright 2025 Oppie Thunder Contributors
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

// Package metrics collects probe-length and operation-outcome statistics
// for the namespace façade. Keep it tiny and lock-based, as the teacher's
// EngineMetrics does for commit latencies; here the series tracked is
// probe length (number of cells examined per path-segment lookup) rather
// than commit latency.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is a lock-protected collector plus a set of Prometheus
// collectors, registered against the registerer passed to New (not
// registered at all if that is nil), so the same counters are both
// snapshot-able in-process (the CLI's stats command) and scrapeable
// externally.
type Metrics struct {
	mu sync.Mutex

	probeSteps []int64
	rehashes   uint64

	opsVec        *prometheus.CounterVec
	loadGauge     prometheus.Gauge
	probeHist     prometheus.Histogram
	rehashCounter prometheus.Counter
}

// New builds a Metrics instance and registers its Prometheus collectors.
// A nil registerer is treated as "don't register" (used in tests that
// construct many instances, which would otherwise collide on the default
// registry).
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		opsVec: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arbor_operations_total",
			Help: "Namespace façade operations by verb and outcome.",
		}, []string{"op", "result"}),
		loadGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "arbor_table_load_factor",
			Help: "Current occupied/size ratio of the hash index.",
		}),
		probeHist: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "arbor_probe_length",
			Help:    "Number of cells examined per probe.",
			Buckets: prometheus.LinearBuckets(1, 2, 8),
		}),
		rehashCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arbor_rehash_total",
			Help: "Number of grow-and-rehash cycles.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.opsVec, m.loadGauge, m.probeHist, m.rehashCounter)
	}
	return m
}

// ObserveOp records the outcome of a façade operation.
func (m *Metrics) ObserveOp(op string, ok bool) {
	result := "ok"
	if !ok {
		result = "no"
	}
	if m.opsVec != nil {
		m.opsVec.WithLabelValues(op, result).Inc()
	}
}

// ObserveProbe records how many cells a single probe examined.
func (m *Metrics) ObserveProbe(steps int) {
	m.mu.Lock()
	m.probeSteps = append(m.probeSteps, int64(steps))
	m.mu.Unlock()
	if m.probeHist != nil {
		m.probeHist.Observe(float64(steps))
	}
}

// ObserveRehash records one grow-and-rehash cycle.
func (m *Metrics) ObserveRehash() {
	m.mu.Lock()
	m.rehashes++
	m.mu.Unlock()
	if m.rehashCounter != nil {
		m.rehashCounter.Inc()
	}
}

// SetLoadFactor updates the load-factor gauge.
func (m *Metrics) SetLoadFactor(f float64) {
	if m.loadGauge != nil {
		m.loadGauge.Set(f)
	}
}

// Snapshot is an in-process percentile summary plus counters, rendered by
// the CLI's --stats output.
type Snapshot struct {
	ProbeP50   int64  `json:"probe_length_p50"`
	ProbeP95   int64  `json:"probe_length_p95"`
	ProbeP99   int64  `json:"probe_length_p99"`
	ProbeCount int    `json:"probe_count"`
	Rehashes   uint64 `json:"rehashes"`
}

// Snapshot computes the percentile summary via quickselect on a copy, so
// the underlying series is never reordered out from under concurrent
// readers.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		ProbeP50:   percentile(m.probeSteps, 0.50),
		ProbeP95:   percentile(m.probeSteps, 0.95),
		ProbeP99:   percentile(m.probeSteps, 0.99),
		ProbeCount: len(m.probeSteps),
		Rehashes:   m.rehashes,
	}
}

func percentile(series []int64, p float64) int64 {
	if len(series) == 0 {
		return 0
	}
	cp := make([]int64, len(series))
	copy(cp, series)
	k := int(float64(len(cp)-1) * p)
	quickselect(cp, 0, len(cp)-1, k)
	return cp[k]
}

func quickselect(a []int64, l, r, k int) {
	for l < r {
		p := partition(a, l, r)
		if k == p {
			return
		} else if k < p {
			r = p - 1
		} else {
			l = p + 1
		}
	}
}

func partition(a []int64, l, r int) int {
	p := a[r]
	i := l
	for j := l; j < r; j++ {
		if a[j] < p {
			a[i], a[j] = a[j], a[i]
			i++
		}
	}
	a[i], a[r] = a[r], a[i]
	return i
}
