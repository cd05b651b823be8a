// Package metrics records grouping activity for Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder receives pipeline events. Collector and Nop implement it.
type Recorder interface {
	RecordGrouping(students, groups int)
	RecordCommentary(result string)
	RecordExport(result string)
}

// Commentary and export outcomes.
const (
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultDisabled = "disabled"
)

// Collector implements Recorder with Prometheus counters and histograms.
type Collector struct {
	groupings  prometheus.Counter
	students   prometheus.Counter
	groupCount prometheus.Histogram
	commentary *prometheus.CounterVec
	exports    *prometheus.CounterVec
}

var _ Recorder = (*Collector)(nil)

// NewCollector creates a Collector and registers it with reg. A nil reg uses
// prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		groupings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "groupings_total",
			Help:      "Number of completed grouping runs.",
		}),
		students: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "students_grouped_total",
			Help:      "Number of students placed into groups.",
		}),
		groupCount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "groups_per_run",
			Help:      "Number of groups formed per grouping run.",
			Buckets:   []float64{1, 2, 4, 6, 8, 12, 16, 24},
		}),
		commentary: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commentary_requests_total",
			Help:      "Commentary requests by result.",
		}, []string{"result"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Workbook exports by result.",
		}, []string{"result"}),
	}

	for _, col := range []prometheus.Collector{c.groupings, c.students, c.groupCount, c.commentary, c.exports} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordGrouping counts one grouping run.
func (c *Collector) RecordGrouping(students, groups int) {
	c.groupings.Inc()
	c.students.Add(float64(students))
	c.groupCount.Observe(float64(groups))
}

// RecordCommentary counts a commentary outcome.
func (c *Collector) RecordCommentary(result string) {
	c.commentary.WithLabelValues(result).Inc()
}

// RecordExport counts an export outcome.
func (c *Collector) RecordExport(result string) {
	c.exports.WithLabelValues(result).Inc()
}

// Nop discards all events.
type Nop struct{}

var _ Recorder = Nop{}

func (Nop) RecordGrouping(int, int) {}
func (Nop) RecordCommentary(string) {}
func (Nop) RecordExport(string)     {}
