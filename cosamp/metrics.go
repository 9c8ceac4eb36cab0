// SPDX-License-Identifier: MIT
package cosamp

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting reconstruction metrics.
// Implement it to integrate with a monitoring system. Implementations must be
// safe for concurrent use: columns may report from several workers.
type MetricsCollector interface {
	// RecordColumn is called after each column reconstruction.
	// outerIters and cgIters are the iterations spent, err is nil on success.
	RecordColumn(duration time.Duration, outerIters, cgIters int, converged bool, err error)

	// RecordSignal is called after each multi-column reconstruction.
	RecordSignal(columns, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordColumn(time.Duration, int, int, bool, error) {}
func (NoopMetricsCollector) RecordSignal(int, int, time.Duration)              {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	ColumnCount      atomic.Int64
	ColumnErrors     atomic.Int64
	ColumnConverged  atomic.Int64
	OuterIterations  atomic.Int64
	CGIterations     atomic.Int64
	ColumnTotalNanos atomic.Int64
	SignalCount      atomic.Int64
	SignalColumns    atomic.Int64
	SignalFailed     atomic.Int64
}

// RecordColumn implements MetricsCollector.
func (b *BasicMetricsCollector) RecordColumn(duration time.Duration, outerIters, cgIters int, converged bool, err error) {
	b.ColumnCount.Add(1)
	b.ColumnTotalNanos.Add(duration.Nanoseconds())
	b.OuterIterations.Add(int64(outerIters))
	b.CGIterations.Add(int64(cgIters))
	if converged {
		b.ColumnConverged.Add(1)
	}
	if err != nil {
		b.ColumnErrors.Add(1)
	}
}

// RecordSignal implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSignal(columns, failed int, _ time.Duration) {
	b.SignalCount.Add(1)
	b.SignalColumns.Add(int64(columns))
	b.SignalFailed.Add(int64(failed))
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	ColumnCount     int64
	ColumnErrors    int64
	ColumnConverged int64
	OuterIterations int64
	CGIterations    int64
	ColumnAvgNanos  int64
	SignalCount     int64
	SignalColumns   int64
	SignalFailed    int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	count := b.ColumnCount.Load()
	var avg int64
	if count > 0 {
		avg = b.ColumnTotalNanos.Load() / count
	}

	return BasicMetricsStats{
		ColumnCount:     count,
		ColumnErrors:    b.ColumnErrors.Load(),
		ColumnConverged: b.ColumnConverged.Load(),
		OuterIterations: b.OuterIterations.Load(),
		CGIterations:    b.CGIterations.Load(),
		ColumnAvgNanos:  avg,
		SignalCount:     b.SignalCount.Load(),
		SignalColumns:   b.SignalColumns.Load(),
		SignalFailed:    b.SignalFailed.Load(),
	}
}
