// SPDX-License-Identifier: MIT
package cosamp_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cosamp/cosamp"
	"github.com/katalvlaran/cosamp/matrix"
	"github.com/katalvlaran/cosamp/sensing"
	"github.com/katalvlaran/cosamp/signal"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := cosamp.NewConfig()
	assert.Equal(t, 10, cfg.MaxIterations())
	assert.Equal(t, 0.01, cfg.ConvergenceRatio())
	assert.Equal(t, 1e-3, cfg.CGTolerance())
	assert.Equal(t, 1000, cfg.CGMaxIterations())
	assert.Equal(t, 50, cfg.ResidualRefresh())
	assert.Equal(t, 1, cfg.Workers())
	assert.False(t, cfg.KeepHistory())
	assert.NotNil(t, cfg.Logger())
	assert.IsType(t, cosamp.NoopMetricsCollector{}, cfg.Metrics())
}

func TestNewConfig_Overrides(t *testing.T) {
	cfg := cosamp.NewConfig(
		cosamp.WithMaxIterations(20),
		cosamp.WithConvergenceRatio(0.05),
		cosamp.WithCGTolerance(1e-6),
		cosamp.WithCGMaxIterations(50),
		cosamp.WithResidualRefresh(10),
		cosamp.WithWorkers(3),
		cosamp.WithHistory(),
	)
	assert.Equal(t, 20, cfg.MaxIterations())
	assert.Equal(t, 0.05, cfg.ConvergenceRatio())
	assert.Equal(t, 1e-6, cfg.CGTolerance())
	assert.Equal(t, 50, cfg.CGMaxIterations())
	assert.Equal(t, 10, cfg.ResidualRefresh())
	assert.Equal(t, 3, cfg.Workers())
	assert.True(t, cfg.KeepHistory())
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { cosamp.WithMaxIterations(0) })
	assert.Panics(t, func() { cosamp.WithConvergenceRatio(0) })
	assert.Panics(t, func() { cosamp.WithConvergenceRatio(math.NaN()) })
	assert.Panics(t, func() { cosamp.WithCGTolerance(-1) })
	assert.Panics(t, func() { cosamp.WithCGMaxIterations(0) })
	assert.Panics(t, func() { cosamp.WithResidualRefresh(0) })
	assert.Panics(t, func() { cosamp.WithWorkers(0) })
	assert.Panics(t, func() { cosamp.WithLogger(nil) })
	assert.Panics(t, func() { cosamp.WithMetrics(nil) })
}

func TestNewEngine_ZeroConfigUsesDefaults(t *testing.T) {
	eng := cosamp.NewEngine(cosamp.Config{})
	assert.Equal(t, cosamp.DefaultMaxIterations, eng.Config().MaxIterations())
	assert.Equal(t, cosamp.DefaultWorkers, eng.Config().Workers())

	p := newProblem(t, testN, testM, testK, 12)
	res, err := eng.Reconstruct(context.Background(), p.y, p.phi, testK)
	require.NoError(t, err)
	assert.Less(t, relativeError(t, res.Estimate, p.x), 0.1)
}

func TestLogger_WritesStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := cosamp.NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	eng := cosamp.NewEngine(cosamp.NewConfig(cosamp.WithLogger(logger)))

	x, err := sensing.RandomSparse(testN, testK, sensing.WithSeed(13))
	require.NoError(t, err)
	sig, err := signal.New(x, []int{testK})
	require.NoError(t, err)
	_, err = eng.ReconstructSignal(context.Background(), sig, sensing.NewGaussian(), testM)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"cosamp iteration"`)
	assert.Contains(t, out, `"msg":"column reconstructed"`)
	assert.Contains(t, out, `"msg":"signal reconstructed"`)
	assert.Contains(t, out, `"column":0`)
}

func TestLogger_ColumnRecordsCarryOneColumnField(t *testing.T) {
	var buf bytes.Buffer
	logger := cosamp.NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	eng := cosamp.NewEngine(cosamp.NewConfig(cosamp.WithLogger(logger)))

	x, err := sensing.RandomSparse(testN, testK, sensing.WithSeed(21))
	require.NoError(t, err)
	sig, err := signal.FromColumns([]matrix.Matrix{x, x}, []int{testK, testK})
	require.NoError(t, err)
	_, err = eng.ReconstructSignal(context.Background(), sig, sensing.NewGaussian(), testM)
	require.NoError(t, err)

	var records int
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if !strings.Contains(line, `"msg":"column reconstructed"`) {
			continue
		}
		records++
		assert.Equal(t, 1, strings.Count(line, `"column":`), line)
	}
	assert.Equal(t, 2, records)
}
