package dive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// depthTime integrates depth over time under the piecewise-linear profile
// (the trapezoid rule is exact for straight segments).
func depthTime(samples []Sample) float64 {
	var area float64
	for i := 1; i < len(samples); i++ {
		dt := float64(samples[i].Time - samples[i-1].Time)
		area += float64(samples[i].Depth+samples[i-1].Depth) / 2 * dt
	}
	return area
}

// requireWellFormed checks the invariants every non-empty synthesized profile
// must satisfy: non-decreasing times, surface endpoints, bounded depths and
// unset instrument fields.
func requireWellFormed(t *testing.T, dc *Computer) {
	t.Helper()
	s := dc.Samples
	require.NotEmpty(t, s)

	require.Equal(t, 0, s[0].Time, "first sample time")
	require.Equal(t, 0, s[0].Depth, "first sample depth")
	require.Equal(t, dc.Duration, s[len(s)-1].Time, "last sample time")
	require.Equal(t, 0, s[len(s)-1].Depth, "last sample depth")

	for i := 1; i < len(s); i++ {
		require.GreaterOrEqual(t, s[i].Time, s[i-1].Time, "sample %d time goes backwards", i)
	}
	for i, smp := range s {
		require.LessOrEqual(t, smp.Depth, dc.MaxDepth, "sample %d deeper than max depth", i)
		require.GreaterOrEqual(t, smp.Depth, 0, "sample %d negative depth", i)
		require.False(t, smp.Bearing.Valid, "sample %d bearing should be unset", i)
		require.False(t, smp.NDL.Valid, "sample %d ndl should be unset", i)
	}
}

func TestSynthesizeNoData(t *testing.T) {
	for _, dc := range []Computer{
		{Duration: 0, MaxDepth: 18000, MeanDepth: 9000},
		{Duration: 3000, MaxDepth: 0, MeanDepth: 9000},
		{Duration: 0, MaxDepth: 0},
	} {
		Synthesize(&dc)
		assert.Len(t, dc.Samples, 0)
		assert.Zero(t, dc.LastManualTime)
	}
}

// TestSynthesizeAvgDepthFirstAttempt is the worked example: an 18m dive with
// 9m average over 50 minutes is solvable with the conservative 5 m/min slope
// and one-third plateau.
func TestSynthesizeAvgDepthFirstAttempt(t *testing.T) {
	dc := Computer{Duration: 3000, MaxDepth: 18000, MeanDepth: 9000}
	Synthesize(&dc)

	requireWellFormed(t, &dc)
	require.Len(t, dc.Samples, 6)
	assert.Equal(t, 3000, dc.LastManualTime)

	// t1 = round(18000 / (5000/60)) = 216, descent pinned at max depth.
	assert.Equal(t, Sample{Time: 216, Depth: 18000}, dc.Samples[1])
	assert.Equal(t, 18000, dc.Samples[2].Depth)
	// plateau at d_frac * max_d
	assert.Equal(t, 5940, dc.Samples[3].Depth)
	assert.Equal(t, 5940, dc.Samples[4].Depth)

	// Area law: mean depth recovered within a few mm once each breakpoint
	// has been rounded to whole seconds.
	mean := depthTime(dc.Samples) / float64(dc.Duration)
	assert.InDelta(t, 9000, mean, 5)

	// Every sloped segment runs at the chosen 5 m/min rate.
	const slope = 5000.0 / 60
	for i := 1; i < len(dc.Samples); i++ {
		dd := dc.Samples[i].Depth - dc.Samples[i-1].Depth
		dt := dc.Samples[i].Time - dc.Samples[i-1].Time
		if dd == 0 {
			continue
		}
		got := float64(dd) / float64(dt)
		if got < 0 {
			got = -got
		}
		assert.InDelta(t, slope, got, 1, "segment %d slope", i)
	}
}

// TestSynthesizeAvgDepthSecondAttempt uses a quick deep dive whose average
// only works out with the steeper 10 m/min slope and the 10% plateau.
func TestSynthesizeAvgDepthSecondAttempt(t *testing.T) {
	// The 5 m/min attempt is infeasible here (t2 would precede t1).
	require.False(t, fillSamples(make([]Sample, 6), 40000, 10000, 3600, 5000.0/60, 0.33))

	dc := Computer{Duration: 3600, MaxDepth: 40000, MeanDepth: 10000}
	Synthesize(&dc)

	requireWellFormed(t, &dc)
	require.Len(t, dc.Samples, 6)
	assert.Equal(t, Sample{Time: 240, Depth: 40000}, dc.Samples[1])
	assert.Equal(t, 4000, dc.Samples[3].Depth)

	mean := depthTime(dc.Samples) / float64(dc.Duration)
	assert.InDelta(t, 10000, mean, 5)
}

// TestSynthesizeAvgDepthLastAttempt drives the solve into the near-degenerate
// third pair: area-exact but with an unrealistically steep descent.
func TestSynthesizeAvgDepthLastAttempt(t *testing.T) {
	require.False(t, fillSamples(make([]Sample, 6), 30000, 5000, 600, 5000.0/60, 0.33))
	require.False(t, fillSamples(make([]Sample, 6), 30000, 5000, 600, 10000.0/60, 0.10))

	dc := Computer{Duration: 600, MaxDepth: 30000, MeanDepth: 5000}
	Synthesize(&dc)

	requireWellFormed(t, &dc)
	require.Len(t, dc.Samples, 6)
	assert.Equal(t, Sample{Time: 3, Depth: 30000}, dc.Samples[1])

	mean := depthTime(dc.Samples) / float64(dc.Duration)
	assert.InDelta(t, 5000, mean, 60)
}

// TestSynthesizeAvgDepthExhausted: a sane-looking average on an absurdly
// short dive defeats all three slope/d_frac pairs; the synthesizer then falls
// back to the depth/time heuristic instead of returning a zeroed skeleton.
func TestSynthesizeAvgDepthExhausted(t *testing.T) {
	for _, a := range solveAttempts {
		require.False(t, fillSamples(make([]Sample, 6), 50000, 5000, 30, a.slope, a.dFrac))
	}

	dc := Computer{Duration: 30, MaxDepth: 50000, MeanDepth: 5000}
	Synthesize(&dc)

	requireWellFormed(t, &dc)
	// Short dive: trapezoid collapsed to four points.
	require.Len(t, dc.Samples, 4)
	assert.Equal(t, 50000, dc.Samples[1].Depth)
	assert.Equal(t, 30, dc.Samples[3].Time)
}

// TestSynthesizeSanitizesAverage: avg == max is not a usable average; the
// heuristic default (max+10m)/3 takes over and the area law follows it.
func TestSynthesizeSanitizesAverage(t *testing.T) {
	dc := Computer{Duration: 3600, MaxDepth: 20000, MeanDepth: 20000}
	Synthesize(&dc)

	requireWellFormed(t, &dc)
	require.Len(t, dc.Samples, 6)
	mean := depthTime(dc.Samples) / float64(dc.Duration)
	assert.InDelta(t, 10000, mean, 5)
}

// TestSynthesizeNoAvgDeepAndLong: without an average, a 30m/30min dive gets
// the six point shape with a 180s safety stop at 5m before the final ascent.
func TestSynthesizeNoAvgDeepAndLong(t *testing.T) {
	dc := Computer{Duration: 1800, MaxDepth: 30000}
	Synthesize(&dc)

	requireWellFormed(t, &dc)
	require.Len(t, dc.Samples, 6)
	assert.Equal(t, 1800, dc.LastManualTime)

	want := []Sample{
		{Time: 0, Depth: 0},
		{Time: 360, Depth: 30000},
		{Time: 1260, Depth: 30000},
		{Time: 1560, Depth: 5000},
		{Time: 1740, Depth: 5000},
		{Time: 1800, Depth: 0},
	}
	assert.Equal(t, want, dc.Samples)
	// Safety stop holds exactly 180s.
	assert.Equal(t, 180, dc.Samples[4].Time-dc.Samples[3].Time)
}

// TestSynthesizeNoAvgShallowOrShort: shallow dives become a plain trapezoid;
// the unused safety-stop breakpoint collapses the profile to four points.
func TestSynthesizeNoAvgShallowOrShort(t *testing.T) {
	dc := Computer{Duration: 500, MaxDepth: 8000}
	Synthesize(&dc)

	requireWellFormed(t, &dc)
	require.Len(t, dc.Samples, 4)

	want := []Sample{
		{Time: 0, Depth: 0},
		{Time: 96, Depth: 8000},
		{Time: 404, Depth: 8000},
		{Time: 500, Depth: 0},
	}
	assert.Equal(t, want, dc.Samples)
}

// TestSynthesizeReplacesSamples: synthesis owns the sample storage and drops
// whatever was there before.
func TestSynthesizeReplacesSamples(t *testing.T) {
	dc := Computer{
		Duration:  3000,
		MaxDepth:  18000,
		MeanDepth: 9000,
		Samples:   []Sample{{Time: 1, Depth: 99999}, {Time: 2, Depth: 99999}},
	}
	Synthesize(&dc)

	require.Len(t, dc.Samples, 6)
	for i, s := range dc.Samples {
		assert.LessOrEqual(t, s.Depth, 18000, "old sample %d leaked through", i)
	}
}
