package dive

import "math"

// Good fake dive profiles are hard.
//
// "depthtime" is the integral of depth over time, the area under the profile.
// We want that area to match the recorded average depth (avg_d * max_t), so we
// generate a six point profile
//
//	(0, 0) (t1, max_d) (t2, max_d) (t3, d) (t4, d) (max_t, 0)
//
// with the same ascent/descent rate between the different depths. Writing
// d_frac = d / max_d, the area constraint reduces to
//
//	t1 + (1-d_frac)*(t4-t3) = max_t * (1 - avg_d/max_d)
//
// and the equal-rate constraint ("time per depth must be the same") to
//
//	t1 = (t3-t2)/(1-d_frac)
//	t1 = (max_t-t4)/d_frac
//
// which together pin down t1..t4 once a slope and a d_frac are chosen. There
// are more free variables than constraints, so we aim for a realistic ascent
// rate first and relax from there; see the attempt table in Synthesize.

// solveAttempt is one candidate (slope, plateau fraction) pair for the
// average-depth solve. Slope is in mm/s.
type solveAttempt struct {
	slope float64
	dFrac float64
}

// Attempts are tried in order; the first one whose solution is monotonic in
// time wins. The last pair has an absurd slope and exists only so that some
// geometrically valid profile comes out.
var solveAttempts = []solveAttempt{
	{5000.0 / 60, 0.33},
	{10000.0 / 60, 0.10},
	{10000.0, 0.01},
}

// fillSamples solves the closed-form system above for one (slope, d_frac)
// pair and writes samples 1..4. It reports false when the rounded times are
// not ordered 0 <= t1 <= t2 <= t3 <= t4 <= maxT.
func fillSamples(s []Sample, maxD, avgD, maxT int, slope, dFrac float64) bool {
	tFrac := float64(maxT) * (1 - float64(avgD)/float64(maxD))
	t1 := int(math.Round(float64(maxD) / slope))
	t4 := int(math.Round(float64(maxT) - float64(t1)*dFrac))
	t3 := int(math.Round(float64(t4) - (tFrac-float64(t1))/(1-dFrac)))
	t2 := int(math.Round(float64(t3) - float64(t1)*(1-dFrac)))

	if t1 < 0 || t1 > t2 || t2 > t3 || t3 > t4 || t4 > maxT {
		return false
	}

	d := int(math.Round(float64(maxD) * dFrac))
	s[1] = Sample{Time: t1, Depth: maxD}
	s[2] = Sample{Time: t2, Depth: maxD}
	s[3] = Sample{Time: t3, Depth: d}
	s[4] = Sample{Time: t4, Depth: d}
	return true
}

// fillSamplesNoAvg builds a profile from depth and time alone. Short or
// shallow dives become a plain trapezoid; anything deeper and longer gets a
// three minute safety stop at 5m before the final ascent.
func fillSamplesNoAvg(s []Sample, maxD, maxT int, slope float64) {
	descent := int(math.Round(float64(maxD) / slope))
	if maxD < 10000 || maxT < 600 {
		s[1] = Sample{Time: descent, Depth: maxD}
		s[2] = Sample{Time: maxT - descent, Depth: maxD}
		return
	}
	toSurface := int(math.Round(5000 / slope))
	s[1] = Sample{Time: descent, Depth: maxD}
	s[2] = Sample{Time: maxT - descent - 180, Depth: maxD}
	s[3] = Sample{Time: maxT - toSurface - 180, Depth: 5000}
	s[4] = Sample{Time: maxT - toSurface, Depth: 5000}
}

// Synthesize replaces dc.Samples with a plausible profile built from the
// record's summary statistics (duration, max depth, mean depth). The result
// is 0, 4 or 6 samples: 0 when duration or max depth is missing, 4 when the
// fourth breakpoint would be degenerate, 6 otherwise. Bearing and NDL stay
// unset on every sample since nothing was actually measured. The function
// never fails; it degrades to a cruder shape instead.
func Synthesize(dc *Computer) {
	samples := make([]Sample, 6)
	dc.Samples = samples

	maxT := dc.Duration
	maxD := dc.MaxDepth
	avgD := dc.MeanDepth

	samples[5].Time = maxT
	if maxT == 0 || maxD == 0 {
		dc.Samples = samples[:0]
		return
	}

	// Set the last manually entered time to the total dive length.
	dc.LastManualTime = dc.Duration

	// We want the fake profile to reproduce the average depth. In the
	// absence of a usable average we make something up instead; note that
	// avg_d == max_d is _not_ a usable average.
	if avgD == 0 {
		synthesizeNoAvg(dc, samples, maxD, maxT)
		return
	}
	if avgD < maxD/10 || avgD >= maxD {
		avgD = (maxD + 10000) / 3
		if avgD > maxD {
			avgD = maxD * 2 / 3
		}
	}
	if avgD == 0 {
		avgD = 1
	}

	// First a conservative profile (5 m/min, plateau at a third of max
	// depth), then one compensating for quick deep dives with a shallow
	// tail, then the anything-goes slope.
	for _, a := range solveAttempts {
		if fillSamples(samples, maxD, avgD, maxT, a.slope, a.dFrac) {
			return
		}
	}

	// No slope/d_frac pair gave an ordered solution. Rather than hand back
	// a zeroed skeleton, degrade to the no-average heuristic.
	synthesizeNoAvg(dc, samples, maxD, maxT)
}

// synthesizeNoAvg runs the depth/time-only heuristic with a sane slope (at
// least 50 m/min, faster if the dive's own depth/time ratio demands it) and
// collapses to four points when the safety-stop breakpoint is degenerate.
func synthesizeNoAvg(dc *Computer, samples []Sample, maxD, maxT int) {
	fillSamplesNoAvg(samples, maxD, maxT, math.Max(2*float64(maxD)/float64(maxT), 5000.0/60))
	if samples[3].Time == 0 {
		samples[3].Time = maxT
		dc.Samples = samples[:4]
	}
}
