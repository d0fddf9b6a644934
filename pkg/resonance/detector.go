// Package resonance identifies mean-motion resonances between adjacent
// bodies of a simulated planetary system. For each pair it scans period
// ratios near the observed one, converts them to low-denominator
// fractions and keeps those whose resonant angle librates over the
// final samples of the run, rather than circulating through the full
// range.
package resonance

import (
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/autiwa/mercurygo/pkg/orbital"
)

// PairResult is the outcome for one adjacent body pair. Primary is nil
// when no candidate passed the libration test. Secondary holds further
// accepted candidates in discovery order.
type PairResult struct {
	Inner string
	Outer string

	Primary   *Commensurability
	Secondary []Commensurability

	// ApsidalAligned reports whether ϖ_out - ϖ_in librates, a secular
	// alignment independent of any mean-motion resonance.
	ApsidalAligned bool
}

// Detector runs the per-pair resonance analysis. It performs no I/O and
// keeps no state across calls; Detect may be called repeatedly.
type Detector struct {
	cfg Config
	log zerolog.Logger
}

// New returns a Detector with the given configuration and a disabled
// logger.
func New(cfg Config) *Detector {
	return &Detector{cfg: cfg, log: zerolog.Nop()}
}

// WithLogger returns the detector logging accepted candidates through l.
func (d *Detector) WithLogger(l zerolog.Logger) *Detector {
	d.log = l
	return d
}

// Detect analyzes each adjacent pair of tracks, which must be ordered
// by increasing semi-major axis, and returns one PairResult per pair in
// input order. A body with an empty track yields empty results for the
// pairs touching it without affecting the others.
func (d *Detector) Detect(tracks []orbital.Track) []PairResult {
	if len(tracks) < 2 {
		return nil
	}
	results := make([]PairResult, 0, len(tracks)-1)
	for i := 0; i < len(tracks)-1; i++ {
		results = append(results, d.detectPair(tracks[i], tracks[i+1]))
	}
	return results
}

func (d *Detector) detectPair(inner, outer orbital.Track) PairResult {
	res := PairResult{Inner: inner.Name, Outer: outer.Name}

	in := inner.Trailing(d.cfg.TrailingPoints)
	out := outer.Trailing(d.cfg.TrailingPoints)
	if len(in) == 0 || len(out) == 0 {
		return res
	}

	// End-align the two windows when one track is shorter: the test is
	// about the final, settled state of the system.
	n := len(in)
	if len(out) < n {
		n = len(out)
	}
	in = in[len(in)-n:]
	out = out[len(out)-n:]

	longPeriIn := make([]float64, n)
	longPeriOut := make([]float64, n)
	meanLongIn := make([]float64, n)
	meanLongOut := make([]float64, n)
	for i := 0; i < n; i++ {
		longPeriIn[i] = in[i].LongitudeOfPericentre()
		longPeriOut[i] = out[i].LongitudeOfPericentre()
		meanLongIn[i] = in[i].MeanLongitude()
		meanLongOut[i] = out[i].MeanLongitude()
	}

	ratio := math.Pow(out[n-1].SemiMajorAxis/in[n-1].SemiMajorAxis, 1.5)

	phi := make([]float64, n)
	for _, c := range d.candidates(ratio) {
		minStd := math.Inf(1)
		for k := 0; k <= c.Order(); k++ {
			resonantAngle(phi, c, k, meanLongIn, meanLongOut, longPeriIn, longPeriOut, d.cfg.AngleFoldMin, d.cfg.AngleFoldMax)
			if s := stat.PopStdDev(phi, nil); s < minStd {
				minStd = s
			}
		}
		if minStd >= d.cfg.LibrationStdThreshold {
			continue
		}

		d.log.Info().
			Str("inner", inner.Name).
			Str("outer", outer.Name).
			Stringer("resonance", c).
			Float64("min_std", minStd).
			Msg("resonant angle librates")

		accepted := c
		switch {
		case res.Primary == nil:
			res.Primary = &accepted
		case res.Primary.Numerator > c.Numerator:
			// A lower-numerator commensurability is the physically more
			// significant one; the former primary moves to the extras.
			res.Secondary = append(res.Secondary, *res.Primary)
			res.Primary = &accepted
		default:
			res.Secondary = append(res.Secondary, c)
		}
	}

	// Secular apsidal alignment, tested once per pair.
	delta := make([]float64, n)
	for i := 0; i < n; i++ {
		delta[i] = FoldAngle(longPeriOut[i]-longPeriIn[i], d.cfg.AngleFoldMin, d.cfg.AngleFoldMax)
	}
	res.ApsidalAligned = stat.PopStdDev(delta, nil) < d.cfg.LibrationStdThreshold

	return res
}

// candidates samples SampleCount period ratios across the uncertainty
// window around ratio and returns the distinct commensurabilities they
// round to, in first-seen order. Period ratios below 1 are excluded:
// for an outer/inner pair they only occur for co-orbital bodies.
func (d *Detector) candidates(ratio float64) []Commensurability {
	lo := ratio * (1 - d.cfg.UncertaintyFraction)
	hi := ratio * (1 + d.cfg.UncertaintyFraction)
	if lo < 1 {
		lo = 1
	}
	step := (hi - lo) / float64(d.cfg.SampleCount)

	seen := make(map[Commensurability]struct{})
	var out []Commensurability
	for i := 0; i < d.cfg.SampleCount; i++ {
		c := Approximate(lo+step*float64(i), d.cfg.DenominatorLimit)
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
