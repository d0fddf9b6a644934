package orbital

import "math"

// Sample is one time-stamped row of a body's trajectory output: the
// osculating elements the simulator writes per line of an .aei file.
// Angles are in degrees, as stored in the files, and may lie outside
// [0,360) or [-180,180).
type Sample struct {
	Time          float64 // years
	SemiMajorAxis float64 // AU
	Eccentricity  float64
	ArgPericentre float64 // ω - argument of pericentre (degrees)
	AscendingNode float64 // Ω - longitude of ascending node (degrees)
	MeanAnomaly   float64 // M - mean anomaly (degrees)
	Mass          float64 // solar masses
}

// LongitudeOfPericentre returns ϖ = ω + Ω in degrees.
func (s Sample) LongitudeOfPericentre() float64 {
	return s.ArgPericentre + s.AscendingNode
}

// MeanLongitude returns λ = M + ϖ in degrees.
func (s Sample) MeanLongitude() float64 {
	return s.MeanAnomaly + s.LongitudeOfPericentre()
}

// Period returns the orbital period in years for a solar-mass primary,
// via Kepler's third law (a in AU).
func (s Sample) Period() float64 {
	return math.Pow(s.SemiMajorAxis, 1.5)
}

// Track is the ordered, time-ascending trajectory of one named body.
// It is read-only once constructed.
type Track struct {
	Name    string
	Samples []Sample
}

// Len returns the number of samples in the track.
func (t Track) Len() int {
	return len(t.Samples)
}

// Last returns the final sample of the track, or false for an empty one.
func (t Track) Last() (Sample, bool) {
	if len(t.Samples) == 0 {
		return Sample{}, false
	}
	return t.Samples[len(t.Samples)-1], true
}

// Trailing returns the last n samples, or all of them when the track is
// shorter. The returned slice aliases the track and must not be mutated.
func (t Track) Trailing(n int) []Sample {
	if n >= len(t.Samples) {
		return t.Samples
	}
	return t.Samples[len(t.Samples)-n:]
}
