package resonance

import "math"

// FoldAngle reduces an angle in degrees into the window [min, max),
// where max - min spans one full turn. A value already inside the
// window is returned bit-identical, so folding is idempotent.
func FoldAngle(deg, min, max float64) float64 {
	if deg >= min && deg < max {
		return deg
	}
	v := math.Mod(deg-min, 360)
	if v < 0 {
		v += 360
	}
	return min + v
}

// resonantAngle fills dst with the folded resonant angle series
//
//	phi_k = (p+q)·λ_out - p·λ_in - k·ϖ_in - (q-k)·ϖ_out
//
// for the candidate num:den, where q = num - den.
func resonantAngle(dst []float64, c Commensurability, k int, meanLongIn, meanLongOut, longPeriIn, longPeriOut []float64, foldMin, foldMax float64) {
	q := c.Order()
	for i := range dst {
		phi := float64(c.Numerator)*meanLongOut[i] -
			float64(c.Denominator)*meanLongIn[i] -
			float64(k)*longPeriIn[i] -
			float64(q-k)*longPeriOut[i]
		dst[i] = FoldAngle(phi, foldMin, foldMax)
	}
}
