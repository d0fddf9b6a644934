package resonance

import (
	"fmt"
	"math"
)

// Commensurability is a candidate period ratio (p+q):p in lowest terms.
// Equality of the (Numerator, Denominator) pair identifies a candidate.
type Commensurability struct {
	Numerator   int
	Denominator int
}

// Order returns the resonance order q = numerator - denominator. A
// candidate of order q has q+1 resonant angles.
func (c Commensurability) Order() int {
	return c.Numerator - c.Denominator
}

// String formats the ratio as "p+q:p" for display.
func (c Commensurability) String() string {
	return fmt.Sprintf("%d:%d", c.Numerator, c.Denominator)
}

// Approximate returns the fraction closest to ratio among all fractions
// whose denominator does not exceed maxDenominator, via the standard
// continued-fraction convergent search. When two fractions are equally
// close the one with the smaller denominator wins, so the result is
// deterministic. ratio must be positive and finite; maxDenominator
// values below 1 are treated as 1.
func Approximate(ratio float64, maxDenominator int) Commensurability {
	if maxDenominator < 1 {
		maxDenominator = 1
	}

	// Convergents p1/q1 (current) and p0/q0 (previous). Invariant after
	// the first step: q1 <= maxDenominator.
	p0, q0, p1, q1 := 0, 1, 1, 0
	x := ratio
	exact := false
	for {
		a := int(math.Floor(x))
		if q0+a*q1 > maxDenominator {
			break
		}
		p0, q0, p1, q1 = p1, q1, p0+a*p1, q0+a*q1
		frac := x - math.Floor(x)
		if frac < 1e-12 {
			exact = true
			break
		}
		x = 1 / frac
	}
	if exact {
		return Commensurability{Numerator: p1, Denominator: q1}
	}

	// Best semiconvergent under the bound versus the last convergent.
	k := (maxDenominator - q0) / q1
	semi := Commensurability{Numerator: p0 + k*p1, Denominator: q0 + k*q1}
	conv := Commensurability{Numerator: p1, Denominator: q1}

	dSemi := math.Abs(ratio - float64(semi.Numerator)/float64(semi.Denominator))
	dConv := math.Abs(ratio - float64(conv.Numerator)/float64(conv.Denominator))
	switch {
	case dSemi < dConv:
		return semi
	case dConv < dSemi:
		return conv
	case semi.Denominator < conv.Denominator:
		return semi
	default:
		return conv
	}
}
