package elliptic

import "math/big"

// MulAdd computes k1*p + k2*other, the combined scalar multiplication used
// by signature verification. See spec §4.5 for the case breakdown.
func (p *JacobianPoint) MulAdd(k1 *big.Int, other *JacobianPoint, k2 *big.Int) (*JacobianPoint, error) {
	if !p.curve.Equal(other.curve) {
		return nil, ErrCurveMismatch
	}
	if k1.Sign() == 0 {
		return other.ScalarMultiply(k2), nil
	}
	if k2.Sign() == 0 {
		return p.ScalarMultiply(k1), nil
	}

	// When both operands already carry a precomputed doubling table, that
	// table dominates: two independent fast multiplies beat the combined
	// same-doubling scan.
	if p.hasPrecompute() && other.hasPrecompute() {
		return p.ScalarMultiply(k1).Add(other.ScalarMultiply(k2)), nil
	}

	// Reduced mod order, not 2*order: the width-preserving Minerva reduction
	// is specified only for the ScalarMultiply ladder, not for mul_add.
	k1r, k2r := new(big.Int).Set(k1), new(big.Int).Set(k2)
	if p.order != nil {
		k1r.Mod(k1r, p.order)
	}
	if other.order != nil {
		k2r.Mod(k2r, other.order)
	}

	p.Scale()
	other.Scale()

	sum := p.Add(other)
	if sum.IsInfinity() {
		// P = -Q (or an otherwise degenerate combination): the combined
		// four-point precomputation below would be meaningless, so fall back
		// to two independent multiplies. This calls ScalarMultiply directly,
		// never MulAdd, so there is no recursion.
		return p.ScalarMultiply(k1).Add(other.ScalarMultiply(k2)), nil
	}
	diff := p.Add(other.Negate())
	negSum := sum.Negate()

	combined := map[[2]int8]*JacobianPoint{
		{1, 1}:   sum,           // P+Q
		{1, -1}:  diff,          // P-Q
		{-1, 1}:  diff.Negate(), // -P+Q = -(P-Q)
		{-1, -1}: negSum,        // -P-Q = -(P+Q)
	}

	d1 := reverseDigits(nafDigits(k1r))
	d2 := reverseDigits(nafDigits(k2r))
	n := len(d1)
	if len(d2) > n {
		n = len(d2)
	}
	d1 = padLeft(d1, n)
	d2 = padLeft(d2, n)

	acc := jacobianInfinity(p.curve)
	for i := 0; i < n; i++ {
		acc = acc.Double()
		a, b := d1[i], d2[i]
		switch {
		case a == 0 && b == 0:
			// nothing to add
		case a != 0 && b == 0:
			if a == 1 {
				acc = acc.Add(p)
			} else {
				acc = acc.Add(p.Negate())
			}
		case a == 0 && b != 0:
			if b == 1 {
				acc = acc.Add(other)
			} else {
				acc = acc.Add(other.Negate())
			}
		default:
			acc = acc.Add(combined[[2]int8{a, b}])
		}
	}
	return acc, nil
}

// hasPrecompute reports whether the point's generator precomputation table
// has already been built, without triggering construction of one.
func (p *JacobianPoint) hasPrecompute() bool {
	return p.generator && p.order != nil && p.precomp.Load() != nil
}
