package elliptic

import "math/big"

// AffinePoint is a short-Weierstrass curve point in classical (x, y)
// coordinates. curve is nil only for the package-level Infinity sentinel.
type AffinePoint struct {
	curve *WeierstrassCurve
	X, Y  *big.Int
	order *big.Int
}

// Infinity is the single process-wide group identity for short-Weierstrass
// arithmetic. Its curve is nil; it compares equal to any curve's identity.
var Infinity = &AffinePoint{}

// NewAffinePoint constructs a point from affine coordinates, asserting that
// it lies on the curve. If the curve's cofactor is greater than 1 and order
// is given, construction additionally asserts order*P == Infinity. Both
// assertions are programmer-error invariants: violating them panics rather
// than returning an error.
func NewAffinePoint(curve *WeierstrassCurve, x, y *big.Int, order *big.Int) *AffinePoint {
	if !curve.Contains(x, y) {
		panic("elliptic: point is not on curve")
	}
	p := &AffinePoint{curve: curve, X: new(big.Int).Mod(x, curve.P), Y: new(big.Int).Mod(y, curve.P), order: order}
	if order != nil && curve.H != nil && curve.H.Cmp(big.NewInt(1)) > 0 {
		// Multiply a copy without order: with order set, Multiply returns
		// Infinity for any multiple of order without computing the product.
		bare := &AffinePoint{curve: curve, X: p.X, Y: p.Y}
		if !bare.Multiply(order).IsInfinity() {
			panic("elliptic: order*P != infinity")
		}
	}
	return p
}

// Curve returns the point's curve, or nil for Infinity.
func (p *AffinePoint) Curve() *WeierstrassCurve { return p.curve }

// Order returns the point's known order, or nil.
func (p *AffinePoint) Order() *big.Int { return p.order }

// IsInfinity reports whether p is the group identity.
func (p *AffinePoint) IsInfinity() bool {
	return p == Infinity || p.curve == nil
}

// Equal reports whether p and o denote the same point. Infinity compares
// equal to any curve's identity, as required by the global sentinel model.
func (p *AffinePoint) Equal(o *AffinePoint) bool {
	if p.IsInfinity() || o.IsInfinity() {
		return p.IsInfinity() && o.IsInfinity()
	}
	return p.curve.Equal(o.curve) && p.X.Cmp(o.X) == 0 && p.Y.Cmp(o.Y) == 0
}

// Negate returns (x, -y), or Infinity unchanged.
func (p *AffinePoint) Negate() *AffinePoint {
	if p.IsInfinity() {
		return Infinity
	}
	negY := new(big.Int).Neg(p.Y)
	negY.Mod(negY, p.curve.P)
	return &AffinePoint{curve: p.curve, X: new(big.Int).Set(p.X), Y: negY, order: p.order}
}

// Add implements classical affine addition per X9.62 B.3: equal x with
// y1+y2 == 0 (mod p) yields Infinity; equal x otherwise dispatches to
// Double.
func (p *AffinePoint) Add(q *AffinePoint) *AffinePoint {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}
	curveP := p.curve.P
	if p.X.Cmp(q.X) == 0 {
		ySum := new(big.Int).Add(p.Y, q.Y)
		ySum.Mod(ySum, curveP)
		if ySum.Sign() == 0 {
			return Infinity
		}
		return p.Double()
	}

	// lambda = (y2 - y1) / (x2 - x1)
	num := new(big.Int).Sub(q.Y, p.Y)
	den := new(big.Int).Sub(q.X, p.X)
	den.Mod(den, curveP)
	lambda := new(big.Int).Mul(num, inverseMod(den, curveP))
	lambda.Mod(lambda, curveP)

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p.X)
	x3.Sub(x3, q.X)
	x3.Mod(x3, curveP)

	y3 := new(big.Int).Sub(p.X, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p.Y)
	y3.Mod(y3, curveP)

	return &AffinePoint{curve: p.curve, X: x3, Y: y3}
}

// Double implements classical affine doubling per X9.62 B.3.
func (p *AffinePoint) Double() *AffinePoint {
	if p.IsInfinity() || p.Y.Sign() == 0 {
		return Infinity
	}
	curveP := p.curve.P

	num := new(big.Int).Mul(p.X, p.X)
	num.Mul(num, big.NewInt(3))
	num.Add(num, p.curve.A)
	num.Mod(num, curveP)

	den := new(big.Int).Lsh(p.Y, 1)
	den.Mod(den, curveP)

	lambda := new(big.Int).Mul(num, inverseMod(den, curveP))
	lambda.Mod(lambda, curveP)

	x3 := new(big.Int).Mul(lambda, lambda)
	twoX := new(big.Int).Lsh(p.X, 1)
	x3.Sub(x3, twoX)
	x3.Mod(x3, curveP)

	y3 := new(big.Int).Sub(p.X, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p.Y)
	y3.Mod(y3, curveP)

	return &AffinePoint{curve: p.curve, X: x3, Y: y3}
}

// Multiply computes k*P using the ternary-expansion algorithm: with
// e3 = 3*e, walk the bit positions from second-highest down to 1; at each
// step double, then add P when bit(e3) set but bit(e) clear, add -P when
// bit(e) set but bit(e3) clear. Negative k uses k*P := (-k)*(-P). When the
// point's order is known and k mod order == 0, the result is Infinity.
func (p *AffinePoint) Multiply(k *big.Int) *AffinePoint {
	if p.IsInfinity() || k.Sign() == 0 {
		return Infinity
	}
	if k.Sign() < 0 {
		return p.Negate().Multiply(new(big.Int).Neg(k))
	}
	if p.order != nil {
		if new(big.Int).Mod(k, p.order).Sign() == 0 {
			return Infinity
		}
	}

	e := k
	e3 := new(big.Int).Mul(e, big.NewInt(3))

	negSelf := p.Negate()
	result := p
	for i := e3.BitLen() - 2; i >= 1; i-- {
		result = result.Double()
		e3Bit := e3.Bit(i)
		eBit := e.Bit(i)
		if e3Bit == 1 && eBit == 0 {
			result = result.Add(p)
		} else if e3Bit == 0 && eBit == 1 {
			result = result.Add(negSelf)
		}
	}
	return result
}

// ToJacobian lifts the affine point into Jacobian coordinates with Z=1.
func (p *AffinePoint) ToJacobian() *JacobianPoint {
	if p.IsInfinity() {
		return jacobianInfinity(nil)
	}
	return NewJacobianPoint(p.curve, p.X, p.Y, p.order)
}
