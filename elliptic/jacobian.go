package elliptic

import (
	"math/big"
	"sync/atomic"

	"github.com/cronokirby/safenum"
)

// jacCoords is a Jacobian coordinate triple (X, Y, Z) with x = X/Z^2,
// y = Y/Z^3. Y == 0 or Z == 0 denotes the point at infinity.
type jacCoords struct {
	X, Y, Z *safenum.Nat
}

// affinePair is one entry of a generator's precomputation table: the affine
// coordinates of 2^i*P for successive i.
type affinePair struct {
	X, Y *safenum.Nat
}

// JacobianPoint is a short-Weierstrass curve point in Jacobian coordinates.
// Two mutations are supported, both idempotent and safe under racing
// callers: Scale, which replaces the coordinate triple with an equivalent
// Z=1 representative, and the lazy generator precomputation table, which is
// built at most logically once and published via a single atomic store.
type JacobianPoint struct {
	curve *WeierstrassCurve

	coords atomic.Pointer[jacCoords]

	order     *big.Int
	generator bool

	precomp atomic.Pointer[[]affinePair]
}

// NewJacobianPoint builds a Jacobian point from affine coordinates with
// Z = 1. order may be nil if the point's order is not known.
func NewJacobianPoint(curve *WeierstrassCurve, x, y *big.Int, order *big.Int) *JacobianPoint {
	p := &JacobianPoint{curve: curve, order: order}
	p.coords.Store(&jacCoords{
		X: natFromBig(new(big.Int).Mod(x, curve.P)),
		Y: natFromBig(new(big.Int).Mod(y, curve.P)),
		Z: new(safenum.Nat).SetUint64(1),
	})
	return p
}

// NewGeneratorPoint builds a Jacobian point marked as a curve generator.
// order must be set; it is the only configuration under which a
// precomputation table will ever be built.
func NewGeneratorPoint(curve *WeierstrassCurve, x, y *big.Int, order *big.Int) *JacobianPoint {
	p := NewJacobianPoint(curve, x, y, order)
	p.generator = true
	return p
}

func jacobianInfinity(curve *WeierstrassCurve) *JacobianPoint {
	p := &JacobianPoint{curve: curve}
	p.coords.Store(&jacCoords{
		X: new(safenum.Nat).SetUint64(0),
		Y: new(safenum.Nat).SetUint64(0),
		Z: new(safenum.Nat).SetUint64(0),
	})
	return p
}

func (p *JacobianPoint) load() *jacCoords {
	return p.coords.Load()
}

// Curve returns the point's curve reference.
func (p *JacobianPoint) Curve() *WeierstrassCurve { return p.curve }

// Order returns the point's known order, or nil if unknown.
func (p *JacobianPoint) Order() *big.Int { return p.order }

// IsInfinity reports whether the point is the group identity.
func (p *JacobianPoint) IsInfinity() bool {
	c := p.load()
	return c.Y.EqZero() || c.Z.EqZero()
}

// X returns the affine x-coordinate, scaling first if necessary.
func (p *JacobianPoint) X() *big.Int {
	aff := p.ToAffine()
	return aff.X
}

// Y returns the affine y-coordinate, scaling first if necessary.
func (p *JacobianPoint) Y() *big.Int {
	aff := p.ToAffine()
	return aff.Y
}

// ---- field helpers over the curve's modulus ----

func modNeg(x *safenum.Nat, m *safenum.Modulus) *safenum.Nat {
	zero := new(safenum.Nat).SetUint64(0)
	return new(safenum.Nat).ModSub(zero, x, m)
}

func modSqr(x *safenum.Nat, m *safenum.Modulus) *safenum.Nat {
	return new(safenum.Nat).ModMul(x, x, m)
}

func natEq(x, y *safenum.Nat) bool {
	return x.Cmp(y) == 0
}

// Negate returns (X, -Y, Z).
func (p *JacobianPoint) Negate() *JacobianPoint {
	c := p.load()
	field := p.curve.field
	out := &JacobianPoint{curve: p.curve, order: p.order}
	out.coords.Store(&jacCoords{
		X: new(safenum.Nat).SetNat(c.X),
		Y: modNeg(c.Y, field),
		Z: new(safenum.Nat).SetNat(c.Z),
	})
	return out
}

// Scale replaces the coordinate triple with the equivalent Z=1
// representative: (X*Z^-2, Y*Z^-3, 1). Idempotent; safe for concurrent
// callers since every writer computes the identical triple and publication
// is a single atomic store.
func (p *JacobianPoint) Scale() {
	c := p.load()
	field := p.curve.field
	if c.Z.Cmp(new(safenum.Nat).SetUint64(1)) == 0 {
		return
	}
	zinv := new(safenum.Nat).ModInverse(c.Z, field)
	zinv2 := modSqr(zinv, field)
	zinv3 := new(safenum.Nat).ModMul(zinv2, zinv, field)

	scaled := &jacCoords{
		X: new(safenum.Nat).ModMul(c.X, zinv2, field),
		Y: new(safenum.Nat).ModMul(c.Y, zinv3, field),
		Z: new(safenum.Nat).SetUint64(1),
	}
	p.coords.Store(scaled)
}

// ToAffine scales the point and materializes an AffinePoint, or Infinity if
// the point is the identity.
func (p *JacobianPoint) ToAffine() *AffinePoint {
	p.Scale()
	c := p.load()
	if c.Y.EqZero() || c.Z.EqZero() {
		return Infinity
	}
	return &AffinePoint{
		curve: p.curve,
		X:     bigFromNat(c.X),
		Y:     bigFromNat(c.Y),
		order: p.order,
	}
}

// Equal compares cross-multiplied fractions: X1*Z2^2 == X2*Z1^2 (mod p) and
// Y1*Z2^3 == Y2*Z1^3 (mod p).
func (p *JacobianPoint) Equal(o *JacobianPoint) bool {
	if !p.curve.Equal(o.curve) {
		return false
	}
	a, b := p.load(), o.load()
	if (a.Y.EqZero() || a.Z.EqZero()) && (b.Y.EqZero() || b.Z.EqZero()) {
		return true
	}
	if (a.Y.EqZero() || a.Z.EqZero()) != (b.Y.EqZero() || b.Z.EqZero()) {
		return false
	}
	field := p.curve.field
	bz2 := modSqr(b.Z, field)
	az2 := modSqr(a.Z, field)
	lx := new(safenum.Nat).ModMul(a.X, bz2, field)
	rx := new(safenum.Nat).ModMul(b.X, az2, field)
	if !natEq(lx, rx) {
		return false
	}
	bz3 := new(safenum.Nat).ModMul(bz2, b.Z, field)
	az3 := new(safenum.Nat).ModMul(az2, a.Z, field)
	ly := new(safenum.Nat).ModMul(a.Y, bz3, field)
	ry := new(safenum.Nat).ModMul(b.Y, az3, field)
	return natEq(ly, ry)
}

// ---- doubling ----

// Double returns 2*P, selecting the Z=1 (mdbl-2007-bl) or general
// (dbl-2007-bl) formula. These two cases are kept separate rather than
// collapsed into the general one, since the Z=1 case saves several
// multiplications and is on the hot path for the NAF ladder.
func (p *JacobianPoint) Double() *JacobianPoint {
	out := &JacobianPoint{curve: p.curve}
	out.coords.Store(p.curve.doubleJac(p.load()))
	return out
}

func (c *WeierstrassCurve) doubleJac(in *jacCoords) *jacCoords {
	field := c.field
	XX := modSqr(in.X, field)
	YY := modSqr(in.Y, field)
	if YY.EqZero() {
		return &jacCoords{X: new(safenum.Nat).SetUint64(0), Y: new(safenum.Nat).SetUint64(0), Z: new(safenum.Nat).SetUint64(0)}
	}
	YYYY := modSqr(YY, field)

	xPlusYY := new(safenum.Nat).ModAdd(in.X, YY, field)
	S := modSqr(xPlusYY, field)
	S.ModSub(S, XX, field)
	S.ModSub(S, YYYY, field)
	S.ModAdd(S, S, field) // S = 2*((X+YY)^2 - XX - YYYY)

	three := new(safenum.Nat).SetUint64(3)
	var M *safenum.Nat
	isZ1 := in.Z.Cmp(new(safenum.Nat).SetUint64(1)) == 0
	if isZ1 {
		M = new(safenum.Nat).ModMul(XX, three, field)
		M.ModAdd(M, c.aNat, field)
	} else {
		ZZ := modSqr(in.Z, field)
		ZZZZ := modSqr(ZZ, field)
		aZZZZ := new(safenum.Nat).ModMul(c.aNat, ZZZZ, field)
		M = new(safenum.Nat).ModMul(XX, three, field)
		M.ModAdd(M, aZZZZ, field)
	}

	T := modSqr(M, field)
	twoS := new(safenum.Nat).ModAdd(S, S, field)
	T.ModSub(T, twoS, field)

	X3 := new(safenum.Nat).SetNat(T)

	eightYYYY := new(safenum.Nat).ModAdd(YYYY, YYYY, field)
	eightYYYY.ModAdd(eightYYYY, eightYYYY, field)
	eightYYYY.ModAdd(eightYYYY, eightYYYY, field)

	SMinusT := new(safenum.Nat).ModSub(S, T, field)
	Y3 := new(safenum.Nat).ModMul(M, SMinusT, field)
	Y3.ModSub(Y3, eightYYYY, field)

	var Z3 *safenum.Nat
	if isZ1 {
		Z3 = new(safenum.Nat).ModAdd(in.Y, in.Y, field)
	} else {
		YplusZ := new(safenum.Nat).ModAdd(in.Y, in.Z, field)
		Z3 = modSqr(YplusZ, field)
		Z3.ModSub(Z3, YY, field)
		ZZ := modSqr(in.Z, field)
		Z3.ModSub(Z3, ZZ, field)
	}

	if Y3.EqZero() || Z3.EqZero() {
		return &jacCoords{X: new(safenum.Nat).SetUint64(0), Y: new(safenum.Nat).SetUint64(0), Z: new(safenum.Nat).SetUint64(0)}
	}
	return &jacCoords{X: X3, Y: Y3, Z: Z3}
}

// ---- addition ----

// Add returns P+Q, dispatching on the Z-coordinates of the two operands to
// one of five case-specialized formulas, as required by spec: general
// collapsing loses real multiplications. Each case detects its own
// degenerate "same point" situation and dispatches to Double.
func (p *JacobianPoint) Add(q *JacobianPoint) *JacobianPoint {
	a, b := p.load(), q.load()
	curve := p.curve

	if a.Y.EqZero() || a.Z.EqZero() {
		out := &JacobianPoint{curve: curve, order: q.order}
		out.coords.Store(&jacCoords{X: new(safenum.Nat).SetNat(b.X), Y: new(safenum.Nat).SetNat(b.Y), Z: new(safenum.Nat).SetNat(b.Z)})
		return out
	}
	if b.Y.EqZero() || b.Z.EqZero() {
		out := &JacobianPoint{curve: curve, order: p.order}
		out.coords.Store(&jacCoords{X: new(safenum.Nat).SetNat(a.X), Y: new(safenum.Nat).SetNat(a.Y), Z: new(safenum.Nat).SetNat(a.Z)})
		return out
	}

	one := new(safenum.Nat).SetUint64(1)
	z1IsOne := a.Z.Cmp(one) == 0
	z2IsOne := b.Z.Cmp(one) == 0

	var result *jacCoords
	switch {
	case z1IsOne && z2IsOne:
		result = curve.mmadd(a, b)
	case !z1IsOne && !z2IsOne && natEq(a.Z, b.Z):
		result = curve.zadd(a, b)
	case z1IsOne && !z2IsOne:
		result = curve.madd(b, a)
	case !z1IsOne && z2IsOne:
		result = curve.madd(a, b)
	default:
		result = curve.addGeneral(a, b)
	}

	out := &JacobianPoint{curve: curve}
	out.coords.Store(result)
	return out
}

// mmadd implements mmadd-2007-bl: both inputs have Z=1.
func (c *WeierstrassCurve) mmadd(a, b *jacCoords) *jacCoords {
	field := c.field
	H := new(safenum.Nat).ModSub(b.X, a.X, field)
	r := new(safenum.Nat).ModSub(b.Y, a.Y, field)
	r.ModAdd(r, r, field)

	if H.EqZero() {
		if r.EqZero() {
			return c.doubleJac(a)
		}
		return &jacCoords{X: new(safenum.Nat).SetUint64(0), Y: new(safenum.Nat).SetUint64(0), Z: new(safenum.Nat).SetUint64(0)}
	}

	HH := modSqr(H, field)
	I := new(safenum.Nat).ModAdd(HH, HH, field)
	I.ModAdd(I, I, field)
	J := new(safenum.Nat).ModMul(H, I, field)
	V := new(safenum.Nat).ModMul(a.X, I, field)

	X3 := modSqr(r, field)
	X3.ModSub(X3, J, field)
	X3.ModSub(X3, V, field)
	X3.ModSub(X3, V, field)

	VminusX3 := new(safenum.Nat).ModSub(V, X3, field)
	Y3 := new(safenum.Nat).ModMul(r, VminusX3, field)
	twoY1J := new(safenum.Nat).ModMul(a.Y, J, field)
	twoY1J.ModAdd(twoY1J, twoY1J, field)
	Y3.ModSub(Y3, twoY1J, field)

	Z3 := new(safenum.Nat).ModAdd(H, H, field)

	if Y3.EqZero() || Z3.EqZero() {
		return &jacCoords{X: new(safenum.Nat).SetUint64(0), Y: new(safenum.Nat).SetUint64(0), Z: new(safenum.Nat).SetUint64(0)}
	}
	return &jacCoords{X: X3, Y: Y3, Z: Z3}
}

// zadd implements the same-Z addition (Z1 == Z2 != 1), using the internal
// names A and D given directly in spec: A = (X2-X1)^2, D = (Y2-Y1)^2, both
// zero selects Double.
func (c *WeierstrassCurve) zadd(a, b *jacCoords) *jacCoords {
	field := c.field
	xDiff := new(safenum.Nat).ModSub(b.X, a.X, field)
	yDiff := new(safenum.Nat).ModSub(b.Y, a.Y, field)
	A := modSqr(xDiff, field)
	D := modSqr(yDiff, field)

	if A.EqZero() {
		if D.EqZero() {
			return c.doubleJac(a)
		}
		return &jacCoords{X: new(safenum.Nat).SetUint64(0), Y: new(safenum.Nat).SetUint64(0), Z: new(safenum.Nat).SetUint64(0)}
	}

	B := new(safenum.Nat).ModMul(a.X, A, field)
	C := new(safenum.Nat).ModMul(b.X, A, field)

	X3 := new(safenum.Nat).ModSub(D, B, field)
	X3.ModSub(X3, C, field)

	BminusX3 := new(safenum.Nat).ModSub(B, X3, field)
	Y3 := new(safenum.Nat).ModMul(yDiff, BminusX3, field)
	CminusB := new(safenum.Nat).ModSub(C, B, field)
	y1CminusB := new(safenum.Nat).ModMul(a.Y, CminusB, field)
	Y3.ModSub(Y3, y1CminusB, field)

	Z3 := new(safenum.Nat).ModMul(a.Z, xDiff, field)

	if Y3.EqZero() || Z3.EqZero() {
		return &jacCoords{X: new(safenum.Nat).SetUint64(0), Y: new(safenum.Nat).SetUint64(0), Z: new(safenum.Nat).SetUint64(0)}
	}
	return &jacCoords{X: X3, Y: Y3, Z: Z3}
}

// madd implements madd-2007-bl: exactly one input has Z=1, passed as z1pt
// (general Z) and z1One (the Z=1 operand), matching the spec's convention of
// passing the Z=1 operand second.
func (c *WeierstrassCurve) madd(z1pt, z1One *jacCoords) *jacCoords {
	field := c.field
	Z1Z1 := modSqr(z1pt.Z, field)
	U2 := new(safenum.Nat).ModMul(z1One.X, Z1Z1, field)
	S2 := new(safenum.Nat).ModMul(z1One.Y, z1pt.Z, field)
	S2.ModMul(S2, Z1Z1, field)

	H := new(safenum.Nat).ModSub(U2, z1pt.X, field)
	r := new(safenum.Nat).ModSub(S2, z1pt.Y, field)
	r.ModAdd(r, r, field)

	if H.EqZero() {
		if r.EqZero() {
			return c.doubleJac(z1pt)
		}
		return &jacCoords{X: new(safenum.Nat).SetUint64(0), Y: new(safenum.Nat).SetUint64(0), Z: new(safenum.Nat).SetUint64(0)}
	}

	HH := modSqr(H, field)
	I := new(safenum.Nat).ModAdd(HH, HH, field)
	I.ModAdd(I, I, field)
	J := new(safenum.Nat).ModMul(H, I, field)
	V := new(safenum.Nat).ModMul(z1pt.X, I, field)

	X3 := modSqr(r, field)
	X3.ModSub(X3, J, field)
	X3.ModSub(X3, V, field)
	X3.ModSub(X3, V, field)

	VminusX3 := new(safenum.Nat).ModSub(V, X3, field)
	Y3 := new(safenum.Nat).ModMul(r, VminusX3, field)
	twoY1J := new(safenum.Nat).ModMul(z1pt.Y, J, field)
	twoY1J.ModAdd(twoY1J, twoY1J, field)
	Y3.ModSub(Y3, twoY1J, field)

	ZplusH := new(safenum.Nat).ModAdd(z1pt.Z, H, field)
	Z3 := modSqr(ZplusH, field)
	Z3.ModSub(Z3, Z1Z1, field)
	Z3.ModSub(Z3, HH, field)

	if Y3.EqZero() || Z3.EqZero() {
		return &jacCoords{X: new(safenum.Nat).SetUint64(0), Y: new(safenum.Nat).SetUint64(0), Z: new(safenum.Nat).SetUint64(0)}
	}
	return &jacCoords{X: X3, Y: Y3, Z: Z3}
}

// addGeneral implements add-2007-bl, the fully general case, ported and
// generalized from the teacher's single addJacobian to this curve's
// safenum-backed field.
func (c *WeierstrassCurve) addGeneral(a, b *jacCoords) *jacCoords {
	field := c.field
	Z1Z1 := modSqr(a.Z, field)
	Z2Z2 := modSqr(b.Z, field)

	U1 := new(safenum.Nat).ModMul(a.X, Z2Z2, field)
	U2 := new(safenum.Nat).ModMul(b.X, Z1Z1, field)
	H := new(safenum.Nat).ModSub(U2, U1, field)

	S1 := new(safenum.Nat).ModMul(a.Y, b.Z, field)
	S1.ModMul(S1, Z2Z2, field)
	S2 := new(safenum.Nat).ModMul(b.Y, a.Z, field)
	S2.ModMul(S2, Z1Z1, field)
	r := new(safenum.Nat).ModSub(S2, S1, field)

	if H.EqZero() {
		if r.EqZero() {
			return c.doubleJac(a)
		}
		return &jacCoords{X: new(safenum.Nat).SetUint64(0), Y: new(safenum.Nat).SetUint64(0), Z: new(safenum.Nat).SetUint64(0)}
	}

	I := new(safenum.Nat).ModAdd(H, H, field)
	I = modSqr(I, field)
	J := new(safenum.Nat).ModMul(H, I, field)
	V := new(safenum.Nat).ModMul(U1, I, field)
	r.ModAdd(r, r, field)

	X3 := modSqr(r, field)
	X3.ModSub(X3, J, field)
	X3.ModSub(X3, V, field)
	X3.ModSub(X3, V, field)

	VminusX3 := new(safenum.Nat).ModSub(V, X3, field)
	Y3 := new(safenum.Nat).ModMul(r, VminusX3, field)
	S1J := new(safenum.Nat).ModMul(S1, J, field)
	S1J.ModAdd(S1J, S1J, field)
	Y3.ModSub(Y3, S1J, field)

	Z3 := new(safenum.Nat).ModAdd(a.Z, b.Z, field)
	Z3 = modSqr(Z3, field)
	Z3.ModSub(Z3, Z1Z1, field)
	Z3.ModSub(Z3, Z2Z2, field)
	Z3.ModMul(Z3, H, field)

	if Y3.EqZero() || Z3.EqZero() {
		return &jacCoords{X: new(safenum.Nat).SetUint64(0), Y: new(safenum.Nat).SetUint64(0), Z: new(safenum.Nat).SetUint64(0)}
	}
	return &jacCoords{X: X3, Y: Y3, Z: Z3}
}

// ---- scalar multiplication ----

var two = big.NewInt(2)

// ScalarMultiply computes k*P. k may be negative, using the contract
// k*P = (-k)*(-P). When the point has a known order, k is reduced modulo
// 2*order rather than order, preserving the bit width of the representation
// (the "Minerva" defense: mod-order reduction would leak whether the
// unreduced top bit was set through timing).
func (p *JacobianPoint) ScalarMultiply(k *big.Int) *JacobianPoint {
	if p.IsInfinity() || k.Sign() == 0 {
		return jacobianInfinity(p.curve)
	}
	if k.Sign() < 0 {
		return p.Negate().ScalarMultiply(new(big.Int).Neg(k))
	}
	if k.Cmp(big.NewInt(1)) == 0 {
		out := &JacobianPoint{curve: p.curve, order: p.order, generator: p.generator}
		c := p.load()
		out.coords.Store(&jacCoords{X: new(safenum.Nat).SetNat(c.X), Y: new(safenum.Nat).SetNat(c.Y), Z: new(safenum.Nat).SetNat(c.Z)})
		return out
	}

	kk := new(big.Int).Set(k)
	if p.order != nil {
		twoOrder := new(big.Int).Mul(p.order, two)
		kk.Mod(kk, twoOrder)
	}

	if table := p.precomputeTable(); table != nil {
		return p.fastMultiply(kk, table)
	}

	p.Scale()
	digits := reverseDigits(nafDigits(kk))
	acc := jacobianInfinity(p.curve)
	for _, d := range digits {
		acc = acc.Double()
		switch d {
		case 1:
			acc = acc.Add(p)
		case -1:
			acc = acc.Add(p.Negate())
		}
	}
	return acc
}

// ---- generator precomputation ----

// precomputeTable returns the point's precomputation table, building it on
// first use if the point is generator-flagged and its order is known.
// Publication is a single atomic compare-and-swap: a racing caller that
// loses the race discards its (identical) computation rather than blocking,
// matching spec's no-locking design.
func (p *JacobianPoint) precomputeTable() []affinePair {
	if !p.generator || p.order == nil {
		return nil
	}
	if t := p.precomp.Load(); t != nil {
		return *t
	}
	table := p.buildPrecompute()
	p.precomp.CompareAndSwap(nil, &table)
	return *p.precomp.Load()
}

// buildPrecompute builds the doubling table: the bound m = 4*order covers
// the scalars fastMultiply receives (below 2*order after the Minerva
// reduction) plus one bit of headroom for the final NAF carry, and the table
// holds the affine coordinates of 2^i*P for i = 0, 1, ..., ceil(log2(m)).
func (p *JacobianPoint) buildPrecompute() []affinePair {
	m := new(big.Int).Mul(p.order, two)
	m.Mul(m, two)

	var table []affinePair

	doubler := p.load()
	table = append(table, affinePair{X: new(safenum.Nat).SetNat(doubler.X), Y: new(safenum.Nat).SetNat(doubler.Y)})

	i := big.NewInt(1)
	for i.Cmp(m) < 0 {
		doubler = p.curve.doubleJac(doubler)
		doubler = p.curve.scaleJac(doubler)
		table = append(table, affinePair{X: new(safenum.Nat).SetNat(doubler.X), Y: new(safenum.Nat).SetNat(doubler.Y)})
		i.Lsh(i, 1)
	}
	return table
}

// scaleJac is the free-function form of Scale, used internally while
// building the precomputation table where there is no JacobianPoint wrapper
// to mutate.
func (c *WeierstrassCurve) scaleJac(in *jacCoords) *jacCoords {
	field := c.field
	if in.Z.Cmp(new(safenum.Nat).SetUint64(1)) == 0 {
		return in
	}
	zinv := new(safenum.Nat).ModInverse(in.Z, field)
	zinv2 := modSqr(zinv, field)
	zinv3 := new(safenum.Nat).ModMul(zinv2, zinv, field)
	return &jacCoords{
		X: new(safenum.Nat).ModMul(in.X, zinv2, field),
		Y: new(safenum.Nat).ModMul(in.Y, zinv3, field),
		Z: new(safenum.Nat).SetUint64(1),
	}
}

// fastMultiply walks k one bit at a time using a mod-4 lookahead to decide
// each signed NAF digit, consuming one precomputed table entry (2^idx*P)
// per round, so the ladder needs no further point doublings at all.
func (p *JacobianPoint) fastMultiply(k *big.Int, table []affinePair) *JacobianPoint {
	k = new(big.Int).Set(k)
	acc := jacobianInfinity(p.curve)
	four := big.NewInt(4)

	for idx := 0; k.Sign() > 0 && idx < len(table); idx++ {
		entry := table[idx]
		if k.Bit(0) == 1 {
			mod4 := new(big.Int).Mod(k, four)
			if mod4.Cmp(two) >= 0 {
				k.Add(k, big.NewInt(1))
				k.Div(k, two)
				acc = acc.addAffineNat(entry.X, modNeg(entry.Y, p.curve.field))
			} else {
				k.Sub(k, big.NewInt(1))
				k.Div(k, two)
				acc = acc.addAffineNat(entry.X, entry.Y)
			}
		} else {
			k.Div(k, two)
		}
	}
	return acc
}

// addAffineNat adds an affine (Z=1) point given directly as safenum.Nat
// coordinates, used by fastMultiply to add precomputed table entries
// without building a *JacobianPoint for each one first.
func (p *JacobianPoint) addAffineNat(x, y *safenum.Nat) *JacobianPoint {
	other := &jacCoords{X: new(safenum.Nat).SetNat(x), Y: new(safenum.Nat).SetNat(y), Z: new(safenum.Nat).SetUint64(1)}
	wrapped := &JacobianPoint{curve: p.curve}
	wrapped.coords.Store(other)
	return p.Add(wrapped)
}
