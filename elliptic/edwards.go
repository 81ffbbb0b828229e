package elliptic

import (
	"math/big"

	"github.com/cronokirby/safenum"
)

// EdwardsPoint is a twisted-Edwards curve point in extended coordinates
// (x, y, z, t) with X = x/z, Y = y/z, T = x*y/z, preserving the invariant
// x*y == t*z (mod p). The identity element is (0, 1, 1, 0).
type EdwardsPoint struct {
	curve      *EdwardsCurve
	x, y, z, t *safenum.Nat
	order      *big.Int
}

// NewEdwardsPoint builds a point from affine (X, Y), with z=1 and t=X*Y.
func NewEdwardsPoint(curve *EdwardsCurve, X, Y *big.Int, order *big.Int) *EdwardsPoint {
	xm := new(big.Int).Mod(X, curve.P)
	ym := new(big.Int).Mod(Y, curve.P)
	tm := new(big.Int).Mul(xm, ym)
	tm.Mod(tm, curve.P)
	return &EdwardsPoint{
		curve: curve,
		x:     natFromBig(xm),
		y:     natFromBig(ym),
		z:     new(safenum.Nat).SetUint64(1),
		t:     natFromBig(tm),
		order: order,
	}
}

// edwardsIdentity returns the extended-coordinate identity (0, 1, 1, 0).
func edwardsIdentity(curve *EdwardsCurve) *EdwardsPoint {
	return &EdwardsPoint{
		curve: curve,
		x:     new(safenum.Nat).SetUint64(0),
		y:     new(safenum.Nat).SetUint64(1),
		z:     new(safenum.Nat).SetUint64(1),
		t:     new(safenum.Nat).SetUint64(0),
	}
}

// Curve returns the point's curve.
func (p *EdwardsPoint) Curve() *EdwardsCurve { return p.curve }

// Order returns the point's known order, or nil.
func (p *EdwardsPoint) Order() *big.Int { return p.order }

// IsInfinity reports whether p is the identity: any result with x=0 or t=0
// collapses to the canonical identity representation.
func (p *EdwardsPoint) IsInfinity() bool {
	return p.x.EqZero() || p.t.EqZero()
}

// affine computes (X, Y) = (x/z, y/z).
func (p *EdwardsPoint) affine() (X, Y *big.Int) {
	field := p.curve.field
	zinv := new(safenum.Nat).ModInverse(p.z, field)
	xNat := new(safenum.Nat).ModMul(p.x, zinv, field)
	yNat := new(safenum.Nat).ModMul(p.y, zinv, field)
	return bigFromNat(xNat), bigFromNat(yNat)
}

// X returns the affine X-coordinate.
func (p *EdwardsPoint) X() *big.Int { x, _ := p.affine(); return x }

// Y returns the affine Y-coordinate.
func (p *EdwardsPoint) Y() *big.Int { _, y := p.affine(); return y }

// Equal cross-multiplies by z to eliminate divisions: x1*z2 == x2*z1 and
// y1*z2 == y2*z1 (mod p).
func (p *EdwardsPoint) Equal(o *EdwardsPoint) bool {
	if !p.curve.Equal(o.curve) {
		return false
	}
	if p.IsInfinity() && o.IsInfinity() {
		return true
	}
	if p.IsInfinity() != o.IsInfinity() {
		return false
	}
	field := p.curve.field
	lx := new(safenum.Nat).ModMul(p.x, o.z, field)
	rx := new(safenum.Nat).ModMul(o.x, p.z, field)
	if !natEq(lx, rx) {
		return false
	}
	ly := new(safenum.Nat).ModMul(p.y, o.z, field)
	ry := new(safenum.Nat).ModMul(o.y, p.z, field)
	return natEq(ly, ry)
}

// Negate returns (-x, y, z, -t).
func (p *EdwardsPoint) Negate() *EdwardsPoint {
	field := p.curve.field
	return &EdwardsPoint{
		curve: p.curve,
		x:     modNeg(p.x, field),
		y:     new(safenum.Nat).SetNat(p.y),
		z:     new(safenum.Nat).SetNat(p.z),
		t:     modNeg(p.t, field),
		order: p.order,
	}
}

// Double implements dbl-2008-hwcd.
func (p *EdwardsPoint) Double() *EdwardsPoint {
	field := p.curve.field
	A := modSqr(p.x, field)
	B := modSqr(p.y, field)
	C := modSqr(p.z, field)
	C.ModAdd(C, C, field)
	D := new(safenum.Nat).ModMul(p.curve.aNat, A, field)

	xPlusY := new(safenum.Nat).ModAdd(p.x, p.y, field)
	E := modSqr(xPlusY, field)
	E.ModSub(E, A, field)
	E.ModSub(E, B, field)

	G := new(safenum.Nat).ModAdd(D, B, field)
	F := new(safenum.Nat).ModSub(G, C, field)
	H := new(safenum.Nat).ModSub(D, B, field)

	x3 := new(safenum.Nat).ModMul(E, F, field)
	y3 := new(safenum.Nat).ModMul(G, H, field)
	t3 := new(safenum.Nat).ModMul(E, H, field)
	z3 := new(safenum.Nat).ModMul(F, G, field)

	return collapseIfDegenerate(p.curve, x3, y3, z3, t3)
}

// Add implements add-2008-hwcd-2, dispatching to Double on the degenerate
// case H = D-C = 0, exactly as spec names it.
func (p *EdwardsPoint) Add(q *EdwardsPoint) *EdwardsPoint {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}
	field := p.curve.field

	A := new(safenum.Nat).ModMul(p.x, q.x, field)
	B := new(safenum.Nat).ModMul(p.y, q.y, field)
	C := new(safenum.Nat).ModMul(p.z, q.t, field)
	D := new(safenum.Nat).ModMul(p.t, q.z, field)

	H := new(safenum.Nat).ModSub(D, C, field)
	if H.EqZero() {
		return p.Double()
	}

	E := new(safenum.Nat).ModAdd(D, C, field)

	xMinusY := new(safenum.Nat).ModSub(p.x, p.y, field)
	qxPlusQy := new(safenum.Nat).ModAdd(q.x, q.y, field)
	F := new(safenum.Nat).ModMul(xMinusY, qxPlusQy, field)
	F.ModAdd(F, B, field)
	F.ModSub(F, A, field)

	aA := new(safenum.Nat).ModMul(p.curve.aNat, A, field)
	G := new(safenum.Nat).ModAdd(B, aA, field)

	// add-2008-hwcd-2: x3 = E*F, y3 = G*H, t3 = E*H, z3 = F*G.
	x3 := new(safenum.Nat).ModMul(E, F, field)
	y3 := new(safenum.Nat).ModMul(G, H, field)
	t3 := new(safenum.Nat).ModMul(E, H, field)
	z3 := new(safenum.Nat).ModMul(F, G, field)

	return collapseIfDegenerate(p.curve, x3, y3, z3, t3)
}

func collapseIfDegenerate(curve *EdwardsCurve, x, y, z, t *safenum.Nat) *EdwardsPoint {
	if x.EqZero() || t.EqZero() {
		return edwardsIdentity(curve)
	}
	return &EdwardsPoint{curve: curve, x: x, y: y, z: z, t: t}
}

// ScalarMultiply computes k*P via the NAF ladder, MSB-first, with the same
// 2*order Minerva-style reduction as the Jacobian ladder when order is
// known.
func (p *EdwardsPoint) ScalarMultiply(k *big.Int) *EdwardsPoint {
	if p.IsInfinity() || k.Sign() == 0 {
		return edwardsIdentity(p.curve)
	}
	if k.Sign() < 0 {
		return p.Negate().ScalarMultiply(new(big.Int).Neg(k))
	}
	if k.Cmp(big.NewInt(1)) == 0 {
		return &EdwardsPoint{
			curve: p.curve,
			x:     new(safenum.Nat).SetNat(p.x),
			y:     new(safenum.Nat).SetNat(p.y),
			z:     new(safenum.Nat).SetNat(p.z),
			t:     new(safenum.Nat).SetNat(p.t),
			order: p.order,
		}
	}

	kk := new(big.Int).Set(k)
	if p.order != nil {
		twoOrder := new(big.Int).Mul(p.order, two)
		kk.Mod(kk, twoOrder)
	}

	digits := reverseDigits(nafDigits(kk))
	acc := edwardsIdentity(p.curve)
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
