package elliptic

import (
	"math/big"
	"testing"
)

func TestAffineAddSamePointDoubles(t *testing.T) {
	curve := toyCurve()
	g := NewAffinePoint(curve, big.NewInt(1), big.NewInt(5), toyOrder)
	if !g.Add(g).Equal(g.Double()) {
		t.Fatalf("P+P must equal Double(P)")
	}
}

func TestAffineAddNegationIsInfinity(t *testing.T) {
	curve := toyCurve()
	g := NewAffinePoint(curve, big.NewInt(1), big.NewInt(5), toyOrder)
	if !g.Add(g.Negate()).IsInfinity() {
		t.Fatalf("P+(-P) must be infinity")
	}
}

func TestAffineInfinityIsIdentity(t *testing.T) {
	curve := toyCurve()
	g := NewAffinePoint(curve, big.NewInt(1), big.NewInt(5), toyOrder)
	if !g.Add(Infinity).Equal(g) {
		t.Fatalf("P+infinity must equal P")
	}
	if !Infinity.Add(g).Equal(g) {
		t.Fatalf("infinity+P must equal P")
	}
}

func TestAffineMultiplyByOrderIsInfinity(t *testing.T) {
	curve := toyCurve()
	g := NewAffinePoint(curve, big.NewInt(1), big.NewInt(5), toyOrder)
	if !g.Multiply(toyOrder).IsInfinity() {
		t.Fatalf("order*G must be infinity")
	}
}

func TestAffineMultiplyMatchesRepeatedAddition(t *testing.T) {
	curve := toyCurve()
	g := NewAffinePoint(curve, big.NewInt(1), big.NewInt(5), toyOrder)

	acc := Infinity
	for k := int64(0); k < 20; k++ {
		got := g.Multiply(big.NewInt(k))
		if !got.Equal(acc) {
			t.Fatalf("k=%d: Multiply = (%v,%v), repeated-add = (%v,%v)", k, got.X, got.Y, acc.X, acc.Y)
		}
		acc = acc.Add(g)
	}
}

func TestAffineMultiplyNegativeScalar(t *testing.T) {
	curve := toyCurve()
	g := NewAffinePoint(curve, big.NewInt(1), big.NewInt(5), toyOrder)
	p := g.Multiply(big.NewInt(9))
	negP := g.Multiply(big.NewInt(-9))
	if !p.Negate().Equal(negP) {
		t.Fatalf("(-k)*P must equal -(k*P)")
	}
}

func TestNewAffinePointPanicsOffCurve(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic constructing an off-curve point")
		}
	}()
	curve := toyCurve()
	NewAffinePoint(curve, big.NewInt(2), big.NewInt(3), nil)
}

func TestAffineToJacobianRoundTrips(t *testing.T) {
	curve := toyCurve()
	g := NewAffinePoint(curve, big.NewInt(1), big.NewInt(5), toyOrder)
	back := g.ToJacobian().ToAffine()
	if !back.Equal(g) {
		t.Fatalf("affine -> jacobian -> affine must round-trip")
	}
}
