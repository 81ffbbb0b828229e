package elliptic

import (
	"math/big"
	"testing"
)

// toyCurve and toyOrder/toyGenerator mirror a small Weierstrass curve used widely
// for hand-checkable arithmetic: y^2 = x^3 + 4x + 20 (mod 29), with base
// point (1, 5) of order 37.
func toyCurve() *WeierstrassCurve {
	return NewWeierstrassCurve(big.NewInt(29), big.NewInt(4), big.NewInt(20), big.NewInt(1))
}

var toyOrder = big.NewInt(37)

func toyGenerator(curve *WeierstrassCurve) *JacobianPoint {
	return NewGeneratorPoint(curve, big.NewInt(1), big.NewInt(5), toyOrder)
}

func TestJacobianDoubleMatchesAffine(t *testing.T) {
	curve := toyCurve()
	g := toyGenerator(curve)
	aff := NewAffinePoint(curve, big.NewInt(1), big.NewInt(5), toyOrder)

	got := g.Double().ToAffine()
	want := aff.Double()
	if !got.Equal(want) {
		t.Fatalf("jacobian double = (%s, %s), want (%s, %s)", got.X, got.Y, want.X, want.Y)
	}
}

func TestJacobianAddCasesAgree(t *testing.T) {
	curve := toyCurve()
	g := toyGenerator(curve)
	affG := g.ToAffine()

	// mmadd: both operands Z=1.
	gDouble := g.Double()
	mmaddResult := g.Add(gDouble.ToAffine().ToJacobian())
	wantMM := affG.Add(gDouble.ToAffine())
	if !mmaddResult.ToAffine().Equal(wantMM) {
		t.Fatalf("mmadd result disagrees with affine addition")
	}

	// general: neither operand has Z=1 (un-rescaled doublings of G).
	a := g.Double().Double()
	b := g.Double().Double().Double()
	generalResult := a.Add(b)
	wantGeneral := a.ToAffine().Add(b.ToAffine())
	if !generalResult.ToAffine().Equal(wantGeneral) {
		t.Fatalf("general add result disagrees with affine addition")
	}

	// madd: exactly one operand has Z=1. a was scaled to Z=1 by ToAffine
	// above, so a fresh un-rescaled point is used.
	c := g.Double().Double()
	maddResult := c.Add(g)
	wantMadd := c.ToAffine().Add(affG)
	if !maddResult.ToAffine().Equal(wantMadd) {
		t.Fatalf("madd result disagrees with affine addition")
	}
}

func TestJacobianScalarMultiplyMatchesAffine(t *testing.T) {
	curve := toyCurve()
	g := toyGenerator(curve)
	affG := NewAffinePoint(curve, big.NewInt(1), big.NewInt(5), toyOrder)

	for k := int64(0); k < 40; k++ {
		kb := big.NewInt(k)
		got := g.ScalarMultiply(kb).ToAffine()
		want := affG.Multiply(kb)
		if !got.Equal(want) {
			t.Fatalf("k=%d: jacobian scalar mult = (%v,%v), affine = (%v,%v)", k, got.X, got.Y, want.X, want.Y)
		}
	}
}

func TestJacobianScalarMultiplyNegative(t *testing.T) {
	curve := toyCurve()
	g := toyGenerator(curve)

	p := g.ScalarMultiply(big.NewInt(7))
	negP := g.ScalarMultiply(big.NewInt(-7))
	if !p.Negate().ToAffine().Equal(negP.ToAffine()) {
		t.Fatalf("scalar mult by -k should equal negation of k*P")
	}
}

func TestJacobianScalarMultiplyZeroIsInfinity(t *testing.T) {
	curve := toyCurve()
	g := toyGenerator(curve)
	if !g.ScalarMultiply(big.NewInt(0)).IsInfinity() {
		t.Fatalf("0*P must be infinity")
	}
}

func TestJacobianEqualIgnoresZScaling(t *testing.T) {
	curve := toyCurve()
	g := toyGenerator(curve)
	doubled := g.Double()
	doubledAgainScaled := g.Double()
	doubledAgainScaled.Scale()
	if !doubled.Equal(doubledAgainScaled) {
		t.Fatalf("equal points with different Z must compare equal")
	}
}

func TestJacobianPrecomputeAgreesWithNAFLadder(t *testing.T) {
	curve := toyCurve()
	gen := toyGenerator(curve)
	plain := NewJacobianPoint(curve, big.NewInt(1), big.NewInt(5), toyOrder)

	for k := int64(1); k < 40; k++ {
		kb := big.NewInt(k)
		fast := gen.ScalarMultiply(kb)
		slow := plain.ScalarMultiply(kb)
		if !fast.ToAffine().Equal(slow.ToAffine()) {
			t.Fatalf("k=%d: precomputed table path disagrees with NAF ladder", k)
		}
	}
}

func TestJacobianGeneratorPrecomputeIsIdempotentUnderConcurrentUse(t *testing.T) {
	curve := toyCurve()
	gen := toyGenerator(curve)

	done := make(chan *JacobianPoint, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- gen.ScalarMultiply(big.NewInt(23))
		}()
	}
	var first *AffinePoint
	for i := 0; i < 8; i++ {
		r := (<-done).ToAffine()
		if first == nil {
			first = r
			continue
		}
		if !first.Equal(r) {
			t.Fatalf("concurrent ScalarMultiply calls raced to different answers")
		}
	}
}

func TestNISTP256BasePointIsOnCurve(t *testing.T) {
	curve, gen := NISTP256()
	aff := gen.ToAffine()
	if !curve.Contains(aff.X, aff.Y) {
		t.Fatalf("P-256 base point must satisfy the curve equation")
	}
}

func TestNISTP256OrderTimesGeneratorIsInfinity(t *testing.T) {
	_, gen := NISTP256()
	result := gen.ScalarMultiply(nistP256Order)
	if !result.IsInfinity() {
		t.Fatalf("order*G must be infinity")
	}
}
