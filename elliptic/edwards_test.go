package elliptic

import (
	"math/big"
	"testing"
)

func TestEdwardsDoubleMatchesAdd(t *testing.T) {
	_, g := Ed25519()
	if !g.Double().Equal(g.Add(g)) {
		t.Fatalf("Double(P) must equal P+P")
	}
}

func TestEdwardsAddIdentity(t *testing.T) {
	curve, _ := Ed25519()
	id := edwardsIdentity(curve)
	_, g := Ed25519()
	if !g.Add(id).Equal(g) {
		t.Fatalf("P+identity must equal P")
	}
	if !id.Add(g).Equal(g) {
		t.Fatalf("identity+P must equal P")
	}
}

func TestEdwardsAddNegationIsIdentity(t *testing.T) {
	_, g := Ed25519()
	sum := g.Add(g.Negate())
	if !sum.IsInfinity() {
		t.Fatalf("P+(-P) must be the identity")
	}
}

func TestEdwardsScalarMultiplyMatchesRepeatedAddition(t *testing.T) {
	_, g := Ed25519()
	acc := edwardsIdentity(g.Curve())
	for k := int64(0); k < 12; k++ {
		got := g.ScalarMultiply(big.NewInt(k))
		if !got.Equal(acc) {
			t.Fatalf("k=%d: ScalarMultiply disagrees with repeated addition", k)
		}
		acc = acc.Add(g)
	}
}

func TestEdwardsScalarMultiplyByOrderIsIdentity(t *testing.T) {
	_, g := Ed25519()
	result := g.ScalarMultiply(ed25519Order)
	if !result.IsInfinity() {
		t.Fatalf("order*G must be the identity")
	}
}

func TestEdwardsScalarMultiplyNegative(t *testing.T) {
	_, g := Ed25519()
	p := g.ScalarMultiply(big.NewInt(5))
	negP := g.ScalarMultiply(big.NewInt(-5))
	if !p.Negate().Equal(negP) {
		t.Fatalf("(-k)*P must equal -(k*P)")
	}
}

func TestEdwardsBasePointIsOnCurve(t *testing.T) {
	curve, g := Ed25519()
	x, y := g.X(), g.Y()
	if !curve.Contains(x, y) {
		t.Fatalf("edwards25519 base point must satisfy the curve equation")
	}
}

func TestEdwardsEqualIgnoresZScaling(t *testing.T) {
	curve, g := Ed25519()
	doubled := g.Double()
	rescaled := NewEdwardsPoint(curve, doubled.X(), doubled.Y(), nil)
	if !doubled.Equal(rescaled) {
		t.Fatalf("equal points with different internal Z must compare equal")
	}
}
