package elliptic

import (
	"errors"
	"math/big"
	"testing"
)

func TestSqrtModPrimeRoundTrips(t *testing.T) {
	p := big.NewInt(29)
	for x := int64(1); x < 29; x++ {
		alpha := new(big.Int).Mul(big.NewInt(x), big.NewInt(x))
		alpha.Mod(alpha, p)
		beta, err := sqrtModPrime(alpha, p)
		if err != nil {
			t.Fatalf("x=%d: sqrtModPrime: %v", x, err)
		}
		check := new(big.Int).Mul(beta, beta)
		check.Mod(check, p)
		if check.Cmp(alpha) != 0 {
			t.Fatalf("x=%d: sqrt(%v)^2 = %v, want %v", x, alpha, check, alpha)
		}
	}
}

func TestSqrtModPrimeRejectsNonResidue(t *testing.T) {
	p := big.NewInt(29)
	// 2 is not a quadratic residue mod 29.
	_, err := sqrtModPrime(big.NewInt(2), p)
	if !errors.Is(err, errNotASquare) {
		t.Fatalf("expected errNotASquare, got %v", err)
	}
}

func TestNumberToStringStringToNumberRoundTrip(t *testing.T) {
	p := big.NewInt(29)
	n := big.NewInt(17)
	encoded := numberToString(n, p)
	if len(encoded) != orderLen(p) {
		t.Fatalf("numberToString length = %d, want %d", len(encoded), orderLen(p))
	}
	decoded := stringToNumber(encoded)
	if decoded.Cmp(n) != 0 {
		t.Fatalf("round trip = %v, want %v", decoded, n)
	}
}
