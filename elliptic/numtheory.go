package elliptic

import (
	"errors"
	"fmt"
	"math/big"
)

// errNotASquare is returned by sqrtModPrime when a has no square root modulo p.
var errNotASquare = errors.New("elliptic: value is not a quadratic residue")

// inverseMod returns a^-1 mod m. Callers must ensure gcd(a, m) == 1.
func inverseMod(a, m *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, m)
}

// sqrtModPrime returns a value beta with beta^2 == a (mod p), or errNotASquare
// if a has no square root modulo the prime p.
func sqrtModPrime(a, p *big.Int) (*big.Int, error) {
	beta := new(big.Int).ModSqrt(a, p)
	if beta == nil {
		return nil, fmt.Errorf("%w: %s has no square root mod %s", errNotASquare, a, p)
	}
	return beta, nil
}

// orderLen returns ceil(bitlen(n)/8), the number of bytes needed to hold n in
// big-endian form.
func orderLen(n *big.Int) int {
	return (n.BitLen() + 7) / 8
}

// numberToString renders n as big-endian bytes, zero-padded to orderLen(maxVal).
func numberToString(n, maxVal *big.Int) []byte {
	out := make([]byte, orderLen(maxVal))
	return n.FillBytes(out)
}

// stringToNumber parses big-endian bytes into a nonnegative integer.
func stringToNumber(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}
