package elliptic

import "math/big"

// nafDigits returns the non-adjacent form of the nonnegative integer k: a
// signed-digit sequence d_i in {-1, 0, +1}, least-significant first, with
// k == sum(d_i * 2^i) and no two adjacent digits both nonzero.
//
// k is consumed by value (a copy is taken internally); the caller's k is left
// untouched.
func nafDigits(k *big.Int) []int8 {
	k = new(big.Int).Set(k)
	var digits []int8

	four := big.NewInt(4)
	two := big.NewInt(2)
	mod4 := new(big.Int)

	for k.Sign() != 0 {
		var nd int8
		if k.Bit(0) == 1 {
			mod4.Mod(k, four)
			n := mod4.Int64()
			if n >= 2 {
				n -= 4
			}
			nd = int8(n)
			k.Sub(k, big.NewInt(n))
		}
		digits = append(digits, nd)
		k.Div(k, two)
	}
	return digits
}

// reverseDigits returns the NAF digits in most-significant-first order, as
// consumed by the double-and-add scalar multiplication ladders.
func reverseDigits(digits []int8) []int8 {
	out := make([]int8, len(digits))
	for i, d := range digits {
		out[len(digits)-1-i] = d
	}
	return out
}

// padLeft left-pads a (MSB-first) NAF digit sequence with zero digits so it
// has at least n digits, used to align the shorter of two NAF sequences in
// the simultaneous double-and-add scan used by MulAdd.
func padLeft(digits []int8, n int) []int8 {
	if len(digits) >= n {
		return digits
	}
	out := make([]int8, n)
	copy(out[n-len(digits):], digits)
	return out
}
