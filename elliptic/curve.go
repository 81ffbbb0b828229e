package elliptic

import (
	"math/big"

	"github.com/cronokirby/safenum"
)

// WeierstrassCurve carries the immutable domain parameters of a
// short-Weierstrass curve y^2 = x^3 + a*x + b (mod p). It is constructed once
// per curve and shared by reference; it is never mutated after construction.
type WeierstrassCurve struct {
	P *big.Int
	A *big.Int
	B *big.Int
	H *big.Int // cofactor; nil means 1

	field *safenum.Modulus
	aNat  *safenum.Nat
	bNat  *safenum.Nat
}

// NewWeierstrassCurve builds a curve from (p, a, b, h). a and b are reduced
// mod p. h may be nil, meaning a cofactor of 1.
func NewWeierstrassCurve(p, a, b, h *big.Int) *WeierstrassCurve {
	aMod := new(big.Int).Mod(a, p)
	bMod := new(big.Int).Mod(b, p)

	field := safenum.ModulusFromNat(new(safenum.Nat).SetBytes(p.Bytes()))
	return &WeierstrassCurve{
		P:     p,
		A:     aMod,
		B:     bMod,
		H:     h,
		field: field,
		aNat:  new(safenum.Nat).SetBytes(aMod.Bytes()),
		bNat:  new(safenum.Nat).SetBytes(bMod.Bytes()),
	}
}

// Contains reports whether (x, y) satisfies y^2 == x^3 + a*x + b (mod p).
func (c *WeierstrassCurve) Contains(x, y *big.Int) bool {
	p := c.P
	lhs := new(big.Int).Mul(y, y)
	lhs.Mod(lhs, p)

	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)
	ax := new(big.Int).Mul(c.A, x)
	rhs.Add(rhs, ax)
	rhs.Add(rhs, c.B)
	rhs.Mod(rhs, p)

	return lhs.Cmp(rhs) == 0
}

// Equal compares (p, a mod p, b mod p); the cofactor is excluded because it
// is domain metadata, not part of the group's identity.
func (c *WeierstrassCurve) Equal(o *WeierstrassCurve) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return c.P.Cmp(o.P) == 0 && c.A.Cmp(o.A) == 0 && c.B.Cmp(o.B) == 0
}

// EdwardsCurve carries the immutable domain parameters of a twisted-Edwards
// curve a*x^2 + y^2 = 1 + d*x^2*y^2 (mod p).
type EdwardsCurve struct {
	P *big.Int
	A *big.Int
	D *big.Int
	H *big.Int

	field *safenum.Modulus
	aNat  *safenum.Nat
	dNat  *safenum.Nat
}

// NewEdwardsCurve builds a curve from (p, a, d, h).
func NewEdwardsCurve(p, a, d, h *big.Int) *EdwardsCurve {
	aMod := new(big.Int).Mod(a, p)
	dMod := new(big.Int).Mod(d, p)

	field := safenum.ModulusFromNat(new(safenum.Nat).SetBytes(p.Bytes()))
	return &EdwardsCurve{
		P:     p,
		A:     aMod,
		D:     dMod,
		H:     h,
		field: field,
		aNat:  new(safenum.Nat).SetBytes(aMod.Bytes()),
		dNat:  new(safenum.Nat).SetBytes(dMod.Bytes()),
	}
}

// Contains reports whether (x, y) satisfies a*x^2+y^2 == 1+d*x^2*y^2 (mod p).
func (c *EdwardsCurve) Contains(x, y *big.Int) bool {
	p := c.P
	xx := new(big.Int).Mul(x, x)
	yy := new(big.Int).Mul(y, y)

	lhs := new(big.Int).Mul(c.A, xx)
	lhs.Add(lhs, yy)
	lhs.Mod(lhs, p)

	rhs := new(big.Int).Mul(xx, yy)
	rhs.Mul(rhs, c.D)
	rhs.Add(rhs, big.NewInt(1))
	rhs.Mod(rhs, p)

	return lhs.Cmp(rhs) == 0
}

// Equal compares (p, a mod p, d mod p), excluding cofactor.
func (c *EdwardsCurve) Equal(o *EdwardsCurve) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return c.P.Cmp(o.P) == 0 && c.A.Cmp(o.A) == 0 && c.D.Cmp(o.D) == 0
}

// natFromBig converts a reduced big.Int (0 <= v < modulus) into a safenum.Nat.
func natFromBig(v *big.Int) *safenum.Nat {
	return new(safenum.Nat).SetBytes(v.Bytes())
}

// bigFromNat converts a safenum.Nat back into a big.Int, for bridging into
// the number-theory helpers (ModSqrt, ModInverse) which operate on math/big.
func bigFromNat(n *safenum.Nat) *big.Int {
	return new(big.Int).SetBytes(n.Bytes())
}
