package elliptic

import (
	"math/big"
	"sync"
)

func bigFromString(s string, base int) *big.Int {
	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		panic("elliptic: invalid constant: " + s)
	}
	return n
}

var nistP256Once sync.Once
var nistP256Curve *WeierstrassCurve
var nistP256Gen *JacobianPoint
var nistP256Order *big.Int

func initNISTP256() {
	// See FIPS 186-3, section D.2.3.
	p := bigFromString("115792089210356248762697446949407573530086143415290314195533631308867097853951", 10)
	n := bigFromString("115792089210356248762697446949407573529996955224135760342422259061068512044369", 10)
	a := new(big.Int).Sub(p, big.NewInt(3))
	b := bigFromString("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b", 16)
	gx := bigFromString("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296", 16)
	gy := bigFromString("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5", 16)

	nistP256Curve = NewWeierstrassCurve(p, a, b, big.NewInt(1))
	nistP256Order = n
	nistP256Gen = NewGeneratorPoint(nistP256Curve, gx, gy, n)
}

// NISTP256 returns the singleton NIST P-256 (secp256r1) curve and its base
// point. Constructed once per process via sync.Once, so repeated calls share
// the same generator and its precomputation table.
func NISTP256() (*WeierstrassCurve, *JacobianPoint) {
	nistP256Once.Do(initNISTP256)
	return nistP256Curve, nistP256Gen
}

var ed25519Once sync.Once
var ed25519Curve *EdwardsCurve
var ed25519Gen *EdwardsPoint
var ed25519Order *big.Int

func initEd25519() {
	p := bigFromString("57896044618658097711785492504343953926634992332820282019728792003956564819949", 10)
	a := big.NewInt(-1)
	d := bigFromString("37095705934669439343138083508754565189542113879843219016388785533085940283555", 10)
	n := bigFromString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)
	gx := bigFromString("15112221349535400772501151409588531511454012693041857206046113283949847762202", 10)
	gy := bigFromString("46316835694926478169428394003475163141307993866256225615783033603165251855960", 10)

	ed25519Curve = NewEdwardsCurve(p, a, d, big.NewInt(8))
	ed25519Order = n
	ed25519Gen = NewEdwardsPoint(ed25519Curve, gx, gy, n)
}

// Ed25519 returns the singleton edwards25519 curve and its base point.
func Ed25519() (*EdwardsCurve, *EdwardsPoint) {
	ed25519Once.Do(initEd25519)
	return ed25519Curve, ed25519Gen
}
