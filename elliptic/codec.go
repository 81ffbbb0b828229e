package elliptic

import (
	"fmt"
	"math/big"
)

// Encoding names one of the four affine point wire formats.
type Encoding byte

const (
	// RawEncoding is x||y, each big-endian zero-padded to L = ceil(bitlen(p)/8) bytes.
	RawEncoding Encoding = iota
	// UncompressedEncoding is 0x04 || x || y.
	UncompressedEncoding
	// CompressedEncoding is {0x02 if y even, 0x03 if y odd} || x.
	CompressedEncoding
	// HybridEncoding is {0x06 if y even, 0x07 if y odd} || x || y.
	HybridEncoding
)

// allEncodings is the default allow-list for DecodePoint when the caller
// does not restrict it.
var allEncodings = []Encoding{RawEncoding, UncompressedEncoding, CompressedEncoding, HybridEncoding}

func validEncodingName(e Encoding) bool {
	switch e {
	case RawEncoding, UncompressedEncoding, CompressedEncoding, HybridEncoding:
		return true
	default:
		return false
	}
}

// DecodePoint auto-detects the wire encoding of data from its length and
// leading tag byte, restricted to the encodings named in allowed (all four,
// if none are given), and returns the decoded (x, y) pair. It does not check
// on-curve membership - the caller constructs a point from the returned
// coordinates, which performs that check. validateEncoding controls whether
// a hybrid tag that disagrees with the computed y-parity is rejected.
func DecodePoint(curve *WeierstrassCurve, data []byte, validateEncoding bool, allowed ...Encoding) (x, y *big.Int, err error) {
	if len(allowed) == 0 {
		allowed = allEncodings
	}
	allow := make(map[Encoding]bool, len(allowed))
	for _, e := range allowed {
		if !validEncodingName(e) {
			return nil, nil, fmt.Errorf("%w: %d", ErrInvalidEncoding, e)
		}
		allow[e] = true
	}

	l := orderLen(curve.P)

	// Tag-bearing encodings (compressed/uncompressed/hybrid) are checked
	// before the tagless raw case: at small field sizes 2*l can equal l+1,
	// and a compressed blob must not be misread as raw just because its
	// length collides.
	switch {
	case allow[UncompressedEncoding] && len(data) == 2*l+1 && data[0] == 0x04:
		x = stringToNumber(data[1 : 1+l])
		y = stringToNumber(data[1+l:])
		return x, y, nil

	case allow[CompressedEncoding] && len(data) == l+1 && (data[0] == 0x02 || data[0] == 0x03):
		x = stringToNumber(data[1:])
		y, err = decompressY(curve, x, data[0]&1 == 0)
		if err != nil {
			return nil, nil, err
		}
		return x, y, nil

	case allow[HybridEncoding] && len(data) == 2*l+1 && (data[0] == 0x06 || data[0] == 0x07):
		x = stringToNumber(data[1 : 1+l])
		y = stringToNumber(data[1+l:])
		if validateEncoding {
			wantEven := data[0]&1 == 0
			gotEven := y.Bit(0) == 0
			if wantEven != gotEven {
				return nil, nil, newMalformedPointError("hybrid tag disagrees with y parity", nil)
			}
		}
		return x, y, nil

	case allow[RawEncoding] && len(data) == 2*l:
		x = stringToNumber(data[:l])
		y = stringToNumber(data[l:])
		return x, y, nil

	default:
		return nil, nil, newMalformedPointError(fmt.Sprintf("length %d matches no enabled encoding", len(data)), nil)
	}
}

// decompressY recovers y from x and the desired parity: alpha = x^3+a*x+b,
// beta = sqrt(alpha) mod p; if parity(beta) matches wantEven, beta is
// returned, else p-beta is.
func decompressY(curve *WeierstrassCurve, x *big.Int, wantEven bool) (*big.Int, error) {
	p := curve.P
	alpha := new(big.Int).Mul(x, x)
	alpha.Mul(alpha, x)
	ax := new(big.Int).Mul(curve.A, x)
	alpha.Add(alpha, ax)
	alpha.Add(alpha, curve.B)
	alpha.Mod(alpha, p)

	beta, err := sqrtModPrime(alpha, p)
	if err != nil {
		return nil, newMalformedPointError("compressed x has no square root", err)
	}
	betaEven := beta.Bit(0) == 0
	if betaEven != wantEven {
		beta.Sub(p, beta)
	}
	return beta, nil
}

// EncodePoint serializes (x, y) using the named encoding. x and y are
// rendered big-endian, left-padded to exactly L = ceil(bitlen(p)/8) bytes.
func EncodePoint(curve *WeierstrassCurve, x, y *big.Int, encoding Encoding) ([]byte, error) {
	l := orderLen(curve.P)
	xb := numberToString(x, curve.P)
	yb := numberToString(y, curve.P)

	switch encoding {
	case RawEncoding:
		out := make([]byte, 0, 2*l)
		out = append(out, xb...)
		out = append(out, yb...)
		return out, nil
	case UncompressedEncoding:
		out := make([]byte, 0, 2*l+1)
		out = append(out, 0x04)
		out = append(out, xb...)
		out = append(out, yb...)
		return out, nil
	case CompressedEncoding:
		tag := byte(0x02)
		if y.Bit(0) == 1 {
			tag = 0x03
		}
		out := make([]byte, 0, l+1)
		out = append(out, tag)
		out = append(out, xb...)
		return out, nil
	case HybridEncoding:
		tag := byte(0x06)
		if y.Bit(0) == 1 {
			tag = 0x07
		}
		out := make([]byte, 0, 2*l+1)
		out = append(out, tag)
		out = append(out, xb...)
		out = append(out, yb...)
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidEncoding, encoding)
	}
}
