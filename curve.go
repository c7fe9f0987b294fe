package ecc

import "errors"

// CurveId identifies one of the registered short-Weierstrass curves.
type CurveId int

const (
	SECP256R1 CurveId = iota
	WEI25519
	WEI25519_2
)

// ReduceFn reduces a 512-bit product modulo the curve's prime p, returning
// a value in [0, p). Curve-specific: P-256 uses a fast partial
// reduction, the 25519-family curves use generic Barrett reduction.
type ReduceFn func(c *Curve, product Wide) Elt

// CurveParams holds one curve's domain parameters, transcribed from
// ecc.c's p256_*/wei25519_*/wei25519_2_* tables.
type CurveParams struct {
	A          Elt // Weierstrass coefficient, subtracted (not added) in the group law, see group.go
	P          Elt // field prime
	Pr         Elt // 2^256 - P, the fast add-back reducer
	N          Elt // group order
	Nr         Elt // 2^256 - N
	MuP        [9]uint32
	MuN        [9]uint32
	Gx, Gy     Elt
	K          int // Barrett word count k (mu = floor(b^2k / m), b = 2^32), 8 for every registered curve
	PrimeShift int // right-shift applied to the message digest before use in ECDSA
	ReduceFn   ReduceFn
}

var curveSECP256R1 = CurveParams{
	A:  Elt{0x00000003, 0, 0, 0, 0, 0, 0, 0},
	P:  Elt{0xffffffff, 0xffffffff, 0xffffffff, 0x00000000, 0x00000000, 0x00000000, 0x00000001, 0xffffffff},
	Pr: Elt{0x00000001, 0x00000000, 0x00000000, 0xffffffff, 0xffffffff, 0xffffffff, 0xfffffffe, 0x00000000},
	N:  Elt{0xFC632551, 0xF3B9CAC2, 0xA7179E84, 0xBCE6FAAD, 0xFFFFFFFF, 0xFFFFFFFF, 0x00000000, 0xFFFFFFFF},
	Nr: Elt{0x039CDAAF, 0x0C46353D, 0x58E8617B, 0x43190552, 0x00000000, 0x00000000, 0xFFFFFFFF, 0x00000000},
	MuN: [9]uint32{0xEEDF9BFE, 0x012FFD85, 0xDF1A6C21, 0x43190552,
		0xFFFFFFFF, 0xFFFFFFFE, 0xFFFFFFFF, 0x00000000, 0x00000001},
	MuP: [9]uint32{0x00000003, 0x00000000, 0xffffffff, 0xfffffffe,
		0xfffffffe, 0xfffffffe, 0xffffffff, 0x00000000, 0x00000001},
	Gx:         Elt{0xD898C296, 0xF4A13945, 0x2DEB33A0, 0x77037D81, 0x63A440F2, 0xF8BCE6E5, 0xE12C4247, 0x6B17D1F2},
	Gy:         Elt{0x37BF51F5, 0xCBB64068, 0x6B315ECE, 0x2BCE3357, 0x7C0F9E16, 0x8EE7EB4A, 0xFE1A7F9B, 0x4FE342E2},
	K:          8,
	PrimeShift: 0,
	ReduceFn:   reduceP256Fast,
}

// wei25519Shared holds the p, p_r, n, n_r, mu_p, mu_n common to WEI25519 and
// WEI25519_2: both curves live over the same Curve25519-related prime and
// order, and differ only in the Weierstrass coefficient a and base point.
var wei25519SharedP = Elt{0xffffffed, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0x7fffffff}
var wei25519SharedPr = Elt{0x00000013, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x80000000}
var wei25519SharedN = Elt{0x5cf5d3ed, 0x5812631a, 0xa2f79cd6, 0x14def9de, 0x00000000, 0x00000000, 0x00000000, 0x10000000}
var wei25519SharedNr = Elt{0xa30a2c13, 0xa7ed9ce5, 0x5d086329, 0xeb210621, 0xffffffff, 0xffffffff, 0xffffffff, 0xefffffff}
var wei25519SharedMuN = [9]uint32{0x0a2c131b, 0xed9ce5a3, 0x086329a7, 0x2106215d,
	0xffffffeb, 0xffffffff, 0xffffffff, 0xffffffff, 0x0000000f}
var wei25519SharedMuP = [9]uint32{0x0000004c, 0x00000000, 0x00000000, 0x00000000,
	0x00000000, 0x00000000, 0x00000000, 0x00000000, 0x00000002}

var curveWEI25519 = CurveParams{
	A:          Elt{0xb6eb5ea9, 0x55555567, 0x55555555, 0x55555555, 0x55555555, 0x55555555, 0x55555555, 0x55555555},
	P:          wei25519SharedP,
	Pr:         wei25519SharedPr,
	N:          wei25519SharedN,
	Nr:         wei25519SharedNr,
	MuN:        wei25519SharedMuN,
	MuP:        wei25519SharedMuP,
	Gx:         Elt{0xaaad245a, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0x2aaaaaaa},
	Gy:         Elt{0x7eced3d9, 0x29e9c5a2, 0x6d7c61b2, 0x923d4d7e, 0x7748d14c, 0xe01edd2c, 0xb8a086b4, 0x20ae19a1},
	K:          8,
	PrimeShift: 3,
	ReduceFn:   reduceBarrettP,
}

var curveWEI25519_2 = CurveParams{
	A:          Elt{0x00000002, 0, 0, 0, 0, 0, 0, 0},
	P:          wei25519SharedP,
	Pr:         wei25519SharedPr,
	N:          wei25519SharedN,
	Nr:         wei25519SharedNr,
	MuN:        wei25519SharedMuN,
	MuP:        wei25519SharedMuP,
	Gx:         Elt{0x7a940ffa, 0x5ee3c4e8, 0x072ea193, 0xd9ad4def, 0x582275b6, 0x318e8634, 0x78aed661, 0x17cfeac3},
	Gy:         Elt{0x51e16b4d, 0xf0d7fdcc, 0x297a37b6, 0xdc5c331d, 0xa8f68dca, 0x2c4f13f1, 0xc55dfad6, 0x0c08a952},
	K:          8,
	PrimeShift: 3,
	ReduceFn:   reduceBarrettP,
}

// Curve is an immutable handle to one curve's domain parameters. It
// replaces the reference implementation's ambient global curve state:
// every curve-dependent operation outside cabi.go takes a *Curve instead
// of reading process-global configuration.
type Curve struct {
	id     CurveId
	params *CurveParams
}

// Init selects a curve and returns an immutable handle to its parameters.
// Mirrors ecc_ec_init's curve table, but returns a value instead of
// mutating shared state.
func Init(id CurveId) (*Curve, error) {
	switch id {
	case SECP256R1:
		return &Curve{id: id, params: &curveSECP256R1}, nil
	case WEI25519:
		return &Curve{id: id, params: &curveWEI25519}, nil
	case WEI25519_2:
		return &Curve{id: id, params: &curveWEI25519_2}, nil
	default:
		return nil, errors.New("ecc: unknown curve id")
	}
}

// ID returns the curve identifier this handle was created from.
func (c *Curve) ID() CurveId { return c.id }

// Params returns the curve's domain parameters.
func (c *Curve) Params() *CurveParams { return c.params }

// Generator returns the curve's base point G.
func (c *Curve) Generator() Point {
	return Point{X: c.params.Gx, Y: c.params.Gy}
}
