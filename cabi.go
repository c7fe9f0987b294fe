package ecc

import (
	"errors"
	"sync/atomic"
)

// cabi.go implements the C-ABI-shaped surface documented in ecc.h:
// ecc_ec_init selects a curve once and every other call operates
// against that one ambient curve. The rest of this package uses an
// explicit *Curve handle instead (see curve.go); this file exists only
// for callers that want the literal single-global surface, guarded with
// sync/atomic so concurrent callers observe a consistent curve even
// though reconfiguring it is still the caller's responsibility to
// serialize.
var activeCurve atomic.Pointer[Curve]

// ErrNoActiveCurve is returned by every cabi.go function when called
// before CABIInit, mirroring the reference's uninitialized global state
// (which would otherwise dereference null parameter tables).
var ErrNoActiveCurve = errors.New("ecc: no active curve, call CABIInit first")

// CABIInit selects the process-wide active curve. Ported from ecc.c's
// init()/ecc_ec_init, which populates the global ecc_prime_m/ecc_g_point_x
// /... tables; here it just swaps an atomic pointer instead of mutating
// package-level arrays in place.
func CABIInit(id CurveId) error {
	c, err := Init(id)
	if err != nil {
		return err
	}
	activeCurve.Store(c)
	return nil
}

func current() (*Curve, error) {
	c := activeCurve.Load()
	if c == nil {
		return nil, ErrNoActiveCurve
	}
	return c, nil
}

// CABIECMult computes result = secret * (baseX, baseY) against the
// active curve, the literal surface of ecc.h's ecc_ec_mult.
func CABIECMult(secret, baseX, baseY Elt) (resultX, resultY Elt, err error) {
	c, err := current()
	if err != nil {
		return Elt{}, Elt{}, err
	}
	p := Mult(c, secret, Point{X: baseX, Y: baseY})
	return p.X, p.Y, nil
}

// CABIECDouble doubles (px,py) against the active curve, the surface of
// ecc.h's TEST_INCLUDE-gated ec_double export.
func CABIECDouble(px, py Elt) (rx, ry Elt, err error) {
	c, err := current()
	if err != nil {
		return Elt{}, Elt{}, err
	}
	r := Point{X: px, Y: py}.Double(c)
	return r.X, r.Y, nil
}

// CABIECAdd adds (p1x,p1y) and (p2x,p2y) against the active curve, the
// surface of ecc.h's TEST_INCLUDE-gated ec_add export.
func CABIECAdd(p1x, p1y, p2x, p2y Elt) (rx, ry Elt, err error) {
	c, err := current()
	if err != nil {
		return Elt{}, Elt{}, err
	}
	r := Point{X: p1x, Y: p1y}.Add(c, Point{X: p2x, Y: p2y})
	return r.X, r.Y, nil
}

// CABIECDH computes priv * (peerX,peerY), the surface of ecc.h's static
// inline ecc_ecdh.
func CABIECDH(priv, peerX, peerY Elt) (x, y Elt, err error) {
	return CABIECMult(priv, peerX, peerY)
}

// CABIGenPubKey computes priv * G, the surface of ecc.h's static inline
// ecc_gen_pub_key.
func CABIGenPubKey(priv Elt) (x, y Elt, err error) {
	c, err := current()
	if err != nil {
		return Elt{}, Elt{}, err
	}
	p := GenPubKey(c, priv)
	return p.X, p.Y, nil
}

// CABIIsValidKey reports whether priv is acceptable under the active
// curve, the surface of ecc.h's ecc_is_valid_key.
func CABIIsValidKey(priv Elt) (bool, error) {
	c, err := current()
	if err != nil {
		return false, err
	}
	return IsValidKey(c, priv), nil
}

// CABIECDSASign signs digest with priv and nonce k against the active
// curve, the surface of ecc.h's ecc_ecdsa_sign.
func CABIECDSASign(digest, priv, k Elt) (r, s Elt, err error) {
	c, err := current()
	if err != nil {
		return Elt{}, Elt{}, err
	}
	sig, err := Sign(c, digest, priv, k)
	if err != nil {
		return Elt{}, Elt{}, err
	}
	return sig.R, sig.S, nil
}

// CABIECDSAValidate verifies a signature against the active curve, the
// surface of ecc.h's ecc_ecdsa_validate.
func CABIECDSAValidate(digest, pubX, pubY, r, s Elt) (bool, error) {
	c, err := current()
	if err != nil {
		return false, err
	}
	return Verify(c, digest, Point{X: pubX, Y: pubY}, Signature{R: r, S: s}), nil
}

// CABIEdwardsToWeierstrass, CABIWeierstrassToEdwards,
// CABIWeierstrassToMontgomery, and CABIMontgomeryToWeierstrass expose
// conversions.go's birational maps against the active curve, the surface
// of ecc.h's four conversion function prototypes.
func CABIEdwardsToWeierstrass(px, py Elt) (rx, ry Elt, err error) {
	c, err := current()
	if err != nil {
		return Elt{}, Elt{}, err
	}
	rx, ry = EdwardsToWeierstrass(c, px, py)
	return rx, ry, nil
}

func CABIWeierstrassToEdwards(px, py Elt) (rx, ry Elt, err error) {
	c, err := current()
	if err != nil {
		return Elt{}, Elt{}, err
	}
	rx, ry = WeierstrassToEdwards(c, px, py)
	return rx, ry, nil
}

func CABIWeierstrassToMontgomery(px, py Elt) (rx, ry Elt, err error) {
	c, err := current()
	if err != nil {
		return Elt{}, Elt{}, err
	}
	rx, ry = WeierstrassToMontgomery(c, px, py)
	return rx, ry, nil
}

func CABIMontgomeryToWeierstrass(px, py Elt) (rx, ry Elt, err error) {
	c, err := current()
	if err != nil {
		return Elt{}, Elt{}, err
	}
	rx, ry = MontgomeryToWeierstrass(c, px, py)
	return rx, ry, nil
}
