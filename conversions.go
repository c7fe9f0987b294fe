package ecc

// Birational conversions between the twisted Edwards, short-Weierstrass,
// and Montgomery models of the Curve25519 family, ported from
// convert.c. These constants are fixed to the Curve25519/Ed25519
// birational family regardless of which of WEI25519 / WEI25519_2 is
// passed in as c: callers are expected to pass a Curve built from one
// of those two, since the functions operate over that shared prime
// field.
var (
	curve25519A        = Elt{0x00076d06, 0, 0, 0, 0, 0, 0, 0}
	curve25519A3       = Elt{0x000279ac, 0, 0, 0, 0, 0, 0, 0}
	curve25519Delta    = Elt{0xaaad2451, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0x2aaaaaaa}
	curve25519C        = Elt{0x00ba81e7, 0x3391fb55, 0xb482e57d, 0x3a5e2c2e, 0xfc03b081, 0x2d84f723, 0x9f5ff944, 0x70d9120b}
	curve25519MinusOne = Elt{0xffffffec, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff, 0x7fffffff}
	three              = Elt{3, 0, 0, 0, 0, 0, 0, 0}
)

// EdwardsToWeierstrass maps a twisted Edwards point (px,py) to its
// short-Weierstrass image (rx,ry). Ported from convert.c's
// twisted_edwards_to_short_weierstrass. The reference's printf
// diagnostics in the two special cases are dropped: the caller learns
// the outcome from the returned point, not a log line.
func EdwardsToWeierstrass(c *Curve, px, py Elt) (rx, ry Elt) {
	if px.IsZero() {
		if py.IsZero() {
			return Elt{}, Elt{}
		}
		if py.Cmp(curve25519MinusOne) == 0 {
			return curve25519Delta, Elt{}
		}
	}

	one := EltFromUint64(1)
	nom := FieldAdd(c, one, py)               // 1 + py
	oneMinusPy := FieldSub(c, one, py)         // 1 - py
	invOneMinusPy, err := FieldInv(c, oneMinusPy)
	if err != nil {
		return Elt{}, Elt{}
	}

	ratio := FieldMul(c, nom, invOneMinusPy) // (1+py)/(1-py)
	rx = FieldAdd(c, ratio, curve25519Delta)

	denom := FieldMul(c, oneMinusPy, px) // (1-py)*px
	invDenom, err := FieldInv(c, denom)
	if err != nil {
		return rx, Elt{}
	}
	cTimesNom := FieldMul(c, curve25519C, nom) // c*(1+py)
	ry = FieldMul(c, cTimesNom, invDenom)

	return rx, ry
}

// WeierstrassToEdwards maps a short-Weierstrass point (px,py) to its
// twisted Edwards image (rx,ry). Ported from convert.c's
// short_weierstrass_to_twisted_edwards.
func WeierstrassToEdwards(c *Curve, px, py Elt) (rx, ry Elt) {
	if py.IsZero() {
		if px.IsZero() {
			return Elt{}, Elt{}
		}
		if px.Cmp(curve25519Delta) == 0 {
			return Elt{}, curve25519MinusOne
		}
	}

	threePy := FieldMul(c, three, py)
	invThreePy, err := FieldInv(c, threePy)
	if err != nil {
		return Elt{}, Elt{}
	}

	threePx := FieldMul(c, three, px)
	pa := FieldSub(c, threePx, curve25519A)

	cTimesPa := FieldMul(c, curve25519C, pa)
	rx = FieldMul(c, cTimesPa, invThreePy)

	nom := FieldSub(c, pa, three)
	den := FieldAdd(c, pa, three)
	invDen, err := FieldInv(c, den)
	if err != nil {
		return rx, Elt{}
	}
	ry = FieldMul(c, nom, invDen)

	return rx, ry
}

// WeierstrassToMontgomery maps a short-Weierstrass point to its
// Montgomery image: (px,py) -> (px - A/3, py). Ported from convert.c's
// short_weierstrass_to_montgomery.
func WeierstrassToMontgomery(c *Curve, px, py Elt) (rx, ry Elt) {
	ry = py
	if px.IsZero() && py.IsZero() {
		return px, ry
	}
	rx = FieldSub(c, px, curve25519Delta)
	return rx, ry
}

// MontgomeryToWeierstrass maps a Montgomery point to its
// short-Weierstrass image: (px,py) -> (px + A/3, py). Ported from
// convert.c's montgomery_to_short_weierstrass.
func MontgomeryToWeierstrass(c *Curve, px, py Elt) (rx, ry Elt) {
	ry = py
	if px.IsZero() && py.IsZero() {
		return px, ry
	}
	rx = FieldAdd(c, px, curve25519Delta)
	return rx, ry
}
