package ecc

// Mult computes k*p using left-to-right double-and-add, scanning the
// scalar's 256 bits from most to least significant. Ported from ecc.c's
// ecc_ec_mult, which reads bit i of the secret as
// (secret[i/32] >> (i%32)) & 1.
func Mult(c *Curve, k Elt, p Point) Point {
	result := Infinity
	for i := 255; i >= 0; i-- {
		result = result.Double(c)
		if k.Bit(i) == 1 {
			result = result.Add(c, p)
		}
	}
	return result
}

// GenPubKey derives the public key for a private scalar, as
// ecc.h's static inline ecc_gen_pub_key does: the public key is
// priv * G.
func GenPubKey(c *Curve, priv Elt) Point {
	return Mult(c, priv, c.Generator())
}

// ECDH computes the shared point priv * peerPub, as ecc.h's static
// inline ecc_ecdh (an alias for ecc_ec_mult against a peer's public
// point instead of the generator).
func ECDH(c *Curve, priv Elt, peerPub Point) Point {
	return Mult(c, priv, peerPub)
}

// IsValidKey reports whether priv is an acceptable private key: ported
// from ecc.c's ecc_is_valid_key, which accepts any priv strictly less
// than the group order n.
func IsValidKey(c *Curve, priv Elt) bool {
	return c.params.N.Cmp(priv) > 0
}
