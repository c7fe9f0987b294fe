package ecc

import "errors"

// FieldArith implements modular arithmetic over a curve's prime field,
// ported from ecc.c's fieldAdd/fieldSub/fieldMult/fieldInv. Every
// operation takes an explicit *Curve instead of reading the reference's
// global ecc_prime_m/ecc_prime_r/ecc_fieldModP.

// FieldAdd returns (x+y) mod p.
func FieldAdd(c *Curve, x, y Elt) Elt {
	return addMod(x, y, c.params.P)
}

// FieldSub returns (x-y) mod p.
func FieldSub(c *Curve, x, y Elt) Elt {
	return subMod(x, y, c.params.P)
}

// FieldMul returns (x*y) mod p, dispatching to the curve's reduction
// strategy (fast P-256 reduction or generic Barrett reduction).
func FieldMul(c *Curve, x, y Elt) Elt {
	wide := x.Mul(y)
	return c.params.ReduceFn(c, wide)
}

// FieldSqr returns x^2 mod p.
func FieldSqr(c *Curve, x Elt) Elt {
	return FieldMul(c, x, x)
}

// ReduceOrder returns x mod n, the curve's group order. Always uses
// generic Barrett reduction, ported from ecc.c's fieldModO, which never
// takes the P-256 fast path even on SECP256R1.
func ReduceOrder(c *Curve, x Wide) Elt {
	return reduceOrderBarrett(c, x)
}

// addAndHalve returns (x+modulus)/2 for odd x, the odd-halving step of
// the binary extended Euclidean inversion below. Ported from ecc.c's
// fieldAddAndDivide: add the modulus (the value is odd, so x+modulus is
// even), then shift right by one, folding the bit shifted out of the
// addition into the top bit.
func addAndHalve(modulus, x Elt) Elt {
	sum, carry := x.Add(modulus)
	sum = sum.Rshift1()
	if carry != 0 {
		sum[Limbs-1] |= 1 << 31
	}
	return sum
}

// modInverse returns the inverse of x modulo m, or an error if x is
// zero. Ported from ecc.c's fieldInv: the binary extended Euclidean
// algorithm, halving the running values instead of the usual
// division-based extended Euclid, which avoids any need for signed
// bignum arithmetic. Shared by FieldInv (m = p) and OrderInv (m = n).
func modInverse(m, x Elt) (Elt, error) {
	if x.IsZero() {
		return Elt{}, errors.New("ecc: cannot invert zero")
	}

	u := x
	v := m
	var a, b Elt
	a = EltFromUint64(1)
	// b starts at zero

	for !u.IsOne() && !v.IsOne() {
		for u[0]&1 == 0 {
			u = u.Rshift1()
			if a[0]&1 == 0 {
				a = a.Rshift1()
			} else {
				a = addAndHalve(m, a)
			}
		}
		for v[0]&1 == 0 {
			v = v.Rshift1()
			if b[0]&1 == 0 {
				b = b.Rshift1()
			} else {
				b = addAndHalve(m, b)
			}
		}
		if u.Cmp(v) >= 0 {
			u, _ = u.Sub(v)
			a = subMod(a, b, m)
		} else {
			v, _ = v.Sub(u)
			b = subMod(b, a, m)
		}
	}

	if u.IsOne() {
		return a, nil
	}
	return b, nil
}

// FieldInv returns the modular inverse of x mod p, or an error if x is
// zero.
func FieldInv(c *Curve, x Elt) (Elt, error) {
	return modInverse(c.params.P, x)
}

// OrderInv returns the modular inverse of x mod n (the group order), or
// an error if x is zero. Needed by ECDSA to invert the nonce and s
// components, which live mod n rather than mod p.
func OrderInv(c *Curve, x Elt) (Elt, error) {
	return modInverse(c.params.N, x)
}

// OrderAdd returns (x+y) mod n.
func OrderAdd(c *Curve, x, y Elt) Elt {
	return addMod(x, y, c.params.N)
}

// OrderMul returns (x*y) mod n.
func OrderMul(c *Curve, x, y Elt) Elt {
	wide := x.Mul(y)
	return ReduceOrder(c, wide)
}
