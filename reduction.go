package ecc

// This file ports the two reduction strategies of ecc.c: fieldModP256 (a
// closed-form fast reduction specific to the NIST P-256 prime) and
// fieldModX (generic Barrett reduction, used for every other modulus: the
// 25519-family prime, and the group order of all three curves).

// addMod returns (x+y) mod m, for x,y already in [0,m). One conditional
// subtract suffices since x+y < 2m. Ported from ecc.c's fieldAdd.
func addMod(x, y, m Elt) Elt {
	sum, carry := x.Add(y)
	if carry != 0 || sum.Cmp(m) >= 0 {
		sum, _ = sum.Sub(m)
	}
	return sum
}

// subMod returns (x-y) mod m, for x,y already in [0,m). One conditional
// add suffices since -m < x-y < m. Ported from ecc.c's fieldSub.
func subMod(x, y, m Elt) Elt {
	diff, borrow := x.Sub(y)
	if borrow != 0 {
		diff, _ = diff.Add(m)
	}
	return diff
}

// foldMod repeatedly subtracts m from x until x < m. Used where an
// intermediate value is known to be within a small bounded multiple of
// the modulus, mirroring the reference's own small fixup loops.
func foldMod(x, m Elt) Elt {
	for x.Cmp(m) >= 0 {
		x, _ = x.Sub(m)
	}
	return x
}

// floorDivPow2_32 and floorModPow2_32 give floor-division/modulus by 2^32
// for a signed accumulator, since Go's / and % truncate toward zero and
// the reduction below needs Euclidean carry propagation over values that
// can run negative mid-computation.
func floorDivPow2_32(a int64) int64 {
	const b = int64(1) << 32
	q := a / b
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		q--
	}
	return q
}

func floorModPow2_32(a int64) int64 {
	return a - floorDivPow2_32(a)*b32
}

const b32 = int64(1) << 32

// reduceP256Fast reduces a 512-bit product modulo the NIST P-256 prime
// using the closed-form formula p = T + 2*S1 + 2*S2 + S3 + S4 - D1 - D2 -
// D3 - D4 (mod p), ported from ecc.c's fieldModP256. The S/D terms are
// fixed rearrangements of the product's sixteen 32-bit words; see the
// comments inline for the word layout.
func reduceP256Fast(c *Curve, product Wide) Elt {
	cw := product // cw[i] is word i of the 512-bit product, LSW first
	word := func(i int) uint32 {
		if i < 0 {
			return 0
		}
		return cw[i]
	}

	var t, s1, s2, s3, s4, d1, d2, d3, d4 [8]uint32

	for i := 0; i < 8; i++ {
		t[i] = word(i)
	}
	// S1 = (c15,c14,c13,c12,c11,0,0,0)
	s1[7], s1[6], s1[5], s1[4], s1[3] = word(15), word(14), word(13), word(12), word(11)
	// S2 = (0,c15,c14,c13,c12,0,0,0)
	s2[6], s2[5], s2[4], s2[3] = word(15), word(14), word(13), word(12)
	// S3 = (c15,c14,0,0,0,c10,c9,c8)
	s3[7], s3[6], s3[2], s3[1], s3[0] = word(15), word(14), word(10), word(9), word(8)
	// S4 = (c8,c13,c15,c14,c13,c11,c10,c9)
	s4[7], s4[6], s4[5], s4[4], s4[3], s4[2], s4[1], s4[0] =
		word(8), word(13), word(15), word(14), word(13), word(11), word(10), word(9)
	// D1 = (c10,c8,0,0,0,c13,c12,c11)
	d1[7], d1[6], d1[2], d1[1], d1[0] = word(10), word(8), word(13), word(12), word(11)
	// D2 = (c11,c9,0,0,c15,c14,c13,c12)
	d2[7], d2[6], d2[3], d2[2], d2[1], d2[0] = word(11), word(9), word(15), word(14), word(13), word(12)
	// D3 = (c12,0,c10,c9,c8,c15,c14,c13)
	d3[7], d3[5], d3[4], d3[3], d3[2], d3[1], d3[0] =
		word(12), word(10), word(9), word(8), word(15), word(14), word(13)
	// D4 = (c13,0,c11,c10,c9,0,c15,c14)
	d4[7], d4[5], d4[4], d4[3], d4[1], d4[0] =
		word(13), word(11), word(10), word(9), word(15), word(14)

	var acc [9]int64
	for i := 0; i < 8; i++ {
		acc[i] = int64(t[i]) + 2*int64(s1[i]) + 2*int64(s2[i]) + int64(s3[i]) + int64(s4[i]) -
			int64(d1[i]) - int64(d2[i]) - int64(d3[i]) - int64(d4[i])
	}

	for i := 0; i < 8; i++ {
		carry := floorDivPow2_32(acc[i])
		acc[i] = floorModPow2_32(acc[i])
		acc[i+1] += carry
	}

	var base Elt
	for i := 0; i < 8; i++ {
		base[i] = uint32(acc[i])
	}

	p := c.params.P
	r := c.params.Pr // 2^256 mod p, reused as the per-multiple adjustment
	k8 := acc[8]
	for k8 > 0 {
		base = addMod(base, r, p)
		k8--
	}
	for k8 < 0 {
		base = subMod(base, r, p)
		k8++
	}
	return foldMod(base, p)
}

// barrettReduce implements the generic Barrett reduction of ecc.c's
// fieldModX: given a 2k-word product a, a k-word modulus m and its
// (k+1)-word Barrett constant mu = floor(b^2k / m), returns a mod m as a
// k-word value, where b = 2^32.
func barrettReduce(a []uint32, m []uint32, mu []uint32, k int) []uint32 {
	// Fast path: ecc.c's fieldModX short-circuits when the input already
	// fits under the modulus (common for already-reduced field elements).
	if isZero(a[k:]) && cmp(a[:k], m) < 0 {
		out := make([]uint32, k)
		copy(out, a[:k])
		return out
	}

	q1 := make([]uint32, k+1)
	rshiftByLimbs(a, q1, k-1)

	q2 := make([]uint32, 2*(k+1))
	mul(q1, mu, q2)

	q3 := make([]uint32, k+1)
	rshiftByLimbs(q2, q3, k+1)

	r1 := make([]uint32, k+1)
	copy(r1, a[:k+1])

	q3m := make([]uint32, 2*(k+1))
	mPadded := make([]uint32, k+1)
	copy(mPadded, m)
	mul(q3, mPadded, q3m)
	r2 := q3m[:k+1]

	r := make([]uint32, k+1)
	sub(r1, r2, r)

	mExt := make([]uint32, k+1)
	copy(mExt, m)
	for cmp(r, mExt) >= 0 {
		sub(r, mExt, r)
	}

	return r[:k]
}

// reduceBarrettP reduces a 512-bit product modulo the curve's prime p
// using generic Barrett reduction. Used by the 25519-family curves,
// which have no closed-form fast reduction.
func reduceBarrettP(c *Curve, product Wide) Elt {
	out := barrettReduce(product[:], c.params.P[:], c.params.MuP[:], c.params.K)
	var result Elt
	copy(result[:], out)
	return result
}

// reduceOrderBarrett reduces a 512-bit product modulo the curve's group
// order n, via generic Barrett reduction. Ported from ecc.c's fieldModO,
// which always takes the Barrett path regardless of curve: there is no
// fast reduction for the order, even on P-256.
func reduceOrderBarrett(c *Curve, product Wide) Elt {
	out := barrettReduce(product[:], c.params.N[:], c.params.MuN[:], c.params.K)
	var result Elt
	copy(result[:], out)
	return result
}
