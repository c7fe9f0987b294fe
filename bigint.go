package ecc

import "math/bits"

// Limbs is the word count of a 256-bit value represented in this package:
// little-endian 32-bit limbs, limb 0 is the least significant.
const Limbs = 8

// Elt is a 256-bit value: eight little-endian 32-bit limbs.
type Elt [Limbs]uint32

// Wide is a 512-bit value, the natural width of a full 256x256 product.
type Wide [2 * Limbs]uint32

// add computes result = x + y over equal-length limb slices and returns the
// carry out of the top limb. Ported from ecc.c's add().
func add(x, y, result []uint32) uint32 {
	var carry uint32
	for i := range x {
		var sum uint32
		sum, carry = bits.Add32(x[i], y[i], carry)
		result[i] = sum
	}
	return carry
}

// sub computes result = x - y over equal-length limb slices and returns the
// borrow out of the top limb. Ported from ecc.c's sub().
func sub(x, y, result []uint32) uint32 {
	var borrow uint32
	for i := range x {
		var diff uint32
		diff, borrow = bits.Sub32(x[i], y[i], borrow)
		result[i] = diff
	}
	return borrow
}

// mul computes the full schoolbook product of two equal-length limb slices
// into result, which must have length 2*len(x). Ported from ecc.c's
// fieldMult(), which accumulates partial products a limb pair at a time.
func mul(x, y, result []uint32) {
	n := len(x)
	for i := range result {
		result[i] = 0
	}
	for i := 0; i < n; i++ {
		if x[i] == 0 {
			continue
		}
		var carry uint32
		for j := 0; j < n; j++ {
			hi, lo := bits.Mul32(x[i], y[j])
			var c uint32
			lo, c = bits.Add32(lo, carry, 0)
			hi += c
			lo, c = bits.Add32(result[i+j], lo, 0)
			hi += c
			result[i+j] = lo
			carry = hi
		}
		k := i + n
		for carry != 0 {
			var c uint32
			result[k], c = bits.Add32(result[k], carry, 0)
			carry = c
			k++
		}
	}
}

// rshiftByLimbs shifts in right by whole limbs into out: out[i] = in[i+shift]
// for in-bounds indices, zero above. Ported from ecc.c's rshiftby().
func rshiftByLimbs(in []uint32, out []uint32, shift int) {
	i := 0
	for ; i < len(in)-shift && i < len(out); i++ {
		out[i] = in[i+shift]
	}
	for ; i < len(out); i++ {
		out[i] = 0
	}
}

// rshift1 shifts a full-width value right by a single bit in place, across
// however many limbs are given. Ported from ecc.c's rshift().
func rshift1(a []uint32) {
	var carry uint32
	for i := len(a) - 1; i >= 0; i-- {
		next := a[i] & 1
		a[i] = a[i]>>1 | carry<<31
		carry = next
	}
}

// isZero reports whether every limb is zero.
func isZero(a []uint32) bool {
	for _, w := range a {
		if w != 0 {
			return false
		}
	}
	return true
}

// isOne reports whether a equals the value 1.
func isOne(a []uint32) bool {
	if a[0] != 1 {
		return false
	}
	for _, w := range a[1:] {
		if w != 0 {
			return false
		}
	}
	return true
}

// isEqual reports whether two equal-length limb slices hold the same value.
func isEqual(a, b []uint32) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// cmp lexicographically compares a and b from the most significant limb
// down, returning -1, 0, or 1. Ported from ecc.c's isGreater(), but
// returning the conventional three-way comparison result rather than the
// reference's inverted {1,0,-1} convention.
func cmp(a, b []uint32) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] > b[i] {
			return 1
		}
		if a[i] < b[i] {
			return -1
		}
	}
	return 0
}

// setZero zeroes every limb of a.
func setZero(a []uint32) {
	for i := range a {
		a[i] = 0
	}
}

// Add adds two 256-bit values and reports the carry out of the top limb.
func (x Elt) Add(y Elt) (sum Elt, carry uint32) {
	carry = add(x[:], y[:], sum[:])
	return
}

// Sub subtracts y from x and reports the borrow out of the top limb.
func (x Elt) Sub(y Elt) (diff Elt, borrow uint32) {
	borrow = sub(x[:], y[:], diff[:])
	return
}

// Mul returns the full 512-bit product of x and y.
func (x Elt) Mul(y Elt) (product Wide) {
	mul(x[:], y[:], product[:])
	return
}

// Cmp three-way compares x and y.
func (x Elt) Cmp(y Elt) int { return cmp(x[:], y[:]) }

// IsZero reports whether x is the all-zero value.
func (x Elt) IsZero() bool { return isZero(x[:]) }

// IsOne reports whether x equals 1.
func (x Elt) IsOne() bool { return isOne(x[:]) }

// Rshift1 returns x shifted right by one bit.
func (x Elt) Rshift1() Elt {
	out := x
	rshift1(out[:])
	return out
}

// Bit returns bit i of x (0 = least significant), for i in [0, 256).
func (x Elt) Bit(i int) uint32 {
	return (x[i/32] >> uint(i%32)) & 1
}

// EltFromUint64 builds an Elt holding the given small unsigned value.
func EltFromUint64(v uint64) Elt {
	return Elt{uint32(v), uint32(v >> 32), 0, 0, 0, 0, 0, 0}
}
