package ecc

import (
	"crypto/hmac"

	sha256simd "github.com/minio/sha256-simd"
)

// DeriveNonce derives a deterministic ECDSA nonce from a private key and
// message digest, RFC 6979 style. ecc.c has no nonce-generation logic at
// all: its test harness just hands ecc_ecdsa_sign a fixed k, leaving
// nonce sourcing up to the caller. This helper supplements that gap for
// callers who want determinism instead of rolling their own RNG. Sign
// itself never calls this; it always takes k explicitly.
func DeriveNonce(c *Curve, priv, digest Elt) Elt {
	privBytes := eltToBE32(priv)
	digestBytes := eltToBE32(digest)

	v := bytes32(0x01)
	k := bytes32(0x00)

	k = hmacSum(k, v, []byte{0x00}, privBytes[:], digestBytes[:])
	v = hmacSum(k, v)
	k = hmacSum(k, v, []byte{0x01}, privBytes[:], digestBytes[:])
	v = hmacSum(k, v)

	for {
		v = hmacSum(k, v)
		candidate := beToElt(v)
		if !candidate.IsZero() && candidate.Cmp(c.params.N) < 0 {
			return candidate
		}
		k = hmacSum(k, v, []byte{0x00})
		v = hmacSum(k, v)
	}
}

func bytes32(fill byte) [32]byte {
	var b [32]byte
	for i := range b {
		b[i] = fill
	}
	return b
}

func hmacSum(key [32]byte, parts ...interface{}) [32]byte {
	mac := hmac.New(sha256simd.New, key[:])
	for _, p := range parts {
		switch v := p.(type) {
		case [32]byte:
			mac.Write(v[:])
		case []byte:
			mac.Write(v)
		}
	}
	var out [32]byte
	copy(out[:], mac.Sum(nil))
	return out
}

// eltToBE32 serializes a 256-bit value to big-endian bytes, most
// significant limb first; DeriveNonce feeds the key and digest to HMAC
// in this form.
func eltToBE32(x Elt) [32]byte {
	var out [32]byte
	for i := 0; i < Limbs; i++ {
		limb := x[Limbs-1-i]
		out[4*i+0] = byte(limb >> 24)
		out[4*i+1] = byte(limb >> 16)
		out[4*i+2] = byte(limb >> 8)
		out[4*i+3] = byte(limb)
	}
	return out
}

// beToElt parses big-endian bytes into a 256-bit value.
func beToElt(b [32]byte) Elt {
	var x Elt
	for i := 0; i < Limbs; i++ {
		x[Limbs-1-i] = uint32(b[4*i])<<24 | uint32(b[4*i+1])<<16 | uint32(b[4*i+2])<<8 | uint32(b[4*i+3])
	}
	return x
}
