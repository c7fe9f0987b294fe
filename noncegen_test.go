package ecc

import "testing"

func TestDeriveNonceDeterministic(t *testing.T) {
	c, _ := Init(SECP256R1)
	priv := Elt{1, 2, 3, 4, 0, 0, 0, 0}
	digest := Elt{5, 6, 7, 8, 0, 0, 0, 0}

	k1 := DeriveNonce(c, priv, digest)
	k2 := DeriveNonce(c, priv, digest)
	if k1.Cmp(k2) != 0 {
		t.Fatalf("DeriveNonce is not deterministic: %v != %v", k1, k2)
	}
	if k1.IsZero() {
		t.Fatalf("derived nonce should not be zero")
	}
	if k1.Cmp(c.params.N) >= 0 {
		t.Fatalf("derived nonce should be reduced mod n")
	}
}

func TestDeriveNonceVariesWithDigest(t *testing.T) {
	c, _ := Init(SECP256R1)
	priv := Elt{1, 2, 3, 4, 0, 0, 0, 0}

	k1 := DeriveNonce(c, priv, Elt{5, 6, 7, 8, 0, 0, 0, 0})
	k2 := DeriveNonce(c, priv, Elt{5, 6, 7, 9, 0, 0, 0, 0})
	if k1.Cmp(k2) == 0 {
		t.Fatalf("nonces for distinct digests should differ")
	}
}

func TestDeriveNonceUsableForSigning(t *testing.T) {
	c, _ := Init(SECP256R1)
	priv := Elt{0x2ffb06fd, 0x6522468b, 0x3072708b, 0xd0c7a893, 0x92f43f8d, 0xb6c6a5b9, 0xafdec1e6, 0xc51e4753}
	digest := Elt{0x65637572, 0x20612073, 0x68206F66, 0x20686173, 0x69732061, 0x68697320, 0x6F2C2054, 0x48616C6C}

	k := DeriveNonce(c, priv, digest)
	sig, err := Sign(c, digest, priv, k)
	if err != nil {
		t.Fatalf("Sign with derived nonce: %v", err)
	}

	pub := GenPubKey(c, priv)
	if !Verify(c, digest, pub, sig) {
		t.Fatalf("Verify rejected a signature made with a derived nonce")
	}
}

func TestEltBE32RoundTrip(t *testing.T) {
	x := Elt{0x11223344, 0x55667788, 0x99aabbcc, 0xddeeff00, 1, 2, 3, 4}
	b := eltToBE32(x)
	back := beToElt(b)
	if back.Cmp(x) != 0 {
		t.Fatalf("eltToBE32/beToElt round trip = %v, want %v", back, x)
	}
}
