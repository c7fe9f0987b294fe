package ecc

import "testing"

func TestGenPubKeyMatchesMult(t *testing.T) {
	c, _ := Init(SECP256R1)
	priv := Elt{0x2ffb06fd, 0x6522468b, 0x3072708b, 0xd0c7a893, 0x92f43f8d, 0xb6c6a5b9, 0xafdec1e6, 0xc51e4753}
	if got, want := GenPubKey(c, priv), Mult(c, priv, c.Generator()); got.X.Cmp(want.X) != 0 || got.Y.Cmp(want.Y) != 0 {
		t.Fatalf("GenPubKey = %+v, want %+v", got, want)
	}
}

func TestECDHAgreement(t *testing.T) {
	c, _ := Init(SECP256R1)
	privA := Elt{1, 2, 3, 4, 0, 0, 0, 0}
	privB := Elt{5, 6, 7, 8, 0, 0, 0, 0}

	pubA := GenPubKey(c, privA)
	pubB := GenPubKey(c, privB)

	sharedA := ECDH(c, privA, pubB)
	sharedB := ECDH(c, privB, pubA)

	if sharedA.X.Cmp(sharedB.X) != 0 || sharedA.Y.Cmp(sharedB.Y) != 0 {
		t.Fatalf("ECDH disagreement: A got %+v, B got %+v", sharedA, sharedB)
	}
}

func TestIsValidKey(t *testing.T) {
	c, _ := Init(SECP256R1)
	if !IsValidKey(c, EltFromUint64(1)) {
		t.Fatalf("1 should be a valid key")
	}
	if IsValidKey(c, c.params.N) {
		t.Fatalf("n itself should not be a valid key")
	}
	nMinus1, _ := c.params.N.Sub(EltFromUint64(1))
	if !IsValidKey(c, nMinus1) {
		t.Fatalf("n-1 should be a valid key")
	}
}
