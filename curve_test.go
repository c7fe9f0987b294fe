package ecc

import "testing"

func TestInitKnownCurves(t *testing.T) {
	for _, id := range []CurveId{SECP256R1, WEI25519, WEI25519_2} {
		c, err := Init(id)
		if err != nil {
			t.Fatalf("Init(%d): %v", id, err)
		}
		if c.ID() != id {
			t.Fatalf("ID() = %d, want %d", c.ID(), id)
		}
		g := c.Generator()
		if !g.IsOnCurve(c) {
			t.Errorf("curve %d: generator does not satisfy the curve equation", id)
		}
	}
}

func TestInitUnknownCurve(t *testing.T) {
	if _, err := Init(CurveId(99)); err == nil {
		t.Fatalf("expected an error for an unregistered curve id")
	}
}

func TestWei25519SharedDomainParams(t *testing.T) {
	c1, _ := Init(WEI25519)
	c2, _ := Init(WEI25519_2)
	if c1.Params().P.Cmp(c2.Params().P) != 0 {
		t.Fatalf("WEI25519 and WEI25519_2 should share the same prime")
	}
	if c1.Params().N.Cmp(c2.Params().N) != 0 {
		t.Fatalf("WEI25519 and WEI25519_2 should share the same group order")
	}
	if c1.Params().A.Cmp(c2.Params().A) == 0 {
		t.Fatalf("WEI25519 and WEI25519_2 should have distinct curve coefficients")
	}
}
