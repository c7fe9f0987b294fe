package ecc

import "testing"

// ed25519Gx/ed25519Gy and the expected wei25519 image are transcribed
// from testconvert.c's eccdhTest, which asserts exactly this conversion
// before doing anything else.
func TestEdwardsToWeierstrassKnownVector(t *testing.T) {
	c, err := Init(WEI25519)
	if err != nil {
		t.Fatal(err)
	}

	edGx := Elt{0x8f25d51a, 0xc9562d60, 0x9525a7b2, 0x692cc760, 0xfdd6dc5c, 0xc0a4e231, 0xcd6e53fe, 0x216936d3}
	edGy := Elt{0x66666658, 0x66666666, 0x66666666, 0x66666666, 0x66666666, 0x66666666, 0x66666666, 0x66666666}

	wantX := Elt{0xaaad245a, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0xaaaaaaaa, 0x2aaaaaaa}
	wantY := Elt{0x7eced3d9, 0x29e9c5a2, 0x6d7c61b2, 0x923d4d7e, 0x7748d14c, 0xe01edd2c, 0xb8a086b4, 0x20ae19a1}

	gotX, gotY := EdwardsToWeierstrass(c, edGx, edGy)
	if gotX.Cmp(wantX) != 0 || gotY.Cmp(wantY) != 0 {
		t.Fatalf("EdwardsToWeierstrass(edG) = (%v,%v), want (%v,%v)", gotX, gotY, wantX, wantY)
	}

	// The image should be the registered WEI25519 generator.
	g := c.Generator()
	if gotX.Cmp(g.X) != 0 {
		t.Fatalf("converted point x does not match the registered generator")
	}
}

func TestEdwardsWeierstrassRoundTrip(t *testing.T) {
	c, err := Init(WEI25519)
	if err != nil {
		t.Fatal(err)
	}

	edGx := Elt{0x8f25d51a, 0xc9562d60, 0x9525a7b2, 0x692cc760, 0xfdd6dc5c, 0xc0a4e231, 0xcd6e53fe, 0x216936d3}
	edGy := Elt{0x66666658, 0x66666666, 0x66666666, 0x66666666, 0x66666666, 0x66666666, 0x66666666, 0x66666666}

	wx, wy := EdwardsToWeierstrass(c, edGx, edGy)
	ex, ey := WeierstrassToEdwards(c, wx, wy)

	if ex.Cmp(edGx) != 0 || ey.Cmp(edGy) != 0 {
		t.Fatalf("round trip through Weierstrass = (%v,%v), want (%v,%v)", ex, ey, edGx, edGy)
	}
}

func TestWeierstrassMontgomeryRoundTrip(t *testing.T) {
	c, err := Init(WEI25519)
	if err != nil {
		t.Fatal(err)
	}
	g := c.Generator()

	mx, my := WeierstrassToMontgomery(c, g.X, g.Y)
	wx, wy := MontgomeryToWeierstrass(c, mx, my)

	if wx.Cmp(g.X) != 0 || wy.Cmp(g.Y) != 0 {
		t.Fatalf("round trip through Montgomery = (%v,%v), want (%v,%v)", wx, wy, g.X, g.Y)
	}
}

func TestConversionsIdentityAtInfinity(t *testing.T) {
	c, _ := Init(WEI25519)
	rx, ry := EdwardsToWeierstrass(c, Elt{}, Elt{})
	if !rx.IsZero() || !ry.IsZero() {
		t.Fatalf("EdwardsToWeierstrass(0,0) = (%v,%v), want (0,0)", rx, ry)
	}
	ex, ey := WeierstrassToEdwards(c, Elt{}, Elt{})
	if !ex.IsZero() || !ey.IsZero() {
		t.Fatalf("WeierstrassToEdwards(0,0) = (%v,%v), want (0,0)", ex, ey)
	}
}
