package ecc

import "testing"

func TestFieldAddSub(t *testing.T) {
	for _, id := range []CurveId{SECP256R1, WEI25519} {
		c, _ := Init(id)
		x := Elt{123, 0, 0, 0, 0, 0, 0, 0}
		y := Elt{45, 0, 0, 0, 0, 0, 0, 0}

		sum := FieldAdd(c, x, y)
		back := FieldSub(c, sum, y)
		if back.Cmp(x) != 0 {
			t.Fatalf("curve %d: FieldSub(FieldAdd(x,y),y) = %v, want %v", id, back, x)
		}
	}
}

func TestFieldInvIdentity(t *testing.T) {
	for _, id := range []CurveId{SECP256R1, WEI25519, WEI25519_2} {
		c, _ := Init(id)
		x := Elt{0xdeadbeef, 1, 2, 3, 0, 0, 0, 0}
		inv, err := FieldInv(c, x)
		if err != nil {
			t.Fatalf("curve %d: FieldInv: %v", id, err)
		}
		product := FieldMul(c, x, inv)
		if !product.IsOne() {
			t.Fatalf("curve %d: x*x^-1 mod p = %v, want 1", id, product)
		}
	}
}

func TestFieldInvZeroErrors(t *testing.T) {
	c, _ := Init(SECP256R1)
	if _, err := FieldInv(c, Elt{}); err == nil {
		t.Fatalf("expected an error inverting zero")
	}
}

func TestOrderInvIdentity(t *testing.T) {
	c, _ := Init(SECP256R1)
	x := Elt{1, 2, 3, 0, 0, 0, 0, 0}
	inv, err := OrderInv(c, x)
	if err != nil {
		t.Fatal(err)
	}
	product := OrderMul(c, x, inv)
	if !product.IsOne() {
		t.Fatalf("x*x^-1 mod n = %v, want 1", product)
	}
}

func TestFieldSqr(t *testing.T) {
	c, _ := Init(SECP256R1)
	x := Elt{7, 0, 0, 0, 0, 0, 0, 0}
	if got, want := FieldSqr(c, x), FieldMul(c, x, x); got.Cmp(want) != 0 {
		t.Fatalf("FieldSqr(x) = %v, want FieldMul(x,x) = %v", got, want)
	}
}
