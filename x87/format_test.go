package x87

import "testing"

func TestF32BitsRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 0x3F800000, 0x7F800000, 0xFF800000, 0x7FC00000, 0x80000000} {
		f := F32FromBits(v)
		if f.Bits() != v {
			t.Fatalf("F32FromBits(0x%08X).Bits() = 0x%08X", v, f.Bits())
		}
	}
}

func TestF64BitsRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 0x3FF0000000000000, 0x7FF0000000000000, 0xFFF0000000000000} {
		f := F64FromBits(v)
		if f.Bits() != v {
			t.Fatalf("F64FromBits(0x%016X).Bits() = 0x%016X", v, f.Bits())
		}
	}
}

func TestF80BitsRoundTrip(t *testing.T) {
	cases := []struct{ hi uint16; lo uint64 }{
		{0, 0},
		{0x3FFF, 1 << 63},
		{0x7FFF, 1 << 63},
		{0xFFFF, 0xC000000000000000},
	}
	for _, c := range cases {
		f := F80FromBits(c.hi, c.lo)
		hi, lo := f.Bits()
		if hi != c.hi || lo != c.lo {
			t.Fatalf("F80FromBits(0x%04X,0x%016X).Bits() = 0x%04X,0x%016X", c.hi, c.lo, hi, lo)
		}
	}
}

func TestF80Predicates(t *testing.T) {
	if !Zero(0).IsZero() || !Zero(1).IsZero() {
		t.Fatalf("Zero() is not IsZero()")
	}
	if !Infinity(0).IsInf() || !Infinity(1).IsInf() {
		t.Fatalf("Infinity() is not IsInf()")
	}
	nan := F80{Sign: 0, Exp: 0x7FFF, Sig: 0xC000000000000001}
	if !nan.IsNaN() {
		t.Fatalf("expected IsNaN")
	}
	if Infinity(0).IsNaN() || Zero(0).IsNaN() {
		t.Fatalf("infinity/zero must not be IsNaN")
	}
}

func TestF80String(t *testing.T) {
	one := F80{Sign: 0, Exp: 0x3FFF, Sig: 1 << 63}
	got := one.String()
	want := "0_3fff_1_0000000000000000"
	if got != want {
		t.Fatalf("F80.String() = %q, want %q", got, want)
	}
}
