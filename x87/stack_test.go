package x87

import "testing"

func TestSoftFpuLoadStoreF80RoundTrip(t *testing.T) {
	f := NewSoftFpu()
	v := F80{Sign: 1, Exp: 0x3F69, Sig: 0xCC53702C050D3513}
	f.LoadF80(v)
	got := f.StoreAndPopF80()
	if !got.Equal(v) {
		t.Fatalf("load/store F80 round trip: got %s, want %s", got, v)
	}
}

func TestSoftFpuStackRotation(t *testing.T) {
	f := NewSoftFpu()
	for i := 0; i < 8; i++ {
		f.LoadF80(F80{Sign: 0, Exp: uint32(16000 + i), Sig: 1 << 63})
	}
	// Most recently pushed value is st(0).
	if f.Peek(0).Exp != 16007 {
		t.Fatalf("st(0).Exp = %d, want 16007", f.Peek(0).Exp)
	}
	if f.Peek(7).Exp != 16000 {
		t.Fatalf("st(7).Exp = %d, want 16000", f.Peek(7).Exp)
	}
}

func TestSoftFpuLoadFromStack(t *testing.T) {
	f := NewSoftFpu()
	f.LoadF80(F80{Sign: 0, Exp: 100, Sig: 1 << 63}) // becomes st(1) after next push
	f.LoadF80(F80{Sign: 0, Exp: 200, Sig: 1 << 63}) // st(0)
	f.LoadFromStack(1)                              // push a copy of (pre-push) st(1)
	if f.Peek(0).Exp != 100 {
		t.Fatalf("after LoadFromStack(1), st(0).Exp = %d, want 100", f.Peek(0).Exp)
	}
	if f.Peek(1).Exp != 200 {
		t.Fatalf("after LoadFromStack(1), st(1).Exp = %d, want 200", f.Peek(1).Exp)
	}
}

func TestSoftFpuAddStackAndPop(t *testing.T) {
	f := NewSoftFpu()
	one := F80{Sign: 0, Exp: 16383, Sig: 1 << 63}
	f.LoadF80(one)
	f.LoadF80(one)
	f.AddStack(1) // st(0) += st(1): 2.0 in st(0), 1.0 still in st(1)
	if f.Peek(0).Exp != 16384 {
		t.Fatalf("after AddStack(1), st(0).Exp = %d, want 16384", f.Peek(0).Exp)
	}
	if f.Peek(1).Exp != 16383 {
		t.Fatalf("after AddStack(1), st(1).Exp = %d, want unchanged 16383", f.Peek(1).Exp)
	}

	f.AddPop(1) // st(1) += st(0), then pop
	if f.Peek(0).Exp != 16384 {
		t.Fatalf("after AddPop(1), st(0).Exp = %d, want 16384 (old st(1))", f.Peek(0).Exp)
	}
}

func TestSoftFpuNarrowLoadExpands(t *testing.T) {
	f := NewSoftFpu()
	f.LoadF32(F32{Sign: 0, Exp: 127, Sig: 0}) // 1.0f
	got := f.StoreAndPopF80()
	want := F80{Sign: 0, Exp: f80Bias, Sig: 1 << 63}
	if !got.Equal(want) {
		t.Fatalf("load F32(1.0), store F80 = %s, want %s", got, want)
	}
}

func TestSoftFpuPanicsOnBadIndex(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out-of-range stack index")
		}
	}()
	f := NewSoftFpu()
	f.AddStack(8)
}

func TestSoftFpuFreshStackIsZero(t *testing.T) {
	f := NewSoftFpu()
	for i := 0; i < 8; i++ {
		if !f.Peek(i).IsZero() {
			t.Fatalf("st(%d) on a fresh SoftFpu = %s, want zero", i, f.Peek(i))
		}
	}
}
