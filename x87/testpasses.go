package x87

// Pass sizes for the differential test passes below.
const (
	happyFloatCount    = 4_000_000
	denormalFloatCount = 4_000_000
	nanCount           = 1_000_000
	storeSideCount     = 10_000_000
	roundTripCount     = 4_000_000
)

// loadStoreF80 feeds v to both FPUs and compares the F80 read back by
// load+store-F80, the trivial round trip every load-side pass reduces to.
func loadStoreF80(soft, hard Fpu, v F80, rep Reporter) {
	soft.LoadF80(v)
	sOut := soft.StoreAndPopF80()
	hard.LoadF80(v)
	hOut := hard.StoreAndPopF80()
	if !sOut.Equal(hOut) {
		reportMismatch(rep, v, sOut, hOut)
	}
}

func loadStoreF32(soft, hard Fpu, v F32, rep Reporter) {
	soft.LoadF32(v)
	sOut := soft.StoreAndPopF80()
	hard.LoadF32(v)
	hOut := hard.StoreAndPopF80()
	if !sOut.Equal(hOut) {
		reportMismatch(rep, v, sOut, hOut)
	}
}

func loadStoreF64(soft, hard Fpu, v F64, rep Reporter) {
	soft.LoadF64(v)
	sOut := soft.StoreAndPopF80()
	hard.LoadF64(v)
	hOut := hard.StoreAndPopF80()
	if !sOut.Equal(hOut) {
		reportMismatch(rep, v, sOut, hOut)
	}
}

func drainLoadStoreF32(soft, hard Fpu, s Stream[F32], rep Reporter) {
	for {
		v, ok := s.Next()
		if !ok {
			return
		}
		loadStoreF32(soft, hard, v, rep)
	}
}

func drainLoadStoreF64(soft, hard Fpu, s Stream[F64], rep Reporter) {
	for {
		v, ok := s.Next()
		if !ok {
			return
		}
		loadStoreF64(soft, hard, v, rep)
	}
}

func drainLoadStoreF80(soft, hard Fpu, s Stream[F80], rep Reporter) {
	for {
		v, ok := s.Next()
		if !ok {
			return
		}
		loadStoreF80(soft, hard, v, rep)
	}
}

func happyF32(v F32) bool { return v.Exp != 0xFF && v.Exp != 0 }
func happyF64(v F64) bool { return v.Exp != 0x7FF && v.Exp != 0 }

// denormalTransformF32 forces exponent 0 and a uniformly distributed
// leading-zero count in the significand: apply the implicit integer bit
// explicitly, then right-shift by the original exponent mod the
// significand width.
func denormalTransformF32(v F32) F32 {
	shift := uint(v.Exp) % f32SigBits
	m := (v.Sig | (1 << f32SigBits)) >> shift
	return F32{Sign: v.Sign, Exp: 0, Sig: m & (1<<f32SigBits - 1)}
}

func denormalTransformF64(v F64) F64 {
	shift := uint(v.Exp) % f64SigBits
	m := (v.Sig | (1 << f64SigBits)) >> shift
	return F64{Sign: v.Sign, Exp: 0, Sig: m & (1<<f64SigBits - 1)}
}

// nanTransformF32 forces the NaN exponent while leaving the payload
// random; a payload that happened to land on zero is nudged to 1 so the
// value stays a NaN rather than becoming infinity.
func nanTransformF32(v F32) F32 {
	sig := v.Sig & (1<<f32SigBits - 1)
	if sig == 0 {
		sig = 1
	}
	return F32{Sign: v.Sign, Exp: 0xFF, Sig: sig}
}

func nanTransformF64(v F64) F64 {
	sig := v.Sig & (1<<f64SigBits - 1)
	if sig == 0 {
		sig = 1
	}
	return F64{Sign: v.Sign, Exp: 0x7FF, Sig: sig}
}

// storeNormalTransform forces an F80 exponent that lands inside the
// normal range of the target format, integer bit on, for store-side
// pass category (a).
func storeNormalTransform(targetExpBits uint, targetBias uint32) func(F80) F80 {
	return func(v F80) F80 {
		expMaxT := uint32(1)<<targetExpBits - 1
		eT := 1 + uint32(v.Exp)%uint32(expMaxT-1)
		e := int32(eT) - int32(targetBias) + f80Bias
		return F80{Sign: v.Sign, Exp: uint32(e), Sig: v.Sig | (1 << 63)}
	}
}

// storeDenormalTransform lands the effective exponent inside the narrow
// denormal band: (bias + narrow_min_exp) + (exp mod denormal_range), with
// bias the F80 bias, narrow_min_exp = -(targetBias + targetSigBits) and
// denormal_range = targetSigBits + 1, so the target's biased exponent
// before denormalization spans -targetSigBits..0.
func storeDenormalTransform(targetSigBits uint, targetBias uint32) func(F80) F80 {
	return func(v F80) F80 {
		denormalRange := uint32(targetSigBits) + 1
		e := f80Bias - int32(targetBias) - int32(targetSigBits) + int32(uint32(v.Exp)%denormalRange)
		return F80{Sign: v.Sign, Exp: uint32(e), Sig: v.Sig | (1 << 63)}
	}
}

func storeInfTransform(v F80) F80 { return Infinity(v.Sign) }
func storeZeroTransform(v F80) F80 { return Zero(v.Sign) }

func storeNaNTransform(v F80) F80 {
	sig := v.Sig | (1 << 63)
	if sig == 1<<63 {
		sig |= 1
	}
	return F80{Sign: v.Sign, Exp: 1<<f80ExpBits - 1, Sig: sig}
}

// storeBoundaryConstants are hand-picked F80 rounding-boundary inputs
// the store-side pass must cover regardless of what the PRNG happens to
// draw.
var storeBoundaryConstants = []F80{
	{Sign: 1, Exp: 0x3F69, Sig: 0xCC53702C050D3513},
	{Sign: 0, Exp: 0x3BFF, Sig: 0x8E65BD8630709000},
	{Sign: 0, Exp: 0x3F80, Sig: 0xFFFFFF1FD1AD2BDD},
	{Sign: 0, Exp: 0x3F80, Sig: 0xFFFFFF8000000000},
	{Sign: 0, Exp: 0x3F80, Sig: 0xFFFFFE8000000000},
	{Sign: 0, Exp: 0x3C00, Sig: 0x801CEEE9D3EC8800},
	{Sign: 0, Exp: 0x3C00, Sig: 0x801CEEE9D3EC8801},
	{Sign: 0, Exp: 0x3C00, Sig: 0x801CEEE9D3EC8C00},
}

func runStoreSideF64(soft, hard Fpu, seed int64, rep Reporter) {
	perCategory := storeSideCount / 5

	normal := NewTransformedStream[F80](NewUniformF80Stream(seed, perCategory), storeNormalTransform(f64ExpBits, f64Bias))
	drainStoreF64(soft, hard, normal, rep)

	denormal := NewTransformedStream[F80](NewUniformF80Stream(seed+1, perCategory), storeDenormalTransform(f64SigBits, f64Bias))
	drainStoreF64(soft, hard, denormal, rep)

	inf := NewTransformedStream[F80](NewUniformF80Stream(seed+2, perCategory), storeInfTransform)
	drainStoreF64(soft, hard, inf, rep)

	zero := NewTransformedStream[F80](NewUniformF80Stream(seed+3, perCategory), storeZeroTransform)
	drainStoreF64(soft, hard, zero, rep)

	nan := NewTransformedStream[F80](NewUniformF80Stream(seed+4, perCategory), storeNaNTransform)
	drainStoreF64(soft, hard, nan, rep)

	for _, v := range storeBoundaryConstants {
		storeF64(soft, hard, v, rep)
	}
}

func runStoreSideF32(soft, hard Fpu, seed int64, rep Reporter) {
	perCategory := storeSideCount / 5

	normal := NewTransformedStream[F80](NewUniformF80Stream(seed, perCategory), storeNormalTransform(f32ExpBits, f32Bias))
	drainStoreF32(soft, hard, normal, rep)

	denormal := NewTransformedStream[F80](NewUniformF80Stream(seed+1, perCategory), storeDenormalTransform(f32SigBits, f32Bias))
	drainStoreF32(soft, hard, denormal, rep)

	inf := NewTransformedStream[F80](NewUniformF80Stream(seed+2, perCategory), storeInfTransform)
	drainStoreF32(soft, hard, inf, rep)

	zero := NewTransformedStream[F80](NewUniformF80Stream(seed+3, perCategory), storeZeroTransform)
	drainStoreF32(soft, hard, zero, rep)

	nan := NewTransformedStream[F80](NewUniformF80Stream(seed+4, perCategory), storeNaNTransform)
	drainStoreF32(soft, hard, nan, rep)

	for _, v := range storeBoundaryConstants {
		storeF32(soft, hard, v, rep)
	}
}

func storeF64(soft, hard Fpu, v F80, rep Reporter) {
	soft.LoadF80(v)
	sOut := soft.StoreAndPopF64()
	hard.LoadF80(v)
	hOut := hard.StoreAndPopF64()
	if !sOut.Equal(hOut) {
		reportMismatch(rep, v, sOut, hOut)
	}
}

func storeF32(soft, hard Fpu, v F80, rep Reporter) {
	soft.LoadF80(v)
	sOut := soft.StoreAndPopF32()
	hard.LoadF80(v)
	hOut := hard.StoreAndPopF32()
	if !sOut.Equal(hOut) {
		reportMismatch(rep, v, sOut, hOut)
	}
}

func drainStoreF64(soft, hard Fpu, s Stream[F80], rep Reporter) {
	for {
		v, ok := s.Next()
		if !ok {
			return
		}
		storeF64(soft, hard, v, rep)
	}
}

func drainStoreF32(soft, hard Fpu, s Stream[F80], rep Reporter) {
	for {
		v, ok := s.Next()
		if !ok {
			return
		}
		storeF32(soft, hard, v, rep)
	}
}

// RunDifferentialTests drives soft and hard through every pass below,
// reporting each disagreement to rep and continuing regardless — a
// mismatch is a diagnostic, never a reason to stop the run.
func RunDifferentialTests(soft, hard Fpu, seed int64, rep Reporter) {
	// Pass 1: happy (normal) floats, load then immediate store as F80.
	drainLoadStoreF32(soft, hard, NewFilteredStream(seed, happyFloatCount, 4, buildF32, happyF32), rep)
	drainLoadStoreF64(soft, hard, NewFilteredStream(seed+1, happyFloatCount, 8, buildF64, happyF64), rep)

	// Pass 2: denormal floats.
	drainLoadStoreF32(soft, hard, NewTransformedStream[F32](NewUniformF32Stream(seed+2, denormalFloatCount), denormalTransformF32), rep)
	drainLoadStoreF64(soft, hard, NewTransformedStream[F64](NewUniformF64Stream(seed+3, denormalFloatCount), denormalTransformF64), rep)

	// Pass 3: the four signed special constants, one each.
	loadStoreF32(soft, hard, F32{Sign: 0, Exp: 0xFF, Sig: 0}, rep)
	loadStoreF32(soft, hard, F32{Sign: 1, Exp: 0xFF, Sig: 0}, rep)
	loadStoreF32(soft, hard, F32{Sign: 0, Exp: 0, Sig: 0}, rep)
	loadStoreF32(soft, hard, F32{Sign: 1, Exp: 0, Sig: 0}, rep)
	loadStoreF64(soft, hard, F64{Sign: 0, Exp: 0x7FF, Sig: 0}, rep)
	loadStoreF64(soft, hard, F64{Sign: 1, Exp: 0x7FF, Sig: 0}, rep)
	loadStoreF64(soft, hard, F64{Sign: 0, Exp: 0, Sig: 0}, rep)
	loadStoreF64(soft, hard, F64{Sign: 1, Exp: 0, Sig: 0}, rep)

	// Pass 4: NaNs.
	drainLoadStoreF32(soft, hard, NewTransformedStream[F32](NewUniformF32Stream(seed+4, nanCount), nanTransformF32), rep)
	drainLoadStoreF64(soft, hard, NewTransformedStream[F64](NewUniformF64Stream(seed+5, nanCount), nanTransformF64), rep)

	// Pass 5: store-side (compress) tests, plus the fixed rounding
	// boundary constants.
	runStoreSideF64(soft, hard, seed+6, rep)
	runStoreSideF32(soft, hard, seed+7, rep)

	// Independent top-level pass: fully-random F80 load+store round trip.
	drainLoadStoreF80(soft, hard, NewUniformF80Stream(seed+8, roundTripCount), rep)
}
