package x87

import "fmt"

// F32 is the IEEE-754 binary32 encoding: 1 sign bit, 8-bit biased
// exponent, 23-bit significand with an implicit leading 1 for normals.
type F32 struct {
	Sign uint32
	Exp  uint32
	Sig  uint32
}

// F64 is the IEEE-754 binary64 encoding: 1 sign bit, 11-bit biased
// exponent, 52-bit significand with an implicit leading 1 for normals.
type F64 struct {
	Sign uint32
	Exp  uint32
	Sig  uint64
}

// F80 is the x87 80-bit extended precision encoding: 1 sign bit, 15-bit
// biased exponent, and a 64-bit significand with an EXPLICIT integer bit
// at bit 63 (unlike F32/F64, whose leading 1 is implicit).
type F80 struct {
	Sign uint32
	Exp  uint32
	Sig  uint64
}

const (
	f32ExpBits = 8
	f32SigBits = 23
	f32Bias    = 127

	f64ExpBits = 11
	f64SigBits = 52
	f64Bias    = 1023

	f80ExpBits = 15
	f80SigBits = 63
	f80Bias    = 16383
)

// formatSpec is a capability descriptor: the bit
// widths and bias shared by the two narrow formats, parameterizing the
// conversion core so it is written once rather than twice.
type formatSpec struct {
	expBits uint
	sigBits uint
	bias    uint32
}

var spec32 = formatSpec{expBits: f32ExpBits, sigBits: f32SigBits, bias: f32Bias}
var spec64 = formatSpec{expBits: f64ExpBits, sigBits: f64SigBits, bias: f64Bias}

func (fs formatSpec) expMax() uint32 {
	return uint32(1)<<fs.expBits - 1
}

// Bits packs f into its 32-bit wire representation.
func (f F32) Bits() uint32 {
	return (f.Sign << 31) | (f.Exp << f32SigBits) | (f.Sig & (1<<f32SigBits - 1))
}

// F32FromBits unpacks a 32-bit wire representation into its fields.
func F32FromBits(v uint32) F32 {
	return F32{
		Sign: v >> 31,
		Exp:  (v >> f32SigBits) & (1<<f32ExpBits - 1),
		Sig:  v & (1<<f32SigBits - 1),
	}
}

// Equal reports whether f and g have bitwise-identical encodings.
func (f F32) Equal(g F32) bool {
	return f.Bits() == g.Bits()
}

// String renders f as sign_exponent_significand in width-padded hex,
// e.g. "0_7f_000000" for 1.0.
func (f F32) String() string {
	return fmt.Sprintf("%d_%02x_%06x", f.Sign&1, f.Exp&(1<<f32ExpBits-1), f.Sig&(1<<f32SigBits-1))
}

// Bits packs f into its 64-bit wire representation.
func (f F64) Bits() uint64 {
	return (uint64(f.Sign) << 63) | (uint64(f.Exp) << f64SigBits) | (f.Sig & (1<<f64SigBits - 1))
}

// F64FromBits unpacks a 64-bit wire representation into its fields.
func F64FromBits(v uint64) F64 {
	return F64{
		Sign: uint32(v >> 63),
		Exp:  uint32((v >> f64SigBits) & (1<<f64ExpBits - 1)),
		Sig:  v & (1<<f64SigBits - 1),
	}
}

// Equal reports whether f and g have bitwise-identical encodings.
func (f F64) Equal(g F64) bool {
	return f.Bits() == g.Bits()
}

// String renders f as sign_exponent_significand in width-padded hex,
// e.g. "0_3ff_0000000000000" for 1.0.
func (f F64) String() string {
	return fmt.Sprintf("%d_%03x_%013x", f.Sign&1, f.Exp&(1<<f64ExpBits-1), f.Sig&(1<<f64SigBits-1))
}

// Bits packs f into its 80-bit wire representation: a 16-bit sign||exponent
// half-word followed by the 64-bit significand (the layout real x87 STn
// registers and memory operands use).
func (f F80) Bits() (hi uint16, lo uint64) {
	hi = uint16(f.Sign&1)<<15 | uint16(f.Exp&(1<<f80ExpBits-1))
	lo = f.Sig
	return
}

// F80FromBits is the inverse of [F80.Bits].
func F80FromBits(hi uint16, lo uint64) F80 {
	return F80{
		Sign: uint32(hi >> 15),
		Exp:  uint32(hi) & (1<<f80ExpBits - 1),
		Sig:  lo,
	}
}

// Equal reports whether f and g have bitwise-identical encodings.
func (f F80) Equal(g F80) bool {
	fhi, flo := f.Bits()
	ghi, glo := g.Bits()
	return fhi == ghi && flo == glo
}

// IntegerBit reports the explicit integer bit (bit 63 of the significand).
func (f F80) IntegerBit() uint32 {
	return uint32(f.Sig >> 63)
}

// String renders f as sign_exponent_integerbit_fraction in width-padded
// hex, e.g. "0_3fff_1_0000000000000000" for 1.0.
func (f F80) String() string {
	frac := f.Sig & (1<<63 - 1)
	return fmt.Sprintf("%d_%04x_%d_%016x", f.Sign&1, f.Exp&(1<<f80ExpBits-1), f.IntegerBit(), frac)
}

// IsZero reports whether f is a positive or negative zero.
func (f F80) IsZero() bool {
	return f.Exp == 0 && f.Sig == 0
}

// IsInf reports whether f is the canonical F80 encoding of infinity.
func (f F80) IsInf() bool {
	return f.Exp == 1<<f80ExpBits-1 && f.Sig == 1<<63
}

// IsNaN reports whether f has the NaN exponent and a significand that is
// neither zero nor the canonical infinity pattern (bit 63 alone).
func (f F80) IsNaN() bool {
	return f.Exp == 1<<f80ExpBits-1 && f.Sig != 0 && f.Sig != 1<<63
}

// Infinity returns the canonical F80 infinity with the given sign (0 or 1).
func Infinity(sign uint32) F80 {
	return F80{Sign: sign & 1, Exp: 1<<f80ExpBits - 1, Sig: 1 << 63}
}

// Zero returns the signed F80 zero (sign 0 or 1).
func Zero(sign uint32) F80 {
	return F80{Sign: sign & 1}
}
