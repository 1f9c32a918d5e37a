package x87

import "encoding/binary"

// Declared here, defined in hardfpu_amd64.s: each issues one or two raw
// x87 opcode bytes. Functions taking a *byte dereference it with no
// offset (x87's [AX] addressing); ST(i)-relative forms are split one
// function per index because the opcode's low nibble must be a
// compile-time immediate in the assembly.

func hardwareInit()

func hardwareFld80(p *byte)
func hardwareFld64(p *byte)
func hardwareFld32(p *byte)

func hardwareFstp80(p *byte)
func hardwareFstp64(p *byte)
func hardwareFstp32(p *byte)

func hardwareFaddM64(p *byte)
func hardwareFaddM32(p *byte)

func hardwareFldSt0()
func hardwareFldSt1()
func hardwareFldSt2()
func hardwareFldSt3()
func hardwareFldSt4()
func hardwareFldSt5()
func hardwareFldSt6()
func hardwareFldSt7()

func hardwareFaddSt0()
func hardwareFaddSt1()
func hardwareFaddSt2()
func hardwareFaddSt3()
func hardwareFaddSt4()
func hardwareFaddSt5()
func hardwareFaddSt6()
func hardwareFaddSt7()

func hardwareFaddPop0()
func hardwareFaddPop1()
func hardwareFaddPop2()
func hardwareFaddPop3()
func hardwareFaddPop4()
func hardwareFaddPop5()
func hardwareFaddPop6()
func hardwareFaddPop7()

var fldStTable = [8]func(){
	hardwareFldSt0, hardwareFldSt1, hardwareFldSt2, hardwareFldSt3,
	hardwareFldSt4, hardwareFldSt5, hardwareFldSt6, hardwareFldSt7,
}

var faddStTable = [8]func(){
	hardwareFaddSt0, hardwareFaddSt1, hardwareFaddSt2, hardwareFaddSt3,
	hardwareFaddSt4, hardwareFaddSt5, hardwareFaddSt6, hardwareFaddSt7,
}

var faddPopTable = [8]func(){
	hardwareFaddPop0, hardwareFaddPop1, hardwareFaddPop2, hardwareFaddPop3,
	hardwareFaddPop4, hardwareFaddPop5, hardwareFaddPop6, hardwareFaddPop7,
}

func putF80(buf *[10]byte, v F80) {
	binary.LittleEndian.PutUint64(buf[0:8], v.Sig)
	hi, _ := v.Bits()
	binary.LittleEndian.PutUint16(buf[8:10], hi)
}

func getF80(buf *[10]byte) F80 {
	sig := binary.LittleEndian.Uint64(buf[0:8])
	hi := binary.LittleEndian.Uint16(buf[8:10])
	return F80FromBits(hi, sig)
}

// LoadF80 pushes v via FLD m80real.
func (h *HardFpu) LoadF80(v F80) {
	h.checkOpen()
	var buf [10]byte
	putF80(&buf, v)
	hardwareFld80(&buf[0])
}

// LoadF64 pushes v via FLD m64real; the hardware widens it to F80.
func (h *HardFpu) LoadF64(v F64) {
	h.checkOpen()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v.Bits())
	hardwareFld64(&buf[0])
}

// LoadF32 pushes v via FLD m32real; the hardware widens it to F80.
func (h *HardFpu) LoadF32(v F32) {
	h.checkOpen()
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v.Bits())
	hardwareFld32(&buf[0])
}

// LoadFromStack pushes a copy of st(i) via FLD ST(i); the hardware's own
// pre-push indexing already matches the corrected load-from-stack semantics.
func (h *HardFpu) LoadFromStack(i int) {
	h.checkOpen()
	checkStackIndex(i)
	fldStTable[i]()
}

// StoreAndPopF80 pops st(0) via FSTP m80real.
func (h *HardFpu) StoreAndPopF80() F80 {
	h.checkOpen()
	var buf [10]byte
	hardwareFstp80(&buf[0])
	return getF80(&buf)
}

// StoreAndPopF64 pops st(0), narrowed to F64, via FSTP m64real.
func (h *HardFpu) StoreAndPopF64() F64 {
	h.checkOpen()
	var buf [8]byte
	hardwareFstp64(&buf[0])
	return F64FromBits(binary.LittleEndian.Uint64(buf[:]))
}

// StoreAndPopF32 pops st(0), narrowed to F32, via FSTP m32real.
func (h *HardFpu) StoreAndPopF32() F32 {
	h.checkOpen()
	var buf [4]byte
	hardwareFstp32(&buf[0])
	return F32FromBits(binary.LittleEndian.Uint32(buf[:]))
}

// Add computes st(0) += v. x87 has no FADD form that reads an m80real
// operand directly, so v is pushed and folded in with FADDP ST(1),ST(0),
// which leaves the stack depth unchanged.
func (h *HardFpu) Add(v F80) {
	h.checkOpen()
	h.LoadF80(v)
	hardwareFaddPop1()
}

// AddF64 computes st(0) += v via the single-operand FADD m64real form.
func (h *HardFpu) AddF64(v F64) {
	h.checkOpen()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v.Bits())
	hardwareFaddM64(&buf[0])
}

// AddF32 computes st(0) += v via the single-operand FADD m32real form.
func (h *HardFpu) AddF32(v F32) {
	h.checkOpen()
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v.Bits())
	hardwareFaddM32(&buf[0])
}

// AddStack computes st(0) += st(i) via FADD ST(0),ST(i).
func (h *HardFpu) AddStack(i int) {
	h.checkOpen()
	checkStackIndex(i)
	faddStTable[i]()
}

// AddPop computes st(i) += st(0), then pops, via FADDP ST(i),ST(0).
func (h *HardFpu) AddPop(i int) {
	h.checkOpen()
	checkStackIndex(i)
	faddPopTable[i]()
}
