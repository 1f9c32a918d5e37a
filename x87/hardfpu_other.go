//go:build !amd64

package x87

// HardFpu has no native implementation outside amd64: Go's assembler
// only has x87 opcode support (via raw BYTE sequences) for amd64, and
// the legacy x87 unit itself does not exist on other architectures.
// AcquireHardFpu and Close still work, but every load, store and add
// operation panics: a call the caller should never reach on this
// platform.

func hardwareInit() {}

func (h *HardFpu) unsupported() {
	panic("x87: HardFpu is only implemented on amd64")
}

func (h *HardFpu) LoadF80(v F80)       { h.unsupported() }
func (h *HardFpu) LoadF64(v F64)       { h.unsupported() }
func (h *HardFpu) LoadF32(v F32)       { h.unsupported() }
func (h *HardFpu) LoadFromStack(i int) { h.unsupported() }

func (h *HardFpu) StoreAndPopF80() F80 { h.unsupported(); return F80{} }
func (h *HardFpu) StoreAndPopF64() F64 { h.unsupported(); return F64{} }
func (h *HardFpu) StoreAndPopF32() F32 { h.unsupported(); return F32{} }

func (h *HardFpu) Add(v F80)      { h.unsupported() }
func (h *HardFpu) AddF64(v F64)   { h.unsupported() }
func (h *HardFpu) AddF32(v F32)   { h.unsupported() }
func (h *HardFpu) AddStack(i int) { h.unsupported() }
func (h *HardFpu) AddPop(i int)   { h.unsupported() }
