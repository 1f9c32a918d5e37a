package x87

// Fpu is the abstract x87 register-file operations: load, load-from-stack,
// store-and-pop, add, add-stack and add-pop, each addressable relative to
// the current top of an eight-entry rotating stack. [SoftFpu] implements
// every operation with ordinary integer arithmetic; [HardFpu] issues the
// real x87 instructions. Lifted to an explicit interface, rather than a
// build-tag-selected pair of free functions, because both implementations
// must coexist in the same binary at once.
type Fpu interface {
	LoadF80(v F80)
	LoadF64(v F64)
	LoadF32(v F32)
	LoadFromStack(i int)

	StoreAndPopF80() F80
	StoreAndPopF64() F64
	StoreAndPopF32() F32

	Add(v F80)
	AddF64(v F64)
	AddF32(v F32)
	AddStack(i int)
	AddPop(i int)

	// Close releases any process-global resource the implementation
	// holds. SoftFpu's Close is a no-op; HardFpu's releases the
	// singleton hardware gate.
	Close()
}

// AddStackTop is add_stack with the implicit index i = 1 (the x87
// FADD ST(0),ST(1) form).
func AddStackTop(f Fpu) { f.AddStack(1) }

// AddPopTop is add_pop with the implicit index i = 1 (the x87
// FADDP ST(1),ST(0) form).
func AddPopTop(f Fpu) { f.AddPop(1) }

// LoadFromStackTop is load_from_stack with the implicit index i = 1
// (the x87 FLD ST(1) form).
func LoadFromStackTop(f Fpu) { f.LoadFromStack(1) }

func checkStackIndex(i int) {
	if i < 0 || i > 7 {
		panic("x87: stack index out of range [0,7]")
	}
}

// SoftFpu is a software model of the x87 register stack: eight F80 slots
// addressed relative to a rotating top index, with no hidden hardware
// state. Multiple SoftFpu values may be used concurrently, each owning
// its own stack.
type SoftFpu struct {
	stack [8]F80
	top   int
}

// NewSoftFpu returns a SoftFpu with an all-zero stack.
func NewSoftFpu() *SoftFpu {
	return &SoftFpu{}
}

func (f *SoftFpu) st(i int) *F80 {
	return &f.stack[(f.top+i)&7]
}

func (f *SoftFpu) push(v F80) {
	f.top = (f.top - 1) & 7
	f.stack[f.top] = v
}

func (f *SoftFpu) pop() F80 {
	v := f.stack[f.top]
	f.top = (f.top + 1) & 7
	return v
}

// Peek returns st(i) without modifying the stack; it exists for tests
// and diagnostics, not as part of the Fpu contract.
func (f *SoftFpu) Peek(i int) F80 {
	checkStackIndex(i)
	return *f.st(i)
}

func (f *SoftFpu) LoadF80(v F80) { f.push(v) }
func (f *SoftFpu) LoadF64(v F64) { f.push(Expand64(v)) }
func (f *SoftFpu) LoadF32(v F32) { f.push(Expand32(v)) }

// LoadFromStack copies st(i), evaluated before the push, into the new
// st(0): read the source register first, then push it, rather than
// pushing and reading post-push (which would read st(i-1)).
func (f *SoftFpu) LoadFromStack(i int) {
	checkStackIndex(i)
	tmp := *f.st(i)
	f.push(tmp)
}

func (f *SoftFpu) StoreAndPopF80() F80 { return f.pop() }
func (f *SoftFpu) StoreAndPopF64() F64 { return Compress64(f.pop()) }
func (f *SoftFpu) StoreAndPopF32() F32 { return Compress32(f.pop()) }

func (f *SoftFpu) Add(v F80) { *f.st(0) = addCore(*f.st(0), v, false) }
func (f *SoftFpu) AddF64(v F64) { f.Add(Expand64(v)) }
func (f *SoftFpu) AddF32(v F32) { f.Add(Expand32(v)) }

func (f *SoftFpu) AddStack(i int) {
	checkStackIndex(i)
	*f.st(0) = addCore(*f.st(0), *f.st(i), false)
}

func (f *SoftFpu) AddPop(i int) {
	checkStackIndex(i)
	*f.st(i) = addCore(*f.st(i), *f.st(0), false)
	f.pop()
}

func (f *SoftFpu) Close() {}

var _ Fpu = (*SoftFpu)(nil)
