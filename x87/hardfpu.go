package x87

import (
	"errors"

	"golang.org/x/sync/semaphore"
)

// hardGate enforces "exactly one hardware-FPU instance may be live at a
// time": the underlying register file is real process-wide hardware
// state, so a construction-token gate is acquired before any native x87
// instruction runs, rather than relying on hidden static state. A
// weighted semaphore sized 1 models a resource with exactly one owner,
// never more.
var hardGate = semaphore.NewWeighted(1)

// ErrHardFpuBusy is returned by AcquireHardFpu when another HardFpu is
// already live in this process.
var ErrHardFpuBusy = errors.New("x87: a HardFpu is already acquired in this process")

// HardFpu delegates every Fpu operation to the host's native x87
// instructions. It fulfils the same interface as SoftFpu and is
// required only to produce the same observable F80 bit patterns on
// readback; how it gets there internally is opaque. It
// is not reentrant or thread-safe, and at most one instance may be live
// in the process — obtain it with AcquireHardFpu, never with a bare
// struct literal.
type HardFpu struct {
	closed bool
}

// AcquireHardFpu takes the process-global hardware-FPU gate and returns
// a HardFpu bound to it. It returns ErrHardFpuBusy, rather than
// blocking, if another HardFpu is already live — this is
// a programmer error, not a condition callers should wait out.
func AcquireHardFpu() (*HardFpu, error) {
	if !hardGate.TryAcquire(1) {
		return nil, ErrHardFpuBusy
	}
	hardwareInit()
	return &HardFpu{}, nil
}

// Close releases the hardware-FPU gate. It must be called exactly once,
// after which the HardFpu must not be used again.
func (h *HardFpu) Close() {
	if h.closed {
		return
	}
	h.closed = true
	hardGate.Release(1)
}

func (h *HardFpu) checkOpen() {
	if h.closed {
		panic("x87: use of HardFpu after Close")
	}
}

var _ Fpu = (*HardFpu)(nil)
