// This package implements a software model of the legacy x87 floating-point
// unit: the three IEEE-754-like formats the FPU touches (32-, 64- and
// 80-bit extended precision), the expand/compress conversions between
// them, and an eight-entry rotating register stack supporting load,
// store-and-pop and add.
//
// Two implementations of the [Fpu] interface are provided. [SoftFpu] does
// everything with ordinary integer arithmetic and is safe to use from any
// number of goroutines, each with its own instance. [HardFpu] issues the
// corresponding native x87 instructions on amd64 and is a process-global
// singleton: the underlying register file is real hardware state, so only
// one [HardFpu] may be acquired at a time, see [AcquireHardFpu].
//
// The companion command in cmd/x87diff drives both implementations with
// the same sequences of pseudo-random and hand-picked values and reports
// any bit-level disagreement; see [RunDifferentialTests].
package x87
