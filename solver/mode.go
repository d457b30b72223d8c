// package solver is the dispatch shell: it iterates the per-cell DG
// kernel (package dg) and slope limiter (package limiter) over every
// interior cell using a selectable execution backend, and implements the
// CFL-input wavespeed pass and the global-maximum reduction.
package solver

// Mode selects the execution backend for a dispatch-shell pass.
type Mode int

const (
	// ModeCPU runs a sequential nested loop over interior cells.
	ModeCPU Mode = iota
	// ModeOMP runs a fixed-size goroutine worker pool over interior cells.
	ModeOMP
	// ModeGPU launches a 2-D grid of 16x16 thread blocks over interior
	// cells; a compiled-in no-op unless built with the "gpu" tag.
	ModeGPU
)

// BlockShape is the GPU thread-block tile shape.
const BlockShape = 16

func (m Mode) String() string {
	switch m {
	case ModeCPU:
		return "cpu"
	case ModeOMP:
		return "omp"
	case ModeGPU:
		return "gpu"
	default:
		return "unknown"
	}
}
