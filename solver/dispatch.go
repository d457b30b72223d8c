package solver

import (
	"runtime"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/macfadyen/sailfish/cellbasis"
	"github.com/macfadyen/sailfish/dg"
	"github.com/macfadyen/sailfish/limiter"
	"github.com/macfadyen/sailfish/patch"
	"github.com/macfadyen/sailfish/solver/gpudispatch"
	"gonum.org/v1/gonum/floats"
)

// cellFunc is one independent per-cell unit of work.
type cellFunc func(i, j int)

// forEachCell iterates fn over every interior cell (i, j) in
// [0, ni) x [0, nj) using the given backend. ModeOMP partitions the
// flattened index space across runtime.GOMAXPROCS(0) goroutines with a
// single sync.WaitGroup barrier and no per-cell locking, since each
// goroutine's cells write to disjoint patch storage.
func forEachCell(ni, nj int, mode Mode, fn cellFunc) {
	switch mode {
	case ModeCPU:
		for i := 0; i < ni; i++ {
			for j := 0; j < nj; j++ {
				fn(i, j)
			}
		}
	case ModeOMP:
		n := ni * nj
		nprocs := runtime.GOMAXPROCS(0)
		if nprocs > n {
			nprocs = n
		}
		if nprocs < 1 {
			nprocs = 1
		}
		var wg sync.WaitGroup
		wg.Add(nprocs)
		for pp := 0; pp < nprocs; pp++ {
			go func(pp int) {
				defer wg.Done()
				for idx := pp; idx < n; idx += nprocs {
					fn(idx/nj, idx%nj)
				}
			}(pp)
		}
		wg.Wait()
	case ModeGPU:
		gpudispatch.Dispatch(ni, nj, BlockShape, fn)
	}
}

func validatePass(rd, wr patch.Patch, mesh cellbasis.Mesh) error {
	if !patch.SameShape(rd, wr) {
		return chk.Err("read and write patches must share identical shape")
	}
	if err := patch.RequireDistinct(rd, wr); err != nil {
		return err
	}
	if rd.Interior0() != mesh.Ni || rd.Interior1() != mesh.Nj {
		return chk.Err("patch interior extents (%d,%d) do not match mesh (%d,%d)",
			rd.Interior0(), rd.Interior1(), mesh.Ni, mesh.Nj)
	}
	return nil
}

// AdvanceRK performs one semi-discrete forward-Euler DG substep over every
// interior cell, reading weightsRd and writing weightsWr.
func AdvanceRK(cell cellbasis.Cell, mesh cellbasis.Mesh, weightsRd, weightsWr patch.Patch, dt float64, mode Mode) error {
	if err := validatePass(weightsRd, weightsWr, mesh); err != nil {
		return err
	}
	forEachCell(mesh.Ni, mesh.Nj, mode, func(i, j int) {
		dg.AdvanceCell(cell, mesh, weightsRd, weightsWr, dt, i, j)
	})
	return nil
}

// LimitSlopes performs one characteristic-variable TVB limiter pass over
// every interior cell.
func LimitSlopes(cell cellbasis.Cell, mesh cellbasis.Mesh, weightsRd, weightsWr patch.Patch, mode Mode) error {
	if err := validatePass(weightsRd, weightsWr, mesh); err != nil {
		return err
	}
	forEachCell(mesh.Ni, mesh.Nj, mode, func(i, j int) {
		limiter.LimitSlopesCell(cell, mesh, weightsRd, weightsWr, i, j)
	})
	return nil
}

// Wavespeed computes the cell-local maximum signal speed for every
// interior cell into wavespeedOut (a G=0, single-field patch).
func Wavespeed(cell cellbasis.Cell, mesh cellbasis.Mesh, weights, wavespeedOut patch.Patch, mode Mode) error {
	if wavespeedOut.Interior0() != mesh.Ni || wavespeedOut.Interior1() != mesh.Nj {
		return chk.Err("wavespeed patch extents do not match mesh")
	}
	forEachCell(mesh.Ni, mesh.Nj, mode, func(i, j int) {
		wavespeedOut.At(i, j)[0] = dg.CellWavespeed(cell, weights, i, j)
	})
	return nil
}

// Maximum is the scalar global-maximum reduction over data. Unlike the
// per-cell passes, which silently no-op on an unavailable backend because
// they leave a populated write buffer behind, Maximum has no fallback
// buffer to return, so ModeGPU panics rather than returning a silently
// wrong zero.
func Maximum(data []float64, mode Mode) float64 {
	switch mode {
	case ModeCPU:
		return floats.Max(data)
	case ModeOMP:
		nprocs := runtime.GOMAXPROCS(0)
		if nprocs > len(data) {
			nprocs = len(data)
		}
		if nprocs < 1 {
			return floats.Max(data)
		}
		partials := make([]float64, nprocs)
		var wg sync.WaitGroup
		wg.Add(nprocs)
		for pp := 0; pp < nprocs; pp++ {
			go func(pp int) {
				defer wg.Done()
				m := data[pp]
				for idx := pp; idx < len(data); idx += nprocs {
					if data[idx] > m {
						m = data[idx]
					}
				}
				partials[pp] = m
			}(pp)
		}
		wg.Wait()
		return floats.Max(partials)
	default:
		chk.Panic("solver.Maximum: GPU backend is not supported for the global reduction")
		return 0
	}
}
