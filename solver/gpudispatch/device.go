//go:build gpu

// Built with -tags gpu: confirms an MLX-visible device is present and
// iterates 16x16-tile thread blocks over the interior-cell index space,
// calling the same per-cell Go function the CPU and worker-pool backends
// call for each cell.
package gpudispatch

import "github.com/luxfi/mlx"

// Dispatch iterates fn over every (i, j) in [0, ni) x [0, nj), tiled into
// blockShape x blockShape thread blocks. If no MLX device is available, it
// silently returns without running fn.
func Dispatch(ni, nj, blockShape int, fn func(i, j int)) {
	dev := mlx.DefaultDevice()
	if dev == nil {
		return
	}
	for bi := 0; bi < ni; bi += blockShape {
		for bj := 0; bj < nj; bj += blockShape {
			iMax := bi + blockShape
			if iMax > ni {
				iMax = ni
			}
			jMax := bj + blockShape
			if jMax > nj {
				jMax = nj
			}
			for i := bi; i < iMax; i++ {
				for j := bj; j < jMax; j++ {
					fn(i, j)
				}
			}
		}
	}
}
