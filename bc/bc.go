// package bc fills the one-cell guard layer of a weights patch ahead of a
// dispatch-shell pass. The DG core requires the guard layer to already be
// populated and performs no check that it has been.
package bc

import (
	"github.com/macfadyen/sailfish/cellbasis"
	"github.com/macfadyen/sailfish/patch"
)

// FillPeriodic wraps interior values around both axes into the guard
// layer, so that the mesh behaves as a torus.
func FillPeriodic(p patch.Patch, mesh cellbasis.Mesh) {
	ni, nj := mesh.Ni, mesh.Nj
	for j := 0; j < nj; j++ {
		copy(p.At(-1, j), p.At(ni-1, j))
		copy(p.At(ni, j), p.At(0, j))
	}
	for i := -cellbasis.NumGuard; i < ni+cellbasis.NumGuard; i++ {
		copy(p.At(i, -1), p.At(i, nj-1))
		copy(p.At(i, nj), p.At(i, 0))
	}
}

// FillReflecting mirrors the first interior cell on each axis into the
// guard layer and negates the normal momentum component, approximating a
// rigid wall. Only the cell mean (mode l=0) is reflected exactly; slope
// and higher modes are carried over unchanged.
func FillReflecting(p patch.Patch, mesh cellbasis.Mesh, nPoly int) {
	ni, nj := mesh.Ni, mesh.Nj

	mirrorX := func(dst, src []float64) {
		copy(dst, src)
		dst[1*nPoly] = -src[1*nPoly] // negate mean x-momentum
	}
	mirrorY := func(dst, src []float64) {
		copy(dst, src)
		dst[2*nPoly] = -src[2*nPoly] // negate mean y-momentum
	}

	for j := 0; j < nj; j++ {
		mirrorX(p.At(-1, j), p.At(0, j))
		mirrorX(p.At(ni, j), p.At(ni-1, j))
	}
	for i := -cellbasis.NumGuard; i < ni+cellbasis.NumGuard; i++ {
		mirrorY(p.At(i, -1), p.At(i, 0))
		mirrorY(p.At(i, nj), p.At(i, nj-1))
	}
}
