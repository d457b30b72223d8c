// package ic projects an analytic primitive-state function onto the modal
// DG basis to build an initial condition, for driving end-to-end scenarios
// and the CLI driver.
package ic

import (
	"github.com/macfadyen/sailfish/cellbasis"
	"github.com/macfadyen/sailfish/hydro"
	"github.com/macfadyen/sailfish/patch"
	"gonum.org/v1/gonum/mat"
)

// PrimitiveFunc evaluates the primitive state at a physical point.
type PrimitiveFunc func(x, y float64) hydro.Primitive

// ProjectPatch fills every interior cell of out with the L2 projection of
// fn onto the cell's modal basis, via a quadrature-assembled mass-matrix
// solve (mat.Dense) per field.
func ProjectPatch(cell cellbasis.Cell, mesh cellbasis.Mesh, fn PrimitiveFunc, out patch.Patch) {
	nPoly := cellbasis.NPoly(cell.Order)
	if nPoly == 0 {
		return
	}

	mass := mat.NewDense(nPoly, nPoly, nil)
	for qp := 0; qp < cell.NumInterior; qp++ {
		node := cell.Interior[qp]
		for l := 0; l < nPoly; l++ {
			for m := 0; m < nPoly; m++ {
				mass.Set(l, m, mass.At(l, m)+node.Phi[l]*node.Phi[m]*node.Weight)
			}
		}
	}
	var massLU mat.LU
	massLU.Factorize(mass)

	for i := 0; i < mesh.Ni; i++ {
		for j := 0; j < mesh.Nj; j++ {
			x0, y0 := float64(i)*mesh.Dx, float64(j)*mesh.Dy
			rhs := mat.NewDense(nPoly, hydro.NCONS, nil)
			for qp := 0; qp < cell.NumInterior; qp++ {
				node := cell.Interior[qp]
				x := x0 + node.Xi*mesh.Dx
				y := y0 + node.Eta*mesh.Dy
				u := hydro.PrimitiveToConserved(fn(x, y))
				for l := 0; l < nPoly; l++ {
					for q := 0; q < hydro.NCONS; q++ {
						rhs.Set(l, q, rhs.At(l, q)+u[q]*node.Phi[l]*node.Weight)
					}
				}
			}
			var coeffs mat.Dense
			if err := massLU.SolveTo(&coeffs, false, rhs); err != nil {
				continue
			}
			w := out.At(i, j)
			for q := 0; q < hydro.NCONS; q++ {
				base := q * nPoly
				for l := 0; l < nPoly; l++ {
					w[base+l] = coeffs.At(l, q)
				}
			}
		}
	}
}
