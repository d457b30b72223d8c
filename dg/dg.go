// package dg implements the per-cell discontinuous Galerkin update kernel:
// the surface-flux and volume-flux integrals that make up the semi-discrete
// DG residual, and the single explicit forward-Euler substep built from it.
// This is the mathematical core of the solver; the dispatch shell in
// package solver iterates it over every interior cell.
package dg

import (
	"github.com/macfadyen/sailfish/cellbasis"
	"github.com/macfadyen/sailfish/hydro"
	"github.com/macfadyen/sailfish/patch"
)

// scratchLen sizes dw to the compile-time maximum order, so AdvanceCell
// never allocates; the n_poly loop bound below is the only runtime variable.
const scratchLen = hydro.NCONS * cellbasis.MaxPolynomials

func reconstruct(w []float64, nPoly int, node cellbasis.Node) hydro.Conserved {
	var u hydro.Conserved
	for q := 0; q < hydro.NCONS; q++ {
		var sum float64
		base := q * nPoly
		for l := 0; l < nPoly; l++ {
			sum += w[base+l] * node.Phi[l]
		}
		u[q] = sum
	}
	return u
}

// AdvanceCell advances cell (i, j) by one forward-Euler DG substep, reading
// neighbor and self state from rd and writing the updated state to wr.
// rd and wr must be distinct, ghost-filled patches of identical shape;
// this hot per-cell path performs no such check itself.
func AdvanceCell(cell cellbasis.Cell, mesh cellbasis.Mesh, rd, wr patch.Patch, dt float64, i, j int) {
	nPoly := cellbasis.NPoly(cell.Order)
	if nPoly == 0 {
		return
	}

	var dw [scratchLen]float64

	wSelf := rd.At(i, j)
	wLeftI := rd.At(i-1, j)
	wRightI := rd.At(i+1, j)
	wLeftJ := rd.At(i, j-1)
	wRightJ := rd.At(i, j+1)

	// surface term
	for qp := 0; qp < cell.NumFace; qp++ {
		nLi, nRi := cell.FaceLi[qp], cell.FaceRi[qp]
		nLj, nRj := cell.FaceLj[qp], cell.FaceRj[qp]

		uLiMinus := reconstruct(wLeftI, nPoly, nRi)
		uLiPlus := reconstruct(wSelf, nPoly, nLi)
		uRiMinus := reconstruct(wSelf, nPoly, nRi)
		uRiPlus := reconstruct(wRightI, nPoly, nLi)

		uLjMinus := reconstruct(wLeftJ, nPoly, nRj)
		uLjPlus := reconstruct(wSelf, nPoly, nLj)
		uRjMinus := reconstruct(wSelf, nPoly, nRj)
		uRjPlus := reconstruct(wRightJ, nPoly, nLj)

		pLiMinus := hydro.ConservedToPrimitive(uLiMinus)
		pLiPlus := hydro.ConservedToPrimitive(uLiPlus)
		pRiMinus := hydro.ConservedToPrimitive(uRiMinus)
		pRiPlus := hydro.ConservedToPrimitive(uRiPlus)
		pLjMinus := hydro.ConservedToPrimitive(uLjMinus)
		pLjPlus := hydro.ConservedToPrimitive(uLjPlus)
		pRjMinus := hydro.ConservedToPrimitive(uRjMinus)
		pRjPlus := hydro.ConservedToPrimitive(uRjPlus)

		fLi := hydro.RiemannHLLE(pLiMinus, pLiPlus, 0)
		fRi := hydro.RiemannHLLE(pRiMinus, pRiPlus, 0)
		fLj := hydro.RiemannHLLE(pLjMinus, pLjPlus, 1)
		fRj := hydro.RiemannHLLE(pRjMinus, pRjPlus, 1)

		for q := 0; q < hydro.NCONS; q++ {
			base := q * nPoly
			for l := 0; l < nPoly; l++ {
				dw[base+l] -= fLi[q]*nLi.Phi[l]*nLi.Weight +
					fRi[q]*nRi.Phi[l]*nRi.Weight +
					fLj[q]*nLj.Phi[l]*nLj.Weight +
					fRj[q]*nRj.Phi[l]*nRj.Weight
			}
		}
	}

	// volume term
	for qp := 0; qp < cell.NumInterior; qp++ {
		node := cell.Interior[qp]
		u := reconstruct(wSelf, nPoly, node)
		p := hydro.ConservedToPrimitive(u)
		fx := hydro.PrimitiveToFlux(p, u, 0)
		fy := hydro.PrimitiveToFlux(p, u, 1)
		for q := 0; q < hydro.NCONS; q++ {
			base := q * nPoly
			for l := 0; l < nPoly; l++ {
				dw[base+l] += (fx[q]*node.DphiDx[l] + fy[q]*node.DphiDy[l]) * node.Weight
			}
		}
	}

	// update
	wOut := wr.At(i, j)
	factor := 0.5 * dt / mesh.Dx
	for q := 0; q < hydro.NCONS; q++ {
		base := q * nPoly
		for l := 0; l < nPoly; l++ {
			wOut[base+l] = wSelf[base+l] + dw[base+l]*factor
		}
	}
}

// CellWavespeed computes the cell-local maximum signal speed from the
// cell-mean (mode l=0) conserved state, for use in external CFL
// estimation.
func CellWavespeed(cell cellbasis.Cell, weights patch.Patch, i, j int) float64 {
	nPoly := cellbasis.NPoly(cell.Order)
	if nPoly == 0 {
		return 0
	}
	w := weights.At(i, j)
	var u hydro.Conserved
	for q := 0; q < hydro.NCONS; q++ {
		u[q] = w[q*nPoly]
	}
	p := hydro.ConservedToPrimitive(u)
	return hydro.MaxWavespeed(p)
}
