// package limiter implements the troubled-cell TVB slope limiter operating
// on characteristic variables (and a simpler conserved-variable variant),
// as the companion pass to the DG update kernel in package dg.
package limiter

import (
	"math"

	"github.com/macfadyen/sailfish/cellbasis"
	"github.com/macfadyen/sailfish/hydro"
	"github.com/macfadyen/sailfish/patch"
)

func sub(a, b hydro.Conserved) [4]float64 {
	var out [4]float64
	for q := 0; q < 4; q++ {
		out[q] = a[q] - b[q]
	}
	return out
}

func meanOf(w []float64, nPoly int) hydro.Conserved {
	var u hydro.Conserved
	for q := 0; q < hydro.NCONS; q++ {
		u[q] = w[q*nPoly]
	}
	return u
}

// LimitSlopesCell applies the characteristic-variable TVB limiter to cell
// (i, j): it reads exclusively from rd (self plus the four axial
// neighbors) and writes the full per-cell state to wr, never mutating rd.
func LimitSlopesCell(cell cellbasis.Cell, mesh cellbasis.Mesh, rd, wr patch.Patch, i, j int) {
	nPoly := cellbasis.NPoly(cell.Order)
	wSelf := rd.At(i, j)
	wOut := wr.At(i, j)
	copy(wOut, wSelf)
	if nPoly < 3 {
		return // no l=1/l=2 slope modes exist for this order
	}

	wLeft := rd.At(i-1, j)
	wRight := rd.At(i+1, j)
	wBottom := rd.At(i, j-1)
	wTop := rd.At(i, j+1)

	mean := meanOf(wSelf, nPoly)
	meanL := meanOf(wLeft, nPoly)
	meanR := meanOf(wRight, nPoly)
	meanB := meanOf(wBottom, nPoly)
	meanT := meanOf(wTop, nPoly)

	var slope1, slope2 [4]float64
	for q := 0; q < hydro.NCONS; q++ {
		base := q * nPoly
		slope1[q] = wSelf[base+1]
		slope2[q] = wSelf[base+2]
	}

	p := hydro.ConservedToPrimitive(mean)
	rho, vx, vy, pres := p[0], p[1], p[2], p[3]
	gamma1 := hydro.Gamma - 1
	cs2 := hydro.Gamma * pres / rho
	cs := math.Sqrt(cs2)
	k := 0.5 * (vx*vx + vy*vy)
	phi := gamma1 * k
	beta := 1.0 / (2 * cs2)

	ex := buildX(gamma1, vx, vy, cs, phi, beta)
	ey := buildY(gamma1, vx, vy, cs, phi, beta)

	diffL := sub(mean, meanL)
	diffR := sub(meanR, mean)
	diffB := sub(mean, meanB)
	diffT := sub(meanT, mean)

	c2 := matVec(ex.L, slope2)
	cl := matVec(ex.L, diffL)
	cr := matVec(ex.L, diffR)
	c1 := matVec(ey.L, slope1)
	cb := matVec(ey.L, diffB)
	ct := matVec(ey.L, diffT)

	sqrt3 := math.Sqrt(3)
	dx, dy := mesh.Dx, mesh.Dy

	var c1Tilde, c2Tilde [4]float64
	var limited [4]bool
	for q := 0; q < 4; q++ {
		c1Tilde[q] = minmodB(sqrt3*c1[q], beta*cb[q], beta*ct[q], dy) / sqrt3
		c2Tilde[q] = minmodB(sqrt3*c2[q], beta*cl[q], beta*cr[q], dx) / sqrt3
		if c1Tilde[q] != c1[q] || c2Tilde[q] != c2[q] {
			limited[q] = true
		}
	}

	w1Tilde := matVec(ey.R, c1Tilde)
	w2Tilde := matVec(ex.R, c2Tilde)

	for q := 0; q < hydro.NCONS; q++ {
		if !limited[q] {
			continue
		}
		base := q * nPoly
		wOut[base+1] = w1Tilde[q]
		wOut[base+2] = w2Tilde[q]
		for l := 3; l < nPoly; l++ {
			wOut[base+l] = 0
		}
	}
}

// LimitSlopesConservedCell is the simpler conserved-variable limiter
// variant: it applies minmodTVB directly to each field's slopes without a
// characteristic projection. Not wired into the dispatch shell's default
// limiter pass.
func LimitSlopesConservedCell(cell cellbasis.Cell, mesh cellbasis.Mesh, rd, wr patch.Patch, i, j int) {
	nPoly := cellbasis.NPoly(cell.Order)
	wSelf := rd.At(i, j)
	wOut := wr.At(i, j)
	copy(wOut, wSelf)
	if nPoly < 3 {
		return
	}

	wLeft := rd.At(i-1, j)
	wRight := rd.At(i+1, j)
	wBottom := rd.At(i, j-1)
	wTop := rd.At(i, j+1)
	dx, dy := mesh.Dx, mesh.Dy

	for q := 0; q < hydro.NCONS; q++ {
		base := q * nPoly
		w1 := wSelf[base+1]
		w2 := wSelf[base+2]
		w0, w0L, w0R := wSelf[base], wLeft[base], wRight[base]
		w0B, w0T := wBottom[base], wTop[base]

		w1Lim := minmodTVB(w1, w0B, w0, w0T, dy)
		w2Lim := minmodTVB(w2, w0L, w0, w0R, dx)

		if w1Lim != w1 || w2Lim != w2 {
			wOut[base+1] = w1Lim
			wOut[base+2] = w2Lim
			for l := 3; l < nPoly; l++ {
				wOut[base+l] = 0
			}
		}
	}
}
