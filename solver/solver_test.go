package solver

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/macfadyen/sailfish/bc"
	"github.com/macfadyen/sailfish/cellbasis"
	"github.com/macfadyen/sailfish/hydro"
	"github.com/macfadyen/sailfish/ic"
	"github.com/macfadyen/sailfish/patch"
)

func newScenario(tst *testing.T, order, ni, nj int) (cellbasis.Cell, cellbasis.Mesh, patch.Patch, patch.Patch) {
	cell, err := cellbasis.NewCell(order)
	if err != nil {
		tst.Fatalf("NewCell failed: %v", err)
	}
	mesh, err := cellbasis.NewMesh(ni, nj, 1.0, 1.0)
	if err != nil {
		tst.Fatalf("NewMesh failed: %v", err)
	}
	nPoly := cellbasis.NPoly(order)
	rd := patch.New(-cellbasis.NumGuard, -cellbasis.NumGuard,
		ni+2*cellbasis.NumGuard, nj+2*cellbasis.NumGuard, hydro.NCONS*nPoly)
	wr := patch.New(-cellbasis.NumGuard, -cellbasis.NumGuard,
		ni+2*cellbasis.NumGuard, nj+2*cellbasis.NumGuard, hydro.NCONS*nPoly)
	return cell, mesh, rd, wr
}

func totalConserved(p patch.Patch, mesh cellbasis.Mesh, nPoly int) hydro.Conserved {
	var total hydro.Conserved
	for i := 0; i < mesh.Ni; i++ {
		for j := 0; j < mesh.Nj; j++ {
			w := p.At(i, j)
			for q := 0; q < hydro.NCONS; q++ {
				total[q] += w[q*nPoly]
			}
		}
	}
	return total
}

// Scenario 1: a uniform rest state, advanced under the sequential and
// worker-pool CPU backends, must remain uniform to within 1e-9.
func Test_scenario_uniform_rest_state(tst *testing.T) {

	chk.PrintTitle("scenario_uniform_rest_state")

	order := 2
	cell, mesh, rd, wr := newScenario(tst, order, 6, 6)
	nPoly := cellbasis.NPoly(order)
	rest := hydro.Primitive{1.0, 0.0, 0.0, 1.0}
	ic.ProjectPatch(cell, mesh, func(x, y float64) hydro.Primitive { return rest }, rd)

	for _, mode := range []Mode{ModeCPU, ModeOMP} {
		bc.FillPeriodic(rd, mesh)
		if err := AdvanceRK(cell, mesh, rd, wr, 0.001, mode); err != nil {
			tst.Fatalf("AdvanceRK failed under %v: %v", mode, err)
		}
		u := hydro.PrimitiveToConserved(rest)
		for i := 0; i < mesh.Ni; i++ {
			for j := 0; j < mesh.Nj; j++ {
				w := wr.At(i, j)
				for q := 0; q < hydro.NCONS; q++ {
					chk.Scalar(tst, "uniform rest preserved", 1e-9, w[q*nPoly], u[q])
				}
			}
		}
	}
}

// Scenario 2: a smooth sinusoidal density profile, advanced by one small
// substep, should stay bounded and smooth (no new extrema beyond the
// initial range by more than a small tolerance).
func Test_scenario_smooth_profile_bounded(tst *testing.T) {

	chk.PrintTitle("scenario_smooth_profile_bounded")

	order := 2
	cell, mesh, rd, wr := newScenario(tst, order, 8, 4)
	nPoly := cellbasis.NPoly(order)

	profile := func(x, y float64) hydro.Primitive {
		rho := 1.0 + 0.1*sinApprox(x)
		return hydro.Primitive{rho, 0.2, 0.0, 1.0}
	}
	ic.ProjectPatch(cell, mesh, profile, rd)
	bc.FillPeriodic(rd, mesh)

	if err := AdvanceRK(cell, mesh, rd, wr, 0.0005, ModeCPU); err != nil {
		tst.Fatalf("AdvanceRK failed: %v", err)
	}

	for i := 0; i < mesh.Ni; i++ {
		for j := 0; j < mesh.Nj; j++ {
			rho := wr.At(i, j)[0]
			if rho < 0.8 || rho > 1.2 {
				tst.Errorf("density out of expected smooth-profile bounds at (%d,%d): %g", i, j, rho)
			}
		}
	}
}

// Scenario 3: the limiter must activate and clamp the steep x-slope of the
// cell beside a sharp discontinuity.
func Test_scenario_limiter_activates_on_discontinuity(tst *testing.T) {

	chk.PrintTitle("scenario_limiter_activates_on_discontinuity")

	order := 3
	cell, mesh, rd, wr := newScenario(tst, order, 6, 1)
	nPoly := cellbasis.NPoly(order)

	left := hydro.PrimitiveToConserved(hydro.Primitive{1.0, 0.0, 0.0, 1.0})
	right := hydro.PrimitiveToConserved(hydro.Primitive{0.2, 0.0, 0.0, 0.2})
	for i := -cellbasis.NumGuard; i < mesh.Ni+cellbasis.NumGuard; i++ {
		for j := -cellbasis.NumGuard; j < mesh.Nj+cellbasis.NumGuard; j++ {
			w := rd.At(i, j)
			u := left
			if i >= mesh.Ni/2 {
				u = right
			}
			for q := 0; q < hydro.NCONS; q++ {
				w[q*nPoly] = u[q]
			}
		}
	}
	// give the discontinuity cell a steep slope the limiter should clamp.
	wTrouble := rd.At(mesh.Ni/2-1, 0)
	for q := 0; q < hydro.NCONS; q++ {
		wTrouble[q*nPoly+2] = 10.0
	}

	if err := LimitSlopes(cell, mesh, rd, wr, ModeCPU); err != nil {
		tst.Fatalf("LimitSlopes failed: %v", err)
	}

	wLimited := wr.At(mesh.Ni/2-1, 0)
	for q := 0; q < hydro.NCONS; q++ {
		if abs(wLimited[q*nPoly+2]) >= 10.0 {
			tst.Errorf("expected limiter to clamp the steep slope in field %d, got %g", q, wLimited[q*nPoly+2])
		}
	}
}

// Scenario 4: a moving constant state on a non-square (5x7) grid is left
// unchanged by one AdvanceRK substep.
func Test_scenario_uniform_state_on_nonsquare_grid(tst *testing.T) {

	chk.PrintTitle("scenario_uniform_state_on_nonsquare_grid")

	order := 2
	cell, mesh, rd, wr := newScenario(tst, order, 5, 7)
	nPoly := cellbasis.NPoly(order)
	state := hydro.PrimitiveToConserved(hydro.Primitive{1.1, 0.2, -0.3, 0.9})
	for i := -cellbasis.NumGuard; i < mesh.Ni+cellbasis.NumGuard; i++ {
		for j := -cellbasis.NumGuard; j < mesh.Nj+cellbasis.NumGuard; j++ {
			w := rd.At(i, j)
			for q := 0; q < hydro.NCONS; q++ {
				w[q*nPoly] = state[q]
			}
		}
	}
	if err := AdvanceRK(cell, mesh, rd, wr, 0.001, ModeCPU); err != nil {
		tst.Fatalf("AdvanceRK failed: %v", err)
	}
	for i := 0; i < mesh.Ni; i++ {
		for j := 0; j < mesh.Nj; j++ {
			w := wr.At(i, j)
			for q := 0; q < hydro.NCONS; q++ {
				chk.Scalar(tst, "uniform state unaffected by grid shape", 1e-9, w[q*nPoly], state[q])
			}
		}
	}
}

// Scenario 5: mass, both momentum components, and energy are conserved (to within
// quadrature and floating-point tolerance) on a periodic domain, since the
// HLLE numerical flux is exactly anti-symmetric across shared faces.
func Test_scenario_conservation_on_periodic_domain(tst *testing.T) {

	chk.PrintTitle("scenario_conservation_on_periodic_domain")

	order := 2
	cell, mesh, rd, wr := newScenario(tst, order, 6, 6)
	nPoly := cellbasis.NPoly(order)

	profile := func(x, y float64) hydro.Primitive {
		rho := 1.0 + 0.05*sinApprox(x+y)
		return hydro.Primitive{rho, 0.1, -0.05, 1.0}
	}
	ic.ProjectPatch(cell, mesh, profile, rd)

	before := totalConserved(rd, mesh, nPoly)
	bc.FillPeriodic(rd, mesh)
	if err := AdvanceRK(cell, mesh, rd, wr, 0.0005, ModeCPU); err != nil {
		tst.Fatalf("AdvanceRK failed: %v", err)
	}
	after := totalConserved(wr, mesh, nPoly)

	for q := 0; q < hydro.NCONS; q++ {
		chk.Scalar(tst, "conserved total", 1e-8, after[q], before[q])
	}
}

// Scenario 6: AdvanceRK must reject aliased read/write patches rather than
// silently producing undefined results.
func Test_scenario_rejects_aliased_buffers(tst *testing.T) {

	chk.PrintTitle("scenario_rejects_aliased_buffers")

	order := 1
	cell, mesh, rd, _ := newScenario(tst, order, 3, 3)

	if err := AdvanceRK(cell, mesh, rd, rd, 0.001, ModeCPU); err == nil {
		tst.Errorf("expected AdvanceRK to reject aliased read/write patches")
	}
}

func Test_maximum_reduction(tst *testing.T) {

	chk.PrintTitle("maximum_reduction")

	data := []float64{0.1, 3.4, -2.0, 5.5, 1.2}
	for _, mode := range []Mode{ModeCPU, ModeOMP} {
		got := Maximum(data, mode)
		chk.Scalar(tst, "max", 1e-15, got, 5.5)
	}
}

func sinApprox(x float64) float64 {
	// a smooth, 2*pi-periodic profile used only to shape test initial
	// conditions.
	return math.Sin(x)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
