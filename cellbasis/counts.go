// package cellbasis implements the pre-computed, read-only per-cell
// tabulated data (quadrature nodes, basis values and derivatives, weights)
// that the DG kernel and slope limiter consume, plus the uniform Cartesian
// Mesh description. It lives in its own package so dg/limiter never depend
// on how a Cell was built.
package cellbasis

import "github.com/cpmech/gosl/chk"

// NCONS is the number of conserved fields carried by the DG solution.
const NCONS = 4

// NumGuard is the guard-layer width of a weights patch.
const NumGuard = 1

// MaxPolynomials is the largest n_poly(p) for p in {1,...,5}.
const MaxPolynomials = 15

// NPoly returns the number of modal polynomials per field for order p.
// Returns 0 for p outside {1,...,5}, which degrades any per-cell loop
// bounded on it to a no-op rather than panicking.
func NPoly(order int) int {
	switch order {
	case 1, 2, 3, 4, 5:
		return order * (order + 1) / 2
	default:
		return 0
	}
}

// NQuad returns the number of interior quadrature points for order p.
func NQuad(order int) int {
	if order < 1 || order > 5 {
		return 0
	}
	return order * order
}

// NFace returns the number of face quadrature points (per face) for order p.
func NFace(order int) int {
	if order < 1 || order > 5 {
		return 0
	}
	return order
}

// ValidOrder reports whether p is a supported polynomial order.
func ValidOrder(order int) bool {
	return order >= 1 && order <= 5
}

// RequireValidOrder returns a chk-built error for an out-of-range order.
// Callers that want to fail eagerly (e.g. at Cell construction) rather
// than silently degrade to zeroed no-op loops should use this.
func RequireValidOrder(order int) error {
	if !ValidOrder(order) {
		return chk.Err("cell order must be in {1,...,5}, got %d", order)
	}
	return nil
}
