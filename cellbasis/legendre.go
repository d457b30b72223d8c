package cellbasis

import "math"

// legendreAndDeriv evaluates the Legendre polynomials P_0..P_n and their
// derivatives at t via the standard three-term recurrence, differentiated
// term-by-term. Hand-rolled: no library in the reference corpus (gonum
// included) evaluates Legendre polynomials themselves, only quadrature
// abscissas — see quadrature.go, which does use gonum for that part.
func legendreAndDeriv(n int, t float64) (p, dp []float64) {
	p = make([]float64, n+1)
	dp = make([]float64, n+1)
	p[0] = 1
	dp[0] = 0
	if n == 0 {
		return
	}
	p[1] = t
	dp[1] = 1
	for k := 2; k <= n; k++ {
		kf := float64(k)
		p[k] = ((2*kf-1)*t*p[k-1] - (kf-1)*p[k-2]) / kf
		dp[k] = ((2*kf-1)*(p[k-1]+t*dp[k-1]) - (kf-1)*dp[k-2]) / kf
	}
	return
}

// shiftedLegendreOrthonormal evaluates the degree-n orthonormal shifted
// Legendre polynomial e_n and its derivative at xi in [0,1], satisfying
// integral_0^1 e_n(xi) e_m(xi) dxi = delta_nm.
func shiftedLegendreOrthonormal(n int, xi float64) (val, deriv float64) {
	t := 2*xi - 1
	p, dp := legendreAndDeriv(n, t)
	scale := legendreNorm(n)
	val = scale * p[n]
	deriv = scale * 2 * dp[n] // chain rule: d/dxi = 2 * d/dt
	return
}

func legendreNorm(n int) float64 {
	// integral_0^1 Q_n(xi)^2 dxi = 1/(2n+1) for shifted Legendre Q_n.
	return math.Sqrt(float64(2*n + 1))
}
