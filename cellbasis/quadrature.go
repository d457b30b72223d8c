package cellbasis

import "gonum.org/v1/gonum/integrate/quad"

// gaussLegendre01 returns n Gauss-Legendre nodes and weights on [0,1],
// derived from gonum's fixed-order Legendre rule on [-1,1].
func gaussLegendre01(n int) (nodes, weights []float64) {
	x := make([]float64, n)
	w := make([]float64, n)
	quad.Legendre{}.FixedLocations(x, w, -1, 1)
	nodes = make([]float64, n)
	weights = make([]float64, n)
	for k := 0; k < n; k++ {
		nodes[k] = 0.5*x[k] + 0.5
		weights[k] = 0.5 * w[k]
	}
	return
}
