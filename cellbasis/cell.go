package cellbasis

// Node is a single pre-computed quadrature point: its reference
// coordinates, the value and spatial derivatives of every basis function
// at that point, and its scalar quadrature weight. All fields are
// read-only once a Cell has been constructed.
type Node struct {
	Xi, Eta float64
	Phi     [MaxPolynomials]float64
	DphiDx  [MaxPolynomials]float64
	DphiDy  [MaxPolynomials]float64
	Weight  float64
}

// Cell bundles the tabulated node data for one reference cell, independent
// of the (i, j) logical grid index: up to 25 interior (volume-quadrature)
// nodes, and four arrays of up to 5 face-quadrature nodes (left-i, right-i,
// left-j, right-j), plus the polynomial order p. Face-node weights carry
// the sign of the outward normal: negative on the left-i and left-j faces,
// positive on the right-i and right-j faces.
type Cell struct {
	Order int

	Interior    [25]Node
	NumInterior int

	FaceLi, FaceRi [5]Node
	FaceLj, FaceRj [5]Node
	NumFace        int
}

// modeIndex enumerates the (a, b) monomial-degree pairs of the total-degree
// modal basis: l=0 is the mean, l=1 is the y-slope, l=2 is the x-slope, and
// subsequent degrees follow in increasing total degree.
func modeIndex(order int) [][2]int {
	modes := make([][2]int, 0, NPoly(order))
	for d := 0; d <= order-1; d++ {
		for a := 0; a <= d; a++ {
			b := d - a
			modes = append(modes, [2]int{a, b})
		}
	}
	return modes
}

func evalBasis(modes [][2]int, xi, eta float64) (phi, dphidx, dphidy [MaxPolynomials]float64) {
	// cache 1-D values per distinct degree actually needed
	maxDeg := 0
	for _, m := range modes {
		if m[0] > maxDeg {
			maxDeg = m[0]
		}
		if m[1] > maxDeg {
			maxDeg = m[1]
		}
	}
	valXi := make([]float64, maxDeg+1)
	dXi := make([]float64, maxDeg+1)
	valEta := make([]float64, maxDeg+1)
	dEta := make([]float64, maxDeg+1)
	for d := 0; d <= maxDeg; d++ {
		valXi[d], dXi[d] = shiftedLegendreOrthonormal(d, xi)
		valEta[d], dEta[d] = shiftedLegendreOrthonormal(d, eta)
	}
	for l, m := range modes {
		a, b := m[0], m[1]
		phi[l] = valXi[a] * valEta[b]
		dphidx[l] = dXi[a] * valEta[b]
		dphidy[l] = valXi[a] * dEta[b]
	}
	return
}

// NewCell builds the tabulated interior and face node data for polynomial
// order p using a total-degree orthonormal Legendre-product modal basis
// on the reference unit square [0,1]x[0,1], and tensor/line Gauss-Legendre
// quadrature of np = p points per axis (n_quad(p) = p^2 interior nodes,
// n_face(p) = p face nodes).
func NewCell(order int) (Cell, error) {
	if err := RequireValidOrder(order); err != nil {
		return Cell{}, err
	}
	var cell Cell
	cell.Order = order
	modes := modeIndex(order)

	np := NFace(order) // == order, the 1-D rule size
	nodes1d, weights1d := gaussLegendre01(np)

	// interior: tensor product over (xi, eta)
	idx := 0
	for a := 0; a < np; a++ {
		for b := 0; b < np; b++ {
			xi, eta := nodes1d[a], nodes1d[b]
			phi, dx, dy := evalBasis(modes, xi, eta)
			cell.Interior[idx] = Node{
				Xi: xi, Eta: eta,
				Phi: phi, DphiDx: dx, DphiDy: dy,
				Weight: weights1d[a] * weights1d[b],
			}
			idx++
		}
	}
	cell.NumInterior = idx
	cell.NumFace = np

	for k := 0; k < np; k++ {
		t := nodes1d[k]
		w := weights1d[k]

		phi, dx, dy := evalBasis(modes, 0, t)
		cell.FaceLi[k] = Node{Xi: 0, Eta: t, Phi: phi, DphiDx: dx, DphiDy: dy, Weight: -w}

		phi, dx, dy = evalBasis(modes, 1, t)
		cell.FaceRi[k] = Node{Xi: 1, Eta: t, Phi: phi, DphiDx: dx, DphiDy: dy, Weight: w}

		phi, dx, dy = evalBasis(modes, t, 0)
		cell.FaceLj[k] = Node{Xi: t, Eta: 0, Phi: phi, DphiDx: dx, DphiDy: dy, Weight: -w}

		phi, dx, dy = evalBasis(modes, t, 1)
		cell.FaceRj[k] = Node{Xi: t, Eta: 1, Phi: phi, DphiDx: dx, DphiDy: dy, Weight: w}
	}
	return cell, nil
}
