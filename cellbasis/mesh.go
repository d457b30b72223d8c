package cellbasis

import "github.com/cpmech/gosl/chk"

// Mesh describes a uniform Cartesian grid: dimensions and cell widths.
// The present scheme assumes dx = dy (a documented restriction); NewMesh
// validates this eagerly since a non-square mesh would otherwise be
// silently wrong in the DG kernel's single dt/dx update factor.
type Mesh struct {
	Ni, Nj int
	Dx, Dy float64
}

// NewMesh validates and constructs a Mesh.
func NewMesh(ni, nj int, dx, dy float64) (Mesh, error) {
	if ni <= 0 || nj <= 0 {
		return Mesh{}, chk.Err("mesh dimensions must be positive, got ni=%d nj=%d", ni, nj)
	}
	if dx <= 0 || dy <= 0 {
		return Mesh{}, chk.Err("mesh spacing must be positive, got dx=%g dy=%g", dx, dy)
	}
	if dx != dy {
		return Mesh{}, chk.Err("this scheme requires dx == dy, got dx=%g dy=%g", dx, dy)
	}
	return Mesh{Ni: ni, Nj: nj, Dx: dx, Dy: dy}, nil
}
