package limiter

// eigenSet is a closed-form 4x4 left/right eigenmatrix pair of the Euler
// flux Jacobian in one axial direction, built from the Roe-averaged-style
// primitive quantities at the cell mean.
type eigenSet struct {
	L, R [4][4]float64
}

// buildX builds the left/right eigenmatrices of the x-direction flux
// Jacobian.
func buildX(gamma1, vx, vy, cs, phi, beta float64) eigenSet {
	var e eigenSet
	k := phi / gamma1
	hEnth := cs*cs/gamma1 + k

	e.R = [4][4]float64{
		{1, 1, 0, 1},
		{vx - cs, vx, 0, vx + cs},
		{vy, vy, 1, vy},
		{hEnth - vx*cs, k, vy, hEnth + vx*cs},
	}
	e.L = [4][4]float64{
		{beta * (phi + vx*cs), beta * -(gamma1*vx + cs), beta * -gamma1 * vy, beta * gamma1},
		{1 - 2*beta*phi, 2 * beta * gamma1 * vx, 2 * beta * gamma1 * vy, -2 * beta * gamma1},
		{-vy, 0, 1, 0},
		{beta * (phi - vx*cs), beta * -(gamma1*vx - cs), beta * -gamma1 * vy, beta * gamma1},
	}
	return e
}

// buildY builds the left/right eigenmatrices of the y-direction flux
// Jacobian, with vx and vy's roles exchanged relative to buildX.
func buildY(gamma1, vx, vy, cs, phi, beta float64) eigenSet {
	var e eigenSet
	k := phi / gamma1
	hEnth := cs*cs/gamma1 + k

	e.R = [4][4]float64{
		{1, 1, 0, 1},
		{vx, vx, 1, vx},
		{vy - cs, vy, 0, vy + cs},
		{hEnth - vy*cs, k, vx, hEnth + vy*cs},
	}
	e.L = [4][4]float64{
		{beta * (phi + vy*cs), beta * -gamma1 * vx, beta * -(gamma1*vy + cs), beta * gamma1},
		{1 - 2*beta*phi, 2 * beta * gamma1 * vx, 2 * beta * gamma1 * vy, -2 * beta * gamma1},
		{-vx, 1, 0, 0},
		{beta * (phi - vy*cs), beta * -gamma1 * vx, beta * -(gamma1*vy - cs), beta * gamma1},
	}
	return e
}

func matVec(m [4][4]float64, v [4]float64) [4]float64 {
	var out [4]float64
	for r := 0; r < 4; r++ {
		var s float64
		for c := 0; c < 4; c++ {
			s += m[r][c] * v[c]
		}
		out[r] = s
	}
	return out
}
