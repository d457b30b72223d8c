// package hydro implements pointwise conversions between conserved and
// primitive gas states, flux evaluation, wavespeed estimates, and
// approximate Riemann solvers for the 2-D ideal-gas compressible Euler
// equations.
package hydro

import "math"

// Gamma is the fixed adiabatic index of the ideal-gas equation of state.
const Gamma = 5.0 / 3.0

// NCONS is the number of conserved fields: density, x-momentum, y-momentum,
// energy.
const NCONS = 4

// Conserved holds (rho, rho*vx, rho*vy, E).
type Conserved [NCONS]float64

// Primitive holds (rho, vx, vy, p).
type Primitive [NCONS]float64

// ConservedToPrimitive converts a conserved state to primitive variables.
// Fails implicitly (NaN/Inf) if rho <= 0; callers must supply positive
// density, per the core's error-handling contract.
func ConservedToPrimitive(u Conserved) Primitive {
	rho := u[0]
	vx := u[1] / rho
	vy := u[2] / rho
	ke := 0.5 * rho * (vx*vx + vy*vy)
	p := (Gamma - 1.0) * (u[3] - ke)
	return Primitive{rho, vx, vy, p}
}

// PrimitiveToConserved is the inverse of ConservedToPrimitive.
func PrimitiveToConserved(p Primitive) Conserved {
	rho := p[0]
	vx := p[1]
	vy := p[2]
	pressure := p[3]
	ke := 0.5 * rho * (vx*vx + vy*vy)
	e := pressure/(Gamma-1.0) + ke
	return Conserved{rho, rho * vx, rho * vy, e}
}

// PrimitiveToFlux computes the axial flux F(P) in direction dir (0=x, 1=y).
func PrimitiveToFlux(p Primitive, u Conserved, dir int) [NCONS]float64 {
	vn := p[1+dir]
	var delta float64
	if dir == 0 {
		delta = 1.0
	}
	var f [NCONS]float64
	f[0] = vn * u[0]
	f[1] = vn*u[1] + p[3]*delta
	f[2] = vn*u[2] + p[3]*(1.0-delta)
	f[3] = vn * (u[3] + p[3])
	return f
}

// SoundSpeed returns c_s = sqrt(gamma*p/rho).
func SoundSpeed(p Primitive) float64 {
	return math.Sqrt(Gamma * p[3] / p[0])
}

// OuterWavespeeds returns (v_n - c_s, v_n + c_s) for the given direction.
func OuterWavespeeds(p Primitive, dir int) (aMinus, aPlus float64) {
	vn := p[1+dir]
	cs := SoundSpeed(p)
	return vn - cs, vn + cs
}

// MaxWavespeed returns max(|vx|+cs, |vy|+cs), computed as the max over the
// four signed endpoints of the two directional wavespeed pairs.
func MaxWavespeed(p Primitive) float64 {
	cs := SoundSpeed(p)
	ax0, ax1 := p[1]-cs, p[1]+cs
	ay0, ay1 := p[2]-cs, p[2]+cs
	m := math.Abs(ax0)
	if v := math.Abs(ax1); v > m {
		m = v
	}
	if v := math.Abs(ay0); v > m {
		m = v
	}
	if v := math.Abs(ay1); v > m {
		m = v
	}
	return m
}

// RiemannHLLE solves the 1-D Riemann problem between left and right
// primitive states in direction dir using the two-wave HLLE approximate
// solver. This is the Riemann solver used by the DG core.
func RiemannHLLE(pl, pr Primitive, dir int) [NCONS]float64 {
	ul := PrimitiveToConserved(pl)
	ur := PrimitiveToConserved(pr)
	fl := PrimitiveToFlux(pl, ul, dir)
	fr := PrimitiveToFlux(pr, ur, dir)

	alMinus, alPlus := OuterWavespeeds(pl, dir)
	arMinus, arPlus := OuterWavespeeds(pr, dir)

	am := math.Min(0.0, math.Min(alMinus, arMinus))
	ap := math.Max(0.0, math.Max(alPlus, arPlus))

	var flux [NCONS]float64
	denom := ap - am
	for q := 0; q < NCONS; q++ {
		flux[q] = (fl[q]*ap - fr[q]*am - (ul[q]-ur[q])*ap*am) / denom
	}
	return flux
}

// RiemannHLLC solves the 1-D Riemann problem with the three-wave,
// contact-preserving HLLC solver. dg.AdvanceCell uses HLLE; this is a
// free-standing alternative.
func RiemannHLLC(pl, pr Primitive, dir int) [NCONS]float64 {
	ul := PrimitiveToConserved(pl)
	ur := PrimitiveToConserved(pr)
	fl := PrimitiveToFlux(pl, ul, dir)
	fr := PrimitiveToFlux(pr, ur, dir)

	alMinus, alPlus := OuterWavespeeds(pl, dir)
	arMinus, arPlus := OuterWavespeeds(pr, dir)
	sl := math.Min(alMinus, arMinus)
	sr := math.Max(alPlus, arPlus)

	rhoL, rhoR := pl[0], pr[0]
	vnL, vnR := pl[1+dir], pr[1+dir]
	pL, pR := pl[3], pr[3]

	// contact-wave speed (Toro-form HLLC star speed)
	sStar := (pR - pL + rhoL*vnL*(sl-vnL) - rhoR*vnR*(sr-vnR)) /
		(rhoL*(sl-vnL) - rhoR*(sr-vnR))

	if sl >= 0 {
		return fl
	}
	if sr <= 0 {
		return fr
	}

	starState := func(u Conserved, p Primitive, s float64) Conserved {
		rho := p[0]
		vn := p[1+dir]
		factor := rho * (s - vn) / (s - sStar)
		var star Conserved
		star[0] = factor
		if dir == 0 {
			star[1] = factor * sStar
			star[2] = factor * p[2]
		} else {
			star[1] = factor * p[1]
			star[2] = factor * sStar
		}
		e := u[3]/rho + (sStar-vn)*(sStar+p[3]/(rho*(s-vn)))
		star[3] = factor * e
		return star
	}

	if sStar >= 0 {
		uLstar := starState(ul, pl, sl)
		var flux [NCONS]float64
		for q := 0; q < NCONS; q++ {
			flux[q] = fl[q] + sl*(uLstar[q]-ul[q])
		}
		return flux
	}
	uRstar := starState(ur, pr, sr)
	var flux [NCONS]float64
	for q := 0; q < NCONS; q++ {
		flux[q] = fr[q] + sr*(uRstar[q]-ur[q])
	}
	return flux
}
