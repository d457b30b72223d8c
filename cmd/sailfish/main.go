// Command sailfish runs a 2-D discontinuous-Galerkin compressible-Euler
// simulation from a JSON run-configuration file.
package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/macfadyen/sailfish/bc"
	"github.com/macfadyen/sailfish/cellbasis"
	"github.com/macfadyen/sailfish/hydro"
	"github.com/macfadyen/sailfish/ic"
	"github.com/macfadyen/sailfish/patch"
	"github.com/macfadyen/sailfish/solver"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON run-configuration file")
	modeOverride := flag.String("mode", "", "override the config's execution mode: cpu, omp, or gpu")
	flag.Parse()

	if *configPath == "" {
		io.PfRed("sailfish: -config is required\n")
		flag.Usage()
		os.Exit(1)
	}

	defer func() {
		if r := recover(); r != nil {
			io.PfRed("sailfish: fatal: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := run(*configPath, *modeOverride); err != nil {
		io.PfRed("sailfish: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, modeOverride string) error {
	cfg, err := solver.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if modeOverride != "" {
		cfg.Mode = modeOverride
	}
	mode, err := cfg.ParseMode()
	if err != nil {
		return err
	}

	mesh, err := cellbasis.NewMesh(cfg.Ni, cfg.Nj, cfg.Dx, cfg.Dy)
	if err != nil {
		return err
	}
	cell, err := cellbasis.NewCell(cfg.Order)
	if err != nil {
		return err
	}
	nPoly := cellbasis.NPoly(cfg.Order)

	io.Pf("sailfish: mesh %dx%d, dx=%g, order=%d, mode=%v\n", mesh.Ni, mesh.Nj, mesh.Dx, cfg.Order, mode)

	bufA := patch.New(-cellbasis.NumGuard, -cellbasis.NumGuard,
		mesh.Ni+2*cellbasis.NumGuard, mesh.Nj+2*cellbasis.NumGuard, hydro.NCONS*nPoly)
	bufB := patch.New(-cellbasis.NumGuard, -cellbasis.NumGuard,
		mesh.Ni+2*cellbasis.NumGuard, mesh.Nj+2*cellbasis.NumGuard, hydro.NCONS*nPoly)
	speed := patch.New(0, 0, mesh.Ni, mesh.Nj, 1)

	ic.ProjectPatch(cell, mesh, uniformRestState, bufA)

	rd, wr := bufA, bufB
	t := 0.0
	step := 0
	for t < cfg.TFinal {
		fillGuard(rd, mesh, cfg, nPoly)

		if err := solver.Wavespeed(cell, mesh, rd, speed, mode); err != nil {
			return err
		}
		maxSpeed := solver.Maximum(speed.Data, mode)
		dt := cfg.TFinal - t
		if maxSpeed > 0 {
			cflDt := cfg.CFL * mesh.Dx / maxSpeed
			if cflDt < dt {
				dt = cflDt
			}
		}

		if err := solver.AdvanceRK(cell, mesh, rd, wr, dt, mode); err != nil {
			return err
		}
		rd, wr = wr, rd

		fillGuard(rd, mesh, cfg, nPoly)
		if err := solver.LimitSlopes(cell, mesh, rd, wr, mode); err != nil {
			return err
		}
		rd, wr = wr, rd

		t += dt
		step++
		if cfg.OutEvery > 0 && step%cfg.OutEvery == 0 {
			io.Pf("sailfish: step %d  t=%g  dt=%g\n", step, t, dt)
		}
	}

	io.Pf("sailfish: done, %d steps, t=%g\n", step, t)
	return nil
}

func fillGuard(p patch.Patch, mesh cellbasis.Mesh, cfg solver.Config, nPoly int) {
	if cfg.Periodc {
		bc.FillPeriodic(p, mesh)
	} else {
		bc.FillReflecting(p, mesh, nPoly)
	}
}

// uniformRestState is the initial condition of every run: a quiescent,
// uniform unit-density, unit-pressure gas. The config has no
// initial-condition setting.
func uniformRestState(x, y float64) hydro.Primitive {
	return hydro.Primitive{1.0, 0.0, 0.0, 1.0}
}
