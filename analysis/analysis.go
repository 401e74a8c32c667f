/*
 * analysis.go, part of goNCI.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

/*
Package analysis runs a complete reduced density gradient calculation: it reads a
structure, builds a grid around it, evaluates the promolecular density and its
gradient on the grid, obtains the reduced gradient, selects the points likely to
belong to non-covalent interactions and, optionally, writes plots and cube files.
*/
package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	nci "github.com/rmera/gonci"
	"github.com/rmera/gonci/atomdb"
	"github.com/rmera/gonci/cube"
	"github.com/rmera/gonci/grid"
	"github.com/rmera/gonci/nciplot"
	"github.com/rmera/gonci/rdg"
	v3 "github.com/rmera/gonci/v3"
)

//Result contains everything obtained in a calculation.
type Result struct {
	Molecule    *nci.Molecule
	Grid        *grid.Cubic
	Promolecule *atomdb.Promolecule
	Density     []float64
	Gradient    *v3.Matrix
	Reduced     []float64
	Selected    []int //indexes of the NCI points
	Summary     rdg.Summary
	Histogram   *rdg.Histogram //nil if no bins were requested
	Integrated  float64        //the integral of the density over the grid
	Files       []string       //files written
	Timings     map[string]time.Duration
}

//stage runs f, and logs and records how long it took.
func (R *Result) stage(ctx context.Context, name string, f func() error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("goNCI/analysis: cancelled before %s: %w", name, err)
	}
	t := time.Now()
	if err := f(); err != nil {
		return fmt.Errorf("goNCI/analysis: %s: %w", name, err)
	}
	R.Timings[name] = time.Since(t)
	nci.Log.WithFields(logrus.Fields{"stage": name, "elapsed": R.Timings[name]}).Debug("stage finished")
	return nil
}

//Run performs the calculation given by the configuration C.
func Run(ctx context.Context, C *Config) (*Result, error) {
	if err := C.Validate(); err != nil {
		return nil, err
	}
	policy, _ := rdg.ParsePolicy(C.Policy)
	R := &Result{Timings: make(map[string]time.Duration)}
	dataset := C.Dataset
	err := R.stage(ctx, "read", func() error {
		var err error
		if C.DataFile != "" {
			D, err := atomdb.LoadTOML(C.DataFile)
			if err != nil {
				return err
			}
			if dataset == "" {
				dataset = D.Name
			}
		}
		if dataset == "" {
			dataset = atomdb.NCIPlot
		}
		R.Molecule, err = nci.XYZFileRead(C.XYZ)
		return err
	})
	if err != nil {
		return nil, err
	}
	bohr := R.Molecule.BohrCoords()
	err = R.stage(ctx, "grid", func() error {
		var err error
		R.Grid, err = grid.New(bohr, grid.Uniform(C.Spacing, C.Extension))
		return err
	})
	if err != nil {
		return nil, err
	}
	nci.Log.WithFields(logrus.Fields{"atoms": R.Molecule.Len(), "formula": R.Molecule.Formula(), "points": R.Grid.Len()}).Info(R.Grid.String())
	err = R.stage(ctx, "density", func() error {
		var err error
		R.Promolecule, err = atomdb.MakePromolecule(R.Molecule.AtomicNumbers(), bohr, dataset)
		if err != nil {
			return err
		}
		R.Density, R.Gradient, err = R.Promolecule.DensityGradient(ctx, R.Grid.Points(), &atomdb.Options{Cpus: C.Cpus, Cutoff: C.Cutoff})
		if err != nil {
			return err
		}
		R.Integrated, err = R.Grid.Integrate(R.Density)
		return err
	})
	if err != nil {
		return nil, err
	}
	err = R.stage(ctx, "rdg", func() error {
		o := rdg.DefaultOptions()
		o.Policy(policy)
		o.Cpus(C.Cpus)
		var err error
		R.Reduced, err = rdg.Reduced(R.Density, R.Gradient, o)
		if err != nil {
			return err
		}
		R.Selected = rdg.Select(R.Density, R.Reduced, C.RhoCut, C.SCut)
		R.Summary = rdg.Summarize(R.Reduced)
		if C.Bins > 0 {
			R.Histogram, err = rdg.NewHistogram(R.Reduced, C.Bins, C.SCut)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	nci.Log.WithFields(logrus.Fields{"electrons": R.Promolecule.Electrons(), "integrated": R.Integrated, "nci_points": len(R.Selected)}).Info(R.Summary.String())
	if C.Plot != "" {
		err = R.stage(ctx, "plot", func() error {
			o := nciplot.DefaultOptions()
			o.Title = fmt.Sprintf("%s RDG (%s)", R.Molecule.Formula(), dataset)
			o.XMax = C.RhoCut
			o.YMax = 2 * C.SCut
			o.Highlight = R.Selected
			return nciplot.ScatterFile(R.Density, R.Reduced, C.Plot, o)
		})
		if err != nil {
			return nil, err
		}
		R.Files = append(R.Files, C.Plot)
	}
	if C.Cube != "" {
		err = R.stage(ctx, "cube", func() error {
			dens := C.Cube + "-dens" + C.CubeExt
			if err := cube.WriteFile(dens, R.Molecule, R.Grid, R.Density, "goNCI promolecular density"); err != nil {
				return err
			}
			R.Files = append(R.Files, dens)
			red := C.Cube + "-grad" + C.CubeExt
			if err := cube.WriteFile(red, R.Molecule, R.Grid, R.Reduced, "goNCI reduced density gradient"); err != nil {
				return err
			}
			R.Files = append(R.Files, red)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return R, nil
}
