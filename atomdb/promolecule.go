/*
 * promolecule.go, part of goNCI.
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

package atomdb

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"

	v3 "github.com/rmera/gonci/v3"
)

//Options for the evaluation of promolecular densities.
type Options struct {
	Cpus   int     //goroutines to use. Values < 1 mean runtime.NumCPU()
	Cutoff float64 //atoms farther than this from a point (in Bohr) are ignored for that point. 0 means no cutoff.
}

//DefaultOptions returns the default options: all the CPUs, and no cutoff.
func DefaultOptions() *Options {
	return &Options{Cpus: runtime.NumCPU()}
}

//points per block between checks of the context.
const blockSize = 2048

//Promolecule is a set of spherical atomic densities placed at the nuclei of a molecule.
type Promolecule struct {
	dataset string
	z       []int
	fits    []Fit
	centers [][3]float64
}

//MakePromolecule builds a promolecule with atoms of atomic numbers atnums at the given coordinates
//(in Bohr), using the atomic densities of the named dataset. It fails if the dataset doesn't exist, or
//lacks some of the elements.
func MakePromolecule(atnums []int, coords *v3.Matrix, dataset string) (*Promolecule, error) {
	if len(atnums) != coords.NVecs() {
		return nil, fmt.Errorf("goNCI/atomdb: %d atomic numbers but %d coordinates", len(atnums), coords.NVecs())
	}
	D, err := Lookup(dataset)
	if err != nil {
		return nil, err
	}
	P := &Promolecule{dataset: dataset, z: append([]int(nil), atnums...), fits: make([]Fit, len(atnums)), centers: make([][3]float64, len(atnums))}
	for i, z := range atnums {
		P.fits[i], err = D.Fit(z)
		if err != nil {
			return nil, fmt.Errorf("atom %d: %w", i+1, err)
		}
		P.centers[i] = coords.Vec(i)
	}
	return P, nil
}

//Len returns the number of atoms in the promolecule
func (P *Promolecule) Len() int { return len(P.z) }

//Dataset returns the name of the dataset used by the promolecule
func (P *Promolecule) Dataset() string { return P.dataset }

//Electrons returns the number of electrons of the neutral molecule, i.e. the sum of the atomic numbers.
func (P *Promolecule) Electrons() float64 {
	ret := 0
	for _, z := range P.z {
		ret += z
	}
	return float64(ret)
}

//FitElectrons returns the integral of the promolecular density over all space,
//which differs from Electrons by the error of the atomic fits.
func (P *Promolecule) FitElectrons() float64 {
	ret := 0.0
	for _, f := range P.fits {
		ret += f.Electrons()
	}
	return ret
}

//Density returns the promolecular density at each of the points.
func (P *Promolecule) Density(points *v3.Matrix) []float64 {
	rho, _, _ := P.DensityGradient(context.Background(), points, nil)
	return rho
}

//Gradient returns the gradient of the promolecular density at each of the points.
func (P *Promolecule) Gradient(points *v3.Matrix) *v3.Matrix {
	_, grad, _ := P.DensityGradient(context.Background(), points, nil)
	return grad
}

//DensityGradient returns the promolecular density and its gradient at each of the points.
//The points are divided among o.Cpus goroutines. If o is nil, DefaultOptions() is used.
//The only error returned is that of the context, if it is done before the calculation finishes.
func (P *Promolecule) DensityGradient(ctx context.Context, points *v3.Matrix, o *Options) ([]float64, *v3.Matrix, error) {
	if o == nil {
		o = DefaultOptions()
	}
	n := points.NVecs()
	rho := make([]float64, n)
	grad := v3.Zeros(n)
	if n == 0 {
		return rho, grad, nil
	}
	cpus := o.Cpus
	if cpus < 1 {
		cpus = runtime.NumCPU()
	}
	if blocks := (n + blockSize - 1) / blockSize; cpus > blocks {
		cpus = blocks
	}
	cut2 := 0.0
	if o.Cutoff > 0 {
		cut2 = o.Cutoff * o.Cutoff
	}
	size := (n + cpus - 1) / cpus
	errs := make([]error, cpus)
	var wg sync.WaitGroup
	for c := 0; c < cpus; c++ {
		lo := c * size
		hi := lo + size
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(c, lo, hi int) {
			defer wg.Done()
			errs[c] = P.evalRange(ctx, points, rho, grad, lo, hi, cut2)
		}(c, lo, hi)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}
	return rho, grad, nil
}

//evalRange fills rho and grad for the points lo to hi-1.
func (P *Promolecule) evalRange(ctx context.Context, points *v3.Matrix, rho []float64, grad *v3.Matrix, lo, hi int, cut2 float64) error {
	praw := points.RawMatrix()
	graw := grad.RawMatrix()
	for i := lo; i < hi; i++ {
		if (i-lo)%blockSize == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		p := praw.Data[i*praw.Stride : i*praw.Stride+3]
		g := graw.Data[i*graw.Stride : i*graw.Stride+3]
		rho[i] = P.point(p[0], p[1], p[2], g, cut2)
	}
	return nil
}

//point returns the density at x,y,z and puts the gradient in g.
func (P *Promolecule) point(x, y, z float64, g []float64, cut2 float64) float64 {
	var rho float64
	for a, f := range P.fits {
		c := P.centers[a]
		dx := x - c[0]
		dy := y - c[1]
		dz := z - c[2]
		r2 := dx*dx + dy*dy + dz*dz
		if cut2 > 0 && r2 > cut2 {
			continue
		}
		r := math.Sqrt(r2)
		var d float64 //radial derivative
		for k, ck := range f.C {
			e := ck * math.Exp(-r/f.Zeta[k])
			rho += e
			d -= e / f.Zeta[k]
		}
		//the gradient of a spherical density is not defined at the nucleus, we take it as 0.
		if r > 0 {
			d /= r
			g[0] += d * dx
			g[1] += d * dy
			g[2] += d * dz
		}
	}
	return rho
}
