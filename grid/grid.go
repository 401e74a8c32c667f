/*
 * grid.go, part of goNCI.
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

//Package grid builds uniform cubic grids of points around a set of
//coordinates, to sample fields such as electron densities. Lengths are in
//whatever units the coordinates are (goNCI uses Bohr).
package grid

import (
	"fmt"
	"math"

	v3 "github.com/rmera/gonci/v3"
	"gonum.org/v1/gonum/floats"
)

//MaxPoints is the largest grid New will build.
var MaxPoints = 50000000

//Options for building a grid
type Options struct {
	Spacing   [3]float64 //distance between neighboring points along each axis
	Extension float64    //distance added to each side of the bounding box of the coordinates
}

//DefaultOptions returns the default grid options: spacing 0.2 and extension 3.0
func DefaultOptions() *Options {
	return &Options{Spacing: [3]float64{0.2, 0.2, 0.2}, Extension: 3.0}
}

//Uniform returns Options with the same spacing along the 3 axes.
func Uniform(spacing, extension float64) *Options {
	return &Options{Spacing: [3]float64{spacing, spacing, spacing}, Extension: extension}
}

//Cubic is a uniform, axis-aligned grid. Points are ordered with the z index running
//fastest, then y, then x (the order of Gaussian cube files).
type Cubic struct {
	origin  [3]float64
	spacing [3]float64
	shape   [3]int
}

//New returns a grid covering the bounding box of coords, plus o.Extension on each side.
//If o is nil, DefaultOptions() is used.
func New(coords *v3.Matrix, o *Options) (*Cubic, error) {
	if o == nil {
		o = DefaultOptions()
	}
	if coords.NVecs() == 0 {
		return nil, fmt.Errorf("goNCI/grid: can't build a grid around 0 points")
	}
	for _, h := range o.Spacing {
		if !(h > 0) || math.IsInf(h, 0) {
			return nil, fmt.Errorf("goNCI/grid: spacing must be positive and finite, got %v", o.Spacing)
		}
	}
	if !(o.Extension >= 0) || math.IsInf(o.Extension, 0) {
		return nil, fmt.Errorf("goNCI/grid: extension must be non-negative and finite, got %g", o.Extension)
	}
	min, max := coords.Bounds()
	for k := 0; k < 3; k++ {
		if math.IsNaN(min[k]) || math.IsNaN(max[k]) || math.IsInf(min[k], 0) || math.IsInf(max[k], 0) {
			return nil, fmt.Errorf("goNCI/grid: coordinates must be finite, got bounds %v and %v", min, max)
		}
	}
	G := &Cubic{spacing: o.Spacing}
	total := 1.0
	for k := 0; k < 3; k++ {
		G.origin[k] = min[k] - o.Extension
		span := max[k] - min[k] + 2*o.Extension
		//the small tolerance keeps an exact multiple of the spacing from losing its last point.
		G.shape[k] = int(math.Floor(span/o.Spacing[k]+1e-9)) + 1
		total *= float64(G.shape[k])
	}
	if total > float64(MaxPoints) {
		return nil, fmt.Errorf("goNCI/grid: grid of %dx%dx%d points exceeds the maximum of %d points", G.shape[0], G.shape[1], G.shape[2], MaxPoints)
	}
	return G, nil
}

//Origin returns the first point of the grid
func (G *Cubic) Origin() [3]float64 { return G.origin }

//Spacing returns the distance between neighboring points along each axis
func (G *Cubic) Spacing() [3]float64 { return G.spacing }

//Shape returns the number of points along each axis
func (G *Cubic) Shape() [3]int { return G.shape }

//Len returns the total number of points in the grid
func (G *Cubic) Len() int {
	return G.shape[0] * G.shape[1] * G.shape[2]
}

//Index returns the position in the point list of the point with the given
//indexes along each axis. It panics if they are out of range.
func (G *Cubic) Index(ix, iy, iz int) int {
	if ix < 0 || iy < 0 || iz < 0 || ix >= G.shape[0] || iy >= G.shape[1] || iz >= G.shape[2] {
		panic(fmt.Sprintf("goNCI/grid: index (%d,%d,%d) out of range for shape %v", ix, iy, iz, G.shape))
	}
	return (ix*G.shape[1]+iy)*G.shape[2] + iz
}

//Point returns the coordinates of the ith point.
func (G *Cubic) Point(i int) [3]float64 {
	if i < 0 || i >= G.Len() {
		panic(fmt.Sprintf("goNCI/grid: point %d out of range", i))
	}
	iz := i % G.shape[2]
	iy := (i / G.shape[2]) % G.shape[1]
	ix := i / (G.shape[2] * G.shape[1])
	return [3]float64{
		G.origin[0] + float64(ix)*G.spacing[0],
		G.origin[1] + float64(iy)*G.spacing[1],
		G.origin[2] + float64(iz)*G.spacing[2],
	}
}

//Points returns all the points of the grid, one per row.
func (G *Cubic) Points() *v3.Matrix {
	ret := v3.Zeros(G.Len())
	if ret.NVecs() == 0 {
		return ret
	}
	data := ret.RawMatrix().Data
	p := 0
	for ix := 0; ix < G.shape[0]; ix++ {
		x := G.origin[0] + float64(ix)*G.spacing[0]
		for iy := 0; iy < G.shape[1]; iy++ {
			y := G.origin[1] + float64(iy)*G.spacing[1]
			for iz := 0; iz < G.shape[2]; iz++ {
				data[p] = x
				data[p+1] = y
				data[p+2] = G.origin[2] + float64(iz)*G.spacing[2]
				p += 3
			}
		}
	}
	return ret
}

//VolumeElement returns the volume associated to each point.
func (G *Cubic) VolumeElement() float64 {
	return G.spacing[0] * G.spacing[1] * G.spacing[2]
}

//Weights returns the quadrature weights of the points, which are all equal
//to the volume element.
func (G *Cubic) Weights() []float64 {
	ret := make([]float64, G.Len())
	for i := range ret {
		ret[i] = G.VolumeElement()
	}
	return ret
}

//Integrate returns the integral of a field sampled on the grid points, using the grid weights.
func (G *Cubic) Integrate(values []float64) (float64, error) {
	if len(values) != G.Len() {
		return 0, fmt.Errorf("goNCI/grid: %d values given for a grid of %d points", len(values), G.Len())
	}
	return floats.Sum(values) * G.VolumeElement(), nil
}

func (G *Cubic) String() string {
	return fmt.Sprintf("grid %dx%dx%d (%d points) origin %.4f %.4f %.4f spacing %.4f %.4f %.4f", G.shape[0], G.shape[1], G.shape[2], G.Len(),
		G.origin[0], G.origin[1], G.origin[2], G.spacing[0], G.spacing[1], G.spacing[2])
}
