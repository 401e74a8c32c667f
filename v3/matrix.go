/*
 * matrix.go, part of goNCI.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const cols int = 3

//Matrix is a set of vectors in 3D space.
//Within the package it is understood that a "vector" is a row vector, i.e. the
//cartesian coordinates of a point, or the 3 components of a gradient.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
//The data slice is used as backing storage, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	if rows == 0 {
		return &Matrix{}, nil
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	if vecs < 0 {
		panic(ErrShape)
	}
	if vecs == 0 {
		return &Matrix{}
	}
	return &Matrix{mat.NewDense(vecs, cols, nil)}
}

//NVecs returns the number of vectors in F. A nil matrix has 0 vectors.
func (F *Matrix) NVecs() int {
	if F == nil || F.Dense == nil {
		return 0
	}
	r, c := F.Dims()
	if c != cols {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Len is the same as NVecs
func (F *Matrix) Len() int {
	return F.NVecs()
}

//VecView returns a view of the ith vector of the matrix.
//Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	return F.View(i, 1)
}

//View returns a view of r vectors of F, starting from the ith one.
//A view with r==0 is an empty Matrix.
func (F *Matrix) View(i, r int) *Matrix {
	n := F.NVecs()
	if i < 0 || r < 0 || i+r > n {
		panic(ErrIndexOutOfRange)
	}
	if r == 0 {
		return &Matrix{}
	}
	return &Matrix{F.Dense.Slice(i, i+r, 0, cols).(*mat.Dense)}
}

//Vec returns a copy of the ith vector.
func (F *Matrix) Vec(i int) [3]float64 {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	raw := F.RawMatrix()
	d := raw.Data[i*raw.Stride : i*raw.Stride+cols]
	return [3]float64{d[0], d[1], d[2]}
}

//SetVec sets the ith vector of F to v.
func (F *Matrix) SetVec(i int, v [3]float64) {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	raw := F.RawMatrix()
	copy(raw.Data[i*raw.Stride:i*raw.Stride+cols], v[:])
}

//Norms puts the Euclidean norm of each vector of F in dst, which is
//returned. If dst is nil or too short, a new slice is allocated.
func (F *Matrix) Norms(dst []float64) []float64 {
	n := F.NVecs()
	if len(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]
	if n == 0 {
		return dst
	}
	raw := F.RawMatrix()
	for i := 0; i < n; i++ {
		d := raw.Data[i*raw.Stride : i*raw.Stride+cols]
		dst[i] = math.Hypot(math.Hypot(d[0], d[1]), d[2])
	}
	return dst
}

//Bounds returns the smallest and largest value of each coordinate in F.
//If a coordinate is NaN in any vector, both of its bounds are NaN.
//It panics if F has no vectors.
func (F *Matrix) Bounds() (min, max [3]float64) {
	n := F.NVecs()
	if n == 0 {
		panic(ErrNotEnoughElements)
	}
	min = F.Vec(0)
	max = min
	for i := 1; i < n; i++ {
		v := F.Vec(i)
		for j, c := range v {
			if math.IsNaN(c) {
				min[j], max[j] = c, c
				continue
			}
			if c < min[j] {
				min[j] = c
			}
			if c > max[j] {
				max[j] = c
			}
		}
	}
	return min, max
}

//Scaled returns a new matrix with each element of F multiplied by k.
func (F *Matrix) Scaled(k float64) *Matrix {
	n := F.NVecs()
	ret := Zeros(n)
	if n > 0 {
		ret.Scale(k, F.Dense)
	}
	return ret
}

//String implements fmt.Stringer, so matrices print one vector per line.
func (F *Matrix) String() string {
	if F.NVecs() == 0 {
		return "[]"
	}
	return fmt.Sprintf("%v", mat.Formatted(F.Dense))
}
