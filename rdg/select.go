/*
 * select.go, part of goNCI.
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

package rdg

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Default cutoffs for Select.
const (
	DefaultRhoCut = 0.2
	DefaultSCut   = 1.0
)

//Select returns the indexes of the points with density equal or lower than rhoCut
//and reduced gradient equal or lower than sCut, i.e. the points likely to belong
//to non-covalent interaction regions. Points with non-finite s are never selected.
//It panics if rho and s have different lengths.
func Select(rho, s []float64, rhoCut, sCut float64) []int {
	if len(rho) != len(s) {
		panic(fmt.Sprintf("goNCI/rdg.Select: %d densities but %d reduced gradients", len(rho), len(s)))
	}
	ret := make([]int, 0, len(s)/10)
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v <= sCut && rho[i] <= rhoCut {
			ret = append(ret, i)
		}
	}
	return ret
}

//Summary contains some statistics over the finite reduced gradient values of a set of points.
type Summary struct {
	N      int //total number of points
	Finite int //points with finite s
	MinS   float64
	MaxS   float64
	MeanS  float64
	StdS   float64
}

func (S Summary) String() string {
	return fmt.Sprintf("points: %d finite: %d s min/max: %.4g/%.4g mean: %.4g std: %.4g", S.N, S.Finite, S.MinS, S.MaxS, S.MeanS, S.StdS)
}

func finite(s []float64) []float64 {
	ret := make([]float64, 0, len(s))
	for _, v := range s {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			ret = append(ret, v)
		}
	}
	return ret
}

//Summarize returns statistics over the finite values in s.
//If there are no finite values, all the statistics are NaN.
func Summarize(s []float64) Summary {
	f := finite(s)
	ret := Summary{N: len(s), Finite: len(f)}
	if len(f) == 0 {
		nan := math.NaN()
		ret.MinS, ret.MaxS, ret.MeanS, ret.StdS = nan, nan, nan, nan
		return ret
	}
	ret.MinS = floats.Min(f)
	ret.MaxS = floats.Max(f)
	if len(f) == 1 {
		ret.MeanS = f[0]
		return ret
	}
	ret.MeanS, ret.StdS = stat.MeanStdDev(f, nil)
	return ret
}

//Histogram is a histogram of reduced gradient values.
type Histogram struct {
	Dividers []float64 //len(Counts)+1 bin limits
	Counts   []float64
	Outside  int //finite values out of the range of the dividers
}

//NewHistogram bins the finite values of s in bins equal bins between 0 and max.
//Values equal or larger than max are counted in Outside.
func NewHistogram(s []float64, bins int, max float64) (*Histogram, error) {
	if bins <= 0 || max <= 0 || math.IsInf(max, 0) || math.IsNaN(max) {
		return nil, fmt.Errorf("goNCI/rdg: invalid histogram with %d bins and maximum %g", bins, max)
	}
	ret := &Histogram{Dividers: floats.Span(make([]float64, bins+1), 0, max), Counts: make([]float64, bins)}
	f := finite(s)
	in := f[:0]
	for _, v := range f {
		if v < 0 || v >= max {
			ret.Outside++
			continue
		}
		in = append(in, v)
	}
	if len(in) == 0 {
		return ret, nil
	}
	sort.Float64s(in)
	stat.Histogram(ret.Counts, ret.Dividers, in, nil)
	return ret, nil
}
