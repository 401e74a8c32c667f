/*
 * select_test.go, part of goNCI.
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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSelect(Te *testing.T) {
	rho := []float64{0.01, 0.3, 0.02, 0.05, 0}
	s := []float64{0.5, 0.2, 1.5, 1.0, math.Inf(1)}
	got := Select(rho, s, 0.2, 1.0)
	if diff := cmp.Diff([]int{0, 3}, got); diff != "" {
		Te.Errorf("wrong selection (-want +got):\n%s", diff)
	}
}

func TestSummarize(Te *testing.T) {
	S := Summarize([]float64{1, 2, 3, math.NaN(), math.Inf(1)})
	if S.N != 5 || S.Finite != 3 || S.MinS != 1 || S.MaxS != 3 || S.MeanS != 2 || S.StdS != 1 {
		Te.Errorf("wrong summary %v", S)
	}
	E := Summarize([]float64{math.NaN()})
	if E.Finite != 0 || !math.IsNaN(E.MeanS) {
		Te.Errorf("wrong summary for no finite points %v", E)
	}
	O := Summarize([]float64{4})
	if O.MeanS != 4 || O.StdS != 0 {
		Te.Errorf("wrong summary for one point %v", O)
	}
}

func TestHistogram(Te *testing.T) {
	H, err := NewHistogram([]float64{0.1, 0.1, 0.6, 1.9, 2, 5, math.NaN()}, 4, 2)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff([]float64{0, 0.5, 1, 1.5, 2}, H.Dividers); diff != "" {
		Te.Errorf("wrong dividers:\n%s", diff)
	}
	if diff := cmp.Diff([]float64{2, 1, 0, 1}, H.Counts); diff != "" {
		Te.Errorf("wrong counts:\n%s", diff)
	}
	if H.Outside != 2 {
		Te.Errorf("expected 2 values outside, got %d", H.Outside)
	}
	if _, err := NewHistogram(nil, 0, 1); err == nil {
		Te.Errorf("0 bins should give an error")
	}
}
