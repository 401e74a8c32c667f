/*
 * rdg_test.go, part of goNCI.
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
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	nci "github.com/rmera/gonci"
	v3 "github.com/rmera/gonci/v3"
)

func grads(g ...float64) *v3.Matrix {
	m, err := v3.NewMatrix(g)
	if err != nil {
		panic(err)
	}
	return m
}

func TestConstant(Te *testing.T) {
	if math.Abs(Constant-2*math.Cbrt(3*math.Pi*math.Pi)) > 1e-14 {
		Te.Errorf("wrong constant %v", Constant)
	}
}

func TestReducedPythagorean(Te *testing.T) {
	s, err := Reduced([]float64{1.0}, grads(3, 4, 0))
	if err != nil {
		Te.Fatal(err)
	}
	want := 5.0 / Constant
	if math.Abs(s[0]-want) > 1e-12 || math.Abs(s[0]-0.8081022983699775) > 1e-12 {
		Te.Errorf("expected %v, got %v", want, s[0])
	}
}

func TestReducedZeroGradient(Te *testing.T) {
	s, err := Reduced([]float64{8.0, 1e-6, 3}, grads(0, 0, 0, 0, 0, 0, 0, 0, 0))
	if err != nil {
		Te.Fatal(err)
	}
	for i, v := range s {
		if v != 0 {
			Te.Errorf("point %d: expected 0, got %v", i, v)
		}
	}
}

func TestReducedDensityScaling(Te *testing.T) {
	//s scales as rho^(-4/3): doubling the density divides s by 2^(4/3).
	s, err := Reduced([]float64{1, 2}, grads(3, 0, 0, 3, 0, 0))
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(s[0]/s[1]-math.Pow(2, 4.0/3.0)) > 1e-12 {
		Te.Errorf("wrong density scaling: %v", s)
	}
}

func TestReducedProperties(Te *testing.T) {
	r := rand.New(rand.NewSource(42))
	n := 500
	rho := make([]float64, n)
	g := make([]float64, 3*n)
	for i := range rho {
		rho[i] = r.Float64()*2 + 1e-8
		for j := 0; j < 3; j++ {
			g[3*i+j] = r.NormFloat64()
		}
	}
	grad := grads(g...)
	s, err := Reduced(rho, grad)
	if err != nil {
		Te.Fatal(err)
	}
	for i, v := range s {
		if v < 0 || math.IsNaN(v) {
			Te.Fatalf("point %d: s should be non-negative, got %v", i, v)
		}
	}
	for _, k := range []float64{0, 0.5, 3, 1e3} {
		sk, err := Reduced(rho, grad.Scaled(k))
		if err != nil {
			Te.Fatal(err)
		}
		for i := range s {
			if math.Abs(sk[i]-math.Abs(k)*s[i]) > 1e-9*(1+sk[i]) {
				Te.Fatalf("k=%v point %d: s should scale linearly with the gradient: %v vs %v", k, i, sk[i], k*s[i])
			}
		}
	}
	//a negative k scales the norm by |k|.
	sneg, _ := Reduced(rho, grad.Scaled(-2))
	if diff := cmp.Diff(sneg, floatsScaled(s, 2), cmpopts.EquateApprox(1e-12, 0)); diff != "" {
		Te.Errorf("reversed gradients should give twice s (-want +got):\n%s", diff)
	}
}

func floatsScaled(s []float64, k float64) []float64 {
	ret := make([]float64, len(s))
	for i, v := range s {
		ret[i] = v * k
	}
	return ret
}

func TestReducedShapeMismatch(Te *testing.T) {
	s, err := Reduced([]float64{1, 2, 3}, grads(1, 0, 0, 0, 1, 0))
	if err == nil {
		Te.Fatalf("expected a shape mismatch, got %v", s)
	}
	if s != nil {
		Te.Errorf("no partial results should be returned on error")
	}
	if !errors.Is(err, ErrShapeMismatch) {
		Te.Errorf("error should match ErrShapeMismatch: %v", err)
	}
	var se *ShapeError
	if !errors.As(err, &se) || se.Densities != 3 || se.Gradients != 2 {
		Te.Errorf("wrong ShapeError %v", err)
	}
	if _, ok := err.(nci.Error); !ok {
		Te.Errorf("ShapeError should implement nci.Error")
	}
	fmt.Println(err, se.Decorate(""))
	if _, err := Reduced([]float64{1}, nil); !errors.Is(err, ErrShapeMismatch) {
		Te.Errorf("a nil gradient has no vectors: %v", err)
	}
}

func TestReducedEmpty(Te *testing.T) {
	s, err := Reduced(nil, v3.Zeros(0))
	if err != nil {
		Te.Fatal(err)
	}
	if s == nil || len(s) != 0 {
		Te.Errorf("expected an empty, non-nil slice, got %v", s)
	}
}

func TestReducedZeroDensity(Te *testing.T) {
	_, err := Reduced([]float64{0.0}, grads(1, 0, 0))
	if !errors.Is(err, ErrDomain) {
		Te.Fatalf("expected a DomainError under the strict policy, got %v", err)
	}
	o := DefaultOptions()
	if o.Policy(IEEE) != Strict {
		Te.Errorf("the default policy should be Strict")
	}
	s, err := Reduced([]float64{0.0, 0.0, 1}, grads(1, 0, 0, 0, 0, 0, 0, 0, 0), o)
	if err != nil {
		Te.Fatal(err)
	}
	if !math.IsInf(s[0], 1) {
		Te.Errorf("expected +Inf for a zero density with a non-zero gradient, got %v", s[0])
	}
	if !math.IsNaN(s[1]) {
		Te.Errorf("expected NaN for a zero density with a zero gradient, got %v", s[1])
	}
	if s[2] != 0 {
		Te.Errorf("expected 0, got %v", s[2])
	}
}

func TestReducedNegativeDensity(Te *testing.T) {
	for _, p := range []Policy{Strict, IEEE} {
		o := DefaultOptions()
		o.Policy(p)
		_, err := Reduced([]float64{1, -0.1, -2}, grads(1, 0, 0, 1, 0, 0, 1, 0, 0), o)
		var de *DomainError
		if !errors.As(err, &de) {
			Te.Fatalf("policy %s: expected a DomainError, got %v", p, err)
		}
		if de.Index != 1 || de.Density != -0.1 {
			Te.Errorf("policy %s: the first offending point should be reported: %v", p, de)
		}
	}
}

func TestReducedNaN(Te *testing.T) {
	if _, err := Reduced([]float64{math.NaN()}, grads(1, 0, 0)); !errors.Is(err, ErrDomain) {
		Te.Errorf("NaN densities should be rejected under the strict policy")
	}
	if _, err := Reduced([]float64{1}, grads(math.Inf(1), 0, 0)); !errors.Is(err, ErrDomain) {
		Te.Errorf("infinite gradients should be rejected under the strict policy")
	}
	o := DefaultOptions()
	o.Policy(IEEE)
	s, err := Reduced([]float64{math.NaN()}, grads(1, 0, 0), o)
	if err != nil || !math.IsNaN(s[0]) {
		Te.Errorf("NaN should propagate under the IEEE policy: %v %v", s, err)
	}
}

func TestReducedConcurrent(Te *testing.T) {
	r := rand.New(rand.NewSource(7))
	n := 10007
	rho := make([]float64, n)
	g := make([]float64, 3*n)
	for i := range rho {
		rho[i] = r.Float64()
		for j := 0; j < 3; j++ {
			g[3*i+j] = r.NormFloat64()
		}
	}
	rho[5] = 0 //to be used with IEEE
	seq := DefaultOptions()
	seq.Cpus(1)
	seq.Policy(IEEE)
	conc := DefaultOptions()
	conc.Cpus(4)
	conc.MinChunk(100)
	conc.Policy(IEEE)
	s1, err := Reduced(rho, grads(g...), seq)
	if err != nil {
		Te.Fatal(err)
	}
	s2, err := Reduced(rho, grads(g...), conc)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff(s1, s2, cmpopts.EquateNaNs()); diff != "" {
		Te.Errorf("sequential and concurrent results differ (-seq +conc):\n%s", diff)
	}
	rho[9000] = -1
	rho[3000] = -1
	conc.Policy(Strict)
	_, err = Reduced(rho, grads(g...), conc)
	var de *DomainError
	if !errors.As(err, &de) || de.Index != 5 {
		Te.Errorf("the lowest offending index should be reported, got %v", err)
	}
	conc.Policy(IEEE)
	_, err = Reduced(rho, grads(g...), conc)
	if !errors.As(err, &de) || de.Index != 3000 {
		Te.Errorf("the lowest negative density should be reported, got %v", err)
	}
}

func TestParsePolicy(Te *testing.T) {
	for s, want := range map[string]Policy{"strict": Strict, "IEEE": IEEE, "": Strict, "nan": IEEE} {
		p, err := ParsePolicy(s)
		if err != nil || p != want {
			Te.Errorf("%q: expected %s, got %s (%v)", s, want, p, err)
		}
	}
	if _, err := ParsePolicy("ignore"); err == nil {
		Te.Errorf("unknown policies should give an error")
	}
}

func TestReducedTinyDensity(Te *testing.T) {
	//rho^(4/3) underflows to 0 for these densities, s must still be well defined.
	s, err := Reduced([]float64{1e-250, 1e-300}, grads(0, 0, 0, 0, 0, 0))
	if err != nil {
		Te.Fatal(err)
	}
	if s[0] != 0 || s[1] != 0 {
		Te.Errorf("a zero gradient should give s=0 for any positive density, got %v", s)
	}
	s, err = Reduced([]float64{1e-250}, grads(1e-260, 0, 0))
	if err != nil {
		Te.Fatal(err)
	}
	want := (1e-260 / 1e-250) / (Constant * math.Cbrt(1e-250))
	if s[0] < 0 || math.IsInf(s[0], 0) || math.Abs(s[0]-want) > 1e-9*want {
		Te.Errorf("expected %v, got %v", want, s[0])
	}
	//here s itself overflows: the strict policy rejects it, IEEE gives +Inf.
	_, err = Reduced([]float64{1e-250}, grads(1, 0, 0))
	var de *DomainError
	if !errors.As(err, &de) || de.Index != 0 {
		Te.Errorf("an overflowing s should be a DomainError under the strict policy, got %v", err)
	}
	o := DefaultOptions()
	o.Policy(IEEE)
	s, err = Reduced([]float64{1e-250}, grads(1, 0, 0), o)
	if err != nil || !math.IsInf(s[0], 1) {
		Te.Errorf("expected +Inf under the IEEE policy, got %v %v", s, err)
	}
}

func TestReducedHugeGradient(Te *testing.T) {
	//the squares of these components overflow, their norm doesn't.
	s, err := Reduced([]float64{1e160}, grads(1e200, 1e200, 1e200))
	if err != nil {
		Te.Fatal(err)
	}
	want := (math.Sqrt(3) * 1e40) / (Constant * math.Cbrt(1e160))
	if math.Abs(s[0]-want) > 1e-12*want {
		Te.Errorf("expected %v, got %v", want, s[0])
	}
	n := Norms(grads(1e200, 1e200, 1e200, 3, 4, 0))
	if math.Abs(n[0]-math.Sqrt(3)*1e200) > 1e-12*n[0] || n[1] != 5 {
		Te.Errorf("wrong norms %v", n)
	}
}
