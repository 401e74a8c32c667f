/*
 * rdg.go, part of goNCI.
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
	"sync"

	v3 "github.com/rmera/gonci/v3"
)

//Constant is 2(3π²)^(1/3), the denominator factor of the reduced gradient.
const Constant = 6.187335452560271

//Value returns the reduced gradient for a single point with density rho
//and gradient norm gnorm. ok is false if the point is outside the domain
//for the given policy.
func Value(rho, gnorm float64, p Policy) (s float64, ok bool) {
	switch {
	case rho < 0:
		return 0, false
	case p == Strict && (rho == 0 || math.IsNaN(rho) || math.IsInf(rho, 0) || math.IsNaN(gnorm) || math.IsInf(gnorm, 0)):
		return 0, false
	case rho == 0:
		if gnorm == 0 || math.IsNaN(gnorm) {
			return math.NaN(), true
		}
		return math.Inf(1), true
	}
	if gnorm == 0 && !math.IsNaN(rho) {
		return 0, true
	}
	//rho^(4/3) underflows for rho below ~1e-243, so the division goes in two steps.
	//NaNs propagate.
	s = (gnorm / rho) / (Constant * math.Cbrt(rho))
	if p == Strict && (math.IsNaN(s) || math.IsInf(s, 0)) {
		return 0, false
	}
	return s, true
}

//Norms returns the Euclidean norm of each gradient vector.
func Norms(grad *v3.Matrix) []float64 {
	return grad.Norms(nil)
}

//Reduced returns the reduced density gradient for each of the points where the density rho
//and its gradient grad are sampled. The ith element of rho and the ith vector of grad must
//correspond to the same point. A *ShapeError is returned if the number of densities
//and gradient vectors differ. A *DomainError is returned for the first point
//(lowest index) where the reduced gradient can't be obtained, according to the policy
//in the options (see Policy).
//Large sets of points are processed concurrently.
func Reduced(rho []float64, grad *v3.Matrix, options ...*Options) ([]float64, error) {
	var o *Options
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	n := len(rho)
	if n != grad.NVecs() {
		return nil, &ShapeError{Densities: n, Gradients: grad.NVecs(), deco: []string{"Reduced"}}
	}
	ret := make([]float64, n)
	if n == 0 {
		return ret, nil
	}
	chunks := nChunks(n, o.cpus, o.minChunk)
	if chunks <= 1 {
		if err := reduceRange(ret, rho, grad, 0, n, o.policy); err != nil {
			err.Decorate("Reduced")
			return nil, err
		}
		return ret, nil
	}
	errs := make([]*DomainError, chunks)
	size := (n + chunks - 1) / chunks
	var wg sync.WaitGroup
	for c := 0; c < chunks; c++ {
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
			errs[c] = reduceRange(ret, rho, grad, lo, hi, o.policy)
		}(c, lo, hi)
	}
	wg.Wait()
	//chunks are sorted by index, so the first error found is the one with the lowest index.
	for _, err := range errs {
		if err != nil {
			err.Decorate("Reduced")
			return nil, err
		}
	}
	return ret, nil
}

//nChunks returns how many pieces a set of n points is divided into,
//given the number of goroutines available and the smallest piece allowed.
func nChunks(n, cpus, minChunk int) int {
	if cpus <= 1 || minChunk <= 0 || n < 2*minChunk {
		return 1
	}
	c := n / minChunk
	if c > cpus {
		c = cpus
	}
	return c
}

//reduceRange fills dst[lo:hi] with the reduced gradients of the corresponding points.
//It returns a DomainError for the first point out of the domain, or nil.
func reduceRange(dst, rho []float64, grad *v3.Matrix, lo, hi int, p Policy) *DomainError {
	raw := grad.RawMatrix()
	for i := lo; i < hi; i++ {
		g := raw.Data[i*raw.Stride : i*raw.Stride+3]
		gnorm := math.Hypot(math.Hypot(g[0], g[1]), g[2])
		s, ok := Value(rho[i], gnorm, p)
		if !ok {
			return &DomainError{Index: i, Density: rho[i], GradNorm: gnorm, Policy: p}
		}
		dst[i] = s
	}
	return nil
}
