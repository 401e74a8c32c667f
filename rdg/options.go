/*
 * options.go, part of goNCI.
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
	"runtime"
	"strings"
)

//Policy determines what to do with points where the density is zero or not finite.
type Policy int

const (
	//Strict makes Reduced fail with a DomainError if a density is not positive and finite,
	//a gradient is not finite, or the reduced gradient itself overflows (extremely small
	//densities with non-zero gradients).
	Strict Policy = iota
	//IEEE makes Reduced return +Inf for zero densities with non-zero gradients,
	//and NaN for zero densities with zero gradients, or for NaN inputs.
	//Negative densities are still rejected.
	IEEE
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case IEEE:
		return "ieee"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

//ParsePolicy returns the Policy named by s ("strict" or "ieee", case insensitive).
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict", "":
		return Strict, nil
	case "ieee", "inf", "nan":
		return IEEE, nil
	}
	return Strict, fmt.Errorf("goNCI/rdg: unknown policy %q", s)
}

//Options for the RDG calculation.
type Options struct {
	policy   Policy
	cpus     int
	minChunk int
}

//DefaultOptions returns an Options with the default options.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.policy = Strict
	ret.cpus = runtime.NumCPU()
	ret.minChunk = 4096
	return ret
}

//Policy returns the current policy for zero densities, and sets it
//to the given value, if any.
func (o *Options) Policy(p ...Policy) Policy {
	ret := o.policy
	if len(p) > 0 {
		o.policy = p[0]
	}
	return ret
}

//Cpus returns the current value of the Cpus option (the number of goroutines to
//use on the concurrent calculation) and sets it, if a valid value is given
func (o *Options) Cpus(cpus ...int) int {
	ret := o.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		o.cpus = cpus[0]
	}
	return ret
}

//MinChunk returns the smallest number of points given to each goroutine,
//and sets it, if a valid value is given. Smaller sets of points
//are processed sequentially.
func (o *Options) MinChunk(n ...int) int {
	ret := o.minChunk
	if len(n) > 0 && n[0] > 0 {
		o.minChunk = n[0]
	}
	return ret
}
