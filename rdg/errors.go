/*
 * errors.go, part of goNCI.
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
)

var (
	//ErrShapeMismatch is matched by errors.Is for every ShapeError.
	ErrShapeMismatch = errors.New("goNCI/rdg: density and gradient lengths differ")
	//ErrDomain is matched by errors.Is for every DomainError.
	ErrDomain = errors.New("goNCI/rdg: density outside the domain of the reduced gradient")
)

//ShapeError is returned when the density and gradient fields don't have
//the same number of points. It fulfills nci.Error.
type ShapeError struct {
	Densities int
	Gradients int
	deco      []string
}

func (E *ShapeError) Error() string {
	return fmt.Sprintf("goNCI/rdg: shape mismatch: %d densities but %d gradient vectors", E.Densities, E.Gradients)
}

//Decorate adds new information to the error
func (E *ShapeError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Critical is always true for a ShapeError
func (E *ShapeError) Critical() bool { return true }

func (E *ShapeError) Is(target error) bool { return target == ErrShapeMismatch }

//DomainError is returned when the reduced gradient can't be obtained for a point,
//because the density is negative, or, under the Strict policy, because the density
//is zero, an input is not finite or the result overflows. It fulfills nci.Error.
type DomainError struct {
	Index    int     //the first offending point
	Density  float64 //the density at that point
	GradNorm float64 //the norm of the gradient at that point
	Policy   Policy
	deco     []string
}

func (E *DomainError) Error() string {
	return fmt.Sprintf("goNCI/rdg: reduced gradient undefined at point %d (density %g, |gradient| %g, policy %s)", E.Index, E.Density, E.GradNorm, E.Policy)
}

//Decorate adds new information to the error
func (E *DomainError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Critical is always true for a DomainError
func (E *DomainError) Critical() bool { return true }

func (E *DomainError) Is(target error) bool { return target == ErrDomain }
