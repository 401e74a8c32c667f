/*
 * doc.go, part of goNCI.
 *
 * Copyright 2015 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

/*
Package v3 implements a Matrix type representing a row-major Nx3 matrix.
In goNCI a v3.Matrix holds atomic coordinates, grid points and density
gradients: each row is one vector in 3D space. It is based on gonum's
(gonum.org/v1/gonum/mat) Dense type, with the restriction of a fixed
number of columns and a few additional functions that are useful when
working with fields sampled on sets of points.

A Matrix with zero vectors is allowed (gonum does not allow zero-sized
Dense matrices), and is represented by a Matrix with a nil Dense.
*/
package v3
