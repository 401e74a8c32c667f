/*
 * doc.go, part of goNCI.
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

/*
Package rdg computes the reduced density gradient (RDG),

	s = |∇ρ| / (2 (3π²)^(1/3) ρ^(4/3))

from a density sampled on a set of points and the gradient of the density
on the same points. Small values of s at low densities indicate
non-covalent interactions, so the package also provides the selection of
such points and some statistics over s.

The RDG is not defined where the density is zero. The behaviour at those
points is controlled by a Policy: with Strict (the default) Reduced fails
with a DomainError, while with IEEE it returns +Inf (non-zero gradient) or
NaN (zero gradient) for those points. Negative densities are always
rejected.
*/
package rdg
