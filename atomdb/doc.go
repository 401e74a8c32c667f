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
Package atomdb provides free-atom reference densities and the promolecule
built from them.

A Dataset holds, for each element, a spherical density fitted to a sum of
exponentials. The "nciplot" dataset (elements H to Ar) is always available;
other datasets can be read from TOML files with LoadTOML and then used by
name.

MakePromolecule places the atomic densities of a dataset at a set of nuclear
positions (in Bohr). The promolecular density and its gradient can then be
evaluated at any set of points, concurrently.
*/
package atomdb
