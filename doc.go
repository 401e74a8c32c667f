/*
 * doc.go, part of goNCI.
 *
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
 *
 */

/*
Package nci is the main package of the goNCI library. It provides atom and
molecule structures, atomic data and readers for molecular structure files,
which are the starting point to compute the reduced density gradient (RDG)
of a molecule from its promolecular density.

	**goNCI Capabilities**

    Reads XYZ files, plain or compressed with gzip or zstd.

    Builds uniform cubic grids around a molecule (package grid).

    Evaluates promolecular densities and their gradients from tabulated
	free-atom densities, concurrently (package atomdb).

    Computes the reduced density gradient, s = |∇ρ| / (2(3π²)^(1/3) ρ^(4/3)),
	on any set of points, and selects the low-density, low-gradient points
	that signal non-covalent interactions (package rdg).

    Writes Gaussian cube files for the density and the RDG (package cube).

    Plots the density vs. RDG scatter (uses the gonum/plot library, package nciplot).

    Runs the whole procedure from a structure file (package analysis, and the
	gonci command).

Coordinates are kept in v3.Matrix objects, where each row is one point in
space. Structure files are read in Angstrom; all the density-related
quantities are in atomic units, so coordinates are converted with A2Bohr
before building grids or promolecules.*/
package nci

//Version is the goNCI version.
const Version = "0.1.0"
