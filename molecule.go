/*
 * molecule.go, part of goNCI.
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

package nci

import (
	"fmt"

	v3 "github.com/rmera/gonci/v3"
)

//Atom contains the information read for an atom, except for the
//coordinates, which will be in a v3.Matrix.
type Atom struct {
	Symbol string
	Z      int
	ID     int //1-based position in the file it was read from
}

//Copy returns a copy of the atom.
func (A *Atom) Copy() *Atom {
	ret := *A
	return &ret
}

//Molecule contains a set of atoms and their coordinates, in Angstrom.
type Molecule struct {
	Atoms   []*Atom
	Coords  *v3.Matrix
	Comment string
}

//NewMolecule returns a Molecule with the given atoms and coordinates.
//It fails if the number of atoms and coordinates don't match.
func NewMolecule(atoms []*Atom, coords *v3.Matrix, comment string) (*Molecule, error) {
	if len(atoms) != coords.NVecs() {
		return nil, &CError{fmt.Sprintf("%d atoms but %d coordinates", len(atoms), coords.NVecs()), "", []string{"NewMolecule"}, true}
	}
	return &Molecule{Atoms: atoms, Coords: coords, Comment: comment}, nil
}

//Atom returns the ith atom of the molecule.
func (M *Molecule) Atom(i int) *Atom {
	return M.Atoms[i]
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//AtomicNumbers returns a slice with the atomic number of each atom.
func (M *Molecule) AtomicNumbers() []int {
	ret := make([]int, len(M.Atoms))
	for i, v := range M.Atoms {
		ret[i] = v.Z
	}
	return ret
}

//BohrCoords returns a copy of the coordinates, converted to Bohr.
func (M *Molecule) BohrCoords() *v3.Matrix {
	return M.Coords.Scaled(A2Bohr)
}

//Formula returns the formula of the molecule, in order of appearance
//of the elements, e.g. "H2O" for water read as H H O.
func (M *Molecule) Formula() string {
	counts := make(map[string]int)
	order := make([]string, 0, 4)
	for _, a := range M.Atoms {
		if counts[a.Symbol] == 0 {
			order = append(order, a.Symbol)
		}
		counts[a.Symbol]++
	}
	ret := ""
	for _, s := range order {
		if counts[s] == 1 {
			ret += s
		} else {
			ret += fmt.Sprintf("%s%d", s, counts[s])
		}
	}
	return ret
}
