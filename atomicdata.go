/*
 * atomicdata.go, part of goNCI.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
	"strings"
)

//Element symbols, indexed by atomic number.
//Only the first 4 periods are present.
var zSymbol = []string{"",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
}

//A map for assigning atomic numbers to elements.
var symbolZ = make(map[string]int, len(zSymbol))

func init() {
	for z, s := range zSymbol {
		if s != "" {
			symbolZ[s] = z
		}
	}
}

//A2Bohr converts Angstrom to Bohr.
const A2Bohr = 1.8897261254578281

//Bohr2A converts Bohr to Angstrom.
const Bohr2A = 1 / A2Bohr

//MaxZ is the largest atomic number for which element data is available.
var MaxZ = len(zSymbol) - 1

//NormSymbol returns the element symbol s with the first letter
//in upper case and the rest in lower case, so "CL" and "cl"
//both become "Cl".
func NormSymbol(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

//SymbolZ returns the atomic number for the element symbol s.
func SymbolZ(s string) (int, error) {
	z, ok := symbolZ[NormSymbol(s)]
	if !ok {
		return 0, fmt.Errorf("goNCI: unknown element symbol %q", s)
	}
	return z, nil
}

//ZSymbol returns the element symbol for the atomic number z.
func ZSymbol(z int) (string, error) {
	if z <= 0 || z > MaxZ {
		return "", fmt.Errorf("goNCI: no element data for atomic number %d", z)
	}
	return zSymbol[z], nil
}
