/*
 * xyz.go, part of goNCI.
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
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/gonci/v3"
)

//Compression returns the compression format implied by the
//extension of the file name: "gz", "zst" or "" for none.
func Compression(name string) string {
	n := strings.ToLower(name)
	switch {
	case strings.HasSuffix(n, ".gz"):
		return "gz"
	case strings.HasSuffix(n, ".zst"), strings.HasSuffix(n, ".zstd"):
		return "zst"
	}
	return ""
}

//decompressor returns a ReadCloser that reads decompressed data from r,
//depending on the given compression format. The ReadCloser doesn't close r.
func decompressor(r io.Reader, format string) (io.ReadCloser, error) {
	switch format {
	case "gz":
		return gzip.NewReader(r)
	case "zst":
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	case "":
		return io.NopCloser(r), nil
	}
	return nil, fmt.Errorf("compression format %s not supported", format)
}

//XYZFileRead reads the first frame of the xyz file xyzname, and returns
//a Molecule with its atoms and coordinates. Files ending in .gz or .zst
//are decompressed on the fly.
func XYZFileRead(xyzname string) (*Molecule, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, &CError{UnableToOpen + ": " + err.Error(), xyzname, []string{"os.Open", "XYZFileRead"}, true}
	}
	defer xyzfile.Close()
	r, err := decompressor(bufio.NewReader(xyzfile), Compression(xyzname))
	if err != nil {
		return nil, &CError{err.Error(), xyzname, []string{"decompressor", "XYZFileRead"}, true}
	}
	defer r.Close()
	mol, err := xyzRead(r, xyzname)
	if err != nil {
		return nil, ErrDecorate(err, "XYZFileRead")
	}
	return mol, nil
}

//XYZRead reads the first frame of xyz data from r.
func XYZRead(r io.Reader) (*Molecule, error) {
	mol, err := xyzRead(r, "")
	if err != nil {
		return nil, ErrDecorate(err, "XYZRead")
	}
	return mol, nil
}

func xyzRead(r io.Reader, fname string) (*Molecule, error) {
	xyz := bufio.NewScanner(r)
	lineno := 0
	next := func() (string, bool) {
		ok := xyz.Scan()
		if ok {
			lineno++
		}
		return xyz.Text(), ok
	}
	line, ok := next()
	if !ok {
		return nil, readErr(xyz.Err(), EOF, fname)
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms < 0 {
		return nil, NewError(fmt.Sprintf("%s: line 1 should contain the number of atoms, got %q", WrongFormat, line), fname, "xyzRead")
	}
	comment, ok := next()
	if !ok && natoms > 0 {
		return nil, readErr(xyz.Err(), EOF, fname)
	}
	atoms := make([]*Atom, natoms)
	coords := make([]float64, natoms*3)
	for i := 0; i < natoms; i++ {
		line, ok = next()
		if !ok {
			return nil, readErr(xyz.Err(), fmt.Sprintf("%s: %d atoms declared but only %d read", EOF, natoms, i), fname)
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, NewError(fmt.Sprintf("%s: line %d ill formed", WrongFormat, lineno), fname, "xyzRead")
		}
		atoms[i], err = parseAtom(fields[0], i+1)
		if err != nil {
			return nil, NewError(fmt.Sprintf("%s in line %d: %s", UnknownElement, lineno, err.Error()), fname, "xyzRead")
		}
		for j := 0; j < 3; j++ {
			coords[i*3+j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, NewError(fmt.Sprintf("%s: can't parse coordinate %d in line %d: %s", WrongFormat, j, lineno, err.Error()), fname, "xyzRead")
			}
			if c := coords[i*3+j]; math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, NewError(fmt.Sprintf("%s: coordinate %d in line %d is not finite", WrongFormat, j, lineno), fname, "xyzRead")
			}
		}
	}
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, err
	}
	return &Molecule{Atoms: atoms, Coords: mcoords, Comment: strings.TrimSpace(comment)}, nil
}

//parseAtom builds an atom from the first column of an xyz line,
//which can be an element symbol, an atomic number, or a symbol followed
//by a numeric label (C12).
func parseAtom(field string, id int) (*Atom, error) {
	if z, err := strconv.Atoi(field); err == nil {
		s, err := ZSymbol(z)
		if err != nil {
			return nil, err
		}
		return &Atom{Symbol: s, Z: z, ID: id}, nil
	}
	sym := strings.TrimRightFunc(field, unicode.IsDigit)
	z, err := SymbolZ(sym)
	if err != nil {
		return nil, err
	}
	return &Atom{Symbol: NormSymbol(sym), Z: z, ID: id}, nil
}

func readErr(err error, msg, fname string) error {
	if err != nil {
		msg = msg + ": " + err.Error()
	}
	return NewError(msg, fname, "xyzRead")
}

//XYZWrite writes the molecule mol to w in xyz format.
func XYZWrite(w io.Writer, mol *Molecule) error {
	if mol.Len() != mol.Coords.NVecs() {
		return &CError{fmt.Sprintf("%d atoms but %d coordinates", mol.Len(), mol.Coords.NVecs()), "", []string{"XYZWrite"}, true}
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%-4d\n%s\n", mol.Len(), mol.Comment)
	for i, a := range mol.Atoms {
		c := mol.Coords.Vec(i)
		fmt.Fprintf(bw, "%-2s  %12.6f%12.6f%12.6f\n", a.Symbol, c[0], c[1], c[2])
	}
	return bw.Flush()
}
