/*
 * cube.go, part of goNCI.
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

//Package cube writes fields sampled on a grid.Cubic as Gaussian cube files.
package cube

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	nci "github.com/rmera/gonci"
	"github.com/rmera/gonci/grid"
)

//Sentinel is written instead of non-finite values, as the reduced gradient
//at points with zero density.
const Sentinel = 100.0

//Write writes values, sampled on the grid G, around the molecule mol (with coordinates
//in Angstrom) to w in the Gaussian cube format. The title goes in the first comment line.
func Write(w io.Writer, mol *nci.Molecule, G *grid.Cubic, values []float64, title string) error {
	if len(values) != G.Len() {
		return fmt.Errorf("goNCI/cube: %d values for a grid of %d points", len(values), G.Len())
	}
	if mol.Len() != mol.Coords.NVecs() {
		return fmt.Errorf("goNCI/cube: %d atoms but %d coordinates", mol.Len(), mol.Coords.NVecs())
	}
	bw := bufio.NewWriter(w)
	o := G.Origin()
	h := G.Spacing()
	s := G.Shape()
	fmt.Fprintf(bw, "%s\n", title)
	fmt.Fprintf(bw, "%s %s\n", "goNCI", mol.Formula())
	fmt.Fprintf(bw, "%5d %12.6f %12.6f %12.6f\n", mol.Len(), o[0], o[1], o[2])
	fmt.Fprintf(bw, "%5d %12.6f %12.6f %12.6f\n", s[0], h[0], 0.0, 0.0)
	fmt.Fprintf(bw, "%5d %12.6f %12.6f %12.6f\n", s[1], 0.0, h[1], 0.0)
	fmt.Fprintf(bw, "%5d %12.6f %12.6f %12.6f\n", s[2], 0.0, 0.0, h[2])
	for i, a := range mol.Atoms {
		c := mol.Coords.Vec(i)
		fmt.Fprintf(bw, "%5d %12.6f %12.6f %12.6f %12.6f\n", a.Z, float64(a.Z), c[0]*nci.A2Bohr, c[1]*nci.A2Bohr, c[2]*nci.A2Bohr)
	}
	//Values are written in rows of at most 6, and each z column starts a new row.
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = Sentinel
		}
		fmt.Fprintf(bw, " %12.5E", v)
		if (i+1)%s[2] == 0 || ((i%s[2])+1)%6 == 0 {
			bw.WriteString("\n")
		}
	}
	return bw.Flush()
}

//compressor returns a WriteCloser that compresses what is written to it
//and sends it to w, depending on the compression format ("gz", "zst" or "" for none).
//Closing it doesn't close w.
func compressor(w io.Writer, format string) (io.WriteCloser, error) {
	switch format {
	case "gz":
		return gzip.NewWriter(w), nil
	case "zst":
		return zstd.NewWriter(w)
	case "":
		return nopCloser{w}, nil
	}
	return nil, fmt.Errorf("goNCI/cube: compression format %s not supported", format)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

//WriteFile writes a cube file with the given name. Names ending in .gz or .zst
//give gzip or zstd compressed files.
func WriteFile(name string, mol *nci.Molecule, G *grid.Cubic, values []float64, title string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	cw, err := compressor(f, nci.Compression(name))
	if err != nil {
		return err
	}
	if err = Write(cw, mol, G, values, title); err != nil {
		cw.Close()
		return err
	}
	return cw.Close()
}
