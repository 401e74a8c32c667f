/*
 * cube_test.go, part of goNCI.
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

package cube

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	nci "github.com/rmera/gonci"
	"github.com/rmera/gonci/grid"
)

func testSystem(Te *testing.T) (*nci.Molecule, *grid.Cubic, []float64) {
	mol, err := nci.XYZFileRead("../test/h2.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	G, err := grid.New(mol.BohrCoords(), grid.Uniform(0.5, 1))
	if err != nil {
		Te.Fatal(err)
	}
	values := make([]float64, G.Len())
	for i := range values {
		values[i] = float64(i) / 10
	}
	values[3] = math.Inf(1)
	values[4] = math.NaN()
	return mol, G, values
}

//parse reads a cube file, returning the number of atoms, the shape and the values.
func parse(Te *testing.T, r io.Reader) (int, [3]int, []float64) {
	sc := bufio.NewScanner(r)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	natoms, err := strconv.Atoi(strings.Fields(lines[2])[0])
	if err != nil {
		Te.Fatal(err)
	}
	var shape [3]int
	for k := 0; k < 3; k++ {
		shape[k], _ = strconv.Atoi(strings.Fields(lines[3+k])[0])
	}
	var values []float64
	for _, l := range lines[6+natoms:] {
		for _, f := range strings.Fields(l) {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				Te.Fatal(err)
			}
			values = append(values, v)
		}
	}
	return natoms, shape, values
}

func TestWrite(Te *testing.T) {
	mol, G, values := testSystem(Te)
	var buf bytes.Buffer
	if err := Write(&buf, mol, G, values, "test density"); err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "test density\n") {
		Te.Errorf("the title should be the first line")
	}
	natoms, shape, read := parse(Te, bytes.NewReader(buf.Bytes()))
	if natoms != 2 || shape != G.Shape() {
		Te.Errorf("wrong header: %d atoms, shape %v", natoms, shape)
	}
	if len(read) != G.Len() {
		Te.Fatalf("expected %d values, got %d", G.Len(), len(read))
	}
	if read[3] != Sentinel || read[4] != Sentinel {
		Te.Errorf("non-finite values should be written as %v, got %v %v", Sentinel, read[3], read[4])
	}
	if math.Abs(read[17]-1.7) > 1e-4 {
		Te.Errorf("wrong value %v", read[17])
	}
	if err := Write(&buf, mol, G, values[1:], ""); err == nil {
		Te.Errorf("a wrong number of values should give an error")
	}
}

func TestWriteFile(Te *testing.T) {
	mol, G, values := testSystem(Te)
	dir := Te.TempDir()
	for _, name := range []string{"h2.cube", "h2.cube.gz", "h2.cube.zst"} {
		fname := filepath.Join(dir, name)
		if err := WriteFile(fname, mol, G, values, name); err != nil {
			Te.Fatal(err)
		}
		f, err := os.Open(fname)
		if err != nil {
			Te.Fatal(err)
		}
		var r io.Reader = f
		switch nci.Compression(name) {
		case "gz":
			r, err = gzip.NewReader(f)
		case "zst":
			var d *zstd.Decoder
			d, err = zstd.NewReader(f)
			r = d
		}
		if err != nil {
			Te.Fatal(err)
		}
		_, _, read := parse(Te, r)
		f.Close()
		if len(read) != G.Len() {
			Te.Errorf("%s: expected %d values, got %d", name, G.Len(), len(read))
		}
	}
}
