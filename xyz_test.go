/*
 * xyz_test.go, part of goNCI.
 *
 *
 * Copyright 2013 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

func TestXYZIO(Te *testing.T) {
	mol, err := XYZFileRead("test/water_dimer.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("XYZ read!", mol.Formula(), mol.Comment)
	if mol.Len() != 6 || mol.Coords.NVecs() != 6 {
		Te.Fatalf("expected 6 atoms, got %d", mol.Len())
	}
	if mol.Formula() != "O2H4" {
		Te.Errorf("unexpected formula %s", mol.Formula())
	}
	z := mol.AtomicNumbers()
	if z[0] != 8 || z[1] != 1 {
		Te.Errorf("wrong atomic numbers %v", z)
	}
	if c := mol.Coords.Vec(4); c[2] != -0.758561 {
		Te.Errorf("wrong coordinates for atom 5: %v", c)
	}
	if b := mol.BohrCoords().At(4, 2); b != -0.758561*A2Bohr || math.Abs(b*Bohr2A+0.758561) > 1e-15 {
		Te.Errorf("wrong conversion to Bohr: %v", b)
	}
	var buf bytes.Buffer
	if err := XYZWrite(&buf, mol); err != nil {
		Te.Fatal(err)
	}
	mol2, err := XYZRead(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if mol2.Len() != mol.Len() || mol2.Coords.At(5, 1) != mol.Coords.At(5, 1) {
		Te.Errorf("written and read molecules differ")
	}
}

func TestXYZCompressed(Te *testing.T) {
	data, err := os.ReadFile("test/h2.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	gzname := filepath.Join(dir, "h2.xyz.gz")
	var gzbuf bytes.Buffer
	gw := gzip.NewWriter(&gzbuf)
	gw.Write(data)
	gw.Close()
	if err := os.WriteFile(gzname, gzbuf.Bytes(), 0644); err != nil {
		Te.Fatal(err)
	}
	zname := filepath.Join(dir, "h2.xyz.zst")
	var zbuf bytes.Buffer
	zw, err := zstd.NewWriter(&zbuf)
	if err != nil {
		Te.Fatal(err)
	}
	zw.Write(data)
	zw.Close()
	if err := os.WriteFile(zname, zbuf.Bytes(), 0644); err != nil {
		Te.Fatal(err)
	}
	for _, name := range []string{gzname, zname} {
		mol, err := XYZFileRead(name)
		if err != nil {
			Te.Fatal(err)
		}
		if mol.Len() != 2 || mol.Coords.At(1, 2) != 0.74 {
			Te.Errorf("wrong molecule read from %s", name)
		}
	}
}

func TestXYZErrors(Te *testing.T) {
	bad := map[string]string{
		"no natoms":      "H2O\n",
		"short file":     "3\ncomment\nO 0 0 0\nH 1 0 0\n",
		"short line":     "1\n\nH 0 0\n",
		"bad float":      "1\n\nH 0 zero 0\n",
		"unknown symbol": "1\n\nXx 0 0 0\n",
		"empty":          "",
		"nan coordinate": "1\n\nH NaN 0 0\n",
		"inf coordinate": "2\n\nH 0 0 0\nH 0 -Inf 0\n",
	}
	for name, content := range bad {
		_, err := XYZRead(strings.NewReader(content))
		if err == nil {
			Te.Errorf("%s: expected an error", name)
			continue
		}
		var e *CError
		if !errors.As(err, &e) {
			Te.Errorf("%s: error should be a *nci.CError, got %T", name, err)
		}
		fmt.Println(name, err, e.Decorate(""))
	}
	_, err := XYZFileRead("test/does_not_exist.xyz")
	var fe FileError
	if !errors.As(err, &fe) || fe.FileName() != "test/does_not_exist.xyz" || fe.Format() != "xyz" {
		Te.Errorf("expected a file error for a missing file, got %v", err)
	}
	if e := NewError("some problem", "", "TestXYZErrors"); e.Format() != "" || len(e.Decorate("")) != 1 {
		Te.Errorf("an error without a file should have no format")
	}
}

func TestXYZLabels(Te *testing.T) {
	mol, err := XYZRead(strings.NewReader("3\n\n8 0 0 0\nCL1 1 0 0\nh 0 1 0\n"))
	if err != nil {
		Te.Fatal(err)
	}
	want := []string{"O", "Cl", "H"}
	for i, a := range mol.Atoms {
		if a.Symbol != want[i] {
			Te.Errorf("atom %d: expected %s got %s", i, want[i], a.Symbol)
		}
	}
	if _, err := ZSymbol(0); err == nil {
		Te.Errorf("Z=0 should not have a symbol")
	}
}
