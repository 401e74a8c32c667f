/*
 * dataset.go, part of goNCI.
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

package atomdb

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"sync"

	"github.com/BurntSushi/toml"
	nci "github.com/rmera/gonci"
)

//Fit is the spherical density of a free atom, as a sum of exponentials:
//rho(r) = sum_k C[k] exp(-r/Zeta[k]), with r in Bohr and rho in atomic units.
type Fit struct {
	C    []float64
	Zeta []float64
}

//Check returns an error if the fit is not usable.
func (F Fit) Check() error {
	if len(F.C) == 0 || len(F.C) != len(F.Zeta) {
		return fmt.Errorf("fit needs the same, non-zero, number of coefficients and exponents, got %d and %d", len(F.C), len(F.Zeta))
	}
	for i, z := range F.Zeta {
		if !(z > 0) || math.IsInf(z, 0) || math.IsNaN(F.C[i]) || math.IsInf(F.C[i], 0) {
			return fmt.Errorf("fit term %d has an invalid coefficient (%g) or exponent (%g)", i, F.C[i], z)
		}
	}
	return nil
}

//Density returns the density at a distance r from the nucleus.
func (F Fit) Density(r float64) float64 {
	ret := 0.0
	for k, c := range F.C {
		ret += c * math.Exp(-r/F.Zeta[k])
	}
	return ret
}

//Derivative returns the radial derivative of the density at a distance r from the nucleus.
func (F Fit) Derivative(r float64) float64 {
	ret := 0.0
	for k, c := range F.C {
		ret -= (c / F.Zeta[k]) * math.Exp(-r/F.Zeta[k])
	}
	return ret
}

//Electrons returns the integral of the density over all space.
func (F Fit) Electrons() float64 {
	ret := 0.0
	for k, c := range F.C {
		ret += 8 * math.Pi * c * F.Zeta[k] * F.Zeta[k] * F.Zeta[k]
	}
	return ret
}

//Dataset is a named set of free-atom densities, indexed by atomic number.
type Dataset struct {
	Name string
	Fits map[int]Fit
}

//Fit returns the fit for the element with atomic number z.
func (D *Dataset) Fit(z int) (Fit, error) {
	f, ok := D.Fits[z]
	if !ok {
		s, _ := nci.ZSymbol(z)
		return Fit{}, fmt.Errorf("goNCI/atomdb: dataset %s has no density for element %d (%s)", D.Name, z, s)
	}
	return f, nil
}

//Elements returns the atomic numbers present in the dataset, sorted.
func (D *Dataset) Elements() []int {
	ret := make([]int, 0, len(D.Fits))
	for z := range D.Fits {
		ret = append(ret, z)
	}
	sort.Ints(ret)
	return ret
}

//Check returns an error if the dataset is not usable.
func (D *Dataset) Check() error {
	if D.Name == "" {
		return fmt.Errorf("goNCI/atomdb: dataset without name")
	}
	if len(D.Fits) == 0 {
		return fmt.Errorf("goNCI/atomdb: dataset %s is empty", D.Name)
	}
	for _, z := range D.Elements() {
		if err := D.Fits[z].Check(); err != nil {
			return fmt.Errorf("goNCI/atomdb: dataset %s, element %d: %w", D.Name, z, err)
		}
	}
	return nil
}

var (
	registryMu sync.RWMutex
	registry   = map[string]*Dataset{}
)

//Register adds a dataset, so it can be used by name. A dataset with
//the same name is replaced.
func Register(D *Dataset) error {
	if err := D.Check(); err != nil {
		return err
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[D.Name]; ok {
		nci.Log.WithField("dataset", D.Name).Warn("replacing registered atomic density dataset")
	}
	registry[D.Name] = D
	return nil
}

//Lookup returns the registered dataset with the given name.
func Lookup(name string) (*Dataset, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	D, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("goNCI/atomdb: unknown dataset %q", name)
	}
	return D, nil
}

//Names returns the names of the registered datasets, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ret := make([]string, 0, len(registry))
	for k := range registry {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

//The TOML representation of a dataset:
//
//	name = "mine"
//	[[atom]]
//	symbol = "H" # or z = 1
//	c = [0.2815]
//	zeta = [0.5288]
type tomlDataset struct {
	Name  string     `toml:"name"`
	Atoms []tomlAtom `toml:"atom"`
}

type tomlAtom struct {
	Z      int       `toml:"z"`
	Symbol string    `toml:"symbol"`
	C      []float64 `toml:"c"`
	Zeta   []float64 `toml:"zeta"`
}

//DecodeTOML reads a dataset in TOML format from r. The dataset is checked but not registered.
func DecodeTOML(r io.Reader) (*Dataset, error) {
	var t tomlDataset
	if _, err := toml.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("goNCI/atomdb: can't decode dataset: %w", err)
	}
	D := &Dataset{Name: t.Name, Fits: make(map[int]Fit, len(t.Atoms))}
	for i, a := range t.Atoms {
		z := a.Z
		if a.Symbol != "" {
			zs, err := nci.SymbolZ(a.Symbol)
			if err != nil {
				return nil, fmt.Errorf("goNCI/atomdb: atom %d: %w", i, err)
			}
			if z != 0 && z != zs {
				return nil, fmt.Errorf("goNCI/atomdb: atom %d: symbol %s doesn't match z=%d", i, a.Symbol, z)
			}
			z = zs
		}
		if z <= 0 {
			return nil, fmt.Errorf("goNCI/atomdb: atom %d has no element", i)
		}
		if _, ok := D.Fits[z]; ok {
			return nil, fmt.Errorf("goNCI/atomdb: element %d given twice", z)
		}
		D.Fits[z] = Fit{C: a.C, Zeta: a.Zeta}
	}
	if err := D.Check(); err != nil {
		return nil, err
	}
	return D, nil
}

//LoadTOML reads a dataset from the TOML file name, and registers it.
func LoadTOML(name string) (*Dataset, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	D, err := DecodeTOML(f)
	if err != nil {
		return nil, err
	}
	if err := Register(D); err != nil {
		return nil, err
	}
	return D, nil
}

//EncodeTOML writes the dataset D to w, in the format read by DecodeTOML.
func EncodeTOML(w io.Writer, D *Dataset) error {
	t := tomlDataset{Name: D.Name}
	for _, z := range D.Elements() {
		s, _ := nci.ZSymbol(z)
		f := D.Fits[z]
		t.Atoms = append(t.Atoms, tomlAtom{Z: z, Symbol: s, C: f.C, Zeta: f.Zeta})
	}
	return toml.NewEncoder(w).Encode(t)
}
