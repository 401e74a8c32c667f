/*
 * config.go, part of goNCI.
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

package analysis

import (
	"fmt"
	"runtime"

	"github.com/rmera/gonci/grid"
	"github.com/rmera/gonci/rdg"
)

//Config holds all the parameters of an RDG calculation.
//Lengths are in Bohr, densities in atomic units.
type Config struct {
	XYZ       string  `toml:"xyz" mapstructure:"xyz"`             //structure file
	Dataset   string  `toml:"dataset" mapstructure:"dataset"`     //name of the atomic density dataset. If empty, the one in DataFile, or the built-in one.
	DataFile  string  `toml:"datafile" mapstructure:"datafile"`   //optional TOML file with a dataset to load before the calculation
	Spacing   float64 `toml:"spacing" mapstructure:"spacing"`     //grid spacing
	Extension float64 `toml:"extension" mapstructure:"extension"` //grid extension around the molecule
	Cutoff    float64 `toml:"cutoff" mapstructure:"cutoff"`       //atomic density cutoff radius, 0 for none
	Policy    string  `toml:"policy" mapstructure:"policy"`       //"strict" or "ieee"
	Cpus      int     `toml:"cpus" mapstructure:"cpus"`
	RhoCut    float64 `toml:"rhocut" mapstructure:"rhocut"` //density cutoff for NCI points
	SCut      float64 `toml:"scut" mapstructure:"scut"`     //reduced gradient cutoff for NCI points
	Plot      string  `toml:"plot" mapstructure:"plot"`     //scatter plot file, empty for none
	Cube      string  `toml:"cube" mapstructure:"cube"`     //prefix for cube files, empty for none
	CubeExt   string  `toml:"cubeext" mapstructure:"cubeext"`
	Bins      int     `toml:"bins" mapstructure:"bins"` //histogram bins over s in [0,SCut]
}

//DefaultConfig returns a Config with default values, and no structure file.
func DefaultConfig() *Config {
	g := grid.DefaultOptions()
	return &Config{
		Spacing:   g.Spacing[0],
		Extension: g.Extension,
		Policy:    rdg.IEEE.String(),
		Cpus:      runtime.NumCPU(),
		RhoCut:    rdg.DefaultRhoCut,
		SCut:      rdg.DefaultSCut,
		CubeExt:   ".cube",
		Bins:      20,
	}
}

//Validate returns an error if the configuration can't be used for a calculation.
func (C *Config) Validate() error {
	if C.XYZ == "" {
		return fmt.Errorf("goNCI/analysis: no structure file given")
	}
	if !(C.Spacing > 0) {
		return fmt.Errorf("goNCI/analysis: grid spacing must be positive, got %g", C.Spacing)
	}
	if !(C.Extension >= 0) {
		return fmt.Errorf("goNCI/analysis: grid extension can't be negative, got %g", C.Extension)
	}
	if C.Cutoff < 0 {
		return fmt.Errorf("goNCI/analysis: density cutoff can't be negative, got %g", C.Cutoff)
	}
	if _, err := rdg.ParsePolicy(C.Policy); err != nil {
		return err
	}
	if !(C.RhoCut > 0) || !(C.SCut > 0) {
		return fmt.Errorf("goNCI/analysis: NCI cutoffs must be positive, got rho: %g s: %g", C.RhoCut, C.SCut)
	}
	if C.Bins < 0 {
		return fmt.Errorf("goNCI/analysis: number of histogram bins can't be negative")
	}
	return nil
}
