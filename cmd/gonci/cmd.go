/*
 * cmd.go, part of goNCI.
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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	nci "github.com/rmera/gonci"
	"github.com/rmera/gonci/analysis"
	"github.com/rmera/gonci/atomdb"
)

//Cfg holds the configuration, from flags, environment variables (GONCI_xxx) and
//the configuration file, in that order of precedence.
var Cfg *viper.Viper

type option struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

var options []option

func init() {
	d := analysis.DefaultConfig()
	options = []option{
		{
			name: "config",
			usage: `
              config is the location of a TOML configuration file.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "verbose",
			usage: `
              verbose prints the timing of each stage of the calculation.`,
			shorthand:  "v",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "datafile",
			usage: `
              datafile is a TOML file with an atomic density dataset, which
              is loaded before the calculation.`,
			defaultVal: d.DataFile,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), datasetsCmd.Flags()},
		},
		{
			name: "xyz",
			usage: `
              xyz is the structure file, in XYZ format, Angstrom. It can be
              compressed with gzip or zstd.`,
			shorthand:  "x",
			defaultVal: d.XYZ,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "dataset",
			usage: `
              dataset is the name of the atomic density dataset used to build
              the promolecular density. If empty, the dataset in datafile is
              used or, without datafile, the built-in "nciplot" dataset.`,
			shorthand:  "d",
			defaultVal: d.Dataset,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "spacing",
			usage: `
              spacing is the grid spacing, in Bohr.`,
			defaultVal: d.Spacing,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "extension",
			usage: `
              extension is how far the grid extends beyond the molecule in
              each direction, in Bohr.`,
			defaultVal: d.Extension,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "cutoff",
			usage: `
              cutoff is the distance from an atom, in Bohr, beyond which its
              density is ignored. 0 means no cutoff.`,
			defaultVal: d.Cutoff,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "policy",
			usage: `
              policy is the treatment of points with zero or invalid density:
              "strict" stops the calculation, "ieee" gives Inf or NaN for them.`,
			defaultVal: d.Policy,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "cpus",
			usage: `
              cpus is the number of goroutines used in the calculation.`,
			defaultVal: d.Cpus,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "rhocut",
			usage: `
              rhocut is the largest density, in atomic units, for a point to
              be considered a non-covalent interaction.`,
			defaultVal: d.RhoCut,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "scut",
			usage: `
              scut is the largest reduced gradient for a point to be
              considered a non-covalent interaction.`,
			defaultVal: d.SCut,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "bins",
			usage: `
              bins is the number of bins in the histogram of the reduced
              gradient between 0 and scut. 0 means no histogram.`,
			defaultVal: d.Bins,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "plot",
			usage: `
              plot is the file where the density vs. reduced gradient plot
              is saved. The format is given by the extension (png, svg, pdf...).
              Empty means no plot.`,
			shorthand:  "p",
			defaultVal: d.Plot,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "cube",
			usage: `
              cube is the prefix for the cube files with the density and the
              reduced gradient. Empty means no cube files.`,
			shorthand:  "c",
			defaultVal: d.Cube,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "cubeext",
			usage: `
              cubeext is the extension of the cube files. ".cube.gz" and
              ".cube.zst" give compressed files.`,
			defaultVal: d.CubeExt,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
	}

	Cfg = newViper()
	for _, o := range options {
		for i, set := range o.flagsets {
			if i != 0 {
				set.AddFlag(o.flagsets[0].Lookup(o.name))
				continue
			}
			switch v := o.defaultVal.(type) {
			case string:
				set.StringP(o.name, o.shorthand, v, o.usage)
			case bool:
				set.BoolP(o.name, o.shorthand, v, o.usage)
			case int:
				set.IntP(o.name, o.shorthand, v, o.usage)
			case float64:
				set.Float64P(o.name, o.shorthand, v, o.usage)
			default:
				panic("invalid option type")
			}
			Cfg.BindPFlag(o.name, set.Lookup(o.name))
		}
	}

	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(datasetsCmd)
}

//newViper returns a viper instance that reads GONCI_xxx environment
//variables and has the defaults of all the options.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("GONCI")
	v.AutomaticEnv()
	v.SetConfigType("toml")
	for _, o := range options {
		v.SetDefault(o.name, o.defaultVal)
	}
	return v
}

//setConfig reads the configuration file, if one was given.
func setConfig(v *viper.Viper) error {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("gonci: problem reading configuration file: %w", err)
		}
	}
	if v.GetBool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return nil
}

//readConfig builds the calculation parameters from v.
func readConfig(v *viper.Viper) (*analysis.Config, error) {
	C := analysis.DefaultConfig()
	if err := v.Unmarshal(C); err != nil {
		return nil, fmt.Errorf("gonci: invalid configuration: %w", err)
	}
	C.Policy = strings.ToLower(C.Policy)
	return C, C.Validate()
}

//Root is the main command.
var Root = &cobra.Command{
	Use:   "gonci",
	Short: "Reduced density gradient from promolecular densities.",
	Long: `gonci computes the reduced density gradient (RDG) of a molecule on a
grid, using a promolecular density built from fitted atomic densities, and
reports the low-density, low-gradient regions that signal non-covalent
interactions.

Configuration can be given in a TOML file (--config), with command-line
flags, or with environment variables in the format 'GONCI_var', where
'var' is the name of the option.`,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig(Cfg) },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("goNCI v%s\n", nci.Version)
	},
	DisableAutoGenTag: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an RDG calculation.",
	Long: `run reads a structure, evaluates the promolecular density, its gradient and
the reduced density gradient on a grid around it, and prints a summary.
Optionally, it saves a density vs. RDG plot and cube files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		C, err := readConfig(Cfg)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		R, err := analysis.Run(ctx, C)
		if err != nil {
			return err
		}
		report(cmd, R)
		return nil
	},
	DisableAutoGenTag: true,
}

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List the atomic density datasets.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if f := Cfg.GetString("datafile"); f != "" {
			if _, err := atomdb.LoadTOML(f); err != nil {
				return err
			}
		}
		for _, name := range atomdb.Names() {
			D, err := atomdb.Lookup(name)
			if err != nil {
				return err
			}
			el := D.Elements()
			symbols := make([]string, 0, len(el))
			for _, z := range el {
				s, err := nci.ZSymbol(z)
				if err != nil {
					s = fmt.Sprint(z)
				}
				symbols = append(symbols, s)
			}
			cmd.Printf("%-12s %d elements: %s\n", name, len(el), strings.Join(symbols, " "))
		}
		return nil
	},
	DisableAutoGenTag: true,
}

//report prints the results of a calculation.
func report(cmd *cobra.Command, R *analysis.Result) {
	cmd.Printf("%s, %d atoms, %v electrons (%.4f on the grid)\n", R.Molecule.Formula(), R.Molecule.Len(), R.Promolecule.Electrons(), R.Integrated)
	cmd.Println(R.Grid)
	cmd.Println(R.Summary)
	cmd.Printf("NCI points: %d\n", len(R.Selected))
	if H := R.Histogram; H != nil {
		for i, c := range H.Counts {
			cmd.Printf("%6.3f-%6.3f %8.0f\n", H.Dividers[i], H.Dividers[i+1], c)
		}
	}
	for _, f := range R.Files {
		cmd.Printf("wrote %s\n", f)
	}
}
