/*
 * nciplot.go, part of goNCI.
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

//Package nciplot draws the density vs. reduced density gradient scatter plots
//used to find non-covalent interactions.
package nciplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//Options for the scatter plots
type Options struct {
	Title      string
	XMin, XMax float64 //density limits, in a.u.
	YMin, YMax float64 //reduced gradient limits
	Highlight  []int   //indexes of points drawn in color, over the rest.
	Radius     vg.Length
	Grid       bool
}

//DefaultOptions returns the default options for the plots.
func DefaultOptions() *Options {
	return &Options{Title: "Reduced density gradient", XMin: 0, XMax: 0.2, YMin: 0, YMax: 2, Radius: vg.Points(1), Grid: true}
}

func basicPlot(o *Options) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = o.Title
	p.X.Label.Text = "ρ (a.u.)"
	p.Y.Label.Text = "s"
	//Constant axes
	p.X.Min = o.XMin
	p.X.Max = o.XMax
	p.Y.Min = o.YMin
	p.Y.Max = o.YMax
	if o.Grid {
		p.Add(plotter.NewGrid())
	}
	return p
}

//inRange returns the points with finite values within the limits of the plot.
func inRange(rho, s []float64, idx []int, o *Options) (plotter.XYs, []float64) {
	pts := make(plotter.XYs, 0, len(idx))
	dens := make([]float64, 0, len(idx))
	for _, i := range idx {
		x, y := rho[i], s[i]
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			continue
		}
		if x < o.XMin || x > o.XMax || y < o.YMin || y > o.YMax {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
		dens = append(dens, x)
	}
	return pts, dens
}

//Scatter returns a plot of the reduced gradient s vs the density rho. Points out of the
//limits given in the options, or with non-finite values, are not drawn.
//Points in o.Highlight are colored according to their density.
func Scatter(rho, s []float64, o *Options) (*plot.Plot, error) {
	if len(rho) != len(s) {
		return nil, fmt.Errorf("goNCI/nciplot: %d densities but %d reduced gradients", len(rho), len(s))
	}
	if o == nil {
		o = DefaultOptions()
	}
	if !(o.XMax > o.XMin) || !(o.YMax > o.YMin) {
		return nil, fmt.Errorf("goNCI/nciplot: invalid limits x: %g-%g y: %g-%g", o.XMin, o.XMax, o.YMin, o.YMax)
	}
	for _, i := range o.Highlight {
		if i < 0 || i >= len(rho) {
			return nil, fmt.Errorf("goNCI/nciplot: highlighted point %d out of range", i)
		}
	}
	p := basicPlot(o)
	all := make([]int, len(rho))
	for i := range all {
		all[i] = i
	}
	pts, _ := inRange(rho, s, all, o)
	if len(pts) > 0 {
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = color.Gray{Y: 150}
		sc.GlyphStyle.Radius = o.Radius
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
	}
	hpts, hdens := inRange(rho, s, o.Highlight, o)
	if len(hpts) > 0 {
		sc, err := plotter.NewScatter(hpts)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			r, g, b := colors(hdens[i], o.XMin, o.XMax)
			return draw.GlyphStyle{Color: color.RGBA{R: r, G: g, B: b, A: 255}, Radius: o.Radius, Shape: draw.CircleGlyph{}}
		}
		p.Add(sc)
	}
	return p, nil
}

//Save saves the plot to filename. The format is given by the extension
//(png, svg, pdf, eps, jpg or tif).
func Save(p *plot.Plot, filename string, width, height vg.Length) error {
	return p.Save(width, height, filename)
}

//ScatterFile draws the scatter plot of s vs rho and saves it in filename, with a 5x5 inch size.
func ScatterFile(rho, s []float64, filename string, o *Options) error {
	p, err := Scatter(rho, s, o)
	if err != nil {
		return err
	}
	return Save(p, filename, 5*vg.Inch, 5*vg.Inch)
}
