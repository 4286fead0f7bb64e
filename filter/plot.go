/*
 * plot.go, part of designfilter.
 *
 * Copyright 2025 The designfilter authors
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
 */

package filter

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Histogram writes a histogram of the metric values of a batch to an image
//file (format by extension: .png, .svg, .pdf). Handy for picking a
//threshold before the actual filtering run.
func Histogram(values []float64, title, xlabel, file string) error {
	if len(values) == 0 {
		return fmt.Errorf("filter: no values to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "structures"
	h, err := plotter.NewHist(plotter.Values(values), 16)
	if err != nil {
		return err
	}
	p.Add(h)
	return p.Save(4*vg.Inch, 4*vg.Inch, file)
}
