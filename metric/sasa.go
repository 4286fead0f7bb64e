/*
 * sasa.go, part of designfilter.
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

package metric

import (
	"math"

	"github.com/foldlab/designfilter/chem"
)

//SASAOptions holds the parameters of the Shrake-Rupley calculation.
type SASAOptions struct {
	probe  float64
	points int
}

//DefaultSASAOptions returns the usual water-probe setup: 1.4 Å probe
//radius and 960 test points per atom.
func DefaultSASAOptions() *SASAOptions {
	return &SASAOptions{probe: 1.4, points: 960}
}

//Probe returns the probe radius and sets it, if a valid value is given.
func (o *SASAOptions) Probe(probe ...float64) float64 {
	ret := o.probe
	if len(probe) > 0 && probe[0] > 0 {
		o.probe = probe[0]
	}
	return ret
}

//Points returns the number of sphere test points per atom and sets it, if
//a valid value is given.
func (o *SASAOptions) Points(points ...int) int {
	ret := o.points
	if len(points) > 0 && points[0] > 0 {
		o.points = points[0]
	}
	return ret
}

//spherePoints returns n points approximately evenly spread on the unit
//sphere, using the golden-section spiral.
func spherePoints(n int) [][3]float64 {
	pts := make([][3]float64, n)
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := 0; i < n; i++ {
		y := 1 - 2*(float64(i)+0.5)/float64(n)
		r := math.Sqrt(1 - y*y)
		theta := golden * float64(i)
		pts[i] = [3]float64{r * math.Cos(theta), y, r * math.Sin(theta)}
	}
	return pts
}

//SASA returns the Shrake-Rupley solvent-accessible surface area of the
//molecule, in Å². Each atom is inflated by the probe radius and sampled
//with a fixed set of sphere points; points inside any neighboring inflated
//sphere are inaccessible. The per-atom accessible fraction times the
//inflated sphere area is summed over all atoms.
func SASA(mol *chem.Molecule, options ...*SASAOptions) (float64, error) {
	if mol.Len() == 0 {
		return 0, &StructureError{Reason: "empty molecule"}
	}
	var o *SASAOptions
	if len(options) > 0 {
		o = options[0]
	} else {
		o = DefaultSASAOptions()
	}
	n := mol.Len()
	radii := make([]float64, n)
	for i := 0; i < n; i++ {
		radii[i] = chem.VdwRadius(mol.Atom(i).Symbol) + o.probe
	}
	pts := spherePoints(o.points)
	var total float64
	neighbors := make([]int, 0, 64)
	for i := 0; i < n; i++ {
		ci := mol.Coord(i)
		ri := radii[i]
		//collect the atoms whose inflated spheres can occlude atom i
		neighbors = neighbors[:0]
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			cj := mol.Coord(j)
			dx, dy, dz := ci[0]-cj[0], ci[1]-cj[1], ci[2]-cj[2]
			cut := ri + radii[j]
			if dx*dx+dy*dy+dz*dz < cut*cut {
				neighbors = append(neighbors, j)
			}
		}
		accessible := 0
	points:
		for _, p := range pts {
			x := ci[0] + ri*p[0]
			y := ci[1] + ri*p[1]
			z := ci[2] + ri*p[2]
			for _, j := range neighbors {
				cj := mol.Coord(j)
				dx, dy, dz := x-cj[0], y-cj[1], z-cj[2]
				if dx*dx+dy*dy+dz*dz < radii[j]*radii[j] {
					continue points
				}
			}
			accessible++
		}
		total += 4 * math.Pi * ri * ri * float64(accessible) / float64(o.points)
	}
	return total, nil
}
