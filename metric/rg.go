/*
 * rg.go, part of designfilter.
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

//Gyradius returns the mass-weighted radius of gyration of the molecule, in
//ångströms. Atoms with unknown mass get the carbon mass, so that an
//exotic element doesn't silently vanish from the sum.
func Gyradius(mol *chem.Molecule) (float64, error) {
	if mol.Len() == 0 {
		return 0, &StructureError{Reason: "empty molecule"}
	}
	var com [3]float64
	var mtot float64
	masses := make([]float64, mol.Len())
	for i := 0; i < mol.Len(); i++ {
		m := mol.Atom(i).Mass
		if m == 0 {
			m = chem.MassOf("C")
		}
		masses[i] = m
		mtot += m
		c := mol.Coord(i)
		com[0] += m * c[0]
		com[1] += m * c[1]
		com[2] += m * c[2]
	}
	com[0] /= mtot
	com[1] /= mtot
	com[2] /= mtot
	var sum float64
	for i := 0; i < mol.Len(); i++ {
		c := mol.Coord(i)
		dx := c[0] - com[0]
		dy := c[1] - com[1]
		dz := c[2] - com[2]
		sum += masses[i] * (dx*dx + dy*dy + dz*dz)
	}
	return math.Sqrt(sum / mtot), nil
}
