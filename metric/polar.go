/*
 * polar.go, part of designfilter.
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
	"fmt"
	"math"
	"sort"

	"github.com/foldlab/designfilter/chem"
	"gonum.org/v1/gonum/mat"
)

//Constants of the surface polarity model. m is the midpoint of the
//logistic distance decay, a and b shape the angular weight.
const (
	polarDistMidpoint = 1.0
	polarAngleShift   = 0.5
	polarAngleExp     = 2.0
)

//backbone extracts, per residue, the carbonyl-carbon position, the
//carbon-alpha position and the polarity class. Residues missing either
//backbone atom make the structure unusable: positions index the same
//residue ordering everywhere downstream, so a partial residue would shift
//the classification vector against the coordinate sets.
func backbone(mol *chem.Molecule) (cpos, capos *mat.Dense, class []chem.PolarityClass, err error) {
	residues := mol.Residues()
	if len(residues) == 0 {
		return nil, nil, nil, &StructureError{Reason: "no protein residues"}
	}
	n := len(residues)
	cpos = mat.NewDense(n, 3, nil)
	capos = mat.NewDense(n, 3, nil)
	class = make([]chem.PolarityClass, n)
	for i, res := range residues {
		ci := res.AtomByName(mol, "C")
		cai := res.AtomByName(mol, "CA")
		if ci < 0 || cai < 0 {
			reason := fmt.Sprintf("residue %s%d (chain %s) lacks backbone C/CA", res.Name, res.ID, res.Chain)
			return nil, nil, nil, &StructureError{Reason: reason}
		}
		cpos.SetRow(i, mol.Coord(ci))
		capos.SetRow(i, mol.Coord(cai))
		class[i] = chem.Polarity(res.Name)
	}
	return cpos, capos, class, nil
}

//distanceMatrix returns the symmetric matrix of pairwise euclidean
//distances between the rows of pos.
func distanceMatrix(pos *mat.Dense) *mat.Dense {
	n, _ := pos.Dims()
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		ri := pos.RawRowView(i)
		for j := i + 1; j < n; j++ {
			rj := pos.RawRowView(j)
			dx := ri[0] - rj[0]
			dy := ri[1] - rj[1]
			dz := ri[2] - rj[2]
			dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
			d.Set(i, j, dist)
			d.Set(j, i, dist)
		}
	}
	return d
}

//angleMatrix returns the matrix of angles between the per-residue
//CA->C direction vectors. The dot products of the normalized directions
//are clamped to [-1,1] before the arccos, to guard against floating-point
//overshoot.
func angleMatrix(cpos, capos *mat.Dense) (*mat.Dense, error) {
	n, _ := cpos.Dims()
	dir := mat.NewDense(n, 3, nil)
	for i := 0; i < n; i++ {
		c := cpos.RawRowView(i)
		ca := capos.RawRowView(i)
		vx, vy, vz := c[0]-ca[0], c[1]-ca[1], c[2]-ca[2]
		norm := math.Sqrt(vx*vx + vy*vy + vz*vz)
		if norm == 0 {
			return nil, &StructureError{Reason: fmt.Sprintf("residue %d: CA and C coincide", i+1)}
		}
		dir.SetRow(i, []float64{vx / norm, vy / norm, vz / norm})
	}
	var cosines mat.Dense
	cosines.Mul(dir, dir.T())
	phi := mat.NewDense(n, n, nil)
	phi.Apply(func(_, _ int, v float64) float64 {
		return math.Acos(math.Max(-1, math.Min(1, v)))
	}, &cosines)
	return phi, nil
}

//neighborWeights combines the logistic distance weight
//1/(1+exp(D-m)) with the angular weight ((cos(pi-phi)+a)/(1+a))^b and
//zeroes the diagonal: a residue is never its own neighbor.
func neighborWeights(dist, phi *mat.Dense) *mat.Dense {
	n, _ := dist.Dims()
	w := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			wd := 1 / (1 + math.Exp(dist.At(i, j)-polarDistMidpoint))
			wa := math.Pow((math.Cos(math.Pi-phi.At(i, j))+polarAngleShift)/(1+polarAngleShift), polarAngleExp)
			w.Set(i, j, wd*wa)
		}
	}
	return w
}

//lowerMedian returns the lower median of vals: for odd lengths the middle
//element, for even lengths the lower of the two middle elements. This is
//the same convention the numerical backends the model was calibrated with
//use, so it is kept rather than averaging.
func lowerMedian(vals []float64) float64 {
	s := append([]float64(nil), vals...)
	sort.Float64s(s)
	return s[(len(s)-1)/2]
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

//SurfacePolarity estimates the fraction of the solvent-exposed surface of
//a design attributable to non-polar residues, in [0,1]. Exposure is
//inferred geometrically: residues whose neighbor density (distance- and
//orientation-weighted) falls below the median are treated as
//surface-exposed. Low scores mean a mostly polar surface.
//
//Fails with StructureError if any residue lacks its backbone carbonyl
//carbon or carbon alpha, and with DegenerateInputError for structures of
//fewer than two residues or with a vanishing exposure denominator.
func SurfacePolarity(mol *chem.Molecule) (float64, error) {
	cpos, capos, class, err := backbone(mol)
	if err != nil {
		return 0, err
	}
	n, _ := cpos.Dims()
	if n < 2 {
		return 0, &DegenerateInputError{Reason: "surface polarity needs at least two residues"}
	}
	phi, err := angleMatrix(cpos, capos)
	if err != nil {
		return 0, err
	}
	w := neighborWeights(distanceMatrix(cpos), phi)
	density := make([]float64, n)
	for i := 0; i < n; i++ {
		density[i] = mat.Sum(w.RowView(i))
	}
	median := lowerMedian(density)
	var num, den float64
	for i := 0; i < n; i++ {
		exposure := 1 - sigmoid(density[i]-median)
		if class[i] == chem.NonPolar {
			num += exposure
		}
		den += exposure
	}
	if den == 0 {
		return 0, &DegenerateInputError{Reason: "zero exposure weight over all residues"}
	}
	return num / den, nil
}
