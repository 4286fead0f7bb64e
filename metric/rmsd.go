/*
 * rmsd.go, part of designfilter.
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
	"gonum.org/v1/gonum/mat"
)

//centroid returns the unweighted centroid of the rows of m.
func centroid(m *mat.Dense) [3]float64 {
	n, _ := m.Dims()
	var c [3]float64
	for i := 0; i < n; i++ {
		r := m.RawRowView(i)
		c[0] += r[0]
		c[1] += r[1]
		c[2] += r[2]
	}
	c[0] /= float64(n)
	c[1] /= float64(n)
	c[2] /= float64(n)
	return c
}

func centered(m *mat.Dense) *mat.Dense {
	n, _ := m.Dims()
	c := centroid(m)
	out := mat.NewDense(n, 3, nil)
	for i := 0; i < n; i++ {
		r := m.RawRowView(i)
		out.SetRow(i, []float64{r[0] - c[0], r[1] - c[1], r[2] - c[2]})
	}
	return out
}

//Super superimposes the coordinate set test onto templa with the Kabsch
//algorithm and returns the transformed copy of test. Both are Nx3 matrices
//of row vectors with matching row counts. The rotation comes from the SVD
//of the cross-covariance matrix, with the usual sign correction so that an
//improper rotation (a reflection) is never applied.
func Super(test, templa *mat.Dense) (*mat.Dense, error) {
	tr, tc := test.Dims()
	mr, mc := templa.Dims()
	if tc != 3 || mc != 3 {
		return nil, &StructureError{Reason: "coordinate sets must have 3 columns"}
	}
	if tr != mr {
		return nil, &StructureError{Reason: "mismatched atom counts for superposition"}
	}
	if tr == 0 {
		return nil, &StructureError{Reason: "empty coordinate set"}
	}
	p := centered(test)
	q := centered(templa)
	//cross-covariance C = P^T Q (3x3)
	var c mat.Dense
	c.Mul(p.T(), q)
	var svd mat.SVD
	if ok := svd.Factorize(&c, mat.SVDFull); !ok {
		return nil, &StructureError{Reason: "SVD of the cross-covariance matrix failed"}
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	d := 1.0
	if mat.Det(&u)*mat.Det(&v) < 0 {
		d = -1.0
	}
	//R = U diag(1,1,d) V^T, for row-vector coordinates
	diag := mat.NewDiagDense(3, []float64{1, 1, d})
	var rot, tmp mat.Dense
	tmp.Mul(&u, diag)
	rot.Mul(&tmp, v.T())
	var rotated mat.Dense
	rotated.Mul(p, &rot)
	//put the rotated copy back at the template's centroid
	qc := centroid(templa)
	out := mat.NewDense(tr, 3, nil)
	for i := 0; i < tr; i++ {
		r := rotated.RawRowView(i)
		out.SetRow(i, []float64{r[0] + qc[0], r[1] + qc[1], r[2] + qc[2]})
	}
	return out, nil
}

//RMSD returns the root mean square deviation between two Nx3 coordinate
//sets, with no superposition applied.
func RMSD(test, templa *mat.Dense) (float64, error) {
	tr, tc := test.Dims()
	mr, mc := templa.Dims()
	if tr != mr || tc != 3 || mc != 3 {
		return 0, &StructureError{Reason: "ill formed matrices for RMSD calculation"}
	}
	if tr == 0 {
		return 0, &StructureError{Reason: "empty coordinate set"}
	}
	var sum float64
	for i := 0; i < tr; i++ {
		a := test.RawRowView(i)
		b := templa.RawRowView(i)
		dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
		sum += dx*dx + dy*dy + dz*dz
	}
	return math.Sqrt(sum / float64(tr)), nil
}

//SuperRMSD superimposes test onto templa and returns the resulting RMSD.
func SuperRMSD(test, templa *mat.Dense) (float64, error) {
	s, err := Super(test, templa)
	if err != nil {
		return 0, err
	}
	return RMSD(s, templa)
}

//GlobalRMSD returns the RMSD between a design and a reference over their
//carbon-alpha traces, after optimal superposition. The two structures must
//have the same number of CA atoms.
func GlobalRMSD(mol, ref *chem.Molecule) (float64, error) {
	sel := &chem.Selection{Names: []string{"CA"}}
	return SelectionRMSD(mol, ref, sel)
}

//SelectionRMSD returns the optimal-superposition RMSD between the atoms of
//mol and ref matched by the selection. Used directly for the local RMSD
//filter, where the caller restricts the comparison to a region of interest.
func SelectionRMSD(mol, ref *chem.Molecule, sel *chem.Selection) (float64, error) {
	il := sel.Indexes(mol)
	jl := sel.Indexes(ref)
	if len(il) == 0 || len(jl) == 0 {
		return 0, &StructureError{Reason: "selection matches no atoms"}
	}
	if len(il) != len(jl) {
		return 0, &StructureError{Reason: "selection sizes differ between design and reference"}
	}
	return SuperRMSD(mol.SomeCoords(il), ref.SomeCoords(jl))
}
