/*
 * common_test.go, part of designfilter.
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
	"testing"

	"github.com/foldlab/designfilter/chem"
	"github.com/stretchr/testify/require"
)

//buildProtein builds a synthetic protein with one carbon-alpha and one
//carbonyl carbon per residue, at the given positions.
func buildProtein(t *testing.T, names []string, ca, c [][3]float64) *chem.Molecule {
	t.Helper()
	require.Equal(t, len(names), len(ca))
	require.Equal(t, len(names), len(c))
	var atoms []*chem.Atom
	var coords []float64
	id := 1
	for i, n := range names {
		atoms = append(atoms, &chem.Atom{
			Name: "CA", ID: id, Molname: n, MolID: i + 1, Chain: "A",
			Symbol: "C", Mass: chem.MassOf("C"),
		})
		coords = append(coords, ca[i][0], ca[i][1], ca[i][2])
		id++
		atoms = append(atoms, &chem.Atom{
			Name: "C", ID: id, Molname: n, MolID: i + 1, Chain: "A",
			Symbol: "C", Mass: chem.MassOf("C"),
		})
		coords = append(coords, c[i][0], c[i][1], c[i][2])
		id++
	}
	mol, err := chem.NewMolecule(atoms, coords)
	require.NoError(t, err)
	return mol
}

//tetrahedron returns carbonyl positions on the vertices of a regular
//tetrahedron (edge 3*sqrt(2) Å) with each carbon-alpha displaced 1.53 Å
//radially inward, so every pair of direction vectors makes the same angle
//(cos = -1/3) and every pairwise distance is equal.
func tetrahedron() (ca, c [][3]float64) {
	const s = 1.5
	const bond = 1.53
	verts := [][3]float64{
		{s, s, s},
		{s, -s, -s},
		{-s, s, -s},
		{-s, -s, s},
	}
	for _, v := range verts {
		norm := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
		f := bond / norm
		c = append(c, v)
		ca = append(ca, [3]float64{v[0] - v[0]*f, v[1] - v[1]*f, v[2] - v[2]*f})
	}
	return ca, c
}

//helix returns six residues on an irregular helical backbone, with the
//expected surface polarity score for the residue names
//ILE, LEU, SER, LYS, MET, GLY (precomputed with the model formulas at
//double precision).
func helix() (ca, c [][3]float64) {
	c = [][3]float64{
		{2.3, 0, 0},
		{-0.399, 2.265, 1.5},
		{-2.161, -0.787, 3},
		{1.15, -1.992, 4.5},
		{1.762, 1.478, 6},
		{-1.762, 1.478, 7.5},
	}
	ca = [][3]float64{
		{3.174, 0.751, -0.823},
		{0.469, 2.872, 0.679},
		{-1.15, -0.045, 2.304},
		{2.075, -1.253, 3.719},
		{2.495, 2.264, 5.251},
		{-0.812, 2.009, 6.526},
	}
	return ca, c
}

const helixScore = 0.500042907959

var helixNames = []string{"ILE", "LEU", "SER", "LYS", "MET", "GLY"}
