/*
 * polar_test.go, part of designfilter.
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
	"errors"
	"math/rand"
	"testing"

	"github.com/foldlab/designfilter/chem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//On a regular tetrahedron with radially-pointing carbonyls all residues
//have the same neighbor density, so every exposure weight is exactly 0.5
//and the score reduces to the non-polar fraction weighted evenly. With two
//non-polar, one polar and one charged residue the fraction depends only on
//the classes.
func TestSurfacePolarityTetrahedron(t *testing.T) {
	ca, c := tetrahedron()
	mol := buildProtein(t, []string{"VAL", "SER", "LYS", "LEU"}, ca, c)
	score, err := SurfacePolarity(mol)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, score, 1e-12)
}

//The same geometry, checked at the level of the intermediate matrices.
func TestPolarIntermediates(t *testing.T) {
	ca, c := tetrahedron()
	mol := buildProtein(t, []string{"VAL", "SER", "LYS", "LEU"}, ca, c)
	cpos, capos, class, err := backbone(mol)
	require.NoError(t, err)
	require.Equal(t, []chem.PolarityClass{chem.NonPolar, chem.Polar, chem.Other, chem.NonPolar}, class)

	d := distanceMatrix(cpos)
	phi, err := angleMatrix(cpos, capos)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		assert.Zero(t, d.At(i, i))
		assert.InDelta(t, 0.0, phi.At(i, i), 1e-6)
		for j := 0; j < 4; j++ {
			if i == j {
				continue
			}
			assert.InEpsilon(t, 4.242640687119, d.At(i, j), 1e-6)
			assert.InEpsilon(t, 1.910633236249, phi.At(i, j), 1e-6) //acos(-1/3)
		}
	}
	w := neighborWeights(d, phi)
	for i := 0; i < 4; i++ {
		assert.Zero(t, w.At(i, i), "a residue must not be its own neighbor")
		for j := 0; j < 4; j++ {
			if i == j {
				continue
			}
			assert.InEpsilon(t, 0.011602542033, w.At(i, j), 1e-6)
		}
	}
}

//An irregular helical backbone where the densities actually differ, checked
//against values computed with the model formulas at double precision.
func TestSurfacePolarityHelix(t *testing.T) {
	ca, c := helix()
	mol := buildProtein(t, helixNames, ca, c)
	score, err := SurfacePolarity(mol)
	require.NoError(t, err)
	assert.InEpsilon(t, helixScore, score, 1e-6)
}

//The score must not depend on the order ATOM records appear in: shuffling
//whole residues leaves it unchanged, as residues are regrouped by chain and
//number.
func TestSurfacePolarityPermutation(t *testing.T) {
	ca, c := helix()
	base := buildProtein(t, helixNames, ca, c)
	want, err := SurfacePolarity(base)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 5; trial++ {
		perm := rng.Perm(len(helixNames))
		var names []string
		var pca, pc [][3]float64
		for _, k := range perm {
			names = append(names, helixNames[k])
			pca = append(pca, ca[k])
			pc = append(pc, c[k])
		}
		mol := buildProtein(t, names, pca, pc)
		got, err := SurfacePolarity(mol)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12)
	}
}

func TestSurfacePolarityBounds(t *testing.T) {
	ca, c := helix()
	allNP := []string{"ILE", "LEU", "MET", "TRP", "PHE", "VAL"}
	mol := buildProtein(t, allNP, ca, c)
	score, err := SurfacePolarity(mol)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-12)

	noNP := []string{"SER", "THR", "GLY", "LYS", "ASP", "GLN"}
	mol = buildProtein(t, noNP, ca, c)
	score, err = SurfacePolarity(mol)
	require.NoError(t, err)
	assert.Zero(t, score)
}

func TestSurfacePolarityDegenerate(t *testing.T) {
	mol := buildProtein(t, []string{"VAL"},
		[][3]float64{{0, 0, 0}}, [][3]float64{{1.53, 0, 0}})
	_, err := SurfacePolarity(mol)
	var degen *DegenerateInputError
	require.ErrorAs(t, err, &degen)
}

func TestSurfacePolarityMissingBackbone(t *testing.T) {
	//second residue has no carbonyl carbon
	atoms := []*chem.Atom{
		{Name: "CA", ID: 1, Molname: "VAL", MolID: 1, Chain: "A", Symbol: "C"},
		{Name: "C", ID: 2, Molname: "VAL", MolID: 1, Chain: "A", Symbol: "C"},
		{Name: "CA", ID: 3, Molname: "SER", MolID: 2, Chain: "A", Symbol: "C"},
	}
	coords := []float64{0, 0, 0, 1.53, 0, 0, 3, 3, 3}
	mol, err := chem.NewMolecule(atoms, coords)
	require.NoError(t, err)
	_, err = SurfacePolarity(mol)
	var serr *StructureError
	require.ErrorAs(t, err, &serr)
}

func TestLowerMedian(t *testing.T) {
	assert.Equal(t, 2.0, lowerMedian([]float64{3, 1, 2}))
	assert.Equal(t, 2.0, lowerMedian([]float64{4, 2, 3, 1})) //lower of the two middles
	assert.Equal(t, 5.0, lowerMedian([]float64{5}))
}

func TestErrorsAreDistinct(t *testing.T) {
	var s error = &StructureError{Reason: "x"}
	var d error = &DegenerateInputError{Reason: "y"}
	assert.NotEqual(t, s.Error(), d.Error())
	var target *DegenerateInputError
	assert.False(t, errors.As(s, &target))
}
