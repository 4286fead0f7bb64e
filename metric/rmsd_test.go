/*
 * rmsd_test.go, part of designfilter.
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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func tetraCoords(scale float64) *mat.Dense {
	return mat.NewDense(4, 3, []float64{
		scale * 1.5, scale * 1.5, scale * 1.5,
		scale * 1.5, scale * -1.5, scale * -1.5,
		scale * -1.5, scale * 1.5, scale * -1.5,
		scale * -1.5, scale * -1.5, scale * 1.5,
	})
}

//rotateZ rotates the rows of m by the given angle around z and shifts them.
func rotateZ(m *mat.Dense, angle float64, shift [3]float64) *mat.Dense {
	n, _ := m.Dims()
	s, c := math.Sin(angle), math.Cos(angle)
	out := mat.NewDense(n, 3, nil)
	for i := 0; i < n; i++ {
		r := m.RawRowView(i)
		out.SetRow(i, []float64{
			c*r[0] - s*r[1] + shift[0],
			s*r[0] + c*r[1] + shift[1],
			r[2] + shift[2],
		})
	}
	return out
}

func TestRMSDIdentity(t *testing.T) {
	a := tetraCoords(1)
	r, err := RMSD(a, a)
	require.NoError(t, err)
	assert.Zero(t, r)
	r, err = SuperRMSD(a, a)
	require.NoError(t, err)
	assert.InDelta(t, 0, r, 1e-9)
}

func TestSuperRMSDRigidCopy(t *testing.T) {
	a := tetraCoords(1)
	b := rotateZ(a, 0.83, [3]float64{5, -7, 11})
	//without superposition the deviation is large
	raw, err := RMSD(a, b)
	require.NoError(t, err)
	assert.Greater(t, raw, 1.0)
	//after superposition a rigid copy deviates by nothing
	r, err := SuperRMSD(b, a)
	require.NoError(t, err)
	assert.InDelta(t, 0, r, 1e-9)
}

func TestSuperRMSDScaled(t *testing.T) {
	//a uniformly scaled tetrahedron cannot be rotated onto the original:
	//every vertex ends up (s-1)*1.5*sqrt(3) away.
	a := tetraCoords(1)
	b := rotateZ(tetraCoords(1.2), -1.1, [3]float64{-3, 2, 9})
	r, err := SuperRMSD(b, a)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.519615242271, r, 1e-9)
}

func TestSuperNoReflection(t *testing.T) {
	//mirroring a chiral point set is not a rotation, so superposition must
	//leave a residual rather than apply a reflection.
	a := mat.NewDense(4, 3, []float64{
		0, 0, 0,
		2, 0, 0,
		0, 2, 0,
		0, 0, 2,
	})
	b := mat.NewDense(4, 3, []float64{
		0, 0, 0,
		2, 0, 0,
		0, 2, 0,
		0, 0, -2,
	})
	r, err := SuperRMSD(b, a)
	require.NoError(t, err)
	assert.Greater(t, r, 0.5)
}

func TestRMSDBadShapes(t *testing.T) {
	a := tetraCoords(1)
	short := mat.NewDense(3, 3, nil)
	_, err := RMSD(a, short)
	var serr *StructureError
	require.ErrorAs(t, err, &serr)
	_, err = Super(a, short)
	require.ErrorAs(t, err, &serr)
}

func TestGlobalRMSD(t *testing.T) {
	ca, c := helix()
	mol := buildProtein(t, helixNames, ca, c)
	r, err := GlobalRMSD(mol, mol)
	require.NoError(t, err)
	assert.InDelta(t, 0, r, 1e-9)

	//mismatched CA counts between design and reference
	shorter := buildProtein(t, helixNames[:4], ca[:4], c[:4])
	_, err = GlobalRMSD(mol, shorter)
	var serr *StructureError
	require.ErrorAs(t, err, &serr)
}
