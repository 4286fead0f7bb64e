/*
 * atom.go, part of designfilter.
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

package chem

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Atom contains the data of one atom read from a coordinate file, except for
//the coordinates themselves, which live in the Coords matrix of the Molecule.
type Atom struct {
	Name      string //PDB atom name, e.g. "CA"
	ID        int
	Molname   string //three-letter residue name
	MolID     int    //residue number
	Chain     string
	Occupancy float64
	Bfactor   float64
	Symbol    string
	Mass      float64
	Het       bool //was the atom read from a HETATM record?
}

//Copy returns a copy of the Atom.
func (A *Atom) Copy() *Atom {
	at := *A
	return &at
}

//Molecule is an ordered set of atoms plus their cartesian coordinates,
//one row per atom, in ångströms.
type Molecule struct {
	Atoms  []*Atom
	Coords *mat.Dense
}

//NewMolecule builds a Molecule from a slice of atoms and a flat coordinate
//slice (x1,y1,z1,x2...). It returns an error if the slice lengths are
//inconsistent.
func NewMolecule(atoms []*Atom, coords []float64) (*Molecule, error) {
	if len(coords) != 3*len(atoms) {
		return nil, fmt.Errorf("chem: %d atoms but %d coordinates", len(atoms), len(coords))
	}
	if len(atoms) == 0 {
		return nil, fmt.Errorf("chem: empty molecule")
	}
	return &Molecule{Atoms: atoms, Coords: mat.NewDense(len(atoms), 3, coords)}, nil
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//Atom returns the ith atom. Panics if out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i < 0 || i >= len(M.Atoms) {
		panic("chem: atom index out of range")
	}
	return M.Atoms[i]
}

//Coord returns a view of the cartesian coordinates of the ith atom.
//The slice aliases the underlying matrix, so the caller must not keep it
//across mutations.
func (M *Molecule) Coord(i int) []float64 {
	return M.Coords.RawRowView(i)
}

//SomeCoords returns a new matrix with the coordinates of the atoms whose
//indexes are given in list, in that order.
func (M *Molecule) SomeCoords(list []int) *mat.Dense {
	r := mat.NewDense(len(list), 3, nil)
	for i, v := range list {
		r.SetRow(i, M.Coords.RawRowView(v))
	}
	return r
}

//Selection describes a subset of the atoms in a molecule. Zero values mean
//"no restriction": an empty Names slice matches every atom name, an empty
//Chains slice every chain, and a nil residue range every residue number.
type Selection struct {
	Names    []string
	Chains   []string
	FirstRes int //both 0 means any residue id
	LastRes  int
}

//Indexes returns the indexes of the atoms of M matched by the selection,
//in molecule order. HETATM records never match.
func (S *Selection) Indexes(M *Molecule) []int {
	var list []int
	for i, at := range M.Atoms {
		if at.Het {
			continue
		}
		if len(S.Names) > 0 && !isInString(S.Names, at.Name) {
			continue
		}
		if len(S.Chains) > 0 && !isInString(S.Chains, at.Chain) {
			continue
		}
		if (S.FirstRes != 0 || S.LastRes != 0) && (at.MolID < S.FirstRes || at.MolID > S.LastRes) {
			continue
		}
		list = append(list, i)
	}
	return list
}

func isInString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

//Residue is a view over the atoms of one residue of a Molecule.
type Residue struct {
	Name  string
	ID    int
	Chain string
	Atoms []int //indexes into the Molecule
}

//AtomByName returns the index (in the Molecule) of the first atom of the
//residue with the given PDB name, or -1 if the residue has no such atom.
func (R *Residue) AtomByName(M *Molecule, name string) int {
	for _, i := range R.Atoms {
		if M.Atoms[i].Name == name {
			return i
		}
	}
	return -1
}

//Residues groups the non-HETATM atoms of the molecule into residues,
//in order of appearance. A new residue starts whenever the chain or the
//residue number changes.
func (M *Molecule) Residues() []*Residue {
	var res []*Residue
	var cur *Residue
	for i, at := range M.Atoms {
		if at.Het {
			continue
		}
		if cur == nil || at.MolID != cur.ID || at.Chain != cur.Chain {
			cur = &Residue{Name: at.Molname, ID: at.MolID, Chain: at.Chain}
			res = append(res, cur)
		}
		cur.Atoms = append(cur.Atoms, i)
	}
	return res
}
