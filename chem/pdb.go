/*
 * pdb.go, part of designfilter.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

//readPDBLine parses one ATOM/HETATM record. PDB is a fixed-column format;
//TrimSpace is kept everywhere anyway since plenty of writers don't fill all
//the columns.
func readPDBLine(line string) (*Atom, []float64, error) {
	if len(line) < 54 {
		return nil, nil, fmt.Errorf("chem: truncated record: %q", line)
	}
	errs := make([]error, 5)
	at := new(Atom)
	coords := make([]float64, 3)
	at.Het = strings.HasPrefix(line, "HETATM")
	at.ID, errs[0] = strconv.Atoi(strings.TrimSpace(line[6:11]))
	at.Name = strings.TrimSpace(line[12:16])
	//pos. 17 is officially altLoc but is used as part of the residue
	//name often enough that it is safer to include it.
	at.Molname = strings.TrimSpace(line[17:20])
	at.Chain = strings.TrimSpace(line[21:22])
	at.MolID, errs[1] = strconv.Atoi(strings.TrimSpace(line[22:26]))
	coords[0], errs[2] = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	coords[1], errs[3] = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	coords[2], errs[4] = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	//occupancy, b-factor and the element column are optional. Missing
	//values are simply left zero/deduced, not errors.
	if len(line) >= 60 {
		at.Occupancy, _ = strconv.ParseFloat(strings.TrimSpace(line[54:60]), 64)
	}
	if len(line) >= 66 {
		at.Bfactor, _ = strconv.ParseFloat(strings.TrimSpace(line[60:66]), 64)
	}
	if len(line) >= 78 {
		at.Symbol = strings.TrimSpace(line[76:78])
	}
	if at.Symbol == "" {
		at.Symbol = symbolFromName(at.Name)
	}
	at.Mass = symbolMass[at.Symbol]
	for _, e := range errs {
		if e != nil {
			return nil, nil, fmt.Errorf("chem: malformed record %q: %w", strings.TrimRight(line, "\n"), e)
		}
	}
	return at, coords, nil
}

//PDBRead reads a PDB structure from r. Only the first MODEL of a
//multi-model file is read; the filters work on single designed structures,
//so additional models are ignored.
func PDBRead(r io.Reader) (*Molecule, error) {
	var atoms []*Atom
	var coords []float64
	scan := bufio.NewScanner(r)
	nline := 0
	for scan.Scan() {
		line := scan.Text()
		nline++
		switch {
		case strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM"):
			at, c, err := readPDBLine(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", nline, err)
			}
			atoms = append(atoms, at)
			coords = append(coords, c...)
		case strings.HasPrefix(line, "ENDMDL"):
			return NewMolecule(atoms, coords)
		}
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	return NewMolecule(atoms, coords)
}

//PDBFileRead reads a PDB structure from a file. Files ending in ".gz" are
//decompressed on the fly.
func PDBFileRead(name string) (*Molecule, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(name), ".gz") {
		gz, err := gzip.NewReader(bufio.NewReader(f))
		if err != nil {
			return nil, fmt.Errorf("chem: %s: %w", name, err)
		}
		defer gz.Close()
		r = gz
	}
	mol, err := PDBRead(r)
	if err != nil {
		return nil, fmt.Errorf("chem: %s: %w", name, err)
	}
	return mol, nil
}
