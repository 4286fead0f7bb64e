/*
 * atomicdata.go, part of designfilter.
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

import "strings"

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present.
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

//A map for assigning van der Waals radii to elements, in ångströms.
//Values from 10.1021/j100785a001 and 10.1021/jp8111556,
//metal radii from 10.1023/A:1011625728803.
var symbolVdwrad = map[string]float64{
	"H":  1.10,
	"C":  1.70,
	"O":  1.52,
	"N":  1.55,
	"P":  1.80,
	"S":  1.80,
	"Se": 1.90,
	"K":  2.75,
	"Ca": 2.31,
	"Mg": 1.73,
	"Cl": 1.75,
	"Na": 2.27,
	"Cu": 2.00,
	"Zn": 2.02,
	"Co": 1.95,
	"Fe": 1.96,
	"Mn": 1.96,
	"Cr": 1.97,
	"Si": 2.10,
	"Be": 1.53,
	"F":  1.47,
	"Br": 1.83,
	"I":  1.98,
}

//VdwRadius returns the van der Waals radius for an element symbol, in
//ångströms, falling back to the carbon radius for elements not in the table.
func VdwRadius(symbol string) float64 {
	if r, ok := symbolVdwrad[symbol]; ok {
		return r
	}
	return symbolVdwrad["C"]
}

//MassOf returns the atomic mass for an element symbol, or 0 if unknown.
func MassOf(symbol string) float64 {
	return symbolMass[symbol]
}

//symbolFromName tries to deduce the element symbol from a PDB atom name.
//Atom names start with the element, possibly preceded by a digit
//(e.g. "1HB"), so the first letter is taken, with a second-letter check for
//the few two-letter bio-elements that show up in protein files.
func symbolFromName(name string) string {
	name = strings.TrimLeft(name, "0123456789")
	if name == "" {
		return ""
	}
	if len(name) >= 2 {
		two := strings.ToUpper(name[:1]) + strings.ToLower(name[1:2])
		switch two {
		case "Cl", "Br", "Se", "Zn", "Fe", "Mg", "Mn", "Na", "Cu":
			return two
		}
	}
	return strings.ToUpper(name[:1])
}

//PolarityClass is the polarity category of an amino-acid residue. Every
//three-letter residue name maps to exactly one class; names outside the
//non-polar and polar lists, including the charged residues, are Other.
type PolarityClass int

const (
	Other PolarityClass = iota
	NonPolar
	Polar
)

func (p PolarityClass) String() string {
	switch p {
	case NonPolar:
		return "NonPolar"
	case Polar:
		return "Polar"
	}
	return "Other"
}

var polarityByName = map[string]PolarityClass{
	"ILE": NonPolar,
	"LEU": NonPolar,
	"MET": NonPolar,
	"TRP": NonPolar,
	"PHE": NonPolar,
	"VAL": NonPolar,
	"SER": Polar,
	"THR": Polar,
	"TYR": Polar,
	"ASN": Polar,
	"GLN": Polar,
}

//Polarity returns the polarity class for a three-letter residue name.
//Unknown names are Other.
func Polarity(resname string) PolarityClass {
	return polarityByName[resname]
}

//Unit formal charges at physiological pH, used for the net-charge filter.
//Histidine is mostly neutral at pH 7 and is not counted.
var chargeByName = map[string]int{
	"ARG": 1,
	"LYS": 1,
	"ASP": -1,
	"GLU": -1,
}

//ResidueCharge returns the formal charge of a residue name at neutral pH,
//or 0 for uncharged and unknown residues.
func ResidueCharge(resname string) int {
	return chargeByName[resname]
}
