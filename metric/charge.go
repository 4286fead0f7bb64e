/*
 * charge.go, part of designfilter.
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

import "github.com/foldlab/designfilter/chem"

//NetCharge returns the formal net charge of the protein at neutral pH:
//(ARG + LYS) - (ASP + GLU), counted over residues.
func NetCharge(mol *chem.Molecule) (int, error) {
	residues := mol.Residues()
	if len(residues) == 0 {
		return 0, &StructureError{Reason: "no protein residues"}
	}
	total := 0
	for _, res := range residues {
		total += chem.ResidueCharge(res.Name)
	}
	return total, nil
}
