/*
 * metrics.go, part of designfilter.
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

package filter

import (
	"fmt"

	"github.com/foldlab/designfilter/chem"
	"github.com/foldlab/designfilter/metric"
)

//The Metric constructors below close over whatever the underlying metric
//needs (a reference structure, a selection), so that the batch driver only
//ever sees a path->scalar function.

//Rg builds a Metric computing the mass-weighted radius of gyration.
func Rg() Metric {
	return func(path string) (float64, error) {
		mol, err := chem.PDBFileRead(path)
		if err != nil {
			return 0, err
		}
		return metric.Gyradius(mol)
	}
}

//RMSDTo builds a Metric computing the carbon-alpha RMSD against ref after
//optimal superposition.
func RMSDTo(ref *chem.Molecule) Metric {
	return func(path string) (float64, error) {
		mol, err := chem.PDBFileRead(path)
		if err != nil {
			return 0, err
		}
		return metric.GlobalRMSD(mol, ref)
	}
}

//LocalRMSDTo builds a Metric computing the RMSD against ref over the atoms
//matched by sel.
func LocalRMSDTo(ref *chem.Molecule, sel *chem.Selection) Metric {
	return func(path string) (float64, error) {
		mol, err := chem.PDBFileRead(path)
		if err != nil {
			return 0, err
		}
		return metric.SelectionRMSD(mol, ref, sel)
	}
}

//Sasa builds a Metric computing the solvent-accessible surface area.
func Sasa() Metric {
	return func(path string) (float64, error) {
		mol, err := chem.PDBFileRead(path)
		if err != nil {
			return 0, err
		}
		return metric.SASA(mol)
	}
}

//Charge builds a Metric computing the formal net charge.
func Charge() Metric {
	return func(path string) (float64, error) {
		mol, err := chem.PDBFileRead(path)
		if err != nil {
			return 0, err
		}
		c, err := metric.NetCharge(mol)
		return float64(c), err
	}
}

//Polarity builds a Metric computing the surface polarity score.
func Polarity() Metric {
	return func(path string) (float64, error) {
		mol, err := chem.PDBFileRead(path)
		if err != nil {
			return 0, err
		}
		return metric.SurfacePolarity(mol)
	}
}

//ByName returns the Metric for a metric name as used in pipeline files.
//Reference-based metrics need ref; localrmsd additionally needs sel.
func ByName(name string, ref *chem.Molecule, sel *chem.Selection) (Metric, error) {
	switch name {
	case "rg":
		return Rg(), nil
	case "sasa":
		return Sasa(), nil
	case "charge":
		return Charge(), nil
	case "polar":
		return Polarity(), nil
	case "rmsd":
		if ref == nil {
			return nil, fmt.Errorf("filter: metric %q needs a reference structure", name)
		}
		return RMSDTo(ref), nil
	case "localrmsd":
		if ref == nil {
			return nil, fmt.Errorf("filter: metric %q needs a reference structure", name)
		}
		if sel == nil {
			sel = &chem.Selection{Names: []string{"CA"}}
		}
		return LocalRMSDTo(ref, sel), nil
	}
	return nil, fmt.Errorf("filter: unknown metric %q", name)
}
