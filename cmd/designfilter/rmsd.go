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

package main

import (
	"fmt"
	"strings"

	"github.com/foldlab/designfilter/chem"
	"github.com/foldlab/designfilter/filter"
	"github.com/urfave/cli/v2"
)

var (
	referenceFlag = &cli.StringFlag{
		Name:     "reference-pdb",
		Aliases:  []string{"r"},
		Usage:    "reference PDB file (the original design)",
		Required: true,
	}

	rmsdThresholdFlag = &cli.Float64Flag{
		Name:    "rmsd-threshold",
		Aliases: []string{"t"},
		Usage:   "maximum RMSD against the reference (Å)",
		Value:   2.0,
	}

	rmsdCmd = &cli.Command{
		Name:  "rmsd",
		Usage: "Keep designs whose carbon-alpha RMSD to a reference stays below a threshold",
		Flags: batchFlags(referenceFlag, rmsdThresholdFlag),
		Action: func(c *cli.Context) error {
			ref, err := chem.PDBFileRead(c.String(referenceFlag.Name))
			if err != nil {
				return fmt.Errorf("reading reference: %w", err)
			}
			t := c.Float64(rmsdThresholdFlag.Name)
			def := underscored(fmt.Sprintf("filtered_rmsd_%.2f", t))
			return runBatch(c, "global_rmsd_filter.log", def,
				filter.RMSDTo(ref), filter.AtMost(t),
				"Global RMSD", "RMSD (Å)")
		},
	}

	localThresholdFlag = &cli.Float64Flag{
		Name:    "rmsd-threshold",
		Aliases: []string{"t"},
		Usage:   "maximum local RMSD against the reference (Å)",
		Value:   1.0,
	}

	selNamesFlag = &cli.StringSliceFlag{
		Name:  "atoms",
		Usage: "atom names of the local region (default: CA)",
	}

	selChainsFlag = &cli.StringSliceFlag{
		Name:  "chains",
		Usage: "chains of the local region (default: all)",
	}

	selFirstFlag = &cli.IntFlag{
		Name:  "first-res",
		Usage: "first residue number of the local region",
	}

	selLastFlag = &cli.IntFlag{
		Name:  "last-res",
		Usage: "last residue number of the local region",
	}

	localRMSDCmd = &cli.Command{
		Name:  "localrmsd",
		Usage: "Keep designs whose RMSD to a reference, over a selected region, stays below a threshold",
		Flags: batchFlags(referenceFlag, localThresholdFlag, selNamesFlag, selChainsFlag, selFirstFlag, selLastFlag),
		Action: func(c *cli.Context) error {
			ref, err := chem.PDBFileRead(c.String(referenceFlag.Name))
			if err != nil {
				return fmt.Errorf("reading reference: %w", err)
			}
			sel := &chem.Selection{
				Names:    c.StringSlice(selNamesFlag.Name),
				Chains:   c.StringSlice(selChainsFlag.Name),
				FirstRes: c.Int(selFirstFlag.Name),
				LastRes:  c.Int(selLastFlag.Name),
			}
			if len(sel.Names) == 0 {
				sel.Names = []string{"CA"}
			}
			t := c.Float64(localThresholdFlag.Name)
			def := underscored(fmt.Sprintf("filtered_localrmsd_%.2f", t))
			return runBatch(c, "local_rmsd_filter.log", def,
				filter.LocalRMSDTo(ref, sel), filter.AtMost(t),
				"Local RMSD", "RMSD (Å)")
		},
	}
)

//underscored makes a threshold value safe for a directory name.
func underscored(s string) string {
	return strings.ReplaceAll(s, ".", "_")
}
