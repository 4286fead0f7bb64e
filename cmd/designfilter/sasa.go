/*
 * sasa.go, part of designfilter.
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

	"github.com/foldlab/designfilter/filter"
	"github.com/urfave/cli/v2"
)

var (
	minSasaFlag = &cli.Float64Flag{
		Name:  "min-sasa",
		Usage: "minimum solvent-accessible surface area (Å²)",
		Value: 10000.0,
	}

	maxSasaFlag = &cli.Float64Flag{
		Name:  "max-sasa",
		Usage: "maximum solvent-accessible surface area (Å²)",
		Value: 20000.0,
	}

	sasaCmd = &cli.Command{
		Name:  "sasa",
		Usage: "Keep designs whose solvent-accessible surface area falls in a range",
		Flags: batchFlags(minSasaFlag, maxSasaFlag),
		Action: func(c *cli.Context) error {
			min := c.Float64(minSasaFlag.Name)
			max := c.Float64(maxSasaFlag.Name)
			def := fmt.Sprintf("filtered_sasa_%.0fto%.0f", min, max)
			return runBatch(c, "sasa_filter.log", def,
				filter.Sasa(), filter.Between(min, max),
				"Solvent-accessible surface area", "SASA (Å²)")
		},
	}
)
