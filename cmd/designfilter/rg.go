/*
 * rg.go, part of designfilter.
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
	minRgFlag = &cli.Float64Flag{
		Name:  "min-rg",
		Usage: "minimum radius of gyration (Å)",
		Value: 10.0,
	}

	maxRgFlag = &cli.Float64Flag{
		Name:  "max-rg",
		Usage: "maximum radius of gyration (Å)",
		Value: 20.0,
	}

	rgCmd = &cli.Command{
		Name:  "rg",
		Usage: "Keep designs whose radius of gyration falls in a range",
		Flags: batchFlags(minRgFlag, maxRgFlag),
		Action: func(c *cli.Context) error {
			min := c.Float64(minRgFlag.Name)
			max := c.Float64(maxRgFlag.Name)
			def := fmt.Sprintf("filtered_rg_%.1fto%.1f", min, max)
			return runBatch(c, "rg_filter.log", def,
				filter.Rg(), filter.Between(min, max),
				"Radius of gyration", "Rg (Å)")
		},
	}
)
