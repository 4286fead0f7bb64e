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

package main

import (
	"fmt"

	"github.com/foldlab/designfilter/filter"
	"github.com/urfave/cli/v2"
)

var (
	netChargeFlag = &cli.Float64Flag{
		Name:    "net-charge",
		Aliases: []string{"n"},
		Usage:   "maximum net charge, (ARG+LYS)-(ASP+GLU)",
		Value:   -1.0,
	}

	chargeCmd = &cli.Command{
		Name:  "charge",
		Usage: "Keep designs whose formal net charge stays below a threshold",
		Flags: batchFlags(netChargeFlag),
		Action: func(c *cli.Context) error {
			t := c.Float64(netChargeFlag.Name)
			def := fmt.Sprintf("filtered_charge_%g", t)
			return runBatch(c, "net_charge_filter.log", def,
				filter.Charge(), filter.AtMost(t),
				"Net charge", "(ARG+LYS)-(ASP+GLU)")
		},
	}
)
