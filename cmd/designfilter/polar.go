/*
 * polar.go, part of designfilter.
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
	"github.com/foldlab/designfilter/metric"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	polarThresholdFlag = &cli.Float64Flag{
		Name:    "polar-score",
		Aliases: []string{"p"},
		Usage:   "maximum surface polarity score in [0,1]",
	}

	polarReferenceFlag = &cli.StringFlag{
		Name:    "reference-pdb",
		Aliases: []string{"r"},
		Usage:   "compute the threshold from this reference structure instead of -p",
	}

	calculateFlag = &cli.StringFlag{
		Name:    "calculate",
		Aliases: []string{"c"},
		Usage:   "just compute and print the score of a single PDB file",
	}

	//polar keeps the design-path flag optional: -c works without it.
	polarDesignFlag = &cli.StringFlag{
		Name:    "design-path",
		Aliases: []string{"d"},
		Usage:   "directory with the designed PDB files (.pdb or .pdb.gz)",
	}

	polarCmd = &cli.Command{
		Name:  "polar",
		Usage: "Keep designs whose surface polarity score stays below a threshold",
		Flags: []cli.Flag{polarDesignFlag, rootPathFlag, outDirFlag, logLevelFlag, plotFlag,
			polarThresholdFlag, polarReferenceFlag, calculateFlag},
		Action: runPolar,
	}
)

func runPolar(c *cli.Context) error {
	if err := setupLogging(c, "surface_polar_filter.log"); err != nil {
		return err
	}
	if single := c.String(calculateFlag.Name); single != "" {
		mol, err := chem.PDBFileRead(single)
		if err != nil {
			return err
		}
		score, err := metric.SurfacePolarity(mol)
		if err != nil {
			return err
		}
		log.Infof("%s: surface polarity score %.4f", single, score)
		fmt.Printf("%.4f\n", score)
		return nil
	}
	design := c.String(polarDesignFlag.Name)
	if design == "" {
		return fmt.Errorf("either --design-path or --calculate is required")
	}
	hasP := c.IsSet(polarThresholdFlag.Name)
	hasR := c.String(polarReferenceFlag.Name) != ""
	if hasP == hasR {
		return fmt.Errorf("exactly one of --polar-score and --reference-pdb is required")
	}
	threshold := c.Float64(polarThresholdFlag.Name)
	if hasR {
		ref, err := chem.PDBFileRead(c.String(polarReferenceFlag.Name))
		if err != nil {
			return fmt.Errorf("reading reference: %w", err)
		}
		threshold, err = metric.SurfacePolarity(ref)
		if err != nil {
			return fmt.Errorf("scoring reference: %w", err)
		}
		log.Infof("threshold from reference: %.4f", threshold)
	}
	def := strings.ReplaceAll(fmt.Sprintf("filtered_polar_%.4f", threshold), ".", "_")
	out := outputDir(c, def)
	log.Infof("output directory: %s", out)
	sum, err := filter.Batch(design, out, filter.Polarity(), filter.AtMost(threshold), log.StandardLogger())
	if err != nil {
		return err
	}
	if file := c.String(plotFlag.Name); file != "" {
		if err := filter.Histogram(sum.Values(), "Surface polarity score", "score", file); err != nil {
			log.Warnf("could not write histogram: %v", err)
		}
	}
	return nil
}
