/*
 * main.go, part of designfilter.
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

//designfilter is a set of threshold filters for protein-design pipelines:
//each subcommand computes one structural metric per designed PDB file and
//copies the designs that pass into an output directory.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/foldlab/designfilter/filter"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	name    = "designfilter"
	version = "v0.1.0-default"
	commit  = ""

	designFlag = &cli.StringFlag{
		Name:     "design-path",
		Aliases:  []string{"d"},
		Usage:    "directory with the designed PDB files (.pdb or .pdb.gz)",
		Required: true,
	}

	rootPathFlag = &cli.StringFlag{
		Name:  "root-path",
		Usage: "root directory for logs and default output directories",
		Value: "filter_results",
	}

	outDirFlag = &cli.StringFlag{
		Name:    "output-dir",
		Aliases: []string{"o"},
		Usage:   "output directory for passing designs (default: under the root path)",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "log verbosity [debug, info, warning, error]",
		Value: "info",
	}

	plotFlag = &cli.StringFlag{
		Name:  "plot",
		Usage: "write a histogram of the metric values to this image file (optional)",
	}
)

//the flags every batch filter command shares
func batchFlags(extra ...cli.Flag) []cli.Flag {
	common := []cli.Flag{designFlag, rootPathFlag, outDirFlag, logLevelFlag, plotFlag}
	return append(common, extra...)
}

func main() {
	initLogging()

	app := &cli.App{
		Name:     name,
		Version:  fmt.Sprintf("%s (commit: %s)", version, commit),
		Compiled: time.Now(),
		Usage:    "threshold filters for protein-design pipelines",
		Commands: []*cli.Command{
			rgCmd,
			rmsdCmd,
			localRMSDCmd,
			sasaCmd,
			chargeCmd,
			polarCmd,
			renameCmd,
			pipelineCmd,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("fatal error: %v", err)
	}
}

func initLogging() {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.InfoLevel)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:          true,
		DisableLevelTruncation: true,
		PadLevelText:           true,
	})
}

//setupLogging points the standard logger at both stderr and a per-filter
//log file under the root path, and applies the requested level.
func setupLogging(c *cli.Context, logname string) error {
	root := c.String(rootPathFlag.Name)
	if err := os.MkdirAll(root, 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(root, logname), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	log.SetOutput(io.MultiWriter(os.Stderr, f))
	lvl, err := log.ParseLevel(c.String(logLevelFlag.Name))
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	return nil
}

//outputDir returns the explicit output dir if given, or a default one
//under the root path.
func outputDir(c *cli.Context, def string) string {
	if o := c.String(outDirFlag.Name); o != "" {
		return o
	}
	return filepath.Join(c.String(rootPathFlag.Name), def)
}

//runBatch wires one filter command: logging, the batch run and the
//optional histogram.
func runBatch(c *cli.Context, logname, defOut string, m filter.Metric, keep filter.Predicate, plotTitle, xlabel string) error {
	if err := setupLogging(c, logname); err != nil {
		return err
	}
	out := outputDir(c, defOut)
	log.Infof("output directory: %s", out)
	sum, err := filter.Batch(c.String(designFlag.Name), out, m, keep, log.StandardLogger())
	if err != nil {
		return err
	}
	if file := c.String(plotFlag.Name); file != "" {
		if err := filter.Histogram(sum.Values(), plotTitle, xlabel, file); err != nil {
			log.Warnf("could not write histogram: %v", err)
		} else {
			log.Infof("histogram written to %s", file)
		}
	}
	return nil
}
