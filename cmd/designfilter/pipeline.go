/*
 * pipeline.go, part of designfilter.
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
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	configFlag = &cli.StringFlag{
		Name:     "config",
		Aliases:  []string{"f"},
		Usage:    "pipeline YAML file",
		Required: true,
	}

	pipelineCmd = &cli.Command{
		Name:  "pipeline",
		Usage: "Run a YAML-defined sequence of filter stages",
		Flags: []cli.Flag{configFlag, rootPathFlag, logLevelFlag},
		Action: func(c *cli.Context) error {
			if err := setupLogging(c, "pipeline.log"); err != nil {
				return err
			}
			p, err := filter.LoadPipeline(c.String(configFlag.Name))
			if err != nil {
				return err
			}
			summaries, err := p.Run(log.StandardLogger())
			if err != nil {
				return err
			}
			for i, s := range summaries {
				log.Infof("stage %d (%s): %d/%d passed (%.2f%%)",
					i+1, p.Stages[i].Metric, s.Passed, s.Total, s.PassRate())
			}
			if len(summaries) == len(p.Stages) && len(summaries) > 0 {
				last := summaries[len(summaries)-1]
				fmt.Printf("%d designs survived all %d stages\n", last.Passed, len(p.Stages))
			}
			return nil
		},
	}
)
