/*
 * rename.go, part of designfilter.
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
	"github.com/foldlab/designfilter/fasta"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	fastaInFlag = &cli.StringFlag{
		Name:     "input",
		Aliases:  []string{"i"},
		Usage:    "the FASTA file to rename",
		Required: true,
	}

	fastaOutFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file (default: rewrite the input in place)",
	}

	prefixFlag = &cli.StringFlag{
		Name:    "prefix",
		Aliases: []string{"p"},
		Usage:   "prefix for the renamed sequences (default: the parent design's name)",
	}

	renameCmd = &cli.Command{
		Name:  "rename",
		Usage: "Rename the sampled-sequence headers of a ProteinMPNN FASTA file",
		Flags: []cli.Flag{fastaInFlag, fastaOutFlag, prefixFlag},
		Action: func(c *cli.Context) error {
			in := c.String(fastaInFlag.Name)
			out := c.String(fastaOutFlag.Name)
			if err := fasta.RenameFile(in, out, c.String(prefixFlag.Name)); err != nil {
				return err
			}
			if out == "" {
				out = in
			}
			log.Infof("renamed headers written to %s", out)
			return nil
		},
	}
)
