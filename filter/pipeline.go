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

package filter

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/foldlab/designfilter/chem"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//SelectionConfig is the YAML form of a chem.Selection.
type SelectionConfig struct {
	Names    []string `yaml:"names"`
	Chains   []string `yaml:"chains"`
	FirstRes int      `yaml:"first"`
	LastRes  int      `yaml:"last"`
}

func (s *SelectionConfig) selection() *chem.Selection {
	if s == nil {
		return nil
	}
	return &chem.Selection{Names: s.Names, Chains: s.Chains, FirstRes: s.FirstRes, LastRes: s.LastRes}
}

//Stage is one filtering step of a pipeline. Min and Max are optional; an
//absent bound is open. Reference is required for the RMSD metrics.
type Stage struct {
	Metric    string           `yaml:"metric"`
	Min       *float64         `yaml:"min"`
	Max       *float64         `yaml:"max"`
	Reference string           `yaml:"reference"`
	Selection *SelectionConfig `yaml:"selection"`
}

func (st *Stage) predicate() Predicate {
	min := math.Inf(-1)
	max := math.Inf(1)
	if st.Min != nil {
		min = *st.Min
	}
	if st.Max != nil {
		max = *st.Max
	}
	return Between(min, max)
}

//Pipeline chains filter stages: each stage reads the previous stage's
//output directory, so only designs that survive every filter end up in the
//final stage directory.
type Pipeline struct {
	Design string  `yaml:"design"`
	Output string  `yaml:"output"`
	Stages []Stage `yaml:"stages"`
}

//LoadPipeline reads and validates a pipeline YAML file.
func LoadPipeline(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p := new(Pipeline)
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("filter: parsing pipeline %s: %w", path, err)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("filter: pipeline %s: %w", path, err)
	}
	return p, nil
}

func (p *Pipeline) validate() error {
	if p.Design == "" {
		return fmt.Errorf("missing design directory")
	}
	if p.Output == "" {
		return fmt.Errorf("missing output directory")
	}
	if len(p.Stages) == 0 {
		return fmt.Errorf("no stages")
	}
	for i, st := range p.Stages {
		if st.Min == nil && st.Max == nil {
			return fmt.Errorf("stage %d (%s): no threshold given", i+1, st.Metric)
		}
		//build the metric once to catch unknown names and missing
		//references before any work is done
		ref, err := st.loadReference()
		if err != nil {
			return fmt.Errorf("stage %d (%s): %w", i+1, st.Metric, err)
		}
		if _, err := ByName(st.Metric, ref, st.Selection.selection()); err != nil {
			return fmt.Errorf("stage %d: %w", i+1, err)
		}
	}
	return nil
}

func (st *Stage) loadReference() (*chem.Molecule, error) {
	if st.Reference == "" {
		return nil, nil
	}
	return chem.PDBFileRead(st.Reference)
}

//Run executes the stages in order and returns one Summary per stage. The
//output of stage i goes to <output>/stage<i>_<metric> and becomes the input
//of stage i+1.
func (p *Pipeline) Run(log *logrus.Logger) ([]*Summary, error) {
	in := p.Design
	summaries := make([]*Summary, 0, len(p.Stages))
	for i, st := range p.Stages {
		ref, err := st.loadReference()
		if err != nil {
			return summaries, fmt.Errorf("filter: stage %d: %w", i+1, err)
		}
		m, err := ByName(st.Metric, ref, st.Selection.selection())
		if err != nil {
			return summaries, fmt.Errorf("filter: stage %d: %w", i+1, err)
		}
		out := filepath.Join(p.Output, fmt.Sprintf("stage%02d_%s", i+1, st.Metric))
		log.Infof("pipeline stage %d/%d: %s -> %s", i+1, len(p.Stages), st.Metric, out)
		sum, err := Batch(in, out, m, st.predicate(), log)
		if err != nil {
			return summaries, err
		}
		summaries = append(summaries, sum)
		in = out
	}
	return summaries, nil
}
