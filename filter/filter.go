/*
 * filter.go, part of designfilter.
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

/*Package filter implements the batch driver shared by every designfilter
command: enumerate the structure files of a design directory, compute one
scalar metric per file, copy the files whose value satisfies a numeric
predicate into an output directory, and log per-file results plus a final
pass-rate summary. A failing file is logged and skipped, never fatal to the
batch.*/
package filter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

//Metric computes one scalar for one structure file.
type Metric func(path string) (float64, error)

//Predicate decides whether a metric value passes the filter.
type Predicate func(v float64) bool

//Between keeps values in [min, max].
func Between(min, max float64) Predicate {
	return func(v float64) bool { return v >= min && v <= max }
}

//AtMost keeps values less than or equal to max.
func AtMost(max float64) Predicate {
	return func(v float64) bool { return v <= max }
}

//Result is the outcome for a single file.
type Result struct {
	Name  string
	Value float64
	Pass  bool
	Err   error
}

//Summary aggregates a whole batch run.
type Summary struct {
	Total   int //structure files found
	Passed  int //files copied to the output directory
	Skipped int //files whose metric could not be computed
	Results []Result
}

//PassRate returns the fraction of found files that passed, in percent.
func (s *Summary) PassRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return 100 * float64(s.Passed) / float64(s.Total)
}

//Values returns the metric values of the files that could be computed,
//in directory order. Used for the distribution histogram.
func (s *Summary) Values() []float64 {
	var vals []float64
	for _, r := range s.Results {
		if r.Err == nil {
			vals = append(vals, r.Value)
		}
	}
	return vals
}

//IsStructureFile reports whether name looks like a structure file the
//batch driver should pick up: .pdb, or gzip-compressed .pdb.gz.
func IsStructureFile(name string) bool {
	low := strings.ToLower(name)
	return strings.HasSuffix(low, ".pdb") || strings.HasSuffix(low, ".pdb.gz")
}

//Batch runs metric over every structure file of designDir and copies the
//files that keep accepts into outDir, creating it if needed. Files whose
//metric fails are logged and skipped. Batch only returns an error for
//problems with the directories themselves; per-file failures end up in the
//Summary.
func Batch(designDir, outDir string, metric Metric, keep Predicate, log *logrus.Logger) (*Summary, error) {
	entries, err := os.ReadDir(designDir)
	if err != nil {
		return nil, fmt.Errorf("filter: reading design dir: %w", err)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("filter: creating output dir: %w", err)
	}
	sum := new(Summary)
	log.Infof("processing directory: %s", designDir)
	for _, e := range entries {
		if e.IsDir() || !IsStructureFile(e.Name()) {
			continue
		}
		sum.Total++
		path := filepath.Join(designDir, e.Name())
		v, err := metric(path)
		if err != nil {
			log.Warnf("skipping %s: %v", e.Name(), err)
			sum.Skipped++
			sum.Results = append(sum.Results, Result{Name: e.Name(), Err: err})
			continue
		}
		pass := keep(v)
		sum.Results = append(sum.Results, Result{Name: e.Name(), Value: v, Pass: pass})
		if pass {
			dest := filepath.Join(outDir, e.Name())
			if err := copyFile(path, dest); err != nil {
				return sum, fmt.Errorf("filter: copying %s: %w", e.Name(), err)
			}
			sum.Passed++
			log.Infof("%s: %.4f - passed, copied to %s", e.Name(), v, dest)
		} else {
			log.Infof("%s: %.4f - rejected", e.Name(), v)
		}
	}
	log.Infof("===== done =====")
	log.Infof("total files: %d", sum.Total)
	log.Infof("passed: %d", sum.Passed)
	if sum.Total > 0 {
		log.Infof("pass rate: %.2f%%", sum.PassRate())
	} else {
		log.Warnf("no structure files found in %s", designDir)
	}
	return sum, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
