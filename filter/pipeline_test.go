/*
 * pipeline_test.go, part of designfilter.
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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePipeline(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	return path
}

func TestLoadPipelineValidation(t *testing.T) {
	design := t.TempDir()
	out := t.TempDir()
	cases := []struct {
		name string
		yaml string
	}{
		{"no design", "output: /tmp/x\nstages:\n  - metric: rg\n    max: 20\n"},
		{"no output", fmt.Sprintf("design: %s\nstages:\n  - metric: rg\n    max: 20\n", design)},
		{"no stages", fmt.Sprintf("design: %s\noutput: %s\n", design, out)},
		{"no threshold", fmt.Sprintf("design: %s\noutput: %s\nstages:\n  - metric: rg\n", design, out)},
		{"unknown metric", fmt.Sprintf("design: %s\noutput: %s\nstages:\n  - metric: zeta\n    max: 1\n", design, out)},
		{"rmsd without reference", fmt.Sprintf("design: %s\noutput: %s\nstages:\n  - metric: rmsd\n    max: 2\n", design, out)},
		{"missing reference file", fmt.Sprintf("design: %s\noutput: %s\nstages:\n  - metric: rmsd\n    max: 2\n    reference: /no/such.pdb\n", design, out)},
		{"bad yaml", "stages: [\n"},
	}
	for _, tc := range cases {
		_, err := LoadPipeline(writePipeline(t, tc.yaml))
		assert.Error(t, err, tc.name)
	}

	_, err := LoadPipeline(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPipelineRun(t *testing.T) {
	design := t.TempDir()
	out := t.TempDir()
	writeDiatomic(t, design, "small.pdb", 2.0)  //rg 1.0
	writeDiatomic(t, design, "medium.pdb", 4.0) //rg 2.0
	writeDiatomic(t, design, "large.pdb", 6.0)  //rg 3.0

	//stage 1 drops the large design, stage 2 (net charge of glycine
	//chains, always 0) keeps the rest
	yaml := fmt.Sprintf(`design: %s
output: %s
stages:
  - metric: rg
    min: 0.5
    max: 2.5
  - metric: charge
    min: -2
    max: 2
`, design, out)
	p, err := LoadPipeline(writePipeline(t, yaml))
	require.NoError(t, err)
	require.Len(t, p.Stages, 2)

	summaries, err := p.Run(quietLog())
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, 3, summaries[0].Total)
	assert.Equal(t, 2, summaries[0].Passed)
	assert.Equal(t, 2, summaries[1].Total, "stage 2 must read stage 1's survivors")
	assert.Equal(t, 2, summaries[1].Passed)

	final := filepath.Join(out, "stage02_charge")
	for _, name := range []string{"small.pdb", "medium.pdb"} {
		_, err := os.Stat(filepath.Join(final, name))
		assert.NoError(t, err, name)
	}
	_, err = os.Stat(filepath.Join(final, "large.pdb"))
	assert.True(t, os.IsNotExist(err))
}

func TestPipelineSelectionConfig(t *testing.T) {
	sc := &SelectionConfig{Names: []string{"CA"}, Chains: []string{"A"}, FirstRes: 10, LastRes: 20}
	sel := sc.selection()
	require.NotNil(t, sel)
	assert.Equal(t, []string{"CA"}, sel.Names)
	assert.Equal(t, 10, sel.FirstRes)

	var none *SelectionConfig
	assert.Nil(t, none.selection())
}

func TestStagePredicate(t *testing.T) {
	min, max := 1.0, 2.0
	both := (&Stage{Min: &min, Max: &max}).predicate()
	assert.True(t, both(1.5))
	assert.False(t, both(2.5))

	onlyMax := (&Stage{Max: &max}).predicate()
	assert.True(t, onlyMax(-100))
	assert.False(t, onlyMax(2.5))

	onlyMin := (&Stage{Min: &min}).predicate()
	assert.True(t, onlyMin(100))
	assert.False(t, onlyMin(0.5))
}
