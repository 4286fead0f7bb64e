/*
 * fasta.go, part of designfilter.
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

/*Package fasta renames the sequence headers of ProteinMPNN output files.

A ProteinMPNN .fa file starts with a record for the parent design,

	>1abc, score=1.1717, global_score=1.2424, ...
	MKVL...

followed by one record per sampled sequence,

	>T=0.1, sample=1, score=0.7826, global_score=0.8360, seq_recovery=0.5312
	MKIL...

Rename rewrites each sampled header so its first field becomes the parent
name (or a caller-given prefix) plus the sample number: ">1abc1, score=...".
The remaining fields and all sequence lines are left untouched.*/
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

//Rename copies the FASTA stream from r to w, rewriting sampled-sequence
//headers. If prefix is empty, the parent name from the first header is
//used. The first record is passed through unchanged.
func Rename(r io.Reader, w io.Writer, prefix string) error {
	scan := bufio.NewScanner(r)
	out := bufio.NewWriter(w)
	first := true
	for scan.Scan() {
		line := scan.Text()
		if !strings.HasPrefix(line, ">") {
			fmt.Fprintln(out, line)
			continue
		}
		if first {
			first = false
			if prefix == "" {
				prefix = strings.TrimPrefix(strings.Split(line, ",")[0], ">")
			}
			fmt.Fprintln(out, line)
			continue
		}
		fmt.Fprintln(out, renameHeader(line, prefix))
	}
	if err := scan.Err(); err != nil {
		return err
	}
	return out.Flush()
}

//renameHeader replaces the first comma-field of a sampled header with
//prefix plus the sample number taken from the second field ("sample=N").
//Headers without a second field are left as they are.
func renameHeader(line, prefix string) string {
	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return line
	}
	kv := strings.Split(fields[1], "=")
	fields[0] = ">" + prefix + strings.TrimSpace(kv[len(kv)-1])
	return strings.Join(fields, ",")
}

//RenameFile renames the headers of input into output. An empty output
//rewrites the input file in place; the input is read fully before anything
//is written, so in-place renaming is safe.
func RenameFile(input, output, prefix string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	if output == "" {
		output = input
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := Rename(strings.NewReader(string(data)), f, prefix); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
