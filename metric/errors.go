/*
 * errors.go, part of designfilter.
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

package metric

//StructureError reports a structure that a metric cannot work with:
//missing backbone atoms, mismatched atom counts between a structure and its
//reference, and the like. It is recoverable at the call site; the batch
//driver logs it and skips the file.
type StructureError struct {
	Reason string
}

func (e *StructureError) Error() string {
	return "metric: unusable structure: " + e.Reason
}

//DegenerateInputError reports an input for which a metric is mathematically
//undefined (e.g. a single-residue structure for the surface polarity score).
//Signaled explicitly rather than letting a NaN propagate.
type DegenerateInputError struct {
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return "metric: degenerate input: " + e.Reason
}
