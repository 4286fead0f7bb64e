/*
 * doc.go, part of designfilter.
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

/*Package chem provides the structure data model used by the designfilter
metrics: atoms, residues and molecules, a reader for PDB coordinate files
(plain or gzip-compressed) and the static per-element and per-residue data
tables (masses, van der Waals radii, polarity and charge classes).

Coordinates are kept in a gonum Dense matrix with one row per atom, in
ångströms. A Molecule is immutable for the duration of a metric
computation; nothing in this package mutates a Molecule after it has been
read.*/
package chem
