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

/*Package metric computes scalar structural metrics over a chem.Molecule:
radius of gyration, RMSD to a reference after optimal superposition,
Shrake-Rupley solvent-accessible surface area, net formal charge and the
surface polarity score.

Every function here is pure: it takes an already-loaded molecule, returns a
scalar (or a typed error) and has no side effects, so calls for different
structures can safely run in parallel. All distances are in ångströms and
all areas in Å².*/
package metric
