/*
 * coords.go, part of nanopdb.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package nanopdb

import (
	"iter"

	v3 "github.com/rmera/nanopdb/v3"
)

//coordsOf collects the positions of the atoms in a v3.Matrix, one row
//per atom. It returns nil if there are no atoms.
func coordsOf(atoms iter.Seq[*Atom]) *v3.Matrix {
	data := make([]float64, 0, 3*64)
	for a := range atoms {
		data = append(data, a.position[0], a.position[1], a.position[2])
	}
	if len(data) == 0 {
		return nil
	}
	m, _ := v3.NewMatrix(data) //can't fail, len(data) is a positive multiple of 3
	return m
}

//Coords returns the positions of all the atoms in the structure, in file
//order, as a Nx3 matrix. Atoms in cleared slots are not included.
//It returns nil if there are no atoms.
func (S *Structure) Coords() *v3.Matrix {
	return coordsOf(S.Atoms())
}

//Coords returns the positions of the atoms of the chain, one per row, or nil.
func (C *Chain) Coords() *v3.Matrix {
	return coordsOf(func(yield func(*Atom) bool) {
		for _, r := range C.residues.all() {
			for _, a := range r.atoms.all() {
				if !yield(a) {
					return
				}
			}
		}
	})
}

//Coords returns the positions of the atoms of the residue, one per row, or nil.
func (R *Residue) Coords() *v3.Matrix {
	return coordsOf(func(yield func(*Atom) bool) {
		for _, a := range R.atoms.all() {
			if !yield(a) {
				return
			}
		}
	})
}
