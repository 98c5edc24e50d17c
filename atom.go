/*
 * atom.go, part of nanopdb.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package nanopdb

import "fmt"

// AtomType tells whether an atom came from an ATOM or a HETATM record.
type AtomType int

const (
	ATOM AtomType = iota
	HETATM
)

func (t AtomType) String() string {
	if t == HETATM {
		return "HETATM"
	}
	return "ATOM"
}

//Atom is one ATOM or HETATM record. It is immutable once built, and
//is shared by pointer, so it stays valid if its residue clears the slot
//holding it.
type Atom struct {
	label     AtomType
	serial    uint
	name      string
	element   string
	position  [3]float64
	occupancy float64
}

//NewAtom returns a new Atom with the given data.
func NewAtom(label AtomType, serial uint, name, element string, position [3]float64, occupancy float64) *Atom {
	return &Atom{
		label:     label,
		serial:    serial,
		name:      name,
		element:   element,
		position:  position,
		occupancy: occupancy,
	}
}

//Label returns ATOM or HETATM.
func (A *Atom) Label() AtomType { return A.label }

//Serial returns the atom serial number.
func (A *Atom) Serial() uint { return A.serial }

func (A *Atom) Name() string { return A.name }

//Element returns the element symbol, as written in columns 77-78.
func (A *Atom) Element() string { return A.element }

//Position returns the x, y and z coordinates, in A.
func (A *Atom) Position() [3]float64 { return A.position }

func (A *Atom) Occupancy() float64 { return A.occupancy }

func (A *Atom) String() string {
	return fmt.Sprintf("Atom{label: %s, number: %d, name: %s, element: %s, position: (%g, %g, %g), occupancy: %g}",
		A.label, A.serial, A.name, A.element, A.position[0], A.position[1], A.position[2], A.occupancy)
}
