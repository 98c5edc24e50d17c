/*
 * residue.go, part of nanopdb.
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
	"fmt"
	"iter"
)

//Residue is a numbered, named group of atoms (an amino acid, a nucleotide,
//a ligand...). The number is signed since some files use negative or
//sentinel residue numbers.
type Residue struct {
	number int
	name   string
	atoms  slots[Atom]
}

func newResidue(number int, name string) *Residue {
	return &Residue{number: number, name: name}
}

func (R *Residue) Number() int { return R.number }

//Name returns the three-character residue name, as written in the file.
func (R *Residue) Name() string { return R.name }

//Atom returns the ith atom of the residue, or an *IndexOutOfRangeError
//if i is out of range or the slot was cleared.
func (R *Residue) Atom(i int) (*Atom, error) {
	return R.atoms.at("residue", i)
}

//Len returns the number of atom slots, cleared ones included.
func (R *Residue) Len() int { return R.atoms.len() }

//Iter returns a new iterator over the atoms of the residue.
func (R *Residue) Iter() *Iterator[Atom] { return R.atoms.iter() }

//All yields the slot index and the atom for every atom still owned by the residue.
func (R *Residue) All() iter.Seq2[int, *Atom] { return R.atoms.all() }

//Clear releases all the atoms. The length of the residue does not change.
func (R *Residue) Clear() { R.atoms.clear() }

//Traverse calls visit for every atom the residue still owns, and stops
//at the first error.
func (R *Residue) Traverse(visit func(child any) error) error {
	return R.atoms.traverse(visit)
}

func (R *Residue) addAtom(a *Atom) {
	R.atoms.push(a)
}

func (R *Residue) String() string {
	return fmt.Sprintf("Residue{number: %d, name: %s}", R.number, R.name)
}
