/*
 * chain.go, part of nanopdb.
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

//Chain is a polymer chain, identified by a single character.
type Chain struct {
	name     byte
	residues slots[Residue]
}

func newChain(name byte) *Chain {
	return &Chain{name: name}
}

//Name returns the chain identifier (column 22 of the ATOM records).
func (C *Chain) Name() byte { return C.name }

//Residue returns the ith residue of the chain, or an *IndexOutOfRangeError
//if i is out of range or the slot was cleared.
func (C *Chain) Residue(i int) (*Residue, error) {
	return C.residues.at("chain", i)
}

func (C *Chain) Len() int { return C.residues.len() }

func (C *Chain) Iter() *Iterator[Residue] { return C.residues.iter() }

func (C *Chain) All() iter.Seq2[int, *Residue] { return C.residues.all() }

//Clear releases all the residues of the chain. Calling it again does nothing.
func (C *Chain) Clear() { C.residues.clear() }

func (C *Chain) Traverse(visit func(child any) error) error {
	return C.residues.traverse(visit)
}

func (C *Chain) addResidue(r *Residue) {
	C.residues.push(r)
}

//addAtom appends a to the last residue of the chain.
func (C *Chain) addAtom(a *Atom) {
	C.residues.last().addAtom(a)
}

func (C *Chain) String() string {
	return fmt.Sprintf("Chain{name: %c}", C.name)
}
