/*
 * structure.go, part of nanopdb.
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

//Structure is the root of a parsed PDB file: the header data, the unit cell,
//if any, and the chains in file order.
type Structure struct {
	pdbid          string
	classification string
	date           string
	unitCell       *UnitCell
	chains         slots[Chain]
}

//PDBID returns the ID code from the HEADER record, or "" if there was none.
func (S *Structure) PDBID() string { return S.pdbid }

func (S *Structure) Classification() string { return S.classification }

//Date returns the deposition date, as written in the HEADER record (e.g. 26-APR-05).
func (S *Structure) Date() string { return S.date }

//UnitCell returns the unit cell from the CRYST1 record, or nil if the file had none.
func (S *Structure) UnitCell() *UnitCell { return S.unitCell }

//Chain returns the ith chain, or an *IndexOutOfRangeError if i is out of
//range or the slot was cleared.
func (S *Structure) Chain(i int) (*Chain, error) {
	return S.chains.at("structure", i)
}

func (S *Structure) Len() int { return S.chains.len() }

func (S *Structure) Iter() *Iterator[Chain] { return S.chains.iter() }

func (S *Structure) All() iter.Seq2[int, *Chain] { return S.chains.all() }

//Atoms yields every atom reachable from the structure, in file order.
func (S *Structure) Atoms() iter.Seq[*Atom] {
	return func(yield func(*Atom) bool) {
		for _, c := range S.chains.all() {
			for _, r := range c.residues.all() {
				for _, a := range r.atoms.all() {
					if !yield(a) {
						return
					}
				}
			}
		}
	}
}

//Clear releases the unit cell and all the chains. The number of chain
//slots does not change, and clearing an already cleared structure does nothing.
func (S *Structure) Clear() {
	S.unitCell = nil
	S.chains.clear()
}

//Traverse calls visit on the unit cell, if present, and then on every chain
//the structure still owns.
func (S *Structure) Traverse(visit func(child any) error) error {
	if S.unitCell != nil {
		if err := visit(S.unitCell); err != nil {
			return err
		}
	}
	return S.chains.traverse(visit)
}

func (S *Structure) setHeader(pdbid, classification, date string) {
	S.pdbid = pdbid
	S.classification = classification
	S.date = date
}

func (S *Structure) setUnitCell(u *UnitCell) {
	S.unitCell = u
}

func (S *Structure) addChain(c *Chain) {
	S.chains.push(c)
}

func (S *Structure) addResidue(r *Residue) {
	S.chains.last().addResidue(r)
}

func (S *Structure) addAtom(a *Atom) {
	S.chains.last().addAtom(a)
}

func (S *Structure) String() string {
	return fmt.Sprintf("Structure{pdbid: %s, classification: %s, date: %s}", S.pdbid, S.classification, S.date)
}
