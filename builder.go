/*
 * builder.go, part of nanopdb.
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

import "math"

//builder places atoms in the chain/residue tree of a structure, one record at a time.
//It only ever looks at the last chain and the last residue, so the atoms of a
//residue, and the residues of a chain, must be contiguous in the file. A chain
//identifier that shows up again after another chain starts a new chain.
type builder struct {
	structure   *Structure
	open        bool //false until the first chain is created
	lastChain   byte
	lastResidue int
}

func newBuilder(s *Structure) *builder {
	return &builder{structure: s, lastChain: ' ', lastResidue: math.MinInt}
}

func (b *builder) add(rec atomRecord) {
	switch {
	case b.open && rec.chain == b.lastChain && rec.residueNumber == b.lastResidue:
		b.structure.addAtom(rec.atom)
	case b.open && rec.chain == b.lastChain:
		b.structure.addResidue(newResidue(rec.residueNumber, rec.residueName))
		b.structure.addAtom(rec.atom)
		b.lastResidue = rec.residueNumber
	default:
		b.structure.addChain(newChain(rec.chain))
		b.structure.addResidue(newResidue(rec.residueNumber, rec.residueName))
		b.structure.addAtom(rec.atom)
		b.open = true
		b.lastChain = rec.chain
		b.lastResidue = rec.residueNumber
	}
}
