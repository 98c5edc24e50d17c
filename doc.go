/*
 * doc.go, part of nanopdb.
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

/*Package nanopdb reads the coordinate part of Protein Data Bank (PDB) files.

Parse takes the text of a PDB file and builds a tree:

	Structure -> Chain -> Residue -> Atom

Only HEADER, CRYST1, ATOM and HETATM records are read. Every other record
is skipped. Atoms are grouped into residues and chains in file order: a new
residue starts whenever the residue number or the chain identifier changes,
and a new chain whenever the chain identifier changes. A chain that appears
twice in a file (A, B, A) gives two Chain objects.

Each level of the tree is a container of the next one. Children are
reached by index (Chain, Residue, Atom), with an Iterator (Iter) or with a
range-over-func sequence (All). Clear drops the children of a container
without changing its length; cleared slots can no longer be reached by
index and are skipped by iteration. Traverse visits the direct children of
a container, so a caller can walk the tree and release it piece by piece.

ReadFile reads and parses a file, decompressing it first if the name ends
in .gz or .zst. The rcsb subpackage downloads entries from the RCSB file
server, and v3 holds the coordinate matrices returned by the Coords
methods.

Parse errors carry the 1-based line number of the offending record. The
error types (LabelTooShortError, RecordTooShortError, FieldParseError) can
be recovered with errors.As; they also implement Error, which records the
functions an error went through on its way up.
*/
package nanopdb
