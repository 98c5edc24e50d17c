/*
 * records.go, part of nanopdb.
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

//Minimum line lengths for each record kind.
const (
	labelWidth  = 6
	headerWidth = 66
	cryst1Width = 54
	atomWidth   = 78
)

func checkWidth(line string, ln, need int, record string) error {
	if len(line) < need {
		return &RecordTooShortError{Line: ln, Record: record, Need: need, Got: len(line)}
	}
	return nil
}

type header struct {
	pdbid          string
	classification string
	date           string
}

func readHeader(line string, ln int) (header, error) {
	if err := checkWidth(line, ln, headerWidth, "HEADER"); err != nil {
		return header{}, err
	}
	return header{
		classification: field(line, 10, 50),
		date:           field(line, 50, 59),
		pdbid:          field(line, 62, 66),
	}, nil
}

var (
	cryst1Bounds = []int{6, 15, 24, 33, 40, 47, 54}
	cryst1Names  = []string{"a", "b", "c", "alpha", "beta", "gamma"}
)

func readCryst1(line string, ln int) (*UnitCell, error) {
	if err := checkWidth(line, ln, cryst1Width, "CRYST1"); err != nil {
		return nil, err
	}
	p, err := floatFields(line, ln, cryst1Bounds, cryst1Names)
	if err != nil {
		return nil, err
	}
	return NewUnitCell(p[0], p[1], p[2], p[3], p[4], p[5]), nil
}

//atomRecord is a decoded ATOM/HETATM line: the atom itself plus the data
//the builder needs to place it.
type atomRecord struct {
	atom          *Atom
	chain         byte
	residueNumber int
	residueName   string
}

var (
	coordBounds = []int{30, 38, 46, 54, 60}
	coordNames  = []string{"x", "y", "z", "occupancy"}
)

func readAtom(line string, ln int, label AtomType) (atomRecord, error) {
	if err := checkWidth(line, ln, atomWidth, label.String()); err != nil {
		return atomRecord{}, err
	}
	serial, err := fieldUint(line, ln, 6, 11, "serial")
	if err != nil {
		return atomRecord{}, err
	}
	resnum, err := fieldInt(line, ln, 22, 26, "residue number")
	if err != nil {
		return atomRecord{}, err
	}
	c, err := floatFields(line, ln, coordBounds, coordNames)
	if err != nil {
		return atomRecord{}, err
	}
	atom := NewAtom(label, serial, field(line, 12, 16), field(line, 76, 78), [3]float64{c[0], c[1], c[2]}, c[3])
	return atomRecord{
		atom:          atom,
		chain:         line[21],
		residueNumber: resnum,
		residueName:   line[17:20], //untrimmed, always 3 characters
	}, nil
}
