/*
 * parser.go, part of nanopdb.
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

import "strings"

//Parse reads the PDB-formatted text and returns the Structure it describes.
//HEADER, CRYST1, ATOM and HETATM records are read, other records are ignored.
//Every line must be at least 6 characters long.
//The first malformed line aborts the whole parse: the returned error is one of
//*LabelTooShortError, *RecordTooShortError or *FieldParseError, and carries
//the 1-based number of the offending line.
func Parse(text string) (*Structure, error) {
	structure := new(Structure)
	b := newBuilder(structure)
	for i, line := range splitLines(text) {
		if err := parseLine(structure, b, line, i+1); err != nil {
			return nil, errDecorate(err, "Parse")
		}
	}
	return structure, nil
}

func parseLine(structure *Structure, b *builder, line string, ln int) error {
	if len(line) < labelWidth {
		return &LabelTooShortError{Line: ln}
	}
	switch {
	case line[0:4] == "ATOM":
		rec, err := readAtom(line, ln, ATOM)
		if err != nil {
			return err
		}
		b.add(rec)
	case line[0:6] == "HETATM":
		rec, err := readAtom(line, ln, HETATM)
		if err != nil {
			return err
		}
		b.add(rec)
	case line[0:6] == "HEADER":
		h, err := readHeader(line, ln)
		if err != nil {
			return err
		}
		structure.setHeader(h.pdbid, h.classification, h.date)
	case line[0:6] == "CRYST1":
		u, err := readCryst1(line, ln)
		if err != nil {
			return err
		}
		structure.setUnitCell(u)
	}
	return nil
}

//splitLines splits text on newlines, dropping a trailing carriage return from
//each line. A final newline does not start a new, empty, line.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
