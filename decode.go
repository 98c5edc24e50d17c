/*
 * decode.go, part of nanopdb.
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
	"strconv"
	"strings"
)

//The decoders below take the columns [from, to) of line. The caller
//checks that the line is long enough before decoding anything.
//ln is the 1-based line number, used only for errors.

//field returns the trimmed content of the columns.
func field(line string, from, to int) string {
	return strings.TrimSpace(line[from:to])
}

func fieldInt(line string, ln, from, to int, name string) (int, error) {
	s := field(line, from, to)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &FieldParseError{Line: ln, Field: name, Value: s, Err: err}
	}
	return v, nil
}

func fieldUint(line string, ln, from, to int, name string) (uint, error) {
	s := field(line, from, to)
	v, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, &FieldParseError{Line: ln, Field: name, Value: s, Err: err}
	}
	return uint(v), nil
}

func fieldFloat(line string, ln, from, to int, name string) (float64, error) {
	s := field(line, from, to)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &FieldParseError{Line: ln, Field: name, Value: s, Err: err}
	}
	return v, nil
}

//floatFields decodes consecutive float columns. bounds holds len(names)+1
//column boundaries.
func floatFields(line string, ln int, bounds []int, names []string) ([]float64, error) {
	ret := make([]float64, len(names))
	var err error
	for i, name := range names {
		ret[i], err = fieldFloat(line, ln, bounds[i], bounds[i+1], name)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}
