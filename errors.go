/*
 * errors.go, part of nanopdb.
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

	"github.com/cockroachdb/errors"
)

// Error is the interface for errors that all packages in this library implement. The Decorate method
// allows to add and retrieve info from the error, without changing its type or wrapping it around
// something else.
type Error interface {
	Error() string
	//Decorate adds the name of a caller to the error and returns the resulting decoration slice.
	//If passed an empty string, it just returns the current value.
	Decorate(string) []string
}

// decoration holds the callers an error passed through on its way up.
type decoration struct {
	deco []string
}

// Decorate adds new information to the error.
func (d *decoration) Decorate(deco string) []string {
	if deco != "" {
		d.deco = append(d.deco, deco)
	}
	return d.deco
}

// errDecorate decorates err with the caller's name when err implements Error,
// and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}

// LabelTooShortError is returned when a line is too short to hold a record label.
type LabelTooShortError struct {
	decoration
	Line int //1-based
}

func (e *LabelTooShortError) Error() string {
	return fmt.Sprintf("line %d: too short to hold a record label (need %d characters)", e.Line, labelWidth)
}

// RecordTooShortError is returned when a recognized record is shorter than its field span.
type RecordTooShortError struct {
	decoration
	Line   int
	Record string
	Need   int
	Got    int
}

func (e *RecordTooShortError) Error() string {
	return fmt.Sprintf("line %d: %s record has %d characters, at least %d required", e.Line, e.Record, e.Got, e.Need)
}

// FieldParseError is returned when a fixed-column field is not a valid literal of its type.
type FieldParseError struct {
	decoration
	Line  int
	Field string
	Value string
	Err   error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("line %d: invalid %s %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *FieldParseError) Unwrap() error { return e.Err }

// IndexOutOfRangeError is returned by indexed access past the end of a
// container or into a cleared slot.
type IndexOutOfRangeError struct {
	decoration
	Container string
	Index     int
	Len       int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: index %d out of range (len %d)", e.Container, e.Index, e.Len)
}
