/*
 * unitcell.go, part of nanopdb.
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

import "fmt"

//UnitCell holds the lattice parameters from a CRYST1 record.
//Lengths are in A, angles in degrees.
type UnitCell struct {
	a, b, c            float64
	alpha, beta, gamma float64
}

func NewUnitCell(a, b, c, alpha, beta, gamma float64) *UnitCell {
	return &UnitCell{a: a, b: b, c: c, alpha: alpha, beta: beta, gamma: gamma}
}

func (U *UnitCell) A() float64     { return U.a }
func (U *UnitCell) B() float64     { return U.b }
func (U *UnitCell) C() float64     { return U.c }
func (U *UnitCell) Alpha() float64 { return U.alpha }
func (U *UnitCell) Beta() float64  { return U.beta }
func (U *UnitCell) Gamma() float64 { return U.gamma }

func (U *UnitCell) String() string {
	return fmt.Sprintf("UnitCell{a: %g, b: %g, c: %g, alpha: %g, beta: %g, gamma: %g}",
		U.a, U.b, U.c, U.alpha, U.beta, U.gamma)
}
