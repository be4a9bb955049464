/*
 * errors.go, part of godft.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package dft

//This error machinery predates the "wrapping" error system of Go (i.e. the "%w" directive and
//the errors package). We should avoid using the Decorate method and/or make it use the "%w"
//directive internally.

// CError is the concrete error type for the root package. It satisfies
// dft.Error and dft.CriticalError.
type CError struct {
	message  string
	deco     []string
	critical bool
}

func (err CError) Error() string { return err.message }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice. If given an empty string it just returns the
//current decoration.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error can be recovered from locally or not.
func (err CError) Critical() bool { return err.critical }

//errDecorate asserts that err implements dft.Error and decorates it with the
//caller's name before returning it. It panics on a non-dft.Error error.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

// PanicMsg is a message used for panics. It does satisfy the error interface,
// but for errors use CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrShape           = PanicMsg("goDFT: Dimension mismatch")
	ErrNilOrbitals     = PanicMsg("goDFT: Given nil or empty Orbitals")
	ErrBlockMismatch   = PanicMsg("goDFT: Orbital blocks differ in spin/k-point layout")
	ErrBandOutOfRange  = PanicMsg("goDFT: Band index out of range")
	ErrBasisMismatch   = PanicMsg("goDFT: Basis does not match the orbital block")
	ErrNegativeKinetic = PanicMsg("goDFT: Negative kinetic energy in basis")
)
