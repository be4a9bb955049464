/*
 * doc.go, part of godft.
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

/*Package wfn reads and writes compressed orbital checkpoint files: the full
coefficient block of a calculation plus its eigenvalues, with an arbitrary
key=value header for whatever metadata the caller wants to carry (cutoffs,
lattice, iteration counts). The payload is plain text at full float64
precision, compressed with zstd, or with gzip when the file name ends in .gz.
A checkpoint written on one machine restarts a diagonalization on any other,
since nothing binary or architecture-dependent is stored.*/
package wfn
