/*
 * reduce.go, part of godft.
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

// Serial is the Reducer for a run with a single partition: every reduction is
// the identity and broadcasts are no-ops. Real communication backends (MPI and
// friends) live outside this library; they only need to satisfy Reducer.
type Serial struct{}

func (Serial) Sum(x float64) float64 { return x }

func (Serial) Max(x float64) float64 { return x }

func (Serial) Min(n int) int { return n }

func (Serial) Broadcast(x []float64) {}
