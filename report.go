/*
 * report.go, part of godft.
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

import (
	"fmt"
	"log"
)

// LogReporter writes one line per Step on a standard log.Logger, in the form
//
//	Davidson: 3  Eband: +1.23456789012  deig_max: 1.23e-05  n_eigs_done: 2  t[s]: 0.01
//
// Inner-loop steps are indented by two spaces. Convergence and failure to
// converge each add one explanatory line, so the outcome is always visible in
// the log without inspecting the returned status.
type LogReporter struct {
	Log    *log.Logger
	Prefix string
}

//NewLogReporter returns a LogReporter with the given prefix (usually the
//solver name) writing to l, or to the default logger if l is nil.
func NewLogReporter(prefix string, l *log.Logger) *LogReporter {
	if l == nil {
		l = log.Default()
	}
	return &LogReporter{Log: l, Prefix: prefix}
}

func (R *LogReporter) Report(s Step) {
	prefix := R.Prefix
	if s.InnerLoop {
		prefix = "  " + prefix
	}
	line := fmt.Sprintf("%s: %d  Eband: %+.11f", prefix, s.Iteration, s.Eband)
	if s.DeigMax != 0 {
		line += fmt.Sprintf("  deig_max: %.2e", s.DeigMax)
	}
	if s.NEigsDone != 0 {
		line += fmt.Sprintf("  n_eigs_done: %d", s.NEigsDone)
	}
	line += fmt.Sprintf("  t[s]: %.2f", s.Elapsed.Seconds())
	R.Log.Println(line)
	if s.Converged {
		R.Log.Printf("%s: Converged\n", prefix)
	}
	if s.ConvergeFailed {
		R.Log.Printf("%s: Failed to converge\n", prefix)
	}
}

// SilentReporter discards every Step. Useful for callers that only care about
// the returned Result.
type SilentReporter struct{}

func (SilentReporter) Report(s Step) {}
