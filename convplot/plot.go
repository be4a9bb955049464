/*
 * plot.go, part of godft.
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

/*Package convplot collects the progress records of an iterative
diagonalization and turns them into convergence plots: band energy against
iteration, and the largest eigenvalue change against iteration on a log
scale.*/
package convplot

import (
	"fmt"

	dft "github.com/rmera/godft"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// History is a dft.Reporter that keeps every Step it is given. If Next is
// not nil each Step is forwarded to it, so a History can sit between a
// solver and its log reporter.
type History struct {
	Steps []dft.Step
	Next  dft.Reporter
}

func (H *History) Report(s dft.Step) {
	H.Steps = append(H.Steps, s)
	if H.Next != nil {
		H.Next.Report(s)
	}
}

/*Plot produces plots, in png format, for the convergence history H: the
  band-energy sum against iteration as basename_eband.png, and the largest
  per-iteration eigenvalue change against iteration, on a log scale, as
  basename_deig.png. Returns an error*/
func Plot(H *History, basename, title string) error {
	if H == nil || len(H.Steps) == 0 {
		return Error{"Given nil or empty history", []string{"Plot"}, true}
	}
	eband := make(plotter.XYs, 0, len(H.Steps))
	deig := make(plotter.XYs, 0, len(H.Steps))
	for _, s := range H.Steps {
		eband = append(eband, plotter.XY{X: float64(s.Iteration), Y: s.Eband})
		if s.DeigMax > 0 { //iteration 0 carries no eigenvalue change
			deig = append(deig, plotter.XY{X: float64(s.Iteration), Y: s.DeigMax})
		}
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Eband"
	p.Add(plotter.NewGrid())
	l, err := plotter.NewLine(eband)
	if err != nil {
		return Error{err.Error(), []string{"plotter.NewLine", "Plot"}, true}
	}
	p.Add(l)
	if err := p.Save(5*vg.Inch, 4*vg.Inch, basename+"_eband.png"); err != nil {
		return Error{err.Error(), []string{"plot.Save", "Plot"}, true}
	}

	if len(deig) == 0 {
		return nil //a 0-iteration run has no eigenvalue changes to plot
	}
	q := plot.New()
	q.Title.Text = title
	q.X.Label.Text = "Iteration"
	q.Y.Label.Text = "deig_max"
	q.Y.Scale = plot.LogScale{}
	q.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	q.Add(plotter.NewGrid())
	m, err := plotter.NewLine(deig)
	if err != nil {
		return Error{err.Error(), []string{"plotter.NewLine", "Plot"}, true}
	}
	q.Add(m)
	if err := q.Save(5*vg.Inch, 4*vg.Inch, basename+"_deig.png"); err != nil {
		return Error{err.Error(), []string{"plot.Save", "Plot"}, true}
	}
	return nil
}

//Errors

// Error is the error type for the convplot package. It fulfills dft.Error
// and dft.CriticalError.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("convplot: %s", err.message)
}

//Decorate adds new information to the error.
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }
