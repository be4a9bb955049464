/*
 * plot_test.go, part of godft.
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

package convplot

import (
	"fmt"
	"os"
	"testing"
	"time"

	dft "github.com/rmera/godft"
)

//TestConvPlot builds a synthetic convergence history and plots it. It
//generates test/conv_eband.png and test/conv_deig.png.
func TestConvPlot(Te *testing.T) {
	os.MkdirAll("test", 0755)
	h := new(History)
	deig := 1.0
	eband := -4.0
	for i := 0; i <= 12; i++ {
		s := dft.Step{Iteration: i, Eband: eband, Elapsed: time.Duration(i) * time.Millisecond}
		if i > 0 {
			s.DeigMax = deig
			s.NEigsDone = i / 4
		}
		h.Report(s)
		deig *= 0.2
		eband -= deig
	}
	err := Plot(h, "test/conv", "Davidson convergence")
	if err != nil {
		Te.Error(err)
	}
	for _, name := range []string{"test/conv_eband.png", "test/conv_deig.png"} {
		if _, err := os.Stat(name); err != nil {
			Te.Errorf("plot %s was not written: %v", name, err)
		}
	}
	fmt.Println("convergence plots written")
}

//TestConvPlotEmpty makes sure an empty history is refused instead of
//producing an empty plot.
func TestConvPlotEmpty(Te *testing.T) {
	if err := Plot(new(History), "test/empty", "nothing"); err == nil {
		Te.Error("an empty history should not plot")
	}
}
