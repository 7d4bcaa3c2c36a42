/*
 * stats.go, part of gopatchy.
 *
 * Copyright 2024 The gopatchy Authors
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

package clusters

import (
	"fmt"
	"math"

	patchy "github.com/rmera/gopatchy"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Sizes returns the number of particles in each cluster of a system of nparticles
// particles, including one cluster of size 1 for each particle not in clusters.
// It returns an error if the clusters contain more particles than the system.
func Sizes(clusters [][]int, nparticles int) ([]float64, error) {
	bound := 0
	for _, c := range clusters {
		bound += len(c)
	}
	if bound > nparticles {
		return nil, Error{fmt.Sprintf("%d particles in clusters, but only %d in the system", bound, nparticles), "", []string{"Sizes"}, patchy.ErrMalformed}
	}
	ret := make([]float64, 0, len(clusters)+nparticles-bound)
	for _, c := range clusters {
		ret = append(ret, float64(len(c)))
	}
	for i := bound; i < nparticles; i++ {
		ret = append(ret, 1)
	}
	return ret, nil
}

// Summary contains descriptive statistics of the cluster sizes of a system.
type Summary struct {
	N      int //number of clusters
	Mean   float64
	StdDev float64
	Max    float64
}

func (S Summary) String() string {
	return fmt.Sprintf("clusters: %d mean size: %.3f stddev: %.3f largest: %g", S.N, S.Mean, S.StdDev, S.Max)
}

// Stats returns the summary statistics for the given cluster sizes. The standard
// deviation of a single cluster is 0.
func Stats(sizes []float64) Summary {
	var S Summary
	S.N = len(sizes)
	if S.N == 0 {
		return S
	}
	S.Mean, S.StdDev = stat.MeanStdDev(sizes, nil)
	if S.N == 1 || math.IsNaN(S.StdDev) {
		S.StdDev = 0
	}
	S.Max = floats.Max(sizes)
	return S
}

// PlotSizes writes a histogram of the cluster sizes to the file filename. The format
// is taken from the file extension (png, svg, pdf...).
func PlotSizes(sizes []float64, title, filename string) error {
	if len(sizes) == 0 {
		return Error{"no clusters to plot", filename, []string{"PlotSizes"}, patchy.ErrDimension}
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Cluster size"
	p.Y.Label.Text = "Clusters"
	bins := int(floats.Max(sizes))
	if bins > 50 {
		bins = 50
	}
	if bins < 1 {
		bins = 1
	}
	h, err := plotter.NewHist(plotter.Values(sizes), bins)
	if err != nil {
		return errDecorate(err, "PlotSizes")
	}
	p.Add(h)
	p.Add(plotter.NewGrid())
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return errDecorate(err, "PlotSizes")
	}
	return nil
}
