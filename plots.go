/* Copyright (C) 2017 Vaquerizas lab
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package tadtool

/* -------------------------------------------------------------------------- */

import "fmt"
import "math"

import "gonum.org/v1/plot"
import "gonum.org/v1/plot/palette"
import "gonum.org/v1/plot/plotter"
import "gonum.org/v1/plot/plotutil"
import "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

// Adapter exposing a HicMatrix as a plotter grid. Grid coordinates are
// genomic positions if the matrix covers a single chromosome and bin
// indices otherwise.
type matrixGrid struct {
  matrix *HicMatrix
  coords []float64
}

func newMatrixGrid(m *HicMatrix) matrixGrid {
  coords := make([]float64, m.N)
  single := true
  for i := 1; i < m.N; i++ {
    if m.Regions.Seqnames[i] != m.Regions.Seqnames[0] {
      single = false
      break
    }
  }
  for i := 0; i < m.N; i++ {
    if single {
      coords[i] = float64(m.Regions.Ranges[i].From+m.Regions.Ranges[i].To)/2.0
    } else {
      coords[i] = float64(i)
    }
  }
  return matrixGrid{m, coords}
}

func (g matrixGrid) Dims() (int, int) {
  return g.matrix.N, g.matrix.N
}

func (g matrixGrid) X(c int) float64 {
  return g.coords[c]
}

func (g matrixGrid) Y(r int) float64 {
  return g.coords[r]
}

func (g matrixGrid) Z(c, r int) float64 {
  return g.matrix.At(r, c)
}

/* -------------------------------------------------------------------------- */

// Plot the contact matrix as a heatmap. Contact values are
// log-transformed with a pseudocount of one to make the distance
// decay visible. The output format is determined by the filename
// extension (e.g. pdf or png).
func PlotMatrix(m *HicMatrix, filename string) error {
  if m.N == 0 {
    return fmt.Errorf("PlotMatrix(): empty matrix")
  }
  t := &HicMatrix{m.Regions.Clone(), make([]float64, len(m.Values)), m.N, m.masked}
  for i := 0; i < len(m.Values); i++ {
    t.Values[i] = math.Log(m.Values[i]+1.0)
  }
  h := plotter.NewHeatMap(newMatrixGrid(t), palette.Heat(32, 1))

  p := plot.New()
  p.Title.Text   = m.Regions.Seqnames[0]
  p.X.Label.Text = "position"
  p.Y.Label.Text = "position"
  p.Add(h)

  return p.Save(6*vg.Inch, 6*vg.Inch, filename)
}

/* -------------------------------------------------------------------------- */

// Line plot of score vectors along the matrix bins, one line per
// window size, with a horizontal rule at the cutoff. NaN values
// produce gaps in the data.
func PlotScores(m *HicMatrix, windowSizes []int, indices [][]float64, cutoff float64, filename string) error {
  if m.N == 0 {
    return fmt.Errorf("PlotScores(): empty matrix")
  }
  if len(windowSizes) != len(indices) {
    return fmt.Errorf("PlotScores(): got %d score vectors for %d window sizes", len(indices), len(windowSizes))
  }
  grid := newMatrixGrid(m)

  p := plot.New()
  p.Title.Text   = "score tracks"
  p.X.Label.Text = "position"
  p.Y.Label.Text = "score"

  args := []interface{}{}
  for i := 0; i < len(indices); i++ {
    if len(indices[i]) != m.N {
      return fmt.Errorf("PlotScores(): score vector %d has invalid length", i)
    }
    xy := plotter.XYs{}
    for k := 0; k < m.N; k++ {
      if math.IsNaN(indices[i][k]) {
        continue
      }
      xy = append(xy, plotter.XY{X: grid.coords[k], Y: indices[i][k]})
    }
    args = append(args, fmt.Sprintf("window %d", windowSizes[i]), xy)
  }
  // cutoff rule
  if !math.IsNaN(cutoff) {
    xy := plotter.XYs{
      {X: grid.coords[0],     Y: cutoff},
      {X: grid.coords[m.N-1], Y: cutoff}}
    args = append(args, "cutoff", xy)
  }
  if err := plotutil.AddLines(p, args...); err != nil {
    return err
  }
  return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}

/* -------------------------------------------------------------------------- */

// Plot the scan landscape: number of called TADs as a function of the
// cutoff, one line per window size. The elbow of these curves is a
// good starting point for selecting a cutoff.
func PlotScanLandscape(result *ScanResult, filename string) error {
  p := plot.New()
  p.Title.Text   = fmt.Sprintf("%s index cutoff scan", result.Method)
  p.X.Label.Text = "cutoff"
  p.Y.Label.Text = "number of TADs"

  args := []interface{}{}
  for i := 0; i < len(result.WindowSizes); i++ {
    xy := make(plotter.XYs, len(result.Cutoffs[i]))
    for k := 0; k < len(result.Cutoffs[i]); k++ {
      xy[k].X = result.Cutoffs[i][k]
      xy[k].Y = float64(result.NumTads[i][k])
    }
    args = append(args, fmt.Sprintf("window %d", result.WindowSizes[i]), xy)
  }
  if err := plotutil.AddLines(p, args...); err != nil {
    return err
  }
  return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}
