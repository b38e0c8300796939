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

/* -------------------------------------------------------------------------- */

type InsulationParameters struct {
  // sliding window size in base pairs
  WindowSize int
  // offset of the window from the diagonal in base pairs
  Offset     int
  // exclude masked bins from the window mean instead of
  // propagating NaN
  Impute     bool
  // divide the index by its chromosome-wide mean
  Normalise  bool
  // log2-transform the normalised index
  Log        bool
}

func DefaultInsulationParameters(windowSize int) InsulationParameters {
  return InsulationParameters{
    WindowSize: windowSize,
    Offset    : 0,
    Impute    : false,
    Normalise : true,
    Log       : true }
}

/* -------------------------------------------------------------------------- */

// Compute the insulation index of the given contact matrix. For every
// bin i the index is the mean contact frequency between the d bins
// upstream and the d bins downstream of i, where d is the window size
// in bins. High values indicate that i lies within a domain, low
// values indicate a domain boundary. Bins closer than d+offset to a
// chromosome edge and masked bins receive NaN.
func InsulationIndex(m *HicMatrix, parameters InsulationParameters) ([]float64, error) {
  binsize, err := m.Regions.Binsize()
  if err != nil {
    return nil, err
  }
  if parameters.WindowSize < binsize {
    return nil, fmt.Errorf("InsulationIndex(): window size %d is smaller than the bin size %d", parameters.WindowSize, binsize)
  }
  d := divIntDown(parameters.WindowSize, binsize)
  o := divIntDown(parameters.Offset,     binsize)

  index := make([]float64, m.N)
  for i := 0; i < m.N; i++ {
    index[i] = math.NaN()
  }
  for _, bounds := range m.Regions.ChromBounds() {
    for i := bounds.From; i < bounds.To; i++ {
      if i-o-d < bounds.From || i+o+d >= bounds.To {
        continue
      }
      if m.IsMasked(i) {
        continue
      }
      index[i] = insulationWindow(m, i, d, o, parameters.Impute)
    }
    if parameters.Normalise {
      normaliseIndex(index[bounds.From:bounds.To], parameters.Log)
    }
  }
  return index, nil
}

// Mean contact frequency in the square window upstream versus
// downstream of bin i.
func insulationWindow(m *HicMatrix, i, d, o int, impute bool) float64 {
  sum := 0.0
  n   := 0
  for j := i-o-d; j < i-o; j++ {
    for k := i+o+1; k <= i+o+d; k++ {
      if m.IsMasked(j) || m.IsMasked(k) {
        if impute {
          continue
        }
        return math.NaN()
      }
      sum += m.At(j, k)
      n   += 1
    }
  }
  if n == 0 {
    return math.NaN()
  }
  return sum/float64(n)
}

func normaliseIndex(index []float64, logScale bool) {
  mean := meanIgnoreNaN(index)
  if math.IsNaN(mean) || mean == 0.0 {
    return
  }
  for i := 0; i < len(index); i++ {
    index[i] /= mean
    if logScale {
      index[i] = math.Log2(index[i])
    }
  }
}
