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

// Compute the directionality index of the given contact matrix. For
// every bin i the index measures the degree to which contacts of i
// are biased towards its upstream or downstream neighborhood of the
// given window size. Bins at domain starts show a strong downstream
// bias (positive index), bins at domain ends a strong upstream bias
// (negative index). Bins closer than the window size to a chromosome
// edge and masked bins receive NaN.
func DirectionalityIndex(m *HicMatrix, windowSize int) ([]float64, error) {
  binsize, err := m.Regions.Binsize()
  if err != nil {
    return nil, err
  }
  if windowSize < binsize {
    return nil, fmt.Errorf("DirectionalityIndex(): window size %d is smaller than the bin size %d", windowSize, binsize)
  }
  d := divIntDown(windowSize, binsize)

  index := make([]float64, m.N)
  for i := 0; i < m.N; i++ {
    index[i] = math.NaN()
  }
  for _, bounds := range m.Regions.ChromBounds() {
    for i := bounds.From; i < bounds.To; i++ {
      if i-d < bounds.From || i+d >= bounds.To {
        continue
      }
      if m.IsMasked(i) {
        continue
      }
      index[i] = directionalityValue(m, i, d)
    }
  }
  return index, nil
}

// Directionality statistic of bin i: with upstream contact sum A,
// downstream contact sum B and E = (A+B)/2,
//
//   DI = sign(B-A) * ((A-E)^2 + (B-E)^2) / E
//
// which is zero if the bin has no contacts within the window.
func directionalityValue(m *HicMatrix, i, d int) float64 {
  a := 0.0
  b := 0.0
  for j := i-d; j < i; j++ {
    if m.IsMasked(j) {
      continue
    }
    a += m.At(i, j)
  }
  for j := i+1; j <= i+d; j++ {
    if m.IsMasked(j) {
      continue
    }
    b += m.At(i, j)
  }
  e := (a+b)/2.0
  if e == 0.0 {
    return 0.0
  }
  di := ((a-e)*(a-e) + (b-e)*(b-e))/e
  if b < a {
    di = -di
  }
  return di
}
