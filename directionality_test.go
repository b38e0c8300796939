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

import "math"
import "testing"

/* -------------------------------------------------------------------------- */

func TestDirectionalityIndex(t *testing.T) {

  m := blockMatrix(10, 10, 10.0, 1.0)

  index, err := DirectionalityIndex(m, 20)
  if err != nil {
    t.Error(err)
  }
  // bins closer than the window to the chromosome edge
  if !math.IsNaN(index[0]) || !math.IsNaN(index[1]) ||
    (!math.IsNaN(index[8]) || !math.IsNaN(index[9])) {
    t.Error("test failed")
  }
  // block interiors have balanced contacts
  if index[2] != 0.0 || index[7] != 0.0 {
    t.Error("test failed")
  }
  // last bin of the first block is upstream biased, first bin of the
  // second block downstream biased
  if index[4] >= 0.0 || index[5] <= 0.0 {
    t.Error("test failed")
  }
  if math.Abs(index[4]+index[5]) > 1e-10 {
    t.Error("test failed")
  }
}

func TestDirectionalityIndexZeroContacts(t *testing.T) {

  genome  := NewGenome([]string{"chr1"}, []int{50})
  regions := BinGenome(genome, 10)

  // bin 2 only touches itself, row sums stay positive
  values := []float64{
    1, 1, 0, 1, 1,
    1, 1, 0, 1, 1,
    0, 0, 1, 0, 0,
    1, 1, 0, 1, 1,
    1, 1, 0, 1, 1}

  m, err := NewHicMatrix(regions, values)
  if err != nil {
    t.Error(err)
  }
  index, err := DirectionalityIndex(m, 10)
  if err != nil {
    t.Error(err)
  }
  if index[2] != 0.0 {
    t.Error("test failed")
  }
}
