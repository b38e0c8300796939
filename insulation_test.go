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

func TestInsulationIndex(t *testing.T) {

  m := blockMatrix(10, 10, 10.0, 1.0)

  parameters := InsulationParameters{WindowSize: 20}

  index, err := InsulationIndex(m, parameters)
  if err != nil {
    t.Error(err)
  }
  // bins closer than the window to the chromosome edge
  if !math.IsNaN(index[0]) || !math.IsNaN(index[1]) ||
    (!math.IsNaN(index[8]) || !math.IsNaN(index[9])) {
    t.Error("test failed")
  }
  // intra-block windows
  if index[2] != 10.0 || index[7] != 10.0 {
    t.Error("test failed")
  }
  // windows spanning the block boundary between bins 4 and 5
  if index[4] != 1.0 || index[5] != 1.0 {
    t.Error("test failed")
  }
  // boundary bins score lower than intra-block bins
  if index[4] >= index[2] {
    t.Error("test failed")
  }
}

func TestInsulationIndexNormalised(t *testing.T) {

  m := blockMatrix(10, 10, 10.0, 1.0)

  parameters := InsulationParameters{WindowSize: 20, Normalise: true}

  index, err := InsulationIndex(m, parameters)
  if err != nil {
    t.Error(err)
  }
  mean := meanIgnoreNaN(index)
  if math.Abs(mean-1.0) > 1e-10 {
    t.Error("test failed")
  }
  // normalisation preserves the ordering
  if index[4] >= index[2] {
    t.Error("test failed")
  }
}

func TestInsulationIndexMasked(t *testing.T) {

  genome  := NewGenome([]string{"chr1"}, []int{80})
  regions := BinGenome(genome, 10)

  values := make([]float64, 64)
  for i := 0; i < 8; i++ {
    for j := 0; j < 8; j++ {
      if i == 2 || j == 2 {
        // bin 2 has no contacts
        continue
      }
      values[i*8+j] = 5.0
    }
  }
  m, err := NewHicMatrix(regions, values)
  if err != nil {
    t.Error(err)
  }
  parameters := InsulationParameters{WindowSize: 20}

  index, err := InsulationIndex(m, parameters)
  if err != nil {
    t.Error(err)
  }
  // the masked bin and windows touching it yield NaN
  if !math.IsNaN(index[2]) || !math.IsNaN(index[3]) || !math.IsNaN(index[4]) {
    t.Error("test failed")
  }
  if index[5] != 5.0 {
    t.Error("test failed")
  }

  // imputation skips the masked bin instead
  parameters.Impute = true

  index, err = InsulationIndex(m, parameters)
  if err != nil {
    t.Error(err)
  }
  if !math.IsNaN(index[2]) {
    t.Error("test failed")
  }
  if index[4] != 5.0 || index[5] != 5.0 {
    t.Error("test failed")
  }
}

func TestInsulationIndexWindowTooSmall(t *testing.T) {

  m := blockMatrix(10, 10, 10.0, 1.0)

  if _, err := InsulationIndex(m, InsulationParameters{WindowSize: 5}); err == nil {
    t.Error("test failed")
  }
}
