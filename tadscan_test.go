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

import "bytes"
import "math"
import "strings"
import "testing"

/* -------------------------------------------------------------------------- */

func TestScanCutoffs(t *testing.T) {

  m := blockMatrix(20, 10, 10.0, 1.0)

  parameters := DefaultScanParameters()
  parameters.WindowSizes = []int{20, 30}
  parameters.Cutoffs     = []float64{-2.0, 0.0, 2.0}
  parameters.Threads     = 2

  result, err := ScanCutoffs(m, parameters)
  if err != nil {
    t.Error(err)
  }
  if len(result.Indices) != 2 || len(result.Cutoffs) != 2 {
    t.Error("test failed")
  }
  for i := 0; i < 2; i++ {
    if len(result.Indices[i]) != m.N {
      t.Error("test failed")
    }
    if len(result.NumTads[i]) != 3 || len(result.MeanLength[i]) != 3 {
      t.Error("test failed")
    }
  }
  // the scan agrees with calling TADs directly
  for i := 0; i < 2; i++ {
    for k := 0; k < 3; k++ {
      tads, err := CallInsulationTads(result.Indices[i], m.Regions, parameters.Cutoffs[k])
      if err != nil {
        t.Error(err)
      }
      if tads.Length() != result.NumTads[i][k] {
        t.Error("test failed")
      }
    }
  }
  // no TADs above the maximum score
  max := maxIgnoreNaN(result.Indices[0])
  tads, err := CallInsulationTads(result.Indices[0], m.Regions, max+1.0)
  if err != nil {
    t.Error(err)
  }
  if tads.Length() != 0 {
    t.Error("test failed")
  }
}

func TestScanCutoffsDefaultGrid(t *testing.T) {

  m := blockMatrix(20, 10, 10.0, 1.0)

  parameters := DefaultScanParameters()
  parameters.Method      = MethodDirectionality
  parameters.WindowSizes = []int{20}
  parameters.NumCutoffs  = 5

  result, err := ScanCutoffs(m, parameters)
  if err != nil {
    t.Error(err)
  }
  cutoffs := result.Cutoffs[0]
  if len(cutoffs) != 5 {
    t.Error("test failed")
  }
  // directionality cutoffs span [0, max|score|]
  if cutoffs[0] != 0.0 {
    t.Error("test failed")
  }
  for k := 1; k < len(cutoffs); k++ {
    if cutoffs[k] <= cutoffs[k-1] {
      t.Error("test failed")
    }
  }
  if math.Abs(cutoffs[4]-maxIgnoreNaN(result.Indices[0])) > 1e-10 {
    t.Error("test failed")
  }
}

func TestScanCutoffsInvalidArguments(t *testing.T) {

  m := blockMatrix(10, 10, 10.0, 1.0)

  parameters := DefaultScanParameters()
  if _, err := ScanCutoffs(m, parameters); err == nil {
    t.Error("test failed")
  }
  parameters.WindowSizes = []int{20}
  parameters.Method      = "zscore"
  if _, err := ScanCutoffs(m, parameters); err == nil {
    t.Error("test failed")
  }
}

func TestScanTable(t *testing.T) {

  m := blockMatrix(10, 10, 10.0, 1.0)

  parameters := DefaultScanParameters()
  parameters.WindowSizes = []int{20}
  parameters.Cutoffs     = []float64{0.0, 1.0}

  result, err := ScanCutoffs(m, parameters)
  if err != nil {
    t.Error(err)
  }
  buffer := bytes.Buffer{}
  if err := result.WriteTable(&buffer, true); err != nil {
    t.Error(err)
  }
  lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
  if len(lines) != 3 {
    t.Error("test failed")
  }
  if !strings.Contains(lines[0], "cutoff") {
    t.Error("test failed")
  }
  if !strings.Contains(lines[1], "insulation") {
    t.Error("test failed")
  }
}
