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

import "testing"

/* -------------------------------------------------------------------------- */

func TestPlotEmptyMatrix(t *testing.T) {

  m := emptyHicMatrix(Regions{})

  if err := PlotMatrix(m, "unused.pdf"); err == nil {
    t.Error("test failed")
  }
  if err := PlotScores(m, []int{10}, [][]float64{{}}, 0.0, "unused.pdf"); err == nil {
    t.Error("test failed")
  }
}
