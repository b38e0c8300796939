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

func TestGenomeImport(t *testing.T) {

  genome := Genome{}
  if err := genome.Import("genome_test.sizes"); err != nil {
    t.Error(err)
  }
  if genome.Length() != 2 {
    t.Error("test failed")
  }
  if length, err := genome.SeqLength("chr1"); err != nil || length != 35 {
    t.Error("test failed")
  }
  if _, err := genome.SeqLength("chrX"); err == nil {
    t.Error("test failed")
  }
  if n, err := genome.NumBins("chr1", 10); err != nil || n != 4 {
    t.Error("test failed")
  }
  if n, err := genome.NumBins("chr2", 10); err != nil || n != 2 {
    t.Error("test failed")
  }
}
