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

import "bufio"
import "bytes"
import "fmt"
import "math"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// HicMatrix is a dense symmetric Hi-C contact matrix together with the
// genomic bins labeling its rows and columns. Values are stored in
// row-major order. Bins without any observed contact are masked, since
// they typically correspond to unmappable genomic regions; scores
// computed on masked bins are NaN.
type HicMatrix struct {
  Regions Regions
  Values  []float64
  N       int
  masked  []bool
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewHicMatrix(regions Regions, values []float64) (*HicMatrix, error) {
  n := regions.Length()
  if len(values) != n*n {
    return nil, fmt.Errorf("NewHicMatrix(): expected %dx%d values but got %d", n, n, len(values))
  }
  for i := 0; i < n; i++ {
    for j := i+1; j < n; j++ {
      if math.Abs(values[i*n+j]-values[j*n+i]) > 1e-8 {
        return nil, fmt.Errorf("NewHicMatrix(): matrix is not symmetric at (%d, %d)", i, j)
      }
    }
  }
  for i := 0; i < len(values); i++ {
    if math.IsNaN(values[i]) {
      return nil, fmt.Errorf("NewHicMatrix(): matrix contains NaN values")
    }
  }
  m := HicMatrix{regions, values, n, nil}
  m.updateMask()
  return &m, nil
}

func emptyHicMatrix(regions Regions) *HicMatrix {
  n := regions.Length()
  return &HicMatrix{regions, make([]float64, n*n), n, make([]bool, n)}
}

/* -------------------------------------------------------------------------- */

func (m *HicMatrix) At(i, j int) float64 {
  if i < 0 || j < 0 || i >= m.N || j >= m.N {
    panic("At(): index out of bounds")
  }
  return m.Values[i*m.N+j]
}

func (m *HicMatrix) Set(i, j int, value float64) {
  if i < 0 || j < 0 || i >= m.N || j >= m.N {
    panic("Set(): index out of bounds")
  }
  m.Values[i*m.N+j] = value
  m.Values[j*m.N+i] = value
}

// A bin is masked if it has no observed contacts at all.
func (m *HicMatrix) IsMasked(i int) bool {
  return m.masked[i]
}

func (m *HicMatrix) MaskedBins() []int {
  indices := []int{}
  for i := 0; i < m.N; i++ {
    if m.masked[i] {
      indices = append(indices, i)
    }
  }
  return indices
}

func (m *HicMatrix) updateMask() {
  m.masked = make([]bool, m.N)
  for i := 0; i < m.N; i++ {
    sum := 0.0
    for j := 0; j < m.N; j++ {
      sum += m.Values[i*m.N+j]
    }
    m.masked[i] = sum == 0.0
  }
}

/* -------------------------------------------------------------------------- */

// Extract the submatrix given by a sorted list of bin indices.
func (m *HicMatrix) Submatrix(indices []int) (*HicMatrix, error) {
  for k := 0; k < len(indices); k++ {
    if indices[k] < 0 || indices[k] >= m.N {
      return nil, fmt.Errorf("Submatrix(): index %d out of bounds", indices[k])
    }
    if k > 0 && indices[k] <= indices[k-1] {
      return nil, fmt.Errorf("Submatrix(): indices must be sorted and unique")
    }
  }
  n := len(indices)
  values := make([]float64, n*n)
  for i := 0; i < n; i++ {
    for j := 0; j < n; j++ {
      values[i*n+j] = m.Values[indices[i]*m.N+indices[j]]
    }
  }
  return NewHicMatrix(m.Regions.Subset(indices), values)
}

// Extract the submatrix overlapping a region descriptor such as
// `chr12:31000000-34000000'.
func (m *HicMatrix) SubmatrixRegion(str string) (*HicMatrix, error) {
  indices, err := m.Regions.QueryRegion(str)
  if err != nil {
    return nil, err
  }
  return m.Submatrix(indices)
}

/* distance decay
 * -------------------------------------------------------------------------- */

// Expected contact value per bin distance, estimated as the mean over
// all unmasked bin pairs of the same chromosome at that distance.
func (m *HicMatrix) ExpectedValues() []float64 {
  sums   := make([]float64, m.N)
  counts := make([]float64, m.N)

  for _, bounds := range m.Regions.ChromBounds() {
    for i := bounds.From; i < bounds.To; i++ {
      if m.masked[i] {
        continue
      }
      for j := i; j < bounds.To; j++ {
        if m.masked[j] {
          continue
        }
        sums  [j-i] += m.Values[i*m.N+j]
        counts[j-i] += 1.0
      }
    }
  }
  expected := make([]float64, m.N)
  for d := 0; d < m.N; d++ {
    if counts[d] > 0 {
      expected[d] = sums[d]/counts[d]
    }
  }
  return expected
}

// Divide each contact value by the expected value at its distance.
// Inter-chromosomal entries and entries with zero expected value are
// left untouched.
func (m *HicMatrix) ObservedExpected() {
  expected := m.ExpectedValues()

  for _, bounds := range m.Regions.ChromBounds() {
    for i := bounds.From; i < bounds.To; i++ {
      for j := i; j < bounds.To; j++ {
        if e := expected[j-i]; e > 0 {
          m.Values[i*m.N+j] /= e
          m.Values[j*m.N+i]  = m.Values[i*m.N+j]
        }
      }
    }
  }
}

/* i/o
 * -------------------------------------------------------------------------- */

// Import a dense whitespace separated NxN contact matrix. The regions
// argument labels the matrix bins and must have matching length.
func ReadDenseMatrix(filenameMatrix string, regions Regions) (*HicMatrix, error) {
  scanner, closer, err := openFileScanner(filenameMatrix)
  if err != nil {
    return nil, err
  }
  defer closer()

  n      := regions.Length()
  values := make([]float64, 0, n*n)
  rows   := 0

  buf := make([]byte, 1024*1024)
  scanner.Buffer(buf, len(buf))

  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) != n {
      return nil, fmt.Errorf("ReadDenseMatrix(): row %d has %d columns but %d regions are given", rows+1, len(fields), n)
    }
    for j := 0; j < len(fields); j++ {
      v, err := strconv.ParseFloat(fields[j], 64)
      if err != nil {
        return nil, err
      }
      values = append(values, v)
    }
    rows++
  }
  if err := scanner.Err(); err != nil {
    return nil, err
  }
  if rows != n {
    return nil, fmt.Errorf("ReadDenseMatrix(): matrix has %d rows but %d regions are given", rows, n)
  }
  return NewHicMatrix(regions, values)
}

// Import a sparse contact matrix from a three column text file with
// entries `i j weight', where i and j are zero-based bin indices into
// the regions argument. Entries are mirrored onto both triangles;
// missing entries are zero.
func ReadSparseMatrix(filenameMatrix string, regions Regions) (*HicMatrix, error) {
  scanner, closer, err := openFileScanner(filenameMatrix)
  if err != nil {
    return nil, err
  }
  defer closer()

  m := emptyHicMatrix(regions)

  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) < 3 {
      return nil, fmt.Errorf("ReadSparseMatrix(): file must have three columns")
    }
    t1, err := strconv.ParseInt(fields[0], 10, 64)
    if err != nil {
      return nil, err
    }
    t2, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      return nil, err
    }
    t3, err := strconv.ParseFloat(fields[2], 64)
    if err != nil {
      return nil, err
    }
    i := int(t1)
    j := int(t2)
    if i < 0 || j < 0 || i >= m.N || j >= m.N {
      return nil, fmt.Errorf("ReadSparseMatrix(): bin index (%d, %d) out of bounds", i, j)
    }
    if math.IsNaN(t3) {
      return nil, fmt.Errorf("ReadSparseMatrix(): matrix contains NaN values")
    }
    m.Values[i*m.N+j] = t3
    m.Values[j*m.N+i] = t3
  }
  if err := scanner.Err(); err != nil {
    return nil, err
  }
  m.updateMask()

  return m, nil
}

// Export the matrix as a dense whitespace separated text file.
func (m *HicMatrix) ExportDense(filename string, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)

  for i := 0; i < m.N; i++ {
    for j := 0; j < m.N; j++ {
      if j != 0 {
        w.WriteString("\t")
      }
      fmt.Fprintf(w, "%g", m.Values[i*m.N+j])
    }
    w.WriteString("\n")
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}
