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
import "io"
import "math"

import "github.com/pbenner/threadpool"
import "github.com/vaquerizaslab/tadtool/lib/progress"

/* -------------------------------------------------------------------------- */

const (
  MethodInsulation     = "insulation"
  MethodDirectionality = "directionality"
)

type ScanParameters struct {
  // insulation or directionality
  Method      string
  // window sizes in base pairs
  WindowSizes []int
  // explicit cutoffs; if empty, NumCutoffs values spanning the
  // score range of each window size are used
  Cutoffs     []float64
  NumCutoffs  int
  // parameters for the insulation index; the window size field is
  // overridden for every scanned window
  Insulation  InsulationParameters
  Threads     int
  // show a progress bar on stderr
  Status      bool
}

func DefaultScanParameters() ScanParameters {
  return ScanParameters{
    Method     : MethodInsulation,
    NumCutoffs : 20,
    Insulation : DefaultInsulationParameters(0),
    Threads    : 1 }
}

// ScanResult holds, for every combination of window size and cutoff,
// the number of called TADs and their mean length. The score vectors
// are kept for plotting.
type ScanResult struct {
  Method      string
  WindowSizes []int
  Indices     [][]float64
  Cutoffs     [][]float64
  NumTads     [][]int
  MeanLength  [][]float64
}

/* -------------------------------------------------------------------------- */

// Scan a grid of window sizes and cutoffs on the given matrix. This is
// the parameter exploration underlying cutoff selection: for every
// window size the score vector is computed once and TADs are called at
// every cutoff. Window sizes are processed in parallel.
func ScanCutoffs(m *HicMatrix, parameters ScanParameters) (*ScanResult, error) {
  if len(parameters.WindowSizes) == 0 {
    return nil, fmt.Errorf("ScanCutoffs(): no window sizes given")
  }
  if len(parameters.Cutoffs) == 0 && parameters.NumCutoffs < 2 {
    return nil, fmt.Errorf("ScanCutoffs(): invalid number of cutoffs")
  }
  switch parameters.Method {
  case MethodInsulation:
  case MethodDirectionality:
  default:
    return nil, fmt.Errorf("ScanCutoffs(): invalid method `%s'", parameters.Method)
  }
  n := len(parameters.WindowSizes)

  result := ScanResult{}
  result.Method      = parameters.Method
  result.WindowSizes = parameters.WindowSizes
  result.Indices     = make([][]float64, n)
  result.Cutoffs     = make([][]float64, n)
  result.NumTads     = make([][]int,     n)
  result.MeanLength  = make([][]float64, n)

  pool := threadpool.New(parameters.Threads, 100*parameters.Threads)
  errs := make([]error, n)

  g := pool.NewJobGroup()

  for i_ := 0; i_ < n; i_++ {
    // make a thread safe copy of i_
    i := i_
    pool.AddJob(g, func(pool threadpool.ThreadPool, erf func() error) error {
      errs[i] = scanWindow(m, parameters, &result, i)
      return errs[i]
    })
    if parameters.Status {
      progress.New(n, 100).PrintStderr(i_+1)
    }
  }
  pool.Wait(g)

  for i := 0; i < n; i++ {
    if errs[i] != nil {
      return nil, errs[i]
    }
  }
  return &result, nil
}

func scanWindow(m *HicMatrix, parameters ScanParameters, result *ScanResult, i int) error {
  var index []float64
  var err     error

  switch parameters.Method {
  case MethodInsulation:
    p := parameters.Insulation
    p.WindowSize = parameters.WindowSizes[i]
    index, err = InsulationIndex(m, p)
  case MethodDirectionality:
    index, err = DirectionalityIndex(m, parameters.WindowSizes[i])
  }
  if err != nil {
    return err
  }
  cutoffs := parameters.Cutoffs
  if len(cutoffs) == 0 {
    cutoffs = defaultCutoffs(parameters.Method, index, parameters.NumCutoffs)
  }
  numTads    := make([]int,     len(cutoffs))
  meanLength := make([]float64, len(cutoffs))

  for k := 0; k < len(cutoffs); k++ {
    var tads Tads
    switch parameters.Method {
    case MethodInsulation:
      tads, err = CallInsulationTads(index, m.Regions, cutoffs[k])
    case MethodDirectionality:
      tads, err = CallDirectionalityTads(index, m.Regions, cutoffs[k])
    }
    if err != nil {
      return err
    }
    numTads   [k] = tads.Length()
    meanLength[k] = tads.MeanLength()
  }
  result.Indices   [i] = index
  result.Cutoffs   [i] = cutoffs
  result.NumTads   [i] = numTads
  result.MeanLength[i] = meanLength

  return nil
}

// Evenly spaced cutoffs spanning the observed score range. The
// directionality index is thresholded symmetrically, hence its
// cutoffs start at zero.
func defaultCutoffs(method string, index []float64, n int) []float64 {
  min := math.Inf( 1)
  max := math.Inf(-1)
  for i := 0; i < len(index); i++ {
    if math.IsNaN(index[i]) {
      continue
    }
    if index[i] < min {
      min = index[i]
    }
    if index[i] > max {
      max = index[i]
    }
  }
  if math.IsInf(min, 1) {
    return []float64{0.0}
  }
  if method == MethodDirectionality {
    max = math.Max(math.Abs(min), math.Abs(max))
    min = 0.0
  }
  cutoffs := make([]float64, n)
  for k := 0; k < n; k++ {
    cutoffs[k] = min + float64(k)*(max-min)/float64(n-1)
  }
  return cutoffs
}

/* i/o
 * -------------------------------------------------------------------------- */

// Write the scan result as a whitespace separated table with one row
// per window size and cutoff combination.
func (result *ScanResult) WriteTable(w io.Writer, header bool) error {
  if header {
    if _, err := fmt.Fprintf(w, "%14s %12s %12s %8s %14s\n",
      "method", "window", "cutoff", "n", "mean_length"); err != nil {
      return err
    }
  }
  for i := 0; i < len(result.WindowSizes); i++ {
    for k := 0; k < len(result.Cutoffs[i]); k++ {
      if _, err := fmt.Fprintf(w, "%14s %12d %12.6f %8d %14.1f\n",
        result.Method,
        result.WindowSizes[i],
        result.Cutoffs    [i][k],
        result.NumTads    [i][k],
        result.MeanLength [i][k]); err != nil {
        return err
      }
    }
  }
  return nil
}

func (result *ScanResult) ExportTable(filename string, header, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)

  if err := result.WriteTable(w, header); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}
