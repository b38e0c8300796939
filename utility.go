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
import "compress/gzip"
import "io"
import "io/ioutil"
import "math"
import "os"

/* -------------------------------------------------------------------------- */

func iMin(a, b int) int {
  if a < b {
    return a
  } else {
    return b
  }
}

func iMax(a, b int) int {
  if a > b {
    return a
  } else {
    return b
  }
}

// Divide a by b, the result is rounded down.
func divIntDown(a, b int) int {
  return a/b
}

// Divide a by b, the result is rounded up.
func divIntUp(a, b int) int {
  return (a+b-1)/b
}

/* -------------------------------------------------------------------------- */

// Mean over all values that are not NaN. Returns NaN if no
// such value exists.
func meanIgnoreNaN(x []float64) float64 {
  sum := 0.0
  n   := 0
  for i := 0; i < len(x); i++ {
    if math.IsNaN(x[i]) {
      continue
    }
    sum += x[i]
    n   += 1
  }
  if n == 0 {
    return math.NaN()
  }
  return sum/float64(n)
}

func maxIgnoreNaN(x []float64) float64 {
  max := math.Inf(-1)
  for i := 0; i < len(x); i++ {
    if math.IsNaN(x[i]) {
      continue
    }
    if x[i] > max {
      max = x[i]
    }
  }
  return max
}

/* -------------------------------------------------------------------------- */

func writeFile(filename string, r io.Reader, compress bool) error {
  var buffer bytes.Buffer

  if compress {
    w := gzip.NewWriter(&buffer)
    io.Copy(w, r)
    w.Close()
  } else {
    w := bufio.NewWriter(&buffer)
    io.Copy(w, r)
    w.Flush()
  }
  return ioutil.WriteFile(filename, buffer.Bytes(), 0666)
}

func isGzip(filename string) bool {

  f, err := os.Open(filename)
  if err != nil {
    return false
  }
  defer f.Close()

  b := make([]byte, 2)
  n, err := f.Read(b)
  if err != nil {
    return false
  }

  if n == 2 && b[0] == 31 && b[1] == 139 {
    return true
  }
  return false
}

// Open a file that may or may not be gzip compressed and return a
// line scanner together with a function closing all readers.
func openFileScanner(filename string) (*bufio.Scanner, func() error, error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, nil, err
  }
  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      f.Close()
      return nil, nil, err
    }
    closer := func() error {
      g.Close()
      return f.Close()
    }
    return bufio.NewScanner(g), closer, nil
  }
  return bufio.NewScanner(f), f.Close, nil
}
