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

package progress

/* -------------------------------------------------------------------------- */

import "fmt"
import "io"
import "os"
import "strings"

/* -------------------------------------------------------------------------- */

// Progress prints a terminal progress bar for a computation with N
// steps. Printing is throttled so that the bar is redrawn at most K
// times over the course of the computation.
type Progress struct {
  N, K, LineWidth int
}

/* -------------------------------------------------------------------------- */

func New(n, k int) Progress {
  progress := Progress{n, n/k, 60}
  if progress.K == 0 {
    progress.K = 1
  }
  return progress
}

/* -------------------------------------------------------------------------- */

const __line_del__ = "\033[2K\r"

func (progress Progress) Exec(i int) string {
  var buffer strings.Builder

  p := float64(i)/float64(progress.N)
  m := int(p*float64(progress.LineWidth))

  // carriage return and left delimiter
  buffer.WriteString(__line_del__)
  buffer.WriteString("|")

  for k := 0; k < progress.LineWidth; k++ {
    switch {
    case k <  m: buffer.WriteString("=")
    case k == m: buffer.WriteString(">")
    default    : buffer.WriteString(" ")
    }
  }
  fmt.Fprintf(&buffer, "| %6.2f%% (%d/%d)", p*100, i, progress.N)
  // add newline if finished
  if i >= progress.N {
    buffer.WriteString("\n")
  }
  return buffer.String()
}

func (progress Progress) Fprint(w io.Writer, i int) {
  if i == 0 || i == progress.N || (i % progress.K == 0) {
    fmt.Fprint(w, progress.Exec(i))
  }
}

func (progress Progress) PrintStdout(i int) {
  progress.Fprint(os.Stdout, i)
}

func (progress Progress) PrintStderr(i int) {
  progress.Fprint(os.Stderr, i)
}
