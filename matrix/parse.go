// SPDX-License-Identifier: MIT
// Package matrix: textual parser and formatter.
//
// The accepted grammar is deliberately minimal: one row per line, entries
// separated by arbitrary whitespace, each entry a standard floating-point
// literal. No header, delimiter or metadata. Format is a presentation form
// (centered, column-aligned) — not byte-canonical, but always re-parseable
// to an equal matrix.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts the textual representation into a freshly allocated Dense.
//
// Implementation:
//   - Stage 1: Trim the input and split on newlines; zero rows → ErrEmptyInput.
//     The first row's whitespace-separated token count fixes the column
//     count; zero tokens → ErrEmptyRow. A blank or all-whitespace input
//     collapses to a single empty row and therefore reports ErrEmptyRow.
//   - Stage 2: Per row, split on whitespace and parse each token as float64.
//     A mismatched token count → ErrInconsistentColumns (wrapped with the
//     row index); an unparseable token → ErrInvalidNumber (wrapped with row
//     and column indices).
//
// Errors:
//   - ErrEmptyInput, ErrEmptyRow, ErrInconsistentColumns, ErrInvalidNumber.
//
// Complexity:
//   - Time O(r*c) over tokens, Space O(r*c) for the result.
//
// Notes:
//   - The result receives no further validation; values like NaN or ±Inf are
//     accepted when the literal form parses (e.g. "NaN", "+Inf").
func Parse(text string) (*Dense, error) {
	// Trim the whole input and split into rows. Split never yields zero
	// lines for a non-nil input, so ErrEmptyInput guards the impossible.
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) == 0 {
		return nil, matrixErrorf(opParse, ErrEmptyInput)
	}

	// The first row fixes the column count; a blank input collapses to a
	// single empty row and lands here.
	cols := len(strings.Fields(lines[0]))
	if cols == 0 {
		return nil, matrixErrorf(opParse, ErrEmptyRow)
	}
	rows := len(lines)

	// Allocate the result once; dimensions are already known to be positive.
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opParse, err)
	}

	// Tokenize and parse row by row in fixed order.
	var (
		i, j   int     // row and column cursors
		tokens []string
		v      float64
	)
	for i = 0; i < rows; i++ {
		tokens = strings.Fields(lines[i]) // arbitrary whitespace, leading/trailing ignored
		if len(tokens) != cols {
			return nil, matrixErrorf(opParse, fmt.Errorf("row %d: %w", i, ErrInconsistentColumns))
		}
		for j = 0; j < cols; j++ {
			v, err = strconv.ParseFloat(tokens[j], 64)
			if err != nil {
				return nil, matrixErrorf(opParse, fmt.Errorf("row %d, col %d (%q): %w", i, j, tokens[j], ErrInvalidNumber))
			}
			m.data[i*cols+j] = v
		}
	}

	return m, nil
}

// Format renders m as column-aligned text: every entry is centered in its
// column's maximum printed width with one space padding on each side, rows
// end with a newline, and no additional separator is used between entries.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); materialize a Dense view; render every
//     entry with the default %g representation and record per-column widths.
//   - Stage 2: Center each rendered entry in its column width (extra padding
//     goes to the right) and assemble rows.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the rendered cells.
//
// Notes:
//   - Presentation only: spacing is not preserved through Parse→Format, but
//     the rendered text re-parses to an equal matrix.
func Format(m Matrix) (string, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return "", matrixErrorf(opFormat, err)
	}

	// Materialize a Dense view for flat access.
	d, _, err := toDense(m)
	if err != nil {
		return "", matrixErrorf(opFormat, err)
	}
	rows, cols := d.r, d.c

	// Render each entry once and track per-column maximum widths.
	cells := make([]string, rows*cols)
	widths := make([]int, cols)
	var i, j int // cell cursors
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			s := strconv.FormatFloat(d.data[i*cols+j], 'g', -1, 64)
			cells[i*cols+j] = s
			if len(s) > widths[j] {
				widths[j] = len(s)
			}
		}
	}

	// Assemble: " <centered> " per entry, newline per row.
	var b strings.Builder
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			b.WriteByte(' ')
			writeCentered(&b, cells[i*cols+j], widths[j])
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// writeCentered writes s centered in a field of the given width; when the
// padding is odd, the extra space goes to the right.
func writeCentered(b *strings.Builder, s string, width int) {
	pad := width - len(s)
	left := pad / 2
	b.WriteString(strings.Repeat(" ", left))
	b.WriteString(s)
	b.WriteString(strings.Repeat(" ", pad-left))
}
