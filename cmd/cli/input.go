// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lvlgo/matrixcalc/matrix"
)

// readMatrixArg resolves one CLI operand into a parsed matrix.
//
// Accepted forms:
//   - "-"        read the textual representation from stdin
//   - "@path"    read it from a file
//   - otherwise  treat the argument as an inline literal where ';' separates
//     rows, so shells don't need embedded newlines: "1 2; 3 4"
func readMatrixArg(arg string) (*matrix.Dense, error) {
	var text string
	switch {
	case arg == "-":
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		text = string(raw)
	case strings.HasPrefix(arg, "@"):
		raw, err := os.ReadFile(strings.TrimPrefix(arg, "@"))
		if err != nil {
			return nil, fmt.Errorf("reading matrix file: %w", err)
		}
		text = string(raw)
	default:
		text = strings.ReplaceAll(arg, ";", "\n")
	}

	m, err := matrix.Parse(text)
	if err != nil {
		return nil, err
	}

	return m, nil
}
