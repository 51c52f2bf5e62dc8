// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/lvlgo/matrixcalc/matrix"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <matrix>",
	Short: "Parse a matrix and pretty-print it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := readMatrixArg(args[0])
		if err != nil {
			return err
		}
		return printMatrix(m)
	},
}

var detCmd = &cobra.Command{
	Use:   "det <matrix>",
	Short: "Compute the determinant of a square matrix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := readMatrixArg(args[0])
		if err != nil {
			return err
		}
		det, err := matrix.Det(m)
		if err != nil {
			return err
		}
		resultColor.Printf("%g\n", det)
		return nil
	},
}

var invCmd = &cobra.Command{
	Use:   "inv <matrix>",
	Short: "Compute the inverse of a square, non-singular matrix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := readMatrixArg(args[0])
		if err != nil {
			return err
		}
		inv, err := matrix.Inverse(m)
		if err != nil {
			return err
		}
		return printMatrix(inv)
	},
}

var transposeCmd = &cobra.Command{
	Use:     "transpose <matrix>",
	Aliases: []string{"t"},
	Short:   "Transpose a matrix",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := readMatrixArg(args[0])
		if err != nil {
			return err
		}
		tr, err := matrix.Transpose(m)
		if err != nil {
			return err
		}
		return printMatrix(tr)
	},
}

var addCmd = &cobra.Command{
	Use:   "add <matrix> <matrix>",
	Short: "Element-wise sum of two equally shaped matrices",
	Args:  cobra.ExactArgs(2),
	RunE:  func(cmd *cobra.Command, args []string) error { return runBinary(matrix.Add, args) },
}

var subCmd = &cobra.Command{
	Use:   "sub <matrix> <matrix>",
	Short: "Element-wise difference of two equally shaped matrices",
	Args:  cobra.ExactArgs(2),
	RunE:  func(cmd *cobra.Command, args []string) error { return runBinary(matrix.Sub, args) },
}

var mulCmd = &cobra.Command{
	Use:   "mul <matrix> <matrix>",
	Short: "Matrix product A × B",
	Args:  cobra.ExactArgs(2),
	RunE:  func(cmd *cobra.Command, args []string) error { return runBinary(matrix.Mul, args) },
}

// runBinary resolves both operands and forwards them to a two-matrix kernel.
func runBinary(op func(a, b matrix.Matrix) (matrix.Matrix, error), args []string) error {
	a, err := readMatrixArg(args[0])
	if err != nil {
		return err
	}
	b, err := readMatrixArg(args[1])
	if err != nil {
		return err
	}
	res, err := op(a, b)
	if err != nil {
		return err
	}

	return printMatrix(res)
}

var scaleFactor float64

var scaleCmd = &cobra.Command{
	Use:   "scale <matrix>",
	Short: "Multiply every entry by a scalar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := readMatrixArg(args[0])
		if err != nil {
			return err
		}
		res, err := matrix.Scale(m, scaleFactor)
		if err != nil {
			return err
		}
		return printMatrix(res)
	},
}

func init() {
	scaleCmd.Flags().Float64VarP(&scaleFactor, "factor", "k", 1.0, "scalar multiplier")
}
