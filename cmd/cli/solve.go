// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lvlgo/matrixcalc/matrix"
)

const (
	methodGauss  = "gauss"
	methodCramer = "cramer"
)

var solveMethod string

var solveCmd = &cobra.Command{
	Use:   "solve <augmented-matrix>",
	Short: "Solve A·x = b from an augmented matrix [A|b]",
	Long: `Solves the linear system represented by an m×(m+1) augmented matrix,
where the last column holds the constants. Two methods are available:
Gaussian elimination with partial pivoting (default) and Cramer's rule.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		aug, err := readMatrixArg(args[0])
		if err != nil {
			return err
		}

		statusColor.Printf("Solving %d-variable system via %s...\n", aug.Rows(), solveMethod)

		var x []float64
		switch solveMethod {
		case methodGauss:
			x, err = matrix.GaussianElimination(aug)
		case methodCramer:
			x, err = matrix.CramerRule(aug)
		default:
			return fmt.Errorf("unknown method %q (want %q or %q)", solveMethod, methodGauss, methodCramer)
		}
		if err != nil {
			return err
		}

		printSolution(x)
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVarP(&solveMethod, "method", "m", methodGauss, "solution method: gauss or cramer")
}
