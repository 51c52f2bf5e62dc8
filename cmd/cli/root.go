// SPDX-License-Identifier: MIT

// Package cli is the mcalc command shell: it parses operands, forwards every
// computation to the matrix engine, and presents results or structured error
// messages. All algebra lives in the engine; the shell only dispatches.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lvlgo/matrixcalc/matrix"
)

var (
	statusColor = color.New(color.FgCyan)
	errorColor  = color.New(color.FgRed)
	resultColor = color.New(color.FgGreen)

	// matrixBoxStyle frames formatted matrices for readability.
	matrixBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("238"))
)

var rootCmd = &cobra.Command{
	Use:   "mcalc",
	Short: "Dense matrix calculator",
	Long: `A command-line calculator for dense, real-valued matrices.

Matrix operands are textual: one row per line, entries separated by
whitespace. On the command line an operand is either a literal where ';'
separates rows ("1 2; 3 4"), an @path to a file, or '-' to read stdin.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// RunCLI executes the command tree and exits non-zero on any failure.
func RunCLI() {
	if err := rootCmd.Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(detCmd)
	rootCmd.AddCommand(invCmd)
	rootCmd.AddCommand(transposeCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subCmd)
	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(mulCmd)
	rootCmd.AddCommand(solveCmd)
}

// printMatrix renders m through the engine formatter inside a bordered box.
func printMatrix(m matrix.Matrix) error {
	text, err := matrix.Format(m)
	if err != nil {
		return err
	}
	// Trim the trailing newline; the border supplies the final break.
	fmt.Println(matrixBoxStyle.Render(text[:len(text)-1]))

	return nil
}

// printSolution renders a solution vector one variable per line.
func printSolution(x []float64) {
	for i, v := range x {
		resultColor.Printf("x%d = %g\n", i+1, v)
	}
}
