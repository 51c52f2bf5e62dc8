package main // binary entry point

import "github.com/lvlgo/matrixcalc/cmd/cli"

func main() {
	cli.RunCLI()
}
