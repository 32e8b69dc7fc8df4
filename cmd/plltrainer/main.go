// PLL Recognition Trainer - CLI and server for drilling Rubik's Cube
// last-layer permutation recognition.
package main

import (
	"github.com/cubetools/plltrainer/internal/cli"
)

func main() {
	cli.Execute()
}
