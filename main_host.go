//go:build !tinygo

package main

import (
	"os"

	"tftgauge/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
