// Package main is the entry point for the cyclewise CLI.
package main

import (
	"github.com/cyclewise/cyclewise/internal/cli"
)

func main() {
	cli.Execute()
}
