// Command roman converts, validates and computes with Roman numerals.
package main

import (
	"os"

	"github.com/auth-platform/roman/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
