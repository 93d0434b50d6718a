// Package main provides the habitkeep CLI.
package main

import (
	"github.com/habitkeep/habitkeep/internal/cli"
)

func main() {
	cli.Execute()
}
