// Package main provides the grades CLI.
package main

import "github.com/mesh-intelligence/grades/internal/cli"

func main() {
	cli.Execute()
}
