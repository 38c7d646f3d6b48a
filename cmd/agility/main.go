// Package main provides the agility CLI.
package main

import "github.com/mesh-intelligence/agility/internal/cli"

func main() {
	cli.Execute()
}
