// Package main is the entry point for the LearnHub CLI application.
// It provides a terminal client for the LearnHub course marketplace.
package main

import (
	"learnhub/cli/cmd"
)

// main is the entry point for the LearnHub CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
