// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package terminal provides small helpers for interacting with the terminal.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin is attached to a terminal.
// Prompts and password input are only attempted in interactive sessions.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ClearScreen clears the terminal using ANSI escape sequences.
// It is a no-op when stdout is not a terminal so piped output stays clean.
func ClearScreen() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}
	fmt.Print("\033[2J\033[H")
}
