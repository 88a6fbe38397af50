// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"learnhub/cli/internal/session"
	"learnhub/cli/internal/terminal"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginEmail string

// loginCmd represents the login command for password authentication.
// It prompts for the user's email and password, exchanges them for a token
// with the backend and stores the resulting credential in the OS keychain.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Log in to LearnHub and link this device",
	Long: `The login command authenticates against the LearnHub backend with your
email and password. On success the issued token and your user profile are
stored securely in the OS keychain, so subsequent commands run as you until
you log out or the session expires.

If already logged in with a valid session, it will skip the login flow.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s := session.FromContext(ctx)

		// If already logged in with a valid session, short-circuit
		if user, _ := s.Current(); user != nil {
			fmt.Printf("Already logged in as %s\n", user.Email)
			return nil
		}

		email := strings.TrimSpace(loginEmail)
		if email == "" {
			var err error
			email, err = promptLine("Email: ")
			if err != nil {
				return err
			}
		}
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Signing in", 120*time.Millisecond)
		user, err := s.Login(ctx, email, password)
		stopSpinner()
		if err != nil {
			return err
		}

		fmt.Printf("🎉 Welcome back, %s!\n", user.Name)
		fmt.Printf("   Logged in as %s (%s)\n", user.Email, user.Role)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email address to log in with")
}

// promptLine reads a single trimmed line from stdin.
func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	r := bufio.NewReader(os.Stdin)
	line, err := r.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password without echoing when stdin is a terminal.
// In non-interactive runs (piped input) it falls back to a plain line read.
func promptPassword(prompt string) (string, error) {
	if !terminal.IsInteractive() {
		return promptLine(prompt)
	}
	fmt.Print(prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}
