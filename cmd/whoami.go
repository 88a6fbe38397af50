// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"learnhub/cli/internal/account"
	"learnhub/cli/internal/cache"
	"learnhub/cli/internal/session"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// whoamiCmd represents the whoami command for displaying current authentication state.
// It shows the account the session settled on during startup validation.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current authenticated account",
	Long: `The whoami command displays information about the currently authenticated
account. The session is validated against the backend when the CLI starts, so
the output reflects the server's current record of your account.

If no valid session exists, it will indicate that you are not logged in.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s := session.FromContext(ctx)
		user, _ := s.Current()
		if user == nil {
			// The last cached profile is only worth showing when the backend
			// could not be reached to validate the session. A rejected or
			// absent credential must read as logged out, not as offline.
			if s.Offline() {
				if cached := cachedProfile(ctx); cached != nil {
					pterm.Warning.Println("Backend unreachable, showing the last known profile")
					fmt.Printf("👤 Last known user: %s <%s> (%s)\n", cached.Name, cached.Email, cached.Role)
					return nil
				}
			}
			printNotLoggedIn()
			return nil
		}
		fmt.Printf("👤 Current user: %s <%s> (%s)\n", user.Name, user.Email, user.Role)
		return nil
	},
}

// cachedProfile reads the profile snapshot, or nil when absent or unreadable.
func cachedProfile(ctx context.Context) *account.User {
	c, err := cache.OpenDefault()
	if err != nil {
		return nil
	}
	defer c.Close()

	b, _, err := c.Get(ctx, cache.KeyProfile)
	if err != nil || b == nil {
		return nil
	}
	var u account.User
	if err := json.Unmarshal(b, &u); err != nil {
		return nil
	}
	return &u
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// printNotLoggedIn is the shared logged-out hint used by commands that need a session.
func printNotLoggedIn() {
	fmt.Println("🔒 You're not logged in yet!")
	fmt.Println("   Run 'learnhub login' to get started.")
}
