// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"learnhub/cli/internal/cache"
	"learnhub/cli/internal/session"

	"github.com/spf13/cobra"
)

// logoutCmd represents the logout command for clearing authentication state.
// It removes the saved token and user record from the OS keychain and drops
// any locally cached snapshots. No backend call is made; the token simply
// stops being presented.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove all saved credentials and cached data",
	Long: `The logout command clears all authentication state from the local system.

This command removes:
- The session token from the OS keychain
- The cached user record
- Locally cached course snapshots

Logging out while already logged out is harmless.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		s := session.FromContext(cmd.Context())
		s.Logout()

		// Best effort - a missing or locked snapshot db is not worth failing over
		if c, err := cache.OpenDefault(); err == nil {
			_ = c.Clear(cmd.Context())
			_ = c.Close()
		}

		fmt.Println("✅ All credentials and cached data have been removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
