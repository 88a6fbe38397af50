// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"learnhub/cli/internal/account"
	"learnhub/cli/internal/cache"
	"learnhub/cli/internal/session"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var profileNewName string

// profileCmd represents the profile command group. Without a subcommand it
// shows the current profile; 'profile update' changes the display name.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your LearnHub profile",
	Long: `The profile command shows the profile of the logged-in account as the
backend currently records it.

Use 'learnhub profile update --name' to change your display name.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s := session.FromContext(ctx)
		user, _ := s.Current()
		if user == nil {
			printNotLoggedIn()
			return nil
		}

		data := pterm.TableData{
			{"Name", user.Name},
			{"Email", user.Email},
			{"Role", string(user.Role)},
		}
		if user.CreatedAt != "" {
			data = append(data, []string{"Member since", user.CreatedAt})
		}
		if err := pterm.DefaultTable.WithData(data).Render(); err != nil {
			return err
		}

		snapshotProfile(ctx, user)
		return nil
	},
}

// profileUpdateCmd updates the display name. The backend confirms the change
// and returns the updated record, which replaces both the in-memory user and
// the keychain copy without another profile fetch.
var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s := session.FromContext(ctx)
		if user, _ := s.Current(); user == nil {
			printNotLoggedIn()
			return nil
		}

		name := strings.TrimSpace(profileNewName)
		if name == "" {
			return fmt.Errorf("nothing to update: pass --name")
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Updating profile", 120*time.Millisecond)
		updated, err := authSvc.UpdateProfile(ctx, name)
		stopSpinner()
		if err != nil {
			return err
		}
		if err := s.UpdateUser(updated); err != nil {
			return err
		}

		fmt.Printf("✅ Profile updated. Hello, %s!\n", updated.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileUpdateCmd.Flags().StringVar(&profileNewName, "name", "", "New display name")
}

// snapshotProfile caches the last seen profile for offline display. Failures
// are ignored; the snapshot is a convenience.
func snapshotProfile(ctx context.Context, user *account.User) {
	c, err := cache.OpenDefault()
	if err != nil {
		return
	}
	defer c.Close()
	if b, err := json.Marshal(user); err == nil {
		_ = c.Put(ctx, cache.KeyProfile, b)
	}
}
