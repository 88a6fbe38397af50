// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"time"

	"learnhub/cli/internal/account"
	"learnhub/cli/internal/session"
	"learnhub/cli/internal/view"

	"github.com/spf13/cobra"
)

var approveRevoke bool

// approveCmd toggles a course's approval status. Admin only; instructors see
// the command fail locally before any request is made.
var approveCmd = &cobra.Command{
	Use:   "approve <course-id>",
	Short: "Approve a submitted course (admins)",
	Long: `The approve command marks a submitted course as approved so it appears in
the public catalog. Use --revoke to withdraw a previous approval.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s := session.FromContext(ctx)
		user, _ := s.Current()
		if user == nil {
			printNotLoggedIn()
			return nil
		}
		if err := view.RequireRole(user, account.RoleAdmin); err != nil {
			return err
		}

		id, err := parseID(args[0], "course id")
		if err != nil {
			return err
		}

		approved := !approveRevoke
		stopSpinner := startInlineSpinner(os.Stdout, "Updating approval", 120*time.Millisecond)
		err = courseSvc.Approve(ctx, id, approved)
		stopSpinner()
		if err != nil {
			return err
		}

		if approved {
			fmt.Printf("✅ Course #%d approved\n", id)
		} else {
			fmt.Printf("↩️  Approval for course #%d revoked\n", id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(approveCmd)
	approveCmd.Flags().BoolVar(&approveRevoke, "revoke", false, "Revoke approval instead of granting it")
}
