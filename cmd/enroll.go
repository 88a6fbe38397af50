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

// enrollCmd enrolls the logged-in student in a course. The role check here
// only shapes the CLI surface; the backend makes the authoritative decision.
var enrollCmd = &cobra.Command{
	Use:   "enroll <course-id>",
	Short: "Enroll in a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s := session.FromContext(ctx)
		user, _ := s.Current()
		if user == nil {
			printNotLoggedIn()
			return nil
		}
		if err := view.RequireRole(user, account.RoleStudent); err != nil {
			return err
		}

		id, err := parseID(args[0], "course id")
		if err != nil {
			return err
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Enrolling", 120*time.Millisecond)
		err = courseSvc.Enroll(ctx, id)
		stopSpinner()
		if err != nil {
			return err
		}

		fmt.Println("🎯 You're in! Enrollment confirmed.")
		fmt.Printf("   Track your progress with 'learnhub progress %d'.\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enrollCmd)
}
