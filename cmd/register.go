// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"learnhub/cli/internal/account"
	"learnhub/cli/internal/auth"
	"learnhub/cli/internal/session"

	"github.com/spf13/cobra"
)

var (
	registerName  string
	registerEmail string
	registerRole  string
)

// registerCmd represents the register command for creating a new account.
// A successful registration logs the new user in immediately, exactly like
// the login command, so no separate login step is needed.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new LearnHub account",
	Long: `The register command creates a new account on the LearnHub backend and
logs you in straight away. The role flag selects between a student and an
instructor account; when omitted the backend assigns the default role.

Admin accounts cannot be self-registered.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s := session.FromContext(ctx)

		if user, _ := s.Current(); user != nil {
			fmt.Printf("Already logged in as %s. Run 'learnhub logout' first.\n", user.Email)
			return nil
		}

		req := auth.RegisterRequest{
			Name:  strings.TrimSpace(registerName),
			Email: strings.TrimSpace(registerEmail),
		}
		var err error
		if req.Name == "" {
			if req.Name, err = promptLine("Name: "); err != nil {
				return err
			}
		}
		if req.Email == "" {
			if req.Email, err = promptLine("Email: "); err != nil {
				return err
			}
		}
		if registerRole != "" {
			role := account.Role(registerRole)
			if !role.Valid() || role == account.RoleAdmin {
				return fmt.Errorf("invalid role %q: choose student or instructor", registerRole)
			}
			req.Role = role
		}

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}
		confirm, err := promptPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}
		req.Password = password

		stopSpinner := startInlineSpinner(os.Stdout, "Creating your account", 120*time.Millisecond)
		user, err := s.Register(ctx, req)
		stopSpinner()
		if err != nil {
			return err
		}

		fmt.Printf("🌟 Welcome aboard, %s!\n", user.Name)
		fmt.Printf("   Your %s account is ready. Try 'learnhub courses' to browse the catalog.\n", user.Role)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerName, "name", "", "Full name for the new account")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email address for the new account")
	registerCmd.Flags().StringVar(&registerRole, "role", "", "Account role: student or instructor (default decided by the backend)")
}
