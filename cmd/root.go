// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the LearnHub CLI application.
// It implements subcommands for authentication, the course catalog, enrollments,
// learning progress and course administration using the Cobra CLI framework.
// The package handles command parsing, execution, and provides a rich terminal
// UI with spinners and progress indicators.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"learnhub/cli/internal/api"
	"learnhub/cli/internal/auth"
	"learnhub/cli/internal/cache"
	"learnhub/cli/internal/config"
	"learnhub/cli/internal/courses"
	"learnhub/cli/internal/credstore"
	errs "learnhub/cli/internal/errors"
	"learnhub/cli/internal/logging"
	"learnhub/cli/internal/session"
	"learnhub/cli/internal/terminal"

	"github.com/spf13/cobra"
)

var (
	showVersion bool

	// Wired once in bootstrap and shared by every subcommand.
	gateway   *api.Client
	authSvc   *auth.Service
	courseSvc *courses.Service
	sess      *session.Session
)

// rootCmd represents the base command when called without any subcommands.
// It serves as the entry point for the LearnHub CLI application.
var rootCmd = &cobra.Command{
	Use:           "learnhub",
	Short:         "LearnHub CLI for browsing and taking online courses",
	Long:          `LearnHub is a command-line client for the LearnHub course marketplace. It talks to the LearnHub backend API and keeps your login session in the OS keychain.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return bootstrap(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("learnhub %s\n", Version)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// bootstrap wires the credential store, the API gateway and the session,
// then runs the one-time startup validation of any persisted credential.
// Every subcommand sees the session through the command context.
func bootstrap(cmd *cobra.Command) error {
	if sess != nil {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := credstore.NewKeychain()
	if err != nil {
		return fmt.Errorf("open credential store: %w", err)
	}

	// The gateway never touches the store directly. The token comes from the
	// session's pre-send hook and a 401 response flows back through
	// Invalidate, so all credential clearing happens in one place.
	gateway = api.New(cfg.APIBaseURL,
		api.WithTokenSource(func() string { return sess.Token() }),
		api.OnUnauthorized(func() {
			sess.Invalidate()
			// The snapshots are per-user data; they go when the credential
			// goes, same as on explicit logout.
			if c, err := cache.OpenDefault(); err == nil {
				_ = c.Clear(context.Background())
				_ = c.Close()
			}
		}),
	)

	authSvc = auth.NewService(gateway)
	courseSvc = courses.NewService(gateway)
	sess = session.New(store, authSvc)

	ctx := session.WithContext(cmd.Context(), sess)
	cmd.SetContext(ctx)

	// Validate any persisted credential before the command runs. The spinner
	// goes to stderr so piped stdout stays clean.
	var stopSpinner func()
	if terminal.IsInteractive() {
		stopSpinner = startInlineSpinner(os.Stderr, "Checking session", 120*time.Millisecond)
	}
	sess.Init(ctx)
	if stopSpinner != nil {
		stopSpinner()
	}
	return nil
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("learnhub", err))
		if errs.IsKind(err, errs.Unauthorized) {
			fmt.Fprintln(os.Stderr, "Your session has ended. Run 'learnhub login' to sign in again.")
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
}
