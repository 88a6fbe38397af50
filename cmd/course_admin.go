// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"learnhub/cli/internal/account"
	"learnhub/cli/internal/courses"
	"learnhub/cli/internal/session"
	"learnhub/cli/internal/view"

	"github.com/spf13/cobra"
)

var (
	publishTitle       string
	publishDescription string
	publishCategory    string
	publishLevel       string
	publishPrice       float64

	updateTitle       string
	updateDescription string
	updateCategory    string
	updateLevel       string
	updatePrice       float64
	updatePublished   bool
	updateUnpublished bool

	deleteYes bool
)

// publishCmd creates a new course owned by the logged-in instructor. The
// course starts unpublished and unapproved; an admin approves it before it
// appears in the public catalog.
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Create a new course (instructors)",
	Long: `The publish command creates a new course under your instructor account.
Title, description, category and level are required. The course is submitted
for admin approval and shows up in the catalog once approved.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if _, err := requireAuthor(ctx); err != nil {
			return err
		}

		if publishTitle == "" || publishDescription == "" || publishCategory == "" {
			return fmt.Errorf("missing required flags: --title, --description and --category")
		}
		level, err := parseLevel(publishLevel)
		if err != nil {
			return err
		}

		req := courses.CreateCourseRequest{
			Title:       publishTitle,
			Description: publishDescription,
			Category:    publishCategory,
			Level:       level,
			Price:       publishPrice,
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Creating course", 120*time.Millisecond)
		c, err := courseSvc.Create(ctx, req)
		stopSpinner()
		if err != nil {
			return err
		}

		fmt.Printf("✅ Course #%d %q created and submitted for approval\n", c.ID, c.Title)
		return nil
	},
}

// updateCourseCmd edits course fields. Only flags that were set are sent, so
// an omitted flag leaves the backend value untouched.
var updateCourseCmd = &cobra.Command{
	Use:   "update-course <id>",
	Short: "Update one of your courses (instructors)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if _, err := requireAuthor(ctx); err != nil {
			return err
		}
		id, err := parseID(args[0], "course id")
		if err != nil {
			return err
		}

		var req courses.UpdateCourseRequest
		flags := cmd.Flags()
		if flags.Changed("title") {
			req.Title = &updateTitle
		}
		if flags.Changed("description") {
			req.Description = &updateDescription
		}
		if flags.Changed("category") {
			req.Category = &updateCategory
		}
		if flags.Changed("level") {
			level, err := parseLevel(updateLevel)
			if err != nil {
				return err
			}
			req.Level = &level
		}
		if flags.Changed("price") {
			req.Price = &updatePrice
		}
		if updatePublished && updateUnpublished {
			return fmt.Errorf("--published and --unpublished are mutually exclusive")
		}
		if updatePublished {
			t := true
			req.IsPublished = &t
		}
		if updateUnpublished {
			f := false
			req.IsPublished = &f
		}
		if req == (courses.UpdateCourseRequest{}) {
			return fmt.Errorf("nothing to update: pass at least one field flag")
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Updating course", 120*time.Millisecond)
		c, err := courseSvc.Update(ctx, id, req)
		stopSpinner()
		if err != nil {
			return err
		}

		fmt.Printf("✅ Course #%d %q updated\n", c.ID, c.Title)
		return nil
	},
}

// deleteCourseCmd removes a course. Destructive, so it asks for confirmation
// unless --yes is passed.
var deleteCourseCmd = &cobra.Command{
	Use:   "delete-course <id>",
	Short: "Delete one of your courses (instructors)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if _, err := requireAuthor(ctx); err != nil {
			return err
		}
		id, err := parseID(args[0], "course id")
		if err != nil {
			return err
		}

		if !deleteYes {
			answer, err := promptLine(fmt.Sprintf("Delete course #%d and all its enrollments? [y/N] ", id))
			if err != nil {
				return err
			}
			if answer != "y" && answer != "Y" && answer != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Deleting course", 120*time.Millisecond)
		err = courseSvc.Delete(ctx, id)
		stopSpinner()
		if err != nil {
			return err
		}

		fmt.Printf("🗑️  Course #%d deleted\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(updateCourseCmd)
	rootCmd.AddCommand(deleteCourseCmd)

	publishCmd.Flags().StringVar(&publishTitle, "title", "", "Course title")
	publishCmd.Flags().StringVar(&publishDescription, "description", "", "Course description")
	publishCmd.Flags().StringVar(&publishCategory, "category", "", "Course category")
	publishCmd.Flags().StringVar(&publishLevel, "level", "beginner", "Difficulty level: beginner, intermediate or advanced")
	publishCmd.Flags().Float64Var(&publishPrice, "price", 0, "Price in USD (0 for free)")

	updateCourseCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCourseCmd.Flags().StringVar(&updateDescription, "description", "", "New description")
	updateCourseCmd.Flags().StringVar(&updateCategory, "category", "", "New category")
	updateCourseCmd.Flags().StringVar(&updateLevel, "level", "", "New difficulty level")
	updateCourseCmd.Flags().Float64Var(&updatePrice, "price", 0, "New price in USD")
	updateCourseCmd.Flags().BoolVar(&updatePublished, "published", false, "Publish the course")
	updateCourseCmd.Flags().BoolVar(&updateUnpublished, "unpublished", false, "Unpublish the course")

	deleteCourseCmd.Flags().BoolVar(&deleteYes, "yes", false, "Skip the confirmation prompt")
}

// requireAuthor resolves the current user and checks course-authoring access.
// The check shapes the CLI surface only; the backend enforces ownership.
func requireAuthor(ctx context.Context) (*account.User, error) {
	s := session.FromContext(ctx)
	user, _ := s.Current()
	if user == nil {
		return nil, fmt.Errorf("you need to log in first: run 'learnhub login'")
	}
	if err := view.RequireRole(user, account.RoleInstructor, account.RoleAdmin); err != nil {
		return nil, err
	}
	return user, nil
}

func parseLevel(raw string) (courses.Level, error) {
	level := courses.Level(raw)
	switch level {
	case courses.LevelBeginner, courses.LevelIntermediate, courses.LevelAdvanced:
		return level, nil
	}
	return "", fmt.Errorf("invalid level %q: choose beginner, intermediate or advanced", raw)
}
