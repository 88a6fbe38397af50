// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"time"

	"learnhub/cli/internal/courses"
	"learnhub/cli/internal/session"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var completeWatched int

// progressCmd shows per-lesson completion for one of the student's courses.
var progressCmd = &cobra.Command{
	Use:   "progress <course-id>",
	Short: "Show your progress in a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s := session.FromContext(ctx)
		if user, _ := s.Current(); user == nil {
			printNotLoggedIn()
			return nil
		}

		id, err := parseID(args[0], "course id")
		if err != nil {
			return err
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Loading progress", 120*time.Millisecond)
		p, err := courseSvc.Progress(ctx, id)
		stopSpinner()
		if err != nil {
			return err
		}

		pterm.DefaultSection.Println(p.Course.Title)
		fmt.Printf("Overall: %d of %d lessons complete (%d%%)\n\n",
			p.Stats.CompletedLessons, p.Stats.TotalLessons, p.Stats.ProgressPercentage)

		for _, m := range p.Modules {
			fmt.Printf("%s - %d%%\n", m.Title, courses.ModulePercentage(m))
			for _, l := range m.Lessons {
				mark := "[ ]"
				if l.Completed {
					mark = "[x]"
				}
				fmt.Printf("  %s %s (%s)  id=%d\n", mark, l.Title, formatDuration(l.Duration), l.ID)
			}
		}

		if next, ok := courses.NextLesson(p.Modules); ok {
			fmt.Println()
			fmt.Printf("▶ Up next: %s. Mark it done with 'learnhub complete %d'.\n", next.Title, next.ID)
		} else if p.Stats.TotalLessons > 0 {
			fmt.Println()
			fmt.Println("🎉 Course complete!")
		}
		return nil
	},
}

// completeCmd marks a lesson as finished, optionally recording watch time.
var completeCmd = &cobra.Command{
	Use:   "complete <lesson-id>",
	Short: "Mark a lesson as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s := session.FromContext(ctx)
		if user, _ := s.Current(); user == nil {
			printNotLoggedIn()
			return nil
		}

		id, err := parseID(args[0], "lesson id")
		if err != nil {
			return err
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Saving", 120*time.Millisecond)
		err = courseSvc.MarkLesson(ctx, id, true, completeWatched)
		stopSpinner()
		if err != nil {
			return err
		}

		fmt.Println("✅ Lesson marked as completed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(completeCmd)
	completeCmd.Flags().IntVar(&completeWatched, "watched", 0, "Seconds of the lesson video watched")
}
