// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"time"

	"atomicgo.dev/cursor"
	"learnhub/cli/internal/account"
	"learnhub/cli/internal/courses"
	"learnhub/cli/internal/session"
	"learnhub/cli/internal/terminal"
	"learnhub/cli/internal/view"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// dashboardCmd renders a role-specific overview: students see their
// enrollments and next lessons, instructors their own courses, admins the
// courses awaiting approval. Anonymous users get the public navigation.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your LearnHub dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s := session.FromContext(ctx)
		user, _ := s.Current()

		terminal.ClearScreen()
		switch view.DashboardFor(user) {
		case view.DashboardStudent:
			return studentDashboard(ctx, user)
		case view.DashboardInstructor:
			return instructorDashboard(ctx, user)
		case view.DashboardAdmin:
			return adminDashboard(ctx, user)
		case view.DashboardAnonymous:
			anonymousDashboard()
			return nil
		}
		anonymousDashboard()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func anonymousDashboard() {
	pterm.DefaultSection.Println("Welcome to LearnHub")
	fmt.Println("Learn anything, anywhere. Here's where to start:")
	fmt.Println()
	printNav(nil)
}

func studentDashboard(ctx context.Context, user *account.User) error {
	enrollments, err := fetchWithArea("Loading your dashboard", func() ([]courses.Enrollment, error) {
		return courseSvc.MyEnrollments(ctx)
	})
	if err != nil {
		return err
	}

	pterm.DefaultSection.Printf("Hi %s, here's your learning at a glance\n", user.Name)
	if len(enrollments) == 0 {
		fmt.Println("No enrollments yet. Browse the catalog with 'learnhub courses'.")
	} else {
		for _, e := range enrollments {
			bar := progressBar(int(e.Progress), 20)
			fmt.Printf("  %s %3.0f%%  %s\n", bar, e.Progress, e.Title)
		}
	}
	fmt.Println()
	printNav(user)
	return nil
}

func instructorDashboard(ctx context.Context, user *account.User) error {
	list, err := fetchWithArea("Loading your courses", func() (*courses.CourseList, error) {
		return courseSvc.List(ctx, courses.ListParams{InstructorID: user.ID, Limit: 50})
	})
	if err != nil {
		return err
	}

	pterm.DefaultSection.Printf("Instructor overview for %s\n", user.Name)
	if len(list.Courses) == 0 {
		fmt.Println("You haven't published any courses yet. Try 'learnhub publish'.")
	} else {
		for _, c := range list.Courses {
			status := "draft"
			switch {
			case c.IsPublished && c.IsApproved:
				status = "live"
			case c.IsPublished:
				status = "awaiting approval"
			}
			fmt.Printf("  #%-4d %-40s %s", c.ID, c.Title, status)
			if c.EnrolledStudents > 0 {
				fmt.Printf(" · %d students", c.EnrolledStudents)
			}
			fmt.Println()
		}
	}
	fmt.Println()
	printNav(user)
	return nil
}

func adminDashboard(ctx context.Context, user *account.User) error {
	list, err := fetchWithArea("Loading the catalog", func() (*courses.CourseList, error) {
		return courseSvc.List(ctx, courses.ListParams{Limit: 100})
	})
	if err != nil {
		return err
	}

	pterm.DefaultSection.Printf("Admin overview for %s\n", user.Name)
	pending := 0
	for _, c := range list.Courses {
		if c.IsPublished && !c.IsApproved {
			pending++
			fmt.Printf("  #%-4d %-40s by %s - awaiting approval\n", c.ID, c.Title, c.InstructorName)
		}
	}
	if pending == 0 {
		fmt.Println("No courses awaiting approval. All caught up!")
	} else {
		fmt.Println()
		fmt.Println("Approve with 'learnhub approve <course-id>'.")
	}
	fmt.Println()
	printNav(user)
	return nil
}

// printNav renders the navigation footer for the user's role.
func printNav(user *account.User) {
	fmt.Println("Navigation:")
	for _, item := range view.NavFor(user) {
		fmt.Printf("  %-24s %s\n", item.Label, item.Command)
	}
}

// fetchWithArea runs fetch while animating a pterm area spinner. The cursor
// is hidden for the duration so the redraws don't flicker.
func fetchWithArea[T any](text string, fetch func() (T, error)) (T, error) {
	cursor.Hide()
	defer cursor.Show()

	area, aerr := pterm.DefaultArea.WithRemoveWhenDone(true).Start()
	if aerr != nil {
		return fetch()
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		t := time.NewTicker(120 * time.Millisecond)
		defer t.Stop()
		i := 0
		for {
			select {
			case <-t.C:
				area.Update(fmt.Sprintf("%s %s", spinnerFrames[i%len(spinnerFrames)], text))
				i++
			case <-stop:
				return
			}
		}
	}()

	result, err := fetch()
	close(stop)
	<-done
	_ = area.Stop()
	return result, err
}

// progressBar renders a fixed-width ASCII progress bar.
func progressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	bar := make([]byte, 0, width+2)
	bar = append(bar, '[')
	for i := 0; i < width; i++ {
		if i < filled {
			bar = append(bar, '#')
		} else {
			bar = append(bar, '-')
		}
	}
	bar = append(bar, ']')
	return string(bar)
}
