// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"learnhub/cli/internal/cache"
	"learnhub/cli/internal/courses"
	errs "learnhub/cli/internal/errors"
	"learnhub/cli/internal/session"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// myCoursesCmd lists the logged-in student's enrollments. A successful fetch
// is snapshotted locally so the list stays viewable when the backend is
// unreachable.
var myCoursesCmd = &cobra.Command{
	Use:     "my-courses",
	Aliases: []string{"enrollments"},
	Short:   "List the courses you are enrolled in",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s := session.FromContext(ctx)
		if user, _ := s.Current(); user == nil {
			// Startup validation may have failed because the backend is down,
			// not because the session is invalid. Only in that case is the
			// cached snapshot worth showing; a rejected credential means the
			// user is simply logged out.
			if s.Offline() && showCachedEnrollments(ctx) {
				return nil
			}
			printNotLoggedIn()
			return nil
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Loading your courses", 120*time.Millisecond)
		enrollments, err := courseSvc.MyEnrollments(ctx)
		stopSpinner()
		if err != nil {
			if errs.IsKind(err, errs.Transport) && showCachedEnrollments(ctx) {
				return nil
			}
			return err
		}

		snapshotEnrollments(ctx, enrollments)
		renderEnrollments(enrollments)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(myCoursesCmd)
}

func renderEnrollments(enrollments []courses.Enrollment) {
	if len(enrollments) == 0 {
		fmt.Println("You're not enrolled in any courses yet.")
		fmt.Println("   Browse the catalog with 'learnhub courses'.")
		return
	}

	data := pterm.TableData{{"ID", "Course", "Instructor", "Progress"}}
	for _, e := range enrollments {
		data = append(data, []string{
			strconv.FormatInt(e.CourseID, 10),
			e.Title,
			e.InstructorName,
			fmt.Sprintf("%d/%d lessons (%.0f%%)", e.CompletedLessons, e.TotalLessons, e.Progress),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// snapshotEnrollments stores the enrollment list for offline viewing.
// Best effort; a failed write never affects the command.
func snapshotEnrollments(ctx context.Context, enrollments []courses.Enrollment) {
	c, err := cache.OpenDefault()
	if err != nil {
		return
	}
	defer c.Close()
	if b, err := json.Marshal(enrollments); err == nil {
		_ = c.Put(ctx, cache.KeyEnrollments, b)
	}
}

// showCachedEnrollments renders the last snapshot, if one exists. Returns
// false when there is nothing cached or the snapshot cannot be read.
func showCachedEnrollments(ctx context.Context) bool {
	c, err := cache.OpenDefault()
	if err != nil {
		return false
	}
	defer c.Close()

	b, age, err := c.Get(ctx, cache.KeyEnrollments)
	if err != nil || b == nil {
		return false
	}
	var enrollments []courses.Enrollment
	if err := json.Unmarshal(b, &enrollments); err != nil {
		return false
	}

	pterm.Warning.Printf("Backend unreachable, showing cached data from %s ago\n", age.Round(time.Minute))
	renderEnrollments(enrollments)
	return true
}
