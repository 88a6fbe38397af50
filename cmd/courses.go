// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"learnhub/cli/internal/courses"
	errs "learnhub/cli/internal/errors"
	"learnhub/cli/internal/httperrors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	coursesPage     int
	coursesLimit    int
	coursesCategory string
	coursesLevel    string
)

// coursesCmd represents the courses command for browsing the public catalog.
// The catalog is public; no login is required.
var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Browse the course catalog",
	Long: `The courses command lists published courses from the LearnHub catalog.
Results are paginated and can be filtered by category and difficulty level.

Use 'learnhub course <id>' to see a single course in detail.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		params := courses.ListParams{
			Page:     coursesPage,
			Limit:    coursesLimit,
			Category: coursesCategory,
		}
		if coursesLevel != "" {
			level, err := parseLevel(coursesLevel)
			if err != nil {
				return err
			}
			params.Level = level
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Loading catalog", 120*time.Millisecond)
		list, err := courseSvc.List(ctx, params)
		stopSpinner()
		if err != nil {
			if errs.IsKind(err, errs.Transport) {
				return httperrors.FormatNetworkError(err, "loading the course catalog")
			}
			return err
		}

		if len(list.Courses) == 0 {
			fmt.Println("No courses match those filters.")
			return nil
		}

		data := pterm.TableData{{"ID", "Title", "Instructor", "Category", "Level", "Price"}}
		for _, c := range list.Courses {
			data = append(data, []string{
				strconv.FormatInt(c.ID, 10),
				c.Title,
				c.InstructorName,
				c.Category,
				string(c.Level),
				formatPrice(c.Price),
			})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}

		p := list.Pagination
		if p.Pages > 1 {
			fmt.Printf("Page %d of %d (%d courses). Use --page to see more.\n", p.Page, p.Pages, p.Total)
		}
		return nil
	},
}

// courseCmd shows a single course with its modules.
var courseCmd = &cobra.Command{
	Use:   "course <id>",
	Short: "Show one course in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id, err := parseID(args[0], "course id")
		if err != nil {
			return err
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Loading course", 120*time.Millisecond)
		c, err := courseSvc.Get(ctx, id)
		stopSpinner()
		if err != nil {
			if errs.IsKind(err, errs.Transport) {
				return httperrors.FormatNetworkError(err, "loading the course")
			}
			return err
		}

		pterm.DefaultSection.Println(c.Title)
		fmt.Println(c.Description)
		fmt.Println()
		fmt.Printf("Instructor: %s\n", c.InstructorName)
		fmt.Printf("Category:   %s · %s\n", c.Category, c.Level)
		fmt.Printf("Price:      %s\n", formatPrice(c.Price))
		if c.EnrolledStudents > 0 {
			fmt.Printf("Students:   %d enrolled\n", c.EnrolledStudents)
		}

		if len(c.Modules) > 0 {
			fmt.Println()
			pterm.DefaultSection.WithLevel(2).Println("Curriculum")
			for _, m := range c.Modules {
				fmt.Printf("  %d. %s (%d lessons)\n", m.OrderIndex, m.Title, m.LessonsCount)
				for _, l := range m.Lessons {
					fmt.Printf("     - %s (%s)\n", l.Title, formatDuration(l.Duration))
				}
			}
		}

		fmt.Println()
		fmt.Printf("Enroll with 'learnhub enroll %d'.\n", c.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(courseCmd)
	coursesCmd.Flags().IntVar(&coursesPage, "page", 1, "Page of results to show")
	coursesCmd.Flags().IntVar(&coursesLimit, "limit", 10, "Courses per page")
	coursesCmd.Flags().StringVar(&coursesCategory, "category", "", "Filter by category")
	coursesCmd.Flags().StringVar(&coursesLevel, "level", "", "Filter by level: beginner, intermediate or advanced")
}

func parseID(raw, what string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", what, raw)
	}
	return id, nil
}

func formatPrice(p float64) string {
	if p == 0 {
		return "Free"
	}
	return fmt.Sprintf("$%.2f", p)
}

// formatDuration renders lesson duration (seconds) as m:ss or h:mm:ss.
func formatDuration(seconds int) string {
	if seconds <= 0 {
		return "0:00"
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
