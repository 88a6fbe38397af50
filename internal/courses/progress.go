// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package courses

import "math"

// CompletedLessons counts completed lessons across all modules.
func CompletedLessons(modules []Module) int {
	n := 0
	for _, m := range modules {
		for _, l := range m.Lessons {
			if l.Completed {
				n++
			}
		}
	}
	return n
}

// TotalLessons counts lessons across all modules.
func TotalLessons(modules []Module) int {
	n := 0
	for _, m := range modules {
		n += len(m.Lessons)
	}
	return n
}

// Percentage derives the rounded completion percentage. Zero total yields 0.
func Percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// RecomputeStats rebuilds the stats block from the module tree. Used after a
// local lesson mutation so the display stays consistent without a re-fetch.
func RecomputeStats(modules []Module) ProgressStats {
	total := TotalLessons(modules)
	completed := CompletedLessons(modules)
	return ProgressStats{
		TotalLessons:       total,
		CompletedLessons:   completed,
		ProgressPercentage: Percentage(completed, total),
	}
}

// ModulePercentage is the completion share of a single module.
func ModulePercentage(m Module) int {
	completed := 0
	for _, l := range m.Lessons {
		if l.Completed {
			completed++
		}
	}
	return Percentage(completed, len(m.Lessons))
}

// NextLesson returns the first incomplete lesson in module order, falling
// back to the very first lesson when everything is done. The boolean is
// false only when the course has no lessons at all.
func NextLesson(modules []Module) (Lesson, bool) {
	for _, m := range modules {
		for _, l := range m.Lessons {
			if !l.Completed {
				return l, true
			}
		}
	}
	for _, m := range modules {
		if len(m.Lessons) > 0 {
			return m.Lessons[0], true
		}
	}
	return Lesson{}, false
}
