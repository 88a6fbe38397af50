// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package courses

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func modulesFixture() []Module {
	return []Module{
		{
			ID: 1,
			Lessons: []Lesson{
				{ID: 1, Completed: true},
				{ID: 2, Completed: true},
			},
		},
		{
			ID: 2,
			Lessons: []Lesson{
				{ID: 3, Completed: false},
				{ID: 4, Completed: false},
				{ID: 5, Completed: false},
			},
		},
	}
}

func TestRecomputeStats(t *testing.T) {
	stats := RecomputeStats(modulesFixture())
	assert.Equal(t, 5, stats.TotalLessons)
	assert.Equal(t, 2, stats.CompletedLessons)
	assert.Equal(t, 40, stats.ProgressPercentage)
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{name: "zero total", completed: 0, total: 0, want: 0},
		{name: "none done", completed: 0, total: 7, want: 0},
		{name: "all done", completed: 7, total: 7, want: 100},
		{name: "rounds half up", completed: 1, total: 8, want: 13},
		{name: "rounds down", completed: 1, total: 3, want: 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentage(tt.completed, tt.total))
		})
	}
}

func TestModulePercentage(t *testing.T) {
	mods := modulesFixture()
	assert.Equal(t, 100, ModulePercentage(mods[0]))
	assert.Equal(t, 0, ModulePercentage(mods[1]))
	assert.Equal(t, 0, ModulePercentage(Module{}))
}

func TestNextLesson(t *testing.T) {
	mods := modulesFixture()
	l, ok := NextLesson(mods)
	assert.True(t, ok)
	assert.Equal(t, int64(3), l.ID)

	// Everything complete: fall back to the first lesson.
	for i := range mods {
		for j := range mods[i].Lessons {
			mods[i].Lessons[j].Completed = true
		}
	}
	l, ok = NextLesson(mods)
	assert.True(t, ok)
	assert.Equal(t, int64(1), l.ID)

	_, ok = NextLesson(nil)
	assert.False(t, ok)
}
