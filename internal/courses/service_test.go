// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package courses

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/cli/internal/api"
)

func TestListEncodesFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/courses", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "12", q.Get("limit"))
		assert.Equal(t, "programming", q.Get("category"))
		assert.Equal(t, "beginner", q.Get("level"))

		_, _ = w.Write([]byte(`{
			"courses": [{"id": 10, "title": "Intro to Go", "level": "beginner"}],
			"pagination": {"page": 2, "limit": 12, "total": 25, "pages": 3}
		}`))
	}))
	defer srv.Close()

	svc := NewService(api.New(srv.URL))
	list, err := svc.List(context.Background(), ListParams{
		Page:     2,
		Limit:    12,
		Category: "programming",
		Level:    LevelBeginner,
	})
	require.NoError(t, err)
	require.Len(t, list.Courses, 1)
	assert.Equal(t, "Intro to Go", list.Courses[0].Title)
	assert.Equal(t, 3, list.Pagination.Pages)
}

func TestListOmitsZeroFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"courses": [], "pagination": {}}`))
	}))
	defer srv.Close()

	_, err := NewService(api.New(srv.URL)).List(context.Background(), ListParams{})
	require.NoError(t, err)
}

func TestGetUnwrapsCourse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/courses/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"course": {"id": 7, "title": "SQL", "modules": [{"id": 1, "lessons": [{"id": 9}]}]}}`))
	}))
	defer srv.Close()

	c, err := NewService(api.New(srv.URL)).Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "SQL", c.Title)
	require.Len(t, c.Modules, 1)
	assert.Equal(t, int64(9), c.Modules[0].Lessons[0].ID)
}

func TestApprove(t *testing.T) {
	var got map[string]bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/courses/3/approve", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"message": "ok"}`))
	}))
	defer srv.Close()

	require.NoError(t, NewService(api.New(srv.URL)).Approve(context.Background(), 3, true))
	assert.True(t, got["approved"])
}

func TestEnrollAndMyEnrollments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/enrollments/courses/5":
			w.WriteHeader(http.StatusCreated)
		case r.Method == http.MethodGet && r.URL.Path == "/enrollments/my-courses":
			_, _ = w.Write([]byte(`{"enrollments": [
				{"id": 1, "course_id": 5, "title": "Go", "total_lessons": 10, "completed_lessons": 4, "progress": 40}
			]}`))
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	svc := NewService(api.New(srv.URL))
	require.NoError(t, svc.Enroll(context.Background(), 5))

	enrollments, err := svc.MyEnrollments(context.Background())
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, 4, enrollments[0].CompletedLessons)
}

func TestMarkLesson(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/enrollments/lessons/9/progress", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"message": "ok"}`))
	}))
	defer srv.Close()

	svc := NewService(api.New(srv.URL))
	require.NoError(t, svc.MarkLesson(context.Background(), 9, true, 300))
	assert.Equal(t, true, got["completed"])
	assert.Equal(t, float64(300), got["watchedDuration"])

	// Watched duration is optional.
	got = nil
	require.NoError(t, svc.MarkLesson(context.Background(), 9, true, 0))
	_, present := got["watchedDuration"]
	assert.False(t, present)
}
