// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package courses

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"learnhub/cli/internal/api"
)

// ListParams filter and page the catalog listing. Zero values are omitted
// from the query.
type ListParams struct {
	Page         int
	Limit        int
	Category     string
	Level        Level
	InstructorID int64
}

// CreateCourseRequest carries the fields of POST /courses.
type CreateCourseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Level       Level   `json:"level"`
	Price       float64 `json:"price,omitempty"`
}

// UpdateCourseRequest carries the mutable course fields for PUT /courses/{id}.
// Nil pointers are omitted so the backend only touches what was provided.
type UpdateCourseRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Level       *Level   `json:"level,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	IsPublished *bool    `json:"is_published,omitempty"`
}

// Service performs catalog and enrollment operations.
type Service struct {
	client *api.Client
}

// NewService constructs a course Service over the shared API gateway.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// List fetches a catalog page.
func (s *Service) List(ctx context.Context, p ListParams) (*CourseList, error) {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Level != "" {
		q.Set("level", string(p.Level))
	}
	if p.InstructorID > 0 {
		q.Set("instructor_id", strconv.FormatInt(p.InstructorID, 10))
	}

	var out CourseList
	if err := s.client.Get(ctx, "/courses", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches one course with its modules and lessons.
func (s *Service) Get(ctx context.Context, id int64) (*Course, error) {
	var out struct {
		Course Course `json:"course"`
	}
	if err := s.client.Get(ctx, fmt.Sprintf("/courses/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Course, nil
}

// Create publishes a new course draft (instructor operation).
func (s *Service) Create(ctx context.Context, req CreateCourseRequest) (*Course, error) {
	var out struct {
		Course Course `json:"course"`
	}
	if err := s.client.Post(ctx, "/courses", req, &out); err != nil {
		return nil, err
	}
	return &out.Course, nil
}

// Update changes course fields (instructor operation).
func (s *Service) Update(ctx context.Context, id int64, req UpdateCourseRequest) (*Course, error) {
	var out struct {
		Course Course `json:"course"`
	}
	if err := s.client.Put(ctx, fmt.Sprintf("/courses/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out.Course, nil
}

// Delete removes a course (instructor operation).
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/courses/%d", id), nil)
}

// Approve sets a course's approval flag (admin operation).
func (s *Service) Approve(ctx context.Context, id int64, approved bool) error {
	body := map[string]bool{"approved": approved}
	return s.client.Patch(ctx, fmt.Sprintf("/courses/%d/approve", id), body, nil)
}

// Enroll joins the authenticated student to a course.
func (s *Service) Enroll(ctx context.Context, courseID int64) error {
	return s.client.Post(ctx, fmt.Sprintf("/enrollments/courses/%d", courseID), nil, nil)
}

// MyEnrollments lists the authenticated student's courses.
func (s *Service) MyEnrollments(ctx context.Context) ([]Enrollment, error) {
	var out struct {
		Enrollments []Enrollment `json:"enrollments"`
	}
	if err := s.client.Get(ctx, "/enrollments/my-courses", nil, &out); err != nil {
		return nil, err
	}
	return out.Enrollments, nil
}

// Progress fetches the per-lesson completion state for an enrolled course.
func (s *Service) Progress(ctx context.Context, courseID int64) (*CourseProgress, error) {
	var out CourseProgress
	if err := s.client.Get(ctx, fmt.Sprintf("/enrollments/courses/%d/progress", courseID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkLesson records completion (and optionally watch time) for a lesson.
func (s *Service) MarkLesson(ctx context.Context, lessonID int64, completed bool, watchedSeconds int) error {
	body := map[string]any{"completed": completed}
	if watchedSeconds > 0 {
		body["watchedDuration"] = watchedSeconds
	}
	return s.client.Put(ctx, fmt.Sprintf("/enrollments/lessons/%d/progress", lessonID), body, nil)
}
