// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package courses covers the catalog, authoring, moderation and enrollment
// operations of the LearnHub backend, plus the progress arithmetic derived
// from them. All calls go through the shared API gateway, so authorization
// and 401 handling behave the same as everywhere else.
package courses

// Level is the difficulty tag the backend assigns a course.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Course is a catalog entry. Modules are present only on detail reads.
type Course struct {
	ID               int64        `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	InstructorID     int64        `json:"instructor_id"`
	InstructorName   string       `json:"instructor_name"`
	Category         string       `json:"category"`
	Level            Level        `json:"level"`
	Price            float64      `json:"price"`
	Thumbnail        string       `json:"thumbnail,omitempty"`
	IsPublished      bool         `json:"is_published"`
	IsApproved       bool         `json:"is_approved"`
	CreatedAt        string       `json:"created_at"`
	EnrolledStudents int          `json:"enrolled_students,omitempty"`
	Modules          []Module     `json:"modules,omitempty"`
	Stats            *CourseStats `json:"stats,omitempty"`
}

// CourseStats are instructor-facing aggregates the backend computes.
type CourseStats struct {
	EnrolledStudents   int     `json:"enrolled_students"`
	AverageScore       float64 `json:"average_score"`
	CertificatesIssued int     `json:"certificates_issued"`
}

// Module groups lessons within a course.
type Module struct {
	ID            int64    `json:"id"`
	CourseID      int64    `json:"course_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	OrderIndex    int      `json:"order_index"`
	LessonsCount  int      `json:"lessons_count"`
	TotalDuration int      `json:"total_duration"`
	Lessons       []Lesson `json:"lessons,omitempty"`
}

// Lesson is a single unit of course content. Completed and WatchedDuration
// are per-student fields present on progress reads.
type Lesson struct {
	ID              int64  `json:"id"`
	ModuleID        int64  `json:"module_id"`
	Title           string `json:"title"`
	Content         string `json:"content"`
	VideoURL        string `json:"video_url,omitempty"`
	Duration        int    `json:"duration"`
	OrderIndex      int    `json:"order_index"`
	Completed       bool   `json:"completed"`
	WatchedDuration int    `json:"watched_duration,omitempty"`
	CompletedAt     string `json:"completed_at,omitempty"`
}

// Enrollment is a student's membership in a course, flattened with the
// course fields the my-courses listing shows.
type Enrollment struct {
	ID               int64   `json:"id"`
	StudentID        int64   `json:"student_id"`
	CourseID         int64   `json:"course_id"`
	EnrolledAt       string  `json:"enrolled_at"`
	CompletedAt      string  `json:"completed_at,omitempty"`
	Progress         float64 `json:"progress"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Thumbnail        string  `json:"thumbnail,omitempty"`
	Level            string  `json:"level"`
	InstructorName   string  `json:"instructor_name"`
	TotalLessons     int     `json:"total_lessons"`
	CompletedLessons int     `json:"completed_lessons"`
}

// Pagination mirrors the backend's list envelope.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// CourseList is the catalog listing response.
type CourseList struct {
	Courses    []Course   `json:"courses"`
	Pagination Pagination `json:"pagination"`
}

// ProgressStats is the per-course completion summary.
type ProgressStats struct {
	TotalLessons       int `json:"total_lessons"`
	CompletedLessons   int `json:"completed_lessons"`
	ProgressPercentage int `json:"progress_percentage"`
}

// CourseProgress is the per-student view of a course's modules with lesson
// completion state.
type CourseProgress struct {
	Course  Course        `json:"course"`
	Modules []Module      `json:"modules"`
	Stats   ProgressStats `json:"stats"`
}
