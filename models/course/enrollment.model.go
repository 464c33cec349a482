package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment statuses
const (
	StatusEnrolled   = "ENROLLED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
)

// Enrollment tracks a learner's registration in a course. Progress is a cache
// recomputed from LessonProgress rows on every completion write; LessonProgress
// is the single source of truth for completion facts. The (user, course) unique
// index is the backstop against duplicate enrollment when the existence check races.
type Enrollment struct {
	gorm.Model
	UserID           uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course"`
	CourseID         uint       `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course"`
	Status           string     `json:"status" gorm:"default:'ENROLLED'"` // ENROLLED, IN_PROGRESS, COMPLETED
	Progress         float64    `json:"progress" gorm:"default:0"`        // completion percentage (0-100)
	CompletedLessons int        `json:"completed_lessons" gorm:"default:0"`
	TotalLessons     int        `json:"total_lessons" gorm:"default:0"`
	CompletedAt      *time.Time `json:"completed_at"`
	LastAccessedAt   *time.Time `json:"last_accessed_at"`
	IsDeleted        bool       `json:"-" gorm:"default:false"`
}

// LessonProgress is the per-lesson completion fact for a learner, one row per
// (user, lesson) enforced by the unique index.
type LessonProgress struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_user_lesson"`
	LessonID    uint       `json:"lesson_id" gorm:"not null;uniqueIndex:idx_user_lesson"`
	CourseID    uint       `json:"course_id" gorm:"index;not null"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	TimeSpent   int        `json:"time_spent" gorm:"default:0"` // seconds
	CompletedAt *time.Time `json:"completed_at"`
}
