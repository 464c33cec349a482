package controllers

import (
	"time"

	courseModels "lms/models/course"
)

// CourseStats summarizes enrollment activity for one course
type CourseStats struct {
	CourseID          uint    `json:"course_id"`
	Title             string  `json:"title"`
	TotalStudents     int     `json:"total_students"`
	CompletedStudents int     `json:"completed_students"`
	AvgProgress       float64 `json:"avg_progress"`
	RecentEnrollments int     `json:"recent_enrollments"`
	Revenue           float64 `json:"revenue"`
	Rating            float64 `json:"rating"`
}

// ComputeCourseStats aggregates one course's enrollments as of now. All
// divisions are zero-guarded, a course with no enrollments reports 0 averages.
func ComputeCourseStats(course courseModels.Course, enrollments []courseModels.Enrollment, now time.Time) CourseStats {
	stats := CourseStats{
		CourseID: course.ID,
		Title:    course.Title,
		Revenue:  course.Price * float64(course.StudentsEnrolled),
		Rating:   course.Rating,
	}

	weekAgo := now.AddDate(0, 0, -7)
	var progressSum float64
	for _, e := range enrollments {
		stats.TotalStudents++
		progressSum += e.Progress
		if e.Progress == 100 {
			stats.CompletedStudents++
		}
		if e.CreatedAt.After(weekAgo) {
			stats.RecentEnrollments++
		}
	}

	if stats.TotalStudents > 0 {
		stats.AvgProgress = progressSum / float64(stats.TotalStudents)
	}

	return stats
}

// InstructorStats aggregates per-course stats across all of an instructor's courses
type InstructorStats struct {
	TotalCourses      int     `json:"total_courses"`
	TotalStudents     int     `json:"total_students"`
	TotalRevenue      float64 `json:"total_revenue"`
	AvgCourseRating   float64 `json:"avg_course_rating"`
	RecentEnrollments int     `json:"recent_enrollments"`
}

// AggregateInstructorStats folds per-course stats into cross-course totals.
// The mean rating is 0 when the instructor has no courses.
func AggregateInstructorStats(courseStats []CourseStats) InstructorStats {
	agg := InstructorStats{TotalCourses: len(courseStats)}

	var ratingSum float64
	for _, s := range courseStats {
		agg.TotalStudents += s.TotalStudents
		agg.TotalRevenue += s.Revenue
		agg.RecentEnrollments += s.RecentEnrollments
		ratingSum += s.Rating
	}

	if len(courseStats) > 0 {
		agg.AvgCourseRating = ratingSum / float64(len(courseStats))
	}

	return agg
}
