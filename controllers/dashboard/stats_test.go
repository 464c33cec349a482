package controllers

import (
	"testing"
	"time"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
)

func enrollment(progress float64, createdAt time.Time) courseModels.Enrollment {
	e := courseModels.Enrollment{Progress: progress}
	e.CreatedAt = createdAt
	return e
}

func TestComputeCourseStats(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	course := courseModels.Course{
		Title:            "Go Basics",
		Price:            50,
		StudentsEnrolled: 4,
		Rating:           4.5,
	}
	course.ID = 3

	enrollments := []courseModels.Enrollment{
		enrollment(100, now.AddDate(0, 0, -30)),
		enrollment(50, now.AddDate(0, 0, -3)),
		enrollment(0, now.AddDate(0, 0, -1)),
		enrollment(100, now.AddDate(0, 0, -10)),
	}

	stats := ComputeCourseStats(course, enrollments, now)

	assert.Equal(t, uint(3), stats.CourseID)
	assert.Equal(t, 4, stats.TotalStudents)
	assert.Equal(t, 2, stats.CompletedStudents)
	assert.Equal(t, 62.5, stats.AvgProgress)
	assert.Equal(t, 2, stats.RecentEnrollments) // within the last 7 days
	assert.Equal(t, 200.0, stats.Revenue)
	assert.Equal(t, 4.5, stats.Rating)
}

func TestComputeCourseStats_NoEnrollments(t *testing.T) {
	stats := ComputeCourseStats(courseModels.Course{Price: 10}, nil, time.Now())

	assert.Equal(t, 0, stats.TotalStudents)
	assert.Equal(t, 0.0, stats.AvgProgress)
	assert.Equal(t, 0.0, stats.Revenue)
}

func TestAggregateInstructorStats(t *testing.T) {
	agg := AggregateInstructorStats([]CourseStats{
		{TotalStudents: 10, Revenue: 500, Rating: 4, RecentEnrollments: 2},
		{TotalStudents: 5, Revenue: 100, Rating: 5, RecentEnrollments: 1},
	})

	assert.Equal(t, 2, agg.TotalCourses)
	assert.Equal(t, 15, agg.TotalStudents)
	assert.Equal(t, 600.0, agg.TotalRevenue)
	assert.Equal(t, 4.5, agg.AvgCourseRating)
	assert.Equal(t, 3, agg.RecentEnrollments)
}

func TestAggregateInstructorStats_Empty(t *testing.T) {
	agg := AggregateInstructorStats(nil)

	assert.Equal(t, 0, agg.TotalCourses)
	assert.Equal(t, 0.0, agg.AvgCourseRating)
}
