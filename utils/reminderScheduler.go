package utils

import (
	"fmt"
	"log"
	"time"

	"lms/database"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[REMINDER-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// processInactivityReminders emails students whose in-progress enrollments have
// not been touched for a week. Per-recipient failures are logged and skipped.
func processInactivityReminders() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -7)

	var enrollments []courseModels.Enrollment
	if err := db.Where("status = ? AND is_deleted = ? AND last_accessed_at IS NOT NULL AND last_accessed_at < ?",
		courseModels.StatusInProgress, false, cutoff).Find(&enrollments).Error; err != nil {
		logScheduler("Error fetching stale enrollments: " + err.Error())
		return
	}

	sent := 0
	for _, e := range enrollments {
		var user models.User
		if err := db.Select("name, email").Where("id = ? AND is_deleted = ?", e.UserID, false).First(&user).Error; err != nil || user.Email == "" {
			continue
		}
		var course courseModels.Course
		if err := db.Select("title").Where("id = ?", e.CourseID).First(&course).Error; err != nil {
			continue
		}

		if err := SendReminderEmail(user.Email, user.Name, course.Title, e.Progress); err != nil {
			logScheduler("Reminder email failed for " + user.Email + ": " + err.Error())
			continue
		}

		notification := models.Notification{
			UserID:  e.UserID,
			Type:    models.NotifyReminder,
			Title:   "Keep learning!",
			Message: "You haven't visited " + course.Title + " in a while.",
		}
		db.Create(&notification)
		sent++
	}

	logScheduler(fmt.Sprintf("Inactivity reminders processed, %d sent", sent))
}

// processInstructorDigests emails each instructor their weekly enrollment and
// completion counts.
func processInstructorDigests() {
	db := database.Database.Db
	weekAgo := time.Now().AddDate(0, 0, -7)

	var instructors []models.User
	if err := db.Where("role = ? AND is_deleted = ?", models.RoleInstructor, false).Find(&instructors).Error; err != nil {
		logScheduler("Error fetching instructors: " + err.Error())
		return
	}

	for _, instructor := range instructors {
		var courseIDs []uint
		db.Model(&courseModels.Course{}).Where("instructor_id = ? AND is_deleted = ?", instructor.ID, false).Pluck("id", &courseIDs)
		if len(courseIDs) == 0 {
			continue
		}

		var newEnrollments, completions int64
		db.Model(&courseModels.Enrollment{}).
			Where("course_id IN ? AND is_deleted = ? AND created_at >= ?", courseIDs, false, weekAgo).
			Count(&newEnrollments)
		db.Model(&courseModels.Enrollment{}).
			Where("course_id IN ? AND is_deleted = ? AND completed_at >= ?", courseIDs, false, weekAgo).
			Count(&completions)

		if newEnrollments == 0 && completions == 0 {
			continue
		}

		if err := SendInstructorDigestEmail(instructor.Email, instructor.Name, newEnrollments, completions); err != nil {
			logScheduler("Digest email failed for " + instructor.Email + ": " + err.Error())
		}
	}

	logScheduler("Instructor digests processed")
}

// InitializeSchedulers starts the background cron jobs
func InitializeSchedulers() *cron.Cron {
	logScheduler("Initializing schedulers...")

	c := cron.New()

	// Daily inactivity reminders at 9 AM
	c.AddFunc("0 9 * * *", processInactivityReminders)

	// Weekly instructor digest on Monday 8 AM
	c.AddFunc("0 8 * * 1", processInstructorDigests)

	c.Start()

	logScheduler("All schedulers initialized successfully")
	return c
}
