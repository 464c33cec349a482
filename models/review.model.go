package models

import "gorm.io/gorm"

// Review is a learner's rating of a course, one per (user, course).
// Course.Rating is recomputed as the mean on every review write.
type Review struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course_review"`
	CourseID  uint   `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course_review"`
	Rating    int    `json:"rating" gorm:"not null"` // 1-5
	Comment   string `json:"comment" gorm:"type:text"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
