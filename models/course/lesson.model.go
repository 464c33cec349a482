package course

import "gorm.io/gorm"

// Lesson represents one playable unit within a course
type Lesson struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	VideoURL    string `json:"video_url"`
	Duration    int    `json:"duration" gorm:"default:0"`    // duration in minutes
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // lesson order in course, plain integer
	IsPreview   bool   `json:"is_preview" gorm:"default:false"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}
