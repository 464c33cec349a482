package course

import "gorm.io/gorm"

// Course levels
const (
	LevelBeginner     = "BEGINNER"
	LevelIntermediate = "INTERMEDIATE"
	LevelAdvanced     = "ADVANCED"
)

// Course represents a published unit of instruction owned by an instructor
type Course struct {
	gorm.Model
	InstructorID     uint    `json:"instructor_id" gorm:"index;not null"`
	Title            string  `json:"title"`
	Description      string  `json:"description" gorm:"type:text"`
	Category         string  `json:"category" gorm:"index"`
	Level            string  `json:"level" gorm:"default:'BEGINNER'"` // BEGINNER, INTERMEDIATE, ADVANCED
	Price            float64 `json:"price" gorm:"default:0"`
	Rating           float64 `json:"rating" gorm:"default:0"` // mean of review ratings
	StudentsEnrolled int64   `json:"students_enrolled" gorm:"default:0"`
	ThumbnailURL     string  `json:"thumbnail_url"`
	IsPublished      bool    `json:"is_published" gorm:"default:false"`
	IsDeleted        bool    `json:"-" gorm:"default:false"`
}
