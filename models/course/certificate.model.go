package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate represents proof of course completion. Verification codes are
// unguessable and allow public validation without authentication.
type Certificate struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"index;not null"`
	CourseID          uint      `json:"course_id" gorm:"index;not null"`
	CertificateNumber string    `json:"certificate_number" gorm:"unique"`
	VerificationCode  string    `json:"verification_code" gorm:"uniqueIndex"`
	CertificateURL    string    `json:"certificate_url"`
	IssuedAt          time.Time `json:"issued_at"`
	IsDeleted         bool      `json:"-" gorm:"default:false"`
}
