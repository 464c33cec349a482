package models

import "gorm.io/gorm"

// Chat message roles, matching the completion API convention
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one turn of a user's conversation with the AI assistant.
// CourseID optionally scopes the conversation to a course.
type ChatMessage struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Role      string `json:"role"` // user, assistant
	Content   string `json:"content" gorm:"type:text"`
	CourseID  *uint  `json:"course_id" gorm:"index"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
