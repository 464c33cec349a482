package models

import "gorm.io/gorm"

// Notification types
const (
	NotifyAnnouncement = "ANNOUNCEMENT"
	NotifyCertificate  = "CERTIFICATE"
	NotifyReminder     = "REMINDER"
)

// Notification is an in-app message delivered to a single user
type Notification struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Type      string `json:"type" gorm:"default:'ANNOUNCEMENT'"`
	Title     string `json:"title"`
	Message   string `json:"message" gorm:"type:text"`
	Link      string `json:"link"`
	IsRead    bool   `json:"is_read" gorm:"default:false"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
