package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateVerificationCode returns a globally unique, unguessable code used to
// publicly validate a certificate without authentication.
func GenerateVerificationCode() string {
	return uuid.NewString()
}

// GenerateCertificateNumber builds a human-readable certificate number
func GenerateCertificateNumber(courseID, userID uint) string {
	return fmt.Sprintf("CERT-%d-%d-%d", courseID, userID, time.Now().Unix())
}

// Pagination normalizes optional page/limit values to sane defaults
func Pagination(page, limit *int) (int, int, int) {
	p := 1
	l := 10
	if page != nil && *page > 0 {
		p = *page
	}
	if limit != nil && *limit > 0 {
		l = *limit
	}
	return p, l, (p - 1) * l
}
