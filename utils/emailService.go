package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"time"

	"lms/config"
)

const (
	smtpHost       = "smtp.gmail.com"
	smtpPort       = "587"
	mailMaxRetries = 3
)

// sendMail delivers one HTML email with bounded retry. Transient SMTP failures
// are retried with exponential backoff before the error is surfaced.
func sendMail(to, subject, body string) error {
	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	header := fmt.Sprintf("Subject: %s\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n", subject)
	message := []byte(header + "\n" + body)

	auth := smtp.PlainAuth("", from, password, smtpHost)

	var err error
	backoff := time.Second
	for attempt := 1; attempt <= mailMaxRetries; attempt++ {
		err = smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{to}, message)
		if err == nil {
			return nil
		}
		log.Printf("Error sending email to %s (attempt %d/%d): %v", to, attempt, mailMaxRetries, err)
		if attempt < mailMaxRetries {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	return err
}

// SendEnrollmentEmail sends an email notification when a student enrolls in a course
func SendEnrollmentEmail(email, userName, courseName string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">🎉 Enrollment Successful!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Congratulations! You have successfully enrolled in:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #666666;">You can now access all the lessons and start learning. Track your progress and complete the course to earn your certificate.</p>
					<p style="font-size: 14px; color: #999999; text-align: center; margin-top: 30px;">Happy Learning!</p>
				</div>
			</body>
		</html>
	`, userName, courseName)

	return sendMail(email, "Course Enrollment Confirmation", body)
}

// SendCertificateEmail sends a certificate issued notification
func SendCertificateEmail(email, userName, courseName, certificateNumber, verificationCode string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">🏆 Certificate of Completion</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Congratulations on completing the course:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<div style="background-color: #f8f9fa; border-radius: 8px; padding: 20px; margin: 20px 0; text-align: center;">
						<p style="font-size: 14px; color: #666666; margin-bottom: 10px;">Your Certificate Number:</p>
						<h2 style="color: #2196F3; margin: 0;">%s</h2>
						<p style="font-size: 12px; color: #999999; margin-top: 10px;">Verification code: %s</p>
					</div>
					<p style="font-size: 14px; color: #666666;">Anyone can verify your certificate with the verification code, no account required.</p>
					<p style="font-size: 14px; color: #999999; text-align: center; margin-top: 30px;">Congratulations on this achievement!</p>
				</div>
			</body>
		</html>
	`, userName, courseName, certificateNumber, verificationCode)

	return sendMail(email, "Course Completion Certificate", body)
}

// SendAnnouncementEmail sends an instructor announcement to one enrolled student
func SendAnnouncementEmail(email, userName, courseName, title, message string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">📢 %s</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 14px; color: #666666;">New announcement in <b>%s</b>:</p>
					<p style="font-size: 15px; color: #555555; background-color: #f8f9fa; border-radius: 8px; padding: 16px;">%s</p>
				</div>
			</body>
		</html>
	`, title, userName, courseName, message)

	return sendMail(email, "Course Announcement: "+courseName, body)
}

// SendReminderEmail nudges an inactive student back to a course
func SendReminderEmail(email, userName, courseName string, progress float64) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">⏰ Keep Learning!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">You haven't visited <b>%s</b> in a while. You're %.0f%% of the way there — pick up where you left off!</p>
					<p style="font-size: 14px; color: #999999; text-align: center; margin-top: 30px;">See you in class!</p>
				</div>
			</body>
		</html>
	`, userName, courseName, progress)

	return sendMail(email, "Continue your course: "+courseName, body)
}

// SendInstructorDigestEmail sends the weekly stats digest to an instructor
func SendInstructorDigestEmail(email, userName string, newEnrollments, completions int64) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">📊 Your Weekly Summary</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Here is how your courses did this week:</p>
					<ul style="font-size: 15px; color: #555555;">
						<li>New enrollments: <b>%d</b></li>
						<li>Course completions: <b>%d</b></li>
					</ul>
					<p style="font-size: 14px; color: #999999; text-align: center; margin-top: 30px;">Log in to your dashboard for details.</p>
				</div>
			</body>
		</html>
	`, userName, newEnrollments, completions)

	return sendMail(email, "Your Weekly Instructor Summary", body)
}
