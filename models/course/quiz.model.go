package course

import (
	"encoding/json"

	"gorm.io/gorm"
)

// Question types
const (
	QuestionMultipleChoice = "MULTIPLE_CHOICE"
	QuestionTrueFalse      = "TRUE_FALSE"
	QuestionShortAnswer    = "SHORT_ANSWER"
)

// Quiz represents a graded question set scoped to a course or a single lesson.
// Exactly one of CourseID/LessonID is set.
type Quiz struct {
	gorm.Model
	CourseID     *uint      `json:"course_id" gorm:"index"`
	LessonID     *uint      `json:"lesson_id" gorm:"index"`
	Title        string     `json:"title"`
	PassingScore float64    `json:"passing_score" gorm:"default:70"` // percentage required to pass
	MaxAttempts  int        `json:"max_attempts" gorm:"default:3"`
	TimeLimit    int        `json:"time_limit" gorm:"default:0"` // minutes, 0 = unlimited
	Questions    []Question `json:"questions" gorm:"foreignKey:QuizID"`
	IsDeleted    bool       `json:"-" gorm:"default:false"`
}

// Question is owned by its quiz; the question set is immutable after creation.
// CorrectAnswer and Explanation are never serialized directly; learner-facing
// payloads are built from explicit response structs.
type Question struct {
	gorm.Model
	QuizID        uint    `json:"quiz_id" gorm:"index;not null"`
	Text          string  `json:"text" gorm:"type:text"`
	Type          string  `json:"type" gorm:"default:'MULTIPLE_CHOICE'"` // MULTIPLE_CHOICE, TRUE_FALSE, SHORT_ANSWER
	Options       string  `json:"-" gorm:"type:text"`                    // JSON array of option strings
	CorrectAnswer string  `json:"-" gorm:"type:text"`
	Points        float64 `json:"points" gorm:"default:1"`
	Explanation   string  `json:"-" gorm:"type:text"`
	OrderIndex    int     `json:"order_index" gorm:"default:0"`
}

// OptionValues decodes the stored JSON option list
func (q *Question) OptionValues() []string {
	if q.Options == "" {
		return nil
	}
	var opts []string
	if err := json.Unmarshal([]byte(q.Options), &opts); err != nil {
		return nil
	}
	return opts
}

// QuizAttempt represents one graded submission of a quiz by a learner.
// Attempts are append-only and never mutated.
type QuizAttempt struct {
	gorm.Model
	UserID        uint            `json:"user_id" gorm:"index;not null"`
	QuizID        uint            `json:"quiz_id" gorm:"index;not null"`
	Answers       []AttemptAnswer `json:"answers" gorm:"foreignKey:AttemptID"`
	Score         float64         `json:"score"` // percentage 0-100
	Passed        bool            `json:"passed" gorm:"default:false"`
	TimeSpent     int             `json:"time_spent"` // seconds
	AttemptNumber int             `json:"attempt_number" gorm:"default:1"`
	IsDeleted     bool            `json:"-" gorm:"default:false"`
}

// AttemptAnswer records the per-question correctness breakdown of an attempt
type AttemptAnswer struct {
	gorm.Model
	AttemptID     uint    `json:"attempt_id" gorm:"index;not null"`
	QuestionID    uint    `json:"question_id" gorm:"index;not null"`
	Submitted     string  `json:"submitted" gorm:"type:text"`
	IsCorrect     bool    `json:"is_correct" gorm:"default:false"`
	PointsAwarded float64 `json:"points_awarded" gorm:"default:0"`
}
