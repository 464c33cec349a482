package controllers

import (
	"fmt"
	"sort"
	"time"
)

// Activity event kinds
const (
	ActivityLessonCompleted = "LESSON_COMPLETED"
	ActivityQuizAttempted   = "QUIZ_ATTEMPTED"
)

// Activity is one entry of the student's unified activity feed
type Activity struct {
	Kind      string    `json:"kind"`
	EntityID  uint      `json:"entity_id"`
	Message   string    `json:"message"`
	Score     *float64  `json:"score,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// LessonActivity builds a feed entry for a completed lesson. A deleted lesson
// degrades to a placeholder label rather than failing the feed.
func LessonActivity(lessonID uint, lessonTitle string, completedAt time.Time) Activity {
	if lessonTitle == "" {
		lessonTitle = "Unknown Lesson"
	}
	return Activity{
		Kind:      ActivityLessonCompleted,
		EntityID:  lessonID,
		Message:   fmt.Sprintf("Completed lesson \"%s\"", lessonTitle),
		Timestamp: completedAt,
	}
}

// QuizActivity builds a feed entry for a quiz attempt
func QuizActivity(attemptID uint, quizTitle string, score float64, attemptedAt time.Time) Activity {
	if quizTitle == "" {
		quizTitle = "Unknown Quiz"
	}
	return Activity{
		Kind:      ActivityQuizAttempted,
		EntityID:  attemptID,
		Message:   fmt.Sprintf("Scored %.0f%% on quiz \"%s\"", score, quizTitle),
		Score:     &score,
		Timestamp: attemptedAt,
	}
}

// MergeActivities merges heterogeneous event lists into one feed sorted
// strictly descending by timestamp. Ties break on (kind, entity id) so
// pagination over the merged feed stays stable.
func MergeActivities(lists ...[]Activity) []Activity {
	var merged []Activity
	for _, list := range lists {
		merged = append(merged, list...)
	}

	sort.Slice(merged, func(i, j int) bool {
		if !merged[i].Timestamp.Equal(merged[j].Timestamp) {
			return merged[i].Timestamp.After(merged[j].Timestamp)
		}
		if merged[i].Kind != merged[j].Kind {
			return merged[i].Kind < merged[j].Kind
		}
		return merged[i].EntityID < merged[j].EntityID
	})

	return merged
}

// PaginateActivities slices a merged feed. Pagination always happens after the
// merge-sort: truncating the source lists first can drop recent items from one
// source in favor of older items from another.
func PaginateActivities(merged []Activity, page, limit int) []Activity {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	start := (page - 1) * limit
	if start >= len(merged) {
		return []Activity{}
	}
	end := start + limit
	if end > len(merged) {
		end = len(merged)
	}
	return merged[start:end]
}
