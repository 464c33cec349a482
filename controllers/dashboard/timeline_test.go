package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestMergeActivities_DescendingByTimestamp(t *testing.T) {
	lessons := []Activity{
		LessonActivity(1, "Intro", base.Add(1*time.Hour)),
		LessonActivity(2, "Variables", base.Add(3*time.Hour)),
	}
	quizzes := []Activity{
		QuizActivity(10, "Basics Quiz", 80, base.Add(2*time.Hour)),
	}

	merged := MergeActivities(lessons, quizzes)

	require.Len(t, merged, 3)
	for i := 1; i < len(merged); i++ {
		assert.False(t, merged[i].Timestamp.After(merged[i-1].Timestamp),
			"feed must be descending at index %d", i)
	}
	assert.Equal(t, uint(2), merged[0].EntityID)
	assert.Equal(t, uint(10), merged[1].EntityID)
	assert.Equal(t, uint(1), merged[2].EntityID)
}

func TestMergeActivities_DeterministicTies(t *testing.T) {
	ts := base
	a := []Activity{
		QuizActivity(5, "Quiz", 50, ts),
		LessonActivity(3, "Lesson", ts),
	}
	b := []Activity{
		LessonActivity(3, "Lesson", ts),
		QuizActivity(5, "Quiz", 50, ts),
	}

	first := MergeActivities(a)
	second := MergeActivities(b)

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	// Same events in either input order merge identically
	assert.Equal(t, first[0].Kind, second[0].Kind)
	assert.Equal(t, first[0].EntityID, second[0].EntityID)
	assert.Equal(t, ActivityLessonCompleted, first[0].Kind)
}

func TestMergeActivities_TieBreaksOnEntityID(t *testing.T) {
	ts := base
	merged := MergeActivities([]Activity{
		LessonActivity(9, "B", ts),
		LessonActivity(4, "A", ts),
	})

	require.Len(t, merged, 2)
	assert.Equal(t, uint(4), merged[0].EntityID)
	assert.Equal(t, uint(9), merged[1].EntityID)
}

func TestPaginateActivities_AfterMerge(t *testing.T) {
	var lessons, quizzes []Activity
	// Lessons are all newer than quizzes
	for i := 0; i < 5; i++ {
		lessons = append(lessons, LessonActivity(uint(i+1), "L", base.Add(time.Duration(i+100)*time.Minute)))
		quizzes = append(quizzes, QuizActivity(uint(i+1), "Q", 90, base.Add(time.Duration(i)*time.Minute)))
	}

	merged := MergeActivities(lessons, quizzes)
	page1 := PaginateActivities(merged, 1, 5)

	// The first page must hold only lesson events, the newest source
	require.Len(t, page1, 5)
	for _, a := range page1 {
		assert.Equal(t, ActivityLessonCompleted, a.Kind)
	}

	page2 := PaginateActivities(merged, 2, 5)
	require.Len(t, page2, 5)
	for _, a := range page2 {
		assert.Equal(t, ActivityQuizAttempted, a.Kind)
	}
}

func TestPaginateActivities_Bounds(t *testing.T) {
	merged := []Activity{
		LessonActivity(1, "L", base),
		LessonActivity(2, "L", base.Add(time.Minute)),
	}

	assert.Len(t, PaginateActivities(merged, 1, 10), 2)
	assert.Empty(t, PaginateActivities(merged, 3, 10))
	assert.Len(t, PaginateActivities(merged, 0, 0), 2) // defaults applied
}

func TestActivityBuilders_Placeholders(t *testing.T) {
	lesson := LessonActivity(7, "", base)
	assert.Contains(t, lesson.Message, "Unknown Lesson")
	assert.Nil(t, lesson.Score)

	quiz := QuizActivity(8, "", 83, base)
	assert.Contains(t, quiz.Message, "Unknown Quiz")
	require.NotNil(t, quiz.Score)
	assert.Equal(t, 83.0, *quiz.Score)
	assert.Contains(t, quiz.Message, "83%")
}
