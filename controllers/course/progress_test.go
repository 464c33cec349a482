package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompletionPercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      float64
	}{
		{"zero lessons", 0, 0, 0},
		{"zero lessons with stray completions", 3, 0, 0},
		{"none completed", 0, 4, 0},
		{"half completed", 2, 4, 50},
		{"all completed", 4, 4, 100},
		{"one of three", 1, 3, 100.0 / 3},
		{"negative total", 1, -1, 0},
		{"negative completed", -2, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompletionPercentage(tt.completed, tt.total))
		})
	}
}

func TestCompletionPercentage_CompletedCappedAtTotal(t *testing.T) {
	// Stale completion rows must never push progress past 100
	assert.Equal(t, 100.0, CompletionPercentage(7, 5))
}

func TestAttemptLimitReached(t *testing.T) {
	assert.False(t, AttemptLimitReached(0, 3))
	assert.False(t, AttemptLimitReached(2, 3))
	assert.True(t, AttemptLimitReached(3, 3))
	assert.True(t, AttemptLimitReached(4, 3))
}

func TestAttemptLimitReached_UnlimitedWhenNoCap(t *testing.T) {
	assert.False(t, AttemptLimitReached(1000, 0))
	assert.False(t, AttemptLimitReached(1000, -1))
}
