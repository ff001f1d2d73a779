package validation_test

import (
	"testing"

	"github.com/limbo/fitfusion/pkg/entity"
	"github.com/limbo/fitfusion/pkg/errorvalues"
	"github.com/limbo/fitfusion/pkg/validation"
	"github.com/stretchr/testify/assert"
)

func TestStruct(t *testing.T) {
	testCases := []struct {
		Desc     string
		Draft    any
		Messages []string
	}{
		{
			Desc:  "valid activity",
			Draft: entity.ActivityDraft{Type: "Running", Duration: 30, CaloriesBurned: 300},
		},
		{
			Desc:     "blank activity type",
			Draft:    entity.ActivityDraft{Type: "   ", Duration: 30},
			Messages: []string{"type is required"},
		},
		{
			Desc:     "zero duration",
			Draft:    entity.ActivityDraft{Type: "Running", Duration: 0},
			Messages: []string{"duration must be at least 1"},
		},
		{
			Desc:     "negative calories",
			Draft:    entity.ActivityDraft{Type: "Running", Duration: 10, CaloriesBurned: -5},
			Messages: []string{"caloriesBurned must be at least 0"},
		},
		{
			Desc:  "valid goal",
			Draft: entity.GoalDraft{Type: "Run", Target: 5, TargetLeft: 5},
		},
		{
			Desc:     "target left above target",
			Draft:    entity.GoalDraft{Type: "Run", Target: 5, TargetLeft: 6},
			Messages: []string{"targetLeft cannot be greater than target"},
		},
		{
			Desc:     "target below one",
			Draft:    entity.GoalDraft{Type: "Run", Target: 0.5, TargetLeft: 0},
			Messages: []string{"target must be at least 1"},
		},
		{
			Desc:     "workout with unknown category",
			Draft:    entity.WorkoutDraft{Type: "Row", Duration: 10, Category: "Dance"},
			Messages: []string{"category must be one of: Cardio, Strength, Flexibility, Other"},
		},
		{
			Desc:     "workout with several errors",
			Draft:    entity.WorkoutDraft{Duration: 0, Category: entity.CategoryCardio},
			Messages: []string{"type is required", "duration must be greater than 0"},
		},
		{
			Desc:  "valid challenge",
			Draft: entity.ChallengeDraft{Description: "Walk", Duration: 7, Difficulty: entity.DifficultyMedium},
		},
		{
			Desc:     "challenge without difficulty",
			Draft:    entity.ChallengeDraft{Description: "Walk", Duration: 7},
			Messages: []string{"difficulty is required"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			err := validation.Struct(tc.Draft)
			if tc.Messages == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, errorvalues.ErrValidation)
			assert.Equal(t, tc.Messages, validation.Messages(err))
		})
	}
}

func TestParseMinutes(t *testing.T) {
	v, err := validation.ParseMinutes(" 45 ")
	assert.NoError(t, err)
	assert.Equal(t, 45, v)

	_, err = validation.ParseMinutes("abc")
	assert.ErrorIs(t, err, errorvalues.ErrValidation)
}
