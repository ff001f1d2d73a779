package entity

// Drafts carry user input that has not been validated yet.

type ActivityDraft struct {
	Type           string `json:"type" validate:"required,notblank"`
	Duration       int    `json:"duration" validate:"min=1"`
	CaloriesBurned int    `json:"caloriesBurned" validate:"min=0"`
}

type GoalDraft struct {
	Type       string  `json:"type" validate:"required,notblank"`
	Target     float64 `json:"target" validate:"gte=1"`
	TargetLeft float64 `json:"targetLeft" validate:"gte=0,ltefield=Target"`
}

type WorkoutDraft struct {
	Type     string   `json:"type" validate:"required,notblank"`
	Duration int      `json:"duration" validate:"gt=0"`
	Category Category `json:"category" validate:"required,oneof=Cardio Strength Flexibility Other"`
}

type ChallengeDraft struct {
	Description string     `json:"description" validate:"required,notblank"`
	Duration    int        `json:"duration" validate:"min=1"`
	Difficulty  Difficulty `json:"difficulty" validate:"required,oneof=Easy Medium Hard"`
	Reminder    bool       `json:"reminder"`
}

func (a Activity) Draft() ActivityDraft {
	return ActivityDraft{
		Type:           a.Type,
		Duration:       a.Duration,
		CaloriesBurned: a.CaloriesBurned,
	}
}

func (g Goal) Draft() GoalDraft {
	return GoalDraft{
		Type:       g.Type,
		Target:     g.Target,
		TargetLeft: g.TargetLeft,
	}
}

func (c Challenge) Draft() ChallengeDraft {
	return ChallengeDraft{
		Description: c.Description,
		Duration:    c.Duration,
		Difficulty:  c.Difficulty,
		Reminder:    c.Reminder,
	}
}
