package entity

import (
	"time"
)

type Category string

const (
	CategoryCardio      Category = "Cardio"
	CategoryStrength    Category = "Strength"
	CategoryFlexibility Category = "Flexibility"
	CategoryOther       Category = "Other"
)

// Categories lists workout categories in display order
var Categories = []Category{CategoryCardio, CategoryStrength, CategoryFlexibility, CategoryOther}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type Activity struct {
	ID             string    `json:"_id"`
	Type           string    `json:"type"`
	Duration       int       `json:"duration"`
	CaloriesBurned int       `json:"caloriesBurned"`
	Date           time.Time `json:"date"`
}

type Goal struct {
	ID         string  `json:"_id"`
	Type       string  `json:"type"`
	Target     float64 `json:"target"`
	TargetLeft float64 `json:"targetLeft"`
	Completed  bool    `json:"completed"`
}

// IsCompleted is derived from TargetLeft, the Completed field is only what the server reported
func (g Goal) IsCompleted() bool {
	return g.TargetLeft == 0
}

type Workout struct {
	Type      string    `json:"type"`
	Duration  int       `json:"duration"`
	Category  Category  `json:"category"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
}

type Challenge struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Duration    int        `json:"duration"`
	Progress    int        `json:"progress"`
	Difficulty  Difficulty `json:"difficulty"`
	Reminder    bool       `json:"reminder"`
	Completed   bool       `json:"completed"`
}

// PersonalBests maps a workout category to the longest duration logged for it
type PersonalBests map[Category]int

// NewPersonalBests returns bests with every category seeded at 0
func NewPersonalBests() PersonalBests {
	bests := make(PersonalBests, len(Categories))
	for _, c := range Categories {
		bests[c] = 0
	}
	return bests
}

// Clone copies bests, filling categories missing from it with 0
func (pb PersonalBests) Clone() PersonalBests {
	out := NewPersonalBests()
	for c, v := range pb {
		out[c] = v
	}
	return out
}

func IsCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
