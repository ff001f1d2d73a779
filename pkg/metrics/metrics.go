// Package metrics derives dashboard values from collection snapshots.
// Every function here is pure: no I/O and no mutation of its inputs.
package metrics

import (
	"math"
	"sort"
	"time"

	"github.com/limbo/fitfusion/pkg/entity"
)

type ActivitySummary struct {
	Count         int `json:"totalActivities"`
	TotalDuration int `json:"totalDuration"`
	TotalCalories int `json:"totalCalories"`
}

type WorkoutSummary struct {
	TotalWorkouts int `json:"totalWorkouts"`
	TotalTime     int `json:"totalTime"`
}

func Summary(activities []entity.Activity) ActivitySummary {
	s := ActivitySummary{Count: len(activities)}
	for _, a := range activities {
		s.TotalDuration += a.Duration
		s.TotalCalories += a.CaloriesBurned
	}
	return s
}

func WeeklySummary(workouts []entity.Workout) WorkoutSummary {
	s := WorkoutSummary{TotalWorkouts: len(workouts)}
	for _, w := range workouts {
		s.TotalTime += w.Duration
	}
	return s
}

// GoalProgressPercent is min(100, (target - targetLeft) / target * 100), never below 0.
// It reaches 100 only when nothing is left.
// Target below 1 can't pass validation, it is treated as all-or-nothing.
func GoalProgressPercent(g entity.Goal) float64 {
	if g.Target < 1 {
		if g.TargetLeft <= 0 {
			return 100
		}
		return 0
	}
	p := clampPercent((g.Target - g.TargetLeft) / g.Target * 100)
	if g.TargetLeft > 0 && p >= 100 {
		return almostComplete
	}
	return p
}

// almostComplete is the largest percentage below 100
var almostComplete = math.Nextafter(100, 0)

// ChallengeProgressPercent is progress / duration * 100.
// Zero duration is degenerate input and yields 100 when progress has caught up, else 0.
func ChallengeProgressPercent(c entity.Challenge) float64 {
	if c.Duration <= 0 {
		if c.Progress >= c.Duration {
			return 100
		}
		return 0
	}
	return clampPercent(float64(c.Progress) / float64(c.Duration) * 100)
}

// UpdatePersonalBest returns a copy of bests with category raised to duration if it is larger
func UpdatePersonalBest(bests entity.PersonalBests, category entity.Category, duration int) entity.PersonalBests {
	out := bests.Clone()
	if duration > out[category] {
		out[category] = duration
	}
	return out
}

// FireRating splits a percentage into five icons: full, half and empty
func FireRating(percent float64) (full, half, empty int) {
	p := clampPercent(percent)
	full = int(p / 20)
	if full < 5 && math.Mod(p, 20) >= 10 {
		half = 1
	}
	empty = 5 - full - half
	return full, half, empty
}

const (
	lowDurationThreshold = 100
	lowCaloriesThreshold = 500
)

func DashboardTip(s ActivitySummary) string {
	switch {
	case s.TotalDuration < lowDurationThreshold:
		return "Keep it up! Aim for at least 150 minutes of activity per week for a healthier you!"
	case s.TotalCalories < lowCaloriesThreshold:
		return "Great start! Consider increasing the intensity to burn more calories."
	default:
		return "You're doing amazing! Stay consistent and keep reaching for your goals!"
	}
}

type Streak struct {
	Current int       `json:"current"`
	Max     int       `json:"max"`
	LastDay time.Time `json:"lastDay,omitempty"`
}

// ActivityStreak counts consecutive calendar days (UTC) with at least one activity.
// Current is the run ending on the most recent active day while that day is today
// or yesterday relative to now, otherwise it is 0.
func ActivityStreak(activities []entity.Activity, now time.Time) Streak {
	if len(activities) == 0 {
		return Streak{}
	}
	days := make(map[time.Time]struct{}, len(activities))
	for _, a := range activities {
		days[day(a.Date)] = struct{}{}
	}
	sorted := make([]time.Time, 0, len(days))
	for d := range days {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	var s Streak
	run := 0
	for i, d := range sorted {
		if i > 0 && sorted[i-1].AddDate(0, 0, 1).Equal(d) {
			run++
		} else {
			run = 1
		}
		if run > s.Max {
			s.Max = run
		}
	}
	s.LastDay = sorted[len(sorted)-1]
	if !s.LastDay.Before(day(now).AddDate(0, 0, -1)) {
		s.Current = run
	}
	return s
}

type SeriesPoint struct {
	Date     time.Time `json:"date"`
	Type     string    `json:"type"`
	Duration int       `json:"duration"`
	Calories int       `json:"calories"`
}

// ActivitySeries returns chart points in chronological order
func ActivitySeries(activities []entity.Activity) []SeriesPoint {
	points := make([]SeriesPoint, 0, len(activities))
	for _, a := range activities {
		points = append(points, SeriesPoint{
			Date:     a.Date,
			Type:     a.Type,
			Duration: a.Duration,
			Calories: a.CaloriesBurned,
		})
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}

func day(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}

func clampPercent(p float64) float64 {
	switch {
	case math.IsNaN(p) || p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
