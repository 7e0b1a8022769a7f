package models

import "time"

// RoutineEntry is a daily self-tracking record. Entries are immutable and
// queried most-recent-first.
type RoutineEntry struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Date            string    `json:"date"` // calendar day, "2006-01-02"
	SleepHours      *float64  `json:"sleep_hours,omitempty"`
	WaterGlasses    *int      `json:"water_glasses,omitempty"`
	ExerciseMinutes *int      `json:"exercise_minutes,omitempty"`
	Mood            *string   `json:"mood,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// RoutineRequest is the body of POST /api/routine.
type RoutineRequest struct {
	UserID          string   `json:"user_id"`
	Date            string   `json:"date"`
	SleepHours      *float64 `json:"sleep_hours,omitempty"`
	WaterGlasses    *int     `json:"water_glasses,omitempty"`
	ExerciseMinutes *int     `json:"exercise_minutes,omitempty"`
	Mood            *string  `json:"mood,omitempty"`
}
