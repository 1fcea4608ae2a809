package model

import "time"

// Day is a calendar date in UTC, formatted as YYYY-MM-DD. The zero value
// means "never".
type Day string

// DayOf returns the Day containing t, evaluated in UTC.
func DayOf(t time.Time) Day {
	return Day(t.UTC().Format(time.DateOnly))
}

// ScoreEntry is one user's accumulated farosat within one chat.
//
// Entries are keyed by (UserID, ChatID) and are never deleted. LastClaim
// records the day of the most recent successful daily claim; admin
// adjustments change the score without touching it.
type ScoreEntry struct {
	UserID    int64 `json:"user_id"`
	ChatID    int64 `json:"chat_id"`
	Score     int64 `json:"score"`
	LastClaim Day   `json:"last_claim,omitempty"`
}

// NewScoreEntry returns an empty entry for the given key.
func NewScoreEntry(userID, chatID int64) *ScoreEntry {
	return &ScoreEntry{UserID: userID, ChatID: chatID}
}

// ClaimResult is the outcome of a daily claim attempt.
//
// A same-day repeat is an expected outcome rather than an error: Accepted
// is false, Delta is zero and Score carries the unchanged current total.
type ClaimResult struct {
	Accepted bool
	Delta    int64
	Score    int64
}
