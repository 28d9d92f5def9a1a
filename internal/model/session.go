// Package model defines the persisted vocabulary and session records.
package model

import "time"

// Entry is a labelled vocabulary word.
type Entry struct {
	Word      string    `json:"word"`
	Label     string    `json:"label"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Session is one recorded game. Replaying its turns on a fresh solver restores
// the candidate set.
type Session struct {
	ID         string     `json:"id"`
	CreatedAt  time.Time  `json:"created_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Answer     string     `json:"answer,omitempty"`
	Turns      []Turn     `json:"turns,omitempty"`
	TurnCount  int        `json:"turn_count"`
}

// Turn is a single piece of feedback applied to a session.
type Turn struct {
	Seq       int       `json:"seq"`
	Kind      string    `json:"kind"`
	Guess     string    `json:"guess,omitempty"`
	First     string    `json:"first,omitempty"`
	Second    string    `json:"second,omitempty"`
	Jamo      string    `json:"jamo,omitempty"`
	Remaining int       `json:"remaining"`
	CreatedAt time.Time `json:"created_at"`
}

// Turn kinds.
const (
	TurnHint  = "hint"
	TurnJamo  = "jamo"
	TurnBan   = "ban"
	TurnReset = "reset"
)

// ValidTurnKinds are the allowed turn kinds.
var ValidTurnKinds = map[string]bool{
	TurnHint:  true,
	TurnJamo:  true,
	TurnBan:   true,
	TurnReset: true,
}
