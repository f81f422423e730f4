package model

import (
	"context"
	"time"
)

// TurnRecord is one user turn plus the response eventually attached to it.
// Slots are snapshotted as they stood after the update.
type TurnRecord struct {
	Timestamp             time.Time   `json:"timestamp"`
	Message               string      `json:"message"`
	Response              string      `json:"response,omitempty"`
	Intent                IntentLabel `json:"intent,omitempty"`
	Origin                CountryCode `json:"origin,omitempty"`
	Destination           CountryCode `json:"destination,omitempty"`
	NeedsClarification    bool        `json:"needs_clarification,omitempty"`
	ClarificationResolved bool        `json:"clarification_resolved,omitempty"`
}

// ChatTurn is one {role, content} pair of the rolling context window.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// SessionRepository persists turn records per session. Durability is
// best-effort: the state machine itself keeps history in memory.
type SessionRepository interface {
	// AppendTurn appends a turn record to the session's history.
	AppendTurn(ctx context.Context, sessionID string, turn *TurnRecord) error

	// LoadTurns retrieves all stored turn records for a session.
	LoadTurns(ctx context.Context, sessionID string) ([]*TurnRecord, error)

	// ClearTurns removes all stored history for a session.
	ClearTurns(ctx context.Context, sessionID string) error

	// TurnCount returns the number of stored turn records.
	TurnCount(ctx context.Context, sessionID string) (int, error)
}
