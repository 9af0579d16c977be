// Package events publishes roster-change events for downstream consumers.
package events

import "time"

// RosterSignedUp is emitted when a student joins an activity.
type RosterSignedUp struct {
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	RosterSize int       `json:"roster_size"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RosterUnregistered is emitted when a student leaves an activity.
type RosterUnregistered struct {
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	RosterSize int       `json:"roster_size"`
	OccurredAt time.Time `json:"occurred_at"`
}
