package models

import "fmt"

// Status is the lifecycle state of a user account. The set is flat: any
// status may be assigned over any other, and only active accounts may log in.
type Status string

const (
	StatusActive  Status = "active"
	StatusBlocked Status = "blocked"
	StatusPending Status = "pending"
)

// ParseStatus converts a raw string into a Status, rejecting anything
// outside the closed set.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusBlocked, StatusPending:
		return Status(s), nil
	default:
		return "", fmt.Errorf("invalid status %q", s)
	}
}

// IsValid reports whether the status belongs to the closed set.
func (s Status) IsValid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}
