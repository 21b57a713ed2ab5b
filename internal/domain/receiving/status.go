package receiving

import (
	"strings"

	"github.com/erp/receiving/internal/domain/shared"
)

// SlipStatus represents the lifecycle state of a receiving slip
type SlipStatus string

const (
	SlipStatusDraft     SlipStatus = "DRAFT"
	SlipStatusConfirmed SlipStatus = "CONFIRMED"
)

// IsValid checks if the status is a valid SlipStatus
func (s SlipStatus) IsValid() bool {
	switch s {
	case SlipStatusDraft, SlipStatusConfirmed:
		return true
	}
	return false
}

// String returns the string representation of SlipStatus
func (s SlipStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s SlipStatus) CanTransitionTo(target SlipStatus) bool {
	switch s {
	case SlipStatusDraft:
		return target == SlipStatusConfirmed
	case SlipStatusConfirmed:
		return false // terminal
	}
	return false
}

// IsEditable returns true if items and header may still change
func (s SlipStatus) IsEditable() bool {
	return s == SlipStatusDraft
}

// ParseSlipStatus parses a status name case-insensitively ("draft", "Draft", "DRAFT")
func ParseSlipStatus(raw string) (SlipStatus, error) {
	status := SlipStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !status.IsValid() {
		return "", shared.NewValidationError("invalid slip status: %s", raw)
	}
	return status, nil
}

// AllSlipStatuses returns every status in lifecycle order
func AllSlipStatuses() []SlipStatus {
	return []SlipStatus{SlipStatusDraft, SlipStatusConfirmed}
}
