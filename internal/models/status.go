package models

import (
	"fmt"
	"strings"
)

type BoardingStatus string

const (
	StatusPending   BoardingStatus = "Pending"
	StatusAccepted  BoardingStatus = "Accepted"
	StatusRejected  BoardingStatus = "Rejected"
	StatusCompleted BoardingStatus = "Completed"
	StatusCancelled BoardingStatus = "Cancelled"
)

var allStatuses = []BoardingStatus{StatusPending, StatusAccepted, StatusRejected, StatusCompleted, StatusCancelled}

// AllowedTransitions lists the statuses each status may move to.
var AllowedTransitions = map[BoardingStatus][]BoardingStatus{
	StatusPending:   {StatusAccepted, StatusRejected, StatusCancelled},
	StatusAccepted:  {StatusCompleted, StatusCancelled},
	StatusRejected:  {},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ParseBoardingStatus matches s case-insensitively against the known statuses.
func ParseBoardingStatus(s string) (BoardingStatus, error) {
	for _, status := range allStatuses {
		if strings.EqualFold(string(status), strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func (s BoardingStatus) Valid() bool {
	_, ok := AllowedTransitions[s]
	return ok
}

// BlocksAvailability reports whether a request in this status holds the sitter's dates.
func (s BoardingStatus) BlocksAvailability() bool {
	return s != StatusRejected && s != StatusCancelled
}

func (s BoardingStatus) IsTerminal() bool {
	return s.Valid() && len(AllowedTransitions[s]) == 0
}

// CanTransitionTo reports whether next is reachable from s. Staying in place is always allowed.
func (s BoardingStatus) CanTransitionTo(next BoardingStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range AllowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
