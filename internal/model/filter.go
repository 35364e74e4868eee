package model

import "fmt"

// StatusFilter selects which todos a listing includes.
type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterCompleted StatusFilter = "completed"
	FilterPending   StatusFilter = "pending"
)

func (f StatusFilter) Matches(done bool) bool {
	switch f {
	case FilterCompleted:
		return done
	case FilterPending:
		return !done
	default:
		return true
	}
}

func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(s) {
	case FilterAll, FilterCompleted, FilterPending:
		return StatusFilter(s), nil
	}
	return "", fmt.Errorf("invalid status filter %q: must be one of all, completed, pending", s)
}
