package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidProcess is returned when a process set breaks the input invariants.
var ErrInvalidProcess = errors.New("invalid process")

// Process is an immutable scheduling input. Optional weights are nil when the
// caller did not supply them; each policy falls back to its configured default.
type Process struct {
	ID       string
	Arrival  int
	Burst    int
	Priority *int // lower value = higher priority, nil = lowest

	Tickets *int
	Share   *float64
	Nice    *int
	Group   string

	Period   *int
	Deadline *int

	// Reserved. Neither MLQ nor MLFQ consults these.
	InitialQueue string
	InitialLevel *int
}

// PriorityValue returns the static priority, or +Inf when none was given.
func (p Process) PriorityValue() float64 {
	if p.Priority == nil {
		return math.Inf(1)
	}
	return float64(*p.Priority)
}

// ValidateProcesses checks id uniqueness, arrival >= 0 and burst >= 1.
func ValidateProcesses(processes []Process) error {
	seen := make(map[string]struct{}, len(processes))
	for i, p := range processes {
		if p.ID == "" {
			return fmt.Errorf("%w: process #%d has an empty id", ErrInvalidProcess, i)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidProcess, p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.Arrival < 0 {
			return fmt.Errorf("%w: pid %s has negative arrival %d", ErrInvalidProcess, p.ID, p.Arrival)
		}
		if p.Burst < 1 {
			return fmt.Errorf("%w: pid %s has burst %d, want >= 1", ErrInvalidProcess, p.ID, p.Burst)
		}
	}
	return nil
}

// IntPtr and FloatPtr build optional fields.
func IntPtr(v int) *int { return &v }

func FloatPtr(v float64) *float64 { return &v }
