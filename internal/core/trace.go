package core

import "sort"

// ExecutionSlice is one uninterrupted CPU occupancy, End > Start.
type ExecutionSlice struct {
	ProcessID string `json:"process_id" yaml:"process_id"`
	Start     int    `json:"start" yaml:"start"`
	End       int    `json:"end" yaml:"end"`
}

func (s ExecutionSlice) Duration() int {
	return s.End - s.Start
}

// Trace is a chronologically ordered list of slices.
type Trace []ExecutionSlice

// MergeAdjacent fuses a slice into its predecessor when both belong to the
// same process and the predecessor ends exactly where it starts.
func MergeAdjacent(trace Trace) Trace {
	merged := make(Trace, 0, len(trace))
	for _, s := range trace {
		if n := len(merged); n > 0 {
			last := &merged[n-1]
			if last.ProcessID == s.ProcessID && last.End == s.Start {
				last.End = s.End
				continue
			}
		}
		merged = append(merged, s)
	}
	return merged
}

// Sorted returns a copy ordered by start time.
func (t Trace) Sorted() Trace {
	out := make(Trace, len(t))
	copy(out, t)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out
}

// ExecutedBy sums slice durations per process id.
func (t Trace) ExecutedBy() map[string]int {
	executed := make(map[string]int)
	for _, s := range t {
		executed[s.ProcessID] += s.Duration()
	}
	return executed
}
