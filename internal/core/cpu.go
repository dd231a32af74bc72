package core

// CPU records what a single simulated core executes. Simulators call Run for
// every dispatch, one unit or a whole burst at a time, and read back the
// normalized trace once all processes are done.
type CPU struct {
	slices Trace
}

func NewCPU() *CPU {
	return &CPU{slices: make(Trace, 0)}
}

// Run records pid occupying the CPU during [start, end). Empty intervals are ignored.
func (c *CPU) Run(pid string, start, end int) {
	if end <= start {
		return
	}
	c.slices = append(c.slices, ExecutionSlice{ProcessID: pid, Start: start, End: end})
}

// Trace returns the recorded slices with adjacent same-process slices fused.
func (c *CPU) Trace() Trace {
	return MergeAdjacent(c.slices)
}
