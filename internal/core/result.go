package core

// ProcessMetrics holds the timing of one process derived from a trace.
type ProcessMetrics struct {
	ID         string  `json:"process_id"`
	Arrival    int     `json:"arrival_time"`
	Burst      int     `json:"burst_time"`
	FirstStart int     `json:"first_start"`
	Completion int     `json:"completion"`
	Executed   int     `json:"executed"`
	Waiting    int     `json:"waiting_time"`
	Turnaround int     `json:"turn_around_time"`
	Response   int     `json:"response_time"`
	Slowdown   float64 `json:"slowdown"`
}

// SimulationResult is a trace plus its rounded aggregate metrics.
type SimulationResult struct {
	Trace          Trace            `json:"trace"`
	MeanWaiting    float64          `json:"average_waiting_time"`
	MeanTurnaround float64          `json:"average_turn_around_time"`
	MeanResponse   float64          `json:"average_response_time"`
	Details        []ProcessMetrics `json:"details"`
}

// EmptyResult is the zero sentinel returned for an empty process set.
func EmptyResult() SimulationResult {
	return SimulationResult{Trace: Trace{}, Details: []ProcessMetrics{}}
}

type GeneralKpis struct {
	Makespan         int     `json:"makespan"`
	IdleTime         int     `json:"idle_time"`
	Utilization      float64 `json:"cpu_utilization"`
	Throughput       float64 `json:"cpu_throughput"`
	ContextSwitches  int     `json:"context_switches"`
	MeanSlowdown     float64 `json:"average_slowdown"`
	MaxSlowdown      float64 `json:"max_slowdown"`
	StdDevWaiting    float64 `json:"stddev_waiting_time"`
	StdDevTurnaround float64 `json:"stddev_turn_around_time"`
	StdDevResponse   float64 `json:"stddev_response_time"`
}

// ComparisonRow summarizes one policy in a multi-policy run. Error is set,
// and every metric left at zero, when the policy could not be simulated.
type ComparisonRow struct {
	Policy         string  `json:"policy"`
	MeanWaiting    float64 `json:"average_waiting_time"`
	MeanTurnaround float64 `json:"average_turn_around_time"`
	MeanResponse   float64 `json:"average_response_time"`
	Fairness       float64 `json:"fairness"`
	GeneralKpis
	Error string `json:"error,omitempty"`
}
