package responses

import (
	"github.com/google/uuid"

	"cpu-scheduler/internal/core"
)

type ScheduleResponse struct {
	SimulationId          string                `json:"simulation_id"`
	Algorithm             string                `json:"algorithm"`
	Trace                 []core.ExecutionSlice `json:"trace"`
	AverageWaitingTime    float64               `json:"average_waiting_time"`
	AverageResponseTime   float64               `json:"average_response_time"`
	AverageTurnAroundTime float64               `json:"average_turn_around_time"`
	Details               []core.ProcessMetrics `json:"details"`
	Kpis                  core.GeneralKpis      `json:"kpis"`
}

type ComparisonResponse struct {
	SimulationId string               `json:"simulation_id"`
	Rows         []core.ComparisonRow `json:"rows"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewScheduleResponse(algorithm string, result core.SimulationResult, kpis core.GeneralKpis) ScheduleResponse {
	trace := result.Trace
	if trace == nil {
		trace = core.Trace{}
	}
	details := result.Details
	if details == nil {
		details = []core.ProcessMetrics{}
	}
	return ScheduleResponse{
		SimulationId:          uuid.NewString(),
		Algorithm:             algorithm,
		Trace:                 trace,
		AverageWaitingTime:    result.MeanWaiting,
		AverageResponseTime:   result.MeanResponse,
		AverageTurnAroundTime: result.MeanTurnaround,
		Details:               details,
		Kpis:                  kpis,
	}
}

func NewComparisonResponse(rows []core.ComparisonRow) ComparisonResponse {
	if rows == nil {
		rows = []core.ComparisonRow{}
	}
	return ComparisonResponse{SimulationId: uuid.NewString(), Rows: rows}
}
