package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

const classicBody = `{"jobs":[
	{"process_id":"P1","arrival_time":0,"burst_time":4},
	{"process_id":"P2","arrival_time":1,"burst_time":3},
	{"process_id":"P3","arrival_time":2,"burst_time":1}]`

func do(t *testing.T, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	app := NewApp(NewSchedulerHandlerImpl(&config.SchedulerConfig{Port: 0, Options: schedulers.DefaultOptions()}))

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestPolicies(t *testing.T) {
	resp, data := do(t, http.MethodGet, "/api/v1/policies", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Policies []string `json:"policies"`
	}
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, schedulers.PolicyNames(), body.Policies)
}

func TestSimulate(t *testing.T) {
	resp, data := do(t, http.MethodPost, "/api/v1/simulate/rr", classicBody+`,"options":{"quantum":2}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	var body responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, "rr", body.Algorithm)
	assert.NotEmpty(t, body.SimulationId)
	assert.Len(t, body.Trace, 5)
	assert.Equal(t, 3.0, body.AverageWaitingTime)
	assert.Equal(t, 5.67, body.AverageTurnAroundTime)
	assert.Equal(t, 8, body.Kpis.Makespan)
	assert.Len(t, body.Details, 3)
}

func TestSimulate_ClientErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{"malformed body", "/api/v1/simulate/fcfs", `{"jobs":`},
		{"unknown policy", "/api/v1/simulate/edf", classicBody + `}`},
		{"invalid process", "/api/v1/simulate/fcfs", `{"jobs":[{"process_id":"A","arrival_time":0,"burst_time":0}]}`},
		{"zero quantum", "/api/v1/simulate/rr", classicBody + `,"options":{"quantum":0}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, data := do(t, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body responses.ErrorResponse
			require.NoError(t, json.Unmarshal(data, &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestCompare(t *testing.T) {
	resp, data := do(t, http.MethodPost, "/api/v1/compare", classicBody+`,"policies":["sjf","fcfs"]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	var body responses.ComparisonResponse
	require.NoError(t, json.Unmarshal(data, &body))
	require.Len(t, body.Rows, 2)
	assert.Equal(t, "sjf", body.Rows[0].Policy)
	assert.Equal(t, 2.0, body.Rows[0].MeanWaiting)
	assert.Equal(t, "fcfs", body.Rows[1].Policy)
	assert.Equal(t, 0.614, body.Rows[1].Fairness)
}

func TestCompare_UnknownPolicy(t *testing.T) {
	resp, _ := do(t, http.MethodPost, "/api/v1/compare", classicBody+`,"policies":["fcfs","nope"]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAllAlgorithms(t *testing.T) {
	resp, data := do(t, http.MethodPost, "/api/v1/all", classicBody+`,"options":{"quantum":0}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	var body responses.ComparisonResponse
	require.NoError(t, json.Unmarshal(data, &body))
	require.Len(t, body.Rows, len(schedulers.PolicyNames()))
	for _, row := range body.Rows {
		if row.Policy == schedulers.NameRR {
			assert.NotEmpty(t, row.Error)
			continue
		}
		assert.Empty(t, row.Error, row.Policy)
	}
}
