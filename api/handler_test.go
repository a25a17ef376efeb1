package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahmoudKheyrati/cpu-scheduler/config"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/logging"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/requests"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/responses"
)

func newTestApp() *testApp {
	cfg := &config.SchedulerConfig{
		Port:                  9095,
		RoundRobinTimeQuantum: 2,
		MaxProcesses:          4,
		MaxTotalBurst:         50,
		LogLevel:              "info",
	}
	return &testApp{handler: NewSchedulerHandlerImpl(cfg, logging.Discard())}
}

type testApp struct {
	handler *SchedulerHandlerImpl
}

func (a *testApp) do(t *testing.T, method, target, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	res, err := NewApp(a.handler).Test(req, -1)
	require.NoError(t, err)
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, data
}

const twoProcesses = `{"processes":[{"id":"P1","arrival_time":0,"burst_time":4},{"id":"P2","arrival_time":1,"burst_time":3}]}`

func TestHandler_Schedule(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name         string
		path         string
		body         string
		wantedStatus int
		wantTimeline []responses.TimelineBlock
		wantQuantum  int
	}{
		{
			name:         "fcfs",
			path:         "/api/v1/fcfs",
			body:         twoProcesses,
			wantedStatus: http.StatusOK,
			wantTimeline: []responses.TimelineBlock{
				{ProcessId: "P1", StartTime: 0, EndTime: 4},
				{ProcessId: "P2", StartTime: 4, EndTime: 7},
			},
		},
		{
			name:         "rr uses the configured quantum",
			path:         "/api/v1/rr",
			body:         twoProcesses,
			wantedStatus: http.StatusOK,
			wantQuantum:  2,
			wantTimeline: []responses.TimelineBlock{
				{ProcessId: "P1", StartTime: 0, EndTime: 2},
				{ProcessId: "P2", StartTime: 2, EndTime: 4},
				{ProcessId: "P1", StartTime: 4, EndTime: 6},
				{ProcessId: "P2", StartTime: 6, EndTime: 7},
			},
		},
		{
			name:         "rr with request quantum",
			path:         "/api/v1/rr",
			body:         `{"quantum":5,"processes":[{"id":"P1","arrival_time":0,"burst_time":4},{"id":"P2","arrival_time":1,"burst_time":3}]}`,
			wantedStatus: http.StatusOK,
			wantQuantum:  5,
			wantTimeline: []responses.TimelineBlock{
				{ProcessId: "P1", StartTime: 0, EndTime: 4},
				{ProcessId: "P2", StartTime: 4, EndTime: 7},
			},
		},
		{
			name:         "srtf",
			path:         "/api/v1/srtf",
			body:         `{"processes":[{"id":"P1","arrival_time":0,"burst_time":8},{"id":"P2","arrival_time":1,"burst_time":4},{"id":"P3","arrival_time":2,"burst_time":2}]}`,
			wantedStatus: http.StatusOK,
			wantTimeline: []responses.TimelineBlock{
				{ProcessId: "P1", StartTime: 0, EndTime: 1},
				{ProcessId: "P2", StartTime: 1, EndTime: 2},
				{ProcessId: "P3", StartTime: 2, EndTime: 4},
				{ProcessId: "P2", StartTime: 4, EndTime: 7},
				{ProcessId: "P1", StartTime: 7, EndTime: 14},
			},
		},
		{
			name:         "sjf empty input",
			path:         "/api/v1/sjf",
			body:         `{"processes":[]}`,
			wantedStatus: http.StatusOK,
			wantTimeline: []responses.TimelineBlock{},
		},
		{
			name:         "priority with priorities",
			path:         "/api/v1/priority",
			body:         `{"processes":[{"id":"P1","arrival_time":1,"burst_time":2,"priority":2},{"id":"P2","arrival_time":1,"burst_time":2,"priority":0}]}`,
			wantedStatus: http.StatusOK,
			wantTimeline: []responses.TimelineBlock{
				{ProcessId: "IDLE", StartTime: 0, EndTime: 1},
				{ProcessId: "P2", StartTime: 1, EndTime: 3},
				{ProcessId: "P1", StartTime: 3, EndTime: 5},
			},
		},
		{name: "priority missing", path: "/api/v1/priority", body: twoProcesses, wantedStatus: http.StatusBadRequest},
		{name: "rr zero quantum", path: "/api/v1/rr", body: `{"quantum":0,"processes":[{"id":"P1","arrival_time":0,"burst_time":1}]}`, wantedStatus: http.StatusBadRequest},
		{name: "malformed body", path: "/api/v1/fcfs", body: `{"processes":`, wantedStatus: http.StatusBadRequest},
		{name: "duplicate ids", path: "/api/v1/fcfs", body: `{"processes":[{"id":"P1","burst_time":1},{"id":"P1","burst_time":1}]}`, wantedStatus: http.StatusBadRequest},
		{name: "too much burst", path: "/api/v1/fcfs", body: `{"processes":[{"id":"P1","burst_time":51}]}`, wantedStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := app.do(t, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.wantedStatus, status, string(body))

			if tt.wantedStatus != http.StatusOK {
				var failure responses.ErrorResponse
				require.NoError(t, json.Unmarshal(body, &failure))
				assert.NotEmpty(t, failure.Error)
				return
			}

			var response responses.ScheduleResponse
			require.NoError(t, json.Unmarshal(body, &response))
			assert.Equal(t, tt.wantTimeline, response.Timeline)
			assert.Equal(t, tt.wantQuantum, response.Quantum)
			assert.NotEmpty(t, response.RunId)
		})
	}
}

func TestHandler_FirstComeFirstServeMetrics(t *testing.T) {
	status, body := newTestApp().do(t, http.MethodPost, "/api/v1/fcfs",
		`{"processes":[{"id":"P1","arrival_time":0,"burst_time":5},{"id":"P2","arrival_time":1,"burst_time":3}]}`)
	require.Equal(t, http.StatusOK, status)

	var response responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &response))
	assert.Equal(t, []responses.ProcessResponse{
		{ProcessId: "P1", WaitingTime: 0, TurnAroundTime: 5, CompletionTime: 5, ResponseTime: 0, ReadyTime: 0},
		{ProcessId: "P2", WaitingTime: 4, TurnAroundTime: 7, CompletionTime: 8, ResponseTime: 4, ReadyTime: 4},
	}, response.Details)
	assert.Equal(t, 8, response.TotalTime)
	assert.InDelta(t, 2.0, response.AverageWaitingTime, 1e-9)
}

func TestHandler_AllAlgorithms(t *testing.T) {
	status, body := newTestApp().do(t, http.MethodPost, "/api/v1/all", twoProcesses)
	require.Equal(t, http.StatusOK, status)

	var compare responses.CompareResponse
	require.NoError(t, json.Unmarshal(body, &compare))
	assert.Len(t, compare.Results, 4)
	assert.Contains(t, compare.Results, "srtf")
	assert.Contains(t, compare.Errors, "priority")
	assert.Equal(t, compare.RunId, compare.Results["fcfs"].RunId)
}

func TestHandler_TooManyProcesses(t *testing.T) {
	body := `{"processes":[{"id":"1","burst_time":1},{"id":"2","burst_time":1},{"id":"3","burst_time":1},{"id":"4","burst_time":1},{"id":"5","burst_time":1}]}`
	status, _ := newTestApp().do(t, http.MethodPost, "/api/v1/all", body)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHandler_Share(t *testing.T) {
	app := newTestApp()
	status, body := app.do(t, http.MethodPost, "/api/v1/share",
		`{"algorithm":"rr","quantum":3,"processes":[{"id":"P1","arrival_time":0,"burst_time":4,"priority":1}]}`)
	require.Equal(t, http.StatusOK, status)

	var share responses.ShareResponse
	require.NoError(t, json.Unmarshal(body, &share))
	require.NotEmpty(t, share.Query)

	status, body = app.do(t, http.MethodGet, "/api/v1/share?"+share.Query, "")
	require.Equal(t, http.StatusOK, status, string(body))

	var request requests.ScheduleRequest
	require.NoError(t, json.Unmarshal(body, &request))
	assert.Equal(t, "rr", request.Algorithm)
	require.NotNil(t, request.Quantum)
	assert.Equal(t, 3, *request.Quantum)
	require.Len(t, request.Processes, 1)
	assert.Equal(t, "P1", request.Processes[0].ID)
	require.NotNil(t, request.Processes[0].Priority)
	assert.Equal(t, 1, *request.Processes[0].Priority)
}

func TestHandler_DecodeShareMalformed(t *testing.T) {
	status, _ := newTestApp().do(t, http.MethodGet, "/api/v1/share?processes="+url.QueryEscape(`{"id":"P1"}`), "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestHandler_Random(t *testing.T) {
	app := newTestApp()
	status, body := app.do(t, http.MethodGet, "/api/v1/random?seed=7&count=3&priority=true", "")
	require.Equal(t, http.StatusOK, status)

	var request requests.ScheduleRequest
	require.NoError(t, json.Unmarshal(body, &request))
	require.Len(t, request.Processes, 3)
	for _, p := range request.Processes {
		assert.NotNil(t, p.Priority)
	}

	_, again := app.do(t, http.MethodGet, "/api/v1/random?seed=7&count=3&priority=true", "")
	assert.JSONEq(t, string(body), string(again), "same seed, same workload")

	// count is capped by limits.max_processes
	_, body = app.do(t, http.MethodGet, "/api/v1/random?seed=1&count=50", "")
	require.NoError(t, json.Unmarshal(body, &request))
	assert.Len(t, request.Processes, 4)
}
