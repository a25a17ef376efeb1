package schedulers

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahmoudKheyrati/cpu-scheduler/internal/core"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/logging"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name    string
		want    Algorithm
		wantErr bool
	}{
		{name: "fcfs", want: FirstComeFirstServe},
		{name: "FCFS", want: FirstComeFirstServe},
		{name: " sjf ", want: ShortestJobFirst},
		{name: "roundRobin", want: RoundRobin},
		{name: "rr", want: RoundRobin},
		{name: "priority", want: Priority},
		{name: "SRTF", want: ShortestRemainingTimeFirst},
		{name: "mlfq", wantErr: true},
		{name: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	result, err := Run(Algorithm("lottery"), []core.Process{proc("P1", 0, 1)}, Params{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, core.EmptyResult(), result)
}

func TestRun_QuantumOnlyForRoundRobin(t *testing.T) {
	processes := []core.Process{proc("P1", 0, 3)}
	for _, algorithm := range []Algorithm{FirstComeFirstServe, ShortestJobFirst, ShortestRemainingTimeFirst} {
		_, err := Run(algorithm, processes, Params{Quantum: 0})
		assert.NoError(t, err, algorithm.String())
	}
}

func TestSimulator_Simulate(t *testing.T) {
	var buf bytes.Buffer
	simulator := NewSimulator(logging.New(&buf, "debug"))

	_, err := simulator.Simulate(RoundRobin, []core.Process{proc("P1", 0, 3)}, Params{Quantum: 0})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, buf.String(), "simulation rejected")

	buf.Reset()
	result, err := simulator.Simulate(RoundRobin, []core.Process{proc("P1", 0, 3)}, Params{Quantum: 2})
	require.NoError(t, err)
	assert.Len(t, result.Timeline, 2)
	assert.Contains(t, buf.String(), `"algorithm":"rr"`)
}

func TestSimulator_Compare(t *testing.T) {
	simulator := NewSimulator(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	processes := []core.Process{proc("P1", 0, 5), proc("P2", 1, 3)}

	compare := simulator.Compare("run-1", processes, Params{Quantum: 2})

	assert.Equal(t, "run-1", compare.RunId)
	assert.Len(t, compare.Results, 4)
	assert.Contains(t, compare.Errors, "priority")
	assert.Equal(t, 8, compare.Results["fcfs"].TotalTime)
	assert.Equal(t, 2, compare.Results["rr"].Quantum)
	assert.Zero(t, compare.Results["fcfs"].Quantum)
}
