package schedulers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahmoudKheyrati/cpu-scheduler/internal/core"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/generator"
)

func randomWorkload(seed int64) []core.Process {
	opts := generator.Options{
		MinProcesses: 1,
		MaxProcesses: 8,
		MaxArrival:   15,
		MaxBurst:     8,
		MaxPriority:  3,
		WithPriority: true,
	}
	generated := generator.Generate(seed, opts)
	// reverse so the caller order differs from arrival order
	processes := make([]core.Process, 0, len(generated))
	for i := len(generated) - 1; i >= 0; i-- {
		processes = append(processes, generated[i].ToCore())
	}
	return processes
}

func TestSchedulingProperties(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		processes := randomWorkload(seed)
		for _, algorithm := range Algorithms {
			t.Run(fmt.Sprintf("%s/seed=%d", algorithm, seed), func(t *testing.T) {
				input := make([]core.Process, len(processes))
				copy(input, processes)

				result, err := Run(algorithm, input, Params{Quantum: 3})
				require.NoError(t, err)
				assert.Equal(t, processes, input, "input must not be mutated")

				assertContiguous(t, result.Timeline)
				assertMetrics(t, algorithm, processes, result)

				again, err := Run(algorithm, input, Params{Quantum: 3})
				require.NoError(t, err)
				assert.Equal(t, result, again, "runs must be reproducible")

				if algorithm == ShortestRemainingTimeFirst {
					assertCoalesced(t, result.Timeline)
				}
			})
		}
	}
}

func assertContiguous(t *testing.T, timeline []core.TimelineBlock) {
	t.Helper()
	require.NotEmpty(t, timeline)
	assert.Equal(t, 0, timeline[0].StartTime)
	for i, b := range timeline {
		assert.Greater(t, b.EndTime, b.StartTime, "block %d is empty", i)
		if i > 0 {
			assert.Equal(t, timeline[i-1].EndTime, b.StartTime, "gap or overlap before block %d", i)
		}
	}
}

func assertMetrics(t *testing.T, algorithm Algorithm, processes []core.Process, result core.Result) {
	t.Helper()
	require.Len(t, result.Metrics, len(processes), "every process must appear in the timeline")

	executed := make(map[string]int)
	for _, b := range result.Timeline {
		executed[b.ID] += b.Duration()
	}
	end := result.Timeline[len(result.Timeline)-1].EndTime

	preemptive := algorithm == RoundRobin || algorithm == ShortestRemainingTimeFirst
	for i, p := range processes {
		m := result.Metrics[i]
		assert.Equal(t, p.ID, m.ID, "metrics follow input order")
		assert.Equal(t, p.BurstTime, executed[p.ID], "pid %s ran for its whole burst", p.ID)
		assert.GreaterOrEqual(t, end, p.ArrivalTime+p.BurstTime)
		assert.Equal(t, m.CompletionTime-p.ArrivalTime, m.TurnaroundTime)
		assert.GreaterOrEqual(t, m.TurnaroundTime, p.BurstTime)
		assert.GreaterOrEqual(t, m.WaitingTime, 0)
		assert.Equal(t, m.TurnaroundTime, m.ReadyTime+p.BurstTime)
		if !preemptive {
			assert.Equal(t, m.TurnaroundTime, m.WaitingTime+p.BurstTime)
		} else {
			assert.LessOrEqual(t, m.WaitingTime, m.ReadyTime)
		}
	}
}
