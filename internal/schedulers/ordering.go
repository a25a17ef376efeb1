package schedulers

import (
	"fmt"
	"sort"

	"github.com/mahmoudKheyrati/cpu-scheduler/internal/core"
)

// lessFunc orders tasks; every lessFunc must be a total order so runs are reproducible.
type lessFunc func(a, b *core.Task) bool

func byArrival(a, b *core.Task) bool {
	if a.Process.ArrivalTime != b.Process.ArrivalTime {
		return a.Process.ArrivalTime < b.Process.ArrivalTime
	}
	return a.Process.ID < b.Process.ID
}

func byBurst(a, b *core.Task) bool {
	if a.Process.BurstTime != b.Process.BurstTime {
		return a.Process.BurstTime < b.Process.BurstTime
	}
	return byArrival(a, b)
}

func byPriority(a, b *core.Task) bool {
	pa, _ := a.Process.Priority.Get()
	pb, _ := b.Process.Priority.Get()
	if pa != pb {
		return pa < pb
	}
	return byArrival(a, b)
}

func byRemaining(a, b *core.Task) bool {
	if a.Remaining != b.Remaining {
		return a.Remaining < b.Remaining
	}
	return byArrival(a, b)
}

func sortTasks(tasks []*core.Task, less lessFunc) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return less(tasks[i], tasks[j])
	})
}

// finish turns a completed cpu history into the result returned to callers. Every
// task must have run to completion, and the first start recorded by the cpu must
// match the one read back from the timeline.
func finish(processes []core.Process, tasks []*core.Task, blocks []core.TimelineBlock) (core.Result, error) {
	metrics := core.CalculateMetrics(processes, blocks)
	if len(metrics) != len(processes) {
		return core.EmptyResult(), fmt.Errorf("%w: %d of %d processes on the timeline", ErrInconsistent, len(metrics), len(processes))
	}
	firstStart := make(map[string]int, len(tasks))
	for _, task := range tasks {
		if task.State != core.Done || !task.Started() {
			return core.EmptyResult(), fmt.Errorf("%w: pid %s finished in state %s", ErrInconsistent, task.Process.ID, task.State)
		}
		firstStart[task.Process.ID] = task.FirstStart - task.Process.ArrivalTime
	}
	for _, m := range metrics {
		if want, ok := firstStart[m.ID]; !ok || want != m.ResponseTime {
			return core.EmptyResult(), fmt.Errorf("%w: pid %s response time %d disagrees with cpu", ErrInconsistent, m.ID, m.ResponseTime)
		}
	}
	return core.Result{Timeline: blocks, Metrics: metrics}, nil
}
