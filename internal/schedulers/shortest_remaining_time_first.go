package schedulers

import (
	"fmt"

	"github.com/mahmoudKheyrati/cpu-scheduler/internal/core"
)

// ScheduleShortestRemainingTimeFirst re-evaluates the ready queue every time unit and
// runs the process with the least remaining burst. Per-unit slices are coalesced
// before metrics are computed.
func ScheduleShortestRemainingTimeFirst(processes []core.Process) (core.Result, error) {
	if len(processes) == 0 {
		return core.EmptyResult(), nil
	}
	if err := validateProcesses(processes); err != nil {
		return core.EmptyResult(), err
	}

	tasks := core.NewTasks(processes)
	sortTasks(tasks, byArrival)

	// the schedule can never run past the last arrival plus all the work
	limit := tasks[len(tasks)-1].Process.ArrivalTime
	for _, task := range tasks {
		limit += task.Process.BurstTime
	}

	cpu := core.NewCpu()
	readyQueue := make([]*core.Task, 0, len(tasks))
	next := 0
	for next < len(tasks) || len(readyQueue) > 0 {
		if cpu.Now() > limit {
			return core.EmptyResult(), fmt.Errorf("%w: srtf exceeded time bound %d", ErrInconsistent, limit)
		}

		for next < len(tasks) && tasks[next].Process.ArrivalTime <= cpu.Now() {
			tasks[next].Admit()
			readyQueue = append(readyQueue, tasks[next])
			next++
		}

		if len(readyQueue) == 0 {
			if err := cpu.IdleUntil(tasks[next].Process.ArrivalTime); err != nil {
				return core.EmptyResult(), inconsistent(err)
			}
			continue
		}

		sortTasks(readyQueue, byRemaining)
		selected := readyQueue[0]
		if _, err := cpu.Execute(selected, 1); err != nil {
			return core.EmptyResult(), inconsistent(err)
		}
		if selected.State == core.Done {
			readyQueue = readyQueue[1:]
		}
	}

	return finish(processes, tasks, cpu.Timeline().Coalesced())
}
