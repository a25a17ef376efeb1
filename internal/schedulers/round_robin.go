package schedulers

import "github.com/mahmoudKheyrati/cpu-scheduler/internal/core"

// ScheduleRoundRobin serves a FIFO ready queue, granting each process at most
// timeQuantum units per turn. Processes that arrive during a slice are queued
// ahead of the process that was just preempted.
//
// Waiting time is taken from the first start of each process, so time spent
// ready between later slices is not included; see ProcessMetrics.ReadyTime
// for the cumulative figure.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) (core.Result, error) {
	if len(processes) == 0 {
		return core.EmptyResult(), nil
	}
	if err := validateQuantum(timeQuantum); err != nil {
		return core.EmptyResult(), err
	}
	if err := validateProcesses(processes); err != nil {
		return core.EmptyResult(), err
	}

	tasks := core.NewTasks(processes)
	sortTasks(tasks, byArrival)

	cpu := core.NewCpu()
	roundRobinQueue := make([]*core.Task, 0, len(tasks))
	next := 0
	admit := func() {
		for next < len(tasks) && tasks[next].Process.ArrivalTime <= cpu.Now() {
			tasks[next].Admit()
			roundRobinQueue = append(roundRobinQueue, tasks[next])
			next++
		}
	}

	for {
		admit()

		if len(roundRobinQueue) == 0 {
			if next == len(tasks) {
				break
			}
			if err := cpu.IdleUntil(tasks[next].Process.ArrivalTime); err != nil {
				return core.EmptyResult(), inconsistent(err)
			}
			continue
		}

		current := roundRobinQueue[0]
		roundRobinQueue = roundRobinQueue[1:]
		if _, err := cpu.Execute(current, timeQuantum); err != nil {
			return core.EmptyResult(), inconsistent(err)
		}

		// arrivals during the slice go first, then the preempted process
		admit()
		if current.State != core.Done {
			roundRobinQueue = append(roundRobinQueue, current)
		}
	}

	return finish(processes, tasks, cpu.Timeline().Blocks())
}
