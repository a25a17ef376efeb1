package schedulers

import "github.com/mahmoudKheyrati/cpu-scheduler/internal/core"

// ScheduleShortestJobFirst picks the arrived process with the smallest burst at every
// decision point and runs it uninterrupted.
func ScheduleShortestJobFirst(processes []core.Process) (core.Result, error) {
	if len(processes) == 0 {
		return core.EmptyResult(), nil
	}
	if err := validateProcesses(processes); err != nil {
		return core.EmptyResult(), err
	}
	return scheduleNonPreemptive(processes, byBurst)
}

// scheduleNonPreemptive is the selection loop shared by SJF and priority scheduling.
func scheduleNonPreemptive(processes []core.Process, less lessFunc) (core.Result, error) {
	tasks := core.NewTasks(processes)
	sortTasks(tasks, byArrival)

	cpu := core.NewCpu()
	readyQueue := make([]*core.Task, 0, len(tasks))
	next := 0
	for done := 0; done < len(tasks); {
		for next < len(tasks) && tasks[next].Process.ArrivalTime <= cpu.Now() {
			tasks[next].Admit()
			readyQueue = append(readyQueue, tasks[next])
			next++
		}

		if len(readyQueue) == 0 {
			// nothing arrived yet, jump to the earliest pending arrival
			if err := cpu.IdleUntil(tasks[next].Process.ArrivalTime); err != nil {
				return core.EmptyResult(), inconsistent(err)
			}
			continue
		}

		sortTasks(readyQueue, less)
		selected := readyQueue[0]
		readyQueue = readyQueue[1:]
		if _, err := cpu.Execute(selected, selected.Remaining); err != nil {
			return core.EmptyResult(), inconsistent(err)
		}
		done++
	}

	return finish(processes, tasks, cpu.Timeline().Blocks())
}
