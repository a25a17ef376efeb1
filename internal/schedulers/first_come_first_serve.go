package schedulers

import "github.com/mahmoudKheyrati/cpu-scheduler/internal/core"

// ScheduleFirstComeFirstServe runs processes to completion in (arrival, id) order.
func ScheduleFirstComeFirstServe(processes []core.Process) (core.Result, error) {
	if len(processes) == 0 {
		return core.EmptyResult(), nil
	}
	if err := validateProcesses(processes); err != nil {
		return core.EmptyResult(), err
	}

	tasks := core.NewTasks(processes)
	sortTasks(tasks, byArrival)

	cpu := core.NewCpu()
	for _, task := range tasks {
		// cpu stays idle until the next job shows up
		if err := cpu.IdleUntil(task.Process.ArrivalTime); err != nil {
			return core.EmptyResult(), inconsistent(err)
		}
		task.Admit()
		if _, err := cpu.Execute(task, task.Remaining); err != nil {
			return core.EmptyResult(), inconsistent(err)
		}
	}

	return finish(processes, tasks, cpu.Timeline().Blocks())
}
