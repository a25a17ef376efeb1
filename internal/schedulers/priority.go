package schedulers

import (
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/core"
)

// SchedulePriority is non-preemptive priority scheduling; a lower value means a higher
// priority. Every process must carry a priority, otherwise nothing is simulated.
func SchedulePriority(processes []core.Process) (core.Result, error) {
	if len(processes) == 0 {
		return core.EmptyResult(), nil
	}
	if err := validateProcesses(processes); err != nil {
		return core.EmptyResult(), err
	}
	if err := validatePriorities(processes); err != nil {
		return core.EmptyResult(), err
	}
	return scheduleNonPreemptive(processes, byPriority)
}
