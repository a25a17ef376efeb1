package requests

import (
	"errors"
	"fmt"

	"github.com/mahmoudKheyrati/cpu-scheduler/internal/core"
)

var ErrLimitExceeded = errors.New("request exceeds configured limits")

// Process is the wire form of a process descriptor. A missing priority stays nil.
type Process struct {
	ID          string `json:"id" yaml:"id"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    *int   `json:"priority,omitempty" yaml:"priority,omitempty"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty"`
}

type ScheduleRequest struct {
	Algorithm string    `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	Quantum   *int      `json:"quantum,omitempty" yaml:"quantum,omitempty"`
	Processes []Process `json:"processes" yaml:"processes"`
}

// Limits bounds the work a single request may ask for.
type Limits struct {
	MaxProcesses  int
	MaxTotalBurst int
}

func (p Process) ToCore() core.Process {
	process := core.Process{
		ID:          p.ID,
		ArrivalTime: p.ArrivalTime,
		BurstTime:   p.BurstTime,
	}
	if p.Priority != nil {
		process.Priority = core.SomePriority(*p.Priority)
	}
	return process
}

func FromCore(p core.Process) Process {
	process := Process{
		ID:          p.ID,
		ArrivalTime: p.ArrivalTime,
		BurstTime:   p.BurstTime,
	}
	if value, ok := p.Priority.Get(); ok {
		process.Priority = &value
	}
	return process
}

// CoreProcesses converts the request processes, keeping their order.
func (r *ScheduleRequest) CoreProcesses() []core.Process {
	processes := make([]core.Process, 0, len(r.Processes))
	for _, p := range r.Processes {
		processes = append(processes, p.ToCore())
	}
	return processes
}

// CheckLimits rejects requests whose size would make a simulation unreasonably long.
// Zero limits are treated as unlimited.
func (r *ScheduleRequest) CheckLimits(limits Limits) error {
	if limits.MaxProcesses > 0 && len(r.Processes) > limits.MaxProcesses {
		return fmt.Errorf("%w: %d processes, at most %d allowed", ErrLimitExceeded, len(r.Processes), limits.MaxProcesses)
	}
	if limits.MaxTotalBurst > 0 {
		total := 0
		for _, p := range r.Processes {
			total += p.BurstTime
		}
		if total > limits.MaxTotalBurst {
			return fmt.Errorf("%w: total burst time %d, at most %d allowed", ErrLimitExceeded, total, limits.MaxTotalBurst)
		}
	}
	return nil
}
