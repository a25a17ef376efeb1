package schedulers

import (
	"errors"
	"fmt"
	"math"

	"github.com/mahmoudKheyrati/cpu-scheduler/internal/core"
)

var (
	// ErrInvalidArgument is wrapped by every input validation failure.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInconsistent signals a broken simulation invariant and should be unreachable.
	ErrInconsistent = errors.New("internal inconsistency")
)

func validateProcesses(processes []core.Process) error {
	seen := make(map[string]struct{}, len(processes))
	lastArrival, totalBurst := 0, 0
	for i, p := range processes {
		if p.ID == "" {
			return fmt.Errorf("%w: process #%d has an empty id", ErrInvalidArgument, i+1)
		}
		if p.ID == core.IdleID {
			return fmt.Errorf("%w: process id %q is reserved", ErrInvalidArgument, p.ID)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: duplicate process id %q", ErrInvalidArgument, p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: pid %s has negative arrival time %d", ErrInvalidArgument, p.ID, p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: pid %s has non-positive burst time %d", ErrInvalidArgument, p.ID, p.BurstTime)
		}
		if p.BurstTime > math.MaxInt-totalBurst {
			return fmt.Errorf("%w: total burst time overflows", ErrInvalidArgument)
		}
		totalBurst += p.BurstTime
		lastArrival = max(lastArrival, p.ArrivalTime)
	}
	// every completion time must fit in an int
	if lastArrival > math.MaxInt-totalBurst {
		return fmt.Errorf("%w: arrival %d plus total burst %d overflows", ErrInvalidArgument, lastArrival, totalBurst)
	}
	return nil
}

func validatePriorities(processes []core.Process) error {
	for _, p := range processes {
		value, ok := p.Priority.Get()
		if !ok {
			return fmt.Errorf("%w: pid %s has no priority", ErrInvalidArgument, p.ID)
		}
		if value < 0 {
			return fmt.Errorf("%w: pid %s has negative priority %d", ErrInvalidArgument, p.ID, value)
		}
	}
	return nil
}

func validateQuantum(quantum int) error {
	if quantum <= 0 {
		return fmt.Errorf("%w: time quantum must be positive, got %d", ErrInvalidArgument, quantum)
	}
	return nil
}

func inconsistent(err error) error {
	return fmt.Errorf("%w: %w", ErrInconsistent, err)
}
