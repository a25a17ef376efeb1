package schedulers

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mahmoudKheyrati/cpu-scheduler/internal/core"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/logging"
)

// Algorithm names one of the supported scheduling policies.
type Algorithm string

const (
	FirstComeFirstServe        Algorithm = "fcfs"
	ShortestJobFirst           Algorithm = "sjf"
	RoundRobin                 Algorithm = "rr"
	Priority                   Algorithm = "priority"
	ShortestRemainingTimeFirst Algorithm = "srtf"
)

// Algorithms lists every policy in presentation order.
var Algorithms = []Algorithm{
	FirstComeFirstServe,
	ShortestJobFirst,
	RoundRobin,
	Priority,
	ShortestRemainingTimeFirst,
}

var algorithmAliases = map[string]Algorithm{
	"fcfs":                          FirstComeFirstServe,
	"fifo":                          FirstComeFirstServe,
	"sjf":                           ShortestJobFirst,
	"rr":                            RoundRobin,
	"roundrobin":                    RoundRobin,
	"round_robin":                   RoundRobin,
	"priority":                      Priority,
	"srtf":                          ShortestRemainingTimeFirst,
	"srt":                           ShortestRemainingTimeFirst,
	"shortest_remaining_time_first": ShortestRemainingTimeFirst,
}

// ParseAlgorithm resolves a user supplied algorithm name, case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	if algorithm, ok := algorithmAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return algorithm, nil
	}
	return "", fmt.Errorf("%w: unknown algorithm %q", ErrInvalidArgument, name)
}

func (a Algorithm) String() string {
	return string(a)
}

// Title is the human readable policy name.
func (a Algorithm) Title() string {
	switch a {
	case FirstComeFirstServe:
		return "First Come First Serve"
	case ShortestJobFirst:
		return "Shortest Job First"
	case RoundRobin:
		return "Round Robin"
	case Priority:
		return "Priority"
	case ShortestRemainingTimeFirst:
		return "Shortest Remaining Time First"
	}
	return string(a)
}

// Params carries policy specific parameters. Quantum is only read by RoundRobin.
type Params struct {
	Quantum int
}

// Run dispatches to the selected policy.
func Run(algorithm Algorithm, processes []core.Process, params Params) (core.Result, error) {
	switch algorithm {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes)
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes)
	case RoundRobin:
		return ScheduleRoundRobin(processes, params.Quantum)
	case Priority:
		return SchedulePriority(processes)
	case ShortestRemainingTimeFirst:
		return ScheduleShortestRemainingTimeFirst(processes)
	}
	return core.EmptyResult(), fmt.Errorf("%w: unknown algorithm %q", ErrInvalidArgument, string(algorithm))
}

// Simulator wraps Run with logging for the api and cli entry points.
type Simulator struct {
	Log *slog.Logger
}

func NewSimulator(log *slog.Logger) *Simulator {
	return &Simulator{Log: log}
}

func (s *Simulator) Simulate(algorithm Algorithm, processes []core.Process, params Params) (core.Result, error) {
	s.Log.Debug("running scheduling algorithm",
		slog.String("algorithm", algorithm.String()),
		slog.Int("processes", len(processes)),
		slog.Int("quantum", params.Quantum),
	)
	result, err := Run(algorithm, processes, params)
	if err != nil {
		s.Log.Warn("simulation rejected",
			slog.String("algorithm", algorithm.String()),
			logging.ErrAttr(err),
		)
		return result, err
	}
	if len(result.Metrics) != len(processes) {
		s.Log.Error("processes missing from timeline",
			slog.String("algorithm", algorithm.String()),
			slog.Int("expected", len(processes)),
			slog.Int("got", len(result.Metrics)),
		)
	}
	s.Log.Debug("simulation finished",
		slog.String("algorithm", algorithm.String()),
		slog.Int("blocks", len(result.Timeline)),
	)
	return result, nil
}
