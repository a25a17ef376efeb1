package generator

import (
	"math/rand"
	"sort"
	"strconv"

	"github.com/mahmoudKheyrati/cpu-scheduler/internal/requests"
)

// Colors is the palette handed out to generated processes, in order.
var Colors = []string{"magenta", "cyan", "yellow", "green", "blue", "red"}

type Options struct {
	MinProcesses int
	MaxProcesses int
	// arrivals are drawn from [0, MaxArrival], bursts from [1, MaxBurst]
	MaxArrival  int
	MaxBurst    int
	MaxPriority int
	// WithPriority also draws priorities from [0, MaxPriority].
	WithPriority bool
}

func DefaultOptions() Options {
	return Options{
		MinProcesses: 3,
		MaxProcesses: 5,
		MaxArrival:   9,
		MaxBurst:     10,
		MaxPriority:  5,
	}
}

// Generate draws a random workload from seed. The same seed and options always
// produce the same processes, named P1..Pn in arrival order.
func Generate(seed int64, opts Options) []requests.Process {
	rng := rand.New(rand.NewSource(seed))
	if opts.MinProcesses < 1 {
		opts.MinProcesses = 1
	}
	if opts.MaxProcesses < opts.MinProcesses {
		opts.MaxProcesses = opts.MinProcesses
	}
	if opts.MaxBurst < 1 {
		opts.MaxBurst = 1
	}
	if opts.MaxPriority < 0 {
		opts.MaxPriority = 0
	}
	if opts.MaxArrival < 0 {
		opts.MaxArrival = 0
	}

	count := opts.MinProcesses + rng.Intn(opts.MaxProcesses-opts.MinProcesses+1)
	processes := make([]requests.Process, 0, count)
	for i := 0; i < count; i++ {
		process := requests.Process{
			ArrivalTime: rng.Intn(opts.MaxArrival + 1),
			BurstTime:   rng.Intn(opts.MaxBurst) + 1,
		}
		if opts.WithPriority {
			priority := rng.Intn(opts.MaxPriority + 1)
			process.Priority = &priority
		}
		processes = append(processes, process)
	}

	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].ArrivalTime < processes[j].ArrivalTime
	})
	for i := range processes {
		processes[i].ID = "P" + strconv.Itoa(i+1)
		processes[i].Color = Colors[i%len(Colors)]
	}
	return processes
}
