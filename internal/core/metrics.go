package core

// ProcessMetrics holds the per-process outcome of a simulation.
//
// WaitingTime is measured up to the first execution. ReadyTime is the
// cumulative time spent ready but not running, so for every policy
// TurnaroundTime == ReadyTime + BurstTime.
type ProcessMetrics struct {
	ID             string
	WaitingTime    int
	TurnaroundTime int
	CompletionTime int
	ResponseTime   int
	ReadyTime      int
}

// Result is the output of one simulation run.
type Result struct {
	Timeline []TimelineBlock
	Metrics  []ProcessMetrics
}

func EmptyResult() Result {
	return Result{Timeline: make([]TimelineBlock, 0), Metrics: make([]ProcessMetrics, 0)}
}

// CalculateMetrics derives one entry per process, in the order of processes, from the
// first and last timeline block of each. Processes absent from the timeline are skipped.
func CalculateMetrics(processes []Process, timeline []TimelineBlock) []ProcessMetrics {
	type span struct {
		first, last int
	}
	spans := make(map[string]*span, len(processes))
	for _, block := range timeline {
		if block.IsIdle() {
			continue
		}
		if s, ok := spans[block.ID]; ok {
			s.last = block.EndTime
			continue
		}
		spans[block.ID] = &span{first: block.StartTime, last: block.EndTime}
	}

	metrics := make([]ProcessMetrics, 0, len(processes))
	for _, p := range processes {
		s, ok := spans[p.ID]
		if !ok {
			continue
		}
		response := s.first - p.ArrivalTime
		if response < 0 {
			response = 0
		}
		turnaround := s.last - p.ArrivalTime
		metrics = append(metrics, ProcessMetrics{
			ID:             p.ID,
			WaitingTime:    response,
			TurnaroundTime: turnaround,
			CompletionTime: s.last,
			ResponseTime:   response,
			ReadyTime:      turnaround - p.BurstTime,
		})
	}
	return metrics
}
