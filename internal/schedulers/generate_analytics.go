package schedulers

import (
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/core"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/responses"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/util"
)

// Summary aggregates cpu usage over a whole timeline.
type Summary struct {
	TotalTime      int
	IdleTime       int
	BusyTime       int
	CpuUtilization float64
	CpuThroughput  float64
}

func Summarize(result core.Result) Summary {
	var summary Summary
	for _, block := range result.Timeline {
		if block.IsIdle() {
			summary.IdleTime += block.Duration()
		} else {
			summary.BusyTime += block.Duration()
		}
	}
	if n := len(result.Timeline); n > 0 {
		summary.TotalTime = result.Timeline[n-1].EndTime
	}
	if summary.TotalTime > 0 {
		summary.CpuUtilization = float64(summary.BusyTime) / float64(summary.TotalTime)
		summary.CpuThroughput = float64(len(result.Metrics)) / float64(summary.TotalTime)
	}
	return summary
}

// GenerateResponse renders a simulation result into its wire form.
func GenerateResponse(runId string, algorithm Algorithm, params Params, result core.Result) responses.ScheduleResponse {
	averageWaitingTime, averageResponseTime, averageTimeAroundTime, averageReadyTime := util.CalculateAverage(result.Metrics)
	summary := Summarize(result)

	timeline := make([]responses.TimelineBlock, 0, len(result.Timeline))
	for _, block := range result.Timeline {
		timeline = append(timeline, responses.TimelineBlock{
			ProcessId: block.ID,
			StartTime: block.StartTime,
			EndTime:   block.EndTime,
		})
	}

	proccessDetails := make([]responses.ProcessResponse, 0, len(result.Metrics))
	for _, m := range result.Metrics {
		proccessDetails = append(proccessDetails, responses.ProcessResponse{
			ProcessId:      m.ID,
			WaitingTime:    m.WaitingTime,
			TurnAroundTime: m.TurnaroundTime,
			CompletionTime: m.CompletionTime,
			ResponseTime:   m.ResponseTime,
			ReadyTime:      m.ReadyTime,
		})
	}

	response := responses.ScheduleResponse{
		RunId:                 runId,
		Algorithm:             algorithm.String(),
		TotalTime:             summary.TotalTime,
		IdleTime:              summary.IdleTime,
		CpuUtilization:        summary.CpuUtilization,
		CpuThroughput:         summary.CpuThroughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		AverageReadyTime:      averageReadyTime,
		Timeline:              timeline,
		Details:               proccessDetails,
	}
	if algorithm == RoundRobin {
		response.Quantum = params.Quantum
	}
	return response
}

// Compare runs every algorithm on the same processes. Rejected algorithms are
// reported by name under Errors instead of failing the whole comparison.
func (s *Simulator) Compare(runId string, processes []core.Process, params Params) responses.CompareResponse {
	compare := responses.CompareResponse{
		RunId:   runId,
		Results: make(map[string]responses.ScheduleResponse, len(Algorithms)),
		Errors:  make(map[string]string),
	}
	for _, algorithm := range Algorithms {
		result, err := s.Simulate(algorithm, processes, params)
		if err != nil {
			compare.Errors[algorithm.String()] = err.Error()
			continue
		}
		compare.Results[algorithm.String()] = GenerateResponse(runId, algorithm, params, result)
	}
	return compare
}
