package util

import "github.com/mahmoudKheyrati/cpu-scheduler/internal/core"

// CalculateAverage returns the mean metrics over all processes, or zeros for none.
func CalculateAverage(proccessDetails []core.ProcessMetrics) (averageWaitingTime, averageResponseTime, averageTimeAroundTime, averageReadyTime float64) {
	if len(proccessDetails) == 0 {
		return
	}
	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64
	var readyTimeSum float64

	for _, proccess := range proccessDetails {
		waitingTimeSum += float64(proccess.WaitingTime)
		responseTimeSum += float64(proccess.ResponseTime)
		turnAroundTimeSum += float64(proccess.TurnaroundTime)
		readyTimeSum += float64(proccess.ReadyTime)
	}

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = waitingTimeSum / proccessCount
	averageResponseTime = responseTimeSum / proccessCount
	averageTimeAroundTime = turnAroundTimeSum / proccessCount
	averageReadyTime = readyTimeSum / proccessCount
	return
}
