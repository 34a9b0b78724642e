package util

import "os-cpu-scheduling/internal/responses"

// CalculateAverage returns the mean waiting, response and turnaround time of
// the given processes; all zero for an empty list.
func CalculateAverage(details []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(details) == 0 {
		return
	}
	for _, detail := range details {
		averageWaitingTime += detail.WaitingTime
		averageResponseTime += detail.ResponseTime
		averageTurnAroundTime += detail.TurnAroundTime
	}
	count := float64(len(details))
	return averageWaitingTime / count, averageResponseTime / count, averageTurnAroundTime / count
}
