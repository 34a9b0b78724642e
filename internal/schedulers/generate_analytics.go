package schedulers

import (
	"os-cpu-scheduling/internal/core"
	"os-cpu-scheduling/internal/idgen"
	"os-cpu-scheduling/internal/responses"
	"os-cpu-scheduling/internal/util"
)

// GenerateResponse turns a run into the API response, recomputing every
// per-process metric from the timeline.
func GenerateResponse(result core.RunResult) responses.ScheduleResponse {
	processDetails := ProcessDetails(result)
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(processDetails)

	cpuMetric := core.MeasureCpu(result.Timeline)
	var response = responses.ScheduleResponse{
		RunId:                 idgen.New(),
		Algorithm:             result.Algorithm,
		Label:                 result.Algorithm.Label(),
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		CpuUtilization:        cpuMetric.Utilization(),
		CpuThroughput:         cpuMetric.Throughput(len(result.Processes)),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		ContextSwitches:       result.ContextSwitches,
		Timeline:              result.Timeline,
		Details:               processDetails,
	}
	return response
}

// ProcessDetails derives completion, turnaround, waiting and response time of
// every process from the timeline, in the order of result.Processes.
func ProcessDetails(result core.RunResult) []responses.ProcessResponse {
	firstStart := make(map[string]int)
	completion := make(map[string]int)
	for _, entry := range result.Timeline {
		if entry.IsIdle() {
			continue
		}
		if _, ok := firstStart[entry.ProcessID]; !ok {
			firstStart[entry.ProcessID] = entry.StartTime
		}
		completion[entry.ProcessID] = entry.EndTime
	}

	details := make([]responses.ProcessResponse, 0, len(result.Processes))
	for _, process := range result.Processes {
		turnAroundTime := completion[process.ID] - process.ArrivalTime
		details = append(details, responses.ProcessResponse{
			ProcessId:      process.ID,
			ArrivalTime:    process.ArrivalTime,
			BurstTime:      process.BurstTime,
			Priority:       process.Priority,
			CompletionTime: completion[process.ID],
			ResponseTime:   float64(firstStart[process.ID] - process.ArrivalTime),
			TurnAroundTime: float64(turnAroundTime),
			WaitingTime:    float64(turnAroundTime - process.BurstTime),
		})
	}
	return details
}
