package responses

import "os-cpu-scheduling/internal/core"

type ProcessResponse struct {
	ProcessId      string  `json:"process_id"`
	ArrivalTime    int     `json:"arrival_time"`
	BurstTime      int     `json:"burst_time"`
	Priority       *int    `json:"priority,omitempty"`
	CompletionTime int     `json:"completion_time"`
	ResponseTime   float64 `json:"response_time"`
	TurnAroundTime float64 `json:"turn_around_time"`
	WaitingTime    float64 `json:"waiting_time"`
}
type ScheduleResponse struct {
	RunId                 string               `json:"run_id"`
	Algorithm             core.Algorithm       `json:"algorithm"`
	Label                 string               `json:"label"`
	TotalTime             int                  `json:"total_time"`
	IdleTime              int                  `json:"idle_time"`
	AverageWaitingTime    float64              `json:"average_waiting_time"`
	AverageResponseTime   float64              `json:"average_response_time"`
	AverageTurnAroundTime float64              `json:"average_turn_around_time"`
	CpuUtilization        float64              `json:"cpu_utilization"`
	CpuThroughput         float64              `json:"cpu_throughput"`
	ContextSwitches       int                  `json:"context_switches"`
	Timeline              []core.TimelineEntry `json:"timeline"`
	Details               []ProcessResponse    `json:"details"`
}

type CompareResponse struct {
	Results []ScheduleResponse `json:"results"`
}

type AlgorithmResponse struct {
	Id               core.Algorithm `json:"id"`
	Label            string         `json:"label"`
	RequiresPriority bool           `json:"requires_priority"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}
