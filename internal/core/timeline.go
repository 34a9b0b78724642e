package core

// IdleLabel is the display label of a timeline entry during which the CPU
// runs nothing. Idle entries are told apart by their empty ProcessID, so a
// process may itself be called "Idle".
const IdleLabel = "Idle"

// TimelineEntry is one contiguous interval of the execution timeline.
type TimelineEntry struct {
	Label     string `json:"label"`
	StartTime int    `json:"start_time"`
	EndTime   int    `json:"end_time"`
	ProcessID string `json:"process_id,omitempty"`
}

func (e TimelineEntry) IsIdle() bool {
	return e.ProcessID == ""
}

func (e TimelineEntry) Duration() int {
	return e.EndTime - e.StartTime
}

// RunResult is the output of a single simulation run.
type RunResult struct {
	Algorithm         Algorithm       `json:"algorithm"`
	Processes         []Process       `json:"processes"`
	Timeline          []TimelineEntry `json:"timeline"`
	AvgWaitingTime    float64         `json:"avg_waiting_time"`
	AvgTurnaroundTime float64         `json:"avg_turnaround_time"`
	AvgResponseTime   *float64        `json:"avg_response_time,omitempty"`
	ContextSwitches   int             `json:"context_switches"`
}

// Makespan returns the end of the last timeline entry.
func (r RunResult) Makespan() int {
	if len(r.Timeline) == 0 {
		return 0
	}
	return r.Timeline[len(r.Timeline)-1].EndTime
}

// CountContextSwitches counts changes of the running process between adjacent
// entries, idle transitions included.
func CountContextSwitches(timeline []TimelineEntry) int {
	switches := 0
	for i := 1; i < len(timeline); i++ {
		if timeline[i].ProcessID != timeline[i-1].ProcessID {
			switches++
		}
	}
	return switches
}
