package core

// Process is the immutable input record of a simulation run.
// Priority is optional; a lower value means a higher scheduling priority.
type Process struct {
	ID          string `json:"id" yaml:"id"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    *int   `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// HasPriority reports whether the process carries a priority.
func (p Process) HasPriority() bool {
	return p.Priority != nil
}

// Clone returns a copy that shares no memory with p.
func (p Process) Clone() Process {
	if p.Priority != nil {
		priority := *p.Priority
		p.Priority = &priority
	}
	return p
}

// CloneProcesses deep copies a process list.
func CloneProcesses(processes []Process) []Process {
	cloned := make([]Process, len(processes))
	for i, p := range processes {
		cloned[i] = p.Clone()
	}
	return cloned
}

// IntPtr returns a pointer to v, handy for building priorities.
func IntPtr(v int) *int {
	return &v
}
