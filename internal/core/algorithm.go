package core

import "fmt"

type Algorithm string

const (
	FirstComeFirstServe        Algorithm = "fcfs"
	ShortestJobFirst           Algorithm = "sjf"
	ShortestRemainingTimeFirst Algorithm = "srtf"
	RoundRobin                 Algorithm = "rr"
	PriorityNonPreemptive      Algorithm = "priority_np"
	PriorityPreemptive         Algorithm = "priority_p"
)

// Algorithms lists every supported algorithm in canonical order.
var Algorithms = []Algorithm{
	FirstComeFirstServe,
	ShortestJobFirst,
	ShortestRemainingTimeFirst,
	RoundRobin,
	PriorityNonPreemptive,
	PriorityPreemptive,
}

var labels = map[Algorithm]string{
	FirstComeFirstServe:        "First Come First Serve (FCFS)",
	ShortestJobFirst:           "Shortest Job First (SJF)",
	ShortestRemainingTimeFirst: "Shortest Remaining Time First (SRTF)",
	RoundRobin:                 "Round Robin (RR)",
	PriorityNonPreemptive:      "Priority (Non-Preemptive)",
	PriorityPreemptive:         "Priority (Preemptive)",
}

// Label returns a human readable name.
func (a Algorithm) Label() string {
	if label, ok := labels[a]; ok {
		return label
	}
	return string(a)
}

// RequiresPriority reports whether every process must carry a priority.
func (a Algorithm) RequiresPriority() bool {
	return a == PriorityNonPreemptive || a == PriorityPreemptive
}

// ParseAlgorithm resolves an identifier into an Algorithm.
func ParseAlgorithm(id string) (Algorithm, error) {
	algorithm := Algorithm(id)
	if _, ok := labels[algorithm]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, id)
	}
	return algorithm, nil
}
