package schedulers

import (
	"fmt"
	"log"
	"os-cpu-scheduling/internal/core"
	"sync"
)

// Driver simulates one algorithm. Only Round Robin reads quantum.
type Driver func(processes []core.Process, quantum int) (core.RunResult, error)

func ignoreQuantum(schedule func([]core.Process) (core.RunResult, error)) Driver {
	return func(processes []core.Process, _ int) (core.RunResult, error) {
		return schedule(processes)
	}
}

var drivers = map[core.Algorithm]Driver{
	core.FirstComeFirstServe:        ignoreQuantum(ScheduleFirstComeFirstServe),
	core.ShortestJobFirst:           ignoreQuantum(ScheduleShortestJobFirst),
	core.ShortestRemainingTimeFirst: ignoreQuantum(ScheduleShortestRemainingTimeFirst),
	core.RoundRobin:                 ScheduleRoundRobin,
	core.PriorityNonPreemptive:      ignoreQuantum(SchedulePriorityNonPreemptive),
	core.PriorityPreemptive:         ignoreQuantum(SchedulePriorityPreemptive),
}

// Run simulates processes with the requested algorithm. A zero quantum
// selects DefaultQuantum for Round Robin.
func Run(algorithm core.Algorithm, processes []core.Process, quantum int) (core.RunResult, error) {
	driver, ok := drivers[algorithm]
	if !ok {
		return core.RunResult{}, fmt.Errorf("%w: %q", core.ErrUnknownAlgorithm, algorithm)
	}
	if len(processes) == 0 {
		return core.RunResult{}, core.ErrEmptyInput
	}
	log.Printf("running %v algorithm with %d processes", algorithm, len(processes))
	return driver(processes, quantum)
}

// RunAll simulates processes with every algorithm concurrently and returns
// the results in core.Algorithms order. Priority algorithms are skipped when
// no process carries a priority.
func RunAll(processes []core.Process, quantum int) ([]core.RunResult, error) {
	if len(processes) == 0 {
		return nil, core.ErrEmptyInput
	}
	withPriority := false
	for _, p := range processes {
		if p.HasPriority() {
			withPriority = true
			break
		}
	}

	results := make([]core.RunResult, len(core.Algorithms))
	errs := make([]error, len(core.Algorithms))
	skipped := make([]bool, len(core.Algorithms))

	var wg sync.WaitGroup
	for i, algorithm := range core.Algorithms {
		if algorithm.RequiresPriority() && !withPriority {
			skipped[i] = true
			continue
		}
		wg.Add(1)
		go func(i int, algorithm core.Algorithm) {
			defer wg.Done()
			results[i], errs[i] = Run(algorithm, processes, quantum)
		}(i, algorithm)
	}
	wg.Wait()

	// every driver sees the same input, so the first failure is representative
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	completed := make([]core.RunResult, 0, len(results))
	for i, result := range results {
		if !skipped[i] {
			completed = append(completed, result)
		}
	}
	return completed, nil
}
