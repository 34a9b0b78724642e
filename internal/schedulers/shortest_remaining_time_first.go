package schedulers

import "os-cpu-scheduling/internal/core"

// ScheduleShortestRemainingTimeFirst is the preemptive variant of SJF: every
// time unit the ready process with the least remaining time gets the CPU.
func ScheduleShortestRemainingTimeFirst(processes []core.Process) (core.RunResult, error) {
	if err := validate(processes, false); err != nil {
		return core.RunResult{}, err
	}
	simulation := newSimulation(processes)
	simulation.runPreemptive(shortestRemaining)
	return simulation.result(core.ShortestRemainingTimeFirst, processes), nil
}
