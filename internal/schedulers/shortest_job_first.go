package schedulers

import "os-cpu-scheduling/internal/core"

// ScheduleShortestJobFirst dispatches the ready process with the smallest
// burst time and runs it to completion.
func ScheduleShortestJobFirst(processes []core.Process) (core.RunResult, error) {
	if err := validate(processes, false); err != nil {
		return core.RunResult{}, err
	}
	simulation := newSimulation(processes)
	simulation.runNonPreemptive(shortestBurst)
	return simulation.result(core.ShortestJobFirst, processes), nil
}
