package schedulers

import "os-cpu-scheduling/internal/core"

// SchedulePriorityNonPreemptive dispatches the ready process with the lowest
// priority value and runs it to completion.
func SchedulePriorityNonPreemptive(processes []core.Process) (core.RunResult, error) {
	if err := validate(processes, true); err != nil {
		return core.RunResult{}, err
	}
	simulation := newSimulation(processes)
	simulation.runNonPreemptive(lowestPriority)
	return simulation.result(core.PriorityNonPreemptive, processes), nil
}
