package schedulers

import "os-cpu-scheduling/internal/core"

// SchedulePriorityPreemptive re-evaluates priorities every time unit, so a
// newly arrived process with a lower priority value preempts the running one.
func SchedulePriorityPreemptive(processes []core.Process) (core.RunResult, error) {
	if err := validate(processes, true); err != nil {
		return core.RunResult{}, err
	}
	simulation := newSimulation(processes)
	simulation.runPreemptive(lowestPriority)
	return simulation.result(core.PriorityPreemptive, processes), nil
}
