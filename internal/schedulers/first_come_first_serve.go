package schedulers

import "os-cpu-scheduling/internal/core"

// ScheduleFirstComeFirstServe runs processes in arrival order, each to
// completion. The returned process list is sorted by arrival time.
func ScheduleFirstComeFirstServe(processes []core.Process) (core.RunResult, error) {
	if err := validate(processes, false); err != nil {
		return core.RunResult{}, err
	}
	// sort jobs by arrival time
	sorted := sortByArrival(processes)
	simulation := newSimulation(sorted)
	simulation.runNonPreemptive(fifoRotation)
	return simulation.result(core.FirstComeFirstServe, sorted), nil
}
