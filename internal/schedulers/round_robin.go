package schedulers

import (
	"fmt"
	"os-cpu-scheduling/internal/core"
)

// DefaultQuantum is the time slice used when the caller does not pass one.
const DefaultQuantum = 2

// readyQueue holds every unfinished task in rotation order. It is seeded in
// arrival order; tasks that have not arrived yet keep their place and are
// skipped over until they do.
type readyQueue struct {
	queue []*task
}

func newReadyQueue(tasks []*task) *readyQueue {
	return &readyQueue{queue: tasks}
}

// pop removes and returns the first task in the queue that has arrived by now.
func (r *readyQueue) pop(now int) (*task, bool) {
	for i, t := range r.queue {
		if !t.arrived(now) {
			continue
		}
		r.queue = append(r.queue[:i], r.queue[i+1:]...)
		return t, true
	}
	return nil, false
}

// push rotates t to the back, behind tasks that have not arrived yet.
func (r *readyQueue) push(t *task) {
	r.queue = append(r.queue, t)
}

// ScheduleRoundRobin grants each ready process at most quantum time units per
// dispatch, rotating a queue seeded with every process in arrival order. A
// preempted process goes to the back of that queue. A zero quantum selects
// DefaultQuantum.
func ScheduleRoundRobin(processes []core.Process, quantum int) (core.RunResult, error) {
	if err := validate(processes, false); err != nil {
		return core.RunResult{}, err
	}
	if quantum < 0 {
		return core.RunResult{}, fmt.Errorf("%w: got %d", core.ErrInvalidQuantum, quantum)
	}
	if quantum == 0 {
		quantum = DefaultQuantum
	}

	simulation := newSimulation(processes)
	// newSimulation keeps input order, the queue is seeded in arrival order
	arrivalOrder := make([]*task, len(simulation.tasks))
	copy(arrivalOrder, simulation.tasks)
	sortTasksByArrival(arrivalOrder)

	ready := newReadyQueue(arrivalOrder)
	for !simulation.finished() {
		current, ok := ready.pop(simulation.clock)
		if !ok {
			if !simulation.idleToNextArrival() {
				break
			}
			continue
		}
		simulation.execute(current, min(quantum, current.remaining))
		if !current.finished() {
			ready.push(current)
		}
	}

	result := simulation.result(core.RoundRobin, processes)
	averageResponse := simulation.averageResponse()
	result.AvgResponseTime = &averageResponse
	return result, nil
}
