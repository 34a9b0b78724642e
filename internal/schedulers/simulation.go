package schedulers

import (
	"fmt"
	"os-cpu-scheduling/internal/core"
	"sort"
)

// task is the working copy of a process owned by one simulation run.
type task struct {
	process    core.Process
	remaining  int
	firstStart int
	completion int
}

func (t *task) arrived(now int) bool {
	return t.process.ArrivalTime <= now
}

func (t *task) finished() bool {
	return t.remaining == 0
}

func (t *task) priority() int {
	return *t.process.Priority
}

// selectionPolicy decides which ready task the CPU runs next.
type selectionPolicy int

const (
	shortestBurst selectionPolicy = iota
	shortestRemaining
	lowestPriority
	fifoRotation
)

// less reports whether a should be preferred over b. Equal candidates are
// never preferred, so the first one encountered in input order wins.
func (p selectionPolicy) less(a, b *task) bool {
	switch p {
	case shortestBurst:
		return a.process.BurstTime < b.process.BurstTime
	case shortestRemaining:
		return a.remaining < b.remaining
	case lowestPriority:
		return a.priority() < b.priority()
	}
	return false
}

// simulation holds the mutable state of one run: the clock, the working
// copies and the timeline built so far.
type simulation struct {
	tasks    []*task
	clock    int
	done     int
	timeline []core.TimelineEntry
}

func newSimulation(processes []core.Process) *simulation {
	tasks := make([]*task, len(processes))
	for i, p := range processes {
		tasks[i] = &task{process: p.Clone(), remaining: p.BurstTime, firstStart: -1}
	}
	return &simulation{tasks: tasks, timeline: make([]core.TimelineEntry, 0, len(processes))}
}

func (s *simulation) finished() bool {
	return s.done == len(s.tasks)
}

// pick returns the preferred arrived, unfinished task, or nil when none is ready.
func (s *simulation) pick(policy selectionPolicy) *task {
	var selected *task
	for _, t := range s.tasks {
		if t.finished() || !t.arrived(s.clock) {
			continue
		}
		if selected == nil || policy.less(t, selected) {
			selected = t
		}
	}
	return selected
}

// nextArrival returns the earliest arrival after the clock among unfinished tasks.
func (s *simulation) nextArrival() (int, bool) {
	next, found := 0, false
	for _, t := range s.tasks {
		if t.finished() || t.arrived(s.clock) {
			continue
		}
		if !found || t.process.ArrivalTime < next {
			next, found = t.process.ArrivalTime, true
		}
	}
	return next, found
}

// idleUntil keeps the CPU idle up to the given time.
func (s *simulation) idleUntil(until int) {
	if until <= s.clock {
		return
	}
	s.appendEntry(core.IdleLabel, "", until)
}

// execute runs t for duration time units starting at the clock.
func (s *simulation) execute(t *task, duration int) {
	if t.firstStart < 0 {
		t.firstStart = s.clock
	}
	s.appendEntry(t.process.ID, t.process.ID, s.clock+duration)
	t.remaining -= duration
	if t.finished() {
		t.completion = s.clock
		s.done++
	}
}

// appendEntry closes the interval [clock, end), merging it into the previous
// entry when the same process (or idleness) continues.
func (s *simulation) appendEntry(label, processID string, end int) {
	if last := len(s.timeline) - 1; last >= 0 && s.timeline[last].ProcessID == processID {
		s.timeline[last].EndTime = end
	} else {
		s.timeline = append(s.timeline, core.TimelineEntry{
			Label:     label,
			StartTime: s.clock,
			EndTime:   end,
			ProcessID: processID,
		})
	}
	s.clock = end
}

// idleToNextArrival advances over an idle gap; it reports false when no
// process is left to arrive.
func (s *simulation) idleToNextArrival() bool {
	next, ok := s.nextArrival()
	if !ok {
		return false
	}
	s.idleUntil(next)
	return true
}

// runNonPreemptive repeatedly dispatches the preferred ready task and runs it
// to completion.
func (s *simulation) runNonPreemptive(policy selectionPolicy) {
	for !s.finished() {
		selected := s.pick(policy)
		if selected == nil {
			if !s.idleToNextArrival() {
				return
			}
			continue
		}
		s.execute(selected, selected.remaining)
	}
}

// runPreemptive re-selects every time unit, so an arrival preempts the
// running task as soon as it becomes preferable.
func (s *simulation) runPreemptive(policy selectionPolicy) {
	for !s.finished() {
		selected := s.pick(policy)
		if selected == nil {
			if !s.idleToNextArrival() {
				return
			}
			continue
		}
		step := min(selected.remaining, 1)
		if next, ok := s.nextArrival(); ok {
			step = min(step, next-s.clock)
		}
		s.execute(selected, step)
	}
}

// result summarises the run once every task has finished.
func (s *simulation) result(algorithm core.Algorithm, processes []core.Process) core.RunResult {
	var totalWaiting, totalTurnaround int
	for _, t := range s.tasks {
		turnaround := t.completion - t.process.ArrivalTime
		totalWaiting += turnaround - t.process.BurstTime
		totalTurnaround += turnaround
	}
	count := float64(len(s.tasks))
	return core.RunResult{
		Algorithm:         algorithm,
		Processes:         core.CloneProcesses(processes),
		Timeline:          s.timeline,
		AvgWaitingTime:    float64(totalWaiting) / count,
		AvgTurnaroundTime: float64(totalTurnaround) / count,
		ContextSwitches:   core.CountContextSwitches(s.timeline),
	}
}

// averageResponse is the mean latency between arrival and first dispatch.
func (s *simulation) averageResponse() float64 {
	var total int
	for _, t := range s.tasks {
		total += t.firstStart - t.process.ArrivalTime
	}
	return float64(total) / float64(len(s.tasks))
}

// sortByArrival returns a copy ordered by arrival time, ties keeping input order.
func sortByArrival(processes []core.Process) []core.Process {
	sorted := core.CloneProcesses(processes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ArrivalTime < sorted[j].ArrivalTime
	})
	return sorted
}

func sortTasksByArrival(tasks []*task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].process.ArrivalTime < tasks[j].process.ArrivalTime
	})
}

// validate checks the preconditions shared by every driver.
func validate(processes []core.Process, requirePriority bool) error {
	if len(processes) == 0 {
		return core.ErrEmptyInput
	}
	seen := make(map[string]bool, len(processes))
	for _, p := range processes {
		if p.ID == "" || seen[p.ID] {
			return fmt.Errorf("%w: %q", core.ErrInvalidProcessID, p.ID)
		}
		seen[p.ID] = true
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: process %q has burst time %d", core.ErrNonTerminatingInput, p.ID, p.BurstTime)
		}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %q arrives at %d", core.ErrInvalidArrival, p.ID, p.ArrivalTime)
		}
		if requirePriority && !p.HasPriority() {
			return fmt.Errorf("%w: process %q has none", core.ErrMissingPriority, p.ID)
		}
	}
	return nil
}
