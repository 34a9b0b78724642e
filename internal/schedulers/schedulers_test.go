package schedulers

import (
	"os-cpu-scheduling/internal/core"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(id string, start, end int) core.TimelineEntry {
	return core.TimelineEntry{Label: id, StartTime: start, EndTime: end, ProcessID: id}
}

func idle(start, end int) core.TimelineEntry {
	return core.TimelineEntry{Label: core.IdleLabel, StartTime: start, EndTime: end}
}

func process(id string, arrival, burst int) core.Process {
	return core.Process{ID: id, ArrivalTime: arrival, BurstTime: burst}
}

func prioritized(id string, arrival, burst, priority int) core.Process {
	return core.Process{ID: id, ArrivalTime: arrival, BurstTime: burst, Priority: core.IntPtr(priority)}
}

func TestSchedulers(t *testing.T) {
	classicPriority := []core.Process{
		prioritized("P1", 0, 4, 2),
		prioritized("P2", 1, 3, 1),
		prioritized("P3", 2, 1, 3),
		prioritized("P4", 3, 2, 1),
	}

	var testCases = []struct {
		description     string
		algorithm       core.Algorithm
		processes       []core.Process
		quantum         int
		expectTimeline  []core.TimelineEntry
		expectWaiting   float64
		expectTurnround float64
		expectSwitches  int
	}{
		{
			description:     "fcfs in arrival order",
			algorithm:       core.FirstComeFirstServe,
			processes:       []core.Process{process("P1", 0, 5), process("P2", 1, 3)},
			expectTimeline:  []core.TimelineEntry{run("P1", 0, 5), run("P2", 5, 8)},
			expectWaiting:   2,
			expectTurnround: 6,
			expectSwitches:  1,
		},
		{
			description:     "fcfs sorts input and idles until first arrival",
			algorithm:       core.FirstComeFirstServe,
			processes:       []core.Process{process("P2", 6, 1), process("P1", 2, 3)},
			expectTimeline:  []core.TimelineEntry{idle(0, 2), run("P1", 2, 5), idle(5, 6), run("P2", 6, 7)},
			expectWaiting:   0,
			expectTurnround: 2,
			expectSwitches:  3,
		},
		{
			description: "sjf picks shortest ready burst, ties by input order",
			algorithm:   core.ShortestJobFirst,
			processes:   []core.Process{process("P1", 0, 7), process("P2", 2, 4), process("P3", 4, 1), process("P4", 5, 4)},
			expectTimeline: []core.TimelineEntry{
				run("P1", 0, 7), run("P3", 7, 8), run("P2", 8, 12), run("P4", 12, 16),
			},
			expectWaiting:   4,
			expectTurnround: 8,
			expectSwitches:  3,
		},
		{
			description:     "sjf idles until earliest arrival, not first in input",
			algorithm:       core.ShortestJobFirst,
			processes:       []core.Process{process("P1", 9, 2), process("P2", 3, 1)},
			expectTimeline:  []core.TimelineEntry{idle(0, 3), run("P2", 3, 4), idle(4, 9), run("P1", 9, 11)},
			expectWaiting:   0,
			expectTurnround: 1.5,
			expectSwitches:  3,
		},
		{
			description:     "srtf preempts on shorter arrival",
			algorithm:       core.ShortestRemainingTimeFirst,
			processes:       []core.Process{process("P1", 0, 8), process("P2", 1, 4)},
			expectTimeline:  []core.TimelineEntry{run("P1", 0, 1), run("P2", 1, 5), run("P1", 5, 12)},
			expectWaiting:   2,
			expectTurnround: 8,
			expectSwitches:  2,
		},
		{
			description: "srtf textbook set",
			algorithm:   core.ShortestRemainingTimeFirst,
			processes:   []core.Process{process("P1", 0, 8), process("P2", 1, 4), process("P3", 2, 9), process("P4", 3, 5)},
			expectTimeline: []core.TimelineEntry{
				run("P1", 0, 1), run("P2", 1, 5), run("P4", 5, 10), run("P1", 10, 17), run("P3", 17, 26),
			},
			expectWaiting:   6.5,
			expectTurnround: 13,
			expectSwitches:  4,
		},
		{
			description: "round robin with mid slice arrival",
			algorithm:   core.RoundRobin,
			processes:   []core.Process{process("P1", 0, 5), process("P2", 1, 3)},
			quantum:     2,
			expectTimeline: []core.TimelineEntry{
				run("P1", 0, 2), run("P2", 2, 4), run("P1", 4, 6), run("P2", 6, 7), run("P1", 7, 8),
			},
			expectWaiting:   3,
			expectTurnround: 7,
			expectSwitches:  4,
		},
		{
			description:     "round robin coalesces consecutive slices of a lone process",
			algorithm:       core.RoundRobin,
			processes:       []core.Process{process("P1", 1, 5)},
			quantum:         2,
			expectTimeline:  []core.TimelineEntry{idle(0, 1), run("P1", 1, 6)},
			expectWaiting:   0,
			expectTurnround: 5,
			expectSwitches:  1,
		},
		{
			description: "priority non preemptive",
			algorithm:   core.PriorityNonPreemptive,
			processes:   classicPriority,
			expectTimeline: []core.TimelineEntry{
				run("P1", 0, 4), run("P2", 4, 7), run("P4", 7, 9), run("P3", 9, 10),
			},
			expectWaiting:   3.5,
			expectTurnround: 6,
			expectSwitches:  3,
		},
		{
			description: "priority preemptive",
			algorithm:   core.PriorityPreemptive,
			processes:   classicPriority,
			expectTimeline: []core.TimelineEntry{
				run("P1", 0, 1), run("P2", 1, 4), run("P4", 4, 6), run("P1", 6, 9), run("P3", 9, 10),
			},
			expectWaiting:   3.25,
			expectTurnround: 5.75,
			expectSwitches:  4,
		},
	}

	for _, testCase := range testCases {
		actual, err := Run(testCase.algorithm, testCase.processes, testCase.quantum)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.algorithm, actual.Algorithm, testCase.description)
		assert.EqualValues(t, testCase.expectTimeline, actual.Timeline, testCase.description)
		assert.InDelta(t, testCase.expectWaiting, actual.AvgWaitingTime, 1e-9, testCase.description)
		assert.InDelta(t, testCase.expectTurnround, actual.AvgTurnaroundTime, 1e-9, testCase.description)
		assert.Equal(t, testCase.expectSwitches, actual.ContextSwitches, testCase.description)
	}
}

func TestRoundRobinResponseTime(t *testing.T) {
	actual, err := ScheduleRoundRobin([]core.Process{process("P1", 0, 5), process("P2", 1, 3)}, 2)
	require.NoError(t, err)
	require.NotNil(t, actual.AvgResponseTime)
	assert.InDelta(t, 0.5, *actual.AvgResponseTime, 1e-9)

	for _, algorithm := range []core.Algorithm{core.FirstComeFirstServe, core.ShortestJobFirst, core.ShortestRemainingTimeFirst} {
		other, err := Run(algorithm, []core.Process{process("P1", 0, 5)}, 0)
		require.NoError(t, err)
		assert.Nil(t, other.AvgResponseTime, algorithm)
	}
}

func TestRoundRobinQueueOrder(t *testing.T) {
	var testCases = []struct {
		description string
		processes   []core.Process
		expect      []core.TimelineEntry
	}{
		{
			description: "late arrival keeps its seeded place ahead of rotated processes",
			processes:   []core.Process{process("P1", 0, 6), process("P2", 1, 4), process("P3", 5, 2)},
			expect: []core.TimelineEntry{
				run("P1", 0, 2), run("P2", 2, 4), run("P1", 4, 6), run("P3", 6, 8), run("P2", 8, 10), run("P1", 10, 12),
			},
		},
		{
			description: "arrival during a slice runs at the next dispatch",
			processes:   []core.Process{process("A", 0, 4), process("B", 0, 4), process("C", 3, 1)},
			expect: []core.TimelineEntry{
				run("A", 0, 2), run("B", 2, 4), run("C", 4, 5), run("A", 5, 7), run("B", 7, 9),
			},
		},
		{
			description: "not yet arrived head is skipped over",
			processes:   []core.Process{process("P1", 0, 3), process("P2", 4, 1)},
			expect: []core.TimelineEntry{
				run("P1", 0, 3), idle(3, 4), run("P2", 4, 5),
			},
		},
	}

	for _, testCase := range testCases {
		actual, err := ScheduleRoundRobin(testCase.processes, 2)
		require.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual.Timeline, testCase.description)
	}
}

func TestRoundRobinDefaultQuantum(t *testing.T) {
	processes := []core.Process{process("P1", 0, 5), process("P2", 0, 5)}
	withDefault, err := ScheduleRoundRobin(processes, 0)
	require.NoError(t, err)
	explicit, err := ScheduleRoundRobin(processes, DefaultQuantum)
	require.NoError(t, err)
	assert.EqualValues(t, explicit.Timeline, withDefault.Timeline)
	assert.Equal(t, 2, withDefault.Timeline[0].Duration())

	_, err = ScheduleRoundRobin(processes, -1)
	assert.ErrorIs(t, err, core.ErrInvalidQuantum)
}

func TestErrors(t *testing.T) {
	var testCases = []struct {
		description string
		algorithm   core.Algorithm
		processes   []core.Process
		expect      error
	}{
		{
			description: "empty input",
			algorithm:   core.FirstComeFirstServe,
			expect:      core.ErrEmptyInput,
		},
		{
			description: "unknown algorithm",
			algorithm:   core.Algorithm("lottery"),
			processes:   []core.Process{process("P1", 0, 1)},
			expect:      core.ErrUnknownAlgorithm,
		},
		{
			description: "missing priority non preemptive",
			algorithm:   core.PriorityNonPreemptive,
			processes:   []core.Process{prioritized("P1", 0, 1, 1), process("P2", 0, 1)},
			expect:      core.ErrMissingPriority,
		},
		{
			description: "missing priority preemptive",
			algorithm:   core.PriorityPreemptive,
			processes:   []core.Process{process("P1", 0, 1)},
			expect:      core.ErrMissingPriority,
		},
		{
			description: "zero burst",
			algorithm:   core.ShortestRemainingTimeFirst,
			processes:   []core.Process{process("P1", 0, 0)},
			expect:      core.ErrNonTerminatingInput,
		},
		{
			description: "negative burst",
			algorithm:   core.RoundRobin,
			processes:   []core.Process{process("P1", 0, -3)},
			expect:      core.ErrNonTerminatingInput,
		},
		{
			description: "empty process id",
			algorithm:   core.FirstComeFirstServe,
			processes:   []core.Process{process("", 0, 1)},
			expect:      core.ErrInvalidProcessID,
		},
		{
			description: "duplicate process id",
			algorithm:   core.RoundRobin,
			processes:   []core.Process{process("P1", 0, 1), process("P1", 2, 1)},
			expect:      core.ErrInvalidProcessID,
		},
		{
			description: "negative arrival",
			algorithm:   core.ShortestJobFirst,
			processes:   []core.Process{process("P1", -1, 3)},
			expect:      core.ErrInvalidArrival,
		},
	}

	for _, testCase := range testCases {
		actual, err := Run(testCase.algorithm, testCase.processes, 0)
		assert.ErrorIs(t, err, testCase.expect, testCase.description)
		assert.Empty(t, actual.Timeline, testCase.description)
	}
}

func TestProcessNamedIdle(t *testing.T) {
	processes := []core.Process{prioritized("P0", 0, 1, 1), prioritized(core.IdleLabel, 3, 2, 1)}
	for _, algorithm := range core.Algorithms {
		actual, err := Run(algorithm, processes, 0)
		require.NoError(t, err, algorithm)
		assert.EqualValues(t, []core.TimelineEntry{
			run("P0", 0, 1), idle(1, 3), run(core.IdleLabel, 3, 5),
		}, actual.Timeline, algorithm)
		assert.Equal(t, 2, actual.ContextSwitches, algorithm)
		assert.InDelta(t, 0.0, actual.AvgWaitingTime, 1e-9, algorithm)

		details := ProcessDetails(actual)
		require.Len(t, details, 2, algorithm)
		assert.Equal(t, 5, details[1].CompletionTime, algorithm)
		assert.InDelta(t, 0.0, details[1].WaitingTime, 1e-9, algorithm)
	}
}

func TestPriorityIgnoredByOtherAlgorithms(t *testing.T) {
	actual, err := ScheduleShortestJobFirst([]core.Process{prioritized("P1", 0, 2, 9), process("P2", 0, 1)})
	require.NoError(t, err)
	assert.EqualValues(t, []core.TimelineEntry{run("P2", 0, 1), run("P1", 1, 3)}, actual.Timeline)
}

func TestRunAll(t *testing.T) {
	withoutPriority := []core.Process{process("P1", 0, 5), process("P2", 1, 3)}
	results, err := RunAll(withoutPriority, 0)
	require.NoError(t, err)
	require.Len(t, results, 4)
	for i, algorithm := range []core.Algorithm{core.FirstComeFirstServe, core.ShortestJobFirst, core.ShortestRemainingTimeFirst, core.RoundRobin} {
		assert.Equal(t, algorithm, results[i].Algorithm)
	}

	withPriority := []core.Process{prioritized("P1", 0, 5, 2), prioritized("P2", 1, 3, 1)}
	results, err = RunAll(withPriority, 0)
	require.NoError(t, err)
	require.Len(t, results, len(core.Algorithms))
	for i, algorithm := range core.Algorithms {
		assert.Equal(t, algorithm, results[i].Algorithm)
	}

	_, err = RunAll([]core.Process{prioritized("P1", 0, 5, 2), process("P2", 1, 3)}, 0)
	assert.ErrorIs(t, err, core.ErrMissingPriority)

	_, err = RunAll(nil, 0)
	assert.ErrorIs(t, err, core.ErrEmptyInput)
}

func TestInputNotMutated(t *testing.T) {
	for _, algorithm := range core.Algorithms {
		processes := []core.Process{prioritized("P2", 3, 2, 1), prioritized("P1", 0, 4, 2)}
		result, err := Run(algorithm, processes, 1)
		require.NoError(t, err, algorithm)
		assert.EqualValues(t, []core.Process{prioritized("P2", 3, 2, 1), prioritized("P1", 0, 4, 2)}, processes, algorithm)

		*result.Processes[0].Priority = 42
		assert.NotEqual(t, 42, *processes[0].Priority, algorithm)
		assert.NotEqual(t, 42, *processes[1].Priority, algorithm)
	}
}

func TestFirstComeFirstServeProcessesSorted(t *testing.T) {
	actual, err := ScheduleFirstComeFirstServe([]core.Process{process("B", 2, 1), process("A", 0, 1), process("C", 2, 1)})
	require.NoError(t, err)
	ids := make([]string, 0, len(actual.Processes))
	for _, p := range actual.Processes {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"A", "B", "C"}, ids)
}
