package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountContextSwitches(t *testing.T) {
	var testCases = []struct {
		description string
		timeline    []TimelineEntry
		expect      int
	}{
		{description: "empty"},
		{
			description: "single run",
			timeline:    []TimelineEntry{{Label: "P1", StartTime: 0, EndTime: 3, ProcessID: "P1"}},
		},
		{
			description: "idle transitions count",
			timeline: []TimelineEntry{
				{Label: IdleLabel, StartTime: 0, EndTime: 1},
				{Label: "P1", StartTime: 1, EndTime: 3, ProcessID: "P1"},
				{Label: IdleLabel, StartTime: 3, EndTime: 4},
				{Label: "P2", StartTime: 4, EndTime: 5, ProcessID: "P2"},
			},
			expect: 3,
		},
		{
			description: "same label is not a switch",
			timeline: []TimelineEntry{
				{Label: "P1", StartTime: 0, EndTime: 1, ProcessID: "P1"},
				{Label: "P1", StartTime: 1, EndTime: 2, ProcessID: "P1"},
				{Label: "P2", StartTime: 2, EndTime: 3, ProcessID: "P2"},
			},
			expect: 1,
		},
		{
			description: "process labelled like idle",
			timeline: []TimelineEntry{
				{Label: IdleLabel, StartTime: 0, EndTime: 2},
				{Label: IdleLabel, StartTime: 2, EndTime: 3, ProcessID: IdleLabel},
			},
			expect: 1,
		},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, CountContextSwitches(testCase.timeline), testCase.description)
	}
}

func TestIsIdle(t *testing.T) {
	assert.True(t, TimelineEntry{Label: IdleLabel, StartTime: 0, EndTime: 1}.IsIdle())
	assert.False(t, TimelineEntry{Label: IdleLabel, StartTime: 0, EndTime: 1, ProcessID: IdleLabel}.IsIdle())
}

func TestMeasureCpu(t *testing.T) {
	metric := MeasureCpu([]TimelineEntry{
		{Label: IdleLabel, StartTime: 0, EndTime: 2},
		{Label: "P1", StartTime: 2, EndTime: 8, ProcessID: "P1"},
	})
	assert.Equal(t, CpuMetric{TotalTime: 8, UtilizationTime: 6, IdleTime: 2}, metric)
	assert.InDelta(t, 0.75, metric.Utilization(), 1e-9)
	assert.InDelta(t, 0.25, metric.Throughput(2), 1e-9)

	var empty CpuMetric
	assert.Zero(t, empty.Utilization())
	assert.Zero(t, empty.Throughput(3))
}

func TestParseAlgorithm(t *testing.T) {
	for _, algorithm := range Algorithms {
		actual, err := ParseAlgorithm(string(algorithm))
		require.NoError(t, err)
		assert.Equal(t, algorithm, actual)
		assert.NotEqual(t, string(algorithm), algorithm.Label())
	}
	_, err := ParseAlgorithm("mlfq")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.True(t, PriorityPreemptive.RequiresPriority())
	assert.False(t, RoundRobin.RequiresPriority())
}

func TestProcessClone(t *testing.T) {
	original := Process{ID: "P1", ArrivalTime: 1, BurstTime: 2, Priority: IntPtr(3)}
	cloned := original.Clone()
	assert.Equal(t, original, cloned)
	*cloned.Priority = 9
	assert.Equal(t, 3, *original.Priority)

	assert.Nil(t, Process{ID: "P2"}.Clone().Priority)
	assert.False(t, Process{ID: "P2"}.HasPriority())
}

func TestRunResultMakespan(t *testing.T) {
	assert.Zero(t, RunResult{}.Makespan())
	assert.Equal(t, 7, RunResult{Timeline: []TimelineEntry{{Label: "P1", StartTime: 0, EndTime: 7, ProcessID: "P1"}}}.Makespan())
}
