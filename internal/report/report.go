package report

import (
	"fmt"
	"io"
	"os-cpu-scheduling/internal/responses"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Render writes the title, Gantt line and schedule table of one run.
func Render(w io.Writer, response responses.ScheduleResponse) {
	outputTitle(w, response.Label)
	outputGantt(w, response)
	outputSchedule(w, response)
}

// RenderComparison writes one summary row per algorithm.
func RenderComparison(w io.Writer, results []responses.ScheduleResponse) {
	outputTitle(w, "Comparison")
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Algorithm", "Avg wait", "Avg turnaround", "Avg response", "Switches", "Utilization", "Throughput"})
	for _, result := range results {
		table.Append([]string{
			result.Label,
			fmt.Sprintf("%.2f", result.AverageWaitingTime),
			fmt.Sprintf("%.2f", result.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", result.AverageResponseTime),
			fmt.Sprint(result.ContextSwitches),
			fmt.Sprintf("%.2f%%", result.CpuUtilization*100),
			fmt.Sprintf("%.2f/t", result.CpuThroughput),
		})
	}
	table.Render()
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, response responses.ScheduleResponse) {
	timeline := response.Timeline
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range timeline {
		label := timeline[i].Label
		padding := strings.Repeat(" ", max(0, 8-len(label))/2)
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range timeline {
		_, _ = fmt.Fprint(w, fmt.Sprint(timeline[i].StartTime), "\t")
		if len(timeline)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(timeline[i].EndTime))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Response", "Exit"})
	for _, detail := range response.Details {
		priority := "N/A"
		if detail.Priority != nil {
			priority = fmt.Sprint(*detail.Priority)
		}
		table.Append([]string{
			detail.ProcessId,
			priority,
			fmt.Sprint(detail.BurstTime),
			fmt.Sprint(detail.ArrivalTime),
			fmt.Sprint(detail.WaitingTime),
			fmt.Sprint(detail.TurnAroundTime),
			fmt.Sprint(detail.ResponseTime),
			fmt.Sprint(detail.CompletionTime),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime),
		fmt.Sprintf("Throughput\n%.2f/t", response.CpuThroughput)})
	table.Render()
	_, _ = fmt.Fprintf(w, "Context switches: %d, CPU utilization: %.2f%%\n\n", response.ContextSwitches, response.CpuUtilization*100)
}
