package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/mahmoudKheyrati/cpu-scheduler/internal/core"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/responses"
)

// WriteMetrics prints one row per process followed by an averages footer.
func WriteMetrics(w io.Writer, processes []core.Process, response responses.ScheduleResponse) {
	byID := make(map[string]core.Process, len(processes))
	for _, p := range processes {
		byID[p.ID] = p
	}

	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		p := byID[d.ProcessId]
		rows = append(rows, []string{
			d.ProcessId,
			strconv.Itoa(p.ArrivalTime),
			strconv.Itoa(p.BurstTime),
			p.Priority.String(),
			strconv.Itoa(d.WaitingTime),
			strconv.Itoa(d.TurnAroundTime),
			strconv.Itoa(d.CompletionTime),
			strconv.Itoa(d.ReadyTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Priority", "Waiting", "Turnaround", "Completion", "Ready"})
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.SetFooter([]string{"Average", "", "", "",
		fmt.Sprintf("%.2f", response.AverageWaitingTime),
		fmt.Sprintf("%.2f", response.AverageTurnAroundTime),
		"",
		fmt.Sprintf("%.2f", response.AverageReadyTime),
	})
	table.Render()
}

// WriteSummary prints whole-run cpu figures.
func WriteSummary(w io.Writer, response responses.ScheduleResponse) {
	fmt.Fprintf(w, "%s %d  %s %d  %s %.1f%%  %s %.3f/unit\n",
		Bold("total:"), response.TotalTime,
		Bold("idle:"), response.IdleTime,
		Bold("utilization:"), response.CpuUtilization*100,
		Bold("throughput:"), response.CpuThroughput,
	)
}

// WriteComparison prints one summary row per algorithm.
func WriteComparison(w io.Writer, order []string, compare responses.CompareResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Waiting", "Avg Turnaround", "Avg Ready", "Total", "Utilization"})
	// error reasons stay on one row
	table.SetAutoWrapText(false)
	for _, name := range order {
		if reason, failed := compare.Errors[name]; failed {
			table.Append([]string{name, Red(reason), "", "", "", ""})
			continue
		}
		r, ok := compare.Results[name]
		if !ok {
			continue
		}
		table.Append([]string{
			name,
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.AverageReadyTime),
			strconv.Itoa(r.TotalTime),
			fmt.Sprintf("%.1f%%", r.CpuUtilization*100),
		})
	}
	table.Render()
}
