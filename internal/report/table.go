package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"schedsim/internal/sched"
)

// WriteScheduleTable renders one simulator's per-task results as a table
// with average footers. This is the human view; the JSON report stays the
// machine contract.
func WriteScheduleTable(w io.Writer, name string, res sched.Result) {
	_, _ = fmt.Fprintf(w, "%s schedule\n", name)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Name", "Arrival", "Burst", "Start", "Finish", "Wait", "Turnaround", "Response", "Preempts"})
	for _, t := range res.Tasks {
		table.Append([]string{
			strconv.Itoa(t.PID),
			t.Name,
			strconv.Itoa(t.Arrival),
			strconv.Itoa(t.Burst),
			optTick(t.StartTime),
			optTick(t.FinishTime),
			strconv.Itoa(t.Waiting()),
			strconv.Itoa(t.Turnaround()),
			strconv.Itoa(t.Response()),
			strconv.Itoa(t.Preemptions),
		})
	}
	m := res.Metrics
	table.SetFooter([]string{"", "", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", m.AvgWaiting),
		fmt.Sprintf("Average\n%.2f", m.AvgTurnaround),
		fmt.Sprintf("Average\n%.2f", m.AvgResponse),
		fmt.Sprintf("Switches\n%d", m.ContextSwitches)})
	table.Render()
	_, _ = fmt.Fprintf(w, "total time: %d  throughput: %.2f/t\n\n", m.TotalTime, m.Throughput)
}

func optTick(p *int) string {
	if p == nil {
		return "-"
	}
	return strconv.Itoa(*p)
}
