package sched

// Metrics aggregates the performance of one finished simulation run.
type Metrics struct {
	AvgWaiting      float64 // mean of finish - arrival - burst
	AvgTurnaround   float64 // mean of finish - arrival
	AvgResponse     float64 // mean of first dispatch - arrival
	TotalTime       int     // end of the last timeline segment
	Throughput      float64 // tasks completed per unit of total time
	ContextSwitches int     // switches accumulated during the run
	IdleTime        int     // always 0: every task is ready at tick 0
}

// Result bundles everything one simulation run produces: the dispatch
// history, the task list with final runtime state, and the derived metrics.
type Result struct {
	Timeline Timeline
	Tasks    []*Task
	Metrics  Metrics
}

// Turnaround is the time from arrival to completion.
func (t *Task) Turnaround() int { return timeOrZero(t.FinishTime) - t.Arrival }

// Waiting is the time spent ready but not running.
func (t *Task) Waiting() int { return t.Turnaround() - t.Burst }

// Response is the time from arrival to first dispatch.
func (t *Task) Response() int { return timeOrZero(t.StartTime) - t.Arrival }

func timeOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// ComputeMetrics derives the aggregate statistics for a finished run.
// Degenerate inputs (no tasks, zero total time) yield zero values rather
// than a division error.
func ComputeMetrics(tasks []*Task, timeline Timeline, switches int) Metrics {
	m := Metrics{
		TotalTime:       timeline.TotalTime(),
		ContextSwitches: switches,
	}

	n := len(tasks)
	if n > 0 {
		var wait, turn, resp int
		for _, t := range tasks {
			wait += t.Waiting()
			turn += t.Turnaround()
			resp += t.Response()
		}
		m.AvgWaiting = float64(wait) / float64(n)
		m.AvgTurnaround = float64(turn) / float64(n)
		m.AvgResponse = float64(resp) / float64(n)
	}
	if m.TotalTime > 0 {
		m.Throughput = float64(n) / float64(m.TotalTime)
	}
	return m
}
