package sched

// SimulateSRTF runs preemptive shortest-remaining-time-first over a private
// copy of tasks. The virtual clock advances one unit per iteration and the
// unfinished task with the least remaining work gets that unit; on a tie the
// task earlier in (arrival, pid) order keeps the CPU. Segments are one unit
// wide and adjacent segments of the same task are not coalesced.
//
// Rescanning every task each unit makes this O(total burst × n). That is
// acceptable at the small scale this targets; a heap would have to be keyed
// on (remaining, queue order) to reproduce the same tie-break.
func SimulateSRTF(tasks []*Task) Result {
	ready := cloneAll(tasks)

	var timeline Timeline
	clock := 0
	switches := 0
	var current *Task

	for pendingWork(ready) {
		next := pickShortest(ready)
		if next == nil {
			// Work remains but nothing is runnable. Correct bookkeeping
			// never gets here; burn an idle unit instead of spinning.
			clock++
			continue
		}

		if current != nil && current.PID != next.PID {
			switches++
			next.Preemptions++
		}
		if !next.Started() {
			first := clock
			next.StartTime = &first
		}

		start := clock
		clock++
		next.Remaining--
		timeline = append(timeline, Segment{PID: next.PID, Start: start, End: clock})
		current = next

		if next.Remaining == 0 {
			finish := clock
			next.FinishTime = &finish
		}
	}

	return Result{
		Timeline: timeline,
		Tasks:    ready,
		Metrics:  ComputeMetrics(ready, timeline, switches),
	}
}

func pendingWork(tasks []*Task) bool {
	for _, t := range tasks {
		if t.Remaining > 0 {
			return true
		}
	}
	return false
}

// pickShortest returns the unfinished task with the least remaining time,
// keeping the first encountered on ties.
func pickShortest(tasks []*Task) *Task {
	var best *Task
	for _, t := range tasks {
		if t.Remaining <= 0 {
			continue
		}
		if best == nil || t.Remaining < best.Remaining {
			best = t
		}
	}
	return best
}
