package sched

import "github.com/emirpasic/gods/queues/linkedlistqueue"

// SimulateRoundRobin runs the round-robin discipline over a private copy of
// tasks, so the caller's list is left untouched. quantum is the maximum
// slice granted per dispatch; a non-positive value falls back to
// DefaultQuantum.
//
// Every task is considered ready at tick 0 regardless of its arrival value.
// Arrival only fixes the initial queue order (with PID as tie-break) and
// feeds the waiting/turnaround/response arithmetic afterwards.
func SimulateRoundRobin(tasks []*Task, quantum int) Result {
	if quantum <= 0 {
		quantum = DefaultQuantum
	}
	ready := cloneAll(tasks)

	queue := linkedlistqueue.New()
	for _, t := range ready {
		queue.Enqueue(t)
	}

	var timeline Timeline
	clock := 0
	switches := 0

	for !queue.Empty() {
		v, _ := queue.Dequeue()
		t := v.(*Task)

		if !t.Started() {
			first := clock
			t.StartTime = &first
		}

		run := quantum
		if t.Remaining < run {
			run = t.Remaining
		}
		start := clock
		clock += run
		timeline = append(timeline, Segment{PID: t.PID, Start: start, End: clock})
		t.Remaining -= run

		if t.Remaining <= 0 {
			finish := clock
			t.FinishTime = &finish
		} else {
			// Quantum expired with work left: back to the tail.
			t.Preemptions++
			switches++
			queue.Enqueue(t)
		}
	}

	return Result{
		Timeline: timeline,
		Tasks:    ready,
		Metrics:  ComputeMetrics(ready, timeline, switches),
	}
}
