package sched

import "sort"

// Task represents one sampled process ready for scheduling.
//
// The sampled fields are fixed once the task is constructed; the runtime
// fields belong to a single simulation run and are reset before every run.
// A task must never be handed to two simulations at once — simulators clone
// their input instead of sharing it.
type Task struct {
	PID     int    // process identifier, unique within one input set
	Name    string // display label (comm from /proc)
	Arrival int    // sampling round when the process was first observed
	Burst   int    // observed CPU delta, always > 0 for valid input

	// Observational fields carried through for reporting only.
	Utime       int
	Stime       int
	CPUTotal    int
	SampleCount int
	State       string

	// Runtime state, valid for one simulation run.
	Remaining   int  // CPU time left, counts down from Burst to 0
	StartTime   *int // tick of first dispatch, nil until then
	FinishTime  *int // tick when Remaining hit 0, nil until then
	Preemptions int  // times this task was interrupted before completing
}

// NewTask creates a task from sampled values with runtime state ready for a run.
func NewTask(pid int, name string, arrival, burst int) *Task {
	t := &Task{
		PID:     pid,
		Name:    name,
		Arrival: arrival,
		Burst:   burst,
	}
	t.Reset()
	return t
}

// Reset clears the runtime state so the task can enter a fresh run.
func (t *Task) Reset() {
	t.Remaining = t.Burst
	t.StartTime = nil
	t.FinishTime = nil
	t.Preemptions = 0
}

// Clone returns an independent copy of the task with reset runtime state.
func (t *Task) Clone() *Task {
	c := *t
	c.Reset()
	return &c
}

// Started reports whether the task has been dispatched at least once.
func (t *Task) Started() bool { return t.StartTime != nil }

// Finished reports whether the task has run to completion.
func (t *Task) Finished() bool { return t.FinishTime != nil }

// cloneAll deep-copies a task list and orders it by (arrival, pid).
// Every simulation starts from such a copy, so the caller's list is never
// mutated and RR/SRTF runs over the same input cannot see each other.
// The ordering is also the tie-break when arrivals coincide.
func cloneAll(tasks []*Task) []*Task {
	out := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Arrival != out[j].Arrival {
			return out[i].Arrival < out[j].Arrival
		}
		return out[i].PID < out[j].PID
	})
	return out
}
