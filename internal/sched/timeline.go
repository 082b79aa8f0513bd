package sched

// Segment records one contiguous CPU allocation: the task identified by PID
// ran over the half-open interval [Start, End).
type Segment struct {
	PID   int
	Start int
	End   int
}

// Timeline is the complete dispatch history of one simulation run, appended
// in time order. Segments are contiguous: each one starts where the previous
// one ended.
type Timeline []Segment

// TotalTime returns the end of the last segment, 0 for an empty timeline.
func (tl Timeline) TotalTime() int {
	if len(tl) == 0 {
		return 0
	}
	return tl[len(tl)-1].End
}
