package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"schedsim/internal/sched"
)

// WriteTimelineCSV writes one simulator's timeline as CSV, using the same
// column names as the JSON timeline.
func WriteTimelineCSV(w io.Writer, tl sched.Timeline) error {
	cw := csv.NewWriter(w)

	// write header
	if err := cw.Write([]string{"pid", "inicio", "fin"}); err != nil {
		return err
	}
	for _, seg := range tl {
		rec := []string{
			strconv.Itoa(seg.PID),
			strconv.Itoa(seg.Start),
			strconv.Itoa(seg.End),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
