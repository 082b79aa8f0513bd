package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedsim/internal/sched"
)

func TestWriteTimelineCSV(t *testing.T) {
	tl := sched.Timeline{
		{PID: 1, Start: 0, End: 2},
		{PID: 2, Start: 2, End: 4},
		{PID: 1, Start: 4, End: 6},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTimelineCSV(&buf, tl))

	want := "pid,inicio,fin\n1,0,2\n2,2,4\n1,4,6\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTimelineCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTimelineCSV(&buf, nil))
	assert.Equal(t, "pid,inicio,fin\n", buf.String())
}
