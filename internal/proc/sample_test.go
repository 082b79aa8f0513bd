package proc

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statContent(pid int, comm, state string, utime, stime int) []byte {
	// pid (comm) state ppid pgrp session tty_nr tpgid flags minflt
	// cminflt majflt cmajflt utime stime ...
	return []byte(fmt.Sprintf("%d (%s) %s 1 1 1 0 -1 4194560 120 0 0 0 %d %d 12 4 20 0 1 0 5533",
		pid, comm, state, utime, stime))
}

func TestParseStat(t *testing.T) {
	st, err := ParseStat(statContent(42, "myproc", "S", 300, 200))
	require.NoError(t, err)
	assert.Equal(t, Stat{Comm: "myproc", State: "S", Utime: 300, Stime: 200}, st)
}

func TestParseStatCommWithSpacesAndParens(t *testing.T) {
	// comm may contain anything, including spaces and closing parens;
	// only the outermost parentheses delimit it.
	st, err := ParseStat(statContent(42, "Web Content (x)", "R", 7, 3))
	require.NoError(t, err)
	assert.Equal(t, "Web Content (x)", st.Comm)
	assert.Equal(t, "R", st.State)
	assert.Equal(t, 7, st.Utime)
	assert.Equal(t, 3, st.Stime)
}

func TestParseStatMalformed(t *testing.T) {
	_, err := ParseStat([]byte("no parens here"))
	assert.Error(t, err)

	_, err = ParseStat([]byte("42 (short) R 1 2"))
	assert.Error(t, err)

	_, err = ParseStat(nil)
	assert.Error(t, err)
}

func TestKernelHelperFilter(t *testing.T) {
	assert.True(t, kernelHelper("kworker/0:1-events"))
	assert.True(t, kernelHelper("rcu_sched"))
	assert.True(t, kernelHelper("kthreadd"))
	assert.False(t, kernelHelper("nginx"))
	assert.False(t, kernelHelper("worker"))
}

func writeStat(root string, pid int, comm, state string, utime, stime int) error {
	dir := filepath.Join(root, strconv.Itoa(pid))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "stat"), statContent(pid, comm, state, utime, stime), 0o644)
}

func TestSamplerCollectsBusyProcesses(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, writeStat(root, 101, "worker", "R", 100, 50))
	require.NoError(t, writeStat(root, 102, "kworker/0:1", "S", 100, 50))
	require.NoError(t, writeStat(root, 103, "idler", "S", 100, 50))
	// Non-numeric entries like /proc/self are skipped.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "self"), 0o755))

	s := &Sampler{Root: root, Interval: 60 * time.Millisecond}

	// Keep bumping the counters of pid 101 (eligible) and pid 102 (kernel
	// helper, must stay filtered) while the sampler waits between
	// snapshots, so some round observes a positive delta.
	done := make(chan struct{})
	defer close(done)
	go func() {
		for tick := 1; ; tick++ {
			select {
			case <-done:
				return
			case <-time.After(20 * time.Millisecond):
				_ = writeStat(root, 101, "worker", "R", 100+10*tick, 50+5*tick)
				_ = writeStat(root, 102, "kworker/0:1", "S", 100+10*tick, 50+5*tick)
			}
		}
	}()

	tasks, err := s.Sample(1)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	task := tasks[0]
	assert.Equal(t, 101, task.PID)
	assert.Equal(t, "worker", task.Name)
	assert.Equal(t, 0, task.Arrival)
	assert.Positive(t, task.Burst)
	assert.Equal(t, task.Burst, task.Remaining)
	assert.Equal(t, task.Utime+task.Stime, task.CPUTotal)
	assert.Equal(t, 2, task.SampleCount)
	assert.Equal(t, "R", task.State)
}

func TestSamplerZeroTasks(t *testing.T) {
	s := &Sampler{Root: t.TempDir(), Interval: time.Millisecond}
	tasks, err := s.Sample(0)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSamplerMissingRoot(t *testing.T) {
	s := &Sampler{Root: filepath.Join(t.TempDir(), "absent"), Interval: time.Millisecond}
	_, err := s.Sample(1)
	assert.Error(t, err)
}
