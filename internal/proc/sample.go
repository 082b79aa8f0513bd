// internal/proc/sample.go

// Package proc observes a procfs tree and turns live processes into
// schedulable tasks. It is the input side of the simulator: everything it
// produces satisfies the scheduler's contract of unique pids, positive
// bursts and (arrival, pid) ordering.
package proc

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"schedsim/internal/sched"
)

// Stat holds the fields of /proc/<pid>/stat the sampler cares about.
type Stat struct {
	Comm  string
	State string
	Utime int // user-mode jiffies, stat field 14
	Stime int // kernel-mode jiffies, stat field 15
}

// Sampler collects runnable tasks by snapshotting a procfs tree in rounds.
type Sampler struct {
	Root     string        // procfs mount, normally /proc
	Interval time.Duration // pause between the two snapshots of a round
}

// NewSampler builds a sampler over the real /proc using the configured
// interval.
func NewSampler(cfg sched.Config) *Sampler {
	return &Sampler{
		Root:     "/proc",
		Interval: time.Duration(cfg.SampleIntervalMS) * time.Millisecond,
	}
}

// ParseStat extracts the comm, state and CPU counters from the raw contents
// of a stat file. The comm field is enclosed in parentheses and may itself
// contain spaces and parentheses, so it is bracketed by the first '(' and
// the last ')' rather than split on whitespace.
func ParseStat(data []byte) (Stat, error) {
	s := string(data)
	open := strings.IndexByte(s, '(')
	end := strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return Stat{}, fmt.Errorf("proc: malformed stat line %q", s)
	}
	comm := s[open+1 : end]

	// After the comm field the remaining columns are plain space-separated;
	// state is stat field 3, utime and stime are fields 14 and 15.
	rest := strings.Fields(s[end+1:])
	if len(rest) < 13 {
		return Stat{}, fmt.Errorf("proc: truncated stat line, %d fields after comm", len(rest))
	}
	utime, err := strconv.Atoi(rest[11])
	if err != nil {
		return Stat{}, fmt.Errorf("proc: bad utime: %w", err)
	}
	stime, err := strconv.Atoi(rest[12])
	if err != nil {
		return Stat{}, fmt.Errorf("proc: bad stime: %w", err)
	}

	return Stat{Comm: comm, State: rest[0], Utime: utime, Stime: stime}, nil
}

// Sample observes the procfs tree round by round until n valid tasks have
// been collected. A valid task accumulated CPU time between the two
// snapshots of a round, is not an idle kernel thread, and has not been
// collected before. Arrival is the round index at which the process was
// first seen. The returned list is sorted by (arrival, pid).
//
// With fewer than n eligible processes on the system this keeps sampling
// until enough of them accumulate CPU time.
func (s *Sampler) Sample(n int) ([]*sched.Task, error) {
	tasks := make([]*sched.Task, 0, n)
	firstSeen := make(map[int]int)
	collected := make(map[int]bool)

	for round := 0; len(tasks) < n; round++ {
		pids, err := s.listPIDs()
		if err != nil {
			return nil, err
		}

		before := make(map[int]Stat, len(pids))
		for _, pid := range pids {
			st, err := s.readStat(pid)
			if err != nil {
				// Process exited between listing and reading.
				continue
			}
			before[pid] = st
			if _, seen := firstSeen[pid]; !seen {
				firstSeen[pid] = round
			}
		}

		// Let CPU time accumulate, then re-read and compare.
		time.Sleep(s.Interval)

		for _, pid := range pids {
			if len(tasks) >= n {
				break
			}
			first, ok := before[pid]
			if !ok || collected[pid] {
				continue
			}
			second, err := s.readStat(pid)
			if err != nil {
				continue
			}
			if kernelHelper(first.Comm) || second.State == "I" {
				continue
			}
			delta := (second.Utime + second.Stime) - (first.Utime + first.Stime)
			if delta <= 0 {
				continue
			}

			collected[pid] = true
			t := sched.NewTask(pid, first.Comm, firstSeen[pid], delta)
			t.Utime = second.Utime
			t.Stime = second.Stime
			t.CPUTotal = second.Utime + second.Stime
			t.SampleCount = 2
			t.State = second.State
			tasks = append(tasks, t)
		}
	}

	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].Arrival != tasks[j].Arrival {
			return tasks[i].Arrival < tasks[j].Arrival
		}
		return tasks[i].PID < tasks[j].PID
	})
	return tasks, nil
}

// kernelHelper reports whether comm names a kernel thread that never makes
// a meaningful scheduling subject.
func kernelHelper(comm string) bool {
	return strings.HasPrefix(comm, "kworker") ||
		strings.HasPrefix(comm, "rcu") ||
		strings.HasPrefix(comm, "kthreadd")
}

func (s *Sampler) listPIDs() ([]int, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, fmt.Errorf("proc: reading %s: %w", s.Root, err)
	}
	pids := make([]int, 0, len(entries))
	for _, e := range entries {
		pid, err := strconv.Atoi(e.Name())
		if err != nil {
			continue
		}
		pids = append(pids, pid)
	}
	return pids, nil
}

func (s *Sampler) readStat(pid int) (Stat, error) {
	data, err := os.ReadFile(filepath.Join(s.Root, strconv.Itoa(pid), "stat"))
	if err != nil {
		return Stat{}, err
	}
	return ParseStat(data)
}
