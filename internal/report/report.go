// Package report renders simulation results for external consumers.
//
// The JSON field names are a compatibility contract with the tooling that
// reads the combined report; they must be preserved exactly, including the
// Spanish names inherited from that contract.
package report

import "schedsim/internal/sched"

// Segment is one timeline entry on the wire.
type Segment struct {
	PID   int `json:"pid"`
	Start int `json:"inicio"`
	End   int `json:"fin"`
}

// InputProcess echoes one sampled task exactly as it entered the simulators.
type InputProcess struct {
	PID      int    `json:"pid"`
	Name     string `json:"nombre"`
	Arrival  int    `json:"t_llegada"`
	Utime    int    `json:"utime"`
	Stime    int    `json:"stime"`
	CPUTotal int    `json:"cpu_total"`
	Burst    int    `json:"burst_obs"`
	Samples  int    `json:"muestras"`
	State    string `json:"estado"`
}

// FinishedProcess carries one task's final state and derived times after a
// run. Start and Finish stay null if the task never ran, which cannot
// happen for a completed simulation but is representable on purpose.
type FinishedProcess struct {
	PID         int    `json:"pid"`
	Name        string `json:"nombre"`
	Arrival     int    `json:"t_llegada"`
	Burst       int    `json:"burst"`
	Start       *int   `json:"t_inicio"`
	Finish      *int   `json:"t_fin"`
	Turnaround  int    `json:"turnaround"`
	Waiting     int    `json:"waiting_time"`
	Response    int    `json:"response_time"`
	Preemptions int    `json:"n_contextos"`
}

// Metrics is the aggregate bundle for one run.
type Metrics struct {
	AvgWaiting      float64 `json:"espera_promedio"`
	AvgTurnaround   float64 `json:"turnaround_promedio"`
	TotalTime       int     `json:"finalizacion_total"`
	Throughput      float64 `json:"throughput"`
	AvgResponse     float64 `json:"respuesta_promedio"`
	ContextSwitches int     `json:"context_switches"`
	IdleTime        int     `json:"cpu_idle_time"`
}

// Run groups everything one simulator produced.
type Run struct {
	Timeline  []Segment         `json:"timeline"`
	Processes []FinishedProcess `json:"procesos_salida"`
	Metrics   Metrics           `json:"metricas"`
}

// Report is the combined output: the input echo plus both simulators'
// results under their own keys.
type Report struct {
	Input []InputProcess `json:"procesos_entrada"`
	RR    Run            `json:"rr"`
	SRTF  Run            `json:"srtf"`
}

// Build assembles the combined report from the sampled input and both
// simulation results.
func Build(input []*sched.Task, rr, srtf sched.Result) Report {
	echo := make([]InputProcess, 0, len(input))
	for _, t := range input {
		echo = append(echo, InputProcess{
			PID:      t.PID,
			Name:     t.Name,
			Arrival:  t.Arrival,
			Utime:    t.Utime,
			Stime:    t.Stime,
			CPUTotal: t.CPUTotal,
			Burst:    t.Burst,
			Samples:  t.SampleCount,
			State:    t.State,
		})
	}
	return Report{
		Input: echo,
		RR:    NewRun(rr),
		SRTF:  NewRun(srtf),
	}
}

// NewRun converts one simulation result into its wire form.
func NewRun(res sched.Result) Run {
	timeline := make([]Segment, 0, len(res.Timeline))
	for _, seg := range res.Timeline {
		timeline = append(timeline, Segment{PID: seg.PID, Start: seg.Start, End: seg.End})
	}

	processes := make([]FinishedProcess, 0, len(res.Tasks))
	for _, t := range res.Tasks {
		processes = append(processes, FinishedProcess{
			PID:         t.PID,
			Name:        t.Name,
			Arrival:     t.Arrival,
			Burst:       t.Burst,
			Start:       t.StartTime,
			Finish:      t.FinishTime,
			Turnaround:  t.Turnaround(),
			Waiting:     t.Waiting(),
			Response:    t.Response(),
			Preemptions: t.Preemptions,
		})
	}

	m := res.Metrics
	return Run{
		Timeline:  timeline,
		Processes: processes,
		Metrics: Metrics{
			AvgWaiting:      m.AvgWaiting,
			AvgTurnaround:   m.AvgTurnaround,
			TotalTime:       m.TotalTime,
			Throughput:      m.Throughput,
			AvgResponse:     m.AvgResponse,
			ContextSwitches: m.ContextSwitches,
			IdleTime:        m.IdleTime,
		},
	}
}
