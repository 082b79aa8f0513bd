// Package api exposes the simulators over HTTP for callers that already
// have a task list and do not need the /proc sampling step.
package api

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schedsim/internal/report"
	"schedsim/internal/sched"
)

// Job is one task in a schedule request. Field names follow the report's
// input echo where they overlap.
type Job struct {
	PID     int    `json:"pid"`
	Name    string `json:"nombre"`
	Arrival int    `json:"t_llegada"`
	Burst   int    `json:"burst"`
}

// ScheduleRequest is the body accepted by every scheduling endpoint.
// Quantum only matters to round robin; absent or non-positive means the
// configured default.
type ScheduleRequest struct {
	Jobs    []Job `json:"jobs"`
	Quantum int   `json:"quantum"`
}

// Handler serves the scheduling endpoints.
type Handler struct {
	cfg sched.Config
}

func NewHandler(cfg sched.Config) *Handler {
	return &Handler{cfg: cfg}
}

// Register mounts the endpoints under /api/v1.
func (h *Handler) Register(app *fiber.App) {
	v1 := app.Group("/api").Group("/v1")
	v1.Post("/rr", h.RoundRobin)
	v1.Post("/srtf", h.SRTF)
	v1.Post("/all", h.All)
}

func (h *Handler) RoundRobin(ctx *fiber.Ctx) error {
	req, tasks, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	runID := uuid.NewString()
	started := time.Now()
	res := sched.SimulateRoundRobin(tasks, h.quantum(req))
	log.Println("run", runID, "rr scheduled", len(tasks), "jobs in", time.Since(started))
	return ctx.JSON(report.NewRun(res))
}

func (h *Handler) SRTF(ctx *fiber.Ctx) error {
	_, tasks, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	runID := uuid.NewString()
	started := time.Now()
	res := sched.SimulateSRTF(tasks)
	log.Println("run", runID, "srtf scheduled", len(tasks), "jobs in", time.Since(started))
	return ctx.JSON(report.NewRun(res))
}

// All runs both simulators over the same jobs and returns the combined
// report, job echo included.
func (h *Handler) All(ctx *fiber.Ctx) error {
	req, tasks, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	runID := uuid.NewString()
	started := time.Now()
	rr := sched.SimulateRoundRobin(tasks, h.quantum(req))
	srtf := sched.SimulateSRTF(tasks)
	log.Println("run", runID, "rr+srtf scheduled", len(tasks), "jobs in", time.Since(started))
	return ctx.JSON(report.Build(tasks, rr, srtf))
}

func (h *Handler) quantum(req *ScheduleRequest) int {
	if req.Quantum > 0 {
		return req.Quantum
	}
	return h.cfg.Quantum
}

// parseRequest decodes the body and enforces at the boundary what the
// simulators assume: every job carries a positive burst.
func parseRequest(ctx *fiber.Ctx) (*ScheduleRequest, []*sched.Task, error) {
	var req ScheduleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return nil, nil, fmt.Errorf("invalid request format")
	}
	tasks := make([]*sched.Task, 0, len(req.Jobs))
	for _, j := range req.Jobs {
		if j.Burst <= 0 {
			return nil, nil, fmt.Errorf("job %d: burst must be positive", j.PID)
		}
		tasks = append(tasks, sched.NewTask(j.PID, j.Name, j.Arrival, j.Burst))
	}
	return &req, tasks, nil
}

func badRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}
