package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"schedsim/internal/api"
	"schedsim/internal/proc"
	"schedsim/internal/report"
	"schedsim/internal/sched"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the YAML config")
	serve := flag.Bool("serve", false, "serve the scheduling API instead of sampling")
	table := flag.Bool("table", false, "render schedule tables to stderr")
	csvDir := flag.String("csv", "", "directory for rr.csv / srtf.csv timeline exports")
	flag.Parse()

	cfg := sched.Load(*configPath)

	if *serve {
		app := fiber.New()
		api.NewHandler(cfg).Register(app)
		log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: schedsim [flags] <num_processes> [quantum]")
		os.Exit(1)
	}
	numProcs, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid number of processes")
		os.Exit(1)
	}

	quantum := cfg.Quantum
	if len(args) >= 2 {
		// A quantum that does not parse as a positive integer silently
		// falls back to the configured default.
		if q, err := strconv.Atoi(args[1]); err == nil && q > 0 {
			quantum = q
		}
	}

	tasks, err := proc.NewSampler(cfg).Sample(numProcs)
	if err != nil {
		log.Fatalln(err)
	}

	rr := sched.SimulateRoundRobin(tasks, quantum)
	srtf := sched.SimulateSRTF(tasks)

	if *table {
		report.WriteScheduleTable(os.Stderr, "Round Robin", rr)
		report.WriteScheduleTable(os.Stderr, "SRTF", srtf)
	}
	if *csvDir != "" {
		if err := exportTimelines(*csvDir, rr, srtf); err != nil {
			log.Fatalln(err)
		}
	}

	if err := json.NewEncoder(os.Stdout).Encode(report.Build(tasks, rr, srtf)); err != nil {
		log.Fatalln(err)
	}
}

func exportTimelines(dir string, rr, srtf sched.Result) error {
	for name, res := range map[string]sched.Result{"rr.csv": rr, "srtf.csv": srtf} {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		if err := report.WriteTimelineCSV(f, res.Timeline); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
