package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/amaumene/envrun/internal/domain"
	"github.com/timshannon/bolthold"
)

const timeFormat = "2006-01-02 15:04:05"

func main() {
	var (
		dbPath     = flag.String("db", "envrun.db", "Path to the run history database")
		limit      = flag.Int("limit", 20, "Maximum number of runs to show")
		failedOnly = flag.Bool("failed", false, "Show only runs with a non-zero exit code")
		showEnv    = flag.Bool("env", false, "Show the recorded (redacted) environment")
	)
	flag.Parse()

	if _, err := os.Stat(*dbPath); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: database file '%s' does not exist\n", *dbPath)
		os.Exit(1)
	}

	store, err := bolthold.Open(*dbPath, 0600, &bolthold.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var runs []*domain.Run
	if err := store.Find(&runs, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading runs from database: %v\n", err)
		os.Exit(1)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})

	shown := 0
	for _, run := range runs {
		if *failedOnly && run.ExitCode == 0 {
			continue
		}
		if shown >= *limit {
			break
		}
		printRun(run, *showEnv)
		shown++
	}

	if shown == 0 {
		fmt.Println("No recorded runs.")
	}
}

func printRun(run *domain.Run, showEnv bool) {
	status := "ok"
	if run.ExitCode != 0 {
		status = fmt.Sprintf("exit %d", run.ExitCode)
	}

	duration := ""
	if !run.FinishedAt.IsZero() {
		duration = run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond).String()
	}

	fmt.Printf("%s  %-8s  %-10s  %s %s (in %s)\n",
		run.StartedAt.Format(timeFormat),
		status,
		duration,
		run.Command,
		strings.Join(run.Args, " "),
		run.WorkDir,
	)

	if showEnv {
		names := make([]string, 0, len(run.Env))
		for name := range run.Env {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("    %s=%s\n", name, run.Env[name])
		}
	}
}
