package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pradeep-ramanna/rccl-developer/internal/config"
	"github.com/pradeep-ramanna/rccl-developer/internal/log"
	"github.com/pradeep-ramanna/rccl-developer/internal/report"
)

var (
	version   = "v0.1.0"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run loads the environment configuration and prints the run summary. Exit
// policy lives here so the loader stays testable: a validation failure prints
// one "[ERROR] ..." line to stderr and exits non-zero.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("transferbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	showVersion := fs.Bool("version", false, "print version and exit")
	showUsage := fs.Bool("usage", false, "print the environment variable reference and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s (commit: %s, built: %s)\n", version, commit, buildDate)
		return 0
	}
	if *showUsage {
		report.Usage(stdout)
		return 0
	}

	log.Configure(log.Config{Service: "transferbench"})
	logger := log.WithComponent("main")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "[ERROR] %v\n", err)
		return 1
	}

	if err := report.Summary(stdout, cfg); err != nil {
		logger.Error().Err(err).Msg("failed to write run summary")
		return 1
	}

	logger.Debug().
		Int("fill_pattern_bytes", len(cfg.FillPattern)).
		Msg("configuration ready for transfer engine")
	return 0
}
