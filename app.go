// Package main is the entry point for the hermetic toolchain self-check.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"github.com/thirukguru/hermetic-selfcheck/model"
	"github.com/thirukguru/hermetic-selfcheck/service/flag"
	"github.com/thirukguru/hermetic-selfcheck/service/orchestrator"
	"github.com/thirukguru/hermetic-selfcheck/service/output"
	"github.com/thirukguru/hermetic-selfcheck/service/selfcheck"
)

const programName = "simple_test"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	flagService := flag.NewService(programName)
	flags, err := flagService.GetParsedFlags(args)
	if errors.Is(err, pflag.ErrHelp) {
		_, err = fmt.Fprint(stdout, flagService.Usage())
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	versionInfo := model.VersionInfo{Version: version, Commit: commit, Date: date}

	orchestratorService := orchestrator.NewService(
		programName,
		output.NewService(flags.Output, stdout),
		selfcheck.NewService(),
		versionInfo,
	)

	return orchestratorService.Orchestrate(flags)
}
