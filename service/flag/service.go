package flag

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/thirukguru/hermetic-selfcheck/model"
	"github.com/thirukguru/hermetic-selfcheck/service/selfcheck"
)

var outputFormats = []string{"text", "json", "table"}

type flagValues struct {
	version *bool
	output  *string
	binary  *string
}

// NewService creates a new flag service for the named command.
func NewService(name string) Service {
	return &service{name: name}
}

func (s *service) flagSet() (*pflag.FlagSet, flagValues) {
	fs := pflag.NewFlagSet(s.name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	values := flagValues{
		version: fs.BoolP("version", "v", false, "Show version information"),
		output:  fs.StringP("output", "o", "text", "Output format (text, json, or table)"),
		binary:  fs.StringP("binary", "b", selfcheck.DefaultBinaryPath, "Binary path shown in the inspection commands"),
	}

	return fs, values
}

// GetParsedFlags parses args (without the program name) and returns the
// command-line flags. A help request is reported as pflag.ErrHelp.
func (s *service) GetParsedFlags(args []string) (model.Flags, error) {
	fs, values := s.flagSet()

	if err := fs.Parse(args); err != nil {
		return model.Flags{}, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return model.Flags{}, fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
	}

	format := strings.ToLower(strings.TrimSpace(*values.output))
	if !isOutputFormat(format) {
		return model.Flags{}, fmt.Errorf("unsupported output format %q (expected %s)", *values.output, strings.Join(outputFormats, ", "))
	}

	flags := model.Flags{
		Version:    *values.version,
		Output:     format,
		BinaryPath: strings.TrimSpace(*values.binary),
	}

	return flags, nil
}

// Usage returns the usage text for the command.
func (s *service) Usage() string {
	fs, _ := s.flagSet()
	return fmt.Sprintf("Usage: %s [flags]\n\nFlags:\n%s", s.name, fs.FlagUsages())
}

func isOutputFormat(format string) bool {
	for _, f := range outputFormats {
		if f == format {
			return true
		}
	}
	return false
}
