// Command doptions-demo parses a build tool style command line and prints
// the resulting configuration. It shows global options, commands and the
// extension converters of package ext.
//
//	doptions-demo [-v] [--log-level L] [--log-format text|json] [command [options]]
//
// Commands are build, test and deploy. The environment variable
// DOPTIONS_POLICY names a YAML or TOML file with the name policy to use.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
	err := run(os.Stdout, os.Stderr, os.Args, os.Getenv("DOPTIONS_POLICY"))
	if err == nil {
		return
	}
	red := color.New(color.FgRed, color.Bold)
	if exitErr, ok := err.(*ExitError); ok {
		red.Fprint(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, exitErr.Message)
		os.Exit(exitErr.Code)
	}
	red.Fprint(os.Stderr, "error: ")
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// newLogger returns a logger writing to w whose level can be changed after
// the command line is parsed.
func newLogger(format string, level *slog.LevelVar, w io.Writer) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
}
