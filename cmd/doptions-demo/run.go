package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/netip"
	"slices"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/DavisLCVB/doptions"
	"github.com/DavisLCVB/doptions/ext"
)

// settings receives every value the command line can set. Fields hold their
// defaults before parsing.
type settings struct {
	verbose   bool
	noColor   bool
	logLevel  slog.Level
	logFormat string

	build struct {
		run     bool
		jobs    uint8
		target  string
		release bool
		version *semver.Version
	}
	test struct {
		run     bool
		filter  string
		timeout time.Duration
		shard   ext.Range
		seed    int64
		tags    ext.StringList
	}
	deploy struct {
		run      bool
		env      string
		db       ext.DatabaseConfig
		bind     netip.Addr
		id       uuid.UUID
		replicas uint8
		requires *semver.Constraints
		labels   ext.KeyValues
	}
}

func defaults() *settings {
	s := &settings{logLevel: slog.LevelInfo, logFormat: "text"}
	s.build.jobs = 1
	s.build.target = "all"
	s.test.timeout = 30 * time.Second
	s.deploy.env = "staging"
	s.deploy.replicas = 1
	s.deploy.bind = netip.IPv4Unspecified()
	return s
}

// define adds the options and commands of the demo to app.
func define(app *doptions.Application, s *settings) error {
	type def struct {
		spec   string
		target any
	}
	add := func(adder interface {
		AddOption(string, any) (*doptions.Option, error)
	}, defs []def) error {
		for _, d := range defs {
			if _, err := adder.AddOption(d.spec, d.target); err != nil {
				return fmt.Errorf("defining %s: %w", d.spec, err)
			}
		}
		return nil
	}

	if err := add(app, []def{
		{"-v,--verbose", &s.verbose},
		{"--no-color", &s.noColor},
		{"--log-level", &s.logLevel},
		{"--log-format", &s.logFormat},
	}); err != nil {
		return err
	}

	build, err := app.AddCommand("build", &s.build.run)
	if err != nil {
		return err
	}
	if err := add(build, []def{
		{"-j,--jobs", &s.build.jobs},
		{"-t,--target", &s.build.target},
		{"-r,--release", &s.build.release},
		{"--version", &s.build.version},
	}); err != nil {
		return err
	}

	test, err := app.AddCommand("test", &s.test.run)
	if err != nil {
		return err
	}
	if err := add(test, []def{
		{"-f,--filter", &s.test.filter},
		{"--timeout", &s.test.timeout},
		{"--shard", &s.test.shard},
		{"--seed", &s.test.seed},
		{"--tags", &s.test.tags},
	}); err != nil {
		return err
	}

	deploy, err := app.AddCommand("deploy", &s.deploy.run)
	if err != nil {
		return err
	}
	return add(deploy, []def{
		{"-e,--env", &s.deploy.env},
		{"--db", &s.deploy.db},
		{"--bind", &s.deploy.bind},
		{"--id", &s.deploy.id},
		{"-n,--replicas", &s.deploy.replicas},
		{"--requires", &s.deploy.requires},
		{"--labels", &s.deploy.labels},
	})
}

// run parses argv and prints the configuration to outW. Log records go to
// errW. policyPath, if not empty, names a policy file.
func run(outW, errW io.Writer, argv []string, policyPath string) error {
	config := doptions.NewConfig()
	if policyPath != "" {
		p, err := doptions.LoadPolicyFile(policyPath)
		if err != nil {
			return &ExitError{Code: 2, Message: err.Error()}
		}
		config.Policy = p
	}
	if err := ext.Register(config.Registry); err != nil {
		return err
	}

	s := defaults()
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger, err := newLogger("text", level, errW)
	if err != nil {
		return err
	}
	config.Logger = logger

	app, err := doptions.CustomApp(config)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	if err := define(app, s); err != nil {
		return err
	}
	if err := app.ParseArgv(argv); err != nil {
		if errors.Is(err, doptions.ErrParse) {
			return &ExitError{Code: 2, Message: err.Error()}
		}
		return err
	}

	if s.logFormat != "text" {
		if logger, err = newLogger(s.logFormat, level, errW); err != nil {
			return err
		}
	}
	level.Set(s.logLevel)
	if s.verbose && s.logLevel > slog.LevelDebug {
		level.Set(slog.LevelDebug)
	}
	logger.Debug("command line parsed", slog.Int("args", len(argv)-1))

	return report(outW, s)
}

// report prints the configuration selected by the command line.
func report(w io.Writer, s *settings) error {
	heading := color.New(color.FgCyan, color.Bold)
	if s.noColor {
		heading.DisableColor()
	}

	switch {
	case s.build.run:
		heading.Fprintln(w, "build")
		fmt.Fprintf(w, "  target:  %s\n", s.build.target)
		fmt.Fprintf(w, "  jobs:    %d\n", s.build.jobs)
		fmt.Fprintf(w, "  release: %t\n", s.build.release)
		if s.build.version != nil {
			fmt.Fprintf(w, "  version: %s\n", s.build.version)
		}
	case s.test.run:
		heading.Fprintln(w, "test")
		fmt.Fprintf(w, "  filter:  %q\n", s.test.filter)
		fmt.Fprintf(w, "  timeout: %s\n", s.test.timeout)
		if s.test.shard != (ext.Range{}) {
			fmt.Fprintf(w, "  shard:   %d..%d\n", s.test.shard.Min, s.test.shard.Max)
		}
		if s.test.seed != 0 {
			fmt.Fprintf(w, "  seed:    %d\n", s.test.seed)
		}
		for _, tag := range s.test.tags {
			fmt.Fprintf(w, "  tag:     %s\n", tag)
		}
	case s.deploy.run:
		heading.Fprintln(w, "deploy")
		fmt.Fprintf(w, "  env:      %s\n", s.deploy.env)
		fmt.Fprintf(w, "  replicas: %d\n", s.deploy.replicas)
		fmt.Fprintf(w, "  bind:     %s\n", s.deploy.bind)
		if s.deploy.db.Host != "" {
			db := s.deploy.db
			fmt.Fprintf(w, "  database: %s@%s:%d/%s\n", db.User, db.Host, db.Port, db.Database)
		}
		if s.deploy.id != uuid.Nil {
			fmt.Fprintf(w, "  id:       %s\n", s.deploy.id)
		}
		labelKeys := make([]string, 0, len(s.deploy.labels))
		for k := range s.deploy.labels {
			labelKeys = append(labelKeys, k)
		}
		slices.Sort(labelKeys)
		for _, k := range labelKeys {
			fmt.Fprintf(w, "  label:    %s=%s\n", k, s.deploy.labels[k])
		}
		if s.deploy.requires != nil {
			fmt.Fprintf(w, "  requires: %s\n", s.deploy.requires)
		}
	default:
		fmt.Fprintln(w, "no command given (build, test, deploy)")
	}
	if s.verbose {
		fmt.Fprintf(w, "log level: %s\n", s.logLevel)
	}
	return nil
}
