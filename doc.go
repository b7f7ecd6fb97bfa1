/*

Package doptions parses command line arguments into typed variables. A
program defines global options and commands, each option bound to a
variable, then hands the argument array to Parse. Values are converted to the
type of the variable and written directly into it.

A first example defines a global flag and a command with one option:

    package main

    import (
    	"fmt"
    	"os"

    	"github.com/DavisLCVB/doptions"
    )

    func main() {
    	app := doptions.NewApp()
    	verbose := false
    	app.AddOption("-v,--verbose", &verbose)
    	build := false
    	cmd, _ := app.AddCommand("build", &build)
    	jobs := 1
    	cmd.AddOption("-j,--jobs", &jobs)
    	if err := app.ParseArgv(os.Args); err != nil {
    		fmt.Fprintln(os.Stderr, err)
    		os.Exit(1)
    	}
    	if build {
    		// ...
    	}
    }

With the arguments

    -v build --jobs 4

verbose is true, build is true and jobs is 4.

Names

An option has a short name, a long name, or both. They are given as one
string when the option is added. On the command line, a short name is
written with one dash and a long name with two:

    "-n,--number"   short "-n", long "--number"
    "--number"      long only
    "-n"            short only
    "num"           short, since it is not longer than the short limit
    "number"        long, since it is

Names start with an ASCII letter. Following characters are letters, digits,
and, depending on the Policy, dashes, underscores and dots. By default short
names have 1 to 3 characters and long names 4 to 100. A command name follows
the rules of a long name and is written on the command line without dashes.

Within an Application, or within one Command, no two options may share a
name, and within an Application no two commands may share a name. Options
of different commands are independent.

Values

An option bound to a bool is a flag: its presence sets the variable to true
and it takes no value. Any other option takes the next token as its value,
even when that token looks like a name. Builtin conversions cover strings,
signed and unsigned integers of all sizes, and floats. Integers are decimal
and are checked against the range of the target, so 256 is rejected for a
uint8 with a *ValueOutOfRangeError.

Other types need a Converter registered in a Registry, which is passed to
CustomApp, CustomCommand or CustomOption in a Config:

    config := doptions.NewConfig()
    doptions.Register(config.Registry, func(s string) (Point, error) {
    	// ...
    })
    app, err := doptions.CustomApp(config)

Package ext provides converters for lists, sets, ranges, durations, network
addresses, versions and more.

Parsing

Application.Parse processes tokens from left to right. A token that is a
global option name is handled as described above. A token that is a command
name ends global parsing: all remaining tokens are parsed by the command,
and the command's executed flag is set. At most one command runs per call.
Any other token is an error.

Each option may appear at most once per call, counting both of its names.
Options that do not appear keep the value their variable had before the
call: there are no default values besides the variable's own.

Errors

Definition errors (bad names, duplicates, unsupported targets) are returned
by the Add and New functions and match ErrBuild with errors.Is. Parse errors
match ErrParse. Every concrete error is a pointer to one of the exported
error types, so errors.As gives access to the details:

    var oor *doptions.ValueOutOfRangeError
    if errors.As(err, &oor) {
    	fmt.Println(oor.Min, oor.Max)
    }

Parse returns at the first error. Variables written before the error are not
restored.

Configuration

A Config holds a Policy, a Registry and a *slog.Logger. It is copied when an
Application, Command or Option is created, so later changes to it have no
effect. Policies can be loaded from YAML or TOML files with LoadPolicyFile:

    short_name_max_length: 2
    long_name_max_length: 40
    allow_dashes: true
    allow_underscores: false
    allow_dots: false
    reserved_names: [help]

The logger receives Debug records for matched options and dispatched
commands. The default logger discards them.
*/
package doptions
