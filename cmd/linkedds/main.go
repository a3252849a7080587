package main

import (
	"errors"
	"flag"
	"fmt"
	"github.com/gostonefire/linkedds/internal/workload"
	"github.com/rs/zerolog"
	"io"
	"os"
	"strings"
)

// ExitError - An error carrying the process exit code. An empty Message means the error has
// already been reported to the user.
type ExitError struct {
	Code    int
	Message string
}

// Error - Implements the error interface
func (E *ExitError) Error() string {
	if E.Message == "" {
		return fmt.Sprintf("exit status %d", E.Code)
	}
	return E.Message
}

// options - Parsed command line
type options struct {
	logLevel     zerolog.Level
	logFormat    string
	distribution bool
	path         string
}

func main() {
	err := run(os.Stdout, os.Stderr, os.Args[1:])
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run - Parses args, loads the workload file and runs it. Results go to outW, logging and usage
// to errW. Errors are returned, not logged, printing them is left to main.
func run(outW, errW io.Writer, args []string) (err error) {
	opts, shouldExit, err := parse(args, errW)
	if err != nil || shouldExit {
		return
	}

	logger := newLogger(errW, opts)
	logger.Debug().Str("path", opts.path).Msg("loading workload")

	w, err := workload.Load(opts.path)
	if err != nil {
		return
	}

	_, err = workload.NewRunner(outW, logger, opts.distribution).Run(w)
	if err != nil {
		return
	}

	logger.Info().Str("path", opts.path).Msg("workload done")

	return
}

// parse - Processes command line arguments.
//
// It returns:
//   - opts are the parsed options
//   - shouldExit is true if help was printed and nothing more should be done
//   - err is of type *ExitError with code 2 on usage errors
func parse(args []string, output io.Writer) (opts options, shouldExit bool, err error) {
	flagSet := flag.NewFlagSet("linkedds", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(flagSet.Output(), `
linkedds - Runs a workload against the linked data structures and prints what it did.

Usage:
  linkedds [options] WORKLOAD.hcl

Options:
`)
		flagSet.PrintDefaults()
	}

	logLevel := flagSet.String("log-level", "info", "Logging level. Options: 'trace', 'debug', 'info', 'warn', 'error'.")
	logFormat := flagSet.String("log-format", "json", "Log output format. Options: 'json' or 'console'.")
	flagSet.BoolVar(&opts.distribution, "distribution", false, "Print the number of entries per bucket.")

	if e := flagSet.Parse(args); e != nil {
		if errors.Is(e, flag.ErrHelp) {
			shouldExit = true
			return
		}
		// the flag set has printed the error and the usage already
		err = &ExitError{Code: 2}
		return
	}

	if flagSet.NArg() != 1 {
		flagSet.Usage()
		err = &ExitError{Code: 2, Message: "exactly one workload file must be given"}
		return
	}
	opts.path = flagSet.Arg(0)

	opts.logLevel, err = zerolog.ParseLevel(strings.ToLower(*logLevel))
	if err != nil {
		err = &ExitError{Code: 2, Message: fmt.Sprintf("invalid log level %q", *logLevel)}
		return
	}

	opts.logFormat = strings.ToLower(*logFormat)
	if opts.logFormat != "json" && opts.logFormat != "console" {
		err = &ExitError{Code: 2, Message: fmt.Sprintf("invalid log format %q, must be 'json' or 'console'", *logFormat)}
		return
	}

	return
}

// newLogger - Returns a zerolog logger writing to w in the format and at the level given by opts
func newLogger(w io.Writer, opts options) zerolog.Logger {
	if opts.logFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}

	return zerolog.New(w).Level(opts.logLevel).With().Timestamp().Logger()
}
