// huffpack compresses a batch of files with Huffman coding,
// verifies that each one decodes back to its original contents,
// and reports on the results.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/abhinav/huffpack/internal/log"
	"github.com/abhinav/huffpack/internal/paniclog"
	"github.com/benbjohnson/clock"
	"github.com/mattn/go-shellwords"
	"go.uber.org/multierr"
	"golang.org/x/term"
)

var _version = "dev"

var _main = mainCmd{
	Stdout: os.Stdout,
	Stderr: os.Stderr,
	Getenv: os.Getenv,
}

func main() {
	if err := _main.Run(os.Args[1:]); err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(_main.Stderr, err)
		os.Exit(1)
	}
}

const _name = "huffpack"

// _flagsEnv holds flags that are parsed before those on the command line.
const _flagsEnv = "HUFFPACK_FLAGS"

const _usage = `usage: %v [options] [FILE ...]

Compresses files with Huffman coding. For each FILE, writes
encoded_FILE.bin, decodes it back to verify the round trip,
and reports the symbol frequencies, codes and compression ratio.

Processes file1.txt through file20.txt in the current directory
if no files are given. Files that do not exist are skipped.

The following flags are available:

	-out DIR
		directory to write output files to.
		Uses the current directory by default.
	-mode text|bytes
		symbols to encode.
		'text' encodes Unicode characters and falls back to
		'bytes' for files that are not valid UTF-8.
		'bytes' encodes raw bytes.
		Uses 'text' by default.
	-keep-decoded
		write the decoded contents to decoded_FILE.
	-show-encoded
		print the bits of the encoded file.
	-show-decoded
		print the decoded contents.
	-cache N
		number of Huffman models to remember.
		Files with the same symbol frequencies share a model.
		Defaults to 16.
	-log FILE
		file to write logs to.
		Uses stderr by default.
	-verbose
		log more output.
	-version
		display version information.

Flags in the HUFFPACK_FLAGS environment variable are parsed
before the command line.
`

type mainCmd struct {
	Stdout io.Writer
	Stderr io.Writer

	Getenv func(string) string // == os.Getenv

	FS    fileSystem  // defaults to the OS
	Clock clock.Clock // defaults to the wall clock

	runTarget runTargetFunc
}

func (cmd *mainCmd) init() {
	if cmd.FS == nil {
		cmd.FS = osFS{}
	}
	if cmd.Clock == nil {
		cmd.Clock = clock.New()
	}
	if cmd.runTarget == nil {
		cmd.runTarget = runTarget
	}
}

func (cmd *mainCmd) Run(args []string) (err error) {
	cmd.init()

	if flags := cmd.Getenv(_flagsEnv); len(flags) > 0 {
		envArgs, err := shellwords.Parse(flags)
		if err != nil {
			return fmt.Errorf("parse %v: %w", _flagsEnv, err)
		}
		args = append(envArgs, args...)
	}

	flag := flag.NewFlagSet(_name, flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		fmt.Fprintf(flag.Output(), _usage, flag.Name())
	}
	cfg := newConfig(flag)
	version := flag.Bool("version", false, "")
	if err := flag.Parse(args); err != nil {
		return err
	}

	if *version {
		fmt.Fprintf(cmd.Stdout, "huffpack version %v\n", _version)
		return nil
	}

	if args := flag.Args(); len(args) > 0 {
		cfg.Files = args
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	stderr := cmd.Stderr
	if file := cfg.LogFile; len(file) > 0 {
		f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log %q: %w", file, err)
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		stderr = f
	}

	defer paniclog.Recover(&err, stderr)

	lvl := log.Info
	if cfg.Verbose {
		lvl = log.Debug
	}
	logger := log.New(stderr, lvl)
	if isTerminal(stderr) {
		logger = log.NewTerminal(stderr, lvl)
	}

	return cmd.runTarget(&app{
		Log:    logger,
		Stdout: cmd.Stdout,
		FS:     cmd.FS,
		Clock:  cmd.Clock,
	}, cfg)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// runTargetFunc runs the application.
// Tests replace it to inspect the parsed configuration.
type runTargetFunc func(interface{ Run(*config) error }, *config) error

func runTarget(target interface{ Run(*config) error }, cfg *config) error {
	return target.Run(cfg)
}
