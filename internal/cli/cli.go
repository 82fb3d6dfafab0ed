// Package cli implements the mdu command-line interface.
package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/pflag"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Options captures the parsed command line.
type Options struct {
	Paths      []string
	Jobs       int
	Human      bool
	Output     string
	Sort       bool
	Fastwalk   bool
	NoProgress bool
	Version    bool
}

// ErrPartial reports that one or more paths could not be fully measured.
// Per-path diagnostics have already been written to stderr; the totals that
// were printed are best-effort.
var ErrPartial = errors.New("one or more paths could not be fully measured")

func help() {
	//nolint:forbidigo // Help output to console
	fmt.Println(heredoc.Doc(`
		mdu reports the disk space used by each given path, in 1024-byte
		units, traversing directories with a fixed pool of workers.

		Usage:

			mdu [flags] path [paths...]

		Sizes are allocated blocks on disk (as reported by lstat), not
		logical file sizes, so sparse files and directory entries are
		accounted the way du accounts them. Symbolic links are measured,
		not followed. Unreadable entries are reported to stderr, skipped,
		and reflected in the exit status.

		Flags:
	`))
	pflag.PrintDefaults()
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var opts Options

	allowedOutputs := []string{"plain", "json"}

	pflag.IntVarP(&opts.Jobs, "jobs", "j", 1, "Number of worker threads")
	pflag.BoolVarP(&opts.Human, "human", "H", false, "Print sizes in human-readable form (e.g., 1.2 MiB)")
	pflag.StringVarP(&opts.Output, "output", "o", "plain", "Output format: plain or json")
	pflag.BoolVar(&opts.Sort, "sort", false, "Sort output by size, largest first")
	pflag.BoolVar(&opts.Fastwalk, "fastwalk", false, "Traverse with fastwalk instead of the worker pool")
	pflag.BoolVar(&opts.NoProgress, "no-progress", false, "Disable the progress display")
	pflag.BoolVarP(&opts.Version, "version", "v", false, "Show version and exit")

	pflag.CommandLine.SortFlags = false
	pflag.Usage = help
	pflag.Parse()

	if opts.Version {
		//nolint:forbidigo // Version output to console
		fmt.Println(c.version)

		return nil
	}

	if !slices.Contains(allowedOutputs, opts.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", opts.Output, allowedOutputs)
	}

	opts.Paths = pflag.Args()
	if len(opts.Paths) == 0 {
		pflag.Usage()

		return errors.New("at least one path is required")
	}

	return run(opts)
}
