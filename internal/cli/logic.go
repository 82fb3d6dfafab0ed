package cli

import (
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/enratl/mdu/internal/logging"
	"github.com/enratl/mdu/internal/model"
	"github.com/enratl/mdu/internal/scanner"
	"github.com/enratl/mdu/internal/ui"
)

// progressInterval is how often the progress view receives a fresh snapshot.
const progressInterval = 100 * time.Millisecond

func run(opts Options) error {
	var sc scanner.Scanner
	if opts.Fastwalk {
		sc = scanner.NewWalker()
	} else {
		sc = scanner.NewPool(opts.Jobs)
	}

	enableProgress := !opts.NoProgress &&
		strings.ToLower(opts.Output) != "json" &&
		isatty.IsTerminal(os.Stderr.Fd())

	var (
		totals  []model.Total
		errored bool
	)

	if enableProgress {
		totals, errored = scanWithProgress(sc, opts.Paths)
	} else {
		totals, errored = sc.Scan(opts.Paths)
	}

	if opts.Sort {
		model.SortBySize(totals)
	}

	var err error

	switch strings.ToLower(opts.Output) {
	case "json":
		err = PrintJSON(totals, os.Stdout)
	default:
		err = PrintPlain(totals, os.Stdout, opts.Human)
	}
	if err != nil {
		return err
	}

	if errored {
		return ErrPartial
	}

	return nil
}

// scanWithProgress runs the scan in the background while an inline progress
// view renders counter snapshots on stderr.
func scanWithProgress(sc scanner.Scanner, paths []string) ([]model.Total, bool) {
	prog := tea.NewProgram(ui.NewProgress(), tea.WithOutput(os.Stderr))

	type result struct {
		totals  []model.Total
		errored bool
	}

	resCh := make(chan result, 1)

	go func() {
		totals, errored := sc.Scan(paths)
		resCh <- result{totals, errored}
		prog.Send(ui.DoneMsg{})
	}()

	stop := make(chan struct{})

	go func() {
		ticker := time.NewTicker(progressInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				prog.Send(ui.ProgressMsg(sc.Progress()))
			case <-stop:
				return
			}
		}
	}()

	if _, err := prog.Run(); err != nil {
		// The progress display is cosmetic; the scan finishes regardless.
		logging.Debug.Debugw("progress display failed", "error", err)
	}
	close(stop)

	res := <-resCh

	return res.totals, res.errored
}
