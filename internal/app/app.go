// Package app runs the whole pipeline: read the events file, build the
// store, lay out the months and write the rendered page.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"ecal/internal/config"
	"ecal/internal/event"
	"ecal/internal/grid"
	"ecal/internal/ics"
	"ecal/internal/log"
	"ecal/internal/render"
)

// Run renders one page for cfg onto stdout. now anchors the default
// range, the today-highlight and the relative-day labels; tests pin it.
func Run(cfg config.Runtime, now time.Time, stdout io.Writer) error {
	lines, err := readLines(cfg.EventsFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("read events file: %w", err)
		}
		log.Info("events file not found, continuing without events", "path", cfg.EventsFile)
	}

	startYear, endYear := cfg.YearSpan()
	store, issues := event.Build(lines, startYear, endYear)
	for _, issue := range issues {
		log.Warn("skipping event line", "line", issue.Line, "text", issue.Text, "err", issue.Err)
	}

	if cfg.Format == config.FormatICS {
		events := store.Between(cfg.RangeStart(), cfg.RangeEnd())
		name := fmt.Sprintf("%s %d", cfg.StartMonth, cfg.StartYear)
		_, err := io.WriteString(stdout, ics.Export(events, name, now))
		return err
	}

	opts := render.Options{
		WeekStart:       cfg.WeekStart,
		ShowWeekNumbers: cfg.ShowWeekNumbers,
		Columns:         cfg.Columns,
		Color:           cfg.Color.Enabled(outputFd(stdout)),
		Today:           now,
	}

	var page strings.Builder
	if cfg.Mode != config.ModeEvents {
		grids := make([]grid.Grid, cfg.Months)
		for i := range grids {
			year, month := cfg.MonthAt(i)
			grids[i] = grid.Build(year, month, cfg.WeekStart)
		}
		page.WriteString(render.Calendar(grids, store, opts))
	}
	if cfg.Mode != config.ModeCalendar {
		listing := render.Events(store, cfg.RangeStart(), cfg.RangeEnd(), opts)
		if listing != "" {
			if page.Len() > 0 {
				page.WriteString("\n")
			}
			page.WriteString(listing)
		}
	}

	_, err = io.WriteString(stdout, page.String())
	return err
}

// outputFd exposes stdout's descriptor for terminal detection; writers
// that are not files (test buffers, pipes through io.Writer wrappers)
// count as non-terminals.
func outputFd(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		return int(f.Fd())
	}
	return -1
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.Split(text, "\n"), nil
}
