package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvvec/internal/script"
)

func newReplayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <script.yaml>...",
		Short: "Replay op scripts against a fresh vector and print the trace",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			for _, path := range args {
				if err := a.replay(ctx, cmd.OutOrStdout(), path); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// replay loads, runs and renders one script. The trace is rendered even
// when replay stops early so the failing step is visible.
func (a *app) replay(ctx context.Context, out io.Writer, path string) error {
	s, err := script.Load(path)
	if err != nil {
		return err
	}
	a.logger.Debug("loaded script", "path", path, "name", s.Name, "ops", len(s.Ops))

	tr, runErr := script.Run(ctx, s)
	if tr != nil {
		a.renderTrace(out, tr)
		a.logger.Info("replayed",
			"script", tr.Name,
			"steps", tr.Len(),
			"growths", tr.Growths(),
			"shrinks", tr.Shrinks(),
			"errors", tr.Errors(),
		)
	}
	if runErr != nil {
		return fmt.Errorf("%s: %w", s.Name, runErr)
	}

	return nil
}

// renderTrace writes the trace as a bordered table.
func (a *app) renderTrace(out io.Writer, tr *script.Trace) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(a.styles.muted).
		Headers("#", "op", "len", "cap", "event", "result")

	for _, st := range tr.Steps() {
		event := ""
		switch {
		case st.Grew:
			event = a.styles.grow.Render("grow")
		case st.Shrank:
			event = a.styles.shrink.Render("shrink")
		}
		result := st.Value
		if st.Err != nil {
			result = a.styles.err.Render(st.Err.Error())
		}
		t.Row(strconv.Itoa(st.Index), st.Op, strconv.Itoa(st.Len), strconv.Itoa(st.Cap), event, result)
	}

	fmt.Fprintln(out, a.styles.title.Render(tr.Name))
	fmt.Fprintln(out, t.Render())
}
