package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

// app carries per-invocation configuration and the logger shared by subcommands.
type app struct {
	cfg    *viper.Viper
	logger *log.Logger
	styles styles
}

// newApp binds configuration for a run writing logs to errOut.
func newApp(errOut io.Writer) *app {
	cfg := viper.New()
	cfg.SetEnvPrefix("LVVEC")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	return &app{
		cfg: cfg,
		logger: log.NewWithOptions(errOut, log.Options{
			Prefix: "lvvec",
		}),
	}
}

// configure applies bound flags and environment after cobra parses the command line.
func (a *app) configure() {
	if a.cfg.GetBool("verbose") {
		a.logger.SetLevel(log.DebugLevel)
	}
	a.styles = newStyles(a.cfg.GetBool("no-color"))
}

// newRootCmd builds the command tree. out and errOut receive command output and logs.
func newRootCmd(a *app, out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "lvvec",
		Short:         "Replay growable-vector scripts and inspect the capacity policy",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			a.configure()

			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging (env LVVEC_VERBOSE)")
	root.PersistentFlags().Bool("no-color", false, "disable styled output (env LVVEC_NO_COLOR)")

	root.AddCommand(newReplayCmd(a))
	root.AddCommand(newPolicyCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// execute runs the CLI with args against the process streams.
func execute(args []string) error {
	return run(args, os.Stdout, os.Stderr)
}

// run is execute with injectable streams.
func run(args []string, out, errOut io.Writer) error {
	a := newApp(errOut)
	root := newRootCmd(a, out, errOut)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		a.logger.Error("command failed", "err", err)

		return err
	}

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lvvec version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lvvec %s (%s)\n", Version, Commit)
		},
	}
}
