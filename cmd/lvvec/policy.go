package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvvec/vector"
)

// errBadPolicyArgs indicates a non-positive --steps or a negative --from.
var errBadPolicyArgs = errors.New("lvvec: --from must be >= 0 and --steps > 0")

func newPolicyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Print the growth schedule and shrink targets starting at a capacity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from := a.cfg.GetInt("from")
			steps := a.cfg.GetInt("steps")
			if from < 0 || steps <= 0 {
				return errBadPolicyArgs
			}
			a.logger.Debug("policy", "from", from, "steps", steps)
			a.renderPolicy(cmd.OutOrStdout(), from, steps)

			return nil
		},
	}
	cmd.Flags().Int("from", vector.InitialCapacity, "starting capacity")
	cmd.Flags().Int("steps", 10, "number of growth steps to print")

	return cmd
}

// renderPolicy prints one line per growth step: capacity, next capacity,
// and the shrink threshold and target for that capacity.
func (a *app) renderPolicy(out io.Writer, from, steps int) {
	fmt.Fprintln(out, a.styles.title.Render(fmt.Sprintf(
		"grow ×%.2f, shrink at ×%.2f, floor %d",
		vector.GrowFactor, vector.ContractFactor, vector.InitialCapacity)))

	c := from
	for i := 0; i < steps; i++ {
		next := vector.GrowCapacity(c)
		shrinkTo := vector.ShrinkCapacity(c)
		if shrinkTo >= c {
			shrinkTo = c
		}
		fmt.Fprintf(out, "%4d  cap %-8d grow -> %-8d shrink -> %d\n", i, c, next, shrinkTo)
		c = next
	}
}
