package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Usu171/CreateSG/internal/geom"
	"github.com/Usu171/CreateSG/internal/machine"
)

// PairOptions holds flags for the pair command.
type PairOptions struct {
	*RootOptions
	Origin  string
	Connect []string
	Base    string
}

// pairResult is the success payload of the pair command.
type pairResult struct {
	Origin string   `json:"origin"`
	Files  []string `json:"files"`
}

// NewPairCommand creates the pair command.
func NewPairCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PairOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "pair",
		Short: "Generate a main conveyor plus matching inverse conveyors",
		Long: `Generate a main conveyor plus one inverse conveyor per connection.

Placing the main structure at the origin and each inverse structure at
its connection target yields consistent connection vectors on both
ends. Files are derived from --base: "conv.nbt" becomes "conv_main.nbt"
and "conv_1.nbt", "conv_2.nbt", ...`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPair(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Origin, "origin", "0,0,0", `main conveyor origin as "x,y,z"`)
	cmd.Flags().StringArrayVar(&opts.Connect, "connect", nil, `connection target as "x,y,z" (repeatable)`)
	cmd.Flags().StringVar(&opts.Base, "base", "", "base .nbt filename for the generated set")
	cmd.MarkFlagRequired("connect")
	cmd.MarkFlagRequired("base")

	return cmd
}

func runPair(opts *PairOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	origin, err := geom.Parse(opts.Origin)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --origin", err)
	}

	targets := make([]geom.Vec3, 0, len(opts.Connect))
	for _, spec := range opts.Connect {
		pos, err := geom.Parse(spec)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("invalid --connect %q", spec), err)
		}
		targets = append(targets, pos)
	}

	written, err := machine.GenerateConnectedConveyors(targets, origin, opts.Base)
	if err != nil {
		// No rollback: files written before the failure stay on disk.
		return WrapExitError(ExitFailure, fmt.Sprintf("generated %d of %d files", len(written), len(targets)+1), err)
	}

	if formatter.Format == "json" {
		return formatter.Success(pairResult{Origin: origin.String(), Files: written})
	}
	fmt.Fprintf(formatter.Writer, "✓ Wrote %d file(s):\n", len(written))
	for _, path := range written {
		fmt.Fprintf(formatter.Writer, "  %s\n", path)
	}
	return nil
}
