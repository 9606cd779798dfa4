package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Usu171/CreateSG/internal/geom"
	"github.com/Usu171/CreateSG/internal/machine"
)

// ConveyorOptions holds flags for the conveyor command.
type ConveyorOptions struct {
	*RootOptions
	Origin       string
	Connect      []string
	Output       string
	Uncompressed bool
}

// conveyorResult is the success payload of the conveyor command.
type conveyorResult struct {
	Path        string `json:"path"`
	Origin      string `json:"origin"`
	Connections int    `json:"connections"`
}

// NewConveyorCommand creates the conveyor command.
func NewConveyorCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConveyorOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "conveyor",
		Short: "Generate a chain conveyor structure file",
		Long: `Generate a chain conveyor structure file.

Connections are absolute world coordinates of the connected conveyors:

  createsg conveyor --origin 0,-63,0 --connect 1000,0,0 \
      --connect 0,1000,0 -o conveyor.nbt`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConveyor(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Origin, "origin", "0,0,0", `conveyor origin as "x,y,z"`)
	cmd.Flags().StringArrayVar(&opts.Connect, "connect", nil, `connection target as "x,y,z" (repeatable)`)
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output .nbt path")
	cmd.Flags().BoolVar(&opts.Uncompressed, "uncompressed", false, "write raw NBT instead of gzip")
	cmd.MarkFlagRequired("output")

	return cmd
}

func runConveyor(opts *ConveyorOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	origin, err := geom.Parse(opts.Origin)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --origin", err)
	}

	conv := machine.NewConveyor(origin)
	for _, spec := range opts.Connect {
		pos, err := geom.Parse(spec)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("invalid --connect %q", spec), err)
		}
		conv.AddConnection(pos)
		formatter.VerboseLog("Added connection to %s", pos)
	}

	if err := conv.Structure().Save(opts.Output, !opts.Uncompressed); err != nil {
		return WrapExitError(ExitFailure, "write structure file", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(conveyorResult{Path: opts.Output, Origin: origin.String(), Connections: len(opts.Connect)})
	}
	fmt.Fprintf(formatter.Writer, "✓ Wrote %s (%d connection(s))\n", opts.Output, len(opts.Connect))
	return nil
}
