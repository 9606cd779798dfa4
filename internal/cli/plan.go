package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Usu171/CreateSG/internal/catalog"
	"github.com/Usu171/CreateSG/internal/plan"
)

// PlanOptions holds flags for the plan run command.
type PlanOptions struct {
	*RootOptions
	DB string // optional catalog database path
}

// NewPlanCommand creates the plan command group.
func NewPlanCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Work with generation plans",
	}
	cmd.AddCommand(newPlanRunCommand(rootOpts))
	return cmd
}

func newPlanRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlanOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <plan.yaml>",
		Short: "Execute a YAML generation plan",
		Long: `Execute a YAML generation plan: validate it, generate every machine
it names, and optionally record the written files in a catalog
database.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlanRun(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "catalog database to record this run in")

	return cmd
}

func runPlanRun(opts *PlanOptions, planPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	p, err := plan.Load(planPath)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("load plan %s", planPath), err)
	}
	formatter.VerboseLog("Loaded plan %q with %d machine(s)", p.Name, len(p.Machines))

	result, err := plan.Execute(p)
	if err != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("execute plan %q", p.Name), err)
	}

	if opts.DB != "" {
		if err := recordRun(cmd.Context(), opts.DB, result); err != nil {
			return WrapExitError(ExitFailure, "record run in catalog", err)
		}
		formatter.VerboseLog("Recorded %d file(s) in %s", len(result.Files), opts.DB)
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "✓ Run %s: wrote %d file(s)\n", result.RunID, len(result.Files))
	for _, f := range result.Files {
		fmt.Fprintf(formatter.Writer, "  %s (%s @ %s)\n", f.Path, f.Kind, f.Origin)
	}
	return nil
}

func recordRun(ctx context.Context, dbPath string, result *plan.RunResult) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cat, err := catalog.Open(dbPath)
	if err != nil {
		return err
	}
	defer cat.Close()

	for _, f := range result.Files {
		entry := catalog.Entry{
			RunID:  result.RunID,
			Kind:   f.Kind,
			Origin: f.Origin,
			Path:   f.Path,
		}
		if err := cat.Record(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}
