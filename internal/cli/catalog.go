package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Usu171/CreateSG/internal/catalog"
)

// CatalogOptions holds flags for the catalog commands.
type CatalogOptions struct {
	*RootOptions
	DB string
}

// NewCatalogCommand creates the catalog command group.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the generation catalog",
	}
	cmd.AddCommand(newCatalogListCommand(rootOpts))
	return cmd
}

func newCatalogListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CatalogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List recorded generation runs",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "catalog database path")
	cmd.MarkFlagRequired("db")

	return cmd
}

func runCatalogList(opts *CatalogOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cat, err := catalog.Open(opts.DB)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("open catalog %s", opts.DB), err)
	}
	defer cat.Close()

	entries, err := cat.List(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "list catalog", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(formatter.Writer, "catalog is empty")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(formatter.Writer, "%s  %-13s  %-12s  %s  (run %s)\n",
			e.CreatedAt, e.Kind, e.Origin, e.Path, e.RunID)
	}
	return nil
}
