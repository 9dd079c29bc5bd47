package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/paull87/mo-sql-parsing/pkg/dialect"
)

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List registered dialects and their capabilities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{
				"Dialect", "Quote", "Qualify", "Distinct On", "ILike", "::", "Tablesample", "Locking", "Returning", "Limit",
			})
			for _, name := range dialect.List() {
				d, ok := dialect.Get(name)
				if !ok {
					continue
				}
				t.AppendRow(table.Row{
					d.Name,
					d.Identifiers.Quote,
					mark(d.SupportsQualify),
					mark(d.SupportsDistinctOn),
					mark(d.SupportsIlike),
					mark(d.SupportsCastOperator),
					mark(d.SupportsTablesample),
					mark(d.SupportsLocking),
					mark(d.SupportsReturning),
					mark(d.SupportsLimit),
				})
			}
			t.Render()
			return nil
		},
	}
}

func mark(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}
