package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/paull87/mo-sql-parsing/pkg/dialect"
	"github.com/paull87/mo-sql-parsing/pkg/parser"
	"github.com/paull87/mo-sql-parsing/pkg/token"
)

// NewTokensCommand creates the tokens command, a lexer debugging aid.
func NewTokensCommand(getConfig ConfigGetter) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [sql]",
		Short: "Show the token stream for SQL text",
		Example: `  mosql tokens "SELECT a::int FROM b" -d postgres
  echo "SELECT 1" | mosql tokens`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig(cmd.Context())

			sql, err := readSQL(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			d, ok := dialect.Get(cfg.Dialect)
			if !ok {
				return fmt.Errorf("unknown dialect %q (registered: %s)", cfg.Dialect, strings.Join(dialect.List(), ", "))
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"#", "Type", "Literal", "Line", "Col"})
			for i, tok := range parser.Tokenize(sql, d) {
				lit := tok.Literal
				if tok.Quoted {
					lit = fmt.Sprintf("%q", lit)
				}
				t.AppendRow(table.Row{i, tok.Type.String(), lit, tok.Pos.Line, tok.Pos.Column})
				if tok.Type == token.EOF {
					break
				}
			}
			t.Render()
			return nil
		},
	}
}
