package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mosql "github.com/paull87/mo-sql-parsing"
	"github.com/paull87/mo-sql-parsing/internal/cli/config"
	"github.com/paull87/mo-sql-parsing/pkg/dialect"
	"github.com/paull87/mo-sql-parsing/pkg/trace"
)

// ConfigGetter retrieves the loaded configuration from a command context.
type ConfigGetter func(ctx context.Context) *config.Config

// NewParseCommand creates the parse command.
func NewParseCommand(getConfig ConfigGetter) *cobra.Command {
	var traceRules bool

	cmd := &cobra.Command{
		Use:   "parse [sql]",
		Short: "Parse SQL into its canonical structure",
		Long: `Parse SQL text and print the canonical nested-mapping result.

The SQL is taken from the arguments, or from stdin when no argument is
given.`,
		Example: `  mosql parse "SELECT a FROM b WHERE c > 1"
  echo "SELECT 1" | mosql parse
  mosql parse -d postgres "SELECT * FROM t FOR UPDATE"`,
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

			var tracer trace.Tracer = trace.Nop{}
			if traceRules {
				tracer = trace.NewWriter(cmd.ErrOrStderr())
			}

			result, err := mosql.ParseTraced(sql, d, tracer)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), result, cfg.Format)
		},
	}

	cmd.Flags().BoolVar(&traceRules, "trace", false, "Print grammar rule decisions to stderr")
	return cmd
}

// readSQL joins the arguments or reads all of stdin.
func readSQL(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	sql := strings.TrimSpace(string(data))
	if sql == "" {
		return "", fmt.Errorf("no SQL given (pass as argument or on stdin)")
	}
	return sql, nil
}

// writeResult encodes the canonical result in the selected format.
func writeResult(out io.Writer, result map[string]any, format string) error {
	switch format {
	case "", "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(result)
	default:
		return fmt.Errorf("unknown output format %q (json|yaml)", format)
	}
}
