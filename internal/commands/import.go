package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/walletkeep-dev/walletkeep/internal/importer"
)

func newImportCommand(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Append records from a bank CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := importer.DefaultRegistry()
			parser := registry.Get(format)
			if parser == nil {
				return fmt.Errorf("unknown format %q (available: %s)", format, strings.Join(registry.Formats(), ", "))
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			defer f.Close()

			recs, err := parser.Parse(f)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			store, cfg, err := opts.openStore()
			if err != nil {
				return err
			}
			if err := store.AddAll(recs); err != nil {
				return err
			}

			opts.recordMutation(cfg, store, "import", fmt.Sprintf("%d records from %s", len(recs), args[0]))
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records into %s\n", len(recs), store.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "simple", "bank CSV format")

	return cmd
}
