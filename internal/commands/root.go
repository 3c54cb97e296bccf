package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/walletkeep-dev/walletkeep/internal/buildinfo"
	"github.com/walletkeep-dev/walletkeep/internal/config"
	"github.com/walletkeep-dev/walletkeep/internal/gitops"
	"github.com/walletkeep-dev/walletkeep/internal/history"
	"github.com/walletkeep-dev/walletkeep/internal/ledger"
)

const defaultLedgerFile = "wallet.txt"

// options carries the persistent flags shared by all subcommands.
type options struct {
	configPath string
	ledgerFile string
	verbose    bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "walletkeep",
		Short:   "Personal finance ledger in a plain text file",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.FileName, "path to walletkeep.yaml")
	rootCmd.PersistentFlags().StringVar(&opts.ledgerFile, "file", "", "ledger file (overrides config and "+config.EnvLedgerFile+")")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose diagnostics")

	rootCmd.AddCommand(
		newInitCommand(opts),
		newAddCommand(opts),
		newEditCommand(opts),
		newDeleteCommand(opts),
		newListCommand(opts),
		newSearchCommand(opts),
		newBalanceCommand(opts),
		newImportCommand(opts),
		newHistoryCommand(opts),
	)

	return rootCmd
}

func (o *options) logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if o.verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// loadConfig reads walletkeep.yaml, falling back to defaults when the
// file is absent so the tool works in an unconfigured directory.
func (o *options) loadConfig() *config.Config {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Default(defaultLedgerFile)
	}
	return cfg
}

func (o *options) ledgerPath(cfg *config.Config) string {
	if o.ledgerFile != "" {
		return o.ledgerFile
	}
	return cfg.LedgerFile()
}

// openStore loads the ledger named by flag, environment, or config.
func (o *options) openStore() (*ledger.Store, *config.Config, error) {
	cfg := o.loadConfig()
	store, err := ledger.Open(o.ledgerPath(cfg), ledger.WithLogger(o.logger()))
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

func historyPath(cfg *config.Config, store *ledger.Store) string {
	if cfg.History.File != "" {
		return cfg.History.File
	}
	return store.Path() + ".history.csv"
}

// recordMutation appends an audit entry and, when enabled, commits the
// ledger file. Failures here warn but never fail the mutation itself.
func (o *options) recordMutation(cfg *config.Config, store *ledger.Store, action, details string) {
	log := o.logger()

	hash := ""
	if cfg.Git.AutoCommit {
		dir := filepath.Dir(store.Path())
		if gitops.IsRepo(dir) {
			var err error
			hash, err = gitops.CommitPaths(dir, action+": "+details, cfg.Git.AuthorName, cfg.Git.AuthorEmail, filepath.Base(store.Path()))
			if err != nil {
				log.Warn().Err(err).Msg("git auto-commit failed")
			}
		}
	}

	if cfg.History.Enabled {
		entry := history.Entry{Timestamp: time.Now().UTC(), Action: action, Details: details, CommitHash: hash}
		if err := history.Append(historyPath(cfg, store), []history.Entry{entry}); err != nil {
			log.Warn().Err(err).Msg("writing history failed")
		}
	}
}
