package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/walletkeep-dev/walletkeep/internal/config"
	"github.com/walletkeep-dev/walletkeep/internal/gitops"
)

func newInitCommand(opts *options) *cobra.Command {
	var ledgerFile string
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new wallet directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, ledgerFile, useGit)
		},
	}

	cmd.Flags().StringVar(&ledgerFile, "ledger", defaultLedgerFile, "ledger file name")
	cmd.Flags().BoolVar(&useGit, "git", false, "initialize a git repository and enable auto-commit")

	return cmd
}

func runInit(cmd *cobra.Command, dir, ledgerFile string, useGit bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	configPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists", configPath)
	}

	cfg := config.Default(ledgerFile)
	cfg.Git.AutoCommit = useGit
	if err := config.Save(configPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Create an empty ledger so the first load has a file to read.
	ledgerPath := filepath.Join(dir, ledgerFile)
	if err := os.WriteFile(ledgerPath, []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}

	if useGit && !gitops.IsRepo(dir) {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		hash, err := gitops.CommitPaths(dir, "init: new wallet", cfg.Git.AuthorName, cfg.Git.AuthorEmail, config.FileName, ledgerFile)
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Initialized wallet at %s (%s)\n", dir, hash)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized wallet at %s\n", dir)
	return nil
}
