package main

import (
	"fmt"
	"os"

	"library-catalog/library"
	"library-catalog/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every command needs once flags and environment are read.
type app struct {
	cfg Config
	log *zap.Logger
}

func (a *app) newCatalog() *library.Catalog {
	opts := []library.Option{library.WithLogger(a.log)}
	if a.cfg.StrictIDs {
		opts = append(opts, library.WithUniqueIDs())
	}
	return library.NewCatalog(opts...)
}

// seededCatalog returns a fresh catalog, preloaded from path when it is set.
func (a *app) seededCatalog(path string) (*library.Catalog, error) {
	cat := a.newCatalog()
	if path == "" {
		return cat, nil
	}
	sum, err := library.LoadSeedFile(cat, path)
	if err != nil {
		return nil, fmt.Errorf("load seed %s: %w", path, err)
	}
	a.log.Info("Seed loaded",
		zap.String("path", path),
		zap.Int("items", sum.Items),
		zap.Int("members", sum.Actors),
		zap.Int("loans", sum.Loans))
	return cat, nil
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	var (
		logLevel  string
		strictIDs bool
	)

	root := &cobra.Command{
		Use:           appName,
		Short:         "In-memory library catalog",
		Long:          "Runs the catalog self-check when invoked without a subcommand.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("strict-ids") {
				cfg.StrictIDs = strictIDs
			}
			log, err := logger.NewLogger(appName, cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			a.cfg, a.log = cfg, log
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return library.SelfCheck(a.newCatalog(), cmd.OutOrStdout())
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&strictIDs, "strict-ids", false, "reject duplicate book and member ids")

	root.AddCommand(newShellCmd(a), newSearchCmd(a))
	return root
}

func newShellCmd(a *app) *cobra.Command {
	var seed string
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive session over one in-memory catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := a.seededCatalog(seed)
			if err != nil {
				return err
			}
			return newShell(cmd.InOrStdin(), cmd.OutOrStdout(), cat).run()
		},
	}
	cmd.Flags().StringVar(&seed, "seed", "", "YAML file to preload books, members and loans from")
	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	var seed string
	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Print books whose title or author contains keyword, or whose id equals it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.seededCatalog(seed)
			if err != nil {
				return err
			}
			_, err = cat.WriteSearch(cmd.OutOrStdout(), args[0])
			return err
		},
	}
	cmd.Flags().StringVar(&seed, "seed", "", "YAML file to preload books, members and loans from")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
