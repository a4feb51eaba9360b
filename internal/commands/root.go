package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/passbook/internal/buildinfo"
	"github.com/cleared-dev/passbook/internal/config"
)

// globalOptions holds the persistent flags shared by every menu.
type globalOptions struct {
	configPath string
	verbose    bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "passbook",
		Short:   "Console record keeping: bank ledger, employees, fitness members, students",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "passbook.yaml", "config file (defaults apply when missing)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug events to stderr")

	rootCmd.AddCommand(newInitCommand(opts))
	rootCmd.AddCommand(newBankCommand(opts))
	rootCmd.AddCommand(newEmployeesCommand(opts))
	rootCmd.AddCommand(newMembersCommand(opts))
	rootCmd.AddCommand(newStudentsCommand(opts))

	return rootCmd
}

// setup loads the config and builds the stderr logger for a menu run.
func (o *globalOptions) setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadOrDefault(o.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	logger.Debug("config loaded", "path", o.configPath)
	return cfg, logger, nil
}
