// Package main provides the Cookbook CLI entry point.
// Cookbook is an interactive shell for keeping recipes and an ingredient stock.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cookbook/internal/commands"
	"cookbook/internal/commands/builtin"
	"cookbook/internal/config"
	"cookbook/internal/console"
	"cookbook/internal/data/embedded"
	"cookbook/internal/logger"
	"cookbook/internal/shell"
	"cookbook/internal/state"
	"cookbook/internal/version"
)

// flagKeys maps persistent flags to the configuration keys they override.
var flagKeys = map[string]string{
	"log-level":     config.KeyLogLevel,
	"log-file":      config.KeyLogFile,
	"prompt":        config.KeyPrompt,
	"strict-quotes": config.KeyStrictQuotes,
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries the state shared by the root command and its subcommands.
type app struct {
	v          *viper.Viper
	cfg        *config.Config
	configFile string
	noBanner   bool
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	// rootCmd runs the interactive shell when called without a subcommand
	rootCmd := &cobra.Command{
		Use:   "cookbook",
		Short: "Cookbook - keep recipes and ingredient stock from the command line",
		Long: `Cookbook is a small interactive shell for writing down recipes and tracking
the ingredients you have in stock. Type "help" at the prompt to list commands.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
		RunE:              a.runShell,
	}

	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Start interactive shell mode",
		Long:  `Start the interactive Cookbook shell. This is also the default when no subcommand is given.`,
		Args:  cobra.NoArgs,
		RunE:  a.runShell,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the version of Cookbook.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetFormattedVersion())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "", "Set log level (debug|info|warn|error) [default: warn]")
	flags.String("log-file", "", "Write logs to file instead of stderr")
	flags.String("prompt", "", `Prompt printed before each command [default: ">>> "]`)
	flags.Bool("strict-quotes", false, "Report lines with an unterminated quoted argument instead of ignoring it")
	flags.BoolVar(&a.noBanner, "no-banner", false, "Do not show application info at start-up")
	flags.StringVar(&a.configFile, "config", "", "Config file (default: cookbook.yaml in the working or config directory)")

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// initConfig binds flags, resolves the configuration and configures the logger
// before any command runs.
func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	if err := version.ValidateVersion(); err != nil {
		return err
	}

	if err := bindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	if a.noBanner {
		a.v.Set(config.KeyBanner, false)
	}

	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}
	logger.Debug("Configuration loaded", "config", a.v.ConfigFileUsed())
	return nil
}

// bindFlags lets set flags override the configuration keys in flagKeys.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind %s flag: %w", name, err)
		}
	}
	return nil
}

func (a *app) runShell(cmd *cobra.Command, _ []string) error {
	logger.Info("Starting Cookbook", "version", version.GetVersion())

	out := cmd.OutOrStdout()
	prompter, closePrompter, err := newPrompter(cmd.InOrStdin(), out, a.cfg.HistoryFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := closePrompter(); err != nil {
			logger.Warn("Failed to close input", "error", err)
		}
	}()

	appInfo, err := embedded.LoadAppInfo()
	if err != nil {
		return err
	}

	registry := commands.NewRegistry()
	err = builtin.RegisterAll(&builtin.Env{
		Registry:  registry,
		State:     state.New(),
		Prompter:  prompter,
		Out:       out,
		AppInfo:   appInfo,
		HelpWidth: a.cfg.HelpWidth,
	})
	if err != nil {
		return err
	}
	logger.Debug("Commands registered", "count", registry.Len())

	loop := shell.New(registry, prompter, out,
		shell.WithPrompt(a.cfg.Prompt),
		shell.WithBanner(a.cfg.Banner),
		shell.WithStrictQuotes(a.cfg.StrictQuotes),
	)
	if err := loop.Run(); err != nil {
		return err
	}

	logger.Info("Cookbook stopped")
	return nil
}

// newPrompter uses line editing when in is a terminal and plain line reads otherwise.
func newPrompter(in io.Reader, out io.Writer, historyFile string) (console.Prompter, func() error, error) {
	if f, ok := in.(*os.File); ok && console.IsTerminal(f.Fd()) {
		rl, err := console.NewReadlinePrompter(console.ReadlineOptions{
			HistoryFile: historyFile,
			Stdout:      out,
		})
		if err != nil {
			return nil, nil, err
		}
		return rl, rl.Close, nil
	}
	return console.NewReaderPrompter(in, out), func() error { return nil }, nil
}
