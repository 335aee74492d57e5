package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/wabridge/hookctl/cmd"
	"github.com/wabridge/hookctl/cmd/hookctl/bridge"
	"github.com/wabridge/hookctl/cmd/hookctl/hooks"
	"github.com/wabridge/hookctl/pkg/config"
	logr "github.com/wabridge/hookctl/pkg/log"
	"github.com/wabridge/hookctl/pkg/version"
	"go.uber.org/automaxprocs/maxprocs"
)

var (
	configPath string
	apiURL     string
	noColor    bool

	// logFile is the log file opened for this run, if any.
	logFile *os.File

	rootCmd = &cobra.Command{
		Use:          "hookctl",
		Short:        "Manage bridge webhooks from the terminal",
		Long:         "hookctl manages the webhook subscriptions of a messaging bridge. Run it without a command to open the terminal UI.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runUI,
	}
)

func init() {
	cobra.EnableTraverseRunHooks = true
	rootCmd.PersistentPreRunE = initContext

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "base address of the bridge API")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colors")
	rootCmd.AddCommand(hooks.Commands()...)
	rootCmd.AddCommand(
		uiCmd,
		bridge.Command,
		manCmd,
	)

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	if len(version.CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + version.CommitSHA[0:7] + ")\n")
	}
	if version.Version == "" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Sum != "" {
			version.Version = info.Main.Version
		}
	}
	rootCmd.Version = version.Version
	if rootCmd.Version == "" {
		rootCmd.Version = "unknown (built from source)"
	}
}

// initContext loads the configuration, sets up logging and creates the API
// client for the command.
func initContext(c *cobra.Command, args []string) error {
	ctx := c.Context()
	cfg := config.DefaultConfig()
	if configPath != "" {
		if err := config.ParseConfig(cfg, configPath); err != nil {
			return fmt.Errorf("parse config file: %w", err)
		}
	} else if cfg.Exist() {
		if err := cfg.ParseFile(); err != nil {
			return fmt.Errorf("parse config file: %w", err)
		}
	}
	if err := cfg.ParseEnv(); err != nil {
		return err
	}
	if apiURL != "" {
		cfg.API.URL = apiURL
	}
	if noColor {
		cfg.UI.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx = config.WithContext(ctx, cfg)

	// The terminal UI owns the screen: it only logs to a file.
	var w io.Writer = c.ErrOrStderr()
	if c == rootCmd || c == uiCmd {
		w = io.Discard
	}
	logger, f, err := logr.NewLogger(cfg, w)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	logFile = f

	log.SetDefault(logger)
	ctx = log.WithContext(ctx, logger)
	c.SetContext(ctx)

	return cmd.InitClientContext(c, args)
}

func run() int {
	// Set the max number of processes to the number of CPUs
	// This is useful when running the bridge in a container
	if _, err := maxprocs.Set(maxprocs.Logger(log.Debugf)); err != nil {
		log.Warn("couldn't set automaxprocs", "error", err)
	}

	defer func() {
		if logFile != nil {
			logFile.Close() // nolint: errcheck
		}
	}()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
