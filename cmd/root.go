package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-corestorage/internal/config"
	"github.com/deploymenttheory/go-corestorage/pkg/app"
	"github.com/deploymenttheory/go-corestorage/pkg/corestorage"
)

var (
	// Global output flags
	verbose      bool
	quiet        bool
	outputFormat string

	// Configuration overrides
	configFile   string
	diskutilPath string

	cfg    *config.Config
	logger = log.New()
)

var rootCmd = &cobra.Command{
	Use:   "go-corestorage",
	Short: "Inspect and control CoreStorage volume encryption",
	Long: `go-corestorage inspects and controls CoreStorage (FileVault 2) logical
volume encryption on macOS by driving diskutil.

It reports whether the boot volume and its volume group are encrypted,
lists logical volumes by encryption status, locates the recovery
partition, unlocks encrypted volumes and reverts (permanently decrypts)
them. Passphrases are read from the terminal or standard input and are
handed to diskutil on standard input, never on the command line.

Commands:
  status      Show encryption state and logical volumes
  boot        Report whether the boot volume is encrypted
  recovery    Show the recovery partition on disk0
  size        Show a logical volume's size
  unlock      Unlock an encrypted logical volume
  revert      Permanently decrypt a logical volume
  config      Show the effective configuration`,
	Version:       "0.1.0-dev",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// The caller decides how to exit on error.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Assigned here rather than in the literal to avoid an initialization
	// cycle (rootCmd -> initConfig -> rootCmd).
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initConfig()
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output except errors")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./corestorage.yaml, $HOME/.corestorage, /etc/corestorage)")
	rootCmd.PersistentFlags().StringVar(&diskutilPath, "diskutil", "", "path to diskutil (default from config)")

	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// initConfig loads configuration and applies logging settings.
func initConfig() error {
	v := config.New(configFile)
	if err := v.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")); err != nil {
		return err
	}
	if err := v.BindPFlag("diskutil_path", rootCmd.PersistentFlags().Lookup("diskutil")); err != nil {
		return err
	}

	loaded, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg = loaded

	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(cfg.Level())
	switch {
	case verbose:
		logger.SetLevel(log.DebugLevel)
	case quiet:
		logger.SetLevel(log.ErrorLevel)
	}

	logger.WithFields(log.Fields{
		"config":   v.ConfigFileUsed(),
		"diskutil": cfg.DiskutilPath,
	}).Debug("configuration loaded")

	return nil
}

// newAppContext builds the application context for a command.
func newAppContext(cmd *cobra.Command) *app.Context {
	client := corestorage.NewDefaultClient(logger, corestorage.WithDiskutilPath(cfg.DiskutilPath))

	ctx := app.NewContext(cmd.Context(), client, logger)
	ctx.OutputFormat = cfg.Output
	ctx.Verbose = verbose
	ctx.Quiet = quiet
	ctx.Out = cmd.OutOrStdout()
	return ctx
}
