package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zachkp/techfolio/internal/config"
	"github.com/Zachkp/techfolio/internal/logger"
)

var (
	cfgFile   string
	appConfig config.Config
	log       = logger.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "techfolio",
	Short: "Tech portfolio: code snippets, tips, links and jokes",
	Long: `techfolio serves a single-page tech portfolio with code snippets, tips,
useful links and developer humor. It can also show the same page in the
terminal and copy snippets straight to the clipboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
}

func initializeConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	appConfig = cfg
	log = logger.New(cfg.LogLevel, cfg.PrettyLog)
	if cfg.ConfigPath != "" {
		log.Debug("using config file", logger.String("path", cfg.ConfigPath))
	}
	return nil
}
