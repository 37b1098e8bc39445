package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/thihaaungym/vaultboard/internal/app/client"
	"github.com/thihaaungym/vaultboard/internal/app/client/config"
	"github.com/thihaaungym/vaultboard/internal/logger"
)

var (
	cfg        *config.Config
	log        *slog.Logger
	app        *client.App
	jsonOutput bool
	serverURL  string
)

var rootCmd = &cobra.Command{
	Use:   "vaultboard",
	Short: "VaultBoard client for tracking credential validity",
	Long: `VaultBoard keeps credential records with validity windows and shows
which ones are expired or about to expire.

Log in once with the admin password; the session is stored locally and
used for every following command.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(_ *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize client: %w", err)
	}

	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print raw JSON output")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "VaultBoard server address (host:port)")
}
