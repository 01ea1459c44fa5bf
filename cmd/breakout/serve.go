package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagLogLevel    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the breakout SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the mode menu.
Scores are stored per-server (all users share the same leaderboard)
and saved under the SSH user name.

Settings come from the environment and can be overridden by flags:
  BREAKOUT_SSH_ADDR       - listen address
  BREAKOUT_HOST_KEY       - host key path (generated if missing)
  BREAKOUT_DB             - scores database
  BREAKOUT_IDLE_MINUTES   - idle timeout, 0 disables it

Examples:
  breakout serve                           # Listen on :2222
  breakout serve --ssh :23234              # Listen on port 23234
  breakout serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func runServe(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout-ssh",
		Level:           level,
	})

	cfg, err := config.LoadServerConfig(config.DefaultServerConfig())
	if err != nil {
		return err
	}

	// Flags win over the environment
	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.Addr = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.IdleMinutes = flagIdleTimeout
	}
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return err
	}

	cmd.SilenceUsage = true
	logger.Info("connect with ssh", "addr", cfg.Addr)
	return server.ListenAndServe()
}
