package main

import (
	"github.com/aretw0/bwtnet/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the conversion server",
	Long: `Listens for client connections and answers one batch per connection.
Each connection is handled on its own goroutine. The server runs until the
process is terminated.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		srv := cfg.Server

		flags := cmd.Flags()
		if flags.Changed("bind") {
			srv.Bind, _ = flags.GetString("bind")
		}
		if flags.Changed("port") {
			srv.Port, _ = flags.GetInt("port")
		}
		if flags.Changed("metrics-addr") {
			srv.MetricsAddr, _ = flags.GetString("metrics-addr")
		}
		if flags.Changed("read-timeout") {
			srv.ReadTimeout, _ = flags.GetDuration("read-timeout")
		}
		if flags.Changed("redis") {
			srv.Redis.Addr, _ = flags.GetString("redis")
		}
		if flags.Changed("log-level") {
			srv.LogLevel, _ = flags.GetString("log-level")
		}

		return cli.Serve(srv)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("bind", "a", "", "Address to bind (default: host name)")
	serveCmd.Flags().IntP("port", "p", 5500, "Port to listen on")
	serveCmd.Flags().String("metrics-addr", "", "Address of the admin HTTP server exposing /metrics (disabled when empty)")
	serveCmd.Flags().Duration("read-timeout", 0, "Maximum time a client may take to send its batch (0 waits forever)")
	serveCmd.Flags().String("redis", "", "Redis address of the transform cache (disabled when empty)")
	serveCmd.Flags().String("log-level", "info", "Log level: debug, info, warn or error")
}
