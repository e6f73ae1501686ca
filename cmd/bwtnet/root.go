package main

import (
	"fmt"
	"os"

	"github.com/aretw0/bwtnet/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bwtnet",
	Short: "bwtnet converts DNA and BWT sequences over TCP",
	Long: `bwtnet runs a server that converts batches of DNA sequences into their
Burrows-Wheeler Transform and BWT sequences back into DNA, and a client that
sends an input file to it and writes the converted records to an output file.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
}

// loadConfig reads the --config file, or returns the defaults when it is not set.
func loadConfig(cmd *cobra.Command) (*config.File, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}
