package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/bwtnet"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of bwtnet",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bwtnet version %s\n", strings.TrimSpace(bwtnet.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
