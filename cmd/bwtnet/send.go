package main

import (
	"github.com/aretw0/bwtnet/internal/cli"
	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send <input-file>",
	Short: "Send a batch of sequences to the server",
	Long: `Input files are .txt or .fasta files holding one or more records.
Each record is a header on a single line followed by its sequence:
"<" starts a BWT sequence and ">" starts a DNA sequence.
Blank lines are allowed. Sequences may only hold DNA symbols, with no digits
or whitespace, and a BWT sequence must hold exactly one "$".

The output file receives the converted records with the header marker flipped
from ">" to "<" and vice versa.

Verbosity:
  0  write the output file only
  1  also print how many records were converted
  2  also print the headers of the records that were skipped`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cl := cfg.Client

		flags := cmd.Flags()
		if flags.Changed("address") {
			cl.Address, _ = flags.GetString("address")
		}
		if flags.Changed("port") {
			cl.Port, _ = flags.GetInt("port")
		}
		if flags.Changed("output") {
			cl.Output, _ = flags.GetString("output")
		}
		if flags.Changed("verbose") {
			cl.Verbosity, _ = flags.GetInt("verbose")
		}

		return cli.Send(cmd.Context(), cl, args[0])
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringP("address", "a", "", "Server address (default: host name)")
	sendCmd.Flags().IntP("port", "p", 5500, "Server port")
	sendCmd.Flags().StringP("output", "o", "output.txt", "Output file name")
	sendCmd.Flags().IntP("verbose", "v", 1, "Verbosity level: 0, 1 or 2")
}
