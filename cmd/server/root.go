package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "paper-trader",
	Short: "Paper Trader - simulated stock trading with virtual cash",
	Long: `Paper Trader is a web application for simulated stock trading.

Registered users get a virtual cash balance, buy and sell shares at live
quoted prices, and review their holdings and trade history.

Run 'paper-trader serve' to start the server, or 'paper-trader seed' to
import demo accounts.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}
