package main

import (
	"os"

	"github.com/spf13/cobra"

	"crowdfund/internal/interfaces/cli/migrate"
	"crowdfund/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "crowdfund",
		Short: "Crowdfunding platform backend",
		Long:  `Backend for a crowdfunding platform with user accounts, organizations, projects and blockchain-backed deposits.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
