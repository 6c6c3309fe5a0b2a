package main

import (
	"os"

	"github.com/spf13/cobra"

	"branchline/internal/interfaces/cli/migrate"
	"branchline/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "branchline",
		Short: "Branchline - multi-tenant backoffice API",
		Long:  `Branchline manages organizations, brands, businesses and franchises behind a REST API, with built-in server and migration commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
