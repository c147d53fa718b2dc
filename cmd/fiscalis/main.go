package main

import (
	"os"

	"github.com/spf13/cobra"

	"fiscalis/internal/interfaces/cli/migrate"
	"fiscalis/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fiscalis",
		Short: "Fiscalis - fiscal obligation generation engine",
		Long:  `Fiscalis generates dated fiscal obligations for business portfolios from a recurrence calendar, with an HTTP trigger surface and a scheduled worker.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
