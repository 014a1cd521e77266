package main

import (
	"os"

	"github.com/spf13/cobra"

	"helpdesk/internal/interfaces/cli/api"
	"helpdesk/internal/interfaces/cli/migrate"
	"helpdesk/internal/interfaces/cli/web"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "helpdesk",
		Short: "Helpdesk - ticket tracking for small teams",
		Long:  `Helpdesk bundles the ticket API, the browser frontend and the migration tools into one binary.`,
	}

	rootCmd.AddCommand(
		api.NewCommand(),
		web.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
