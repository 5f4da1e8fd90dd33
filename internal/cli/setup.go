package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/services"
)

func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Create the warehouse directory tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := buildDeps()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			banner(out, "DATA WAREHOUSE - PROJECT SETUP")

			dirs, err := services.Setup(deps.Config, time.Now())
			if err != nil {
				return err
			}
			for _, dir := range dirs {
				okf(out, "Created: %s", dir)
			}
			okf(out, "Project structure ready")
			return nil
		},
	}
}
