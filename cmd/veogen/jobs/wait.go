package jobcmd

import (
	"fmt"

	veogenapp "github.com/10Narratives/veogen/internal/app/veogen"
	"github.com/spf13/cobra"
)

func NewWaitCmd() *cobra.Command {
	var (
		name   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "wait",
		Short: "Wait for an earlier generation job and save its video",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			app, log, err := loadApp(cmd, func(cfg *veogenapp.Config) {
				if output != "" {
					cfg.OutputPath = output
				}
			}, waitingNotice(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			res, err := app.Videos().ResumeVideo(cmd.Context(), app.ResumeArgs(name))
			if err != nil {
				return describe(name, err)
			}

			printSaved(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Operation name returned by generate")
	cmd.Flags().StringVar(&output, "output", "", "Output path, overrides configuration")

	return cmd
}
