package jobcmd

import (
	"fmt"

	veogenapp "github.com/10Narratives/veogen/internal/app/veogen"
	"github.com/spf13/cobra"
)

func NewGenerateCmd() *cobra.Command {
	var (
		prompt string
		model  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Submit a generation job, wait for it and save the video",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, log, err := loadApp(cmd, func(cfg *veogenapp.Config) {
				if prompt != "" {
					cfg.Prompt = prompt
				}
				if model != "" {
					cfg.Model = model
				}
				if output != "" {
					cfg.OutputPath = output
				}
			}, waitingNotice(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			res, err := app.Videos().GenerateVideo(cmd.Context(), app.GenerateArgs())
			if err != nil {
				return describe("", err)
			}

			printSaved(cmd.OutOrStdout(), res)
			fmt.Fprintf(cmd.OutOrStdout(), "operation: %s, polls: %d\n", res.Operation, res.Polls)
			return nil
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "", "Text prompt, overrides configuration")
	cmd.Flags().StringVar(&model, "model", "", "Model identifier, overrides configuration")
	cmd.Flags().StringVar(&output, "output", "", "Output path, overrides configuration")

	return cmd
}
