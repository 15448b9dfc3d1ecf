package main

import (
	"context"
	"os/signal"
	"syscall"

	jobcmd "github.com/10Narratives/veogen/cmd/veogen/jobs"
	errorutils "github.com/10Narratives/veogen/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{
		Use:           "veogen",
		Short:         "Tool for text-to-video generation jobs",
		Long:          "Tool for submitting text-to-video generation jobs, waiting for them to finish and saving the produced videos.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "path to configuration file")
	rootCmd.PersistentFlags().String("env", "", "launch environment (dev, prod, quiet)")

	rootCmd.AddCommand(
		jobcmd.NewGenerateCmd(),
		jobcmd.NewGetCmd(),
		jobcmd.NewWaitCmd(),
	)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	errorutils.Exit(err, 1)
}
