package jobcmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	veogenapp "github.com/10Narratives/veogen/internal/app/veogen"
	opdomain "github.com/10Narratives/veogen/internal/domain/operations"
	videodomain "github.com/10Narratives/veogen/internal/domain/videos"
	opsrv "github.com/10Narratives/veogen/internal/services/operations"
	configutils "github.com/10Narratives/veogen/pkg/config"
	logutils "github.com/10Narratives/veogen/pkg/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadApp reads configuration from the root --config flag, applies overrides
// and builds the application.
func loadApp(cmd *cobra.Command, override func(cfg *veogenapp.Config), opts ...opsrv.ServiceOption) (*veogenapp.App, *zap.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	env, _ := cmd.Flags().GetString("env")

	cfg, err := configutils.Read[veogenapp.Config](path)
	if err != nil {
		return nil, nil, err
	}
	if env != "" {
		cfg.Env = env
	}
	if override != nil {
		override(cfg)
	}

	log, err := logutils.NewLogger(cfg.Env)
	if err != nil {
		return nil, nil, err
	}

	app, err := veogenapp.NewApp(cmd.Context(), cfg, log, opts...)
	if err != nil {
		_ = log.Sync()
		return nil, nil, err
	}

	return app, log, nil
}

func waitingNotice(w io.Writer) opsrv.ServiceOption {
	return opsrv.WithProgress(func(context.Context, opsrv.Progress) {
		fmt.Fprintln(w, "Waiting for video generation to complete...")
	})
}

func printSaved(w io.Writer, res *videodomain.GenerateVideoResult) {
	for _, location := range res.Locations {
		fmt.Fprintf(w, "Generated video saved to %s\n", location)
	}
}

// describe adds a resume hint to failures that leave the job's result
// retrievable by name. The name comes from a *videodomain.JobError when err
// carries one.
func describe(name string, err error) error {
	var jobErr *videodomain.JobError
	if errors.As(err, &jobErr) && jobErr.Operation != "" {
		name = jobErr.Operation
	}
	if name == "" {
		return err
	}

	var perr *videodomain.PersistenceError
	switch {
	case errors.As(err, &perr):
		return fmt.Errorf("%w; run \"veogen wait --name %s --output <path>\" to save it again", err, name)
	case errors.Is(err, opdomain.ErrWaitTimeout):
		return fmt.Errorf("%w; run \"veogen wait --name %s\" to keep waiting", err, name)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w; the job keeps running, run \"veogen wait --name %s\" to collect it", err, name)
	default:
		return err
	}
}
