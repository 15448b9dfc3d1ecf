package jobcmd

import (
	"fmt"

	opdomain "github.com/10Narratives/veogen/internal/domain/operations"
	"github.com/10Narratives/veogen/internal/transport/longrunning"
	"github.com/spf13/cobra"
)

func NewGetCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Query the status of a generation job once",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			app, log, err := loadApp(cmd, nil)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			res, err := app.Operations().GetOperation(cmd.Context(), &opdomain.GetOperationArgs{Name: name})
			if err != nil {
				return err
			}

			out, err := longrunning.MarshalOperation(res.Operation)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Operation name, e.g. models/veo-2.0-generate-001/operations/abc")

	return cmd
}
