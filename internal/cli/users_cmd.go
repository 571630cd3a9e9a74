package cli

import (
	"fmt"

	"github.com/alexanderramin/savecnt/internal/cli/formatter"
	"github.com/alexanderramin/savecnt/internal/domain"
	"github.com/spf13/cobra"
)

func newUsersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List users with stored contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := app.Store.UserIDs()
			records := make([]*domain.UserRecord, 0, len(ids))
			for _, id := range ids {
				records = append(records, app.Store.Snapshot(cmd.Context(), id))
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatUsers(records))
			return nil
		},
	}
}
