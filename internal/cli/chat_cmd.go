package cli

import (
	"fmt"

	"github.com/alexanderramin/savecnt/internal/console"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the bot from the terminal as a given user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Machine == nil {
				return fmt.Errorf("conversation machine is not configured")
			}
			if !app.interactive() {
				return fmt.Errorf("chat needs an interactive terminal")
			}
			err := console.Run(cmd.Context(), app.Machine, userID, app.Config.ExportDir)
			if ferr := app.Store.Flush(cmd.Context()); ferr != nil && err == nil {
				err = ferr
			}
			return err
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "User id whose contacts the chat edits")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
