package cli

import (
	"fmt"

	"github.com/alexanderramin/savecnt/internal/cli/formatter"
	"github.com/alexanderramin/savecnt/internal/config"
	"github.com/spf13/cobra"
)

func newTokenCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the saved bot token",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set TOKEN",
			Short: "Save a bot token",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := config.SaveToken(app.Config.TokenPath(), args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✔ ")+"Token salvo em "+app.Config.TokenPath())
				return nil
			},
		},
		&cobra.Command{
			Use:     "clear",
			Aliases: []string{"logout"},
			Short:   "Remove the saved bot token",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := config.RemoveToken(app.Config.TokenPath()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Token removido."))
				return nil
			},
		},
	)

	return cmd
}
