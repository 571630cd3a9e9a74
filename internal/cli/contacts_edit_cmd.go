package cli

import (
	"fmt"
	"io"

	"github.com/alexanderramin/savecnt/internal/bulkparse"
	"github.com/alexanderramin/savecnt/internal/cli/formatter"
	"github.com/alexanderramin/savecnt/internal/domain"
	"github.com/spf13/cobra"
)

// The commands below edit a user's list directly, for use while the bot is
// stopped. Positions are 1-based stored positions as shown by "search".

func newContactsAddCmd(app *App) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "add NAME PHONE",
		Short: "Add one contact",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Store.Add(cmd.Context(), userID, args[0], args[1])
			if err != nil {
				return fmt.Errorf("adding contact: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				formatter.StyleGreen.Render("✔"), c.Display, domain.InternationalPhone(c.Phone))
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "User id")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newContactsEditCmd(app *App) *cobra.Command {
	var userID int64
	var pos int

	cmd := &cobra.Command{
		Use:   "edit NAME PHONE",
		Short: "Replace the contact at a position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			old, err := app.Store.ReplaceAt(cmd.Context(), userID, pos-1, args[0], args[1])
			if err != nil {
				return fmt.Errorf("editing contact %d: %w", pos, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s → %s\n",
				formatter.StyleGreen.Render("✔"), old.Display, args[0])
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "User id")
	cmd.Flags().IntVar(&pos, "pos", 0, "Stored position (1-based)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pos")

	return cmd
}

func newContactsRemoveCmd(app *App) *cobra.Command {
	var userID int64
	var pos int
	var batch bool

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove the contact at a position, or exact name/number pairs read from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if batch {
				return removeBatch(cmd, app, userID)
			}
			c, err := app.Store.RemoveAt(cmd.Context(), userID, pos-1)
			if err != nil {
				return fmt.Errorf("removing contact %d: %w", pos, err)
			}
			fmt.Fprintf(out, "%s %s\n", formatter.StyleRed.Render("✖"), c.Display)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "User id")
	cmd.Flags().IntVar(&pos, "pos", 0, "Stored position (1-based)")
	cmd.Flags().BoolVar(&batch, "batch", false, "Read name/number line pairs from stdin")
	_ = cmd.MarkFlagRequired("user")
	cmd.MarkFlagsMutuallyExclusive("pos", "batch")
	cmd.MarkFlagsOneRequired("pos", "batch")

	return cmd
}

func removeBatch(cmd *cobra.Command, app *App, userID int64) error {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading pairs: %w", err)
	}
	entries, err := bulkparse.ParseRemoval(string(data))
	if err != nil {
		return err
	}
	n := app.Store.RemoveBatch(cmd.Context(), userID, entries)
	fmt.Fprintf(cmd.OutOrStdout(), "%d de %d removidos\n", n, len(entries))
	return nil
}

func newContactsClearCmd(app *App) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every contact of a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Store.Clear(cmd.Context(), userID)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Lista apagada."))
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "User id")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newContactsSearchCmd(app *App) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Find contacts whose name contains QUERY",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches := app.Store.Search(cmd.Context(), userID, args[0])
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMatches(args[0], matches))
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "User id")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
