package cli

import (
	"fmt"

	"github.com/alexanderramin/savecnt/internal/cli/formatter"
	"github.com/alexanderramin/savecnt/internal/domain"
	"github.com/alexanderramin/savecnt/internal/export"
	"github.com/spf13/cobra"
)

func newContactsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Inspect, edit and export a user's contacts",
	}

	cmd.AddCommand(
		newContactsListCmd(app),
		newContactsSearchCmd(app),
		newContactsExportCmd(app),
		newContactsAddCmd(app),
		newContactsEditCmd(app),
		newContactsRemoveCmd(app),
		newContactsClearCmd(app),
	)

	return cmd
}

func newContactsListCmd(app *App) *cobra.Command {
	var userID int64
	var sortFlag sortValue

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := app.Store.Snapshot(cmd.Context(), userID)
			mode := rec.Sort
			if sortFlag.mode != "" {
				mode = sortFlag.mode
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatContactList(userID, rec.Contacts, mode))
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "User id")
	cmd.Flags().Var(&sortFlag, "sort", "List order (default: the user's own)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newContactsExportCmd(app *App) *cobra.Command {
	var userID int64
	var outDir string
	formatFlag := formatValue{format: domain.FormatVCF}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a user's contacts to vcf, csv or json files",
		RunE: func(cmd *cobra.Command, args []string) error {
			contacts := app.Store.Contacts(cmd.Context(), userID)
			if len(contacts) == 0 {
				return fmt.Errorf("user %d has no contacts", userID)
			}

			docs, err := renderDocuments(app.Renderer, formatFlag, contacts)
			if err != nil {
				return err
			}

			dir := outDir
			if dir == "" {
				dir = app.Config.ExportDir
			}
			paths := make([]string, 0, len(docs))
			for _, doc := range docs {
				path, err := export.WriteFile(dir, doc)
				if err != nil {
					return err
				}
				paths = append(paths, path)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatExported(paths))
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "User id")
	cmd.Flags().Var(&formatFlag, "format", "Export format")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory (default: export_dir from the config)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func renderDocuments(r *export.Renderer, v formatValue, contacts []domain.Contact) ([]export.Document, error) {
	if v.all {
		return r.RenderAll(contacts)
	}
	doc, err := r.Render(v.format, contacts)
	if err != nil {
		return nil, err
	}
	return []export.Document{doc}, nil
}
