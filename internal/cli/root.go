package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/alexanderramin/savecnt/internal/config"
	"github.com/alexanderramin/savecnt/internal/conversation"
	"github.com/alexanderramin/savecnt/internal/export"
	"github.com/alexanderramin/savecnt/internal/store"
	"github.com/alexanderramin/savecnt/internal/transport/telegram"
	"github.com/spf13/cobra"
)

// Connector opens a bot API client for token and reports the bot's user name.
type Connector func(token string) (telegram.API, string, error)

// App holds everything the commands need.
type App struct {
	Config   config.Config
	Store    *store.Store
	Machine  *conversation.Machine
	Renderer *export.Renderer
	Logger   *slog.Logger

	Connect Connector

	// IsInteractive reports whether stdin is a terminal. Without one, run
	// never prompts and stops only on a signal.
	IsInteractive func() bool

	// Menu and PromptToken default to huh forms.
	Menu        func(ctx context.Context) (MenuChoice, error)
	PromptToken func(ctx context.Context) (string, error)
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

func (app *App) menu(ctx context.Context) (MenuChoice, error) {
	if app.Menu != nil {
		return app.Menu(ctx)
	}
	return runMenu(ctx)
}

func (app *App) promptToken(ctx context.Context) (string, error) {
	if app.PromptToken != nil {
		return app.PromptToken(ctx)
	}
	return runTokenPrompt(ctx)
}

func (app *App) logger() *slog.Logger {
	if app.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return app.Logger
}

// NewRootCmd creates the top-level "savecnt" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "savecnt",
		Short:         "Telegram bot that turns pasted name/number pairs into contact files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRunCmd(app),
		newChatCmd(app),
		newContactsCmd(app),
		newUsersCmd(app),
		newTokenCmd(app),
	)

	return root
}
