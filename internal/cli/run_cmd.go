package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/savecnt/internal/cli/formatter"
	"github.com/alexanderramin/savecnt/internal/config"
	"github.com/alexanderramin/savecnt/internal/conversation"
	"github.com/alexanderramin/savecnt/internal/transport/telegram"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newRunCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the Telegram bot",
		Long: "Start the Telegram bot. On a terminal a menu offers Logout and shutdown;\n" +
			"otherwise the bot runs until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Machine == nil || app.Connect == nil {
				return fmt.Errorf("bot is not configured")
			}
			ctx := cmd.Context()
			err := app.runBot(ctx, cmd.OutOrStdout())
			if ferr := app.Store.Flush(context.WithoutCancel(ctx)); ferr != nil {
				app.logger().Error("final_flush_failed", "error", ferr)
				err = errors.Join(err, ferr)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Bot encerrado."))
			return err
		},
	}
}

// runBot serves until shutdown is chosen or ctx ends. Logout drops the
// saved token and starts over with a freshly prompted one.
func (app *App) runBot(ctx context.Context, out io.Writer) error {
	for {
		token, err := app.token(ctx)
		if err != nil {
			return err
		}

		stop := func() {}
		if app.interactive() {
			stop = formatter.StartSpinner(out, "Conectando ao Telegram...")
		}
		api, name, err := app.Connect(token)
		stop()
		if err != nil {
			app.logger().Error("bot_connect_failed", "error", err)
			if !app.interactive() {
				return fmt.Errorf("connecting to telegram: %w", err)
			}
			fmt.Fprintln(out, formatter.FormatError(fmt.Errorf("não foi possível conectar: %w", err)))
			if err := config.RemoveToken(app.Config.TokenPath()); err != nil {
				return err
			}
			app.Config.Token = ""
			continue
		}

		fmt.Fprintln(out, formatter.FormatRunning(name, len(app.Store.UserIDs())))
		fmt.Fprintln(out, formatter.FormatCommandReference(conversation.Commands()))
		app.logger().Info("bot_started", "bot", name)

		choice, err := app.serve(ctx, api)
		if err != nil || choice != ChoiceLogout {
			return err
		}

		app.logger().Info("bot_logout", "bot", name)
		if err := config.RemoveToken(app.Config.TokenPath()); err != nil {
			return err
		}
		app.Config.Token = ""
		fmt.Fprintln(out, formatter.Dim("Token removido."))
	}
}

// serve polls until ctx ends or, on a terminal, the menu is answered.
func (app *App) serve(ctx context.Context, api telegram.API) (MenuChoice, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	bot := telegram.New(api, app.Machine,
		telegram.WithLogger(app.logger()),
		telegram.WithPollTimeout(app.Config.PollTimeout),
	)

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		return bot.Run(gctx)
	})

	choice := ChoiceExit
	if app.interactive() {
		g.Go(func() error {
			defer cancel()
			c, err := app.menu(gctx)
			if err != nil {
				if gctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("menu: %w", err)
			}
			choice = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return ChoiceExit, err
	}
	return choice, nil
}

// token returns the configured token, prompting on a terminal when none
// is saved.
func (app *App) token(ctx context.Context) (string, error) {
	token, err := app.Config.ResolveToken()
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, config.ErrNoToken) || !app.interactive() {
		return "", fmt.Errorf("resolving token: %w", err)
	}

	token, err = app.promptToken(ctx)
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}
	if err := config.SaveToken(app.Config.TokenPath(), token); err != nil {
		return "", err
	}
	return token, nil
}
