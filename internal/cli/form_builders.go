package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/savecnt/internal/cli/formatter"
	"github.com/alexanderramin/savecnt/internal/config"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is the operator's pick in the process menu.
type MenuChoice int

const (
	ChoiceExit MenuChoice = iota
	ChoiceLogout
)

var errInvalidToken = errors.New("token inválido: deve conter ':'")

func huhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateToken(s string) error {
	if !config.ValidToken(strings.TrimSpace(s)) {
		return errInvalidToken
	}
	return nil
}

// menuForm offers Logout and shutdown while the bot runs.
func menuForm(choice *MenuChoice) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[MenuChoice]().
				Title("Bot em execução").
				Description("Escolha uma opção").
				Options(
					huh.NewOption("Logout", ChoiceLogout),
					huh.NewOption("Encerrar programa", ChoiceExit),
				).
				Value(choice),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}

// tokenForm asks for a bot token, masked.
func tokenForm(token *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Token do bot").
				Description("Crie um bot com o @BotFather e cole o token aqui").
				Placeholder("123456:ABC-DEF").
				EchoMode(huh.EchoModePassword).
				Validate(validateToken).
				Value(token),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}

func runMenu(ctx context.Context) (MenuChoice, error) {
	choice := ChoiceExit
	if err := menuForm(&choice).RunWithContext(ctx); err != nil {
		return ChoiceExit, err
	}
	return choice, nil
}

func runTokenPrompt(ctx context.Context) (string, error) {
	var token string
	if err := tokenForm(&token).RunWithContext(ctx); err != nil {
		return "", err
	}
	return strings.TrimSpace(token), nil
}
