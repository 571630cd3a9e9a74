package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/savecnt/internal/conversation"
)

// FormatCommandReference renders the bot's slash commands in a box.
func FormatCommandReference(cmds []conversation.Command) string {
	var b strings.Builder
	for _, c := range cmds {
		b.WriteString(fmt.Sprintf("%-10s %s\n", StyleGreen.Render("/"+c.Name), Dim(c.Description)))
	}
	return RenderBox("Comandos", strings.TrimRight(b.String(), "\n"))
}

// FormatRunning renders the status shown while the bot is polling.
func FormatRunning(botName string, users int) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("● ") + Bold("Bot em execução"))
	if botName != "" {
		b.WriteString(Dim(" @" + botName))
	}
	b.WriteString("\n" + Dim(fmt.Sprintf("%d usuário(s) carregado(s)", users)))
	return b.String()
}
