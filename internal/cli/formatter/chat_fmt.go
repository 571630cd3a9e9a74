package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/savecnt/internal/conversation"
	"github.com/charmbracelet/lipgloss"
)

var (
	botBubble = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBlue).
			Padding(0, 1)
	userBubble = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGreen).
			Padding(0, 1)
)

// FormatWelcome renders the banner shown when the chat console opens.
func FormatWelcome(userID int64) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(StylePurple.Render("  savecnt") + Dim(fmt.Sprintf("  usuário %d", userID)) + "\n")
	b.WriteString(Dim("  ─────────────────────────────") + "\n\n")
	b.WriteString("  " + StyleGreen.Render("enter") + Dim("        envia a mensagem") + "\n")
	b.WriteString("  " + StyleGreen.Render("alt+enter") + Dim("    nova linha") + "\n")
	b.WriteString("  " + StyleGreen.Render("#k") + Dim("           aperta o botão k") + "\n")
	b.WriteString("  " + StyleGreen.Render("/ajuda") + Dim("       comandos do bot") + "\n")
	b.WriteString("  " + StyleGreen.Render("esc") + Dim("          sair") + "\n")
	return b.String()
}

// FormatUserMessage renders text typed by the user.
func FormatUserMessage(text string) string {
	return userBubble.Render(text)
}

// FormatBotMessage renders a bot message and numbers its keyboard buttons
// starting at first, left to right and top to bottom.
func FormatBotMessage(m conversation.Message, first int) string {
	var b strings.Builder
	if m.Edit {
		b.WriteString(Dim("(editada)") + "\n")
	}
	b.WriteString(botBubble.Render(m.Text))
	if kb := FormatKeyboard(m.Keyboard, first); kb != "" {
		b.WriteString("\n" + kb)
	}
	return b.String()
}

// FormatKeyboard renders one line per keyboard row, e.g. "[1] Sim  [2] Não".
func FormatKeyboard(rows [][]conversation.Button, first int) string {
	n := first
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		cells := make([]string, 0, len(r))
		for _, btn := range r {
			cells = append(cells, StyleYellow.Render(fmt.Sprintf("[%d]", n))+" "+btn.Label)
			n++
		}
		lines = append(lines, strings.Join(cells, "  "))
	}
	return strings.Join(lines, "\n")
}

// FormatAttachment renders a document that was written to disk.
func FormatAttachment(path, caption string) string {
	line := StylePurple.Render("📎 ") + path
	if caption != "" {
		line += "\n" + Dim(caption)
	}
	return line
}

// FormatError renders a failure line in the chat log.
func FormatError(err error) string {
	return StyleRed.Render("✖ " + err.Error())
}
