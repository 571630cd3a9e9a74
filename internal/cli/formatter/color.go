package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/savecnt/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SortBadge labels the list order the way the sort toggle button does.
func SortBadge(mode domain.SortMode) string {
	if mode == domain.SortAlphabetical {
		return StyleBlue.Render("▲ Ordem ABCD")
	}
	return StyleDim.Render("● Padrão")
}

// ModeBadge shows which operation a user's next message will feed.
func ModeBadge(kind domain.ModeKind) string {
	switch kind {
	case domain.ModeIdle, "":
		return StyleDim.Render("○ idle")
	case domain.ModeAwaitingWipeConfirmation, domain.ModeConfirmingRemove:
		return StyleYellow.Render("● " + string(kind))
	case domain.ModeRemovingBatch, domain.ModeAwaitingRemoveName, domain.ModeSelectingRemoveTarget:
		return StyleRed.Render("● " + string(kind))
	default:
		return StyleGreen.Render("● " + string(kind))
	}
}

// CategoryBadge renders a category, dimming the fallback one.
func CategoryBadge(category string) string {
	if category == domain.DefaultCategory {
		return StyleDim.Render(category)
	}
	return StylePurple.Render(category)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
