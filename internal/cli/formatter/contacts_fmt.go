package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/savecnt/internal/domain"
	"github.com/alexanderramin/savecnt/internal/presenter"
)

// FormatContactList renders a user's contacts in the given view order with a
// category summary underneath.
func FormatContactList(userID int64, contacts []domain.Contact, mode domain.SortMode) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Contatos de %d", userID)) + "\n")
	b.WriteString(SortBadge(mode) + "\n\n")

	if len(contacts) == 0 {
		b.WriteString(Dim("Nenhum contato adicionado ainda.") + "\n")
		return b.String()
	}

	view := presenter.SortView(contacts, mode)
	rows := make([][]string, 0, len(view))
	for i, c := range view {
		rows = append(rows, []string{
			Dim(strconv.Itoa(i + 1)),
			StyleFg.Render(c.Name()),
			CategoryBadge(c.Category()),
			StyleGreen.Render(domain.InternationalPhone(c.Phone)),
		})
	}
	b.WriteString(RenderTable([]string{"#", "NOME", "CATEGORIA", "NÚMERO"}, rows))
	b.WriteString("\n")
	b.WriteString(FormatStats(len(view), presenter.GroupByCategory(view)))
	return b.String()
}

// FormatStats renders the total and per-category counts.
func FormatStats(total int, groups []presenter.CategoryCount) string {
	var b strings.Builder
	b.WriteString(Bold(fmt.Sprintf("Total: %d", total)) + "\n")
	for _, g := range groups {
		b.WriteString(fmt.Sprintf("  %s %s\n", CategoryBadge(g.Category), Dim(strconv.Itoa(g.Count))))
	}
	return b.String()
}

// FormatUsers renders one row per stored user.
func FormatUsers(records []*domain.UserRecord) string {
	if len(records) == 0 {
		return Dim("Nenhum usuário registrado.") + "\n"
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			Bold(strconv.FormatInt(r.UserID, 10)),
			strconv.Itoa(len(r.Contacts)),
			SortBadge(r.Sort),
			ModeBadge(r.Mode().Kind()),
		})
	}
	return RenderTable([]string{"USUÁRIO", "CONTATOS", "ORDEM", "ESTADO"}, rows)
}

// FormatExported lists files written by an export.
func FormatExported(paths []string) string {
	var b strings.Builder
	for _, p := range paths {
		b.WriteString(StyleGreen.Render("✔ ") + p + "\n")
	}
	return b.String()
}

// FormatMatches renders search results numbered by their stored position,
// the position the edit and remove commands take.
func FormatMatches(query string, matches []domain.Match) string {
	if len(matches) == 0 {
		return Dim(fmt.Sprintf("Nenhum contato contém %q.", query)) + "\n"
	}
	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []string{
			Dim(strconv.Itoa(m.Index + 1)),
			StyleFg.Render(m.Contact.Display),
			StyleGreen.Render(domain.InternationalPhone(m.Contact.Phone)),
		})
	}
	return RenderTable([]string{"POS", "CONTATO", "NÚMERO"}, rows)
}
