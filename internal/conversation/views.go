package conversation

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/savecnt/internal/domain"
	"github.com/alexanderramin/savecnt/internal/export"
	"github.com/alexanderramin/savecnt/internal/presenter"
)

func helpReply(page int, edit bool) Reply {
	page = presenter.ClampPage(page, len(helpPages))
	var nav []Button
	if page > 0 {
		nav = append(nav, Button{lblPrev, Action{Kind: ActionHelpPage, Arg: page - 1}.Tag()})
	}
	if page < len(helpPages)-1 {
		nav = append(nav, Button{lblNext, Action{Kind: ActionHelpPage, Arg: page + 1}.Tag()})
	}
	msg := Message{Text: helpPages[page], Markdown: true, Edit: edit}
	if len(nav) > 0 {
		msg.Keyboard = [][]Button{nav}
	}
	if !edit {
		msg.Track = RefHelp
	}
	var reply Reply
	reply.add(msg)
	return reply
}

// listReply renders one page of the list view. Pages from stale buttons are
// clamped into range.
func (m *Machine) listReply(r *domain.UserRecord, page int, edit bool) Reply {
	view := presenter.SortView(r.Contacts, r.Sort)
	total := presenter.TotalPages(len(view), m.pageSize)
	page = presenter.ClampPage(page, total)
	items, _ := presenter.Paginate(view, page, m.pageSize)

	var b strings.Builder
	fmt.Fprintf(&b, msgStatsTotalFmt, len(view))
	for _, cc := range presenter.GroupByCategory(view) {
		fmt.Fprintf(&b, "- %s: %d\n", cc.Category, cc.Count)
	}
	fmt.Fprintf(&b, msgListHeadFmt, page+1, total)
	lines := make([]string, len(items))
	for i, c := range items {
		lines[i] = "- " + c.String()
	}
	b.WriteString(strings.Join(lines, "\n"))

	label := lblSortAlpha
	if r.Sort == domain.SortAlphabetical {
		label = lblSortDefault
	}
	kb := [][]Button{row(Button{label, Action{Kind: ActionSetSort, Sort: r.Sort.Toggle(), Arg: page}.Tag()})}
	if total > 1 {
		var nav []Button
		if page > 0 {
			nav = append(nav, Button{lblPrev, Action{Kind: ActionListPage, Arg: page - 1}.Tag()})
		}
		if page < total-1 {
			nav = append(nav, Button{lblNext, Action{Kind: ActionListPage, Arg: page + 1}.Tag()})
		}
		kb = append(kb, nav)
	}

	var reply Reply
	reply.add(Message{Text: b.String(), Keyboard: kb, Edit: edit, Track: RefList})
	return reply
}

func exportMenu() Reply {
	var reply Reply
	reply.add(Message{Text: msgExportMenu, Keyboard: [][]Button{
		row(Button{lblVCF, Action{Kind: ActionExportFormat, Format: domain.FormatVCF}.Tag()}),
		row(Button{lblCSV, Action{Kind: ActionExportFormat, Format: domain.FormatCSV}.Tag()}),
		row(Button{lblJSON, Action{Kind: ActionExportFormat, Format: domain.FormatJSON}.Tag()}),
		row(Button{lblAll, string(ActionExportAll)}),
	}})
	return reply
}

func removeMenu() Reply {
	var reply Reply
	reply.add(Message{Text: msgRemoveMenu, Keyboard: [][]Button{
		row(Button{lblRemoveOne, string(ActionBeginRemoveOne)}),
		row(Button{lblRemoveBatch, string(ActionBeginRemoveBatch)}),
	}})
	return reply
}

// exportOne sends one file. Any successful export moves the user to the
// wipe question; a render failure leaves the mode alone.
func (m *Machine) exportOne(r *domain.UserRecord, format domain.ExportFormat) Reply {
	doc, err := m.renderer.Render(format, r.Contacts)
	if err != nil {
		var reply Reply
		reply.edit(msgRenderFailed)
		return reply
	}
	reply := Reply{DeleteSource: true}
	reply.add(Message{Text: exportCaptions[string(format)], Documents: []export.Document{doc}})
	askWipe(r, &reply)
	return reply
}

func (m *Machine) exportAll(r *domain.UserRecord) Reply {
	docs := make([]export.Document, 0, len(domain.ExportFormats))
	for _, f := range domain.ExportFormats {
		doc, err := m.renderer.Render(f, r.Contacts)
		if err != nil {
			var reply Reply
			reply.edit(msgRenderFailed)
			return reply
		}
		docs = append(docs, doc)
	}
	reply := Reply{DeleteSource: true}
	reply.add(Message{Documents: docs})
	reply.say(msgExportAll)
	askWipe(r, &reply)
	return reply
}

func askWipe(r *domain.UserRecord, reply *Reply) {
	r.SetPending(domain.AwaitingWipeConfirmation{})
	reply.say(msgWipePrompt)
}
