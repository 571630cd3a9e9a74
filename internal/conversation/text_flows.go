package conversation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/savecnt/internal/bulkparse"
	"github.com/alexanderramin/savecnt/internal/domain"
)

// handleText routes free text by pending mode. The post-export wipe question
// is checked before anything else so a stray "sim" never reaches another
// parser.
func (m *Machine) handleText(r *domain.UserRecord, text string) Reply {
	text = strings.TrimSpace(text)
	if _, ok := r.Mode().(domain.AwaitingWipeConfirmation); ok {
		return answerWipe(r, text)
	}

	switch mode := r.Mode().(type) {
	case domain.SelectingEditTarget:
		return searchForEdit(r, text)
	case domain.EditingContact:
		return applyEdit(r, mode, text)
	case domain.AwaitingRemoveName:
		return searchForRemoval(r, text)
	case domain.RemovingBatch:
		return extendBatch(r, mode, text)
	default:
		// Idle, and the remove disambiguation/confirmation states whose
		// buttons stay valid while the user keeps adding contacts.
		return addContacts(r, text)
	}
}

func answerWipe(r *domain.UserRecord, text string) Reply {
	var reply Reply
	switch strings.ToLower(text) {
	case "sim", "s":
		r.Clear()
		r.SetPending(domain.Idle{})
		reply.say(msgWipeDone)
	case "não", "nao", "n":
		r.SetPending(domain.Idle{})
		reply.say(msgWipeKept)
	default:
		reply.say(msgWipeReprompt)
	}
	return reply
}

func addContacts(r *domain.UserRecord, text string) Reply {
	var reply Reply
	pairs, err := bulkparse.Parse(text)
	if err != nil {
		reply.say(msgOddLines)
		return reply
	}

	summary, err := bulkparse.Apply(pairs, r.Add)
	if err != nil {
		// Add only fails with domain errors, which Apply tallies.
		reply.say(msgNoneAdded)
		return reply
	}
	for _, p := range summary.Invalid {
		reply.say(fmt.Sprintf(msgInvalidPhoneFmt, p.RawPhone))
	}

	var b strings.Builder
	if len(summary.Added) > 0 {
		fmt.Fprintf(&b, msgAddedFmt, len(summary.Added))
	} else {
		b.WriteString(msgNoneAdded)
	}
	if len(summary.Duplicates) > 0 {
		fmt.Fprintf(&b, msgDuplicatesFmt, len(summary.Duplicates))
	}
	if len(summary.Added) > 0 {
		b.WriteString(msgAddedHint)
	}
	reply.say(b.String())
	return reply
}

func searchForEdit(r *domain.UserRecord, query string) Reply {
	var reply Reply
	matches := r.Search(query)
	switch len(matches) {
	case 0:
		r.SetPending(domain.Idle{})
		reply.add(Message{Text: msgNotFound, Keyboard: [][]Button{
			row(Button{lblTryAnother, string(ActionEditAnother)}),
			row(Button{lblCancel, string(ActionCancelEdit)}),
		}})
	case 1:
		r.SetPending(domain.EditingContact{Target: domain.TargetOf(matches[0])})
		reply.say(fmt.Sprintf(msgEditingFmt, matches[0].Contact))
	default:
		r.SetPending(domain.SelectingEditTarget{Candidates: targets(matches)})
		reply.add(Message{
			Text:     msgManyToEdit,
			Keyboard: pickKeyboard(matches, ActionPickEdit, ActionCancelEdit),
		})
	}
	return reply
}

func applyEdit(r *domain.UserRecord, mode domain.EditingContact, text string) Reply {
	var reply Reply
	idx, ok := mode.Target.Resolve(r.Contacts)
	if !ok {
		r.SetPending(domain.Idle{})
		reply.say(msgTargetGone)
		return reply
	}

	lines := bulkparse.Lines(text)
	if len(lines) < 2 {
		reply.say(msgInvalidEdit)
		return reply
	}
	old, err := r.ReplaceAt(idx, lines[0], strings.TrimSpace(lines[1]))
	switch {
	case errors.Is(err, domain.ErrInvalidPhone):
		reply.say(msgInvalidPhone)
		return reply
	case errors.Is(err, domain.ErrDuplicate):
		reply.say(msgDuplicateEdit)
		return reply
	case err != nil:
		reply.say(msgInvalidEdit)
		return reply
	}

	r.SetPending(domain.Idle{})
	reply.add(Message{
		Text: fmt.Sprintf(msgEditedFmt, old, r.Contacts[idx]),
		Keyboard: [][]Button{
			row(Button{lblEditAnother, string(ActionEditAnother)}),
			row(Button{lblBackToMenu, string(ActionAddContacts)}),
		},
	})
	return reply
}

func searchForRemoval(r *domain.UserRecord, query string) Reply {
	var reply Reply
	matches := r.Search(query)
	switch len(matches) {
	case 0:
		r.SetPending(domain.Idle{})
		reply.add(Message{Text: msgNotFound, Keyboard: [][]Button{
			row(Button{lblRemoveAnother, string(ActionRemoveAnother)}),
			row(Button{lblAddContacts, string(ActionAddContacts)}),
		}})
	case 1:
		r.SetPending(domain.ConfirmingRemove{Target: domain.TargetOf(matches[0])})
		reply.add(Message{
			Text: fmt.Sprintf(msgConfirmRemoveFmt, matches[0].Contact),
			Keyboard: [][]Button{
				row(Button{lblYes, string(ActionConfirmRemove)}),
				row(Button{lblNo, string(ActionDeclineRemove)}),
			},
		})
	default:
		r.SetPending(domain.SelectingRemoveTarget{Candidates: targets(matches)})
		reply.add(Message{
			Text:     msgManyToRemove,
			Keyboard: pickKeyboard(matches, ActionPickRemove, ActionCancelRemovePick),
		})
	}
	return reply
}

func extendBatch(r *domain.UserRecord, mode domain.RemovingBatch, text string) Reply {
	var reply Reply
	entries, err := bulkparse.ParseRemoval(text)
	if err != nil {
		reply.say(msgOddLines)
		return reply
	}

	buf := make([]domain.BatchEntry, 0, len(mode.Entries)+len(entries))
	buf = append(buf, mode.Entries...)
	buf = append(buf, entries...)
	r.SetPending(domain.RemovingBatch{Entries: buf})

	lines := make([]string, len(buf))
	for i, e := range buf {
		lines[i] = fmt.Sprintf("❌ %s - %s", e.Display, e.Phone)
	}
	reply.add(Message{
		Text: fmt.Sprintf(msgBatchListFmt, strings.Join(lines, "\n")),
		Keyboard: [][]Button{
			row(Button{lblConfirmBatch, string(ActionConfirmBatch)}),
			row(Button{lblAddMore, string(ActionContinueBatch)}),
			row(Button{lblCancelX, string(ActionCancelBatch)}),
		},
	})
	return reply
}

func targets(matches []domain.Match) []domain.Target {
	out := make([]domain.Target, len(matches))
	for i, mt := range matches {
		out[i] = domain.TargetOf(mt)
	}
	return out
}

func pickKeyboard(matches []domain.Match, pick, cancel ActionKind) [][]Button {
	kb := make([][]Button, 0, len(matches)+1)
	for _, mt := range matches {
		kb = append(kb, row(Button{
			Label: mt.Contact.String(),
			Tag:   Action{Kind: pick, Arg: mt.Index}.Tag(),
		}))
	}
	return append(kb, row(Button{lblCancelX, string(cancel)}))
}
