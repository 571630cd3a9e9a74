package conversation

import (
	"fmt"

	"github.com/alexanderramin/savecnt/internal/domain"
)

func (m *Machine) handleAction(r *domain.UserRecord, a Action) Reply {
	switch a.Kind {
	case ActionStart:
		var reply Reply
		reply.say(fmt.Sprintf(msgWelcomeFmt, len(r.Contacts)))
		return reply
	case ActionHelp:
		return helpReply(0, false)
	case ActionHelpPage:
		return helpReply(a.Arg, true)
	case ActionWipe:
		r.Reset()
		var reply Reply
		reply.say(msgWiped)
		return reply
	}

	// Everything below works on an existing list.
	if len(r.Contacts) == 0 && needsContacts[a.Kind] {
		var reply Reply
		reply.add(Message{Text: msgNoContacts, Edit: isButton(a.Kind)})
		return reply
	}

	switch a.Kind {
	case ActionList:
		return m.listReply(r, 0, false)
	case ActionListPage:
		return m.listReply(r, a.Arg, true)
	case ActionSetSort:
		r.SetSort(a.Sort)
		return m.listReply(r, a.Arg, true)
	case ActionShowContacts:
		reply := m.listReply(r, 0, false)
		reply.DeleteSource = true
		return reply

	case ActionExport:
		return exportMenu()
	case ActionExportFormat:
		return m.exportOne(r, a.Format)
	case ActionExportAll:
		return m.exportAll(r)

	case ActionRemove:
		return removeMenu()
	case ActionBeginRemoveOne:
		return enter(r, domain.AwaitingRemoveName{}, msgAskRemoveName)
	case ActionRemoveAnother:
		return enter(r, domain.AwaitingRemoveName{}, msgAskNextRemove)
	case ActionPickRemove:
		return pickForRemoval(r, a.Arg)
	case ActionConfirmRemove:
		return confirmRemoval(r)
	case ActionDeclineRemove:
		return cancelIf[domain.ConfirmingRemove](r, msgRemoveCanceled)
	case ActionCancelRemovePick:
		return cancelIf[domain.SelectingRemoveTarget](r, msgRemoveCanceled)

	case ActionBeginRemoveBatch:
		return enter(r, domain.RemovingBatch{}, msgBatchPrompt)
	case ActionConfirmBatch:
		return confirmBatch(r)
	case ActionContinueBatch:
		var reply Reply
		if _, ok := r.Mode().(domain.RemovingBatch); !ok {
			reply.edit(msgStale)
			return reply
		}
		reply.edit(msgBatchMore)
		return reply
	case ActionCancelBatch:
		return cancelIf[domain.RemovingBatch](r, msgBatchCanceled)

	case ActionEdit:
		r.SetPending(domain.SelectingEditTarget{})
		var reply Reply
		reply.say(msgAskEditName)
		return reply
	case ActionEditAnother:
		return enter(r, domain.SelectingEditTarget{}, msgAskEditName)
	case ActionPickEdit:
		return pickForEdit(r, a.Arg)
	case ActionCancelEdit:
		var reply Reply
		switch r.Mode().(type) {
		case domain.SelectingEditTarget, domain.EditingContact:
			r.SetPending(domain.Idle{})
		}
		reply.edit(msgEditCanceled)
		return reply

	case ActionAddContacts:
		return enter(r, domain.Idle{}, msgAddPrompt)
	}

	var reply Reply
	reply.edit(msgUnknownAction)
	return reply
}

// needsContacts lists the actions answered with msgNoContacts on an empty
// list.
var needsContacts = map[ActionKind]bool{
	ActionList: true, ActionListPage: true, ActionSetSort: true, ActionShowContacts: true,
	ActionExport: true, ActionExportFormat: true, ActionExportAll: true,
	ActionRemove: true, ActionEdit: true,
}

func isButton(k ActionKind) bool {
	for _, c := range commands {
		if c == k {
			return false
		}
	}
	return true
}

// enter switches to mode and edits the button message into prompt.
func enter(r *domain.UserRecord, mode domain.PendingMode, prompt string) Reply {
	r.SetPending(mode)
	var reply Reply
	reply.edit(prompt)
	return reply
}

// cancelIf returns to Idle when the user is in mode M. The confirmation text
// is shown either way since the button is gone after the press.
func cancelIf[M domain.PendingMode](r *domain.UserRecord, text string) Reply {
	if _, ok := r.Mode().(M); ok {
		r.SetPending(domain.Idle{})
	}
	var reply Reply
	reply.edit(text)
	return reply
}

func pickForRemoval(r *domain.UserRecord, index int) Reply {
	var reply Reply
	mode, ok := r.Mode().(domain.SelectingRemoveTarget)
	if !ok {
		reply.edit(msgStale)
		return reply
	}
	target, ok := domain.FindCandidate(mode.Candidates, index)
	if !ok {
		reply.edit(msgStale)
		return reply
	}
	idx, ok := target.Resolve(r.Contacts)
	if !ok {
		r.SetPending(domain.Idle{})
		reply.edit(msgTargetGone)
		return reply
	}
	target.Index = idx
	r.SetPending(domain.ConfirmingRemove{Target: target})
	reply.edit(fmt.Sprintf(msgConfirmPickFmt, r.Contacts[idx]),
		row(Button{lblYesCheck, string(ActionConfirmRemove)}),
		row(Button{lblNoX, string(ActionDeclineRemove)}),
	)
	return reply
}

func confirmRemoval(r *domain.UserRecord) Reply {
	var reply Reply
	mode, ok := r.Mode().(domain.ConfirmingRemove)
	if !ok {
		reply.edit(msgStale)
		return reply
	}
	r.SetPending(domain.Idle{})
	idx, ok := mode.Target.Resolve(r.Contacts)
	if !ok {
		reply.edit(msgTargetGone)
		return reply
	}
	removed, err := r.RemoveAt(idx)
	if err != nil {
		reply.edit(msgTargetGone)
		return reply
	}
	reply.edit(fmt.Sprintf(msgRemovedFmt, removed),
		row(Button{lblRemoveNext, string(ActionRemoveAnother)}),
		row(Button{lblShowContacts, string(ActionShowContacts)}),
	)
	return reply
}

func confirmBatch(r *domain.UserRecord) Reply {
	var reply Reply
	mode, ok := r.Mode().(domain.RemovingBatch)
	if !ok {
		reply.edit(msgStale)
		return reply
	}
	n := r.RemoveBatch(mode.Entries)
	r.SetPending(domain.Idle{})
	reply.edit(fmt.Sprintf(msgBatchDoneFmt, n))
	return reply
}

func pickForEdit(r *domain.UserRecord, index int) Reply {
	var reply Reply
	mode, ok := r.Mode().(domain.SelectingEditTarget)
	if !ok {
		reply.edit(msgStale)
		return reply
	}
	target, ok := domain.FindCandidate(mode.Candidates, index)
	if !ok {
		reply.edit(msgStale)
		return reply
	}
	idx, ok := target.Resolve(r.Contacts)
	if !ok {
		r.SetPending(domain.Idle{})
		reply.edit(msgTargetGone)
		return reply
	}
	target.Index = idx
	r.SetPending(domain.EditingContact{Target: target})
	reply.edit(fmt.Sprintf(msgEditingFmt, r.Contacts[idx]))
	return reply
}
