package domain

// ModeKind names a PendingMode variant. The values are persisted.
type ModeKind string

const (
	ModeIdle                     ModeKind = "idle"
	ModeSelectingEditTarget      ModeKind = "selecting_edit_target"
	ModeEditingContact           ModeKind = "editing_contact"
	ModeAwaitingRemoveName       ModeKind = "awaiting_remove_name"
	ModeSelectingRemoveTarget    ModeKind = "selecting_remove_target"
	ModeConfirmingRemove         ModeKind = "confirming_remove"
	ModeRemovingBatch            ModeKind = "removing_batch"
	ModeAwaitingWipeConfirmation ModeKind = "awaiting_wipe_confirmation"
)

// PendingMode is the single operation a user's next input is interpreted
// against. The interface is sealed: only the variants below implement it.
// Variants are values and are replaced, never mutated in place.
type PendingMode interface {
	Kind() ModeKind
	pendingMode()
}

// Idle means no operation is pending: text is read as new contacts.
type Idle struct{}

// SelectingEditTarget waits for a name query, or for a pick among
// Candidates when a previous query was ambiguous.
type SelectingEditTarget struct {
	Candidates []Target
}

// EditingContact waits for the "name[ - category]\nphone" payload.
type EditingContact struct {
	Target Target
}

// AwaitingRemoveName waits for the name query of a single removal.
type AwaitingRemoveName struct{}

// SelectingRemoveTarget waits for a pick among ambiguous removal matches.
type SelectingRemoveTarget struct {
	Candidates []Target
}

// ConfirmingRemove waits for the yes/no of a single removal.
type ConfirmingRemove struct {
	Target Target
}

// RemovingBatch accumulates exact (display, phone) pairs until confirmed.
type RemovingBatch struct {
	Entries []BatchEntry
}

// AwaitingWipeConfirmation is entered after every export and asks whether
// the list should be emptied.
type AwaitingWipeConfirmation struct{}

func (Idle) Kind() ModeKind                     { return ModeIdle }
func (SelectingEditTarget) Kind() ModeKind      { return ModeSelectingEditTarget }
func (EditingContact) Kind() ModeKind           { return ModeEditingContact }
func (AwaitingRemoveName) Kind() ModeKind       { return ModeAwaitingRemoveName }
func (SelectingRemoveTarget) Kind() ModeKind    { return ModeSelectingRemoveTarget }
func (ConfirmingRemove) Kind() ModeKind         { return ModeConfirmingRemove }
func (RemovingBatch) Kind() ModeKind            { return ModeRemovingBatch }
func (AwaitingWipeConfirmation) Kind() ModeKind { return ModeAwaitingWipeConfirmation }

func (Idle) pendingMode()                     {}
func (SelectingEditTarget) pendingMode()      {}
func (EditingContact) pendingMode()           {}
func (AwaitingRemoveName) pendingMode()       {}
func (SelectingRemoveTarget) pendingMode()    {}
func (ConfirmingRemove) pendingMode()         {}
func (RemovingBatch) pendingMode()            {}
func (AwaitingWipeConfirmation) pendingMode() {}

// Target points at a contact by position and by stable id. The index is
// what buttons carry; the id detects that the position went stale.
type Target struct {
	Index     int
	ContactID string
}

// TargetOf captures a search match.
func TargetOf(m Match) Target {
	return Target{Index: m.Index, ContactID: m.Contact.ID}
}

// Resolve returns the current position of the targeted contact. The cached
// index is used when it still holds the same contact; otherwise the id is
// looked up. ok is false when the contact no longer exists.
func (t Target) Resolve(contacts []Contact) (int, bool) {
	if t.Index >= 0 && t.Index < len(contacts) && contacts[t.Index].ID == t.ContactID {
		return t.Index, true
	}
	for i, c := range contacts {
		if c.ID == t.ContactID {
			return i, true
		}
	}
	return -1, false
}

// FindCandidate returns the candidate offered under index, if any.
func FindCandidate(candidates []Target, index int) (Target, bool) {
	for _, c := range candidates {
		if c.Index == index {
			return c, true
		}
	}
	return Target{}, false
}

// BatchEntry is one (display, phone) pair queued for batch removal.
type BatchEntry struct {
	Display string
	Phone   string
}
