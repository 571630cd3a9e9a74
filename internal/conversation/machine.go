// Package conversation is the per-user session state machine. Every input
// from a user is routed by the user's pending mode to a flow that may mutate
// the contact list, change the mode and produce a Reply for the transport.
package conversation

import (
	"context"
	"time"

	"github.com/alexanderramin/savecnt/internal/domain"
	"github.com/alexanderramin/savecnt/internal/export"
	"github.com/alexanderramin/savecnt/internal/presenter"
)

// RecordStore gives exclusive access to one user's record for the duration
// of fn and persists it afterwards when fn changed it.
type RecordStore interface {
	Update(ctx context.Context, userID int64, fn func(r *domain.UserRecord) error) error
}

// Renderer serializes contacts for the export actions.
type Renderer interface {
	Render(format domain.ExportFormat, contacts []domain.Contact) (export.Document, error)
}

// Machine handles inputs for all users. It holds no per-user state of its
// own; everything lives in the RecordStore.
type Machine struct {
	records  RecordStore
	renderer Renderer
	observer Observer
	pageSize int
}

// Option configures a Machine.
type Option func(*Machine)

// WithPageSize sets the list page size. Non-positive values keep the default.
func WithPageSize(n int) Option {
	return func(m *Machine) {
		if n > 0 {
			m.pageSize = n
		}
	}
}

// WithObserver receives one event per handled input.
func WithObserver(o Observer) Option {
	return func(m *Machine) {
		if o != nil {
			m.observer = o
		}
	}
}

// New returns a Machine over records.
func New(records RecordStore, renderer Renderer, opts ...Option) *Machine {
	m := &Machine{
		records:  records,
		renderer: renderer,
		observer: NoopObserver{},
		pageSize: presenter.DefaultPageSize,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Handle runs one input for userID. The whole transition, including any
// mutation of the contact list, happens under the user's record lock. The
// returned error is reserved for failures outside the conversation itself;
// user mistakes are answered in the Reply.
func (m *Machine) Handle(ctx context.Context, userID int64, in Input) (reply Reply, err error) {
	ev := InputEvent{UserID: userID, StartedAt: time.Now()}
	defer func() {
		ev.Duration = time.Since(ev.StartedAt)
		ev.Err = err
		ev.Messages = len(reply.Messages)
		m.observer.ObserveInput(ctx, ev)
	}()

	err = m.records.Update(ctx, userID, func(r *domain.UserRecord) error {
		ev.ModeBefore = r.Mode().Kind()
		defer func() { ev.ModeAfter = r.Mode().Kind() }()

		if !in.IsAction() {
			if a, ok := CommandAction(in.Text); ok {
				in = ActionInput(a)
			}
		}
		if in.IsAction() {
			ev.Kind = "action"
			ev.Tag = in.Tag
			a, perr := ParseAction(in.Tag)
			if perr != nil {
				ev.Unknown = true
				reply.edit(msgUnknownAction)
				return nil
			}
			reply = m.handleAction(r, a)
			return nil
		}

		ev.Kind = "text"
		reply = m.handleText(r, in.Text)
		return nil
	})
	return reply, err
}

// TrackMessage remembers the id of a sent list or help message so later
// replies can refer to it.
func (m *Machine) TrackMessage(ctx context.Context, userID int64, kind RefKind, messageID int) error {
	return m.records.Update(ctx, userID, func(r *domain.UserRecord) error {
		refs := r.Refs
		switch kind {
		case RefList:
			refs.ListMessageID = messageID
		case RefHelp:
			refs.HelpMessageID = messageID
		default:
			return nil
		}
		r.SetRefs(refs)
		return nil
	})
}
