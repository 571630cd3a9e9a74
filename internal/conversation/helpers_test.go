package conversation

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/alexanderramin/savecnt/internal/domain"
	"github.com/alexanderramin/savecnt/internal/export"
	"github.com/alexanderramin/savecnt/internal/repository"
	"github.com/alexanderramin/savecnt/internal/store"
	"github.com/alexanderramin/savecnt/internal/testutil"
	"github.com/stretchr/testify/require"
)

const testUser int64 = 1

type harness struct {
	t     *testing.T
	ctx   context.Context
	store *store.Store
	m     *Machine
	obs   *recordingObserver
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	database := testutil.NewTestDB(t)
	snaps := repository.NewSQLiteSnapshotStore(database, testutil.NewTestUoW(database))
	st := store.Open(context.Background(), snaps, nil)
	obs := &recordingObserver{}
	opts = append([]Option{WithObserver(obs)}, opts...)
	return &harness{
		t:     t,
		ctx:   context.Background(),
		store: st,
		m:     New(st, export.NewRenderer(), opts...),
		obs:   obs,
	}
}

func (h *harness) text(s string) Reply {
	h.t.Helper()
	r, err := h.m.Handle(h.ctx, testUser, TextInput(s))
	require.NoError(h.t, err)
	return r
}

func (h *harness) press(tag string) Reply {
	h.t.Helper()
	r, err := h.m.Handle(h.ctx, testUser, TagInput(tag))
	require.NoError(h.t, err)
	return r
}

func (h *harness) seed(pairs ...string) {
	h.t.Helper()
	require.Zero(h.t, len(pairs)%2)
	for i := 0; i < len(pairs); i += 2 {
		_, err := h.store.Add(h.ctx, testUser, pairs[i], pairs[i+1])
		require.NoError(h.t, err)
	}
}

func (h *harness) record() *domain.UserRecord {
	return h.store.Snapshot(h.ctx, testUser)
}

func (h *harness) mode() domain.PendingMode {
	return h.record().Mode()
}

func (h *harness) displays() []string {
	var out []string
	for _, c := range h.record().Contacts {
		out = append(out, c.Display)
	}
	return out
}

func last(r Reply) Message {
	if len(r.Messages) == 0 {
		return Message{}
	}
	return r.Messages[len(r.Messages)-1]
}

func tags(m Message) []string {
	var out []string
	for _, row := range m.Keyboard {
		for _, b := range row {
			out = append(out, b.Tag)
		}
	}
	return out
}

type recordingObserver struct {
	mu     sync.Mutex
	events []InputEvent
}

func (o *recordingObserver) ObserveInput(_ context.Context, e InputEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() InputEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

type failingRenderer struct{}

func (failingRenderer) Render(domain.ExportFormat, []domain.Contact) (export.Document, error) {
	return export.Document{}, errors.New("disk full")
}
