package telegram

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/alexanderramin/savecnt/internal/conversation"
	"github.com/alexanderramin/savecnt/internal/export"
	"github.com/alexanderramin/savecnt/internal/repository"
	"github.com/alexanderramin/savecnt/internal/store"
	"github.com/alexanderramin/savecnt/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeAPI records every outgoing call.
type fakeAPI struct {
	mu       sync.Mutex
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	groups   []tgbotapi.MediaGroupConfig
	nextID   int
	sendErr  error
	updates  chan tgbotapi.Update
	stopped  bool
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{nextID: 100, updates: make(chan tgbotapi.Update, 16)}
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return tgbotapi.Message{}, f.sendErr
	}
	f.sent = append(f.sent, c)
	f.nextID++
	return tgbotapi.Message{MessageID: f.nextID}, nil
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeAPI) SendMediaGroup(c tgbotapi.MediaGroupConfig) ([]tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.groups = append(f.groups, c)
	f.nextID++
	return []tgbotapi.Message{{MessageID: f.nextID}}, nil
}

func (f *fakeAPI) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return f.updates
}

func (f *fakeAPI) StopReceivingUpdates() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeAPI) sentMessages() []tgbotapi.Chattable {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]tgbotapi.Chattable(nil), f.sent...)
}

func (f *fakeAPI) sentRequests() []tgbotapi.Chattable {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]tgbotapi.Chattable(nil), f.requests...)
}

func newMachine(t *testing.T) (*conversation.Machine, *store.Store) {
	t.Helper()
	database := testutil.NewTestDB(t)
	st := store.Open(context.Background(),
		repository.NewSQLiteSnapshotStore(database, testutil.NewTestUoW(database)), nil)
	return conversation.New(st, export.NewRenderer()), st
}

func textUpdate(user int64, text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: user},
		Chat:      &tgbotapi.Chat{ID: user},
		Text:      text,
	}}
}

func commandUpdate(user int64, cmd string) tgbotapi.Update {
	u := textUpdate(user, "/"+cmd)
	u.Message.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(cmd) + 1}}
	return u
}

func callbackUpdate(user int64, messageID int, data string) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:   "cb1",
		From: &tgbotapi.User{ID: user},
		Message: &tgbotapi.Message{
			MessageID: messageID,
			Chat:      &tgbotapi.Chat{ID: user},
		},
		Data: data,
	}}
}

func TestParseUpdate(t *testing.T) {
	ev, ok := parseUpdate(textUpdate(5, "Ana\n8299610303"))
	require.True(t, ok)
	assert.Equal(t, int64(5), ev.userID)
	assert.Equal(t, conversation.TextInput("Ana\n8299610303"), ev.input)

	ev, ok = parseUpdate(commandUpdate(5, "listar"))
	require.True(t, ok)
	assert.Equal(t, "listar", ev.input.Tag)

	ev, ok = parseUpdate(callbackUpdate(5, 77, "pagina:1"))
	require.True(t, ok)
	assert.Equal(t, 77, ev.sourceID)
	assert.Equal(t, "cb1", ev.callbackID)
	assert.Equal(t, "pagina:1", ev.input.Tag)

	_, ok = parseUpdate(commandUpdate(5, "voar"))
	assert.False(t, ok)
	_, ok = parseUpdate(tgbotapi.Update{})
	assert.False(t, ok)
}

func TestProcess_TextAddsAndReplies(t *testing.T) {
	api := newFakeAPI()
	m, st := newMachine(t)
	b := New(api, m)

	ev, _ := parseUpdate(textUpdate(5, "Ana\n8299610303"))
	b.process(context.Background(), ev)

	require.Len(t, api.sentMessages(), 1)
	msg, ok := api.sentMessages()[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(5), msg.ChatID)
	assert.Contains(t, msg.Text, "1 contato(s) adicionados")
	assert.Len(t, st.Contacts(context.Background(), 5), 1)
}

func TestProcess_ListIsTrackedAndEditedInPlace(t *testing.T) {
	api := newFakeAPI()
	m, st := newMachine(t)
	b := New(api, m)
	ctx := context.Background()
	for i := 0; i < 30; i++ {
		_, err := st.Add(ctx, 5, fmt.Sprintf("Pessoa %d", i), fmt.Sprintf("829996103%02d", i))
		require.NoError(t, err)
	}

	ev, _ := parseUpdate(commandUpdate(5, "listar"))
	b.process(ctx, ev)

	sent := api.sentMessages()
	require.Len(t, sent, 1)
	list := sent[0].(tgbotapi.MessageConfig)
	kb, ok := list.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	assert.Equal(t, "pagina:1", *kb.InlineKeyboard[1][0].CallbackData)
	assert.Equal(t, 101, st.Snapshot(ctx, 5).Refs.ListMessageID)

	ev, _ = parseUpdate(callbackUpdate(5, 101, "pagina:1"))
	b.process(ctx, ev)

	reqs := api.sentRequests()
	require.Len(t, reqs, 2)
	_, ok = reqs[0].(tgbotapi.CallbackConfig)
	assert.True(t, ok, "callback is answered first")
	edit, ok := reqs[1].(tgbotapi.EditMessageTextConfig)
	require.True(t, ok)
	assert.Equal(t, 101, edit.MessageID)
	assert.Contains(t, edit.Text, "(página 2/2)")
	require.NotNil(t, edit.ReplyMarkup)
	assert.Len(t, api.sentMessages(), 1, "no new message for a page turn")
}

func TestProcess_ExportSendsDocumentAndDeletesMenu(t *testing.T) {
	api := newFakeAPI()
	m, st := newMachine(t)
	b := New(api, m)
	ctx := context.Background()
	_, err := st.Add(ctx, 5, "Ana", "8299610303")
	require.NoError(t, err)

	ev, _ := parseUpdate(callbackUpdate(5, 42, "exportar_vcf"))
	b.process(ctx, ev)

	sent := api.sentMessages()
	require.Len(t, sent, 2)
	doc, ok := sent[0].(tgbotapi.DocumentConfig)
	require.True(t, ok)
	assert.Equal(t, "📇 Aqui estão seus contatos no formato VCF!", doc.Caption)
	file, ok := doc.File.(tgbotapi.FileBytes)
	require.True(t, ok)
	assert.Equal(t, "contatos.vcf", file.Name)
	assert.Contains(t, sent[1].(tgbotapi.MessageConfig).Text, "Deseja apagar a lista atual")

	reqs := api.sentRequests()
	del, ok := reqs[len(reqs)-1].(tgbotapi.DeleteMessageConfig)
	require.True(t, ok)
	assert.Equal(t, 42, del.MessageID)
}

func TestProcess_ExportAllSendsMediaGroup(t *testing.T) {
	api := newFakeAPI()
	m, st := newMachine(t)
	b := New(api, m)
	ctx := context.Background()
	_, err := st.Add(ctx, 5, "Ana", "8299610303")
	require.NoError(t, err)

	ev, _ := parseUpdate(callbackUpdate(5, 42, "exportar_todos"))
	b.process(ctx, ev)

	require.Len(t, api.groups, 1)
	assert.Len(t, api.groups[0].Media, 3)
	require.Len(t, api.sentMessages(), 2)
}

func TestProcess_SendFailureIsLoggedAndStateKept(t *testing.T) {
	api := newFakeAPI()
	api.sendErr = errors.New("network down")
	m, st := newMachine(t)
	b := New(api, m)

	ev, _ := parseUpdate(textUpdate(5, "Ana\n8299610303"))
	b.process(context.Background(), ev)

	assert.Len(t, st.Contacts(context.Background(), 5), 1)
}

func TestRun_StopsOnCancel(t *testing.T) {
	api := newFakeAPI()
	m, st := newMachine(t)
	b := New(api, m, WithPollTimeout(1))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()

	api.updates <- textUpdate(5, "Ana\n8299610303")
	api.updates <- textUpdate(5, "Bia\n8299610304")
	require.Eventually(t, func() bool {
		return len(st.Contacts(context.Background(), 5)) == 2
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.True(t, api.stopped)

	reqs := api.sentRequests()
	require.NotEmpty(t, reqs)
	_, ok := reqs[0].(tgbotapi.SetMyCommandsConfig)
	assert.True(t, ok)
}

func TestRun_ReturnsWhenUpdatesClose(t *testing.T) {
	api := newFakeAPI()
	m, _ := newMachine(t)
	b := New(api, m)

	close(api.updates)
	assert.NoError(t, b.Run(context.Background()))
}
