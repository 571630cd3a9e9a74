// Package console is a terminal chat that talks to the conversation machine
// directly, without a bot transport in between.
package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/savecnt/internal/cli/formatter"
	"github.com/alexanderramin/savecnt/internal/conversation"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler answers one user input.
type Handler interface {
	Handle(ctx context.Context, userID int64, in conversation.Input) (conversation.Reply, error)
}

const inputHeight = 3

// Model is the bubbletea model of the chat console.
type Model struct {
	ctx       context.Context
	handler   Handler
	userID    int64
	exportDir string

	input    textarea.Model
	log      viewport.Model
	entries  []string
	buttons  []conversation.Button
	busy     bool
	quitting bool
}

// replyMsg carries a handled input back into Update.
type replyMsg struct {
	reply conversation.Reply
	saved [][]string
	err   error
}

// New creates a console for userID. Attachments are written to exportDir.
func New(ctx context.Context, handler Handler, userID int64, exportDir string) Model {
	ta := textarea.New()
	ta.Placeholder = "Mensagem, /comando ou #número do botão"
	ta.ShowLineNumbers = false
	ta.Prompt = "┃ "
	ta.CharLimit = 0
	ta.SetHeight(inputHeight)
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))
	ta.Focus()

	m := Model{
		ctx:       ctx,
		handler:   handler,
		userID:    userID,
		exportDir: exportDir,
		input:     ta,
		log:       viewport.New(80, 20),
	}
	m.appendEntry(formatter.FormatWelcome(userID))
	return m
}

// Buttons returns the buttons of the most recent keyboard.
func (m Model) Buttons() []conversation.Button { return m.buttons }

// Transcript returns every rendered entry, oldest first.
func (m Model) Transcript() string { return strings.Join(m.entries, "\n\n") }

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.SetWidth(msg.Width)
		m.log.Width = msg.Width
		m.log.Height = max(msg.Height-inputHeight-2, 1)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC, msg.Type == tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case msg.Type == tea.KeyEnter && !msg.Alt:
			return m.submit()
		case msg.Type == tea.KeyPgUp, msg.Type == tea.KeyPgDown:
			var cmd tea.Cmd
			m.log, cmd = m.log.Update(msg)
			return m, cmd
		}

	case replyMsg:
		m.busy = false
		m.showReply(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return formatter.Dim("Até mais.") + "\n"
	}
	status := formatter.Dim("enter envia · alt+enter nova linha · esc sai")
	if m.busy {
		status = formatter.StyleYellow.Render("enviando...")
	}
	return m.log.View() + "\n" + m.input.View() + "\n" + status
}

// submit sends the typed text, or the button it names.
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.busy {
		return m, nil
	}
	m.input.Reset()

	in := conversation.TextInput(text)
	echo := text
	if k, ok := buttonRef(text); ok {
		if k < 1 || k > len(m.buttons) {
			m.appendEntry(formatter.FormatError(fmt.Errorf("botão %d não existe", k)))
			return m, nil
		}
		btn := m.buttons[k-1]
		in = conversation.TagInput(btn.Tag)
		echo = fmt.Sprintf("[%d] %s", k, btn.Label)
	}

	m.appendEntry(formatter.FormatUserMessage(echo))
	m.busy = true
	return m, m.send(in)
}

// send handles the input off the update loop and writes attachments.
func (m Model) send(in conversation.Input) tea.Cmd {
	ctx, handler, userID, dir := m.ctx, m.handler, m.userID, m.exportDir
	return func() tea.Msg {
		reply, err := handler.Handle(ctx, userID, in)
		if err != nil {
			return replyMsg{err: err}
		}
		saved, err := saveDocuments(dir, reply)
		return replyMsg{reply: reply, saved: saved, err: err}
	}
}

func (m *Model) showReply(msg replyMsg) {
	if msg.reply.DeleteSource {
		m.buttons = nil
	}
	for i, out := range msg.reply.Messages {
		switch {
		case len(out.Documents) > 0:
			caption := out.Text
			for _, path := range msg.saved[i] {
				m.appendEntry(formatter.FormatAttachment(path, caption))
				caption = ""
			}
		default:
			if len(out.Keyboard) > 0 {
				m.buttons = flatten(out.Keyboard)
			}
			m.appendEntry(formatter.FormatBotMessage(out, 1))
		}
	}
	if msg.err != nil {
		m.appendEntry(formatter.FormatError(msg.err))
	}
}

func (m *Model) appendEntry(s string) {
	m.entries = append(m.entries, s)
	m.refresh()
}

func (m *Model) refresh() {
	m.log.SetContent(m.Transcript())
	m.log.GotoBottom()
}

// buttonRef parses "#k".
func buttonRef(text string) (int, bool) {
	digits, ok := strings.CutPrefix(text, "#")
	if !ok || digits == "" {
		return 0, false
	}
	k, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return k, true
}

func flatten(rows [][]conversation.Button) []conversation.Button {
	var out []conversation.Button
	for _, r := range rows {
		out = append(out, r...)
	}
	return out
}
