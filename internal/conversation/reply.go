package conversation

import "github.com/alexanderramin/savecnt/internal/export"

// Input is one thing a user sent: either free text or the tag of a pressed
// button. Tag wins when both are set.
type Input struct {
	Text string
	Tag  string
}

// TextInput wraps a typed message.
func TextInput(text string) Input { return Input{Text: text} }

// ActionInput wraps a button press or command.
func ActionInput(a Action) Input { return Input{Tag: a.Tag()} }

// TagInput wraps a raw callback tag, which may be unknown.
func TagInput(tag string) Input { return Input{Tag: tag} }

// IsAction reports whether the input is a button press.
func (in Input) IsAction() bool { return in.Tag != "" }

// RefKind names a message whose id is remembered for later edits.
type RefKind int

const (
	RefNone RefKind = iota
	RefList
	RefHelp
)

// Button is one inline keyboard button.
type Button struct {
	Label string
	Tag   string
}

// Message is one outgoing message. With Documents set, Text is the caption
// of a single document; several documents are sent as one group and Text is
// ignored.
type Message struct {
	Text      string
	Markdown  bool
	Keyboard  [][]Button
	Documents []export.Document
	// Edit asks the transport to replace the message holding the pressed
	// button instead of sending a new one.
	Edit  bool
	Track RefKind
}

// Reply is everything a transport must do in response to one Input.
type Reply struct {
	Messages []Message
	// DeleteSource removes the message holding the pressed button.
	DeleteSource bool
}

func (r *Reply) add(m Message) {
	r.Messages = append(r.Messages, m)
}

func (r *Reply) say(text string) {
	r.add(Message{Text: text})
}

func (r *Reply) edit(text string, keyboard ...[]Button) {
	r.add(Message{Text: text, Keyboard: keyboard, Edit: true})
}

// Texts returns the text of every message, for logs and tests.
func (r Reply) Texts() []string {
	out := make([]string, 0, len(r.Messages))
	for _, m := range r.Messages {
		out = append(out, m.Text)
	}
	return out
}

func row(buttons ...Button) []Button { return buttons }
