package console

import (
	"context"
	"fmt"

	"github.com/alexanderramin/savecnt/internal/conversation"
	"github.com/alexanderramin/savecnt/internal/export"
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the console full screen until the user quits or ctx ends.
func Run(ctx context.Context, handler Handler, userID int64, exportDir string) error {
	p := tea.NewProgram(New(ctx, handler, userID, exportDir),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("running console: %w", err)
	}
	return nil
}

// saveDocuments writes every attachment of reply into dir. The result is
// indexed like reply.Messages.
func saveDocuments(dir string, reply conversation.Reply) ([][]string, error) {
	saved := make([][]string, len(reply.Messages))
	for i, m := range reply.Messages {
		for _, doc := range m.Documents {
			path, err := export.WriteFile(dir, doc)
			if err != nil {
				return saved, fmt.Errorf("saving %s: %w", doc.FileName, err)
			}
			saved[i] = append(saved[i], path)
		}
	}
	return saved, nil
}
