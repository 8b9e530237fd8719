package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mHappah3019/fittracker-sub000/internal/engine"
)

func RunBoard(ctx context.Context, svc *engine.Service, username string, out io.Writer) error {
	m := newBoardModel(ctx, svc, username)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
