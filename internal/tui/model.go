package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mHappah3019/fittracker-sub000/internal/engine"
	"github.com/mHappah3019/fittracker-sub000/internal/storage"
	"github.com/mHappah3019/fittracker-sub000/internal/ui"
)

type boardModel struct {
	ctx      context.Context
	svc      *engine.Service
	username string

	width  int
	height int

	user   *storage.User
	habits []storage.Habit

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	user   *storage.User
	habits []storage.Habit
	err    error
}

type completedMsg struct {
	name string
	res  *engine.CompletionResult
	err  error
}

type startupMsg struct {
	res *engine.LifePointsResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service, username string) boardModel {
	return boardModel{
		ctx:      ctx,
		svc:      svc,
		username: username,
		loading:  true,
		lastLog:  "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.startupCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		u, err := m.svc.UserRepo().GetOrCreate(m.ctx, m.username)
		if err != nil {
			return loadedMsg{err: err}
		}
		habits, err := m.svc.HabitRepo().ListByUser(m.ctx, u.ID)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{user: u, habits: habits}
	}
}

// startupCmd runs the once-per-day life-point reconciliation before the
// first load so the board never shows stale points.
func (m boardModel) startupCmd() tea.Cmd {
	return func() tea.Msg {
		u, err := m.svc.UserRepo().GetOrCreate(m.ctx, m.username)
		if err != nil {
			return startupMsg{err: err}
		}
		res, err := m.svc.HandleApplicationStartup(m.ctx, u.ID)
		return startupMsg{res: res, err: err}
	}
}

func (m boardModel) completeCmd(habitID, name string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteHabit(m.ctx, habitID, m.user.ID)
		return completedMsg{name: name, res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case startupMsg:
		if msg.err != nil {
			m.loading = false
			m.err = msg.err
			return m, nil
		}
		if msg.res != nil {
			m.lastLog = fmt.Sprintf("Daily check-in: life %d → %d.", msg.res.OldLifePoints, msg.res.NewLifePoints)
			if msg.res.LevelDecreased {
				m.lastLog += " " + ui.BadgeLevelDown
			}
		}
		return m, m.loadCmd()
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.user = msg.user
		m.habits = msg.habits
		if m.selected >= len(m.habits) {
			m.selected = len(m.habits) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, engine.ErrAlreadyCompletedToday) {
				m.lastLog = fmt.Sprintf("%s is already done today.", msg.name)
			} else {
				m.lastLog = "Complete failed: " + msg.err.Error()
			}
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Completed %s: +%.1f XP, streak %d", msg.name, msg.res.XPGained, msg.res.Streak)
		if msg.res.NewLevel > 0 {
			m.lastLog += " " + ui.BadgeLevelUp
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.habits)-1 {
				m.selected++
			}
			return m, nil
		case "enter", "c", " ":
			if m.user == nil || m.selected < 0 || m.selected >= len(m.habits) {
				return m, nil
			}
			h := m.habits[m.selected]
			m.lastLog = fmt.Sprintf("Completing %s…", h.Name)
			return m, m.completeCmd(h.ID, h.Name)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading {
		return "Loading…\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderHabits())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m boardModel) renderHeader() string {
	if m.user == nil {
		return ui.Panel.Render("No user loaded.")
	}
	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconSparkle, m.user.Username) + "\n")
	b.WriteString(ui.LabelValue("Level", m.user.Level) + "  ")
	b.WriteString(ui.LabelValue("XP", fmt.Sprintf("%.1f", m.user.XPTotal)) + "\n")
	b.WriteString(ui.LabelValue("Life", ui.LifeBar(m.user.LifePoints)))
	if m.svc.Event().Active {
		b.WriteString("\n" + ui.Gold.Render(ui.IconEvent+" XP event active!"))
	}
	return ui.Panel.Render(b.String())
}

func (m boardModel) renderHabits() string {
	if len(m.habits) == 0 {
		return ui.Muted.Render("No habits yet. Add one with: fit add \"Drink water\" -d easy")
	}

	var rows []string
	for i, h := range m.habits {
		row := fmt.Sprintf("%s %-30s %-8s %s",
			ui.IconHabit, clamp(h.Name, 30), ui.DifficultyText(h.Difficulty), ui.StreakText(h.CurrentStreak))
		if h.TargetStreak != nil {
			row += ui.Muted.Render(fmt.Sprintf(" /%d", *h.TargetStreak))
		}
		if i == m.selected {
			row = ui.SelectedRow.Render("> " + row)
		} else {
			row = "  " + row
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func (m boardModel) renderFooter() string {
	help := ui.Muted.Render("↑/↓ select · enter complete · r refresh · q quit")
	return help + "\n" + m.lastLog
}

func clamp(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
