package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FitTracker theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconHabit   = "🔁"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconStreak  = "🔥"
	IconHeart   = "❤️"
	IconBolt    = "⚡"
	IconGear    = "🛡️"
	IconEvent   = "🎉"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconDown    = "📉"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp   = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
	BadgeLevelDown = lipgloss.NewStyle().Bold(true).Foreground(cBad).Render("LEVEL DOWN")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// LifeBar renders life points as a 20-segment bar colored by remaining
// fraction.
func LifeBar(points int) string {
	const width = 20
	if points < 0 {
		points = 0
	}
	if points > 100 {
		points = 100
	}
	filled := points * width / 100

	style := Good
	switch {
	case points <= 25:
		style = Bad
	case points <= 50:
		style = Warn
	}
	bar := style.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %d/100", bar, points)
}

func StreakText(streak int) string {
	if streak <= 0 {
		return Muted.Render("—")
	}
	return Warn.Render(fmt.Sprintf("%s %d", IconStreak, streak))
}

func DifficultyText(d string) string {
	switch strings.ToLower(strings.TrimSpace(d)) {
	case "easy":
		return Good.Render("easy")
	case "medium":
		return Warn.Render("medium")
	case "hard":
		return Bad.Render("hard")
	default:
		return Muted.Render(d)
	}
}
