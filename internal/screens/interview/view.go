package interview

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/talentmatch/talentmatch/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}

	switch s.phase {
	case phaseLoading:
		return renderCentered(width, "Preparing your interview...")
	case phaseGate:
		return s.renderGate(width, height)
	case phaseActive:
		return s.renderQuestion(width, height)
	case phaseFinishing:
		return renderCentered(width, "Wrapping up...")
	}
	return ""
}

// renderGate shows the pre-start briefing: role, question count, time
// budget, and the scheduled-time hold for booked interviews.
func (s *Screen) renderGate(width, height int) string {
	var b strings.Builder

	title := "Practice Interview"
	if s.mode == "scheduled" {
		title = "Scheduled Interview"
	}
	b.WriteString(theme.Title.Width(width).Render(title))
	b.WriteString("\n\n")

	var lines []string
	if s.jobRole != "" {
		lines = append(lines, fmt.Sprintf("Role         %s", s.jobRole))
	}
	lines = append(lines,
		fmt.Sprintf("Questions    %d", len(s.session.Questions)),
		fmt.Sprintf("Time limit   %s", formatDuration(s.session.Budget)),
	)
	if s.mode == "scheduled" && !s.scheduled.IsZero() {
		lines = append(lines, fmt.Sprintf("Scheduled    %s", s.scheduled.Local().Format("Mon Jan 2 15:04")))
	}

	card := theme.Card.Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	if s.startsLater() {
		wait := time.Until(s.scheduled).Round(time.Second)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render(fmt.Sprintf("Starts in %s", formatDuration(wait))))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Press Enter to begin"))
	}

	if s.note != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(s.note))
	}

	return b.String()
}

// renderQuestion shows the active question with countdown and answer box.
func (s *Screen) renderQuestion(width, height int) string {
	q, ok := s.session.CurrentQuestion()
	if !ok {
		return renderCentered(width, "Loading question...")
	}

	var b strings.Builder

	// Progress and countdown line.
	answered := len(s.session.Answers)
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", s.session.Current+1, len(s.session.Questions)))

	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if s.session.Remaining < time.Minute {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("answered %d  ", answered)) +
		timerStyle.Render(formatClock(s.session.Remaining))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Category and difficulty tag line, when the question carries them.
	if q.Category != "" || q.Difficulty != "" {
		var tags []string
		if q.Category != "" {
			tags = append(tags, q.Category)
		}
		if q.Difficulty != "" {
			tags = append(tags, string(q.Difficulty))
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(strings.Join(tags, " · ")))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.answer.View()))
	b.WriteString("\n")

	if s.evaluating {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("Scoring your answer..."))
	} else if s.note != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render(s.note))
	}

	return b.String()
}

func renderQuitConfirm(width, height int) string {
	card := theme.Card.Render(
		theme.Body.Bold(true).Render("Leave this interview?") + "\n\n" +
			theme.Hint.Render("Submitted answers are kept, unanswered\nquestions score nothing."))
	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func renderError(width int, msg string) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(theme.Bad.Width(width).Align(lipgloss.Center).Render("Something went wrong"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Render(msg))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("press any key to go back"))
	return b.String()
}

func renderCentered(width int, msg string) string {
	return "\n\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(msg)
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d >= time.Minute {
		m := int(d.Round(time.Minute).Minutes())
		return fmt.Sprintf("%d min", m)
	}
	return fmt.Sprintf("%d sec", int(d.Seconds()))
}
