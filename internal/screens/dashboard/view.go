package dashboard

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/talentmatch/talentmatch/internal/api"
	"github.com/talentmatch/talentmatch/internal/identity"
	"github.com/talentmatch/talentmatch/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	var content string
	switch {
	case s.loading:
		content = theme.Hint.Render("Loading...")
	case s.booking.active:
		content = s.renderBooking()
	case s.profile.Role == identity.RoleExpert:
		content = s.renderAssignments()
	default:
		content = s.renderInterviews()
	}

	card := theme.Card.Width(min(width-4, 76)).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *Screen) renderInterviews() string {
	var b strings.Builder

	b.WriteString(theme.Body.Bold(true).Render("Hello, " + s.profile.Name))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Scheduled interviews"))
	b.WriteString("\n")
	if len(s.upcoming) == 0 {
		b.WriteString(theme.Hint.Render("  None booked. Press B to book one, or P for a practice run."))
		b.WriteString("\n")
	}
	for i, iv := range s.upcoming {
		b.WriteString(s.renderUpcomingRow(i, iv))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Completed"))
	b.WriteString("\n")
	if len(s.past) == 0 {
		b.WriteString(theme.Hint.Render("  Nothing yet."))
		b.WriteString("\n")
	}
	for _, iv := range s.past {
		b.WriteString(renderPastRow(iv))
		b.WriteString("\n")
	}

	b.WriteString(s.renderStatus())
	return b.String()
}

func (s *Screen) renderUpcomingRow(i int, iv api.Interview) string {
	line := fmt.Sprintf("%s  %s", formatTime(iv.Time), iv.JobRole)
	if t, err := time.Parse(time.RFC3339, iv.Time); err == nil && !time.Now().Before(t) {
		line += "  · ready to start"
	}
	if i == s.cursor {
		return theme.Selected.Render("▸ " + line)
	}
	return theme.Unselected.Render("  " + line)
}

func renderPastRow(iv api.Interview) string {
	score := theme.Hint.Render("pending")
	if iv.Score != nil {
		score = theme.ScoreStyle(*iv.Score).Render(fmt.Sprintf("%d/100", *iv.Score))
	}
	return theme.Unselected.Render(fmt.Sprintf("  %s  %s  ", formatTime(iv.Time), iv.JobRole)) + score
}

func (s *Screen) renderAssignments() string {
	var b strings.Builder

	b.WriteString(theme.Body.Bold(true).Render("Hello, " + s.profile.Name))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Assigned sessions"))
	b.WriteString("\n")
	if len(s.rows) == 0 {
		b.WriteString(theme.Hint.Render("  No sessions assigned to you yet. Press R to refresh."))
		b.WriteString("\n")
	}
	for i, row := range s.rows {
		detail := "details unavailable"
		if row.Interview != nil {
			detail = fmt.Sprintf("%s  %s", formatTime(row.Interview.Time), row.Interview.JobRole)
		}
		line := fmt.Sprintf("%s  priority %d", detail, row.Assignment.Priority)
		if i == s.cursor {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString(s.renderStatus())
	return b.String()
}

func (s *Screen) renderBooking() string {
	var b strings.Builder

	b.WriteString(theme.Body.Bold(true).Render("Book an interview"))
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	for i := range s.booking.fields {
		b.WriteString(labelStyle.Render(s.booking.labels[i]))
		b.WriteString("\n")
		b.WriteString(s.booking.fields[i].View())
		b.WriteString("\n\n")
	}

	if s.booking.submitting {
		b.WriteString(theme.Hint.Render("Booking..."))
	}
	if s.booking.errMsg != "" {
		b.WriteString(theme.Bad.Render(s.booking.errMsg))
	}
	return b.String()
}

func (s *Screen) renderStatus() string {
	switch {
	case s.errMsg != "":
		return "\n" + theme.Bad.Render(s.errMsg)
	case s.status != "":
		return "\n" + theme.Good.Render(s.status)
	}
	return ""
}

var sectionStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
