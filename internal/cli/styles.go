// Package cli provides styled terminal output for billsctl using lipgloss.
package cli

import (
	"github.com/SscSPs/bill_tracker_app/internal/core/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#4F46E5")
	// SuccessColor marks paid amounts.
	SuccessColor = lipgloss.Color("#10B981")
	// WarningColor marks bills coming up.
	WarningColor = lipgloss.Color("#F59E0B")
	// ErrorColor marks bills due soon or overdue.
	ErrorColor = lipgloss.Color("#EF4444")
	// InfoColor marks bills further out.
	InfoColor = lipgloss.Color("#3B82F6")
	// SubtleColor is used for borders and secondary text.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	SubtleStyle  = lipgloss.NewStyle().Foreground(SubtleColor)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(1, 2)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)

	badgeStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
)

// UrgencyBadge renders the label of an upcoming bill's urgency band.
func UrgencyBadge(band domain.UrgencyBand) string {
	switch band {
	case domain.UrgencyDueSoon:
		return badgeStyle.Foreground(ErrorColor).Render("DUE SOON")
	case domain.UrgencyComingUp:
		return badgeStyle.Foreground(WarningColor).Render("COMING UP")
	default:
		return badgeStyle.Foreground(InfoColor).Render("UPCOMING")
	}
}

// StatusBadge renders a bill status.
func StatusBadge(status domain.BillStatus) string {
	switch status {
	case domain.StatusPaid:
		return SuccessStyle.Render(string(status))
	case domain.StatusOverdue:
		return ErrorStyle.Render(string(status))
	default:
		return WarningStyle.Render(string(status))
	}
}

// FormatTitle formats a section title.
func FormatTitle(title string) string {
	return TitleStyle.Render(title)
}

// RenderBox renders content in a styled box under title.
func RenderBox(title, content string) string {
	return BoxStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.UnsetMargins().Render(title),
		content,
	))
}

// RenderTable renders rows under headers with a rounded border.
func RenderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(SubtleStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render()
}
