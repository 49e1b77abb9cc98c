// Package tui renders the dashboard view to a terminal.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"social-analytics-dashboard/internal/analytics/core/domain"
	"social-analytics-dashboard/internal/dashboard/view"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	primary = lipgloss.Color("#0078d4")
	muted   = lipgloss.Color("#8b9bb4")
	danger  = lipgloss.Color("#d83b01")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(primary)
	mutedStyle = lipgloss.NewStyle().Foreground(muted)

	cardStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primary).Padding(0, 1).Width(24)

	kpiStyle   = lipgloss.NewStyle().Bold(true)
	toastStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(danger).Padding(0, 1)
)

// Render writes the whole dashboard view: header, KPI cards, per-platform
// breakdown and the detail table.
func Render(w io.Writer, d domain.Dashboard, loading bool, updatedAt time.Time) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Trust-Tech Innovation · Analytics Dashboard"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(header(d.Filter, loading, updatedAt)))
	b.WriteString("\n\n")

	if loading {
		b.WriteString(mutedStyle.Render("Loading analytics..."))
		b.WriteString("\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString(kpiCards(d.Summary))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("By platform"))
	b.WriteString("\n")
	b.WriteString(platformTable(d.Platforms))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Detailed Analytics"))
	b.WriteString("\n")
	b.WriteString(detailTable(d.Rows))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func header(f domain.Filter, loading bool, updatedAt time.Time) string {
	parts := []string{"platform: " + f.Platform}
	if f.Search != "" {
		parts = append(parts, fmt.Sprintf("search: %q", f.Search))
	}
	if !loading && !updatedAt.IsZero() {
		parts = append(parts, "updated "+updatedAt.Format("15:04:05"))
	}
	return strings.Join(parts, " | ")
}

func kpiCards(s domain.Summary) string {
	card := func(title, value string) string {
		return cardStyle.Render(mutedStyle.Render(title) + "\n" + kpiStyle.Render(value))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total Followers", domain.FormatCount(s.TotalFollowers)),
		card("Average Growth", domain.FormatPercent(s.AverageGrowth)),
		card("Engagement Rate", domain.FormatPercent(s.AverageEngagement)),
		card("Total Impressions", domain.FormatCount(s.TotalImpressions)),
	)
}

func platformTable(stats []domain.PlatformStat) string {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Platform,
			domain.FormatPercent(s.Engagement),
			domain.FormatCount(s.Reach),
			domain.FormatCount(s.Posts),
		})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(muted)).
		Headers("Platform", "Engagement", "Reach", "Posts").
		Rows(rows...).
		String()
}

func detailTable(rows []domain.Row) string {
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{
			r.Date,
			r.Platform,
			domain.FormatCount(r.Followers),
			domain.FormatCount(r.Impressions),
			domain.FormatCount(r.Reach),
			fmt.Sprintf("%d", r.Posts),
			fmt.Sprintf("%g%%", r.Engagement),
			signedPercent(r.Growth),
		})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(muted)).
		Headers("Date", "Platform", "Followers", "Impressions", "Reach", "Posts", "Engagement %", "Growth %").
		Rows(data...).
		String()
}

func signedPercent(v float64) string {
	if v < 0 {
		return fmt.Sprintf("%g%%", v)
	}
	return fmt.Sprintf("+%g%%", v)
}

// ToastNotifier prints one styled line per failed poll cycle.
type ToastNotifier struct {
	W io.Writer
}

func (n ToastNotifier) Notify(note view.Notification) {
	fmt.Fprintln(n.W, toastStyle.Render(note.Title+": "+note.Description))
}
