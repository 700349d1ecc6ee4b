package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jenkinslint/jenkinslint/internal/domain"
)

var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	skipStyle     = lipgloss.NewStyle().Foreground(skipColor)
	errorTagStyle = lipgloss.NewStyle().Foreground(warning).Bold(true)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderSummary renders a lint run as a styled per-file report with a
// footer line summarizing counts.
func RenderSummary(summary *domain.RunSummary) string {
	var b strings.Builder

	for _, r := range summary.Results {
		b.WriteString(renderResult(r))
	}

	b.WriteString(separatorLine)
	b.WriteString("\n")
	b.WriteString(renderFooter(summary))
	b.WriteString("\n")

	return b.String()
}

func renderResult(r domain.FileResult) string {
	var line string
	switch r.Outcome.Status {
	case domain.StatusValid:
		line = fmt.Sprintf("%s %s %s", passStyle.Render("✓"), titleStyle.Render(r.Path), dimStyle.Render("valid"))
	case domain.StatusSkipped:
		line = fmt.Sprintf("%s %s %s", skipStyle.Render("⊘"), skipStyle.Render(r.Path), dimStyle.Render("skipped"))
	case domain.StatusInvalid:
		line = fmt.Sprintf("%s %s %s", failStyle.Render("✗"), titleStyle.Render(r.Path), failStyle.Render("invalid"))
	case domain.StatusError:
		line = fmt.Sprintf("%s %s %s", warnStyle.Render("!"), titleStyle.Render(r.Path), errorTagStyle.Render("error"))
	}

	out := line + "\n"
	if r.Outcome.Message != "" && !r.Outcome.OK() {
		for _, msgLine := range strings.Split(r.Outcome.Message, "\n") {
			out += "  " + dimStyle.Render(msgLine) + "\n"
		}
	}
	return out
}

func renderFooter(summary *domain.RunSummary) string {
	counts := summary.Counts()
	parts := []string{
		passStyle.Render(fmt.Sprintf("%d valid", counts[domain.StatusValid])),
	}
	if counts[domain.StatusInvalid] > 0 {
		parts = append(parts, failStyle.Render(fmt.Sprintf("%d invalid", counts[domain.StatusInvalid])))
	}
	if counts[domain.StatusError] > 0 {
		parts = append(parts, warnStyle.Render(fmt.Sprintf("%d errored", counts[domain.StatusError])))
	}
	if counts[domain.StatusSkipped] > 0 {
		parts = append(parts, skipStyle.Render(fmt.Sprintf("%d skipped", counts[domain.StatusSkipped])))
	}

	footer := headerStyle.Render("jenkinslint") + "  " + strings.Join(parts, dimStyle.Render("  ·  "))
	if summary.CommitHash != "" {
		short := summary.CommitHash
		if len(short) > 7 {
			short = short[:7]
		}
		footer += "  " + faintStyle.Render("@"+short)
	}
	return footer
}
