package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/FacundoAdorno/FLTube/internal/config"
	"github.com/FacundoAdorno/FLTube/internal/ytdlp"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	rowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	metaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	liveStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("150"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("FLTube"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(metaStyle.Render("no videos loaded"))
		b.WriteString("\n")
	}
	for i, row := range m.rows {
		b.WriteString(m.renderRow(i, row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.statusMsg))
	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(m.renderHelp())
	} else {
		b.WriteString(helpStyle.Render("enter play · l like · d/D download · r resolution · n/p page · h history · L liked · ? help · q quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderRow(i int, row ytdlp.VideoMetadata) string {
	marker := "  "
	style := rowStyle
	if i == m.selected && m.focus == focusResults {
		marker = "> "
		style = selectedStyle
	}
	line := fmt.Sprintf("%s%d. %s", marker, i+1, row.Title)
	meta := fmt.Sprintf("     %s · %s · %s · %s views",
		row.Creators, row.UploadDate, row.Duration, ytdlp.AbbrevString(row.ViewersCount))
	if row.IsLive() {
		meta += " · " + liveStyle.Render("LIVE")
	}
	return style.Render(line) + "\n" + metaStyle.Render(meta)
}

func (m Model) renderHelp() string {
	lines := []string{
		"keyboard shortcuts:",
		"  " + m.cfg.ShortcutText(config.FocusSearch) + "  focus the search box",
	}
	for i, id := range []config.Shortcut{config.FocusVideo1, config.FocusVideo2, config.FocusVideo3, config.FocusVideo4} {
		lines = append(lines, fmt.Sprintf("  %s  focus result %d", m.cfg.ShortcutText(id), i+1))
	}
	lines = append(lines, "  "+m.cfg.ShortcutText(config.ShowHelp)+"  toggle this help")
	lines = append(lines,
		"",
		"bindings with Shift or a non-letter key cannot be reported by the",
		"terminal; use the plain keys from the footer for those actions")
	return helpStyle.Render(strings.Join(lines, "\n"))
}
