package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// View implements tea.Model.
func (m Model) View() string {
	switch m.screen {
	case screenRunning:
		return titleStyle.Render("babelizer") + "\n\n  Extracting and transforming…\n"

	case screenDone:
		return titleStyle.Render("babelizer") + "\n\n" +
			okStyle.Render("  Done: "+m.outPath) + "\n\n" +
			helpStyle.Render("  enter: back to form • q: quit") + "\n"

	case screenError:
		return titleStyle.Render("babelizer") + "\n\n" +
			errorStyle.Render("  Error: "+m.errMsg) + "\n\n" +
			helpStyle.Render("  enter: back to form • q: quit") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("babelizer"))
	b.WriteString("\n\n")

	b.WriteString(m.renderLabel(fieldSource, "Source folder"))
	b.WriteString(m.source.View())
	b.WriteString("\n")
	b.WriteString(m.renderLabel(fieldMapping, "Mapping file"))
	b.WriteString(m.mapFile.View())
	b.WriteString("\n")

	typeValue := "(focus to load types from the mapping file)"
	if len(m.types) > 0 {
		typeValue = fmt.Sprintf("◀ %s ▶  (%d/%d)", m.types[m.typeIdx], m.typeIdx+1, len(m.types))
	} else if m.focus == fieldType {
		typeValue = "(no types — check the mapping file)"
	}
	b.WriteString(m.renderLabel(fieldType, "Compendium type"))
	b.WriteString("  " + typeValue + "\n")

	b.WriteString(m.renderLabel(fieldSort, "Sort alphabetically"))
	b.WriteString("  " + checkbox(m.sortByName) + "\n")
	b.WriteString(m.renderLabel(fieldIDKey, "Use _id as entry key"))
	b.WriteString("  " + checkbox(m.keyByID) + "\n\n")

	submit := "  [ Run ]"
	if m.focus == fieldSubmit {
		submit = focusedStyle.Render("> [ Run ]")
	}
	b.WriteString(submit + "\n\n")

	b.WriteString(helpStyle.Render("  tab/↑/↓: move • space: toggle • ←/→: cycle type • enter: run • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderLabel(f field, text string) string {
	if m.focus == f {
		return focusedStyle.Render("> "+text) + "\n"
	}
	return labelStyle.Render("  "+text) + "\n"
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
