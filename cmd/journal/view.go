package journal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/seamark/divelog/cmd/create"
)

var journalTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
var journalEmptyStyle = lipgloss.NewStyle().Faint(true)
var journalEntrySite = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111"))
var journalEntryMeta = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

func renderEntry(e create.Entry) string {
	lines := []string{
		journalEntrySite.Render(e.Site),
		journalEntryMeta.Render(fmt.Sprintf("Location: %s  %s", e.Location, statsSummary(e.Computer))),
	}
	if e.Comments != "" {
		lines = append(lines, e.Comments)
	}
	return strings.Join(lines, "\n")
}

func View(journal *Journal) string {
	if journal == nil || len(journal.Entries) == 0 {
		return journalTitleStyle.Render("Dive Log") + "\n" + journalEmptyStyle.Render("No dives yet. Press 'c' to log one.")
	}
	var rendered []string
	for i := len(journal.Entries) - 1; i >= 0; i-- { // newest first
		rendered = append(rendered, renderEntry(journal.Entries[i]))
	}
	return journalTitleStyle.Render("Dive Log") + "\n" + strings.Join(rendered, "\n\n")
}
