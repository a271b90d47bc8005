package create

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var createTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("219"))
var faint = lipgloss.NewStyle().Faint(true)
var highlight = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)

// View renders the huh form state and, once complete, the synthesized stats.
func View(m *Model) string {
	if m == nil {
		return createTitleStyle.Render("New Dive") + "\n" + faint.Render("(initializing)")
	}
	b := &strings.Builder{}
	fmt.Fprintln(b, createTitleStyle.Render("New Dive"))

	fmt.Fprintln(b, faint.Render("\nDate: ")+m.Entry.DiveAt.Format(time.Kitchen))

	if m.form != nil {
		fmt.Fprintln(b, m.form.View())
	}
	if m.completed && !m.persisted {
		if m.synthesized {
			c := m.Entry.Computer
			fmt.Fprintf(b, "\nProfile: %d samples, %.1fm max, %d:%02d\n",
				len(c.Samples), float64(c.MaxDepth)/1000, c.Duration/60, c.Duration%60)
			if c.Serial != "" {
				fmt.Fprintln(b, faint.Render(fmt.Sprintf("%s (serial %s, fw %s)", c.Model, c.Serial, c.Firmware)))
			}
		}
		if !m.confirmed {
			fmt.Fprintf(b, "\nReview: %s | %s\n", m.Entry.Site, m.Entry.DiveAt.Format(time.Kitchen))
			fmt.Fprintln(b, highlight.Render("Press 'y' to confirm save or 'n' to discard & start over."))
		} else {
			fmt.Fprintf(b, "\nConfirmed. Saving dive...\n")
		}
	}
	return b.String()
}
