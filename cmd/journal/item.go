package journal

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/seamark/divelog/cmd/create"
	"github.com/seamark/divelog/cmd/dive"
)

var (
	itemTitleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true)
	itemDescStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	selectedTitleStyle = itemTitleStyle.Copy().Foreground(lipgloss.Color("51"))
	selectedDescStyle  = itemDescStyle.Copy().Foreground(lipgloss.Color("245"))
)

type journalItem struct{ create.Entry }

// statsSummary renders the computer record's summary numbers for list rows.
func statsSummary(c dive.Computer) string {
	if c.MaxDepth == 0 && c.Duration == 0 {
		return ""
	}
	s := fmt.Sprintf("%.1fm max / %dmin", float64(c.MaxDepth)/1000, c.Duration/60)
	if c.MeanDepth > 0 {
		s = fmt.Sprintf("%.1fm max / %.1fm avg / %dmin", float64(c.MaxDepth)/1000, float64(c.MeanDepth)/1000, c.Duration/60)
	}
	return s
}

func (i journalItem) Title() string { return i.Site }
func (i journalItem) Description() string {
	// include dive date/time (local) if available
	ts := ""
	if !i.DiveAt.IsZero() {
		ts = i.DiveAt.Format("2006-01-02 15:04")
	} else if strings.TrimSpace(i.CreatedAt) != "" { // fallback parse
		if t, err := time.Parse(time.RFC3339, strings.TrimSpace(i.CreatedAt)); err == nil {
			ts = t.Local().Format("2006-01-02 15:04")
		}
	}
	stats := statsSummary(i.Computer)
	if stats != "" && ts != "" {
		return stats + " | " + ts
	}
	if ts != "" {
		return ts
	}
	return stats
}
func (i journalItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{i.Site, i.Location, i.Computer.Model, i.Comments}, " "))
}

type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 2 }
func (d itemDelegate) Spacing() int                              { return 1 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	it, ok := listItem.(journalItem)
	if !ok {
		io.WriteString(w, "?")
		return
	}
	title := itemTitleStyle.Render(it.Title())
	desc := itemDescStyle.Render(it.Description())
	if index == m.Index() {
		title = selectedTitleStyle.Render(it.Title())
		desc = selectedDescStyle.Render(it.Description())
	}
	// Highlight filter matches (simple contains highlight for now)
	if f := strings.TrimSpace(m.FilterValue()); f != "" {
		lower := strings.ToLower(title)
		fl := strings.ToLower(f)
		if pos := strings.Index(lower, fl); pos >= 0 {
			// naive highlight
			orig := title[pos : pos+len(f)]
			title = title[:pos] + filterMatchStyle.Render(orig) + title[pos+len(f):]
		}
	}
	io.WriteString(w, lipgloss.JoinVertical(lipgloss.Left, title, desc))
}
