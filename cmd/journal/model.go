package journal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/seamark/divelog/cmd/create"
)

// Journal holds underlying entries plus the interactive list model.
type Journal struct {
	Entries []create.Entry `json:"entries"`
	list    list.Model
	ready   bool
	width   int
	height  int
	detail  bool // whether we're showing a single entry
}

var (
	statusBarStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	filterMatchStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("219")).Bold(true)
	journalTitleBarStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	detailHeaderStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")).Underline(true)
	detailMetaStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	faintStyle           = lipgloss.NewStyle().Faint(true)
)

// NewJournal constructs a journal backed by svc. Load failures leave the
// journal empty; the TUI has nowhere better to surface them than an empty list.
func NewJournal(svc Service) *Journal {
	j := &Journal{}
	if svc == nil {
		return j
	}
	entries, err := svc.List()
	if err != nil {
		return j
	}
	// List returns newest first; AddEntry prepends, so walk backwards.
	for i := len(entries) - 1; i >= 0; i-- {
		j.AddEntry(entries[i])
	}
	return j
}

// AddEntry appends to underlying slice and (if list initialized) inserts item.
func (j *Journal) AddEntry(entry create.Entry) {
	j.Entries = append(j.Entries, entry)
	if j.ready {
		j.list.InsertItem(0, journalItem{entry}) // newest first
	}
}

// Selected returns the entry currently highlighted in the list.
func (j *Journal) Selected() (create.Entry, bool) {
	if !j.ready {
		if len(j.Entries) > 0 {
			return j.Entries[len(j.Entries)-1], true
		}
		return create.Entry{}, false
	}
	sel, ok := j.list.SelectedItem().(journalItem)
	if !ok {
		return create.Entry{}, false
	}
	return sel.Entry, true
}

// ensureList creates or resizes the list model based on dimensions.
func (j *Journal) ensureList(width, height int) {
	if width == 0 || height == 0 {
		return
	}
	j.width = width
	j.height = height
	listHeight := max(5, height-6) // leave space for header/footer around view
	if !j.ready {
		items := make([]list.Item, 0, len(j.Entries))
		// newest first
		for i := len(j.Entries) - 1; i >= 0; i-- {
			items = append(items, journalItem{j.Entries[i]})
		}
		l := list.New(items, itemDelegate{}, width-4, listHeight) // -4 for padding
		l.Title = "Dive Log"
		l.SetShowStatusBar(true)
		l.SetShowPagination(true)
		l.SetFilteringEnabled(true)
		l.Styles.Title = journalTitleBarStyle
		l.Styles.StatusBar = statusBarStyle
		l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		l.Styles.HelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
		j.list = l
		j.ready = true
		return
	}
	// resize
	j.list.SetSize(width-4, listHeight)
}

// Update handles messages specific to the journal list.
func (j *Journal) Update(msg tea.Msg, width, height int) tea.Cmd {
	j.ensureList(width, height)
	if !j.ready {
		return nil
	}
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "esc":
			if j.detail { // leave detail view
				j.detail = false
				return nil
			}
			if j.list.FilterState() == list.Filtering {
				j.list.ResetFilter()
				return nil
			}
		case "enter":
			// open detail (even if filtering; keep filter applied so selection context remains)
			j.detail = true
			return nil
		}
	}
	var cmd tea.Cmd
	j.list, cmd = j.list.Update(msg)
	return cmd
}

// View renders the journal list.
func (j *Journal) View() string {
	if !j.ready {
		return journalTitleBarStyle.Render("Dive Log") + "\n" + "Loading..."
	}
	if len(j.Entries) == 0 {
		return journalTitleBarStyle.Render("Dive Log") + "\n" + lipgloss.NewStyle().Faint(true).Render("No dives yet. Press 'c' to log one.")
	}
	if j.detail {
		// render selected entry in full page
		sel, ok := j.list.SelectedItem().(journalItem)
		if !ok {
			j.detail = false
			return j.list.View()
		}
		c := sel.Computer
		b := &strings.Builder{}
		fmt.Fprintln(b, journalTitleBarStyle.Render("Dive"))
		fmt.Fprintln(b)
		fmt.Fprintln(b, detailHeaderStyle.Render(sel.Site))
		fmt.Fprintln(b, detailMetaStyle.Render(fmt.Sprintf("Location: %s", sel.Location)))
		fmt.Fprintln(b, detailMetaStyle.Render(fmt.Sprintf("Stats: %s", statsSummary(c))))
		if c.Model != "" {
			meta := c.Model
			if c.Serial != "" {
				meta += " serial " + c.Serial
			}
			if c.Firmware != "" {
				meta += " fw " + c.Firmware
			}
			fmt.Fprintln(b, detailMetaStyle.Render(fmt.Sprintf("Computer: %s", meta)))
		}
		if n := len(c.Samples); n > 0 {
			fmt.Fprintln(b, detailMetaStyle.Render(fmt.Sprintf("Profile: %d synthesized samples", n)))
		}
		if sel.Comments != "" {
			fmt.Fprintln(b)
			fmt.Fprintln(b, sel.Comments)
		}
		fmt.Fprintln(b)
		fmt.Fprintln(b, faintStyle.Render("(esc to go back)"))
		return lipgloss.NewStyle().Width(j.width - 4).Render(b.String())
	}
	return j.list.View()
}

// helper until Go generics version or shared util
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
