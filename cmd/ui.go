package cmd

import (
	"strings"

	bhelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/seamark/divelog/cmd/create"
	"github.com/seamark/divelog/cmd/dive"
	"github.com/seamark/divelog/cmd/journal"
	"github.com/seamark/divelog/cmd/profile"
)

type model struct {
	rightView   string // "journal" or "create"
	profileData *profile.Data
	journal     *journal.Journal
	draft       *create.Model
	svc         journal.Service
	known       []dive.Device
	width       int
	height      int
	// help / key bindings
	keys keyMap
	help bhelp.Model
}

func initialModel(svc journal.Service, known []dive.Device) model {
	return model{
		rightView: "journal",
		journal:   journal.NewJournal(svc),
		svc:       svc,
		known:     known,
		keys:      keys,
		help:      bhelp.New(),
	}
}

func (m model) Init() tea.Cmd {
	// Just return `nil`, which means "no I/O right now, please."
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// Plain letters stay with the form while creating an entry.
		if m.rightView != "create" {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Journal):
				m.rightView = "journal"
			case key.Matches(msg, m.keys.Create):
				m.rightView = "create"
				if m.draft == nil {
					m.draft = create.NewModel(m.known)
				}
			}
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	// propagate updates to active right pane
	if m.rightView == "journal" && m.journal != nil {
		cmd = m.journal.Update(msg, rightPaneWidth(m.width), m.height)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if m.rightView == "create" {
		m.draft, cmd = create.UpdateModel(m.draft, msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if m.draft.IsDoneAndUnpersisted() {
			saved, err := m.svc.Create(m.draft.Entry)
			if err == nil {
				m.draft.MarkPersisted()
				m.journal.AddEntry(saved)
				m.profileData = profile.Select(m.profileData, saved.ID, saved.Site, saved.Computer)
				m.draft = nil
				m.rightView = "journal"
			}
		}
	}

	m.profileData = m.selectProfile()

	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

// selectProfile decides what the left pane charts: the draft being created,
// or the entry highlighted in the journal.
func (m model) selectProfile() *profile.Data {
	if m.rightView == "create" {
		if e, ok := m.draft.PreviewEntry(); ok {
			return profile.Select(m.profileData, "draft", e.Site, e.Computer)
		}
		return m.profileData
	}
	if m.journal != nil {
		if sel, ok := m.journal.Selected(); ok {
			return profile.Select(m.profileData, sel.ID, sel.Site, sel.Computer)
		}
	}
	return m.profileData
}

func (m model) View() string {
	left := profile.View(m.profileData)
	var right string
	switch m.rightView {
	case "journal":
		if m.journal != nil {
			right = m.journal.View()
		} else {
			right = "journal unavailable"
		}
	case "create":
		right = create.View(m.draft)
	default:
		right = "unknown"
	}

	// determine split sizes (30% left min width 24)
	leftW := max(24, int(float64(m.width)*0.3))
	rightW := max(20, m.width-leftW-1)
	leftRendered := lipgloss.NewStyle().Width(leftW).Render(contentStyle.Render(left))
	rightRendered := lipgloss.NewStyle().Width(rightW).Render(contentStyle.Render(right))
	columns := lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, dividerStyle.Render("│"), rightRendered)

	header := headerStyle.Render(appTitle) + " " + tabs(m.rightView, max(0, m.width-10))
	sep := dividerStyle.Render(lipgloss.NewStyle().Width(m.width).Render(strings.Repeat("─", max(0, m.width))))
	foot := m.help.View(m.keys)
	layout := lipgloss.JoinVertical(lipgloss.Left, header, sep, columns, sep, foot)
	if m.width > 0 {
		layout = lipgloss.NewStyle().Width(m.width).Render(layout)
	}
	return layout
}

// small helper until Go 1.21+ min/max generics maybe
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// helper to compute right pane width for updates
func rightPaneWidth(total int) int {
	leftW := max(24, int(float64(total)*0.3))
	return max(20, total-leftW-1)
}
