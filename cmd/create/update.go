package create

import (
	tea "github.com/charmbracelet/bubbletea"
)

// UpdateModel updates the creation form model and returns potential command.
func UpdateModel(m *Model, msg tea.Msg) (*Model, tea.Cmd) {
	if m == nil {
		m = NewModel(nil)
	}

	// If form completed but not confirmed/persisted, watch for confirmation keys.
	if m.completed && !m.confirmed && !m.persisted {
		if km, ok := msg.(tea.KeyMsg); ok {
			s := km.String()
			if s == "y" || s == "enter" { // confirm save
				m.confirmed = true
				return m, nil
			}
			if s == "n" || s == "esc" { // discard and reset
				return NewModel(m.known), nil
			}
		}
	}
	cmd := m.Update(msg)
	return m, cmd
}
