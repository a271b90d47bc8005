package profile

import "github.com/seamark/divelog/cmd/dive"

// Data holds the dive whose synthesized profile is shown in the left pane.
// All fields are unexported to keep the public surface small until stabilized.
type Data struct {
	entryID  string
	site     string
	computer dive.Computer
}

// EntryID reports which journal entry the pane currently shows.
func (d *Data) EntryID() string {
	if d == nil {
		return ""
	}
	return d.entryID
}
