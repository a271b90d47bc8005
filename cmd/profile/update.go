package profile

import "github.com/seamark/divelog/cmd/dive"

// Select returns data unchanged when the entry is already on display,
// otherwise a fresh holder for the newly selected entry. The caller runs this
// on every journal selection change; keeping the same pointer avoids
// rebuilding the chart for no reason.
func Select(data *Data, entryID, site string, c dive.Computer) *Data {
	if data != nil && data.entryID == entryID {
		return data
	}
	return &Data{entryID: entryID, site: site, computer: c}
}
