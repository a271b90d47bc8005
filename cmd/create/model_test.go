package create

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seamark/divelog/cmd/dive"
)

func TestParseDepthMM(t *testing.T) {
	got, err := parseDepthMM("18")
	require.NoError(t, err)
	assert.Equal(t, 18000, got)

	got, err = parseDepthMM(" 18.5 ")
	require.NoError(t, err)
	assert.Equal(t, 18500, got)

	for _, bad := range []string{"", "deep", "-3"} {
		_, err := parseDepthMM(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseDurationSec(t *testing.T) {
	got, err := parseDurationSec("50")
	require.NoError(t, err)
	assert.Equal(t, 3000, got)

	got, err = parseDurationSec("47.5")
	require.NoError(t, err)
	assert.Equal(t, 2850, got)

	_, err = parseDurationSec("-1")
	assert.Error(t, err)
}

func TestFinishComputerSynthesizesAndIdentifies(t *testing.T) {
	known := []dive.Device{{Model: "Perdix 2", DeviceID: 42, Serial: "12345", Firmware: "v1.2"}}
	m := NewModel(known)
	m.siteStr = "Blue Hole"
	m.modelStr = "Perdix 2"
	m.maxDepthStr = "18"
	m.avgDepthStr = "9"
	m.durationStr = "50"

	m.finishComputer()

	c := m.Entry.Computer
	assert.Equal(t, 3000, c.Duration)
	assert.Equal(t, 18000, c.MaxDepth)
	assert.Equal(t, 9000, c.MeanDepth)
	assert.Equal(t, 3000, c.LastManualTime)
	require.Len(t, c.Samples, 6)

	// device identity backfilled from the configured computer
	assert.Equal(t, uint32(42), c.DeviceID)
	assert.Equal(t, "12345", c.Serial)
	assert.Equal(t, "v1.2", c.Firmware)

	e, ok := m.PreviewEntry()
	require.True(t, ok)
	assert.Len(t, e.Computer.Samples, 6)
}

func TestFinishComputerManualEntry(t *testing.T) {
	m := NewModel(nil)
	m.maxDepthStr = "8"
	m.durationStr = "8.33"

	m.finishComputer()

	c := m.Entry.Computer
	assert.Empty(t, c.Model)
	assert.Zero(t, c.DeviceID)
	// no average depth recorded: the depth/time heuristic kicks in
	require.NotEmpty(t, c.Samples)
	assert.Equal(t, 8000, c.MaxDepth)
	assert.Zero(t, c.MeanDepth)
}
