package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seamark/divelog/cmd/create"
	"github.com/seamark/divelog/cmd/dive"
)

func testEntry() create.Entry {
	c := dive.Computer{Duration: 3000, MaxDepth: 18000, MeanDepth: 9000, Model: "Perdix 2"}
	dive.Synthesize(&c)
	return create.Entry{
		Site:     "Blue Hole",
		Location: "Dahab",
		Computer: c,
		Comments: "calm, great vis",
		DiveAt:   time.Date(2025, 6, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestFileServiceRoundTrip(t *testing.T) {
	svc, err := NewFileService(t.TempDir())
	require.NoError(t, err)

	created, err := svc.Create(testEntry())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.NotEmpty(t, created.CreatedAt)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Blue Hole", got.Site)
	assert.Equal(t, 18000, got.Computer.MaxDepth)
	// the synthesized profile survives the trip through JSON
	require.Len(t, got.Computer.Samples, 6)
	assert.Equal(t, dive.Sample{Time: 216, Depth: 18000}, got.Computer.Samples[1])

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestFileServiceCreateRequiresSite(t *testing.T) {
	svc, err := NewFileService(t.TempDir())
	require.NoError(t, err)

	e := testEntry()
	e.Site = "  "
	_, err = svc.Create(e)
	assert.Error(t, err)
}

func TestFileServiceUpdate(t *testing.T) {
	svc, err := NewFileService(t.TempDir())
	require.NoError(t, err)

	created, err := svc.Create(testEntry())
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, func(e *create.Entry) error {
		e.Comments = "edited"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Comments)
	assert.Equal(t, created.ID, updated.ID)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Comments)
}

func TestFileServiceListSkipsCorrupt(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewFileService(dir)
	require.NoError(t, err)

	_, err = svc.Create(testEntry())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644))

	list, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestNewFileServiceEmptyDir(t *testing.T) {
	_, err := NewFileService("")
	assert.Error(t, err)
}
