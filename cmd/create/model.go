package create

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/seamark/divelog/cmd/dive"
)

// Entry represents a single logged dive.
// ID is assigned by the journal service when creating a new entry.
type Entry struct {
	ID        string        `json:"id"`
	Site      string        `json:"site"`
	Location  string        `json:"location"`
	Computer  dive.Computer `json:"computer"`
	Comments  string        `json:"comments"`
	DiveAt    time.Time     `json:"dive_at"`
	CreatedAt string        `json:"created_at"`
}

// manualModel is the select option for dives entered without a computer.
const manualModel = "(manual entry)"

// Model using huh form
type Model struct {
	Entry       Entry
	form        *huh.Form
	known       []dive.Device
	timeStr     string
	siteStr     string
	locationStr string
	modelStr    string
	maxDepthStr string
	avgDepthStr string
	durationStr string
	commentsStr string
	persisted   bool
	completed   bool // form has been completed
	confirmed   bool // user confirmed save
	synthesized bool // profile has been generated from the stats
}

// NewModel builds a fresh creation form. known lists the dive computers from
// the config file, offered as model choices alongside manual entry.
func NewModel(known []dive.Device) *Model {
	m := &Model{known: known}
	now := time.Now()
	def := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, now.Location())
	m.timeStr = def.Format("2006-01-02 15:04")
	m.modelStr = manualModel
	m.buildForm()
	return m
}

func (m *Model) buildForm() {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Site").Value(&m.siteStr),
			huh.NewInput().Title("Location").Value(&m.locationStr),
			huh.NewSelect[string]().Title("Dive Computer").Options(selectOptions(m.modelOptions())...).Value(&m.modelStr),
			huh.NewInput().Title("Max Depth (m)").Value(&m.maxDepthStr).Validate(validDepth),
			huh.NewInput().Title("Avg Depth (m, optional)").Value(&m.avgDepthStr).Validate(validOptionalDepth),
			huh.NewInput().Title("Duration (min)").Value(&m.durationStr).Validate(validDuration),
			huh.NewText().Title("Comments").Value(&m.commentsStr),
		),
	).WithShowHelp(false)
}

func (m *Model) modelOptions() []string {
	opts := []string{manualModel}
	seen := map[string]bool{}
	for _, d := range m.known {
		if d.Model == "" || seen[d.Model] {
			continue
		}
		seen[d.Model] = true
		opts = append(opts, d.Model)
	}
	return opts
}

func selectOptions(vals []string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(vals))
	for _, v := range vals {
		opts = append(opts, huh.NewOption(v, v))
	}
	return opts
}

func validDepth(v string) error {
	_, err := parseDepthMM(v)
	return err
}

func validOptionalDepth(v string) error {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return validDepth(v)
}

func validDuration(v string) error {
	_, err := parseDurationSec(v)
	return err
}

// parseDepthMM converts a depth in meters ("18", "18.5") to millimeters.
func parseDepthMM(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, errors.New("depth required")
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.New("depth must be a number of meters")
	}
	if f < 0 {
		return 0, errors.New("depth cannot be negative")
	}
	return int(math.Round(f * 1000)), nil
}

// parseDurationSec converts a duration in minutes ("50", "47.5") to seconds.
func parseDurationSec(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, errors.New("duration required")
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.New("duration must be a number of minutes")
	}
	if f < 0 {
		return 0, errors.New("duration cannot be negative")
	}
	return int(math.Round(f * 60)), nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m == nil {
		return nil
	}
	if m.form == nil {
		m.buildForm()
	}
	var cmd tea.Cmd
	if updated, ucmd := m.form.Update(msg); ucmd != nil {
		cmd = ucmd
		if f, ok := updated.(*huh.Form); ok {
			m.form = f
		}
	}
	if m.form.State == huh.StateCompleted && !m.completed {
		m.completed = true
		m.Entry.Site = m.siteStr
		m.Entry.Location = m.locationStr
		m.Entry.Comments = m.commentsStr
		m.Entry.DiveAt = parseTimeOrDefault(m.timeStr)
		m.finishComputer()
		return cmd
	}
	return cmd
}

// finishComputer builds the dive computer record from the validated form
// values, resolves device identity against the configured devices, and
// synthesizes the profile the entry will be stored and rendered with.
func (m *Model) finishComputer() {
	maxDepth, _ := parseDepthMM(m.maxDepthStr)
	duration, _ := parseDurationSec(m.durationStr)
	meanDepth := 0
	if strings.TrimSpace(m.avgDepthStr) != "" {
		meanDepth, _ = parseDepthMM(m.avgDepthStr)
	}
	c := dive.Computer{
		Duration:  duration,
		MaxDepth:  maxDepth,
		MeanDepth: meanDepth,
	}
	if m.modelStr != manualModel {
		c.Model = m.modelStr
	}
	d := dive.Dive{Computers: []dive.Computer{c}}
	dc := &d.Computers[0]
	if id := m.deviceIDForModel(c.Model); id != 0 {
		d.SetDeviceID(dc, id, m.known)
	}
	dive.Synthesize(dc)
	m.Entry.Computer = *dc
	m.synthesized = true
}

func (m *Model) deviceIDForModel(model string) uint32 {
	if model == "" {
		return 0
	}
	for _, dev := range m.known {
		if dev.Model == model {
			return dev.DeviceID
		}
	}
	return 0
}

func parseTimeOrDefault(v string) time.Time {
	if t, err := time.Parse("2006-01-02 15:04", v); err == nil {
		return t
	}
	if t2, err := time.Parse("15:04", v); err == nil {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), t2.Hour(), t2.Minute(), 0, 0, now.Location())
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, now.Location())
}

// PreviewEntry exposes the completed entry, profile included, so the shell
// can chart it before the save is confirmed.
func (m *Model) PreviewEntry() (Entry, bool) {
	if m == nil || !m.synthesized {
		return Entry{}, false
	}
	return m.Entry, true
}

// IsDoneAndUnpersisted returns true only after user confirmed save.
func (m *Model) IsDoneAndUnpersisted() bool {
	return m != nil && m.completed && m.confirmed && !m.persisted
}
func (m *Model) MarkPersisted() {
	if m != nil {
		m.persisted = true
	}
}
