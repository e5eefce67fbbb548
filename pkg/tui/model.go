// Package tui implements the interactive form for running extractions.
package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/phenomen/babelizer/pkg/babele"
	"github.com/phenomen/babelizer/pkg/mapping"
)

type screen int

const (
	screenForm screen = iota
	screenRunning
	screenDone
	screenError
)

type field int

const (
	fieldSource field = iota
	fieldMapping
	fieldType
	fieldSort
	fieldIDKey
	fieldSubmit
	fieldCount
)

// Model is the full UI state. Every transition happens in Update; View only
// renders.
type Model struct {
	screen screen
	focus  field

	source  textinput.Model
	mapFile textinput.Model

	types   []string
	typeIdx int

	sortByName bool
	keyByID    bool

	errMsg  string
	outPath string
}

// New creates the form in its initial state: source field focused, mapping
// path defaulted to mapping.json.
func New() Model {
	source := textinput.New()
	source.Placeholder = "path/to/pack"
	source.CharLimit = 256
	source.Width = 48
	source.Focus()

	mapFile := textinput.New()
	mapFile.CharLimit = 256
	mapFile.Width = 48
	mapFile.SetValue("mapping.json")

	return Model{source: source, mapFile: mapFile}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

type runDoneMsg struct{ path string }

type runFailedMsg struct{ err error }

// runPipeline runs the extract-and-transform pipeline as a command so the
// UI loop stays responsive while it works.
func runPipeline(opts babele.RunOptions) tea.Cmd {
	return func() tea.Msg {
		path, err := babele.Run(opts)
		if err != nil {
			return runFailedMsg{err}
		}
		return runDoneMsg{path}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case runDoneMsg:
		m.screen = screenDone
		m.outPath = msg.path
		return m, nil

	case runFailedMsg:
		m.screen = screenError
		m.errMsg = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		switch m.screen {
		case screenForm:
			return m.updateForm(msg)
		case screenRunning:
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		default:
			// Done and error screens both hand control back to the form.
			switch msg.String() {
			case "ctrl+c", "q", "esc":
				return m, tea.Quit
			case "enter":
				m.screen = screenForm
				m.errMsg = ""
				return m, nil
			}
			return m, nil
		}
	}

	return m.updateInputs(msg)
}

// updateForm handles one key press on the form screen.
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "down":
		return m.moveFocus(1), nil

	case "shift+tab", "up":
		return m.moveFocus(-1), nil

	case "left", "right":
		if m.focus == fieldType && len(m.types) > 0 {
			step := 1
			if msg.String() == "left" {
				step = len(m.types) - 1
			}
			m.typeIdx = (m.typeIdx + step) % len(m.types)
			return m, nil
		}

	case " ":
		switch m.focus {
		case fieldSort:
			m.sortByName = !m.sortByName
			return m, nil
		case fieldIDKey:
			m.keyByID = !m.keyByID
			return m, nil
		}

	case "enter":
		if m.focus == fieldSubmit {
			return m.submit()
		}
		return m.moveFocus(1), nil
	}

	return m.updateInputs(msg)
}

// moveFocus shifts focus by delta, wrapping around the form. Landing on the
// type field refreshes the selectable types from the mapping file.
func (m Model) moveFocus(delta int) Model {
	m.focus = field((int(m.focus) + delta + int(fieldCount)) % int(fieldCount))
	m.source.Blur()
	m.mapFile.Blur()
	switch m.focus {
	case fieldSource:
		m.source.Focus()
	case fieldMapping:
		m.mapFile.Focus()
	case fieldType:
		m = m.reloadTypes()
	}
	return m
}

// reloadTypes re-reads the mapping file so the type field cycles through its
// current keys. Load failures leave the list empty; submit reports them.
func (m Model) reloadTypes() Model {
	m.types = nil
	if mp, err := mapping.Load(m.mapFile.Value()); err == nil {
		m.types = mp.Types()
	}
	if m.typeIdx >= len(m.types) {
		m.typeIdx = 0
	}
	return m
}

// submit validates the form and launches the pipeline.
func (m Model) submit() (tea.Model, tea.Cmd) {
	src := m.source.Value()
	if info, err := os.Stat(src); err != nil || !info.IsDir() {
		return m.fail(fmt.Sprintf("source folder not found: %s", src))
	}

	mp, err := mapping.Load(m.mapFile.Value())
	if err != nil {
		return m.fail(err.Error())
	}
	types := mp.Types()
	if len(types) == 0 {
		return m.fail(mapping.ErrNoTypes.Error())
	}
	m.types = types
	if m.typeIdx >= len(types) {
		m.typeIdx = 0
	}

	m.screen = screenRunning
	return m, runPipeline(babele.RunOptions{
		SourceDir:   src,
		MappingPath: m.mapFile.Value(),
		Type:        types[m.typeIdx],
		SortByName:  m.sortByName,
		KeyByID:     m.keyByID,
	})
}

func (m Model) fail(msg string) (tea.Model, tea.Cmd) {
	m.screen = screenError
	m.errMsg = msg
	return m, nil
}

// updateInputs forwards a message to both text inputs; only the focused one
// reacts to key presses.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds [2]tea.Cmd
	m.source, cmds[0] = m.source.Update(msg)
	m.mapFile, cmds[1] = m.mapFile.Update(msg)
	return m, tea.Batch(cmds[0], cmds[1])
}
