// Package tui provides the interactive terminal front end for cfgbeast
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/cfgbeast/internal/bsp"
	"github.com/firefly-engineering/cfgbeast/internal/generator"
)

// Action represents the action to take after the picker exits
type Action int

const (
	ActionNone Action = iota
	ActionSubmit
	ActionQuit
)

// Result holds the result of the picker
type Result struct {
	Action    Action
	Operation generator.Operation
	Skill     bool
	Cvars     string
	Whitelist []string
}

// Request converts a submitted result into a write request for dir.
func (r Result) Request(dir string) generator.Request {
	return generator.Request{
		Cvars:     r.Cvars,
		Operation: r.Operation,
		Skill:     r.Skill,
		Dir:       dir,
		Whitelist: r.Whitelist,
	}
}

// Options configures a picker
type Options struct {
	// Maps are the BSP paths offered in the checklist.
	Maps []string

	// Cvars returns the preset catalog; skill selects skill.cfg presets.
	Cvars func(skill bool) []string

	// Skill starts the picker in skill config mode.
	Skill bool

	// Text prefills the cvar editor.
	Text string

	// Status is shown under the editor, e.g. the summary of the last run.
	Status string
}

// pane identifies the focused area.
type pane int

const (
	paneMaps pane = iota
	panePresets
	paneEditor
	paneCount
)

// submitKeys maps key bindings to the operation they submit.
var submitKeys = map[string]generator.Operation{
	"ctrl+o": generator.Overwrite,
	"ctrl+p": generator.Append,
	"ctrl+r": generator.Remove,
	"ctrl+x": generator.Delete,
}

const (
	checkedGlyph   = "☑"
	uncheckedGlyph = "☐"
)

func checkbox(selected bool) string {
	if selected {
		return checkedGlyph
	}
	return uncheckedGlyph
}

// mapItem implements list.Item for the map checklist
type mapItem struct {
	entry bsp.Entry
}

func (i mapItem) Title() string       { return checkbox(i.entry.Selected) + " " + i.entry.Name() }
func (i mapItem) Description() string { return i.entry.Path }
func (i mapItem) FilterValue() string { return i.entry.Name() }

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241"))

	focusedPaneStyle = paneStyle.
				BorderForeground(lipgloss.Color("39"))
)

// Model is the bubbletea model for the config editor
type Model struct {
	maps     list.Model
	entries  []bsp.Entry
	presets  list.Model
	editor   textarea.Model
	cvars    func(skill bool) []string
	skill    bool
	focus    pane
	showHelp bool
	status   string
	result   Result
	quitting bool
	width    int
	height   int
}

// New creates a picker for the given options
func New(opts Options) Model {
	entries := bsp.Entries(opts.Maps)
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = mapItem{entry: e}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = selectedStyle

	maps := list.New(items, delegate, 30, 16)
	maps.Title = "Maps"
	maps.SetFilteringEnabled(false)
	maps.SetShowHelp(false)
	maps.KeyMap.Quit.SetEnabled(false)
	maps.KeyMap.ForceQuit.SetEnabled(false)
	maps.Styles.Title = titleStyle

	presets := list.New(nil, newGroupedDelegate(), 50, 16)
	presets.SetShowHelp(false)
	presets.KeyMap.Quit.SetEnabled(false)
	presets.KeyMap.ForceQuit.SetEnabled(false)
	presets.Styles.Title = titleStyle

	editor := textarea.New()
	editor.Placeholder = "mp_timelimit 20"
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.SetWidth(80)
	editor.SetHeight(6)
	editor.SetValue(opts.Text)

	cvars := opts.Cvars
	if cvars == nil {
		cvars = func(bool) []string { return nil }
	}

	m := Model{
		maps:    maps,
		entries: entries,
		presets: presets,
		editor:  editor,
		cvars:   cvars,
		skill:   opts.Skill,
		status:  opts.Status,
	}
	m.loadPresets()
	return m
}

// loadPresets fills the preset list from the catalog for the current mode.
func (m *Model) loadPresets() {
	items := buildGroupedItems(m.cvars(m.skill))
	m.presets.SetItems(items)
	m.presets.Title = fmt.Sprintf("Presets: %s (%d)", m.modeName(), len(items)-headerCount(items))
	m.presets.Select(0)
	skipHeaders(&m.presets, 1)
}

func (m Model) modeName() string {
	if m.skill {
		return "skill.cfg"
	}
	return "map cfg"
}

// setFocus moves keyboard focus to p.
func (m *Model) setFocus(p pane) tea.Cmd {
	m.focus = p
	if p == paneEditor {
		return m.editor.Focus()
	}
	m.editor.Blur()
	return nil
}

// toggle flips the selection of the map at index i.
func (m *Model) toggle(i int) tea.Cmd {
	if i < 0 || i >= len(m.entries) {
		return nil
	}
	m.entries[i].Selected = !m.entries[i].Selected
	return m.maps.SetItem(i, mapItem{entry: m.entries[i]})
}

// toggleAll selects every map, or clears them all when all are selected.
func (m *Model) toggleAll() tea.Cmd {
	selected := len(bsp.Selected(m.entries)) != len(m.entries)
	var cmds []tea.Cmd
	for i := range m.entries {
		m.entries[i].Selected = selected
		cmds = append(cmds, m.maps.SetItem(i, mapItem{entry: m.entries[i]}))
	}
	return tea.Batch(cmds...)
}

// appendPreset adds the highlighted preset as a new editor line.
func (m *Model) appendPreset() {
	item, ok := m.presets.SelectedItem().(presetItem)
	if !ok {
		m.status = "Cvar presets are unavailable"
		return
	}

	value := m.editor.Value()
	if value != "" && !strings.HasSuffix(value, "\n") {
		value += "\n"
	}
	m.editor.SetValue(value + item.cvar)
	m.status = ""
}

// submit finishes the picker with op, unless no map is selected.
func (m *Model) submit(op generator.Operation) tea.Cmd {
	whitelist := bsp.Selected(m.entries)
	if len(whitelist) == 0 {
		m.status = "Select at least one map"
		return nil
	}

	m.result = Result{
		Action:    ActionSubmit,
		Operation: op,
		Skill:     m.skill,
		Cvars:     strings.TrimRight(m.editor.Value(), "\r\n"),
		Whitelist: whitelist,
	}
	m.quitting = true
	return tea.Quit
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listHeight := max(msg.Height-16, 5)
		m.maps.SetSize(msg.Width/3, listHeight)
		m.presets.SetSize(msg.Width-msg.Width/3-4, listHeight)
		m.editor.SetWidth(max(msg.Width-4, 20))
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys while filtering presets
		if m.focus == panePresets && m.presets.FilterState() == list.Filtering {
			break
		}

		key := msg.String()
		if op, ok := submitKeys[key]; ok {
			return m, m.submit(op)
		}

		switch key {
		case "ctrl+c", "esc":
			m.result = Result{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit

		case "tab":
			return m, m.setFocus((m.focus + 1) % paneCount)

		case "shift+tab":
			return m, m.setFocus((m.focus + paneCount - 1) % paneCount)

		case "ctrl+s":
			m.skill = !m.skill
			m.loadPresets()
			return m, nil
		}

		if m.focus != paneEditor {
			switch key {
			case "q":
				m.result = Result{Action: ActionQuit}
				m.quitting = true
				return m, tea.Quit
			case "?":
				m.showHelp = !m.showHelp
				return m, nil
			}
		}

		switch m.focus {
		case paneMaps:
			switch key {
			case " ", "x":
				return m, m.toggle(m.maps.Index())
			case "a":
				return m, m.toggleAll()
			}

		case panePresets:
			if key == "enter" {
				m.appendPreset()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case paneMaps:
		m.maps, cmd = m.maps.Update(msg)
	case panePresets:
		m.presets, cmd = m.presets.Update(msg)
		if keyMsg, ok := msg.(tea.KeyMsg); ok && isHeaderSelected(&m.presets) {
			skipHeaders(&m.presets, navigationDirection(keyMsg))
		}
	case paneEditor:
		m.editor, cmd = m.editor.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	style := func(p pane) lipgloss.Style {
		if m.focus == p {
			return focusedPaneStyle
		}
		return paneStyle
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("CFGBeast - " + m.modeName()))
	sb.WriteString("\n")

	if m.showHelp {
		sb.WriteString(HelpText())
		sb.WriteString(helpStyle.Render("[?] Close help"))
		return sb.String()
	}

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		style(paneMaps).Render(m.maps.View()),
		style(panePresets).Render(m.presets.View()),
	))
	sb.WriteString("\n")
	sb.WriteString(style(paneEditor).Render(m.editor.View()))

	if m.status != "" {
		sb.WriteString("\n")
		sb.WriteString(statusStyle.Render(m.status))
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render(
		"[tab] Pane  [space] Toggle map  [a] All  [enter] Add preset  [ctrl+s] Skill\n" +
			"[ctrl+o] Create  [ctrl+p] Append  [ctrl+r] Remove  [ctrl+x] Delete  [?] Help  [esc] Quit"))
	return sb.String()
}

// Result returns the picker result
func (m Model) Result() Result {
	return m.result
}

// Entries returns the map checklist state
func (m Model) Entries() []bsp.Entry {
	return m.entries
}

// Editor returns the current cvar text
func (m Model) Editor() string {
	return m.editor.Value()
}

// Run runs the interactive picker
func Run(opts Options) (Result, error) {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	return finalModel.(Model).Result(), nil
}

// HelpText describes the workflow and the four operations
func HelpText() string {
	var sb strings.Builder
	sb.WriteString("Create, append, remove and delete map configs for the BSP files in a folder.\n\n")
	sb.WriteString("  1. Pick maps in the checklist; every map starts selected.\n")
	sb.WriteString("  2. Enter cvars in the editor, by adding presets or typing them.\n")
	sb.WriteString("  3. Apply an operation:\n")
	for _, op := range generator.Operations() {
		fmt.Fprintf(&sb, "       %-9s %s\n", op.String(), op.Description())
	}
	sb.WriteString("\nSkill mode (ctrl+s) writes <map>_skl.cfg using skill.cfg presets.\n")
	return sb.String()
}

// RenderChecklist renders entries as a plain checklist, one map per line
func RenderChecklist(entries []bsp.Entry) string {
	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "%s %s\n", checkbox(e.Selected), e.Name())
	}
	return sb.String()
}
