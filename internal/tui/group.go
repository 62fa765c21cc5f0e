package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/cfgbeast/internal/cvar"
)

// otherCategory collects cvars without an underscore prefix.
const otherCategory = "other"

// headerItem is a non-selectable group separator in the preset list.
type headerItem struct {
	label string
}

func (h headerItem) FilterValue() string { return "" }
func (h headerItem) Title() string       { return h.label }
func (h headerItem) Description() string { return "" }

// presetItem is one cvar line offered for the editor.
type presetItem struct {
	cvar string
}

func (p presetItem) FilterValue() string { return p.cvar }
func (p presetItem) Title() string       { return p.cvar }
func (p presetItem) Description() string { return "" }

// category returns the group of a cvar line: the part of its name before
// the first underscore, e.g. "mp" for "mp_timelimit 20".
func category(line string) string {
	name, _, _ := strings.Cut(line, " ")
	prefix, _, found := strings.Cut(name, "_")
	if !found || prefix == "" {
		return otherCategory
	}
	return strings.ToLower(prefix)
}

// buildGroupedItems groups cvars by category and returns list items with
// headerItem separators. Categories appear in order of first use, which
// for a sorted catalog is alphabetical. A failure list is shown as is.
func buildGroupedItems(cvars []string) []list.Item {
	if len(cvars) == 0 {
		return nil
	}

	if cvar.IsFailure(cvars) {
		items := make([]list.Item, len(cvars))
		for i, c := range cvars {
			items[i] = headerItem{label: c}
		}
		return items
	}

	var order []string
	groups := make(map[string][]string)
	for _, c := range cvars {
		key := category(c)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], c)
	}

	var items []list.Item
	for _, key := range order {
		items = append(items, headerItem{label: key})
		for _, c := range groups[key] {
			items = append(items, presetItem{cvar: c})
		}
	}
	return items
}

// headerStyle is the style for group header items.
var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("241")).
	PaddingLeft(2)

// groupedDelegate renders both headerItem and presetItem in the preset list.
type groupedDelegate struct {
	inner list.DefaultDelegate
}

func newGroupedDelegate() groupedDelegate {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = selectedStyle
	return groupedDelegate{inner: delegate}
}

func (d groupedDelegate) Height() int                             { return d.inner.Height() }
func (d groupedDelegate) Spacing() int                            { return d.inner.Spacing() }
func (d groupedDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d groupedDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	if h, ok := item.(headerItem); ok {
		fmt.Fprint(w, headerStyle.Render(h.label))
		return
	}

	d.inner.Render(w, m, index, item)
}

// skipHeaders moves the cursor off a headerItem.
// direction should be 1 (down) or -1 (up).
func skipHeaders(l *list.Model, direction int) {
	items := l.VisibleItems()
	if len(items) == 0 {
		return
	}

	idx := l.Index()
	if idx < 0 || idx >= len(items) {
		return
	}
	if _, ok := items[idx].(headerItem); !ok {
		return
	}

	next := idx + direction
	if next >= 0 && next < len(items) {
		if _, ok := items[next].(headerItem); !ok {
			l.Select(next)
			return
		}
	}

	opposite := idx - direction
	if opposite >= 0 && opposite < len(items) {
		if _, ok := items[opposite].(headerItem); !ok {
			l.Select(opposite)
			return
		}
	}

	for i := 0; i < len(items); i++ {
		candidate := (idx + i*direction + len(items)) % len(items)
		if _, ok := items[candidate].(headerItem); !ok {
			l.Select(candidate)
			return
		}
	}
}

// isHeaderSelected returns true if the currently selected item is a headerItem.
func isHeaderSelected(l *list.Model) bool {
	if item := l.SelectedItem(); item != nil {
		_, ok := item.(headerItem)
		return ok
	}
	return false
}

// navigationDirection returns -1 for up/k keys and 1 otherwise.
func navigationDirection(msg tea.KeyMsg) int {
	switch msg.String() {
	case "up", "k", "pgup", "home", "g":
		return -1
	default:
		return 1
	}
}

// headerCount returns the number of headerItems in items.
func headerCount(items []list.Item) int {
	count := 0
	for _, item := range items {
		if _, ok := item.(headerItem); ok {
			count++
		}
	}
	return count
}
