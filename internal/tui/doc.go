// Package tui provides the interactive terminal front end for cfgbeast.
//
// The picker shows three panes: a checklist of the maps in the folder, the
// cvar presets from the installation's catalog grouped by prefix, and a
// free-text cvar editor. Submitting returns a Result that the caller turns
// into a generator.Request:
//
//	res, err := tui.Run(tui.Options{Maps: maps, Cvars: catalog.Cvars})
//	switch res.Action {
//	case tui.ActionSubmit:
//	    n, err := gen.Create(res.Request(dir))
//	case tui.ActionQuit:
//	    // Exit
//	}
//
// # Keys
//
//   - tab / shift+tab: move between panes
//   - space or x: toggle the highlighted map, a: toggle all maps
//   - enter (presets): append the highlighted preset to the editor
//   - ctrl+s: switch between map cfg and skill cfg mode
//   - ctrl+o create, ctrl+p append, ctrl+r remove, ctrl+x delete
//   - ?: help, q / esc: quit
//
// Submitting with no map selected is refused with a status message.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - list and textarea components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
