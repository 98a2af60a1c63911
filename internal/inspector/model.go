// Package inspector is the terminal UI for cmd/justact audit --tui: a
// scrollable list of enacted actions with a detail pane showing each
// action's computed Permission, in the split-pane list+viewport style of
// the teacher's JIT prompt inspector (cmd/nerd/ui/jit_page.go).
package inspector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"justact/internal/audit"
	"justact/internal/wire"
)

// Entry is one enacted action paired with its audited Result, the unit the
// inspector lists.
type Entry struct {
	Seq    int
	Action wire.Action
	Result audit.Result
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

type entryItem struct{ entry Entry }

func (i entryItem) Title() string {
	verdict := "DENIED"
	style := errorStyle
	if i.entry.Result.IsPermitted() {
		verdict = "PERMITTED"
		style = successStyle
	}
	return fmt.Sprintf("#%d %s %s", i.entry.Seq, i.entry.Action.ID(), style.Render(verdict))
}

func (i entryItem) Description() string {
	return fmt.Sprintf("actor=%s", i.entry.Action.ActorID)
}

func (i entryItem) FilterValue() string {
	return fmt.Sprintf("%d %s %s", i.entry.Seq, i.entry.Action.ID(), i.entry.Action.ActorID)
}

// Model is the bubbletea model driving the inspector's split view.
type Model struct {
	width, height int
	list          list.Model
	viewport      viewport.Model
	selected      *Entry
}

// New builds an inspector Model over the given audited entries.
func New(entries []Entry) Model {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = entryItem{entry: e}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("Enactments (%d)", len(entries))
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	vp := viewport.New(0, 0)
	vp.SetContent("Select an enactment to view its permission verdict.")

	return Model{list: l, viewport: vp}
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update satisfies tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	if sel := m.list.SelectedItem(); sel != nil {
		item := sel.(entryItem)
		if m.selected == nil || m.selected.Seq != item.entry.Seq {
			entry := item.entry
			m.selected = &entry
			m.viewport.SetContent(renderDetail(entry))
		}
	}

	return m, tea.Batch(cmds...)
}

// View satisfies tea.Model.
func (m Model) View() string {
	listWidth := int(float64(m.width) * 0.4)
	viewWidth := m.width - listWidth - 4

	listView := lipgloss.NewStyle().Width(listWidth).Render(m.list.View())
	detailView := lipgloss.NewStyle().Width(viewWidth).Render(m.viewport.View())
	main := lipgloss.JoinHorizontal(lipgloss.Top, listView, detailView)
	help := mutedStyle.Render(" • enter: select • /: filter • q: quit")
	return lipgloss.JoinVertical(lipgloss.Left, main, help)
}

// SetSize resizes the list and viewport to fit w x h.
func (m *Model) SetSize(w, h int) {
	m.width, m.height = w, h
	listWidth := int(float64(w) * 0.4)
	m.list.SetSize(listWidth, h-2)
	m.viewport.Width = w - listWidth - 4
	m.viewport.Height = h - 2
}

func renderDetail(e Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", headerStyle.Render(fmt.Sprintf("Action %s", e.Action.ID())))
	fmt.Fprintf(&b, "actor: %s\n\n", e.Action.ActorID)

	if e.Result.Err != nil {
		fmt.Fprintf(&b, "%s\n%s\n", errorStyle.Render("SYNTAX ERROR"), e.Result.Err.Error())
		return b.String()
	}

	p := e.Result.Permission
	fmt.Fprintf(&b, "stated:  %v\n", p.Stated)
	fmt.Fprintf(&b, "based:   %v\n", p.Based)
	fmt.Fprintf(&b, "valid:   %v\n", p.Valid)
	fmt.Fprintf(&b, "current: %v\n\n", p.Current)

	if e.Result.IsPermitted() {
		b.WriteString(successStyle.Render("PERMITTED") + "\n\n")
	} else {
		b.WriteString(errorStyle.Render("NOT PERMITTED") + "\n\n")
	}

	b.WriteString(headerStyle.Render("truths") + "\n")
	for _, t := range p.Truths {
		fmt.Fprintf(&b, "  %s\n", t.String())
	}
	b.WriteString("\n" + headerStyle.Render("effects") + "\n")
	for _, eff := range p.Effects {
		fmt.Fprintf(&b, "  %s\n", eff.String())
	}
	return b.String()
}
