package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
)

type screen int

const (
	screenBrowser screen = iota
	screenPlan
)

type spaceItem struct {
	ref domain.SpaceRef
}

func (s spaceItem) Title() string { return s.ref.ID }
func (s spaceItem) Description() string {
	return fmt.Sprintf("style=%s rooms=%d", s.ref.Style, s.ref.RoomCount)
}
func (s spaceItem) FilterValue() string { return s.ref.ID + " " + s.ref.Style }

type model struct {
	theme Theme
	deps  Deps

	scr    screen
	picker list.Model
	toast  string

	workspaceFound bool
	workspaceRoot  string

	current   domain.Space
	currentID string

	termWidth  int
	termHeight int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Spaces"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme:  t,
		deps:   deps,
		scr:    screenBrowser,
		picker: l,
	}
}

func (m model) Init() tea.Cmd {
	return cmdRefreshWorkspace(m.deps)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth, m.termHeight = msg.Width, msg.Height
		m.picker.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		if msg.found {
			return m, cmdLoadSpaces(msg.root)
		}
		if msg.err != nil {
			m.toast = userMessage(msg.err)
		}
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace initialized"
		return m, cmdRefreshWorkspace(m.deps)

	case spacesLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			items = append(items, spaceItem{ref: r})
		}
		m.picker.SetItems(items)
		return m, nil

	case spaceLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.current = msg.space
		m.currentID = msg.ref.ID
		m.scr = screenPlan
		m.toast = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenBrowser {
				return m, tea.Quit
			}
			m.scr = screenBrowser
			return m, nil

		case "enter":
			if m.scr == screenBrowser && m.workspaceFound {
				it, ok := m.picker.SelectedItem().(spaceItem)
				if !ok {
					return m, nil
				}
				return m, cmdLoadSpace(m.workspaceRoot, it.ref)
			}

		case "r":
			if m.scr == screenBrowser && m.workspaceFound {
				return m, cmdLoadSpaces(m.workspaceRoot)
			}

		case "i":
			if m.scr == screenBrowser && !m.workspaceFound {
				return m, cmdInitWorkspaceHere(m.deps, ".")
			}

		case "esc", "b":
			if m.scr != screenBrowser {
				m.scr = screenBrowser
				return m, nil
			}
		}
	}

	if m.scr == screenBrowser {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("spacegen") + "\n" +
		m.theme.Subtitle.Render("procedural interior spaces: browse and view generated layouts") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Warn.Render(
			"⚠ No workspace found.\n\nPress i to initialize one here, or run `spacegen init`.",
		)
	}

	toast := ""
	if m.toast != "" {
		toast = "\n" + m.theme.Help.Render(m.toast)
	}

	switch m.scr {
	case screenBrowser:
		help := m.theme.Help.Render("↑/↓ navigate • enter view • r reload • / search • q quit")
		return wrap.Render(header + "\n" + workspaceBanner + toast + "\n\n" + m.theme.Card.Render(m.picker.View()) + "\n" + help)

	case screenPlan:
		planW := m.termWidth - 12
		planH := m.termHeight - 16
		card := m.theme.Card.Render(
			m.theme.Title.Render(m.currentID) + "\n\n" +
				renderSpaceSummary(m.current) + "\n\n" +
				m.theme.Plan.Render(RenderFloorplan(m.current, planW, planH)) + "\n\n" +
				m.theme.Help.Render("esc/b back • q browser"),
		)
		return wrap.Render(header + "\n" + workspaceBanner + toast + "\n\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
