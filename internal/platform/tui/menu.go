package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-chase/internal/games/chase/mazes"
	"github.com/vovakirdan/tui-chase/internal/registry"
)

// mazeGame is implemented by games that can describe their maze.
type mazeGame interface {
	Maze() mazes.Maze
}

// MenuItem represents a selectable maze in the picker.
type MenuItem struct {
	GameID       string
	Title        string
	Rows, Cols   int
	Collectibles int
}

// MenuItems lists every registered maze.
func MenuItems() []MenuItem {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	for _, info := range games {
		item := MenuItem{GameID: info.ID, Title: info.Title}
		if g, err := registry.Create(info.ID); err == nil {
			if mg, ok := g.(mazeGame); ok {
				m := mg.Maze()
				item.Rows, item.Cols = m.Size()
				item.Collectibles = m.Collectibles()
			}
		}
		items = append(items, item)
	}
	return items
}

// MenuModel is the Bubble Tea model for the maze picker.
type MenuModel struct {
	items    []MenuItem
	table    table.Model
	keys     MenuKeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
	selected *MenuItem // Set when user selects a maze
}

// NewMenuModel creates a new menu model.
func NewMenuModel(width, height int) MenuModel {
	m := MenuModel{
		items:  MenuItems(),
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.createTable()
	return m
}

// createTable creates the maze table sized to the window.
func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Maze", Width: 14},
		{Title: "Name", Width: 18},
		{Title: "Size", Width: 8},
		{Title: "Dots", Width: 6},
	}

	rows := make([]table.Row, len(m.items))
	for i, item := range m.items {
		rows[i] = table.Row{
			item.GameID,
			item.Title,
			fmt.Sprintf("%dx%d", item.Cols, item.Rows),
			fmt.Sprintf("%d", item.Collectibles),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for title, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.items) {
				selected := m.items[i]
				m.selected = &selected
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		cursor := m.table.Cursor()
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		return m, nil
	}

	// Pass other messages to table for navigation
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("11"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("C H A S E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a maze", m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Render("No mazes available.")
		b.WriteString(centerText(empty, m.width))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.table.View())))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
