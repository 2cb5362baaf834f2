package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joeyjackson/fourier-series-drawer/internal/catalog"
	"github.com/joeyjackson/fourier-series-drawer/internal/media"
)

// PickedMsg reports the picker's choice: either a catalog Name or a file
// Path to load.
type PickedMsg struct {
	Name string
	Path string
}

// PickCancelledMsg reports that the picker was closed without a choice.
type PickCancelledMsg struct{}

type signalItem struct {
	name   string
	points int
}

func (i signalItem) Title() string       { return i.name }
func (i signalItem) Description() string { return fmt.Sprintf("%d points", i.points) }
func (i signalItem) FilterValue() string { return i.name }

type fileItem struct {
	name string
	ext  string
}

func (i fileItem) Title() string       { return i.name }
func (i fileItem) Description() string { return i.ext }
func (i fileItem) FilterValue() string { return i.name }

type openItem struct{}

func (i openItem) Title() string       { return "Open file..." }
func (i openItem) Description() string { return "enter a " + media.SupportedExtsList() + " or playlist path" }
func (i openItem) FilterValue() string { return "open" }

// Picker lists the catalog and the loadable files in the working directory.
type Picker struct {
	list     list.Model
	input    textinput.Model
	pathMode bool
}

// NewPicker builds a picker over c and the current directory. An unreadable
// directory only hides the file entries.
func NewPicker(c *catalog.Catalog) Picker {
	items := []list.Item{openItem{}}
	for _, name := range c.Names() {
		sig, err := c.Get(name)
		if err != nil {
			continue
		}
		items = append(items, signalItem{name: sig.Name, points: len(sig.Path)})
	}

	if entries, err := os.ReadDir("."); err == nil {
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(e.Name()))
			if !media.IsSupportedExt(ext) && !media.IsPlaylistExt(ext) {
				continue
			}
			items = append(items, fileItem{name: strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())), ext: filepath.Ext(e.Name())})
		}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(palette.text).
		BorderLeftForeground(palette.accent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(palette.muted).
		BorderLeftForeground(palette.accent)

	l := list.New(items, delegate, 80, 20)
	l.Title = "signals"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = brandStyle

	ti := textinput.New()
	ti.Placeholder = "path/to/drawing.json"
	ti.CharLimit = 4096
	ti.Width = 60

	return Picker{list: l, input: ti}
}

// SetSize fits the list to the terminal.
func (p *Picker) SetSize(width, height int) {
	p.list.SetWidth(width)
	p.list.SetHeight(height)
}

func (p Picker) Init() tea.Cmd {
	return tea.SetWindowTitle("fourier - pick a signal")
}

func picked(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if p.pathMode {
		return p.updatePathInput(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if p.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			switch item := p.list.SelectedItem().(type) {
			case openItem:
				p.pathMode = true
				p.input.Focus()
				return p, textinput.Blink
			case signalItem:
				return p, picked(PickedMsg{Name: item.name})
			case fileItem:
				return p, picked(PickedMsg{Path: item.name + item.ext})
			}
		case "q", "esc", "ctrl+c":
			return p, picked(PickCancelledMsg{})
		}

	case tea.WindowSizeMsg:
		p.SetSize(msg.Width, msg.Height)
		return p, nil
	}

	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

func (p Picker) updatePathInput(msg tea.Msg) (Picker, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			if path := strings.TrimSpace(p.input.Value()); path != "" {
				return p, picked(PickedMsg{Path: path})
			}
		case "esc":
			p.pathMode = false
			p.input.Reset()
			p.input.Blur()
			return p, nil
		case "ctrl+c":
			return p, picked(PickCancelledMsg{})
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Picker) View() string {
	if p.pathMode {
		s := "\n"
		s += "  " + brandStyle.Render("fourier") + "\n"
		s += "\n"
		s += "  " + statusStyle.Render("Open file:") + "\n"
		s += "  " + p.input.View() + "\n"
		s += "\n"
		s += "  " + keysStyle.Render("enter confirm  esc back  ctrl+c cancel")
		return s
	}
	return p.list.View()
}
