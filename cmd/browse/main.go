// browse is a terminal viewer for a converted JSON document: pick a verse
// from the list, see its Devanagari and IAST lines and the per-token
// renderings side by side.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/veda-tools/vedadiff/internal/corpus"
	"github.com/veda-tools/vedadiff/internal/verse"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	scriptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("222"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
	detailFrame = lipgloss.NewStyle().Padding(1, 2)
)

type verseItem struct {
	v verse.Verse
}

func (i verseItem) Title() string       { return i.v.Label }
func (i verseItem) Description() string { return i.v.IAST }
func (i verseItem) FilterValue() string { return i.v.Label + " " + i.v.IAST }

type model struct {
	doc      corpus.Document
	list     list.Model
	selected *verse.Verse
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.selected != nil {
				m.selected = nil
				return m, nil
			}
			return m, tea.Quit
		case "esc":
			m.selected = nil
			return m, nil
		case "enter":
			if m.selected == nil {
				if item, ok := m.list.SelectedItem().(verseItem); ok {
					v := item.v
					m.selected = &v
				}
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.selected == nil {
		return m.list.View()
	}
	return detailFrame.Render(renderVerse(m.doc.Title, *m.selected))
}

func renderVerse(title string, v verse.Verse) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s — %s", title, v.Label)))
	b.WriteString("\n\n")
	b.WriteString(scriptStyle.Render(v.Devanagari))
	b.WriteString("\n")
	b.WriteString(v.IAST)
	b.WriteString("\n\n")
	for _, tok := range v.Tokens {
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			labelStyle.Render(fmt.Sprintf("%2d", tok.Index)),
			scriptStyle.Render(tok.Devanagari),
			tok.IAST,
		))
	}
	b.WriteString(helpStyle.Render("esc: back  q: quit"))
	return b.String()
}

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	fs := ff.NewFlagSet("vedadiff-browse")
	input := fs.StringLong("input", "", "Converted JSON document to browse")

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}
	if *input == "" {
		return fmt.Errorf("input is required")
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *input, err)
	}
	var doc corpus.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decoding %s: %w", *input, err)
	}

	items := make([]list.Item, 0, len(doc.Verses))
	for _, v := range doc.Verses {
		items = append(items, verseItem{v: v})
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = doc.Title

	p := tea.NewProgram(model{doc: doc, list: l}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}
