package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/gedtree/pkg/export"
	"github.com/matzehuels/gedtree/pkg/gedcom"
	"github.com/matzehuels/gedtree/pkg/search"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// BrowseModel - Interactive family browser
// =============================================================================

// relative is one navigable entry of the detail view.
type relative struct {
	Label string
	Elem  *gedcom.Element
}

// BrowseModel is the bubbletea model for the browse command. It starts with
// a list of all individuals; enter opens a person, whose relatives can be
// followed in turn. Backspace walks back through the visited people.
type BrowseModel struct {
	Doc  *gedcom.Document
	Opts export.Options

	// List view
	All       []*gedcom.Element
	Visible   []*gedcom.Element
	Cursor    int
	Offset    int
	Height    int
	Filter    string
	Filtering bool

	// Detail view; Focus is nil in the list view.
	Focus     *gedcom.Element
	Relatives []relative
	RelCursor int
	History   []*gedcom.Element
}

// NewBrowseModel creates a browser over all individuals of doc.
func NewBrowseModel(doc *gedcom.Document, opts export.Options) BrowseModel {
	all := doc.Individuals()
	return BrowseModel{
		Doc:     doc,
		Opts:    opts,
		All:     all,
		Visible: all,
		Height:  15,
	}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.Focus != nil {
			return m.updateDetail(msg)
		}
		if m.Filtering {
			return m.updateFilter(msg), nil
		}
		return m.updateList(msg)
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m BrowseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "/":
		m.Filtering = true
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
			if m.Cursor < m.Offset {
				m.Offset = m.Cursor
			}
		}
	case "down", "j":
		if m.Cursor < len(m.Visible)-1 {
			m.Cursor++
			if m.Cursor >= m.Offset+m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case "enter":
		if len(m.Visible) > 0 {
			m = m.open(m.Visible[m.Cursor])
		}
	}
	return m, nil
}

func (m BrowseModel) updateFilter(msg tea.KeyMsg) BrowseModel {
	switch msg.Type {
	case tea.KeyEnter:
		m.Filtering = false
		return m
	case tea.KeyEsc:
		m.Filtering = false
		m.Filter = ""
	case tea.KeyBackspace:
		if m.Filter != "" {
			r := []rune(m.Filter)
			m.Filter = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.Filter += string(msg.Runes)
	default:
		return m
	}
	return m.applyFilter()
}

// applyFilter ranks individuals by fuzzy name match. An empty filter shows
// everyone in source order.
func (m BrowseModel) applyFilter() BrowseModel {
	m.Cursor, m.Offset = 0, 0
	if strings.TrimSpace(m.Filter) == "" {
		m.Visible = m.All
		return m
	}
	matches := search.Individuals(m.Doc, m.Filter, 0)
	m.Visible = make([]*gedcom.Element, len(matches))
	for i, match := range matches {
		m.Visible[i] = match.Individual
	}
	return m
}

func (m BrowseModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "backspace", "esc", "left", "h":
		if n := len(m.History); n > 0 {
			prev := m.History[n-1]
			m.History = m.History[:n-1]
			m.Focus = prev
			m.Relatives = relativesOf(m.Doc, prev)
			m.RelCursor = 0
		} else {
			m.Focus = nil
		}
	case "up", "k":
		if m.RelCursor > 0 {
			m.RelCursor--
		}
	case "down", "j":
		if m.RelCursor < len(m.Relatives)-1 {
			m.RelCursor++
		}
	case "enter", "right", "l":
		if len(m.Relatives) > 0 {
			m.History = append(m.History, m.Focus)
			m = m.open(m.Relatives[m.RelCursor].Elem)
		}
	}
	return m, nil
}

func (m BrowseModel) open(ind *gedcom.Element) BrowseModel {
	m.Focus = ind
	m.Relatives = relativesOf(m.Doc, ind)
	m.RelCursor = 0
	return m
}

// relativesOf lists parents, spouses, siblings and children, in that order.
func relativesOf(doc *gedcom.Document, ind *gedcom.Element) []relative {
	var out []relative
	add := func(label string, elems []*gedcom.Element, err error) {
		if err != nil {
			return
		}
		for _, e := range elems {
			out = append(out, relative{Label: label, Elem: e})
		}
	}

	parents, err := doc.Parents(ind)
	if err == nil {
		if parents.Father != nil {
			out = append(out, relative{Label: "father", Elem: parents.Father})
		}
		if parents.Mother != nil {
			out = append(out, relative{Label: "mother", Elem: parents.Mother})
		}
	}
	spouses, err := doc.Spouses(ind)
	add("spouse", spouses, err)
	siblings, err := doc.Siblings(ind)
	add("sibling", siblings, err)
	children, err := doc.Children(ind)
	add("child", children, err)
	return out
}

func (m BrowseModel) View() string {
	if m.Focus != nil {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m BrowseModel) viewList() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Individuals"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ open  / search  q quit"))
	b.WriteString("\n")
	if m.Filtering || m.Filter != "" {
		cursor := ""
		if m.Filtering {
			cursor = "█"
		}
		b.WriteString(StyleHighlight.Render("/" + m.Filter + cursor))
	}
	b.WriteString("\n\n")

	if len(m.Visible) == 0 {
		b.WriteString(listDimStyle.Render("  no matches"))
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Visible))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		ind := m.Visible[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			ind.Pointer(),
			ind.Name(),
			export.FormatEventDate(ind.Birth(), m.Opts),
			export.FormatEventDate(ind.Death(), m.Opts),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Pointer", "Name", "Born", "Died").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Visible))))

	return b.String()
}

func (m BrowseModel) viewDetail() string {
	var b strings.Builder

	p, err := export.Summarize(m.Doc, m.Focus, m.Opts)
	if err != nil {
		return StyleWarning.Render(err.Error())
	}

	b.WriteString(StyleTitle.Render(describe(p.Pointer, p.Name)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ open relative  ⌫ back  q quit"))
	b.WriteString("\n\n")

	for _, kv := range [][2]string{
		{"Gender", p.Gender},
		{"Occupation", p.Occupation},
		{"Born", p.Birth},
		{"Died", p.Death},
	} {
		if kv[1] == "" {
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(colorGray).Width(12).Render(kv[0]))
		b.WriteString(" ")
		b.WriteString(StyleValue.Render(kv[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.Relatives) == 0 {
		b.WriteString(listDimStyle.Render("  no known relatives"))
		return b.String()
	}
	for i, r := range m.Relatives {
		line := fmt.Sprintf("%-8s %s", r.Label, describe(r.Elem.Pointer(), r.Elem.Name()))
		if i == m.RelCursor {
			b.WriteString(listSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
