package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"tagquiz/internal/treebank"
)

// BrowsePageModel pages through corpus sentences with tags shown or
// hidden, for study between rounds.
type BrowsePageModel struct {
	viewport viewport.Model
	corpus   *treebank.Corpus
	styles   Styles
	index    int
	showTags bool
	width    int
	height   int
}

// NewBrowsePageModel creates a new browse page over the corpus.
func NewBrowsePageModel(corpus *treebank.Corpus, styles Styles) BrowsePageModel {
	vp := viewport.New(80, 20)
	m := BrowsePageModel{
		viewport: vp,
		corpus:   corpus,
		styles:   styles,
		showTags: true,
	}
	m.UpdateContent()
	return m
}

// SetSize updates the size of the viewport.
func (m *BrowsePageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h - 2 // Reserve space for the key hints
	m.UpdateContent()
}

// Next advances to the following sentence.
func (m *BrowsePageModel) Next() {
	if m.index < m.corpus.Len()-1 {
		m.index++
		m.UpdateContent()
	}
}

// Prev steps back one sentence.
func (m *BrowsePageModel) Prev() {
	if m.index > 0 {
		m.index--
		m.UpdateContent()
	}
}

// ToggleTags flips between the bare sentence and the annotated one.
func (m *BrowsePageModel) ToggleTags() {
	m.showTags = !m.showTags
	m.UpdateContent()
}

// UpdateContent refreshes the viewport from the current sentence.
func (m *BrowsePageModel) UpdateContent() {
	if m.corpus == nil || m.corpus.Len() == 0 {
		m.viewport.SetContent("Corpus is empty.")
		return
	}

	sent := m.corpus.Sentences[m.index]

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(
		fmt.Sprintf("Sentence %d of %d", m.index+1, m.corpus.Len())))
	sb.WriteString("\n\n")

	if m.showTags {
		for _, w := range sent {
			sb.WriteString(fmt.Sprintf("%-18s %s\n",
				w.Token, m.styles.Correct.Render(w.Tag)))
		}
	} else {
		sb.WriteString(strings.Join(sent.Tokens(), " "))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Hint.Render(
			fmt.Sprintf("Total tokens: %d", len(sent))))
		sb.WriteString("\n")
	}

	m.viewport.SetContent(sb.String())
}

// Update handles messages.
func (m BrowsePageModel) Update(msg tea.Msg) (BrowsePageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m BrowsePageModel) View() string {
	hints := m.styles.Muted.Render("n/p: next/prev   t: toggle tags   q: quit")
	return m.viewport.View() + "\n" + hints
}
