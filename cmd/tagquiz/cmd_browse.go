package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tagquiz/cmd/tagquiz/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Read corpus sentences with their tags",
	Long: `Opens a pager over the corpus for studying the annotation.

Keys:
  n, right   next sentence
  p, left    previous sentence
  t          toggle tags on/off
  q, esc     quit`,
	RunE: runBrowse,
}

// browseModel wraps the browse page for standalone running.
type browseModel struct {
	page ui.BrowsePageModel
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.page.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "n", "right":
			m.page.Next()
			return m, nil
		case "p", "left":
			m.page.Prev()
			return m, nil
		case "t":
			m.page.ToggleTags()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)
	return m, cmd
}

func (m browseModel) View() string { return m.page.View() }

func runBrowse(cmd *cobra.Command, args []string) error {
	corpus, err := loadCorpus()
	if err != nil {
		return err
	}

	model := browseModel{page: ui.NewBrowsePageModel(corpus, activeStyles())}
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browse UI failed: %w", err)
	}
	return nil
}
