// Package main tagset reference. The tag table is baked into the
// binary with go:embed so the command works before any corpus exists.
package main

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed tagset.md
var tagsetDoc string

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Show the Penn Treebank tagset reference",
	Long: `Prints the full Penn Treebank part-of-speech tagset with a short
description and examples for each tag. Useful to keep open in a second
terminal while playing.`,
	RunE: showTags,
}

func showTags(cmd *cobra.Command, args []string) error {
	if !cfg.UI.Color {
		fmt.Print(tagsetDoc)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(cfg.Quiz.Width),
	)
	if err != nil {
		// A renderer failure should never hide the reference.
		fmt.Print(tagsetDoc)
		return nil
	}

	out, err := renderer.Render(tagsetDoc)
	if err != nil {
		fmt.Print(tagsetDoc)
		return nil
	}
	fmt.Print(out)
	return nil
}
