package ui

import (
	"strings"
	"testing"

	"tagquiz/internal/treebank"
)

func browseCorpus() *treebank.Corpus {
	return &treebank.Corpus{
		Sentences: []treebank.Sentence{
			{
				{Token: "The", Tag: "DT"},
				{Token: "duck", Tag: "NN"},
				{Token: ".", Tag: "."},
			},
			{
				{Token: "It", Tag: "PRP"},
				{Token: "flew", Tag: "VBD"},
				{Token: ".", Tag: "."},
			},
		},
	}
}

func TestBrowsePageModelNavigation(t *testing.T) {
	model := NewBrowsePageModel(browseCorpus(), PlainStyles())
	model.SetSize(80, 20)

	view := model.View()
	if !strings.Contains(view, "Sentence 1 of 2") {
		t.Fatalf("expected first sentence header, got: %s", view)
	}
	if !strings.Contains(view, "duck") {
		t.Fatalf("expected tokens in view")
	}
	if !strings.Contains(view, "DT") {
		t.Fatalf("expected tags shown by default")
	}

	model.Next()
	view = model.View()
	if !strings.Contains(view, "Sentence 2 of 2") {
		t.Fatalf("expected second sentence after Next")
	}
	if !strings.Contains(view, "flew") {
		t.Fatalf("expected second sentence tokens")
	}

	// Walking past the end stays put.
	model.Next()
	if !strings.Contains(model.View(), "Sentence 2 of 2") {
		t.Fatalf("Next past the end should not move")
	}

	model.Prev()
	if !strings.Contains(model.View(), "Sentence 1 of 2") {
		t.Fatalf("expected first sentence after Prev")
	}
	model.Prev()
	if !strings.Contains(model.View(), "Sentence 1 of 2") {
		t.Fatalf("Prev past the start should not move")
	}
}

func TestBrowsePageModelToggleTags(t *testing.T) {
	model := NewBrowsePageModel(browseCorpus(), PlainStyles())
	model.SetSize(80, 20)

	model.ToggleTags()
	view := model.View()
	if strings.Contains(view, "DT") {
		t.Fatalf("tags should be hidden after toggle, got: %s", view)
	}
	if !strings.Contains(view, "Total tokens: 3") {
		t.Fatalf("hidden mode should show the token count")
	}

	model.ToggleTags()
	if !strings.Contains(model.View(), "DT") {
		t.Fatalf("tags should return after a second toggle")
	}
}

func TestBrowsePageModelEmptyCorpus(t *testing.T) {
	model := NewBrowsePageModel(&treebank.Corpus{}, PlainStyles())
	if !strings.Contains(model.View(), "Corpus is empty") {
		t.Fatalf("expected empty-corpus notice")
	}
}
