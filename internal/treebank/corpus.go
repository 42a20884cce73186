package treebank

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Corpus is a fixed, read-only collection of tagged sentences loaded from
// a directory of .mrg files. It is loaded once at startup and passed to
// the sampler and quiz explicitly; nothing mutates it afterwards.
type Corpus struct {
	Sentences []Sentence
	Dir       string
	Files     int
}

// Len returns the number of sentences in the corpus.
func (c *Corpus) Len() int { return len(c.Sentences) }

// TokenCount returns the total number of taggable tokens in the corpus.
func (c *Corpus) TokenCount() int {
	n := 0
	for _, s := range c.Sentences {
		n += len(s)
	}
	return n
}

// LoadDir loads every .mrg file under dir (recursively, in sorted path
// order so the corpus order is stable across runs) and flattens the
// parse trees into tagged sentences. Trees left empty after -NONE-
// stripping are dropped.
func LoadDir(dir string) (*Corpus, error) {
	files, err := mrgFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("scan corpus dir: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .mrg files under %s", dir)
	}

	c := &Corpus{Dir: dir, Files: len(files)}
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		trees, err := ParseTrees(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		for _, t := range trees {
			if sent := t.TaggedWords(); len(sent) > 0 {
				c.Sentences = append(c.Sentences, sent)
			}
		}
	}
	if len(c.Sentences) == 0 {
		return nil, fmt.Errorf("no sentences in corpus at %s", dir)
	}
	return c, nil
}

func mrgFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".mrg") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
