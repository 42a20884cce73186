package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tagquiz/internal/config"
)

const testTree = `( (S (NP-SBJ (DT The) (NN duck)) (VP (VBD saw) (NP (PRP me))) (. .)) )`

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origOut := os.Stdout
	rOut, wOut, _ := os.Pipe()
	os.Stdout = wOut

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		done <- buf.String()
	}()

	fn()

	_ = wOut.Close()
	os.Stdout = origOut
	return <-done
}

// testConfig installs a self-contained configuration and restores the
// previous one when the test ends.
func testConfig(t *testing.T) *config.Config {
	t.Helper()

	origCfg, origLogger := cfg, logger
	t.Cleanup(func() { cfg, logger = origCfg, origLogger })

	cfg = config.DefaultConfig()
	cfg.Corpus.CacheDir = t.TempDir()
	cfg.UI.Color = false
	logger = zap.NewNop()
	return cfg
}

func writeCorpusDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "wsj_0001.mrg"), []byte(testTree), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestShowCorpus_ColdCache(t *testing.T) {
	testConfig(t)

	output := captureOutput(t, func() {
		if err := showCorpus(&cobra.Command{}, nil); err != nil {
			t.Errorf("showCorpus returned error: %v", err)
		}
	})

	if !strings.Contains(output, "Corpus not present") {
		t.Errorf("expected cold-cache notice, got: %s", output)
	}
	if !strings.Contains(output, "tagquiz corpus fetch") {
		t.Errorf("expected fetch hint, got: %s", output)
	}
}

func TestShowCorpus_WithData(t *testing.T) {
	c := testConfig(t)
	c.Corpus.DataDir = writeCorpusDir(t)

	output := captureOutput(t, func() {
		if err := showCorpus(&cobra.Command{}, nil); err != nil {
			t.Errorf("showCorpus returned error: %v", err)
		}
	})

	for _, want := range []string{"Files:     1", "Sentences: 1", "Tokens:    5"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestFetchCorpus_OfflineColdCache(t *testing.T) {
	c := testConfig(t)
	c.Corpus.Offline = true

	if err := fetchCorpus(&cobra.Command{}, nil); err == nil {
		t.Error("expected an error fetching offline with a cold cache")
	}
}

func TestInitConfigCmd(t *testing.T) {
	testConfig(t)

	origCfgFile := cfgFile
	cfgFile = filepath.Join(t.TempDir(), "config.yaml")
	defer func() { cfgFile = origCfgFile }()

	output := captureOutput(t, func() {
		if err := initConfig(&cobra.Command{}, nil); err != nil {
			t.Errorf("initConfig returned error: %v", err)
		}
	})
	if !strings.Contains(output, "Wrote defaults") {
		t.Errorf("expected write notice, got: %s", output)
	}
	if _, err := os.Stat(cfgFile); err != nil {
		t.Errorf("config file was not written: %v", err)
	}

	// Second run must leave the existing file alone.
	output = captureOutput(t, func() {
		if err := initConfig(&cobra.Command{}, nil); err != nil {
			t.Errorf("initConfig second run returned error: %v", err)
		}
	})
	if !strings.Contains(output, "already exists") {
		t.Errorf("expected already-exists notice, got: %s", output)
	}
}

func TestShowConfigCmd(t *testing.T) {
	testConfig(t)

	output := captureOutput(t, func() {
		if err := showConfig(&cobra.Command{}, nil); err != nil {
			t.Errorf("showConfig returned error: %v", err)
		}
	})

	if !strings.Contains(output, "sentences: 5") {
		t.Errorf("expected effective sentence count, got: %s", output)
	}
	if !strings.Contains(output, "width: 80") {
		t.Errorf("expected effective width, got: %s", output)
	}
}

func TestShowTagsCmd(t *testing.T) {
	testConfig(t)

	output := captureOutput(t, func() {
		if err := showTags(&cobra.Command{}, nil); err != nil {
			t.Errorf("showTags returned error: %v", err)
		}
	})

	for _, want := range []string{"Penn Treebank Tagset", "VBD", "-LRB-"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in tagset output", want)
		}
	}
}

func TestRootCommandWiring(t *testing.T) {
	subcommands := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		subcommands[sub.Name()] = true
	}
	for _, name := range []string{"corpus", "tags", "browse", "config"} {
		if !subcommands[name] {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}

	for _, flag := range []string{"config", "verbose", "no-color"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("root command is missing persistent flag %q", flag)
		}
	}
}
